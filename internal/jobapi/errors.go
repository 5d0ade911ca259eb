package jobapi

import "fmt"

// UpstreamError reports a failure talking to or interpreting the job board
// API. StatusCode is zero when the request never produced a response.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("job api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("job api: %s", e.Message)
}
