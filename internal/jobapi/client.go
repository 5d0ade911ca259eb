// Package jobapi fetches job postings from the upstream job board API.
package jobapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/jonathan/resume-match/internal/types"
)

// requiredFields must all be present on a job payload before it is accepted
// for analysis.
var requiredFields = []string{
	"title", "job_type", "salary", "location",
	"job_status", "description", "requirement", "benefits", "position",
}

// Client talks to the job board API with timeouts and retries.
type Client struct {
	http *resty.Client
}

// New creates a Client for the given base URL. apiKey, when non-empty, is
// sent as a bearer token.
func New(baseURL, apiKey string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(4 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second)
	if apiKey != "" {
		http.SetAuthToken(apiKey)
	}
	return &Client{http: http}
}

// GetJobDetails fetches a job posting by ID and validates that the payload
// carries every field the analysis depends on.
func (c *Client) GetJobDetails(ctx context.Context, jobID int) (types.JobData, error) {
	resp, err := c.http.R().SetContext(ctx).Get(fmt.Sprintf("/%d", jobID))
	if err != nil {
		return types.JobData{}, &UpstreamError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	if resp.IsError() {
		return types.JobData{}, &UpstreamError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("job %d: unexpected response", jobID),
		}
	}

	body := resp.String()
	if gjson.Get(body, "status").String() != "200" {
		return types.JobData{}, &UpstreamError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("job %d: upstream reported failure", jobID),
		}
	}

	job := gjson.Get(body, "data.job")
	if !job.Exists() || !job.IsObject() {
		return types.JobData{}, &UpstreamError{Message: fmt.Sprintf("job %d: payload missing job object", jobID)}
	}
	for _, field := range requiredFields {
		if !job.Get(field).Exists() {
			return types.JobData{}, &UpstreamError{Message: fmt.Sprintf("job %d: payload missing field %q", jobID, field)}
		}
	}

	raw := make(map[string]any)
	for key, value := range job.Map() {
		raw[key] = value.Value()
	}
	return types.JobDataFromMap(raw), nil
}
