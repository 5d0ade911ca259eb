package store

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-match/internal/types"
)

// Fingerprint derives a stable identifier for a job posting from its full
// content. Marshaling the map form sorts keys, so two postings with the
// same fields produce the same fingerprint regardless of field order.
func Fingerprint(job types.JobData) (string, error) {
	canonical, err := json.Marshal(job.ToMap())
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint job: %w", err)
	}
	sum := md5.Sum(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// FileHash identifies uploaded resume content.
func FileHash(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
