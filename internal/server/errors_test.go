package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-match/internal/ingestion"
	"github.com/jonathan/resume-match/internal/jobapi"
)

func TestHTTPStatus_Validation(t *testing.T) {
	err := &ErrValidation{Field: "job_id", Message: "must be positive"}
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_Extraction(t *testing.T) {
	err := &ingestion.ExtractionError{Message: "unreadable document"}
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_WrappedUpstream(t *testing.T) {
	err := fmt.Errorf("fetching job: %w", &jobapi.UpstreamError{StatusCode: 503, Message: "down"})
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(err))
}

func TestHTTPStatus_Default(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
