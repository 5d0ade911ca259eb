package jobapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPayload = `{
	"status": "200",
	"data": {
		"job": {
			"title": "Backend Engineer",
			"job_type": "full-time",
			"salary": "competitive",
			"location": "Remote",
			"job_status": "open",
			"description": "Build data services in Go.",
			"requirement": "Go, PostgreSQL, Docker",
			"benefits": "Health insurance",
			"position": "Senior Backend Engineer"
		}
	}
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, "")
}

func TestGetJobDetails_ParsesPayload(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/42", r.URL.Path)
		fmt.Fprint(w, jobPayload)
	})

	job, err := client.GetJobDetails(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "Build data services in Go.", job.Description)
	assert.Equal(t, "Go, PostgreSQL, Docker", job.Requirements)
	assert.Equal(t, "Senior Backend Engineer", job.Position)
	assert.Equal(t, "Backend Engineer", job.Extra["title"])
	assert.Equal(t, "Remote", job.Extra["location"])
}

func TestGetJobDetails_SendsBearerToken(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		fmt.Fprint(w, jobPayload)
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, "secret-token")
	_, err := client.GetJobDetails(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", got)
}

func TestGetJobDetails_UpstreamFailureStatus(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "500", "message": "internal error"}`)
	})

	_, err := client.GetJobDetails(context.Background(), 7)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Contains(t, upstream.Message, "upstream reported failure")
}

func TestGetJobDetails_HTTPError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.GetJobDetails(context.Background(), 7)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
}

func TestGetJobDetails_MissingJobObject(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "200", "data": {}}`)
	})

	_, err := client.GetJobDetails(context.Background(), 7)
	assert.ErrorContains(t, err, "missing job object")
}

func TestGetJobDetails_MissingRequiredField(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "200", "data": {"job": {"title": "Engineer"}}}`)
	})

	_, err := client.GetJobDetails(context.Background(), 7)
	assert.ErrorContains(t, err, "missing field")
}
