package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-match/internal/ingestion"
	"github.com/jonathan/resume-match/internal/jobapi"
	"github.com/jonathan/resume-match/internal/store"
	"github.com/jonathan/resume-match/internal/types"
)

type stubAnalyzer struct {
	text       string
	extractErr error
	result     *types.AnalysisResult
	analyzeErr error
}

func (a *stubAnalyzer) ExtractText(_ []byte) (string, error) {
	return a.text, a.extractErr
}

func (a *stubAnalyzer) Analyze(_ context.Context, _ string, _ types.JobData) (*types.AnalysisResult, error) {
	return a.result, a.analyzeErr
}

type stubJobs struct {
	job types.JobData
	err error
}

func (j *stubJobs) GetJobDetails(_ context.Context, _ int) (types.JobData, error) {
	return j.job, j.err
}

type stubChat struct {
	reply string
	err   error
}

func (c *stubChat) Ask(_ context.Context, _ string) (string, error) {
	return c.reply, c.err
}

// memCache is an in-memory Cache for handler tests.
type memCache struct {
	entries map[string]*store.Analysis
	findErr error
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]*store.Analysis)}
}

func (c *memCache) Find(_ context.Context, fileHash, jobFingerprint string) (*store.Analysis, error) {
	if c.findErr != nil {
		return nil, c.findErr
	}
	return c.entries[fileHash+":"+jobFingerprint], nil
}

func (c *memCache) Save(_ context.Context, a *store.Analysis) error {
	c.entries[a.FileHash+":"+a.JobFingerprint] = a
	return nil
}

func defaultResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		CompatibilityScore: 88.5,
		MissingSkills:      []string{"kubernetes"},
		ExperienceMatch:    true,
		CVData: types.CandidateProfile{
			PersonalInfo: types.PersonalInfo{Name: "John Doe", Email: "john@example.com"},
		},
	}
}

func newTestDeps() Deps {
	return Deps{
		Analyzer: &stubAnalyzer{text: "resume text", result: defaultResult()},
		Jobs:     &stubJobs{job: types.JobData{Description: "Go services", Position: "Engineer"}},
		Chat:     &stubChat{reply: "hello"},
		Cache:    newMemCache(),
	}
}

func newTestServer(t *testing.T, deps Deps) *Server {
	t.Helper()
	s, err := New(Config{Port: 0}, deps)
	require.NoError(t, err)
	return s
}

// multipartUpload builds a resume upload request body.
func multipartUpload(t *testing.T, filename, content, jobID string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := w.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	if jobID != "" {
		require.NoError(t, w.WriteField("job_id", jobID))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doAnalyze(s *Server, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleAnalyze_Success(t *testing.T) {
	s := newTestServer(t, newTestDeps())

	body, ct := multipartUpload(t, "cv.pdf", "%PDF-1.4 fake", "42")
	rec := doAnalyze(s, body, ct)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "Analysis complete", resp["message"])

	data := resp["data"].(map[string]any)
	assert.InDelta(t, 88.5, data["compatibility_score"], 1e-9)
}

func TestHandleAnalyze_SecondUploadHitsCache(t *testing.T) {
	s := newTestServer(t, newTestDeps())

	body, ct := multipartUpload(t, "cv.pdf", "%PDF-1.4 fake", "42")
	first := doAnalyze(s, body, ct)
	require.Equal(t, http.StatusCreated, first.Code)

	body, ct = multipartUpload(t, "cv.pdf", "%PDF-1.4 fake", "42")
	second := doAnalyze(s, body, ct)

	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "Using cached analysis", decodeBody(t, second)["message"])
}

func TestHandleAnalyze_RejectsNonPDF(t *testing.T) {
	s := newTestServer(t, newTestDeps())

	body, ct := multipartUpload(t, "cv.docx", "hello", "42")
	rec := doAnalyze(s, body, ct)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "only PDF files")
}

func TestHandleAnalyze_RejectsMissingJobID(t *testing.T) {
	s := newTestServer(t, newTestDeps())

	body, ct := multipartUpload(t, "cv.pdf", "%PDF-1.4 fake", "")
	rec := doAnalyze(s, body, ct)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "job_id")
}

func TestHandleAnalyze_RejectsMissingFile(t *testing.T) {
	s := newTestServer(t, newTestDeps())

	body, ct := multipartUpload(t, "", "", "42")
	rec := doAnalyze(s, body, ct)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "file is required")
}

func TestHandleAnalyze_RejectsOversizedFile(t *testing.T) {
	s := newTestServer(t, newTestDeps())

	big := strings.Repeat("a", maxResumeSize+1)
	body, ct := multipartUpload(t, "cv.pdf", big, "42")
	rec := doAnalyze(s, body, ct)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "5MB")
}

func TestHandleAnalyze_UpstreamFailureIsBadGateway(t *testing.T) {
	deps := newTestDeps()
	deps.Jobs = &stubJobs{err: &jobapi.UpstreamError{StatusCode: 500, Message: "job 42: upstream reported failure"}}
	s := newTestServer(t, deps)

	body, ct := multipartUpload(t, "cv.pdf", "%PDF-1.4 fake", "42")
	rec := doAnalyze(s, body, ct)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleAnalyze_ExtractionFailureIsBadRequest(t *testing.T) {
	deps := newTestDeps()
	deps.Analyzer = &stubAnalyzer{extractErr: &ingestion.ExtractionError{Message: "unreadable document"}}
	s := newTestServer(t, deps)

	body, ct := multipartUpload(t, "cv.pdf", "not really a pdf", "42")
	rec := doAnalyze(s, body, ct)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_AnalysisFailureIsInternal(t *testing.T) {
	deps := newTestDeps()
	deps.Analyzer = &stubAnalyzer{text: "resume", analyzeErr: errors.New("model offline")}
	s := newTestServer(t, deps)

	body, ct := multipartUpload(t, "cv.pdf", "%PDF-1.4 fake", "42")
	rec := doAnalyze(s, body, ct)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleAnalyze_NilCacheAnalyzesFresh(t *testing.T) {
	deps := newTestDeps()
	deps.Cache = nil
	s := newTestServer(t, deps)

	body, ct := multipartUpload(t, "cv.pdf", "%PDF-1.4 fake", "42")
	rec := doAnalyze(s, body, ct)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandleChat_Success(t *testing.T) {
	s := newTestServer(t, newTestDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"prompt": "hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", decodeBody(t, rec)["reply"])
}

func TestHandleChat_MissingPrompt(t *testing.T) {
	s := newTestServer(t, newTestDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleChat_NotConfigured(t *testing.T) {
	deps := newTestDeps()
	deps.Chat = nil
	s := newTestServer(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"prompt": "hi"}`))
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, newTestDeps())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestNew_RequiresAnalyzer(t *testing.T) {
	_, err := New(Config{}, Deps{})
	assert.ErrorContains(t, err, "analyzer is required")
}
