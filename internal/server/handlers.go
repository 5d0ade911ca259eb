package server

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-match/internal/store"
)

// maxResumeSize caps resume uploads at 5 MB.
const maxResumeSize = 5 << 20

type analyzeRequest struct {
	JobID int `validate:"required,gt=0"`
}

type chatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// handleAnalyze accepts a multipart resume upload plus a job ID, and returns
// the compatibility analysis. A repeat upload for the same job is served
// from the cache.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize + 1<<20); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation error: resume - file is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		s.errorResponse(w, http.StatusBadRequest, "validation error: resume - only PDF files are accepted")
		return
	}

	jobID, err := strconv.Atoi(r.FormValue("job_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation error: job_id - must be an integer")
		return
	}
	if err := s.validator.Struct(analyzeRequest{JobID: jobID}); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}
	if len(data) > maxResumeSize {
		s.errorResponse(w, http.StatusBadRequest, "validation error: resume - file exceeds 5MB limit")
		return
	}

	job, err := s.jobs.GetJobDetails(r.Context(), jobID)
	if err != nil {
		s.logger.Warn("job fetch failed", zap.Int("job_id", jobID), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	fileHash := store.FileHash(data)
	fingerprint, err := store.Fingerprint(job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.cache != nil {
		cached, err := s.cache.Find(r.Context(), fileHash, fingerprint)
		if err != nil {
			s.logger.Warn("cache lookup failed", zap.Error(err))
		} else if cached != nil {
			s.jsonResponse(w, http.StatusOK, map[string]any{
				"message": "Using cached analysis",
				"data":    cached.Result,
			})
			return
		}
	}

	text, err := s.analyzer.ExtractText(data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), text, job)
	if err != nil {
		s.logger.Error("analysis failed", zap.Int("job_id", jobID), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if s.cache != nil {
		record := &store.Analysis{
			FileHash:       fileHash,
			JobFingerprint: fingerprint,
			ApplicantName:  result.CVData.PersonalInfo.Name,
			ApplicantEmail: result.CVData.PersonalInfo.Email,
			Job:            job,
			Result:         *result,
		}
		if err := s.cache.Save(r.Context(), record); err != nil {
			// A failed save only loses the cache entry, not the response.
			s.logger.Warn("cache save failed", zap.Error(err))
		}
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"message": "Analysis complete",
		"data":    result,
	})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// handleChat relays a question to the chat assistant.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.chat == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "chat is not configured")
		return
	}

	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	reply, err := s.chat.Ask(r.Context(), req.Prompt)
	if err != nil {
		s.logger.Error("chat failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "chat failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"reply": reply})
}
