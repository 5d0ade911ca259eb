// Package store provides PostgreSQL persistence for completed resume
// analyses. An analysis is keyed by the resume file hash plus the job
// fingerprint, so re-uploading the same resume for the same posting hits
// the cache instead of re-running the pipeline.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-match/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the analyses table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resume_analyses (
			id UUID PRIMARY KEY,
			file_hash TEXT NOT NULL,
			job_fingerprint TEXT NOT NULL,
			applicant_name TEXT NOT NULL DEFAULT '',
			applicant_email TEXT NOT NULL DEFAULT '',
			job_data JSONB NOT NULL,
			analysis_result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (file_hash, job_fingerprint)
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Analysis is a stored analysis record.
type Analysis struct {
	ID             uuid.UUID            `json:"id"`
	FileHash       string               `json:"file_hash"`
	JobFingerprint string               `json:"job_fingerprint"`
	ApplicantName  string               `json:"applicant_name"`
	ApplicantEmail string               `json:"applicant_email"`
	Job            types.JobData        `json:"job_data"`
	Result         types.AnalysisResult `json:"analysis_result"`
	CreatedAt      time.Time            `json:"created_at"`
}

// Save stores a completed analysis. A rerun for the same resume and job
// overwrites the previous record.
func (s *Store) Save(ctx context.Context, a *Analysis) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	jobJSON, err := json.Marshal(a.Job.ToMap())
	if err != nil {
		return fmt.Errorf("failed to marshal job data: %w", err)
	}
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resume_analyses (id, file_hash, job_fingerprint, applicant_name, applicant_email, job_data, analysis_result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (file_hash, job_fingerprint)
		 DO UPDATE SET applicant_name = $4, applicant_email = $5, job_data = $6, analysis_result = $7, created_at = NOW()`,
		a.ID, a.FileHash, a.JobFingerprint, a.ApplicantName, a.ApplicantEmail, jobJSON, resultJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// Find retrieves the stored analysis for a resume hash and job fingerprint.
// A cache miss returns (nil, nil).
func (s *Store) Find(ctx context.Context, fileHash, jobFingerprint string) (*Analysis, error) {
	var (
		a          Analysis
		jobJSON    []byte
		resultJSON []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, file_hash, job_fingerprint, applicant_name, applicant_email, job_data, analysis_result, created_at
		 FROM resume_analyses WHERE file_hash = $1 AND job_fingerprint = $2`,
		fileHash, jobFingerprint,
	).Scan(&a.ID, &a.FileHash, &a.JobFingerprint, &a.ApplicantName, &a.ApplicantEmail, &jobJSON, &resultJSON, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}

	var jobMap map[string]any
	if err := json.Unmarshal(jobJSON, &jobMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job data: %w", err)
	}
	a.Job = types.JobDataFromMap(jobMap)

	if err := json.Unmarshal(resultJSON, &a.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &a, nil
}

// ListRecent retrieves the most recent analyses, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, file_hash, job_fingerprint, applicant_name, applicant_email, job_data, analysis_result, created_at
		 FROM resume_analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var (
			a          Analysis
			jobJSON    []byte
			resultJSON []byte
		)
		if err := rows.Scan(&a.ID, &a.FileHash, &a.JobFingerprint, &a.ApplicantName, &a.ApplicantEmail, &jobJSON, &resultJSON, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		var jobMap map[string]any
		if err := json.Unmarshal(jobJSON, &jobMap); err == nil {
			a.Job = types.JobDataFromMap(jobMap)
		}
		if err := json.Unmarshal(resultJSON, &a.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}
