package profile

import (
	"context"
	"errors"
	"time"

	"github.com/jonathan/resume-match/internal/nlp"
)

// stubModel is a canned-response nlp.Model for extractor tests.
type stubModel struct {
	entities []nlp.Entity
	chunks   []string
	fail     bool
}

func (s *stubModel) Embed(_ context.Context, _ string) ([]float32, error) {
	if s.fail {
		return nil, errors.New("model unavailable")
	}
	return []float32{1}, nil
}

func (s *stubModel) NamedEntities(_ context.Context, _ string) ([]nlp.Entity, error) {
	if s.fail {
		return nil, errors.New("model unavailable")
	}
	return s.entities, nil
}

func (s *stubModel) NounChunks(_ context.Context, _ string) ([]string, error) {
	if s.fail {
		return nil, errors.New("model unavailable")
	}
	return s.chunks, nil
}

func (s *stubModel) IsStopWord(token string) bool {
	return nlp.IsStopWord(token)
}

// fixedNow pins the extractor clock so "present" resolves deterministically.
func fixedNow(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}
