// Package engine wires extraction, profiling, and scoring into the single
// entry point the server and CLI call: give it resume text and a job
// posting, get back a compatibility analysis.
package engine

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-match/internal/ingestion"
	"github.com/jonathan/resume-match/internal/nlp"
	"github.com/jonathan/resume-match/internal/profile"
	"github.com/jonathan/resume-match/internal/scoring"
	"github.com/jonathan/resume-match/internal/types"
	"github.com/jonathan/resume-match/internal/vocabulary"
)

// Engine runs the full resume-to-job analysis pipeline. Construct once with
// the loaded skill vocabulary and a language model; it is safe for
// concurrent use.
type Engine struct {
	model     nlp.Model
	extractor *profile.Extractor
}

// New creates an Engine. Profile options (such as a fixed clock) are
// forwarded to the underlying extractor.
func New(vocab *vocabulary.Vocabulary, model nlp.Model, opts ...profile.Option) *Engine {
	return &Engine{
		model:     model,
		extractor: profile.New(vocab, model, opts...),
	}
}

// ExtractText pulls normalized plain text out of a PDF document.
func (e *Engine) ExtractText(data []byte) (string, error) {
	return ingestion.ExtractPDFText(data)
}

// Analyze scores a resume against a job posting. Heuristic extraction
// failures degrade to empty fields; only an embedding failure aborts the
// analysis, the semantic score cannot be substituted.
func (e *Engine) Analyze(ctx context.Context, resumeText string, job types.JobData) (*types.AnalysisResult, error) {
	resumeText = ingestion.CleanText(resumeText)
	jobText := ingestion.CleanText(job.CombinedText())

	prof := e.extractor.BuildProfile(ctx, resumeText)
	required := e.extractor.ExtractSkills(ctx, jobText)

	similarity, err := scoring.SemanticSimilarity(ctx, e.model, resumeText, jobText)
	if err != nil {
		return nil, fmt.Errorf("semantic similarity: %w", err)
	}

	coverage := scoring.SkillCoverage(prof.Skills, required)
	experience := scoring.ExperienceScore(prof.Experience, job.Position)
	education := scoring.EducationScore(resumeText)

	return &types.AnalysisResult{
		CompatibilityScore: scoring.Compatibility(similarity, coverage, experience, education),
		MissingSkills:      scoring.MissingSkills(prof.Skills, required),
		ExperienceMatch:    experience >= scoring.MatchThreshold,
		EducationMatch:     education >= scoring.MatchThreshold,
		CVData:             prof,
		ScoreBreakdown:     scoring.Breakdown(similarity, coverage, experience, education),
	}, nil
}
