package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-match/internal/config"
	"github.com/jonathan/resume-match/internal/engine"
	"github.com/jonathan/resume-match/internal/llm"
	"github.com/jonathan/resume-match/internal/nlp"
	"github.com/jonathan/resume-match/internal/vocabulary"
)

// buildEngine constructs the analysis engine and the language model client
// behind it. The caller owns closing the returned client.
func buildEngine(ctx context.Context, cfg config.Config) (*engine.Engine, llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("Gemini API key is required (api_key or GEMINI_API_KEY)")
	}
	if cfg.SkillsCSV == "" {
		return nil, nil, fmt.Errorf("skills CSV path is required (skills_csv or SKILLS_CSV)")
	}

	vocab, err := vocabulary.Load(cfg.SkillsCSV)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load skill vocabulary: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create language model client: %w", err)
	}

	return engine.New(vocab, nlp.NewGeminiModel(client)), client, nil
}
