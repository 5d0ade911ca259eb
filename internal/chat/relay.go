// Package chat relays free-form user questions to the language model with a
// configurable system prompt, the conversational side of the service next to
// the structured analysis pipeline.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-match/internal/llm"
)

// DefaultSystemPrompt frames the assistant when no prompt is configured.
const DefaultSystemPrompt = "You are a helpful career assistant. Answer questions about resumes, " +
	"job applications, and interview preparation concisely."

// Relay answers chat prompts through the language model.
type Relay struct {
	client       llm.Client
	systemPrompt string
}

// NewRelay creates a Relay. An empty systemPrompt falls back to the default.
func NewRelay(client llm.Client, systemPrompt string) *Relay {
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return &Relay{client: client, systemPrompt: systemPrompt}
}

// Ask sends one user prompt and returns the model's reply.
func (r *Relay) Ask(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("empty prompt")
	}

	full := r.systemPrompt + "\n\nUser: " + prompt
	reply, err := r.client.GenerateContent(ctx, full, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("chat generation failed: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
