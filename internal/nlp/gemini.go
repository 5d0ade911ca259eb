package nlp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-match/internal/llm"
)

const entityPrompt = `Extract the named entities from the following text.
Label people as PERSON, organizations as ORG, and places as GPE.

TEXT:
%s

Return ONLY a JSON array of objects with this exact structure, in the order
the entities appear in the text:
[{"text": "<entity text>", "label": "<PERSON|ORG|GPE>"}]`

const nounChunkPrompt = `List the noun phrases in the following text, in the
order they appear. Keep each phrase exactly as written.

TEXT:
%s

Return ONLY a JSON array of strings: ["<phrase>", ...]`

// GeminiModel implements Model on top of the shared LLM client: embeddings
// via the embedding endpoint, entities and noun phrases via structured
// JSON prompts.
type GeminiModel struct {
	client llm.Client
}

// NewGeminiModel wraps an LLM client as an analysis Model.
func NewGeminiModel(client llm.Client) *GeminiModel {
	return &GeminiModel{client: client}
}

// Embed returns the document-level embedding of the text.
func (m *GeminiModel) Embed(ctx context.Context, text string) ([]float32, error) {
	return m.client.EmbedText(ctx, text)
}

// NamedEntities extracts labeled entities from the text.
func (m *GeminiModel) NamedEntities(ctx context.Context, text string) ([]Entity, error) {
	raw, err := m.client.GenerateJSON(ctx, fmt.Sprintf(entityPrompt, text), llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("entity extraction: %w", err)
	}

	var entities []Entity
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil, fmt.Errorf("entity extraction parse: %w (raw: %s)", err, llm.Truncate(raw, 200))
	}
	return entities, nil
}

// NounChunks extracts noun phrases from the text.
func (m *GeminiModel) NounChunks(ctx context.Context, text string) ([]string, error) {
	raw, err := m.client.GenerateJSON(ctx, fmt.Sprintf(nounChunkPrompt, text), llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("noun chunk extraction: %w", err)
	}

	var chunks []string
	if err := json.Unmarshal([]byte(raw), &chunks); err != nil {
		return nil, fmt.Errorf("noun chunk parse: %w (raw: %s)", err, llm.Truncate(raw, 200))
	}
	return chunks, nil
}

// IsStopWord reports whether token is a stop word. The table is static, no
// model call is involved.
func (m *GeminiModel) IsStopWord(token string) bool {
	return IsStopWord(token)
}
