// Package nlp defines the language-model capabilities the matching engine
// depends on, plus a Gemini-backed implementation. Any backend satisfying
// Model can substitute it.
package nlp

import "context"

// LabelPerson is the entity label used for candidate-name detection.
const LabelPerson = "PERSON"

// Entity is a named entity recognized in text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Model is the set of language-model capabilities the analysis pipeline
// consumes. Implementations must be safe for concurrent use; the engine
// shares one instance across analyses.
type Model interface {
	// Embed returns a dense document-level vector for the text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// NamedEntities returns the recognized entities in the text, in order.
	NamedEntities(ctx context.Context, text string) ([]Entity, error)
	// NounChunks returns the noun phrases in the text, in order.
	NounChunks(ctx context.Context, text string) ([]string, error)
	// IsStopWord reports whether a single token is a stop word.
	IsStopWord(token string) bool
}
