package scoring

import (
	"context"
	"math"

	"github.com/jonathan/resume-match/internal/nlp"
)

// SemanticSimilarity embeds both texts with the model and returns their
// cosine similarity clamped to [0,1]. A zero-norm vector on either side
// (empty or unrepresentable text) yields 0.0.
func SemanticSimilarity(ctx context.Context, model nlp.Model, resumeText, jobText string) (float64, error) {
	a, err := model.Embed(ctx, resumeText)
	if err != nil {
		return 0, err
	}
	b, err := model.Embed(ctx, jobText)
	if err != nil {
		return 0, err
	}
	return CosineSimilarity(a, b), nil
}

// CosineSimilarity computes the cosine of two vectors, clamped to [0,1].
// Zero-norm or mismatched-length vectors yield 0.0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0.0, math.Min(1.0, sim))
}
