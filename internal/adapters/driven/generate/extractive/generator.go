// Package extractive provides the deterministic fallback generator.
// It extracts leading sentences from the top-ranked passages instead
// of calling a language model, so answers are reproducible and work
// offline. A real model adapter can replace it in production.
package extractive

import (
	"context"
	"strings"

	"github.com/custodia-labs/ansera/internal/core/domain"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
	"github.com/custodia-labs/ansera/internal/text"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

const (
	// passageCount is how many top passages contribute a sentence.
	passageCount = 2

	// minSentenceLength filters out fragments and headings.
	minSentenceLength = 40

	// fallbackLength bounds the raw-content fallback.
	fallbackLength = 400
)

// Generator extracts answer text from retrieved passages.
type Generator struct{}

// New creates a new extractive generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return "extractive"
}

// Generate takes the first sentence longer than the minimum length
// from each of the top two passages, joined by a space. If neither
// passage yields one, it falls back to the top passage's raw content,
// truncated with an ellipsis marker.
func (g *Generator) Generate(_ context.Context, _, _ string, passages []domain.RetrievedChunk) (string, error) {
	if len(passages) == 0 {
		return "", domain.ErrInvalidInput
	}

	limit := passageCount
	if len(passages) < limit {
		limit = len(passages)
	}

	var parts []string
	for _, passage := range passages[:limit] {
		for _, sentence := range text.Sentences(passage.Chunk.Content) {
			if len(sentence) > minSentenceLength {
				parts = append(parts, sentence)
				break
			}
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " "), nil
	}

	top := passages[0].Chunk.Content
	if len(top) > fallbackLength {
		top = top[:fallbackLength] + "..."
	}
	return top, nil
}

// Close releases resources.
func (g *Generator) Close() error {
	return nil
}
