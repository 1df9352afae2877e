package driving

import (
	"context"

	"github.com/custodia-labs/ansera/internal/core/domain"
)

// AnswerService answers free-text questions against the loaded corpus.
type AnswerService interface {
	// Answer retrieves the best-supported chunks for the query and
	// packages a cited, confidence-labelled answer. A query with no
	// matches yields a well-formed low-confidence answer, not an error.
	Answer(ctx context.Context, query string) (*domain.Answer, error)
}

// RetrievalService ranks corpus chunks against a free-text query.
type RetrievalService interface {
	// Retrieve scores every chunk in the active snapshot and returns
	// at most topK results, best first. Non-positive scores are
	// excluded. Returns nil before any corpus is loaded.
	Retrieve(query string, topK int) []domain.RetrievedChunk
}
