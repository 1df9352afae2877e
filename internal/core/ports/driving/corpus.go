package driving

import (
	"context"

	"github.com/custodia-labs/ansera/internal/core/domain"
)

// CorpusService loads source documents into the active corpus.
type CorpusService interface {
	// Load chunks every document and replaces the whole corpus with a
	// fresh snapshot. Returns the number of chunks loaded.
	Load(ctx context.Context, docs []domain.SourceDocument) (int, error)

	// Chunks returns the chunks of the active snapshot in load order,
	// or nil before any load.
	Chunks() []domain.Chunk
}
