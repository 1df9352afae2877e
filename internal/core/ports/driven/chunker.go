package driven

import (
	"context"

	"github.com/custodia-labs/ansera/internal/core/domain"
)

// Chunker converts one source document into independently retrievable
// chunks. Each chunker handles a single document type.
type Chunker interface {
	// Type returns the document type this chunker handles.
	Type() domain.DocumentType

	// Chunk splits the document into chunks with stable, content-derived
	// section ids. Re-chunking identical input yields identical ids.
	Chunk(ctx context.Context, doc *domain.SourceDocument) ([]domain.Chunk, error)
}

// ChunkerRegistry resolves the chunker for a document type.
type ChunkerRegistry interface {
	// For returns the chunker for t, or the plain fallback when the
	// type is unrecognised. It never returns nil.
	For(t domain.DocumentType) Chunker
}
