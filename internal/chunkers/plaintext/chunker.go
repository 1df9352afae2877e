package plaintext

import (
	"context"

	"github.com/custodia-labs/ansera/internal/core/domain"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
)

// Ensure Chunker implements the interface.
var _ driven.Chunker = (*Chunker)(nil)

// SectionID is the section id of the single chunk a plain document
// produces.
const SectionID = "main"

// Chunker handles plain documents. It is also the fallback for any
// unrecognised document type.
type Chunker struct{}

// New creates a new plain text chunker.
func New() *Chunker {
	return &Chunker{}
}

// Type returns the document type this chunker handles.
func (c *Chunker) Type() domain.DocumentType {
	return domain.TypePlain
}

// Chunk produces exactly one chunk covering the whole document, with
// content and metadata unchanged.
func (c *Chunker) Chunk(_ context.Context, doc *domain.SourceDocument) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}

	return []domain.Chunk{{
		DocID:     doc.ID,
		SectionID: SectionID,
		Content:   doc.Content,
		Metadata:  doc.Metadata.Clone(),
	}}, nil
}
