package chunkers

import (
	"github.com/custodia-labs/ansera/internal/chunkers/faq"
	"github.com/custodia-labs/ansera/internal/chunkers/markdown"
	"github.com/custodia-labs/ansera/internal/chunkers/plaintext"
	"github.com/custodia-labs/ansera/internal/chunkers/tabular"
	"github.com/custodia-labs/ansera/internal/core/domain"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ChunkerRegistry = (*Registry)(nil)

// Registry maps document types to their chunkers. Lookups for
// unregistered types resolve to the fallback chunker.
type Registry struct {
	byType   map[domain.DocumentType]driven.Chunker
	fallback driven.Chunker
}

// NewRegistry creates a registry with the given fallback and chunkers.
// Each chunker is registered under its own Type.
func NewRegistry(fallback driven.Chunker, chunkers ...driven.Chunker) *Registry {
	r := &Registry{
		byType:   make(map[domain.DocumentType]driven.Chunker, len(chunkers)+1),
		fallback: fallback,
	}
	r.byType[fallback.Type()] = fallback
	for _, c := range chunkers {
		r.byType[c.Type()] = c
	}
	return r
}

// Defaults returns a registry wired with every built-in chunker and
// the plain chunker as fallback.
func Defaults() *Registry {
	return NewRegistry(plaintext.New(), markdown.New(), faq.New(), tabular.New())
}

// For returns the chunker for t. Unrecognised types degrade to the
// fallback rather than failing.
func (r *Registry) For(t domain.DocumentType) driven.Chunker {
	if c, ok := r.byType[t]; ok {
		return c
	}
	return r.fallback
}

// Types returns the registered document types.
func (r *Registry) Types() []domain.DocumentType {
	types := make([]domain.DocumentType, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	return types
}
