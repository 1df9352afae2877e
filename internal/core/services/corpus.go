package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ansera/internal/core/domain"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
	"github.com/custodia-labs/ansera/internal/core/ports/driving"
	"github.com/custodia-labs/ansera/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService chunks source documents into corpus snapshots.
type CorpusService struct {
	registry driven.ChunkerRegistry
	store    driven.CorpusStore
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(registry driven.ChunkerRegistry, store driven.CorpusStore) *CorpusService {
	return &CorpusService{
		registry: registry,
		store:    store,
	}
}

// Load chunks every document and swaps the store to a fresh snapshot.
// Loading is one-shot and non-incremental: a reload replaces the whole
// collection. A document without an id fails the entire load.
func (s *CorpusService) Load(ctx context.Context, docs []domain.SourceDocument) (int, error) {
	logger.Section("Corpus Load")

	var all []domain.Chunk
	for i := range docs {
		doc := &docs[i]
		if strings.TrimSpace(doc.ID) == "" {
			return 0, fmt.Errorf("document %d: %w", i, domain.ErrMissingID)
		}

		chunker := s.registry.For(doc.Type)
		chunks, err := chunker.Chunk(ctx, doc)
		if err != nil {
			return 0, fmt.Errorf("chunk document %s: %w", doc.ID, err)
		}

		logger.Debug("Document %s (%s): %d chunks", doc.ID, chunker.Type(), len(chunks))
		all = append(all, chunks...)
	}

	corpus, err := domain.NewCorpus(all)
	if err != nil {
		return 0, fmt.Errorf("build corpus: %w", err)
	}

	s.store.Replace(corpus)
	logger.Info("Loaded %d document chunks", corpus.Len())

	return corpus.Len(), nil
}

// Chunks returns the chunks of the active snapshot in load order.
func (s *CorpusService) Chunks() []domain.Chunk {
	corpus := s.store.Snapshot()
	if corpus == nil {
		return nil
	}
	return corpus.Chunks()
}
