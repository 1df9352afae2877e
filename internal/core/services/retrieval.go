package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/ansera/internal/core/domain"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
	"github.com/custodia-labs/ansera/internal/core/ports/driving"
	"github.com/custodia-labs/ansera/internal/logger"
	"github.com/custodia-labs/ansera/internal/text"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// RetrievalService ranks corpus chunks against free-text queries using
// the hybrid lexical scorer.
type RetrievalService struct {
	store driven.CorpusStore
}

// NewRetrievalService creates a new retrieval service.
func NewRetrievalService(store driven.CorpusStore) *RetrievalService {
	return &RetrievalService{
		store: store,
	}
}

// Retrieve tokenizes the query once, scores every chunk in the active
// snapshot, discards non-positive scores, and returns the top k by
// score descending. Equal scores keep corpus load order (stable sort),
// so results are deterministic for a given load. Returns nil before
// any corpus is loaded, and for empty or blank queries.
func (s *RetrievalService) Retrieve(query string, topK int) []domain.RetrievedChunk {
	corpus := s.store.Snapshot()
	if corpus == nil {
		logger.Debug("Retrieve before load, returning no results")
		return nil
	}
	if topK <= 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return nil
	}

	queryLower := strings.ToLower(query)
	terms := text.Tokenize(query)
	logger.Debug("Query terms: %v", terms)

	var scored []domain.RetrievedChunk
	for i := 0; i < corpus.Len(); i++ {
		chunk := corpus.At(i)
		score := scoreChunk(chunk, terms, queryLower)
		if score > 0 {
			scored = append(scored, domain.RetrievedChunk{Chunk: chunk, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	logger.Debug("Retrieved %d of %d chunks", len(scored), corpus.Len())

	return scored
}
