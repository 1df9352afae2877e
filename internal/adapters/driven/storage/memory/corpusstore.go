// Package memory provides in-memory storage adapters.
package memory

import (
	"sync"

	"github.com/custodia-labs/ansera/internal/core/domain"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore holds the active corpus snapshot in memory. Snapshots
// are immutable, so Replace only swaps the pointer; readers always see
// a complete corpus and never a half-loaded one.
type CorpusStore struct {
	mu     sync.RWMutex
	corpus *domain.Corpus
}

// NewCorpusStore creates an empty corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{}
}

// Replace installs a new snapshot, discarding the previous one.
func (s *CorpusStore) Replace(corpus *domain.Corpus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corpus = corpus
}

// Snapshot returns the active snapshot, or nil before any load.
func (s *CorpusStore) Snapshot() *domain.Corpus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corpus
}
