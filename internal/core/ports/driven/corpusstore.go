package driven

import "github.com/custodia-labs/ansera/internal/core/domain"

// CorpusStore holds the active corpus snapshot for a session.
// Snapshots are immutable values; Replace swaps the reference
// atomically, so readers never observe a half-loaded corpus.
type CorpusStore interface {
	// Replace installs a new snapshot, discarding the previous one.
	Replace(corpus *domain.Corpus)

	// Snapshot returns the active snapshot, or nil before any load.
	Snapshot() *domain.Corpus
}
