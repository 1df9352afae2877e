package domain

import "fmt"

// Corpus is an immutable, ordered snapshot of chunks available for
// retrieval in one session. It is built whole by a load and never
// mutated afterwards; a reload produces a fresh snapshot. The presence
// of a snapshot is what "loaded" means, there is no separate flag.
type Corpus struct {
	chunks []Chunk
}

// NewCorpus builds a snapshot from chunks in load order. It rejects
// duplicate (doc, section) keys so citations stay unambiguous.
func NewCorpus(chunks []Chunk) (*Corpus, error) {
	seen := make(map[string]struct{}, len(chunks))
	for _, c := range chunks {
		key := c.Key()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSection, key)
		}
		seen[key] = struct{}{}
	}

	owned := make([]Chunk, len(chunks))
	copy(owned, chunks)
	return &Corpus{chunks: owned}, nil
}

// Len returns the number of chunks in the snapshot.
func (c *Corpus) Len() int {
	return len(c.chunks)
}

// At returns the chunk at position i in load order.
func (c *Corpus) At(i int) Chunk {
	return c.chunks[i]
}

// Chunks returns a copy of the chunks in load order.
func (c *Corpus) Chunks() []Chunk {
	out := make([]Chunk, len(c.chunks))
	copy(out, c.chunks)
	return out
}
