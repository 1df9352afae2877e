package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ansera/internal/core/domain"
)

func newCorpus(t *testing.T, ids ...string) *domain.Corpus {
	t.Helper()
	chunks := make([]domain.Chunk, 0, len(ids))
	for _, id := range ids {
		chunks = append(chunks, domain.Chunk{DocID: id, SectionID: "main", Content: "x"})
	}
	corpus, err := domain.NewCorpus(chunks)
	require.NoError(t, err)
	return corpus
}

func TestSnapshot_NilBeforeReplace(t *testing.T) {
	assert.Nil(t, NewCorpusStore().Snapshot())
}

func TestReplace_SwapsSnapshot(t *testing.T) {
	store := NewCorpusStore()

	first := newCorpus(t, "a", "b")
	store.Replace(first)
	assert.Same(t, first, store.Snapshot())

	second := newCorpus(t, "c")
	store.Replace(second)
	assert.Same(t, second, store.Snapshot())
	assert.Equal(t, 1, store.Snapshot().Len())
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	store := NewCorpusStore()
	store.Replace(newCorpus(t, "seed"))
	replacement := newCorpus(t, "w")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Replace(replacement)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if corpus := store.Snapshot(); corpus != nil {
					_ = corpus.Len()
				}
			}
		}()
	}
	wg.Wait()

	require.NotNil(t, store.Snapshot())
}
