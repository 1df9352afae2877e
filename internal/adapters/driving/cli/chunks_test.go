package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunksCmd_Use(t *testing.T) {
	assert.Equal(t, "chunks", chunksCmd.Use)
}

func TestChunksCmd_ListsChunkKeys(t *testing.T) {
	out, err := executeCommand(t, "chunks", "--corpus", testCorpus)
	require.NoError(t, err)

	// 3 markdown + 2 faq + 1 tabular chunks from the test corpus.
	assert.Contains(t, out, "6 chunks:")
	assert.Contains(t, out, "foundations | intro")
	assert.Contains(t, out, "foundations | section_1_the_three_doshas")
	assert.Contains(t, out, "faq_general | faq_2_can_ayurveda_help_with_stress_and_sleep")
	assert.Contains(t, out, "catalog | product_KA-P001")
}

func TestChunksCmd_JSONOutput(t *testing.T) {
	out, err := executeCommand(t, "chunks", "--corpus", testCorpus, "--json")
	require.NoError(t, err)

	var listings []chunkListing
	require.NoError(t, json.Unmarshal([]byte(out), &listings))
	require.Len(t, listings, 6)
	assert.Equal(t, "foundations", listings[0].DocID)
	assert.Equal(t, "intro", listings[0].SectionID)
	assert.Positive(t, listings[0].Size)
}

func TestChunksCmd_RequiresCorpusFlag(t *testing.T) {
	_, err := executeCommand(t, "chunks")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "corpus")
}
