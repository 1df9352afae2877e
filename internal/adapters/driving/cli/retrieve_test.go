package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveCmd_Use(t *testing.T) {
	assert.Equal(t, "retrieve [query]", retrieveCmd.Use)
}

func TestRetrieveCmd_HasLimitFlag(t *testing.T) {
	flag := retrieveCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "4", flag.DefValue)
}

func TestRetrieveCmd_PrintsRankedResults(t *testing.T) {
	out, err := executeCommand(t, "retrieve", "--corpus", testCorpus, "stress and sleep")
	require.NoError(t, err)

	assert.Contains(t, out, "Results:")
	assert.Contains(t, out, "faq_general")
}

func TestRetrieveCmd_RespectsLimit(t *testing.T) {
	out, err := executeCommand(t, "retrieve", "--corpus", testCorpus, "--json", "-n", "1", "ayurveda")
	require.NoError(t, err)

	var ranked []rankedResult
	require.NoError(t, json.Unmarshal([]byte(out), &ranked))
	assert.Len(t, ranked, 1)
}

func TestRetrieveCmd_JSONOutput(t *testing.T) {
	out, err := executeCommand(t, "retrieve", "--corpus", testCorpus, "--json", "stress and sleep")
	require.NoError(t, err)

	var ranked []rankedResult
	require.NoError(t, json.Unmarshal([]byte(out), &ranked))
	require.NotEmpty(t, ranked)
	assert.Equal(t, "faq_general", ranked[0].DocID)
	assert.Greater(t, ranked[0].Score, 0.0)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRetrieveCmd_NoResults(t *testing.T) {
	out, err := executeCommand(t, "retrieve", "--corpus", testCorpus, "quantum chromodynamics")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}
