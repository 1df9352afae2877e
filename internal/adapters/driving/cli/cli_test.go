package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ansera/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
)

const testCorpus = "testdata/corpus.json"

// executeCommand runs the root command with an isolated config
// directory and captures combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
		// Flag state persists across Execute calls; reset it so tests
		// stay order-independent.
		for _, c := range rootCmd.Commands() {
			c.Flags().Visit(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// newConfigStore builds a config store over dir seeded with the given
// TOML content.
func newConfigStore(t *testing.T, dir, content string) driven.ConfigStore {
	t.Helper()

	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))
	}
	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	return store
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "ansera", rootCmd.Use)
}

func TestInitServices_WiresEverything(t *testing.T) {
	_, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.NotNil(t, configStore)
	assert.NotNil(t, generator)
	assert.NotNil(t, corpusService)
	assert.NotNil(t, retrieval)
	assert.NotNil(t, answerService)
}

func TestInitServices_ConfigFileInConfigDir(t *testing.T) {
	dir := t.TempDir()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--config-dir", dir, "version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, filepath.Join(dir, "config.toml"), configStore.Path())
}

func TestBuildGenerator_UnknownName(t *testing.T) {
	dir := t.TempDir()
	store := newConfigStore(t, dir, "generator = \"quantum\"\n")

	_, err := buildGenerator(store)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generator")
}

func TestBuildGenerator_DefaultIsExtractive(t *testing.T) {
	store := newConfigStore(t, t.TempDir(), "")

	gen, err := buildGenerator(store)
	require.NoError(t, err)
	assert.Equal(t, "extractive", gen.Name())
}
