package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("generator", "extractive"))

	val, ok := store.Get("generator")
	assert.True(t, ok)
	assert.Equal(t, "extractive", val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("openai.model", "gpt-4o-mini"))
	require.NoError(t, store.Set("top_k", 6))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, "gpt-4o-mini", store.GetString("openai.model"))
	assert.Equal(t, 6, store.GetInt("top_k"))
	assert.True(t, store.GetBool("verbose"))

	// Missing keys yield zero values.
	assert.Equal(t, "", store.GetString("nonexistent"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
	assert.False(t, store.GetBool("nonexistent"))

	// Type mismatches yield zero values as well.
	assert.Equal(t, "", store.GetString("top_k"))
	assert.Equal(t, 0, store.GetInt("openai.model"))
	assert.False(t, store.GetBool("openai.model"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("generator", "openai"))
	require.NoError(t, store1.Set("top_k", 8))

	// A second store over the same directory sees the persisted values.
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "openai", store2.GetString("generator"))
	assert.Equal(t, 8, store2.GetInt("top_k"))
}

func TestConfigStore_NestedKeysFlattened(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[openai]\napi_key = \"sk-test\"\nmodel = \"gpt-4o-mini\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", store.GetString("openai.api_key"))
	assert.Equal(t, "gpt-4o-mini", store.GetString("openai.model"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("k", "v"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
