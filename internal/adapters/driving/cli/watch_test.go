package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch [path]", watchCmd.Use)
	assert.NotNil(t, watchCmd.Flags().Lookup("once"))
	assert.NotNil(t, watchCmd.Flags().Lookup("save"))
}

func TestWatchCmd_Once(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("It took six years."), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("Due 01.01.1990"), 0o600))

	out, err := execute(t, "watch", "--once", "--save", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "a.txt: 1 entities")
	assert.Contains(t, out, "Annotated 2 documents (0 errors)")
	assert.NotContains(t, out, "Watching")

	docs, err := ts.documents.List(t.Context())
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestWatchCmd_OnceWithoutSave(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("six years"), 0o600))

	_, err := execute(t, "watch", "--once", dir)
	require.NoError(t, err)

	docs, err := ts.documents.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestWatchCmd_MissingPath(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "watch", "--once", filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "root path does not exist")
}

func TestWatchCmd_NotConfigured(t *testing.T) {
	Configure(nil)

	_, err := execute(t, "watch", "--once", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest service not configured")
}
