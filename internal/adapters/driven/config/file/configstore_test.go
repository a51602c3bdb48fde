package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	_, ok := store.Get("timexy.label")
	assert.False(t, ok)
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("timexy.label", "TIME"))
	require.NoError(t, store.Set("timexy.overwrite", true))

	assert.Equal(t, "TIME", store.GetString("timexy.label"))
	assert.True(t, store.GetBool("timexy.overwrite"))
	assert.Empty(t, store.GetString("timexy.overwrite"))
	assert.False(t, store.GetBool("timexy.label"))
}

func TestConfigStore_Set_InvalidKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("", "x"))
	assert.Error(t, store.Set("timexy.", "x"))
	assert.Error(t, store.Set(".label", "x"))
}

func TestConfigStore_Set_DoesNotPersistUntilSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("timexy.label", "TIME"))
	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Save())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestConfigStore_SaveAndReload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("timexy.label", "TIME"))
	require.NoError(t, store.Set("timexy.kb_id_type", "timestamp"))
	require.NoError(t, store.Set("timexy.overwrite", true))
	require.NoError(t, store.Save())

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "TIME", reloaded.GetString("timexy.label"))
	assert.Equal(t, "timestamp", reloaded.GetString("timexy.kb_id_type"))
	assert.True(t, reloaded.GetBool("timexy.overwrite"))
}

func TestConfigStore_Save_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("timexy.label", "TIME"))
	require.NoError(t, store.Save())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[timexy]")
	assert.Contains(t, string(data), "label = 'TIME'")
}

func TestConfigStore_Save_Permissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("timexy.label", "TIME"))
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Save_ConflictingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("timexy", "flat"))
	require.NoError(t, store.Set("timexy.label", "TIME"))

	assert.Error(t, store.Save())
}

func TestConfigStore_Load_HandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	content := "[timexy]\nlabel = \"DATE\"\noverwrite = true\nlanguage = \"fr\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "DATE", store.GetString("timexy.label"))
	assert.Equal(t, "fr", store.GetString("timexy.language"))
	assert.True(t, store.GetBool("timexy.overwrite"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[timexy\nlabel ="), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"timexy": map[string]any{"label": "TIME", "overwrite": true},
		"top":    int64(1),
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{"timexy.label": "TIME", "timexy.overwrite": true, "top": int64(1)}, flat)

	back, err := unflattenMap(flat)
	require.NoError(t, err)
	assert.Equal(t, nested, back)
}
