package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Equal(t, tmpDir, store.Dir())
}

func TestDefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".lexonarrative"), dir)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(driven.ConfigNarrativeType, "litigation"))

	val, ok := store.Get(driven.ConfigNarrativeType)
	assert.True(t, ok)
	assert.Equal(t, "litigation", val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("a.string", "hello"))
	require.NoError(t, store.Set("a.int", 42))
	require.NoError(t, store.Set("a.bool", true))
	require.NoError(t, store.Set("a.list", []string{"concise", "formal"}))

	assert.Equal(t, "hello", store.GetString("a.string"))
	assert.Equal(t, 42, store.GetInt("a.int"))
	assert.True(t, store.GetBool("a.bool"))
	assert.Equal(t, []string{"concise", "formal"}, store.GetStringSlice("a.list"))

	// Missing keys
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))
	assert.Nil(t, store.GetStringSlice("missing"))

	// Wrong types
	assert.Equal(t, "", store.GetString("a.int"))
	assert.Equal(t, 0, store.GetInt("a.string"))
	assert.False(t, store.GetBool("a.string"))
	assert.Nil(t, store.GetStringSlice("a.bool"))
}

func TestConfigStore_GetInt_NumericForms(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	store.mu.Lock()
	store.data["i64"] = int64(9999)
	store.data["whole"] = float64(20)
	store.data["fraction"] = 2.5
	store.mu.Unlock()

	assert.Equal(t, 9999, store.GetInt("i64"))
	assert.Equal(t, 20, store.GetInt("whole"))
	assert.Equal(t, 0, store.GetInt("fraction"))
}

func TestConfigStore_Persistence_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set(driven.ConfigFormalTone, true))
	require.NoError(t, store1.Set(driven.ConfigHistoryLimit, 50))
	require.NoError(t, store1.Set(driven.ConfigRewriters, []string{"concise"}))
	require.NoError(t, store1.Set(driven.ConfigStorageBackend, "memory"))

	raw, err := os.ReadFile(store1.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[narrative]")
	assert.Contains(t, string(raw), "[history]")
	assert.NotContains(t, string(raw), "narrative.formal_tone")

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.True(t, store2.GetBool(driven.ConfigFormalTone))
	assert.Equal(t, 50, store2.GetInt(driven.ConfigHistoryLimit))
	assert.Equal(t, []string{"concise"}, store2.GetStringSlice(driven.ConfigRewriters))
	assert.Equal(t, "memory", store2.GetString(driven.ConfigStorageBackend))
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[narrative]
formal_tone = true
type = "advisory"
rewriters = ["concise", "detailed"]

[mcp]
requests_per_second = 5
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.True(t, store.GetBool(driven.ConfigFormalTone))
	assert.Equal(t, "advisory", store.GetString(driven.ConfigNarrativeType))
	assert.Equal(t, []string{"concise", "detailed"}, store.GetStringSlice(driven.ConfigRewriters))
	assert.Equal(t, 5, store.GetInt(driven.ConfigMCPRequestsPerSecond))
	assert.Equal(t, []string{
		driven.ConfigMCPRequestsPerSecond,
		driven.ConfigFormalTone,
		driven.ConfigRewriters,
		driven.ConfigNarrativeType,
	}, store.Keys())
}

func TestConfigStore_EmptyAndCommentOnlyFiles(t *testing.T) {
	for name, content := range map[string]string{
		"empty":   "",
		"comment": "# Just a comment\n\n",
	} {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

			store, err := NewConfigStore(tmpDir)
			require.NoError(t, err)

			assert.Empty(t, store.Keys())
		})
	}
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "worker.key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Keys(), 10)
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not valid {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Set_WriteErrorRollsBack(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("kept", "value"))

	// Replace the file with a directory so the write fails
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("another", "value")

	assert.Error(t, err)
	_, ok := store.Get("another")
	assert.False(t, ok)
	assert.Equal(t, "value", store.GetString("kept"))
}

func TestConfigStore_Set_ConflictingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("narrative", "scalar"))

	err = store.Set("narrative.type", "general")

	assert.Error(t, err)
	assert.Equal(t, "scalar", store.GetString("narrative"))
}

func TestConfigStore_SetUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("channel", make(chan int))

	assert.Error(t, err)
}

func TestNewConfigStore_NestedDirectory(t *testing.T) {
	nestedPath := filepath.Join(t.TempDir(), "nested", "deep", "path")

	store, err := NewConfigStore(nestedPath)
	require.NoError(t, err)

	info, err := os.Stat(nestedPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	assert.Equal(t, filepath.Join(nestedPath, "config.toml"), store.Path())
}

func TestUnflattenMap(t *testing.T) {
	nested, err := unflattenMap(map[string]any{
		"a.b.c": 1,
		"a.d":   "x",
		"top":   true,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1},
			"d": "x",
		},
		"top": true,
	}, nested)
	assert.Equal(t, map[string]any{"a.b.c": 1, "a.d": "x", "top": true}, flattenMap(nested, ""))
}
