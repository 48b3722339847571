package skumap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olxsync/internal/skumap"
)

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sku_map.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("SkipsMalformedLines", func(t *testing.T) {
		path := writeMap(t, "NB-100 5501\n\nmalformed\nNB-200 5502\n")

		store, err := skumap.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, store.Len())

		id, ok := store.Get("NB-100")
		require.True(t, ok)
		assert.Equal(t, "5501", id)

		_, ok = store.Get("malformed")
		assert.False(t, ok)
	})

	t.Run("MissingFileIsFatal", func(t *testing.T) {
		_, err := skumap.Load(filepath.Join(t.TempDir(), "nope.log"))
		require.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeMap(t, "NB-100 5501\n")

	store, err := skumap.Load(path)
	require.NoError(t, err)

	store.Put("NB-300", "5503")
	require.NoError(t, store.Save())

	reloaded, err := skumap.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())

	id, ok := reloaded.Get("NB-300")
	require.True(t, ok)
	assert.Equal(t, "5503", id)

	id, ok = reloaded.Get("NB-100")
	require.True(t, ok)
	assert.Equal(t, "5501", id)
}
