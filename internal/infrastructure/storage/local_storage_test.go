package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSave(t *testing.T) {
	t.Run("stores content under a random name keeping the extension", func(t *testing.T) {
		store, err := NewLocalStorage(t.TempDir())
		require.NoError(t, err)

		name, err := store.Save("product photo.PNG", strings.NewReader("image-bytes"))

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, ".png"), "stored name %q should keep a lowercased extension", name)
		assert.Len(t, strings.TrimSuffix(name, ".png"), 16)

		content, err := os.ReadFile(store.FullPath(name))
		require.NoError(t, err)
		assert.Equal(t, "image-bytes", string(content))
	})

	t.Run("two saves of the same original name yield distinct files", func(t *testing.T) {
		store, err := NewLocalStorage(t.TempDir())
		require.NoError(t, err)

		first, err := store.Save("a.jpg", strings.NewReader("one"))
		require.NoError(t, err)
		second, err := store.Save("a.jpg", strings.NewReader("two"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("a name without extension is stored as-is", func(t *testing.T) {
		store, err := NewLocalStorage(t.TempDir())
		require.NoError(t, err)

		name, err := store.Save("README", strings.NewReader("text"))
		require.NoError(t, err)
		assert.NotContains(t, name, ".")
	})
}

func TestLocalStorageRemove(t *testing.T) {
	t.Run("removes a stored file", func(t *testing.T) {
		store, err := NewLocalStorage(t.TempDir())
		require.NoError(t, err)
		name, err := store.Save("a.jpg", strings.NewReader("one"))
		require.NoError(t, err)

		require.NoError(t, store.Remove(name))

		_, err = os.Stat(store.FullPath(name))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("removing a missing or empty name is not an error", func(t *testing.T) {
		store, err := NewLocalStorage(t.TempDir())
		require.NoError(t, err)

		assert.NoError(t, store.Remove("never-existed.jpg"))
		assert.NoError(t, store.Remove(""))
	})

	t.Run("path traversal in the name is neutralized", func(t *testing.T) {
		base := t.TempDir()
		store, err := NewLocalStorage(base)
		require.NoError(t, err)

		outside := filepath.Join(filepath.Dir(base), "victim.txt")
		require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0644))

		require.NoError(t, store.Remove("../victim.txt"))

		_, err = os.Stat(outside)
		assert.NoError(t, err)
	})
}

func TestNewLocalStorage(t *testing.T) {
	t.Run("creates the base directory", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "uploads", "images")

		_, err := NewLocalStorage(base)

		require.NoError(t, err)
		info, err := os.Stat(base)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
