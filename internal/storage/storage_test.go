package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := newStore(t)

	first, err := store.Save(strings.NewReader("image-bytes"), "house.JPG")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("image-bytes"), "house.JPG")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".jpg"), "extension kept, lowercased: %s", first)

	data, err := os.ReadFile(filepath.Join(store.Dir(), first))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestSaveRejectsTraversalNames(t *testing.T) {
	store := newStore(t)

	_, err := store.Save(strings.NewReader("x"), "../../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestResolve(t *testing.T) {
	store := newStore(t)

	name, err := store.Save(strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	path, err := store.Resolve(name)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Dir(), name), path)

	_, err = store.Resolve("missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Resolve("../outside.png")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestDelete(t *testing.T) {
	store := newStore(t)

	name, err := store.Save(strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	require.NoError(t, store.Delete(name))
	_, err = store.Resolve(name)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an already-missing file is not an error.
	assert.NoError(t, store.Delete(name))

	assert.ErrorIs(t, store.Delete("../outside.png"), ErrInvalidName)
}
