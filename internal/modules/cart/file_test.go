package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileSnapshotRoundTrip(t *testing.T) {
	store, err := NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	saved := []LineItem{craneLine(2, "gold-foil"), craneLine(1)}
	require.NoError(t, store.Save("imagiro-cart", saved))

	loaded, ok, err := store.Load("imagiro-cart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, loaded, 2)
	assert.Equal(t, saved[0].ID, loaded[0].ID)
	assert.Equal(t, saved[0].Quantity, loaded[0].Quantity)
	assert.Equal(t, "59.98", loaded[0].total().StringFixed(2))
	assert.True(t, loaded[0].Materials[1].Selected)
	assert.True(t, saved[1].sameSelection(loaded[1]))
}

func TestFileSnapshotMissingKey(t *testing.T) {
	store, err := NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Load("imagiro-cart")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileSnapshotOverwritesInFull(t *testing.T) {
	store, err := NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("imagiro-cart", []LineItem{craneLine(1), craneLine(2, "gold-foil")}))
	require.NoError(t, store.Save("imagiro-cart", []LineItem{craneLine(5)}))

	loaded, ok, err := store.Load("imagiro-cart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, loaded, 1)
	assert.Equal(t, 5, loaded[0].Quantity)
}

func TestFileSnapshotRejectsTraversalKeys(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "data")
	store, err := NewFileSnapshotStore(dir)
	require.NoError(t, err)

	for _, key := range []string{
		"",
		"imagiro-cart-/../../evil",
		"../outside",
		`imagiro-cart-..\outside`,
		"a/b",
	} {
		assert.Error(t, store.Save(key, []LineItem{craneLine(1)}), "key %q", key)
		_, _, err := store.Load(key)
		assert.Error(t, err, "key %q", key)
	}

	// nothing may land outside the snapshot dir
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data", entries[0].Name())
}

func TestCorruptSnapshotFallsBackToEmptyCart(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imagiro-cart.json"), []byte("{not json"), 0o644))

	snaps, err := NewFileSnapshotStore(dir)
	require.NoError(t, err)

	_, _, err = snaps.Load("imagiro-cart")
	require.Error(t, err)

	// the store swallows the failure and starts empty
	store := NewStore("imagiro-cart", snaps, &recordingNotifier{}, zap.NewNop())
	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
}
