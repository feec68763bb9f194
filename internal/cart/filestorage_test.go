package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/domain"
)

func newFileStorage(t *testing.T) (*FileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := NewFileStorage(dir, zap.NewNop())
	require.NoError(t, err)
	return storage, dir
}

func TestFileStorageRoundTrip(t *testing.T) {
	storage, _ := newFileStorage(t)

	cart := domain.Cart{
		Entries: []domain.CartEntry{
			{Product: testProduct("p1", 100000, 5), Quantity: 3},
			{Product: testProduct("p2", 45000, 2), Quantity: 1},
		},
		TotalItemCount: 4,
		TotalPrice:     345000,
	}
	require.NoError(t, storage.Save(cart))

	loaded, err := storage.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, cart.Entries, loaded.Entries)
	// Totals come back zero: they are never persisted, always recomputed.
	assert.Equal(t, 0, loaded.TotalItemCount)
	assert.Equal(t, int64(0), loaded.TotalPrice)
}

func TestFileStorageTotalsNotWritten(t *testing.T) {
	storage, dir := newFileStorage(t)

	cart := domain.Cart{
		Entries:        []domain.CartEntry{{Product: testProduct("p1", 100000, 5), Quantity: 3}},
		TotalItemCount: 3,
		TotalPrice:     300000,
	}
	require.NoError(t, storage.Save(cart))

	data, err := os.ReadFile(filepath.Join(dir, snapshotFile))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "entries")
	assert.NotContains(t, raw, "totalItemCount")
	assert.NotContains(t, raw, "totalPrice")
}

func TestFileStorageMissingFile(t *testing.T) {
	storage, _ := newFileStorage(t)

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStorageCorruptedSnapshot(t *testing.T) {
	storage, dir := newFileStorage(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, snapshotFile), []byte("{not json"), 0o644))

	_, err := storage.Load()
	assert.Error(t, err)

	// The store turns that error into an empty cart, not a failure.
	store := NewStore(storage, zap.NewNop())
	assert.Empty(t, store.Cart().Entries)
}

func TestFileStorageRejectsInvalidEntries(t *testing.T) {
	storage, dir := newFileStorage(t)

	for _, body := range []string{
		`{"entries":[{"product":{"id":"","name":"x","price":100,"stockAvailable":5},"quantity":1}]}`,
		`{"entries":[{"product":{"id":"p1","name":"x","price":100,"stockAvailable":5},"quantity":0}]}`,
		`{"entries":[{"product":{"id":"p1","name":"x","price":-1,"stockAvailable":5},"quantity":1}]}`,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, snapshotFile), []byte(body), 0o644))
		_, err := storage.Load()
		assert.Error(t, err, "snapshot %s should not load", body)
	}
}

func TestFileStorageSurvivesSessions(t *testing.T) {
	dir := t.TempDir()

	storage, err := NewFileStorage(dir, zap.NewNop())
	require.NoError(t, err)
	first := NewStore(storage, zap.NewNop())
	first.AddItem(testProduct("p1", 100000, 5), 3)

	// Fresh storage over the same directory, as after a restart.
	reopened, err := NewFileStorage(dir, zap.NewNop())
	require.NoError(t, err)
	second := NewStore(reopened, zap.NewNop())
	cart := second.Cart()

	require.Len(t, cart.Entries, 1)
	assert.Equal(t, 3, cart.Entries[0].Quantity)
	assert.Equal(t, int64(300000), cart.TotalPrice)
}

func TestFileStorageReset(t *testing.T) {
	storage, _ := newFileStorage(t)

	require.NoError(t, storage.Save(domain.Cart{
		Entries: []domain.CartEntry{{Product: testProduct("p1", 100000, 5), Quantity: 1}},
	}))
	require.NoError(t, storage.Reset())
	require.NoError(t, storage.Reset()) // idempotent

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
