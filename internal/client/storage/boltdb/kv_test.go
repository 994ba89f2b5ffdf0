package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentkeeper/internal/client/storage"
)

// createTestKVStorage создает временное BoltDB хранилище
func createTestKVStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "kv_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestStorage_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestKVStorage(t)
	defer cleanup()

	err := store.Set(ctx, storage.KeyDeviceID, `"device-123"`)
	require.NoError(t, err)

	got, err := store.Get(ctx, storage.KeyDeviceID)
	require.NoError(t, err)
	assert.Equal(t, `"device-123"`, got)
}

func TestStorage_Get_MissingKey(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestKVStorage(t)
	defer cleanup()

	_, err := store.Get(ctx, "contentkeeper:missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStorage_Set_Overwrites(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestKVStorage(t)
	defer cleanup()

	require.NoError(t, store.Set(ctx, storage.KeyQueueConfig, `{"batch_size":10}`))
	require.NoError(t, store.Set(ctx, storage.KeyQueueConfig, `{"batch_size":25}`))

	got, err := store.Get(ctx, storage.KeyQueueConfig)
	require.NoError(t, err)
	assert.Equal(t, `{"batch_size":25}`, got)
}

func TestStorage_Remove(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestKVStorage(t)
	defer cleanup()

	require.NoError(t, store.Set(ctx, storage.KeyOfflineQueue, `{}`))
	require.NoError(t, store.Remove(ctx, storage.KeyOfflineQueue))

	_, err := store.Get(ctx, storage.KeyOfflineQueue)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Удаление отсутствующего ключа не является ошибкой
	assert.NoError(t, store.Remove(ctx, storage.KeyOfflineQueue))
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "kv_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyDeltaChanges, `{"project:1":{}}`))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.Get(ctx, storage.KeyDeltaChanges)
	require.NoError(t, err)
	assert.Equal(t, `{"project:1":{}}`, got)
}

func TestStorage_OperationsAfterClose(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "kv_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Get(ctx, storage.KeyDeviceID)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Set(ctx, storage.KeyDeviceID, `"x"`)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Remove(ctx, storage.KeyDeviceID)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
