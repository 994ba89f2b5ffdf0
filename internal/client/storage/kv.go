package storage

import "context"

//go:generate moq -out kv_mock.go . KV

// Ключи, под которыми клиент хранит состояние sync-движка.
// Значения - JSON строки.
const (
	KeyDeltaChanges      = "contentkeeper:deltaChanges"
	KeyLastSyncTimestamp = "contentkeeper:lastSyncTimestamp"
	KeyDeviceID          = "contentkeeper:deviceId"
	KeyOfflineQueue      = "contentkeeper:offlineQueue"
	KeyFailedQueue       = "contentkeeper:failedQueue"
	KeyQueueConfig       = "contentkeeper:queueConfig"
	KeySession           = "contentkeeper:session"

	// KeyEntitiesPrefix - префикс для локальных снимков сущностей,
	// полный ключ: KeyEntitiesPrefix + entityType
	KeyEntitiesPrefix = "contentkeeper:entities:"
)

// KV defines interface for durable client key-value persistence
type KV interface {
	// Get retrieves the value stored under key
	// Returns ErrKeyNotFound if the key does not exist
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value
	Set(ctx context.Context, key string, value string) error

	// Remove deletes the key; removing a missing key is not an error
	Remove(ctx context.Context, key string) error

	// Close releases the underlying store
	Close() error
}
