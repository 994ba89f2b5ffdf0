package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentkeeper/internal/checksum"
	"github.com/iudanet/contentkeeper/internal/models"
)

func TestChangeStorage_SaveChange_Insert(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(ctx, t, s)
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	record := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-a",
		EntityType: "project",
		EntityID:   "p1",
		ChangeType: models.ChangeCreate,
		NewValue:   map[string]any{"name": "Blog", "status": "draft"},
		Checksum:   checksum.Sum(map[string]any{"name": "Blog", "status": "draft"}),
		Timestamp:  base,
		ReceivedAt: base.Add(time.Second),
	}

	applied, err := s.SaveChange(ctx, record)
	require.NoError(t, err)
	assert.True(t, applied)

	records, err := s.GetChangesSince(ctx, userID, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, records, 1)

	stored := records[0]
	assert.Equal(t, record.ID, stored.ID)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, "device-a", stored.DeviceID)
	assert.Equal(t, "project", stored.EntityType)
	assert.Equal(t, "p1", stored.EntityID)
	assert.Equal(t, models.ChangeCreate, stored.ChangeType)
	assert.Equal(t, record.NewValue, stored.NewValue)
	assert.Equal(t, record.Checksum, stored.Checksum)
	assert.True(t, stored.Timestamp.Equal(base))
}

func TestChangeStorage_SaveChange_RedeliverySameID(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(ctx, t, s)
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	record := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-a",
		EntityType: "project",
		EntityID:   "p1",
		ChangeType: models.ChangeCreate,
		NewValue:   map[string]any{"name": "Blog"},
		Timestamp:  base,
		ReceivedAt: base,
	}

	applied, err := s.SaveChange(ctx, record)
	require.NoError(t, err)
	assert.True(t, applied)

	// Повторная доставка того же изменения: replay очереди + полный sync
	applied, err = s.SaveChange(ctx, record)
	require.NoError(t, err)
	assert.True(t, applied)

	count, err := s.CountUserChanges(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestChangeStorage_SaveChange_UpdateOverCreateKeepsCreate(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(ctx, t, s)
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	create := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-a",
		EntityType: "project",
		EntityID:   "p1",
		ChangeType: models.ChangeCreate,
		NewValue:   map[string]any{"name": "Blog", "status": "draft"},
		Timestamp:  base,
		ReceivedAt: base,
	}
	applied, err := s.SaveChange(ctx, create)
	require.NoError(t, err)
	require.True(t, applied)

	update := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-b",
		EntityType: "project",
		EntityID:   "p1",
		ChangeType: models.ChangeUpdate,
		Fields:     []string{"status"},
		NewValue:   map[string]any{"status": "active"},
		Timestamp:  base.Add(time.Minute),
		ReceivedAt: base.Add(time.Minute),
	}
	applied, err = s.SaveChange(ctx, update)
	require.NoError(t, err)
	assert.True(t, applied)

	records, err := s.GetChangesSince(ctx, userID, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Create остается create с объединенным значением: устройство,
	// выполняющее первый pull, получает полную сущность
	stored := records[0]
	assert.Equal(t, update.ID, stored.ID)
	assert.Equal(t, "device-b", stored.DeviceID)
	assert.Equal(t, models.ChangeCreate, stored.ChangeType)
	assert.Nil(t, stored.Fields)
	assert.Equal(t, map[string]any{"name": "Blog", "status": "active"}, stored.NewValue)
	assert.Equal(t, checksum.Sum(map[string]any{"name": "Blog", "status": "active"}), stored.Checksum)
	assert.True(t, stored.Timestamp.Equal(update.Timestamp))
}

func TestChangeStorage_SaveChange_OlderRejected(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(ctx, t, s)
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	newer := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-a",
		EntityType: "project",
		EntityID:   "p1",
		ChangeType: models.ChangeCreate,
		NewValue:   map[string]any{"name": "Blog"},
		Timestamp:  base.Add(time.Hour),
		ReceivedAt: base.Add(time.Hour),
	}
	applied, err := s.SaveChange(ctx, newer)
	require.NoError(t, err)
	require.True(t, applied)

	older := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-b",
		EntityType: "project",
		EntityID:   "p1",
		ChangeType: models.ChangeUpdate,
		Fields:     []string{"name"},
		NewValue:   map[string]any{"name": "Stale"},
		Timestamp:  base,
		ReceivedAt: base.Add(2 * time.Hour),
	}
	applied, err = s.SaveChange(ctx, older)
	require.NoError(t, err)
	assert.False(t, applied)

	// Хранимая запись не изменилась
	records, err := s.GetChangesSince(ctx, userID, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, map[string]any{"name": "Blog"}, records[0].NewValue)
}

func TestChangeStorage_SaveChange_EqualTimestampDeviceTiebreak(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(ctx, t, s)
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	first := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-b",
		EntityType: "element",
		EntityID:   "e1",
		ChangeType: models.ChangeCreate,
		NewValue:   map[string]any{"title": "From B"},
		Timestamp:  base,
		ReceivedAt: base,
	}
	applied, err := s.SaveChange(ctx, first)
	require.NoError(t, err)
	require.True(t, applied)

	// Тот же timestamp, меньший DeviceID - проигрывает
	loser := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-a",
		EntityType: "element",
		EntityID:   "e1",
		ChangeType: models.ChangeCreate,
		NewValue:   map[string]any{"title": "From A"},
		Timestamp:  base,
		ReceivedAt: base,
	}
	applied, err = s.SaveChange(ctx, loser)
	require.NoError(t, err)
	assert.False(t, applied)

	// Тот же timestamp, больший DeviceID - выигрывает
	winner := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-c",
		EntityType: "element",
		EntityID:   "e1",
		ChangeType: models.ChangeCreate,
		NewValue:   map[string]any{"title": "From C"},
		Timestamp:  base,
		ReceivedAt: base,
	}
	applied, err = s.SaveChange(ctx, winner)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestChangeStorage_SaveChange_UpdateOverUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(ctx, t, s)
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	first := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-a",
		EntityType: "template",
		EntityID:   "tpl-1",
		ChangeType: models.ChangeUpdate,
		Fields:     []string{"name"},
		NewValue:   map[string]any{"name": "Post"},
		Timestamp:  base,
		ReceivedAt: base,
	}
	applied, err := s.SaveChange(ctx, first)
	require.NoError(t, err)
	require.True(t, applied)

	second := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-b",
		EntityType: "template",
		EntityID:   "tpl-1",
		ChangeType: models.ChangeUpdate,
		Fields:     []string{"schema"},
		NewValue:   map[string]any{"schema": "{}"},
		Timestamp:  base.Add(time.Second),
		ReceivedAt: base.Add(time.Second),
	}
	applied, err = s.SaveChange(ctx, second)
	require.NoError(t, err)
	assert.True(t, applied)

	records, err := s.GetChangesSince(ctx, userID, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, records, 1)

	stored := records[0]
	assert.Equal(t, models.ChangeUpdate, stored.ChangeType)
	assert.Equal(t, []string{"name", "schema"}, stored.Fields)
	assert.Equal(t, map[string]any{"name": "Post", "schema": "{}"}, stored.NewValue)
	assert.Equal(t, checksum.Sum(map[string]any{"name": "Post", "schema": "{}"}), stored.Checksum)
}

func TestChangeStorage_SaveChange_DeleteReplacesCreate(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(ctx, t, s)
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	create := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-a",
		EntityType: "project",
		EntityID:   "p1",
		ChangeType: models.ChangeCreate,
		NewValue:   map[string]any{"name": "Blog"},
		Timestamp:  base,
		ReceivedAt: base,
	}
	applied, err := s.SaveChange(ctx, create)
	require.NoError(t, err)
	require.True(t, applied)

	del := &models.ChangeRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		DeviceID:   "device-a",
		EntityType: "project",
		EntityID:   "p1",
		ChangeType: models.ChangeDelete,
		Timestamp:  base.Add(time.Minute),
		ReceivedAt: base.Add(time.Minute),
	}
	applied, err = s.SaveChange(ctx, del)
	require.NoError(t, err)
	assert.True(t, applied)

	records, err := s.GetChangesSince(ctx, userID, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Delete хранится: другие устройства должны узнать об удалении
	stored := records[0]
	assert.Equal(t, models.ChangeDelete, stored.ChangeType)
	assert.Nil(t, stored.NewValue)
	assert.Nil(t, stored.Fields)
}

func TestChangeStorage_GetChangesSince(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(ctx, t, s)
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	records := []*models.ChangeRecord{
		{
			ID:         uuid.New().String(),
			UserID:     userID,
			DeviceID:   "device-a",
			EntityType: "project",
			EntityID:   "p1",
			ChangeType: models.ChangeCreate,
			NewValue:   map[string]any{"name": "First"},
			Timestamp:  base,
			ReceivedAt: base,
		},
		{
			ID:         uuid.New().String(),
			UserID:     userID,
			DeviceID:   "device-b",
			EntityType: "project",
			EntityID:   "p2",
			ChangeType: models.ChangeCreate,
			NewValue:   map[string]any{"name": "Second"},
			Timestamp:  base.Add(time.Minute),
			ReceivedAt: base.Add(time.Minute),
		},
		{
			ID:         uuid.New().String(),
			UserID:     userID,
			DeviceID:   "device-a",
			EntityType: "element",
			EntityID:   "e1",
			ChangeType: models.ChangeCreate,
			NewValue:   map[string]any{"title": "Third"},
			Timestamp:  base.Add(2 * time.Minute),
			ReceivedAt: base.Add(2 * time.Minute),
		},
	}
	for _, record := range records {
		applied, err := s.SaveChange(ctx, record)
		require.NoError(t, err)
		require.True(t, applied)
	}

	t.Run("all changes from zero time", func(t *testing.T) {
		got, err := s.GetChangesSince(ctx, userID, time.Time{}, "")
		require.NoError(t, err)
		require.Len(t, got, 3)
		// Упорядочены по timestamp
		assert.Equal(t, "p1", got[0].EntityID)
		assert.Equal(t, "p2", got[1].EntityID)
		assert.Equal(t, "e1", got[2].EntityID)
	})

	t.Run("since filters strictly", func(t *testing.T) {
		got, err := s.GetChangesSince(ctx, userID, base, "")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "p2", got[0].EntityID)
		assert.Equal(t, "e1", got[1].EntityID)
	})

	t.Run("excludes requesting device", func(t *testing.T) {
		got, err := s.GetChangesSince(ctx, userID, time.Time{}, "device-a")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "device-b", got[0].DeviceID)
	})

	t.Run("nothing newer", func(t *testing.T) {
		got, err := s.GetChangesSince(ctx, userID, base.Add(time.Hour), "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestChangeStorage_GetChangesSince_UserIsolation(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user1 := createTestUser(ctx, t, s)
	user2 := createTestUser(ctx, t, s)
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	for i, userID := range []string{user1, user2} {
		record := &models.ChangeRecord{
			ID:         uuid.New().String(),
			UserID:     userID,
			DeviceID:   "device-a",
			EntityType: "project",
			EntityID:   "p1",
			ChangeType: models.ChangeCreate,
			NewValue:   map[string]any{"owner": i},
			Timestamp:  base,
			ReceivedAt: base,
		}
		applied, err := s.SaveChange(ctx, record)
		require.NoError(t, err)
		require.True(t, applied)
	}

	got, err := s.GetChangesSince(ctx, user1, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, user1, got[0].UserID)
}

func TestChangeStorage_CountUserChanges(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(ctx, t, s)
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	count, err := s.CountUserChanges(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for i := 0; i < 3; i++ {
		record := &models.ChangeRecord{
			ID:         uuid.New().String(),
			UserID:     userID,
			DeviceID:   "device-a",
			EntityType: "project",
			EntityID:   uuid.New().String(),
			ChangeType: models.ChangeCreate,
			NewValue:   map[string]any{"n": i},
			Timestamp:  base.Add(time.Duration(i) * time.Second),
			ReceivedAt: base,
		}
		applied, err := s.SaveChange(ctx, record)
		require.NoError(t, err)
		require.True(t, applied)
	}

	count, err = s.CountUserChanges(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

// setupTestStorage создает in-memory хранилище для тестов
func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestUser(ctx context.Context, t *testing.T, s *Storage) string {
	t.Helper()

	userID := uuid.New().String()
	user := &models.User{
		ID:           userID,
		Username:     "testuser_" + userID[:8],
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	return userID
}
