// Package delta отслеживает локальные мутации сущностей между синхронизациями.
// Последовательные правки одной сущности компактируются в одну запись,
// поэтому на сервер уходит минимальный changelog.
package delta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/contentkeeper/internal/checksum"
	"github.com/iudanet/contentkeeper/internal/client/storage"
	"github.com/iudanet/contentkeeper/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service defines interface for the delta change tracker
type Service interface {
	// TrackCreate registers a created entity. Требует entity["id"] (string).
	// Существующая запись для этого ключа перезаписывается.
	TrackCreate(ctx context.Context, entityType string, entity map[string]any) (*models.DeltaChange, error)

	// TrackUpdate registers changed fields of an entity.
	// Повторные update сливаются: поля объединяются, новые значения
	// перекрывают старые по совпадающим полям. Update поверх create
	// остается create с обновленным new_value.
	TrackUpdate(ctx context.Context, entityType, entityID string, fields []string, oldValue, newValue map[string]any) (*models.DeltaChange, error)

	// TrackDelete registers entity deletion. Delete поверх pending create
	// снимает запись целиком (возвращает nil): сущность, созданная и
	// удаленная между синхронизациями, серверу не нужна.
	TrackDelete(ctx context.Context, entityType, entityID string) (*models.DeltaChange, error)

	// GetPendingChanges returns pending changes sorted by timestamp ascending
	GetPendingChanges() []*models.DeltaChange

	// GetChangeCount returns the number of pending changes
	GetChangeCount() int

	// HasPendingChanges reports whether any changes await sync
	HasPendingChanges() bool

	// BuildSyncPayload assembles the outbound sync package:
	// changes + last sync timestamp + device id + checksum списка
	BuildSyncPayload(ctx context.Context) *models.SyncPayload

	// ApplyRemoteChanges reconciles inbound remote changes with local
	// pending ones. Без resolution конфликтующие изменения не применяются
	// и возвращаются в Conflicts.
	ApplyRemoteChanges(ctx context.Context, remote []*models.DeltaChange, res *models.Resolution) (*models.ApplyResult, error)

	// ClearSyncedChanges drops acknowledged changes and advances the
	// last sync timestamp
	ClearSyncedChanges(ctx context.Context, ids []string)

	// ClearAllChanges drops every pending change
	ClearAllChanges(ctx context.Context)

	// ExportChanges returns a debug dump of the pending set
	ExportChanges() []*models.DeltaChange

	// DeviceID returns the stable per-install identifier
	DeviceID() string

	// LastSyncTimestamp returns the time of the last successful sync
	LastSyncTimestamp() time.Time
}

type service struct {
	kv     storage.KV
	logger *slog.Logger

	mu       sync.Mutex
	pending  map[models.EntityKey]*models.DeltaChange
	lastSync time.Time
	deviceID string
}

// NewService создает трекер и загружает сохраненное состояние.
// Поврежденные или отсутствующие данные не являются ошибкой:
// трекер стартует с пустым состоянием.
func NewService(ctx context.Context, kv storage.KV, logger *slog.Logger) Service {
	s := &service{
		kv:      kv,
		logger:  logger,
		pending: make(map[models.EntityKey]*models.DeltaChange),
	}
	s.loadState(ctx)
	return s
}

// loadState читает pending изменения, метку последней синхронизации
// и device id из хранилища
func (s *service) loadState(ctx context.Context) {
	if raw, err := s.kv.Get(ctx, storage.KeyDeltaChanges); err == nil {
		var changes []*models.DeltaChange
		if err := json.Unmarshal([]byte(raw), &changes); err != nil {
			s.logger.Warn("corrupt pending changes, starting empty", "error", err)
		} else {
			for _, c := range changes {
				s.pending[c.Key()] = c
			}
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Warn("failed to load pending changes", "error", err)
	}

	if raw, err := s.kv.Get(ctx, storage.KeyLastSyncTimestamp); err == nil {
		var ts time.Time
		if err := json.Unmarshal([]byte(raw), &ts); err != nil {
			s.logger.Warn("corrupt last sync timestamp, resetting", "error", err)
		} else {
			s.lastSync = ts
		}
	}

	s.deviceID = s.loadOrCreateDeviceID(ctx)
}

// loadOrCreateDeviceID возвращает стабильный идентификатор установки,
// генерируя и сохраняя его при первом запуске
func (s *service) loadOrCreateDeviceID(ctx context.Context) string {
	if raw, err := s.kv.Get(ctx, storage.KeyDeviceID); err == nil {
		var id string
		if err := json.Unmarshal([]byte(raw), &id); err == nil && id != "" {
			return id
		}
		s.logger.Warn("corrupt device id, regenerating")
	}

	id := uuid.NewString()
	data, _ := json.Marshal(id)
	if err := s.kv.Set(ctx, storage.KeyDeviceID, string(data)); err != nil {
		s.logger.Warn("failed to persist device id", "error", err)
	}
	return id
}

// persistLocked сохраняет pending set. Вызывается под s.mu.
// Ошибка хранилища не фатальна: состояние в памяти остается источником истины.
func (s *service) persistLocked(ctx context.Context) {
	changes := s.sortedLocked()
	data, err := json.Marshal(changes)
	if err != nil {
		s.logger.Warn("failed to marshal pending changes", "error", err)
		return
	}
	if err := s.kv.Set(ctx, storage.KeyDeltaChanges, string(data)); err != nil {
		s.logger.Warn("failed to persist pending changes", "error", err)
	}
}

func (s *service) persistLastSyncLocked(ctx context.Context) {
	data, err := json.Marshal(s.lastSync)
	if err != nil {
		s.logger.Warn("failed to marshal last sync timestamp", "error", err)
		return
	}
	if err := s.kv.Set(ctx, storage.KeyLastSyncTimestamp, string(data)); err != nil {
		s.logger.Warn("failed to persist last sync timestamp", "error", err)
	}
}

// sortedLocked возвращает клоны pending изменений по возрастанию timestamp
func (s *service) sortedLocked() []*models.DeltaChange {
	changes := make([]*models.DeltaChange, 0, len(s.pending))
	for _, c := range s.pending {
		changes = append(changes, c.Clone())
	}
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].Timestamp.Before(changes[j].Timestamp)
	})
	return changes
}

func (s *service) TrackCreate(ctx context.Context, entityType string, entity map[string]any) (*models.DeltaChange, error) {
	entityID, ok := entity["id"].(string)
	if !ok || entityID == "" {
		return nil, fmt.Errorf("entity of type %q has no string id", entityType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Новый create вытесняет любую устаревшую запись для этого ключа
	change := &models.DeltaChange{
		ID:         uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		ChangeType: models.ChangeCreate,
		Timestamp:  time.Now(),
		NewValue:   models.MergeValues(nil, entity),
		Checksum:   checksum.Sum(entity),
	}
	s.pending[change.Key()] = change

	s.persistLocked(ctx)
	return change.Clone(), nil
}

func (s *service) TrackUpdate(ctx context.Context, entityType, entityID string, fields []string, oldValue, newValue map[string]any) (*models.DeltaChange, error) {
	if entityID == "" {
		return nil, fmt.Errorf("entity id is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.EntityKey{EntityType: entityType, EntityID: entityID}
	existing, exists := s.pending[key]

	switch {
	case exists && existing.ChangeType == models.ChangeCreate:
		// create доминирует: запись остается create, значение сливается
		existing.NewValue = models.MergeValues(existing.NewValue, newValue)
		existing.Checksum = checksum.Sum(existing.NewValue)

	case exists && existing.ChangeType == models.ChangeUpdate:
		existing.Fields = unionFields(existing.Fields, fields)
		existing.NewValue = models.MergeValues(existing.NewValue, newValue)
		existing.Checksum = checksum.Sum(existing.NewValue)

	default:
		// нет записи либо pending delete - вставляем свежий update
		change := &models.DeltaChange{
			ID:         uuid.NewString(),
			EntityType: entityType,
			EntityID:   entityID,
			ChangeType: models.ChangeUpdate,
			Timestamp:  time.Now(),
			Fields:     unionFields(nil, fields),
			OldValue:   models.MergeValues(nil, oldValue),
			NewValue:   models.MergeValues(nil, newValue),
		}
		change.Checksum = checksum.Sum(change.NewValue)
		s.pending[key] = change
	}

	s.persistLocked(ctx)
	return s.pending[key].Clone(), nil
}

func (s *service) TrackDelete(ctx context.Context, entityType, entityID string) (*models.DeltaChange, error) {
	if entityID == "" {
		return nil, fmt.Errorf("entity id is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.EntityKey{EntityType: entityType, EntityID: entityID}
	existing, exists := s.pending[key]

	if exists && existing.ChangeType == models.ChangeCreate {
		// Созданная и тут же удаленная сущность серверу не нужна
		delete(s.pending, key)
		s.persistLocked(ctx)
		return nil, nil
	}

	change := &models.DeltaChange{
		ID:         uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		ChangeType: models.ChangeDelete,
		Timestamp:  time.Now(),
	}
	if exists {
		// снимок значения на момент удаления
		change.OldValue = models.MergeValues(nil, existing.NewValue)
	}
	s.pending[key] = change

	s.persistLocked(ctx)
	return change.Clone(), nil
}

func (s *service) GetPendingChanges() []*models.DeltaChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

func (s *service) GetChangeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *service) HasPendingChanges() bool {
	return s.GetChangeCount() > 0
}

func (s *service) BuildSyncPayload(ctx context.Context) *models.SyncPayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	changes := s.sortedLocked()
	return &models.SyncPayload{
		Changes:           changes,
		LastSyncTimestamp: s.lastSync,
		DeviceID:          s.deviceID,
		Checksum:          checksum.SumChanges(changes),
	}
}

func (s *service) ApplyRemoteChanges(ctx context.Context, remote []*models.DeltaChange, res *models.Resolution) (*models.ApplyResult, error) {
	if res != nil {
		switch res.Strategy {
		case models.StrategyLocal, models.StrategyRemote, models.StrategyMerge, models.StrategyManual:
		default:
			return nil, fmt.Errorf("unknown conflict strategy %q", res.Strategy)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := &models.ApplyResult{
		Applied:   []*models.DeltaChange{},
		Conflicts: []*models.DeltaChange{},
	}
	mutated := false

	for _, rc := range remote {
		local, exists := s.pending[rc.Key()]
		if !exists {
			// нет локального pending - remote применяется как есть
			result.Applied = append(result.Applied, rc.Clone())
			continue
		}

		if res == nil {
			result.Conflicts = append(result.Conflicts, rc.Clone())
			continue
		}

		switch res.Strategy {
		case models.StrategyLocal:
			// локальное значение побеждает, remote отбрасывается
			resolved := rc.Clone()
			resolved.NewValue = models.MergeValues(nil, local.NewValue)
			resolved.Checksum = checksum.Sum(resolved.NewValue)
			result.Applied = append(result.Applied, resolved)

		case models.StrategyRemote:
			// remote вытесняет локальное pending изменение
			delete(s.pending, rc.Key())
			mutated = true
			result.Applied = append(result.Applied, rc.Clone())

		case models.StrategyMerge:
			var merged map[string]any
			if res.Resolver != nil {
				merged = res.Resolver(local.Clone(), rc.Clone())
			} else {
				// локальные поля поверх remote
				merged = models.MergeValues(rc.NewValue, local.NewValue)
			}
			resolved := rc.Clone()
			resolved.NewValue = merged
			resolved.Checksum = checksum.Sum(merged)
			result.Applied = append(result.Applied, resolved)

		case models.StrategyManual:
			result.Conflicts = append(result.Conflicts, rc.Clone())
		}
	}

	if mutated {
		s.persistLocked(ctx)
	}
	return result, nil
}

func (s *service) ClearSyncedChanges(ctx context.Context, ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acked := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		acked[id] = struct{}{}
	}
	for key, change := range s.pending {
		if _, ok := acked[change.ID]; ok {
			delete(s.pending, key)
		}
	}

	s.lastSync = time.Now()
	s.persistLocked(ctx)
	s.persistLastSyncLocked(ctx)
}

func (s *service) ClearAllChanges(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = make(map[models.EntityKey]*models.DeltaChange)
	s.persistLocked(ctx)
}

func (s *service) ExportChanges() []*models.DeltaChange {
	return s.GetPendingChanges()
}

func (s *service) DeviceID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deviceID
}

func (s *service) LastSyncTimestamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSync
}

// unionFields объединяет списки полей без дубликатов, сохраняя порядок
func unionFields(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, f := range existing {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	for _, f := range incoming {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
