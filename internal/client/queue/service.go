// Package queue реализует durable очередь отложенных действий.
// Элементы обрабатываются с учетом приоритета, зависимостей и retry-лимитов,
// обработка запускается только при наличии связи с сервером.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iudanet/contentkeeper/internal/client/delta"
	"github.com/iudanet/contentkeeper/internal/client/netmon"
	"github.com/iudanet/contentkeeper/internal/client/storage"
	"github.com/iudanet/contentkeeper/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Executor выполняет реальный side effect элемента очереди
// (обычно вызов API). Ошибка означает retryable неудачу.
type Executor func(ctx context.Context, item *models.QueueItem) error

// EnqueueOptions задает необязательные параметры постановки в очередь
type EnqueueOptions struct {
	Priority     models.Priority
	Dependencies []string
}

// Service defines interface for the offline action queue
type Service interface {
	// Enqueue ставит действие в очередь и пробрасывает мутацию в delta
	// трекер. Возвращает id нового элемента. Сбой персистентности не
	// является ошибкой: id возвращается всегда.
	Enqueue(ctx context.Context, action models.ChangeType, entityType, entityID string, payload map[string]any, opts *EnqueueOptions) (string, error)

	// ProcessQueue выполняет до batchSize подходящих элементов.
	// Возвращает пустой результат, если обработка уже идет или нет связи.
	ProcessQueue(ctx context.Context) (*models.ProcessResult, error)

	// RetryFailed возвращает все failed элементы в pending
	// со сброшенным retry счетчиком
	RetryFailed(ctx context.Context)

	// ClearItem убирает элемент из той map, где он находится
	ClearItem(ctx context.Context, id string)

	// ClearAll убирает все элементы из обеих map
	ClearAll(ctx context.Context)

	// GetStatus returns a snapshot of queue state
	GetStatus(ctx context.Context) *models.QueueStatus

	// GetConfig returns a deep copy of the current configuration
	GetConfig() models.QueueConfig

	// UpdateConfig merges non-nil patch fields, persists and returns
	// the resulting configuration
	UpdateConfig(ctx context.Context, patch models.QueueConfigPatch) models.QueueConfig

	// Subscribe registers a listener invoked with the pending items
	// after every mutating operation. Возвращает функцию отписки.
	Subscribe(fn func(items []*models.QueueItem)) (unsubscribe func())

	// ExportQueue returns a debug dump of queue, failed and config
	ExportQueue() *models.QueueExport

	// Close отписывается от монитора связи
	Close()
}

type service struct {
	kv       storage.KV
	tracker  delta.Service
	monitor  netmon.Monitor
	executor Executor
	logger   *slog.Logger

	mu         sync.Mutex
	pending    map[string]*models.QueueItem
	failed     map[string]*models.QueueItem
	config     models.QueueConfig
	processing bool
	subs       map[int]func(items []*models.QueueItem)
	nextSubID  int

	unsubMonitor func()
}

// NewService создает очередь, загружает сохраненное состояние и
// подписывается на монитор связи: переход в online автоматически
// запускает обработку.
func NewService(ctx context.Context, kv storage.KV, tracker delta.Service, monitor netmon.Monitor, executor Executor, logger *slog.Logger) Service {
	s := &service{
		kv:       kv,
		tracker:  tracker,
		monitor:  monitor,
		executor: executor,
		logger:   logger,
		pending:  make(map[string]*models.QueueItem),
		failed:   make(map[string]*models.QueueItem),
		config:   models.DefaultQueueConfig(),
		subs:     make(map[int]func(items []*models.QueueItem)),
	}
	s.loadState(ctx)

	s.unsubMonitor = monitor.Subscribe(func(online bool) {
		if !online {
			return
		}
		// снова в сети - пробуем разгрести накопившееся
		go func() {
			if _, err := s.ProcessQueue(context.Background()); err != nil {
				s.logger.Warn("queue processing after reconnect failed", "error", err)
			}
		}()
	})

	return s
}

func (s *service) loadState(ctx context.Context) {
	s.pending = s.loadItems(ctx, storage.KeyOfflineQueue)
	s.failed = s.loadItems(ctx, storage.KeyFailedQueue)

	raw, err := s.kv.Get(ctx, storage.KeyQueueConfig)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Warn("failed to load queue config, using defaults", "error", err)
		}
		return
	}
	var cfg models.QueueConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		s.logger.Warn("corrupt queue config, using defaults", "error", err)
		return
	}
	s.config = cfg
}

// loadItems читает map элементов; поврежденные данные дают пустую map
func (s *service) loadItems(ctx context.Context, key string) map[string]*models.QueueItem {
	items := make(map[string]*models.QueueItem)

	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Warn("failed to load queue items", "key", key, "error", err)
		}
		return items
	}

	var list []*models.QueueItem
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.Warn("corrupt queue items, starting empty", "key", key, "error", err)
		return items
	}
	for _, item := range list {
		items[item.ID] = item
	}
	return items
}

// persistItemsLocked сохраняет map под ключом. Вызывается под s.mu.
// Ошибка хранилища логируется и не распространяется.
func (s *service) persistItemsLocked(ctx context.Context, key string, items map[string]*models.QueueItem) {
	list := sortedByTimestamp(items)
	data, err := json.Marshal(list)
	if err != nil {
		s.logger.Warn("failed to marshal queue items", "key", key, "error", err)
		return
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		s.logger.Warn("failed to persist queue items", "key", key, "error", err)
	}
}

func (s *service) persistConfigLocked(ctx context.Context) {
	data, err := json.Marshal(s.config)
	if err != nil {
		s.logger.Warn("failed to marshal queue config", "error", err)
		return
	}
	if err := s.kv.Set(ctx, storage.KeyQueueConfig, string(data)); err != nil {
		s.logger.Warn("failed to persist queue config", "error", err)
	}
}

// snapshotLocked возвращает подписчиков и текущий pending список
// для уведомления вне блокировки
func (s *service) snapshotLocked() ([]func(items []*models.QueueItem), []*models.QueueItem) {
	subs := make([]func(items []*models.QueueItem), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs, sortedByTimestamp(s.pending)
}

func notify(subs []func(items []*models.QueueItem), items []*models.QueueItem) {
	for _, fn := range subs {
		fn(items)
	}
}

func (s *service) Enqueue(ctx context.Context, action models.ChangeType, entityType, entityID string, payload map[string]any, opts *EnqueueOptions) (string, error) {
	if !action.Valid() {
		return "", fmt.Errorf("unknown queue action %q", action)
	}

	priority := models.PriorityNormal
	var dependencies []string
	if opts != nil {
		if opts.Priority != "" {
			if !opts.Priority.Valid() {
				return "", fmt.Errorf("unknown priority %q", opts.Priority)
			}
			priority = opts.Priority
		}
		dependencies = append([]string(nil), opts.Dependencies...)
	}

	// Пробрасываем мутацию в трекер. Его отказ не блокирует очередь:
	// действие все равно будет выполнено исполнителем.
	s.forwardToTracker(ctx, action, entityType, entityID, payload)

	s.mu.Lock()
	item := &models.QueueItem{
		ID:           ulid.Make().String(),
		Action:       action,
		EntityType:   entityType,
		EntityID:     entityID,
		Payload:      models.MergeValues(nil, payload),
		Timestamp:    time.Now(),
		MaxRetries:   s.config.MaxRetries,
		Priority:     priority,
		Dependencies: dependencies,
	}
	s.pending[item.ID] = item
	s.persistItemsLocked(ctx, storage.KeyOfflineQueue, s.pending)
	subs, items := s.snapshotLocked()
	s.mu.Unlock()

	notify(subs, items)
	return item.ID, nil
}

func (s *service) forwardToTracker(ctx context.Context, action models.ChangeType, entityType, entityID string, payload map[string]any) {
	var err error
	switch action {
	case models.ChangeCreate:
		_, err = s.tracker.TrackCreate(ctx, entityType, payload)
	case models.ChangeUpdate:
		fields := make([]string, 0, len(payload))
		for f := range payload {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		_, err = s.tracker.TrackUpdate(ctx, entityType, entityID, fields, nil, payload)
	case models.ChangeDelete:
		_, err = s.tracker.TrackDelete(ctx, entityType, entityID)
	}
	if err != nil {
		s.logger.Warn("failed to forward mutation to delta tracker",
			"action", action, "entity_type", entityType, "entity_id", entityID, "error", err)
	}
}

func (s *service) ProcessQueue(ctx context.Context) (*models.ProcessResult, error) {
	if s.executor == nil {
		return nil, fmt.Errorf("queue executor is not configured")
	}

	// Guard от повторного входа: параллельный вызов сразу получает
	// пустой результат, не дожидаясь первого.
	s.mu.Lock()
	if s.processing {
		s.mu.Unlock()
		return models.EmptyProcessResult(), nil
	}
	s.processing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.processing = false
		s.mu.Unlock()
	}()

	// Без связи обработка инертна: это не ошибка
	if !s.monitor.IsOnline(ctx) {
		return models.EmptyProcessResult(), nil
	}

	s.mu.Lock()
	batch := s.eligibleBatchLocked()
	s.mu.Unlock()

	result := models.EmptyProcessResult()
	for _, item := range batch {
		err := s.executor(ctx, item.Clone())

		s.mu.Lock()
		current, ok := s.pending[item.ID]
		if !ok {
			// элемент сняли (ClearItem/ClearAll) пока выполнялось действие
			s.mu.Unlock()
			continue
		}
		if err == nil {
			delete(s.pending, item.ID)
			result.Successful = append(result.Successful, current.Clone())
		} else {
			current.RetryCount++
			current.Error = err.Error()
			if current.RetryCount >= current.MaxRetries {
				// лимит исчерпан - элемент переходит в failed
				delete(s.pending, item.ID)
				s.failed[current.ID] = current
				result.Failed = append(result.Failed, current.Clone())
			} else {
				result.Retrying = append(result.Retrying, current.Clone())
			}
		}
		s.mu.Unlock()
	}

	// Сохраняем и уведомляем независимо от исхода
	s.mu.Lock()
	s.persistItemsLocked(ctx, storage.KeyOfflineQueue, s.pending)
	s.persistItemsLocked(ctx, storage.KeyFailedQueue, s.failed)
	subs, items := s.snapshotLocked()
	s.mu.Unlock()
	notify(subs, items)

	return result, nil
}

// eligibleBatchLocked выбирает до batchSize элементов, у которых все
// зависимости уже покинули pending, в порядке приоритет-потом-время.
// Элемент с невыполнимой зависимостью просто не попадает в batch
// и не блокирует остальные.
func (s *service) eligibleBatchLocked() []*models.QueueItem {
	eligible := make([]*models.QueueItem, 0, len(s.pending))
	for _, item := range s.pending {
		if s.dependenciesMetLocked(item) {
			eligible = append(eligible, item)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		wi := s.config.Weight(eligible[i].Priority)
		wj := s.config.Weight(eligible[j].Priority)
		if wi != wj {
			return wi > wj
		}
		return eligible[i].Timestamp.Before(eligible[j].Timestamp)
	})

	batchSize := s.config.BatchSize
	if batchSize > 0 && len(eligible) > batchSize {
		eligible = eligible[:batchSize]
	}
	return eligible
}

func (s *service) dependenciesMetLocked(item *models.QueueItem) bool {
	for _, dep := range item.Dependencies {
		if _, waiting := s.pending[dep]; waiting {
			return false
		}
	}
	return true
}

func (s *service) RetryFailed(ctx context.Context) {
	s.mu.Lock()
	for id, item := range s.failed {
		item.RetryCount = 0
		item.Error = ""
		s.pending[id] = item
		delete(s.failed, id)
	}
	s.persistItemsLocked(ctx, storage.KeyOfflineQueue, s.pending)
	s.persistItemsLocked(ctx, storage.KeyFailedQueue, s.failed)
	subs, items := s.snapshotLocked()
	s.mu.Unlock()
	notify(subs, items)
}

func (s *service) ClearItem(ctx context.Context, id string) {
	s.mu.Lock()
	delete(s.pending, id)
	delete(s.failed, id)
	s.persistItemsLocked(ctx, storage.KeyOfflineQueue, s.pending)
	s.persistItemsLocked(ctx, storage.KeyFailedQueue, s.failed)
	subs, items := s.snapshotLocked()
	s.mu.Unlock()
	notify(subs, items)
}

func (s *service) ClearAll(ctx context.Context) {
	s.mu.Lock()
	s.pending = make(map[string]*models.QueueItem)
	s.failed = make(map[string]*models.QueueItem)
	s.persistItemsLocked(ctx, storage.KeyOfflineQueue, s.pending)
	s.persistItemsLocked(ctx, storage.KeyFailedQueue, s.failed)
	subs, items := s.snapshotLocked()
	s.mu.Unlock()
	notify(subs, items)
}

func (s *service) GetStatus(ctx context.Context) *models.QueueStatus {
	online := s.monitor.IsOnline(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.QueueStatus{
		Pending:     len(s.pending),
		Failed:      len(s.failed),
		IsOnline:    online,
		Items:       sortedByTimestamp(s.pending),
		FailedItems: sortedByTimestamp(s.failed),
	}
}

func (s *service) GetConfig() models.QueueConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.Clone()
}

func (s *service) UpdateConfig(ctx context.Context, patch models.QueueConfigPatch) models.QueueConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = patch.Apply(s.config)
	s.persistConfigLocked(ctx)
	return s.config.Clone()
}

func (s *service) Subscribe(fn func(items []*models.QueueItem)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *service) ExportQueue() *models.QueueExport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.QueueExport{
		Queue:  sortedByTimestamp(s.pending),
		Failed: sortedByTimestamp(s.failed),
		Config: s.config.Clone(),
	}
}

func (s *service) Close() {
	if s.unsubMonitor != nil {
		s.unsubMonitor()
	}
}

// sortedByTimestamp возвращает клоны элементов по возрастанию времени.
// ULID растет вместе со временем создания, поэтому id решает ничьи.
func sortedByTimestamp(items map[string]*models.QueueItem) []*models.QueueItem {
	list := make([]*models.QueueItem, 0, len(items))
	for _, item := range items {
		list = append(list, item.Clone())
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].ID < list[j].ID
		}
		return list[i].Timestamp.Before(list[j].Timestamp)
	})
	return list
}
