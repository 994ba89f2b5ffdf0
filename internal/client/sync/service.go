// Package sync выполняет round-trip синхронизацию с сервером:
// push накопленных дельта-изменений, pull изменений других устройств,
// применение полученного через Delta Change Tracker.
package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/contentkeeper/internal/checksum"
	httpClient "github.com/iudanet/contentkeeper/internal/client/api"
	"github.com/iudanet/contentkeeper/internal/client/delta"
	"github.com/iudanet/contentkeeper/internal/models"
	"github.com/iudanet/contentkeeper/pkg/api"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out local_store_mock.go . LocalStore

// LocalStore применяет принятые remote изменения к локальным
// снимкам сущностей
type LocalStore interface {
	ApplyChanges(ctx context.Context, changes []*models.DeltaChange) error
}

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет полную синхронизацию с сервером.
	// res управляет разрешением конфликтов, nil означает manual.
	Sync(ctx context.Context, accessToken string, res *models.Resolution) (*models.SyncSummary, error)

	// GetPendingSyncCount возвращает количество изменений, ожидающих отправки
	GetPendingSyncCount(ctx context.Context) int
}

// service handles synchronization between client and server
type service struct {
	apiClient httpClient.ClientAPI
	tracker   delta.Service
	store     LocalStore
	logger    *slog.Logger
}

// NewService creates a new sync service
func NewService(apiClient httpClient.ClientAPI, tracker delta.Service, store LocalStore, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		tracker:   tracker,
		store:     store,
		logger:    logger,
	}
}

// Sync performs full synchronization with server
// 1. Pushes pending delta changes to server
// 2. Marks pushed changes as synced
// 3. Applies changes of other devices through the tracker
func (s *service) Sync(ctx context.Context, accessToken string, res *models.Resolution) (*models.SyncSummary, error) {
	payload := s.tracker.BuildSyncPayload(ctx)

	s.logger.Info("Starting synchronization",
		"device_id", payload.DeviceID,
		"pending_changes", len(payload.Changes))

	// Конвертируем изменения в API формат
	apiChanges := make([]api.Change, 0, len(payload.Changes))
	for _, change := range payload.Changes {
		apiChanges = append(apiChanges, toAPIChange(change))
	}

	// Checksum запроса считается по wire представлению:
	// сервер проверяет ровно тот список, который декодирует
	syncReq := api.SyncRequest{
		Changes:           apiChanges,
		LastSyncTimestamp: payload.LastSyncTimestamp,
		DeviceID:          payload.DeviceID,
		Checksum:          checksum.SumChanges(apiChanges),
	}

	syncResp, err := s.apiClient.Sync(ctx, accessToken, syncReq)
	if err != nil {
		// pending изменения не тронуты, следующий sync отправит их снова
		return nil, fmt.Errorf("sync request failed: %w", err)
	}

	s.logger.Info("Received server response",
		"server_changes", len(syncResp.Changes),
		"applied", syncResp.Applied,
		"rejected", syncResp.Conflicts,
		"server_timestamp", syncResp.ServerTimestamp)

	// Push принят: отмечаем отправленные изменения как синхронизированные.
	// Изменения, добавленные во время запроса, остаются в pending и
	// участвуют в разрешении конфликтов как обычно.
	pushedIDs := make([]string, 0, len(payload.Changes))
	for _, change := range payload.Changes {
		pushedIDs = append(pushedIDs, change.ID)
	}
	s.tracker.ClearSyncedChanges(ctx, pushedIDs)

	// Конвертируем remote изменения в домашний формат
	remote := make([]*models.DeltaChange, 0, len(syncResp.Changes))
	for _, apiChange := range syncResp.Changes {
		remote = append(remote, &models.DeltaChange{
			ID:         apiChange.ID,
			EntityType: apiChange.EntityType,
			EntityID:   apiChange.EntityID,
			ChangeType: models.ChangeType(apiChange.ChangeType),
			Timestamp:  apiChange.Timestamp,
			OldValue:   apiChange.OldValue,
			NewValue:   apiChange.NewValue,
			Fields:     apiChange.Fields,
			Checksum:   apiChange.Checksum,
		})
	}

	applyResult, err := s.tracker.ApplyRemoteChanges(ctx, remote, res)
	if err != nil {
		return nil, fmt.Errorf("failed to apply remote changes: %w", err)
	}

	// Материализуем принятые изменения в локальные снимки сущностей.
	// Сбой локального хранилища не прерывает синхронизацию.
	if len(applyResult.Applied) > 0 && s.store != nil {
		if err := s.store.ApplyChanges(ctx, applyResult.Applied); err != nil {
			s.logger.Warn("Failed to materialize remote changes", "error", err)
		}
	}

	summary := &models.SyncSummary{
		Pushed:          len(payload.Changes),
		Applied:         len(applyResult.Applied),
		Conflicts:       len(applyResult.Conflicts),
		ServerTimestamp: syncResp.ServerTimestamp,
	}

	s.logger.Info("Synchronization completed",
		"pushed", summary.Pushed,
		"applied", summary.Applied,
		"conflicts", summary.Conflicts)

	return summary, nil
}

// GetPendingSyncCount возвращает количество изменений, ожидающих отправки
func (s *service) GetPendingSyncCount(ctx context.Context) int {
	return s.tracker.GetChangeCount()
}

// toAPIChange конвертирует доменное изменение в wire формат.
// Пустые map и срезы нормализуются в nil, чтобы omitempty дал
// одинаковое каноническое представление до и после передачи.
func toAPIChange(change *models.DeltaChange) api.Change {
	c := api.Change{
		ID:         change.ID,
		EntityType: change.EntityType,
		EntityID:   change.EntityID,
		ChangeType: string(change.ChangeType),
		Timestamp:  change.Timestamp,
		Checksum:   change.Checksum,
	}
	if len(change.OldValue) > 0 {
		c.OldValue = change.OldValue
	}
	if len(change.NewValue) > 0 {
		c.NewValue = change.NewValue
	}
	if len(change.Fields) > 0 {
		c.Fields = change.Fields
	}
	return c
}
