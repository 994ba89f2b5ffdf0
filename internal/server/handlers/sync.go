package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/contentkeeper/internal/checksum"
	"github.com/iudanet/contentkeeper/internal/models"
	"github.com/iudanet/contentkeeper/internal/server/middleware"
	"github.com/iudanet/contentkeeper/internal/server/storage"
	"github.com/iudanet/contentkeeper/pkg/api"
)

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger  *slog.Logger
	storage storage.ChangeStorage
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, changeStorage storage.ChangeStorage) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: changeStorage,
	}
}

// HandleSync обрабатывает GET и POST запросы для синхронизации
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Получаем user_id из контекста (установлен AuthMiddleware)
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGetSync(w, r, ctx, userID)
	case http.MethodPost:
		h.handlePostSync(w, r, ctx, userID)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handleGetSync обрабатывает GET /api/v1/sync?since=<RFC3339>
// Pull без push: возвращает изменения всех устройств с указанного времени
func (h *SyncHandler) handleGetSync(w http.ResponseWriter, r *http.Request, ctx context.Context, userID string) {
	// Парсим параметр since, пустой параметр означает полную выгрузку
	var since time.Time
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		var err error
		since, err = time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			h.logger.Warn("Invalid since parameter", "since", sinceStr, "error", err)
			http.Error(w, "Invalid since parameter, expected RFC3339", http.StatusBadRequest)
			return
		}
	}

	h.logger.Info("GET sync request", "user_id", userID, "since", since)

	// GET не знает устройства, поэтому не исключает ничего:
	// клиент дедуплицирует свои изменения по ID
	records, err := h.storage.GetChangesSince(ctx, userID, since, "")
	if err != nil {
		h.logger.Error("Failed to get user changes", "error", err, "user_id", userID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := api.SyncResponse{
		ServerTimestamp: time.Now().UTC(),
		Changes:         toAPIChanges(records),
		Applied:         0,
		Conflicts:       0,
	}

	h.writeJSON(w, response)

	h.logger.Info("GET sync completed", "user_id", userID, "changes_count", len(response.Changes))
}

// handlePostSync обрабатывает POST /api/v1/sync
// Принимает дельта-изменения клиента и возвращает изменения других устройств
func (h *SyncHandler) handlePostSync(w http.ResponseWriter, r *http.Request, ctx context.Context, userID string) {
	var req api.SyncRequest

	// Парсим request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode sync request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.DeviceID == "" {
		http.Error(w, "device_id is required", http.StatusBadRequest)
		return
	}

	// Сверяем контрольную сумму списка изменений.
	// Расхождение означает повреждение данных при передаче
	if sum := checksum.SumChanges(req.Changes); sum != req.Checksum {
		h.logger.Warn("Sync request checksum mismatch",
			"user_id", userID,
			"device_id", req.DeviceID,
			"expected", req.Checksum,
			"actual", sum)
		http.Error(w, "Checksum mismatch", http.StatusBadRequest)
		return
	}

	h.logger.Info("POST sync request",
		"user_id", userID,
		"device_id", req.DeviceID,
		"last_sync", req.LastSyncTimestamp,
		"changes_count", len(req.Changes))

	now := time.Now().UTC()
	applied := 0
	conflicts := 0

	// Применяем входящие изменения по правилу LWW
	for i, apiChange := range req.Changes {
		if apiChange.ID == "" || apiChange.EntityType == "" || apiChange.EntityID == "" {
			http.Error(w, fmt.Sprintf("Change %d: id, entity_type and entity_id are required", i), http.StatusBadRequest)
			return
		}

		record := toChangeRecord(apiChange, userID, req.DeviceID, now)

		saved, err := h.storage.SaveChange(ctx, record)
		if err != nil {
			h.logger.Error("Failed to save change", "error", err, "change_id", record.ID)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if saved {
			applied++
		} else {
			// Отклонено: на сервере уже есть более новая версия
			conflicts++
			h.logger.Debug("Change rejected as stale", "change_id", record.ID, "entity_id", record.EntityID)
		}
	}

	// Возвращаем изменения других устройств с последней синхронизации
	records, err := h.storage.GetChangesSince(ctx, userID, req.LastSyncTimestamp, req.DeviceID)
	if err != nil {
		h.logger.Error("Failed to get user changes", "error", err, "user_id", userID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := api.SyncResponse{
		ServerTimestamp: now,
		Changes:         toAPIChanges(records),
		Applied:         applied,
		Conflicts:       conflicts,
	}

	h.writeJSON(w, response)

	h.logger.Info("POST sync completed",
		"user_id", userID,
		"received_changes", len(req.Changes),
		"returned_changes", len(response.Changes),
		"applied", applied,
		"conflicts", conflicts)
}

func (h *SyncHandler) writeJSON(w http.ResponseWriter, response api.SyncResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// toChangeRecord конвертирует wire изменение в серверную запись.
// OldValue не сохраняется: серверу он не нужен, разрешение конфликтов
// по старым значениям выполняет клиент
func toChangeRecord(c api.Change, userID, deviceID string, receivedAt time.Time) *models.ChangeRecord {
	return &models.ChangeRecord{
		ID:         c.ID,
		UserID:     userID,
		DeviceID:   deviceID,
		EntityType: c.EntityType,
		EntityID:   c.EntityID,
		ChangeType: models.ChangeType(c.ChangeType),
		Timestamp:  c.Timestamp,
		ReceivedAt: receivedAt,
		Fields:     c.Fields,
		NewValue:   c.NewValue,
		Checksum:   c.Checksum,
	}
}

// toAPIChanges конвертирует серверные записи в wire формат
func toAPIChanges(records []*models.ChangeRecord) []api.Change {
	changes := make([]api.Change, 0, len(records))
	for _, record := range records {
		c := api.Change{
			ID:         record.ID,
			EntityType: record.EntityType,
			EntityID:   record.EntityID,
			ChangeType: string(record.ChangeType),
			Timestamp:  record.Timestamp,
			Checksum:   record.Checksum,
		}
		if len(record.NewValue) > 0 {
			c.NewValue = record.NewValue
		}
		if len(record.Fields) > 0 {
			c.Fields = record.Fields
		}
		changes = append(changes, c)
	}
	return changes
}
