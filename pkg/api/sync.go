package api

import "time"

// Change представляет одно дельта-изменение в формате обмена с сервером
type Change struct {
	Timestamp  time.Time      `json:"timestamp"`
	ID         string         `json:"id"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	ChangeType string         `json:"change_type"`
	Checksum   string         `json:"checksum"`
	OldValue   map[string]any `json:"old_value,omitempty"`
	NewValue   map[string]any `json:"new_value,omitempty"`
	Fields     []string       `json:"fields,omitempty"`
}

// SyncRequest представляет push-запрос клиента: накопленные изменения
// плюс контрольная сумма для проверки целостности
type SyncRequest struct {
	LastSyncTimestamp time.Time `json:"last_sync_timestamp"` // нулевое время - клиент еще не синхронизировался
	DeviceID          string    `json:"device_id"`
	Checksum          string    `json:"checksum"`
	Changes           []Change  `json:"changes"`
}

// SyncResponse представляет ответ сервера на синхронизацию
type SyncResponse struct {
	ServerTimestamp time.Time `json:"server_timestamp"` // Водяной знак для следующего запроса
	Changes         []Change  `json:"changes"`          // Изменения других устройств
	Applied         int       `json:"applied"`          // Сколько изменений клиента принято
	Conflicts       int       `json:"conflicts"`        // Сколько отклонено как устаревшие (LWW)
}
