package models

import "time"

// ChangeRecord представляет изменение сущности, сохраненное на сервере.
// Строится из входящего DeltaChange и дополняется серверными полями.
type ChangeRecord struct {
	Timestamp  time.Time      `json:"timestamp"`   // Timestamp клиентское время изменения
	ReceivedAt time.Time      `json:"received_at"` // ReceivedAt серверное время приема
	ID         string         `json:"id"`          // ID уникальный идентификатор изменения (UUID)
	UserID     string         `json:"user_id"`     // UserID идентификатор владельца
	DeviceID   string         `json:"device_id"`   // DeviceID идентификатор устройства-источника
	EntityType string         `json:"entity_type"` // EntityType тип сущности
	EntityID   string         `json:"entity_id"`   // EntityID идентификатор сущности
	ChangeType ChangeType     `json:"change_type"` // ChangeType тип изменения
	Fields     []string       `json:"fields,omitempty"`
	NewValue   map[string]any `json:"new_value,omitempty"`
	Checksum   string         `json:"checksum,omitempty"`
}

// IsNewerThan сравнивает две записи изменений и определяет, какая новее.
// Согласно алгоритму LWW (Last-Write-Wins):
// 1. Сначала сравнивается Timestamp (больший выигрывает)
// 2. При равных Timestamp сравнивается DeviceID (лексикографически)
// Возвращает true, если current запись новее, чем other.
func (r *ChangeRecord) IsNewerThan(other *ChangeRecord) bool {
	if r.Timestamp.After(other.Timestamp) {
		return true
	}
	if r.Timestamp.Before(other.Timestamp) {
		return false
	}
	// Timestamps равны - сравниваем DeviceID для детерминизма
	return r.DeviceID > other.DeviceID
}

// ToDeltaChange конвертирует серверную запись обратно в формат клиента
func (r *ChangeRecord) ToDeltaChange() *DeltaChange {
	return &DeltaChange{
		ID:         r.ID,
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		ChangeType: r.ChangeType,
		Timestamp:  r.Timestamp,
		Fields:     append([]string(nil), r.Fields...),
		NewValue:   cloneMap(r.NewValue),
		Checksum:   r.Checksum,
	}
}
