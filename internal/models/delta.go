package models

import (
	"time"
)

// ChangeType определяет тип локальной мутации
type ChangeType string

const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// Valid проверяет, что тип мутации известен
func (c ChangeType) Valid() bool {
	switch c {
	case ChangeCreate, ChangeUpdate, ChangeDelete:
		return true
	}
	return false
}

// EntityKey идентифицирует сущность внутри pending set
type EntityKey struct {
	EntityType string
	EntityID   string
}

// DeltaChange представляет одну скомпактированную локальную мутацию.
// Для каждой пары (entity_type, entity_id) в pending set существует
// не более одной записи: повторные вызовы track* мутируют её по
// правилам слияния, а не добавляют дубликат.
type DeltaChange struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	ChangeType ChangeType     `json:"change_type"`
	Timestamp  time.Time      `json:"timestamp"`
	Fields     []string       `json:"fields,omitempty"`
	OldValue   map[string]any `json:"old_value,omitempty"`
	NewValue   map[string]any `json:"new_value,omitempty"`
	Checksum   string         `json:"checksum,omitempty"`
}

// Key возвращает ключ сущности этой записи
func (d *DeltaChange) Key() EntityKey {
	return EntityKey{EntityType: d.EntityType, EntityID: d.EntityID}
}

// Clone создает глубокую копию записи
func (d *DeltaChange) Clone() *DeltaChange {
	if d == nil {
		return nil
	}
	clone := *d
	if d.Fields != nil {
		clone.Fields = append([]string(nil), d.Fields...)
	}
	clone.OldValue = cloneMap(d.OldValue)
	clone.NewValue = cloneMap(d.NewValue)
	return &clone
}

// cloneMap копирует JSON-подобную структуру рекурсивно.
// Значения других типов копируются по ссылке.
func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return cloneMap(tv)
	case []any:
		out := make([]any, len(tv))
		for i, el := range tv {
			out[i] = cloneValue(el)
		}
		return out
	default:
		return v
	}
}

// MergeValues выполняет shallow merge: значения overlay перекрывают base
// по совпадающим полям, остальные поля base сохраняются.
func MergeValues(base, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = cloneValue(v)
	}
	for k, v := range overlay {
		merged[k] = cloneValue(v)
	}
	return merged
}

// ConflictStrategy определяет способ разрешения конфликта между
// локальным pending изменением и входящим remote изменением
type ConflictStrategy string

const (
	// StrategyLocal - локальное значение побеждает, remote отбрасывается
	StrategyLocal ConflictStrategy = "local"
	// StrategyRemote - remote значение побеждает, локальное pending снимается
	StrategyRemote ConflictStrategy = "remote"
	// StrategyMerge - shallow merge, локальные поля поверх remote
	StrategyMerge ConflictStrategy = "merge"
	// StrategyManual - конфликт возвращается вызывающему без применения
	StrategyManual ConflictStrategy = "manual"
)

// MergeResolver позволяет вызывающему коду заменить стандартный
// shallow merge собственной логикой слияния
type MergeResolver func(local, remote *DeltaChange) map[string]any

// Resolution описывает, как применять конфликтующие remote изменения
type Resolution struct {
	Strategy ConflictStrategy
	Resolver MergeResolver
}

// ApplyResult - результат применения пачки remote изменений
type ApplyResult struct {
	Applied   []*DeltaChange `json:"applied"`
	Conflicts []*DeltaChange `json:"conflicts"`
}

// SyncPayload - исходящий пакет для sync round-trip.
// Checksum покрывает весь список изменений и позволяет серверу
// обнаружить повреждение пакета при передаче.
type SyncPayload struct {
	Changes           []*DeltaChange `json:"changes"`
	LastSyncTimestamp time.Time      `json:"last_sync_timestamp"`
	DeviceID          string         `json:"device_id"`
	Checksum          string         `json:"checksum"`
}

// SyncSummary - итог одного sync round-trip со стороны клиента
type SyncSummary struct {
	Pushed          int       `json:"pushed"`
	Applied         int       `json:"applied"`
	Conflicts       int       `json:"conflicts"`
	ServerTimestamp time.Time `json:"server_timestamp"`
}
