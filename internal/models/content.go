package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Типы сущностей контента, известные клиенту
const (
	EntityProject  = "project"
	EntityElement  = "element"
	EntityTemplate = "template"
)

// Project представляет рабочий проект пользователя.
// Верхний уровень организации контента: элементы привязаны к проекту.
type Project struct {
	ID          string    `json:"id"`          // ID уникальный идентификатор записи (UUID)
	Name        string    `json:"name"`        // Name название проекта
	Description string    `json:"description"` // Description описание проекта
	Status      string    `json:"status"`      // Status статус ("draft", "active", "archived")
	CreatedAt   time.Time `json:"created_at"`  // CreatedAt время создания
	UpdatedAt   time.Time `json:"updated_at"`  // UpdatedAt время последнего изменения
}

// Element представляет единицу контента внутри проекта.
// Используется для хранения текстовых блоков, секций, медиа-ссылок и т.д.
type Element struct {
	ID        string    `json:"id"`         // ID уникальный идентификатор записи (UUID)
	ProjectID string    `json:"project_id"` // ProjectID идентификатор проекта-владельца
	Kind      string    `json:"kind"`       // Kind вид элемента (например, "text", "image", "section")
	Title     string    `json:"title"`      // Title заголовок элемента
	Body      string    `json:"body"`       // Body содержимое элемента
	Position  int       `json:"position"`   // Position порядок внутри проекта
	CreatedAt time.Time `json:"created_at"` // CreatedAt время создания
	UpdatedAt time.Time `json:"updated_at"` // UpdatedAt время последнего изменения
}

// Template представляет переиспользуемый шаблон структуры контента
type Template struct {
	ID        string    `json:"id"`         // ID уникальный идентификатор записи (UUID)
	Name      string    `json:"name"`       // Name название шаблона
	Schema    string    `json:"schema"`     // Schema JSON-описание структуры шаблона
	CreatedAt time.Time `json:"created_at"` // CreatedAt время создания
	UpdatedAt time.Time `json:"updated_at"` // UpdatedAt время последнего изменения
}

// ToMap конвертирует сущность в map[string]any через JSON round-trip.
// Sync-ядро работает со структурными значениями, а не с типами.
func ToMap(entity any) (map[string]any, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return m, nil
}
