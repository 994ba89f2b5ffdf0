package models

import (
	"time"
)

// Priority определяет класс срочности элемента очереди
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Valid проверяет, что приоритет известен
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// QueueItem представляет одно отложенное side-effecting действие.
// ID - ULID, лексикографический порядок ID совпадает с порядком создания.
// Элемент находится ровно в одной из двух map: pending или failed.
type QueueItem struct {
	ID           string         `json:"id"`
	Action       ChangeType     `json:"action"`
	EntityType   string         `json:"entity_type"`
	EntityID     string         `json:"entity_id"`
	Payload      map[string]any `json:"payload,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
	RetryCount   int            `json:"retry_count"`
	MaxRetries   int            `json:"max_retries"`
	Priority     Priority       `json:"priority"`
	Dependencies []string       `json:"dependencies,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// Clone создает глубокую копию элемента
func (q *QueueItem) Clone() *QueueItem {
	if q == nil {
		return nil
	}
	clone := *q
	clone.Payload = cloneMap(q.Payload)
	if q.Dependencies != nil {
		clone.Dependencies = append([]string(nil), q.Dependencies...)
	}
	return &clone
}

// QueueConfig содержит настройки обработки очереди
type QueueConfig struct {
	MaxRetries      int              `json:"max_retries"`
	RetryDelay      time.Duration    `json:"retry_delay"`
	BatchSize       int              `json:"batch_size"`
	PriorityWeights map[Priority]int `json:"priority_weights"`
}

// DefaultQueueConfig возвращает настройки очереди по умолчанию
func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		MaxRetries: 3,
		RetryDelay: time.Second,
		BatchSize:  10,
		PriorityWeights: map[Priority]int{
			PriorityHigh:   3,
			PriorityNormal: 2,
			PriorityLow:    1,
		},
	}
}

// Clone создает копию конфигурации с собственной map весов
func (c QueueConfig) Clone() QueueConfig {
	clone := c
	if c.PriorityWeights != nil {
		clone.PriorityWeights = make(map[Priority]int, len(c.PriorityWeights))
		for k, v := range c.PriorityWeights {
			clone.PriorityWeights[k] = v
		}
	}
	return clone
}

// Weight возвращает вес приоритета; неизвестный приоритет получает 0
func (c QueueConfig) Weight(p Priority) int {
	return c.PriorityWeights[p]
}

// QueueConfigPatch - частичное обновление конфигурации.
// nil-поля не трогают текущее значение.
type QueueConfigPatch struct {
	MaxRetries      *int             `json:"max_retries,omitempty"`
	RetryDelay      *time.Duration   `json:"retry_delay,omitempty"`
	BatchSize       *int             `json:"batch_size,omitempty"`
	PriorityWeights map[Priority]int `json:"priority_weights,omitempty"`
}

// Apply накладывает patch на конфигурацию и возвращает результат
func (p QueueConfigPatch) Apply(base QueueConfig) QueueConfig {
	merged := base.Clone()
	if p.MaxRetries != nil {
		merged.MaxRetries = *p.MaxRetries
	}
	if p.RetryDelay != nil {
		merged.RetryDelay = *p.RetryDelay
	}
	if p.BatchSize != nil {
		merged.BatchSize = *p.BatchSize
	}
	if p.PriorityWeights != nil {
		if merged.PriorityWeights == nil {
			merged.PriorityWeights = make(map[Priority]int, len(p.PriorityWeights))
		}
		for k, v := range p.PriorityWeights {
			merged.PriorityWeights[k] = v
		}
	}
	return merged
}

// ProcessResult - итог одного прохода обработки очереди
type ProcessResult struct {
	Successful []*QueueItem `json:"successful"`
	Failed     []*QueueItem `json:"failed"`
	Retrying   []*QueueItem `json:"retrying"`
}

// EmptyProcessResult возвращает результат без обработанных элементов
// (очередь занята другим проходом либо нет связи)
func EmptyProcessResult() *ProcessResult {
	return &ProcessResult{
		Successful: []*QueueItem{},
		Failed:     []*QueueItem{},
		Retrying:   []*QueueItem{},
	}
}

// QueueStatus - снимок состояния очереди для отображения
type QueueStatus struct {
	Pending     int          `json:"pending"`
	Failed      int          `json:"failed"`
	IsOnline    bool         `json:"is_online"`
	Items       []*QueueItem `json:"items"`
	FailedItems []*QueueItem `json:"failed_items"`
}

// QueueExport - отладочный дамп очереди
type QueueExport struct {
	Queue  []*QueueItem `json:"queue"`
	Failed []*QueueItem `json:"failed"`
	Config QueueConfig  `json:"config"`
}
