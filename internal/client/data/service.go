// Package data реализует типизированный CRUD поверх локального хранилища.
// Каждая мутация применяется локально сразу и ставится в офлайн-очередь,
// которая регистрирует дельту и позже выполняет действие на сервере.
package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/contentkeeper/internal/client/queue"
	"github.com/iudanet/contentkeeper/internal/client/storage"
	"github.com/iudanet/contentkeeper/internal/models"
)

//go:generate moq -out service_mock.go . Service

// ErrNotFound возвращается при обращении к несуществующей сущности
var ErrNotFound = errors.New("not found")

// Service определяет интерфейс клиентского data сервиса
type Service interface {
	AddProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id string) error

	AddElement(ctx context.Context, element *models.Element) error
	GetElement(ctx context.Context, id string) (*models.Element, error)
	ListElements(ctx context.Context, projectID string) ([]*models.Element, error)
	UpdateElement(ctx context.Context, element *models.Element) error
	DeleteElement(ctx context.Context, id string) error

	AddTemplate(ctx context.Context, template *models.Template) error
	GetTemplate(ctx context.Context, id string) (*models.Template, error)
	ListTemplates(ctx context.Context) ([]*models.Template, error)
	UpdateTemplate(ctx context.Context, template *models.Template) error
	DeleteTemplate(ctx context.Context, id string) error

	// ApplyChanges материализует примененные удаленные изменения
	// в локальных bucket'ах
	ApplyChanges(ctx context.Context, changes []*models.DeltaChange) error
}

type service struct {
	kv     storage.KV
	queue  queue.Service
	logger *slog.Logger
}

// NewService создает новый data сервис
func NewService(kv storage.KV, queue queue.Service, logger *slog.Logger) Service {
	return &service{
		kv:     kv,
		queue:  queue,
		logger: logger,
	}
}

// AddProject сохраняет новый проект локально и ставит create в очередь
func (s *service) AddProject(ctx context.Context, project *models.Project) error {
	// Генерируем ID если не задан
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	payload, err := models.ToMap(project)
	if err != nil {
		return fmt.Errorf("failed to convert project: %w", err)
	}

	if err := s.putEntity(ctx, models.EntityProject, project.ID, payload); err != nil {
		return err
	}

	if _, err := s.queue.Enqueue(ctx, models.ChangeCreate, models.EntityProject, project.ID, payload, nil); err != nil {
		return fmt.Errorf("failed to enqueue create action: %w", err)
	}
	return nil
}

// GetProject возвращает проект по ID
func (s *service) GetProject(ctx context.Context, id string) (*models.Project, error) {
	value, err := s.getEntity(ctx, models.EntityProject, id)
	if err != nil {
		return nil, err
	}

	var project models.Project
	if err := fromMap(value, &project); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}
	return &project, nil
}

// ListProjects возвращает все проекты, отсортированные по времени создания
func (s *service) ListProjects(ctx context.Context) ([]*models.Project, error) {
	bucket, err := s.loadBucket(ctx, models.EntityProject)
	if err != nil {
		return nil, err
	}

	projects := make([]*models.Project, 0, len(bucket))
	for _, value := range bucket {
		var project models.Project
		if err := fromMap(value, &project); err != nil {
			// Пропускаем поврежденные записи
			continue
		}
		projects = append(projects, &project)
	}

	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.Before(projects[j].CreatedAt)
		}
		return projects[i].ID < projects[j].ID
	})
	return projects, nil
}

// UpdateProject перезаписывает проект локально и ставит update в очередь
func (s *service) UpdateProject(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		return fmt.Errorf("project id is required")
	}

	existing, err := s.getEntity(ctx, models.EntityProject, project.ID)
	if err != nil {
		return err
	}

	// Время создания не меняется при обновлении
	var prev models.Project
	if err := fromMap(existing, &prev); err == nil {
		project.CreatedAt = prev.CreatedAt
	}
	project.UpdatedAt = time.Now()

	payload, err := models.ToMap(project)
	if err != nil {
		return fmt.Errorf("failed to convert project: %w", err)
	}

	if err := s.putEntity(ctx, models.EntityProject, project.ID, payload); err != nil {
		return err
	}

	if _, err := s.queue.Enqueue(ctx, models.ChangeUpdate, models.EntityProject, project.ID, payload, nil); err != nil {
		return fmt.Errorf("failed to enqueue update action: %w", err)
	}
	return nil
}

// DeleteProject удаляет проект локально и ставит delete в очередь
func (s *service) DeleteProject(ctx context.Context, id string) error {
	if err := s.removeEntity(ctx, models.EntityProject, id); err != nil {
		return err
	}

	if _, err := s.queue.Enqueue(ctx, models.ChangeDelete, models.EntityProject, id, nil, nil); err != nil {
		return fmt.Errorf("failed to enqueue delete action: %w", err)
	}
	return nil
}

// AddElement сохраняет новый элемент локально и ставит create в очередь
func (s *service) AddElement(ctx context.Context, element *models.Element) error {
	if element.ProjectID == "" {
		return fmt.Errorf("element project id is required")
	}
	// Генерируем ID если не задан
	if element.ID == "" {
		element.ID = uuid.New().String()
	}
	now := time.Now()
	element.CreatedAt = now
	element.UpdatedAt = now

	payload, err := models.ToMap(element)
	if err != nil {
		return fmt.Errorf("failed to convert element: %w", err)
	}

	if err := s.putEntity(ctx, models.EntityElement, element.ID, payload); err != nil {
		return err
	}

	if _, err := s.queue.Enqueue(ctx, models.ChangeCreate, models.EntityElement, element.ID, payload, nil); err != nil {
		return fmt.Errorf("failed to enqueue create action: %w", err)
	}
	return nil
}

// GetElement возвращает элемент по ID
func (s *service) GetElement(ctx context.Context, id string) (*models.Element, error) {
	value, err := s.getEntity(ctx, models.EntityElement, id)
	if err != nil {
		return nil, err
	}

	var element models.Element
	if err := fromMap(value, &element); err != nil {
		return nil, fmt.Errorf("failed to decode element: %w", err)
	}
	return &element, nil
}

// ListElements возвращает элементы проекта в порядке position.
// Пустой projectID возвращает элементы всех проектов.
func (s *service) ListElements(ctx context.Context, projectID string) ([]*models.Element, error) {
	bucket, err := s.loadBucket(ctx, models.EntityElement)
	if err != nil {
		return nil, err
	}

	elements := make([]*models.Element, 0, len(bucket))
	for _, value := range bucket {
		var element models.Element
		if err := fromMap(value, &element); err != nil {
			// Пропускаем поврежденные записи
			continue
		}
		if projectID != "" && element.ProjectID != projectID {
			continue
		}
		elements = append(elements, &element)
	}

	sort.Slice(elements, func(i, j int) bool {
		if elements[i].Position != elements[j].Position {
			return elements[i].Position < elements[j].Position
		}
		return elements[i].ID < elements[j].ID
	})
	return elements, nil
}

// UpdateElement перезаписывает элемент локально и ставит update в очередь
func (s *service) UpdateElement(ctx context.Context, element *models.Element) error {
	if element.ID == "" {
		return fmt.Errorf("element id is required")
	}

	existing, err := s.getEntity(ctx, models.EntityElement, element.ID)
	if err != nil {
		return err
	}

	var prev models.Element
	if err := fromMap(existing, &prev); err == nil {
		element.CreatedAt = prev.CreatedAt
		if element.ProjectID == "" {
			element.ProjectID = prev.ProjectID
		}
	}
	element.UpdatedAt = time.Now()

	payload, err := models.ToMap(element)
	if err != nil {
		return fmt.Errorf("failed to convert element: %w", err)
	}

	if err := s.putEntity(ctx, models.EntityElement, element.ID, payload); err != nil {
		return err
	}

	if _, err := s.queue.Enqueue(ctx, models.ChangeUpdate, models.EntityElement, element.ID, payload, nil); err != nil {
		return fmt.Errorf("failed to enqueue update action: %w", err)
	}
	return nil
}

// DeleteElement удаляет элемент локально и ставит delete в очередь
func (s *service) DeleteElement(ctx context.Context, id string) error {
	if err := s.removeEntity(ctx, models.EntityElement, id); err != nil {
		return err
	}

	if _, err := s.queue.Enqueue(ctx, models.ChangeDelete, models.EntityElement, id, nil, nil); err != nil {
		return fmt.Errorf("failed to enqueue delete action: %w", err)
	}
	return nil
}

// AddTemplate сохраняет новый шаблон локально и ставит create в очередь
func (s *service) AddTemplate(ctx context.Context, template *models.Template) error {
	// Генерируем ID если не задан
	if template.ID == "" {
		template.ID = uuid.New().String()
	}
	now := time.Now()
	template.CreatedAt = now
	template.UpdatedAt = now

	payload, err := models.ToMap(template)
	if err != nil {
		return fmt.Errorf("failed to convert template: %w", err)
	}

	if err := s.putEntity(ctx, models.EntityTemplate, template.ID, payload); err != nil {
		return err
	}

	if _, err := s.queue.Enqueue(ctx, models.ChangeCreate, models.EntityTemplate, template.ID, payload, nil); err != nil {
		return fmt.Errorf("failed to enqueue create action: %w", err)
	}
	return nil
}

// GetTemplate возвращает шаблон по ID
func (s *service) GetTemplate(ctx context.Context, id string) (*models.Template, error) {
	value, err := s.getEntity(ctx, models.EntityTemplate, id)
	if err != nil {
		return nil, err
	}

	var template models.Template
	if err := fromMap(value, &template); err != nil {
		return nil, fmt.Errorf("failed to decode template: %w", err)
	}
	return &template, nil
}

// ListTemplates возвращает все шаблоны, отсортированные по имени
func (s *service) ListTemplates(ctx context.Context) ([]*models.Template, error) {
	bucket, err := s.loadBucket(ctx, models.EntityTemplate)
	if err != nil {
		return nil, err
	}

	templates := make([]*models.Template, 0, len(bucket))
	for _, value := range bucket {
		var template models.Template
		if err := fromMap(value, &template); err != nil {
			// Пропускаем поврежденные записи
			continue
		}
		templates = append(templates, &template)
	}

	sort.Slice(templates, func(i, j int) bool {
		if templates[i].Name != templates[j].Name {
			return templates[i].Name < templates[j].Name
		}
		return templates[i].ID < templates[j].ID
	})
	return templates, nil
}

// UpdateTemplate перезаписывает шаблон локально и ставит update в очередь
func (s *service) UpdateTemplate(ctx context.Context, template *models.Template) error {
	if template.ID == "" {
		return fmt.Errorf("template id is required")
	}

	existing, err := s.getEntity(ctx, models.EntityTemplate, template.ID)
	if err != nil {
		return err
	}

	var prev models.Template
	if err := fromMap(existing, &prev); err == nil {
		template.CreatedAt = prev.CreatedAt
	}
	template.UpdatedAt = time.Now()

	payload, err := models.ToMap(template)
	if err != nil {
		return fmt.Errorf("failed to convert template: %w", err)
	}

	if err := s.putEntity(ctx, models.EntityTemplate, template.ID, payload); err != nil {
		return err
	}

	if _, err := s.queue.Enqueue(ctx, models.ChangeUpdate, models.EntityTemplate, template.ID, payload, nil); err != nil {
		return fmt.Errorf("failed to enqueue update action: %w", err)
	}
	return nil
}

// DeleteTemplate удаляет шаблон локально и ставит delete в очередь
func (s *service) DeleteTemplate(ctx context.Context, id string) error {
	if err := s.removeEntity(ctx, models.EntityTemplate, id); err != nil {
		return err
	}

	if _, err := s.queue.Enqueue(ctx, models.ChangeDelete, models.EntityTemplate, id, nil, nil); err != nil {
		return fmt.Errorf("failed to enqueue delete action: %w", err)
	}
	return nil
}

// ApplyChanges материализует удаленные изменения в локальных bucket'ах.
// Create перезаписывает запись, update сливается с существующим значением,
// delete удаляет запись. Очередь и трекер не трогаются: изменения уже
// прошли разрешение конфликтов.
func (s *service) ApplyChanges(ctx context.Context, changes []*models.DeltaChange) error {
	// Группируем по типу, чтобы не перечитывать bucket на каждое изменение
	byType := make(map[string][]*models.DeltaChange)
	for _, change := range changes {
		byType[change.EntityType] = append(byType[change.EntityType], change)
	}

	for entityType, group := range byType {
		bucket, err := s.loadBucket(ctx, entityType)
		if err != nil {
			return err
		}
		for _, change := range group {
			switch change.ChangeType {
			case models.ChangeCreate:
				bucket[change.EntityID] = models.MergeValues(nil, change.NewValue)
			case models.ChangeUpdate:
				bucket[change.EntityID] = models.MergeValues(bucket[change.EntityID], change.NewValue)
			case models.ChangeDelete:
				delete(bucket, change.EntityID)
			}
		}
		if err := s.saveBucket(ctx, entityType, bucket); err != nil {
			return err
		}
	}
	return nil
}

// loadBucket читает bucket сущностей одного типа.
// Поврежденные данные дают пустой bucket: сервер восстановит записи
// при следующей синхронизации.
func (s *service) loadBucket(ctx context.Context, entityType string) (map[string]map[string]any, error) {
	raw, err := s.kv.Get(ctx, storage.KeyEntitiesPrefix+entityType)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return make(map[string]map[string]any), nil
		}
		return nil, fmt.Errorf("failed to load %s bucket: %w", entityType, err)
	}

	var bucket map[string]map[string]any
	if err := json.Unmarshal([]byte(raw), &bucket); err != nil {
		s.logger.Warn("corrupt entity bucket, starting empty", "entity_type", entityType, "error", err)
		return make(map[string]map[string]any), nil
	}
	if bucket == nil {
		bucket = make(map[string]map[string]any)
	}
	return bucket, nil
}

func (s *service) saveBucket(ctx context.Context, entityType string, bucket map[string]map[string]any) error {
	data, err := json.Marshal(bucket)
	if err != nil {
		return fmt.Errorf("failed to marshal %s bucket: %w", entityType, err)
	}
	if err := s.kv.Set(ctx, storage.KeyEntitiesPrefix+entityType, string(data)); err != nil {
		return fmt.Errorf("failed to save %s bucket: %w", entityType, err)
	}
	return nil
}

func (s *service) getEntity(ctx context.Context, entityType, id string) (map[string]any, error) {
	bucket, err := s.loadBucket(ctx, entityType)
	if err != nil {
		return nil, err
	}
	value, ok := bucket[id]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", entityType, id, ErrNotFound)
	}
	return value, nil
}

func (s *service) putEntity(ctx context.Context, entityType, id string, value map[string]any) error {
	bucket, err := s.loadBucket(ctx, entityType)
	if err != nil {
		return err
	}
	bucket[id] = value
	return s.saveBucket(ctx, entityType, bucket)
}

func (s *service) removeEntity(ctx context.Context, entityType, id string) error {
	bucket, err := s.loadBucket(ctx, entityType)
	if err != nil {
		return err
	}
	if _, ok := bucket[id]; !ok {
		return fmt.Errorf("%s %s: %w", entityType, id, ErrNotFound)
	}
	delete(bucket, id)
	return s.saveBucket(ctx, entityType, bucket)
}

// fromMap декодирует map-представление сущности в типизированную структуру
func fromMap(value map[string]any, target any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return nil
}
