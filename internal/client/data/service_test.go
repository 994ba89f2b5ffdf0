package data

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentkeeper/internal/client/queue"
	"github.com/iudanet/contentkeeper/internal/client/storage"
	"github.com/iudanet/contentkeeper/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// newMemoryKV возвращает мок хранилища поверх обычной map
func newMemoryKV() *storage.KVMock {
	var mu sync.Mutex
	data := make(map[string]string)

	return &storage.KVMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return "", storage.ErrKeyNotFound
			}
			return v, nil
		},
		SetFunc: func(ctx context.Context, key string, value string) error {
			mu.Lock()
			defer mu.Unlock()
			data[key] = value
			return nil
		},
		RemoveFunc: func(ctx context.Context, key string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(data, key)
			return nil
		},
		CloseFunc: func() error { return nil },
	}
}

func newQueueMock() *queue.ServiceMock {
	return &queue.ServiceMock{
		EnqueueFunc: func(ctx context.Context, action models.ChangeType, entityType, entityID string, payload map[string]any, opts *queue.EnqueueOptions) (string, error) {
			return "queued-item", nil
		},
	}
}

func newTestService(q *queue.ServiceMock) Service {
	return NewService(newMemoryKV(), q, testLogger())
}

func TestAddProject(t *testing.T) {
	ctx := context.Background()
	q := newQueueMock()
	svc := newTestService(q)

	project := &models.Project{Name: "My Project", Status: "draft"}
	require.NoError(t, svc.AddProject(ctx, project))

	assert.NotEmpty(t, project.ID)
	assert.False(t, project.CreatedAt.IsZero())
	assert.Equal(t, project.CreatedAt, project.UpdatedAt)

	// create ушел в очередь вместе с картой сущности
	calls := q.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.ChangeCreate, calls[0].Action)
	assert.Equal(t, models.EntityProject, calls[0].EntityType)
	assert.Equal(t, project.ID, calls[0].EntityID)
	assert.Equal(t, "My Project", calls[0].Payload["name"])

	got, err := svc.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "My Project", got.Name)
	assert.Equal(t, "draft", got.Status)
}

func TestAddProject_KeepsProvidedID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newQueueMock())

	project := &models.Project{ID: "fixed-id", Name: "Imported"}
	require.NoError(t, svc.AddProject(ctx, project))
	assert.Equal(t, "fixed-id", project.ID)

	got, err := svc.GetProject(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "Imported", got.Name)
}

func TestGetProject_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newQueueMock())

	_, err := svc.GetProject(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProjects_SortedByCreation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newQueueMock())

	names := []string{"first", "second", "third"}
	for _, name := range names {
		require.NoError(t, svc.AddProject(ctx, &models.Project{Name: name}))
		time.Sleep(2 * time.Millisecond)
	}

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	for i, name := range names {
		assert.Equal(t, name, projects[i].Name)
	}
}

func TestUpdateProject(t *testing.T) {
	ctx := context.Background()
	q := newQueueMock()
	svc := newTestService(q)

	project := &models.Project{Name: "Original", Status: "draft"}
	require.NoError(t, svc.AddProject(ctx, project))
	createdAt := project.CreatedAt

	time.Sleep(2 * time.Millisecond)
	updated := &models.Project{ID: project.ID, Name: "Renamed", Status: "active"}
	require.NoError(t, svc.UpdateProject(ctx, updated))

	// время создания сохраняется, время обновления растет
	assert.True(t, updated.CreatedAt.Equal(createdAt))
	assert.True(t, updated.UpdatedAt.After(createdAt))

	calls := q.EnqueueCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, models.ChangeUpdate, calls[1].Action)
	assert.Equal(t, project.ID, calls[1].EntityID)

	got, err := svc.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "active", got.Status)
}

func TestUpdateProject_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newQueueMock())

	err := svc.UpdateProject(ctx, &models.Project{ID: "missing", Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	q := newQueueMock()
	svc := newTestService(q)

	project := &models.Project{Name: "Doomed"}
	require.NoError(t, svc.AddProject(ctx, project))
	require.NoError(t, svc.DeleteProject(ctx, project.ID))

	_, err := svc.GetProject(ctx, project.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	calls := q.EnqueueCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, models.ChangeDelete, calls[1].Action)
	assert.Equal(t, project.ID, calls[1].EntityID)
	assert.Empty(t, calls[1].Payload)
}

func TestDeleteProject_NotFound(t *testing.T) {
	ctx := context.Background()
	q := newQueueMock()
	svc := newTestService(q)

	err := svc.DeleteProject(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	// несуществующая сущность не порождает действий
	assert.Empty(t, q.EnqueueCalls())
}

func TestAddElement(t *testing.T) {
	ctx := context.Background()
	q := newQueueMock()
	svc := newTestService(q)

	element := &models.Element{ProjectID: "proj-1", Kind: "text", Title: "Intro", Body: "Hello", Position: 1}
	require.NoError(t, svc.AddElement(ctx, element))
	assert.NotEmpty(t, element.ID)

	got, err := svc.GetElement(ctx, element.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro", got.Title)
	assert.Equal(t, "proj-1", got.ProjectID)

	calls := q.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.EntityElement, calls[0].EntityType)
}

func TestAddElement_RequiresProjectID(t *testing.T) {
	ctx := context.Background()
	q := newQueueMock()
	svc := newTestService(q)

	err := svc.AddElement(ctx, &models.Element{Title: "Orphan"})
	require.Error(t, err)
	assert.Empty(t, q.EnqueueCalls())
}

func TestUpdateElement_KeepsProjectBinding(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newQueueMock())

	element := &models.Element{ProjectID: "proj-1", Kind: "text", Title: "Draft"}
	require.NoError(t, svc.AddElement(ctx, element))

	// обновление без project_id не отвязывает элемент от проекта
	updated := &models.Element{ID: element.ID, Kind: "text", Title: "Final"}
	require.NoError(t, svc.UpdateElement(ctx, updated))

	got, err := svc.GetElement(ctx, element.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "proj-1", got.ProjectID)
}

func TestDeleteElement(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newQueueMock())

	element := &models.Element{ProjectID: "proj-1", Title: "Gone"}
	require.NoError(t, svc.AddElement(ctx, element))
	require.NoError(t, svc.DeleteElement(ctx, element.ID))

	_, err := svc.GetElement(ctx, element.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateLifecycle(t *testing.T) {
	ctx := context.Background()
	q := newQueueMock()
	svc := newTestService(q)

	template := &models.Template{Name: "Blog Post", Schema: `{"sections":["intro","body"]}`}
	require.NoError(t, svc.AddTemplate(ctx, template))
	require.NotEmpty(t, template.ID)

	got, err := svc.GetTemplate(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blog Post", got.Name)

	got.Schema = `{"sections":["intro","body","outro"]}`
	require.NoError(t, svc.UpdateTemplate(ctx, got))

	reloaded, err := svc.GetTemplate(ctx, template.ID)
	require.NoError(t, err)
	assert.Contains(t, reloaded.Schema, "outro")

	require.NoError(t, svc.DeleteTemplate(ctx, template.ID))
	_, err = svc.GetTemplate(ctx, template.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	actions := []models.ChangeType{}
	for _, call := range q.EnqueueCalls() {
		actions = append(actions, call.Action)
	}
	assert.Equal(t, []models.ChangeType{models.ChangeCreate, models.ChangeUpdate, models.ChangeDelete}, actions)
}

func TestListTemplates_SortedByName(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newQueueMock())

	for _, name := range []string{"Zeta", "Alpha", "Middle"} {
		require.NoError(t, svc.AddTemplate(ctx, &models.Template{Name: name}))
	}

	templates, err := svc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 3)
	assert.Equal(t, "Alpha", templates[0].Name)
	assert.Equal(t, "Middle", templates[1].Name)
	assert.Equal(t, "Zeta", templates[2].Name)
}
