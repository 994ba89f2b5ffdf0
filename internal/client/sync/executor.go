package sync

import (
	"context"
	"fmt"

	"github.com/iudanet/contentkeeper/internal/checksum"
	httpClient "github.com/iudanet/contentkeeper/internal/client/api"
	"github.com/iudanet/contentkeeper/internal/client/delta"
	"github.com/iudanet/contentkeeper/internal/client/queue"
	"github.com/iudanet/contentkeeper/internal/models"
	"github.com/iudanet/contentkeeper/pkg/api"
)

// TokenProvider выдает действующий access token для исходящего запроса
type TokenProvider func(ctx context.Context) (string, error)

// NewQueueExecutor возвращает исполнителя офлайн-очереди: отложенное
// действие реплеится на сервер одиночным sync запросом. Сервер
// идемпотентен по id изменения, поэтому повторная доставка того же
// действия безопасна. Полная синхронизация остается за Service.Sync.
func NewQueueExecutor(apiClient httpClient.ClientAPI, tracker delta.Service, tokens TokenProvider) queue.Executor {
	return func(ctx context.Context, item *models.QueueItem) error {
		token, err := tokens(ctx)
		if err != nil {
			return fmt.Errorf("failed to obtain access token: %w", err)
		}

		change := &models.DeltaChange{
			ID:         item.ID,
			EntityType: item.EntityType,
			EntityID:   item.EntityID,
			ChangeType: item.Action,
			Timestamp:  item.Timestamp,
		}
		if item.Action != models.ChangeDelete {
			change.NewValue = item.Payload
			change.Checksum = checksum.Sum(change.NewValue)
		}

		wire := []api.Change{toAPIChange(change)}
		req := api.SyncRequest{
			Changes:           wire,
			LastSyncTimestamp: tracker.LastSyncTimestamp(),
			DeviceID:          tracker.DeviceID(),
			Checksum:          checksum.SumChanges(wire),
		}

		if _, err := apiClient.Sync(ctx, token, req); err != nil {
			return fmt.Errorf("failed to replay %s %s/%s: %w", item.Action, item.EntityType, item.EntityID, err)
		}
		return nil
	}
}
