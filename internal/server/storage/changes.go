package storage

import (
	"context"
	"time"

	"github.com/iudanet/contentkeeper/internal/models"
)

// ChangeStorage определяет интерфейс хранилища изменений.
// Сервер хранит одну запись на сущность: входящее изменение
// замещает сохраненное по правилам LWW.
type ChangeStorage interface {
	// SaveChange применяет входящее изменение к хранимому состоянию
	// сущности. Возвращает true, если изменение принято:
	//   - для сущности еще нет записи
	//   - входящее новее хранимого (IsNewerThan)
	//   - повторная доставка уже принятой записи (тот же ID)
	// Возвращает false, если хранимое новее: проигравший LWW
	// учитывается вызывающим как конфликт.
	SaveChange(ctx context.Context, record *models.ChangeRecord) (bool, error)

	// GetChangesSince возвращает записи пользователя с client-timestamp
	// строже since, исключая записи устройства excludeDeviceID.
	// Пустой excludeDeviceID не исключает ничего.
	// Записи упорядочены по timestamp по возрастанию.
	GetChangesSince(ctx context.Context, userID string, since time.Time, excludeDeviceID string) ([]*models.ChangeRecord, error)

	// CountUserChanges возвращает количество хранимых записей пользователя
	CountUserChanges(ctx context.Context, userID string) (int, error)
}
