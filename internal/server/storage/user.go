package storage

import (
	"context"
	"time"

	"github.com/iudanet/contentkeeper/internal/models"
)

// UserStorage определяет интерфейс хранилища пользователей
type UserStorage interface {
	// CreateUser создает нового пользователя.
	// Возвращает ErrUserAlreadyExists, если username занят.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername возвращает пользователя по username.
	// Возвращает ErrUserNotFound, если пользователь не существует.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID возвращает пользователя по ID.
	// Возвращает ErrUserNotFound, если пользователь не существует.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateLastLogin обновляет время последнего входа
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
