package storage

import (
	"context"
	"time"

	"github.com/iudanet/contentkeeper/internal/models"
)

// TokenStorage определяет интерфейс хранилища refresh токенов.
// Токены хранятся только в виде sha256 хеша: утечка БД не
// раскрывает действующие токены.
type TokenStorage interface {
	// SaveRefreshToken сохраняет новый refresh token
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken возвращает refresh token по его хешу.
	// Возвращает ErrTokenNotFound, если токен не существует.
	GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// DeleteRefreshToken удаляет refresh token по его хешу.
	// Возвращает ErrTokenNotFound, если токен не существует.
	DeleteRefreshToken(ctx context.Context, tokenHash string) error

	// DeleteExpiredTokens удаляет токены, истекшие к моменту now.
	// Возвращает количество удаленных токенов.
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)
}
