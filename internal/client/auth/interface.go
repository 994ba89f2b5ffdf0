package auth

import (
	"context"
	"time"
)

//go:generate moq -out service_mock.go . Service

// Session - локально сохраненная сессия пользователя
type Session struct {
	Username     string    `json:"username"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"` // момент истечения access token
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string // username
}

// Service defines the main interface for authentication operations.
// Сессия хранится в клиентском KV хранилище и переживает перезапуск.
type Service interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию
	Login(ctx context.Context, username, password string) (*Session, error)

	// Logout удаляет локальную сессию
	Logout(ctx context.Context) error

	// CurrentSession возвращает сохраненную сессию.
	// Возвращает ErrNotAuthenticated, если сессии нет.
	CurrentSession(ctx context.Context) (*Session, error)

	// AccessToken возвращает действующий access token,
	// обновляя пару токенов через refresh при необходимости
	AccessToken(ctx context.Context) (string, error)

	// IsAuthenticated проверяет наличие сохраненной сессии
	IsAuthenticated(ctx context.Context) bool
}
