package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/iudanet/contentkeeper/internal/client/api"
	"github.com/iudanet/contentkeeper/internal/client/storage"
	"github.com/iudanet/contentkeeper/internal/validation"
	pkgapi "github.com/iudanet/contentkeeper/pkg/api"
)

// ErrNotAuthenticated возвращается, когда локальной сессии нет
var ErrNotAuthenticated = errors.New("not authenticated")

// refreshSkew - запас до истечения access token, при котором
// пара токенов обновляется заранее
const refreshSkew = 30 * time.Second

type service struct {
	apiClient httpClient.ClientAPI
	kv        storage.KV
	logger    *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient httpClient.ClientAPI, kv storage.KV, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		kv:        kv,
		logger:    logger,
	}
}

// Register регистрирует нового пользователя.
// Сессию не создает: после регистрации нужен Login.
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
	}, nil
}

// Login выполняет аутентификацию и сохраняет сессию в KV хранилище
func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := &Session{
		Username:     username,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("logged in", "username", username)
	return session, nil
}

// Logout удаляет локальную сессию
func (s *service) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CurrentSession возвращает сохраненную сессию
func (s *service) CurrentSession(ctx context.Context) (*Session, error) {
	raw, err := s.kv.Get(ctx, storage.KeySession)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		// поврежденная сессия равносильна ее отсутствию
		s.logger.Warn("corrupt session data, treating as logged out", "error", err)
		return nil, ErrNotAuthenticated
	}
	return &session, nil
}

// AccessToken возвращает действующий access token.
// Если токен истекает, пара обновляется через refresh и сессия
// перезаписывается.
func (s *service) AccessToken(ctx context.Context) (string, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return "", err
	}

	if time.Until(session.ExpiresAt) > refreshSkew {
		return session.AccessToken, nil
	}

	resp, err := s.apiClient.Refresh(ctx, pkgapi.RefreshRequest{
		RefreshToken: session.RefreshToken,
	})
	if err != nil {
		return "", fmt.Errorf("failed to refresh session: %w", err)
	}

	session.AccessToken = resp.AccessToken
	session.RefreshToken = resp.RefreshToken
	session.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	if err := s.saveSession(ctx, session); err != nil {
		return "", err
	}

	s.logger.Debug("session refreshed", "username", session.Username)
	return session.AccessToken, nil
}

// IsAuthenticated проверяет наличие сохраненной сессии
func (s *service) IsAuthenticated(ctx context.Context) bool {
	_, err := s.CurrentSession(ctx)
	return err == nil
}

func (s *service) saveSession(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeySession, string(data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
