package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/contentkeeper/internal/client/api"
	"github.com/iudanet/contentkeeper/internal/client/storage"
	"github.com/iudanet/contentkeeper/pkg/api"
)

const (
	testUsername = "testuser"
	testPassword = "verylongpassword123"
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

func TestRegister(t *testing.T) {
	ctx := context.Background()

	mockAPI := &httpClient.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
			return &api.RegisterResponse{UserID: "user-123", Message: "user created"}, nil
		},
	}
	svc := NewService(mockAPI, newMemoryKV(), testLogger())

	result, err := svc.Register(ctx, testUsername, testPassword)
	require.NoError(t, err)
	assert.Equal(t, "user-123", result.UserID)
	assert.Equal(t, testUsername, result.Username)

	calls := mockAPI.RegisterCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, testUsername, calls[0].Req.Username)
	assert.Equal(t, testPassword, calls[0].Req.Password)
}

func TestRegister_ValidationErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "short username", username: "ab", password: testPassword},
		{name: "invalid characters", username: "user name", password: testPassword},
		{name: "short password", username: testUsername, password: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := &httpClient.ClientAPIMock{}
			svc := NewService(mockAPI, newMemoryKV(), testLogger())

			_, err := svc.Register(ctx, tt.username, tt.password)
			require.Error(t, err)
			// до сервера запрос не доходит
			assert.Empty(t, mockAPI.RegisterCalls())
		})
	}
}

func TestRegister_ServerError(t *testing.T) {
	ctx := context.Background()

	mockAPI := &httpClient.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
			return nil, errors.New("username already exists")
		},
	}
	svc := NewService(mockAPI, newMemoryKV(), testLogger())

	_, err := svc.Register(ctx, testUsername, testPassword)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registration failed")
}

func TestLogin_SavesSession(t *testing.T) {
	ctx := context.Background()

	mockAPI := &httpClient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return &api.TokenResponse{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				ExpiresIn:    900,
			}, nil
		},
	}
	kv := newMemoryKV()
	svc := NewService(mockAPI, kv, testLogger())

	session, err := svc.Login(ctx, testUsername, testPassword)
	require.NoError(t, err)
	assert.Equal(t, testUsername, session.Username)
	assert.Equal(t, "access-token", session.AccessToken)
	assert.Equal(t, "refresh-token", session.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(900*time.Second), session.ExpiresAt, 5*time.Second)

	// сессия сохранена в KV
	raw, err := kv.Get(ctx, storage.KeySession)
	require.NoError(t, err)
	var stored Session
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, session.AccessToken, stored.AccessToken)
	assert.Equal(t, session.Username, stored.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	mockAPI := &httpClient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return nil, errors.New("invalid credentials")
		},
	}
	kv := newMemoryKV()
	svc := NewService(mockAPI, kv, testLogger())

	_, err := svc.Login(ctx, testUsername, testPassword)
	require.Error(t, err)

	_, err = kv.Get(ctx, storage.KeySession)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestCurrentSession_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&httpClient.ClientAPIMock{}, newMemoryKV(), testLogger())

	_, err := svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCurrentSession_CorruptData(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	require.NoError(t, kv.Set(ctx, storage.KeySession, "{not valid json"))

	svc := NewService(&httpClient.ClientAPIMock{}, kv, testLogger())

	_, err := svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAccessToken_FreshToken(t *testing.T) {
	ctx := context.Background()

	mockAPI := &httpClient.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
			return nil, errors.New("should not be called")
		},
	}
	kv := newMemoryKV()
	saveTestSession(t, kv, &Session{
		Username:     testUsername,
		AccessToken:  "still-valid",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	svc := NewService(mockAPI, kv, testLogger())

	token, err := svc.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "still-valid", token)
	assert.Empty(t, mockAPI.RefreshCalls())
}

func TestAccessToken_RefreshesExpiring(t *testing.T) {
	ctx := context.Background()

	mockAPI := &httpClient.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
			return &api.TokenResponse{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
				ExpiresIn:    900,
			}, nil
		},
	}
	kv := newMemoryKV()
	saveTestSession(t, kv, &Session{
		Username:     testUsername,
		AccessToken:  "almost-expired",
		RefreshToken: "old-refresh",
		ExpiresAt:    time.Now().Add(5 * time.Second),
	})

	svc := NewService(mockAPI, kv, testLogger())

	token, err := svc.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-access", token)

	calls := mockAPI.RefreshCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "old-refresh", calls[0].Req.RefreshToken)

	// обновленная пара перезаписала сессию
	session, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-access", session.AccessToken)
	assert.Equal(t, "new-refresh", session.RefreshToken)
	assert.Greater(t, session.ExpiresAt, time.Now().Add(time.Minute))
}

func TestAccessToken_RefreshFailure(t *testing.T) {
	ctx := context.Background()

	mockAPI := &httpClient.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
			return nil, errors.New("refresh token expired")
		},
	}
	kv := newMemoryKV()
	saveTestSession(t, kv, &Session{
		Username:     testUsername,
		AccessToken:  "almost-expired",
		RefreshToken: "old-refresh",
		ExpiresAt:    time.Now().Add(5 * time.Second),
	})

	svc := NewService(mockAPI, kv, testLogger())

	_, err := svc.AccessToken(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to refresh session")
}

func TestAccessToken_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&httpClient.ClientAPIMock{}, newMemoryKV(), testLogger())

	_, err := svc.AccessToken(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	kv := newMemoryKV()
	saveTestSession(t, kv, &Session{
		Username:    testUsername,
		AccessToken: "access-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	})

	svc := NewService(&httpClient.ClientAPIMock{}, kv, testLogger())
	require.True(t, svc.IsAuthenticated(ctx))

	require.NoError(t, svc.Logout(ctx))

	assert.False(t, svc.IsAuthenticated(ctx))
	_, err := svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLogout_NoSession(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&httpClient.ClientAPIMock{}, newMemoryKV(), testLogger())

	// выход без сессии не считается ошибкой
	assert.NoError(t, svc.Logout(ctx))
}

func saveTestSession(t *testing.T, kv storage.KV, session *Session) {
	t.Helper()
	data, err := json.Marshal(session)
	require.NoError(t, err)
	require.NoError(t, kv.Set(context.Background(), storage.KeySession, string(data)))
}
