package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentkeeper/internal/client/auth"
)

func TestCli_runRegister(t *testing.T) {
	t.Setenv(EnvPassword, "")
	ctx := context.Background()

	mockIO, rec := newRecorderIO()
	mockIO.ReadInputFunc = inputSequence("alice")
	passwords := []string{"verylongpassword123", "verylongpassword123"}
	mockIO.ReadPasswordFunc = func(prompt string) (string, error) {
		password := passwords[0]
		passwords = passwords[1:]
		return password, nil
	}

	mockAuth := &auth.ServiceMock{
		RegisterFunc: func(ctx context.Context, username, password string) (*auth.RegisterResult, error) {
			return &auth.RegisterResult{UserID: "user-1", Username: username}, nil
		},
	}

	cli := &Cli{io: mockIO, authService: mockAuth}

	err := cli.runRegister(ctx)
	require.NoError(t, err)

	calls := mockAuth.RegisterCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "alice", calls[0].Username)
	assert.Equal(t, "verylongpassword123", calls[0].Password)

	output := rec.output()
	assert.Contains(t, output, "Registration successful")
	assert.Contains(t, output, "user-1")
}

func TestCli_runRegister_PasswordMismatch(t *testing.T) {
	t.Setenv(EnvPassword, "")
	ctx := context.Background()

	mockIO, _ := newRecorderIO()
	mockIO.ReadInputFunc = inputSequence("alice")
	passwords := []string{"verylongpassword123", "differentpassword456"}
	mockIO.ReadPasswordFunc = func(prompt string) (string, error) {
		password := passwords[0]
		passwords = passwords[1:]
		return password, nil
	}

	mockAuth := &auth.ServiceMock{}
	cli := &Cli{io: mockIO, authService: mockAuth}

	err := cli.runRegister(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
	assert.Empty(t, mockAuth.RegisterCalls())
}

func TestCli_runRegister_PasswordFromEnv(t *testing.T) {
	t.Setenv(EnvPassword, "env-password-123")
	ctx := context.Background()

	mockIO, _ := newRecorderIO()
	mockIO.ReadInputFunc = inputSequence("alice")

	mockAuth := &auth.ServiceMock{
		RegisterFunc: func(ctx context.Context, username, password string) (*auth.RegisterResult, error) {
			return &auth.RegisterResult{UserID: "user-1", Username: username}, nil
		},
	}

	cli := &Cli{io: mockIO, authService: mockAuth}

	err := cli.runRegister(ctx)
	require.NoError(t, err)

	// Пароль из окружения: ни одного интерактивного запроса
	assert.Empty(t, mockIO.ReadPasswordCalls())
	require.Len(t, mockAuth.RegisterCalls(), 1)
	assert.Equal(t, "env-password-123", mockAuth.RegisterCalls()[0].Password)
}

func TestCli_runLogin(t *testing.T) {
	t.Setenv(EnvPassword, "")
	ctx := context.Background()

	mockIO, rec := newRecorderIO()
	mockIO.ReadInputFunc = inputSequence("alice")
	mockIO.ReadPasswordFunc = func(prompt string) (string, error) {
		return "verylongpassword123", nil
	}

	mockAuth := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, username, password string) (*auth.Session, error) {
			return &auth.Session{
				Username:  username,
				ExpiresAt: time.Now().Add(15 * time.Minute),
			}, nil
		},
	}

	cli := &Cli{io: mockIO, authService: mockAuth}

	err := cli.runLogin(ctx)
	require.NoError(t, err)

	calls := mockAuth.LoginCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "alice", calls[0].Username)

	output := rec.output()
	assert.Contains(t, output, "Login successful")
	assert.Contains(t, output, "alice")
}

func TestCli_runLogout(t *testing.T) {
	ctx := context.Background()

	mockIO, rec := newRecorderIO()
	mockAuth := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}

	cli := &Cli{io: mockIO, authService: mockAuth}

	err := cli.runLogout(ctx)
	require.NoError(t, err)

	assert.Len(t, mockAuth.LogoutCalls(), 1)
	assert.Contains(t, rec.output(), "Logout successful")
}
