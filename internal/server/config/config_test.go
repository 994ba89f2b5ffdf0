package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "contentkeeper.db", cfg.DatabasePath)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 720*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
addr: ":9090"
database_path: "/var/lib/contentkeeper/server.db"
jwt_secret: "test-secret"
access_token_ttl: 30m
refresh_token_ttl: 168h
rate_limit:
  requests: 10
  window: 30s
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/var/lib/contentkeeper/server.db", cfg.DatabasePath)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialOverride(t *testing.T) {
	// Незаданные поля остаются значениями по умолчанию
	path := writeConfigFile(t, `
jwt_secret: "test-secret"
addr: ":3000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "contentkeeper.db", cfg.DatabasePath)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "addr: [unterminated")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_MissingSecret(t *testing.T) {
	path := writeConfigFile(t, `addr: ":8080"`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret is required")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) { c.JWTSecret = "secret" },
			wantErr: "",
		},
		{
			name:    "empty addr",
			mutate:  func(c *Config) { c.JWTSecret = "secret"; c.Addr = "" },
			wantErr: "addr is required",
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.JWTSecret = "secret"; c.DatabasePath = "" },
			wantErr: "database_path is required",
		},
		{
			name:    "zero access ttl",
			mutate:  func(c *Config) { c.JWTSecret = "secret"; c.AccessTokenTTL = 0 },
			wantErr: "access_token_ttl must be positive",
		},
		{
			name:    "negative refresh ttl",
			mutate:  func(c *Config) { c.JWTSecret = "secret"; c.RefreshTokenTTL = -time.Hour },
			wantErr: "refresh_token_ttl must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			assert.Equal(t, tt.want, cfg.SlogLevel())
		})
	}
}
