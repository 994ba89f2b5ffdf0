// Package config загружает настройки сервера из YAML файла
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RateLimit ограничивает частоту запросов с одного IP
type RateLimit struct {
	Requests int           `yaml:"requests"` // Requests запросов на окно
	Window   time.Duration `yaml:"window"`   // Window размер окна
}

// Config содержит все настройки сервера
type Config struct {
	Addr            string        `yaml:"addr"`              // Addr адрес HTTP listener'а
	DatabasePath    string        `yaml:"database_path"`     // DatabasePath путь к sqlite файлу
	JWTSecret       string        `yaml:"jwt_secret"`        // JWTSecret ключ подписи access токенов
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"`  // AccessTokenTTL срок жизни access токена
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl"` // RefreshTokenTTL срок жизни refresh токена
	RateLimit       RateLimit     `yaml:"rate_limit"`        // RateLimit настройки rate limiter'а
	LogLevel        string        `yaml:"log_level"`         // LogLevel debug|info|warn|error
}

// Default возвращает конфигурацию со значениями по умолчанию.
// JWTSecret умышленно пуст: его обязан задать оператор.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		DatabasePath:    "contentkeeper.db",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 720 * time.Hour,
		RateLimit: RateLimit{
			Requests: 100,
			Window:   time.Minute,
		},
		LogLevel: "info",
	}
}

// Load читает YAML файл поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be positive")
	}
	if c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("refresh_token_ttl must be positive")
	}
	return nil
}

// SlogLevel переводит текстовый уровень в slog.Level.
// Неизвестное значение трактуется как info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
