// Package config содержит настройки клиента.
// Источники по убыванию приоритета: флаги, переменные окружения, файл .env, значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Драйверы локального хранилища
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// DefaultEnvFile файл окружения, который читается, если другой не указан
const DefaultEnvFile = ".env"

// Config настройки клиента.
// Теги используются парсером go-flags: long - имя флага, env - переменная окружения.
type Config struct {
	ServerURL     string        `long:"server" env:"CARSCOPE_SERVER" default:"http://localhost:8000" description:"Backend URL"`
	StoragePath   string        `long:"db" env:"CARSCOPE_DB" default:"carscope.db" description:"Path to local database"`
	StorageDriver string        `long:"storage" env:"CARSCOPE_STORAGE" default:"bolt" description:"Local storage driver (bolt, sqlite, memory)"`
	LogLevel      string        `long:"log-level" env:"CARSCOPE_LOG_LEVEL" default:"info" description:"Log level (debug, info, warn, error)"`
	Timeout       time.Duration `long:"timeout" env:"CARSCOPE_TIMEOUT" default:"30s" description:"Backend request timeout"`
	ReturnDelay   time.Duration `long:"return-delay" env:"CARSCOPE_RETURN_DELAY" default:"100ms" description:"Delay before returning to the page after a deferred action"`
}

// LoadEnvFile загружает переменные из файла в окружение.
// Уже заданные переменные не перезаписываются.
// Отсутствие файла по умолчанию не считается ошибкой.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Validate проверяет значения конфигурации
func (c Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.ServerURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("invalid server url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("server url must use http or https, got %q", c.ServerURL))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("server url %q has no host", c.ServerURL))
	}

	switch c.StorageDriver {
	case DriverBolt, DriverSQLite:
		if strings.TrimSpace(c.StoragePath) == "" {
			errs = append(errs, fmt.Errorf("storage path cannot be empty for driver %s", c.StorageDriver))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.StorageDriver))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive"))
	}
	if c.ReturnDelay < 0 {
		errs = append(errs, fmt.Errorf("return delay cannot be negative"))
	}

	return errors.Join(errs...)
}

// SlogLevel возвращает уровень логирования, info при неизвестном значении
func (c Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel разбирает имя уровня логирования
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
