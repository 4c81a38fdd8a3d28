// Package config загружает конфигурацию сервера из флагов и переменных окружения.
// Переменные окружения задают значения по умолчанию, флаги их переопределяют.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	FormatText = "text"
	FormatJSON = "json"
)

// Config конфигурация сервера синхронизации
type Config struct {
	Addr            string
	DBDriver        string
	DBPath          string
	DatabaseURL     string
	RedisURL        string
	JWTSecret       string
	LogFormat       string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	AuthRateLimit   int
	LogLevel        slog.Level
	ShowVersion     bool
}

// Load разбирает args (без имени программы).
// Возвращает flag.ErrHelp, если запрошена справка.
func Load(args []string) (*Config, error) {
	return load(args, os.Getenv, os.Stderr)
}

func load(args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	env := envReader{getenv: getenv}
	cfg := &Config{
		Addr:            env.str("DOCSYNC_ADDR", ":8080"),
		DBDriver:        env.str("DOCSYNC_DB_DRIVER", DriverSQLite),
		DBPath:          env.str("DOCSYNC_DB_PATH", "docsync.db"),
		DatabaseURL:     env.str("DATABASE_URL", ""),
		RedisURL:        env.str("REDIS_URL", ""),
		JWTSecret:       env.str("DOCSYNC_JWT_SECRET", ""),
		LogFormat:       env.str("LOG_FORMAT", FormatText),
		TokenTTL:        env.duration("DOCSYNC_TOKEN_TTL", 24*time.Hour),
		ShutdownTimeout: env.duration("DOCSYNC_SHUTDOWN_TIMEOUT", 10*time.Second),
		AuthRateLimit:   env.int("DOCSYNC_RATE_LIMIT", 20),
		LogLevel:        env.level("LOG_LEVEL", slog.LevelInfo),
	}
	if err := env.err(); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("docsync-server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address (DOCSYNC_ADDR)")
	fs.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "document store: sqlite or postgres (DOCSYNC_DB_DRIVER)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path (DOCSYNC_DB_PATH)")
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "postgres connection string (DATABASE_URL)")
	fs.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "redis url for cross-instance fan-out, empty for in-process (REDIS_URL)")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "secret for signing access tokens (DOCSYNC_JWT_SECRET)")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "access token lifetime (DOCSYNC_TOKEN_TTL)")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout (DOCSYNC_SHUTDOWN_TIMEOUT)")
	fs.IntVar(&cfg.AuthRateLimit, "rate-limit", cfg.AuthRateLimit, "auth requests per minute per client (DOCSYNC_RATE_LIMIT)")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error (LOG_LEVEL)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json (LOG_FORMAT)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			errs = append(errs, errors.New("sqlite driver requires a database path"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("postgres driver requires DATABASE_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown database driver %q", c.DBDriver))
	}

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL))
	}
	if c.AuthRateLimit <= 0 {
		errs = append(errs, fmt.Errorf("rate limit must be positive, got %d", c.AuthRateLimit))
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// NewLogger создает slog.Logger по LogFormat и LogLevel
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// envReader читает переменные окружения и копит ошибки разбора
type envReader struct {
	getenv func(string) string
	errs   []error
}

func (e *envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(e.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e *envReader) int(key string, fallback int) int {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func (e *envReader) duration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func (e *envReader) level(key string, fallback slog.Level) slog.Level {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return l
}

func (e *envReader) err() error {
	return errors.Join(e.errs...)
}
