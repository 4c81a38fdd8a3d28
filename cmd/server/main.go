package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/docsync/internal/config"
	"github.com/iudanet/docsync/internal/server/broker"
	"github.com/iudanet/docsync/internal/server/handlers"
	"github.com/iudanet/docsync/internal/server/hub"
	"github.com/iudanet/docsync/internal/server/middleware"
	"github.com/iudanet/docsync/internal/server/storage"
	"github.com/iudanet/docsync/internal/server/storage/postgres"
	"github.com/iudanet/docsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// store хранилище сервера: пользователи и документы в одной базе
type store interface {
	storage.UserStorage
	storage.DocumentStorage
	Ping(ctx context.Context) error
	Close() error
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	logger := cfg.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	b, err := openBroker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Error("failed to close broker", slog.Any("error", err))
		}
	}()

	h := hub.New(db, b, logger, hub.Options{})

	limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, time.Minute, logger)
	defer limiter.Stop()

	server := &http.Server{
		Addr: cfg.Addr,
		Handler: newRouter(routes{
			logger:   logger,
			users:    db,
			docs:     db,
			db:       db,
			channels: h,
			limiter:  limiter,
			jwt: handlers.JWTConfig{
				Secret:         []byte(cfg.JWTSecret),
				AccessTokenTTL: cfg.TokenTTL,
			},
			version: Version,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("docsync server listening",
			slog.String("addr", cfg.Addr),
			slog.String("db_driver", cfg.DBDriver),
			slog.Bool("redis", cfg.RedisURL != ""),
			slog.String("version", Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Shutdown не ждет hijacked соединения, WebSocket закрывает hub
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", slog.Any("error", err))
	}
	if err := h.Close(); err != nil {
		logger.Error("hub close failed", slog.Any("error", err))
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		s, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres storage: %w", err)
		}
		return s, nil
	default:
		s, err := sqlite.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		return s, nil
	}
}

func openBroker(ctx context.Context, cfg *config.Config, logger *slog.Logger) (broker.Broker, error) {
	if cfg.RedisURL == "" {
		return broker.NewLocal(logger), nil
	}
	b, err := broker.NewRedis(ctx, cfg.RedisURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return b, nil
}

func printVersion() {
	fmt.Printf("docsync server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
