package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/iudanet/docsync/internal/client/auth"
	"github.com/iudanet/docsync/internal/client/conn"
	"github.com/iudanet/docsync/internal/client/iocli"
	"github.com/iudanet/docsync/internal/client/storage"
	pkgapi "github.com/iudanet/docsync/pkg/api"
)

//go:generate moq -out documentclient_mock.go . DocumentClient

// PasswordEnv переменная окружения с паролем для неинтерактивного входа
const PasswordEnv = "DOCSYNC_PASSWORD"

var (
	// ErrUnknownCommand неизвестная команда
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNotAuthenticated команда требует входа
	ErrNotAuthenticated = errors.New("not authenticated. Please run 'docsync login' first")
)

// DocumentClient чтение документа с сервера
type DocumentClient interface {
	GetDocument(ctx context.Context, accessToken, documentID string) (*pkgapi.DocumentResponse, error)
}

// Options параметры интерактивной сессии
type Options struct {
	DebounceDelay     time.Duration
	ReconnectInterval time.Duration
	PresenceTTL       time.Duration
	InitTimeout       time.Duration // ожидание первого init перед вводом
}

// DefaultOptions параметры по умолчанию для терминала
func DefaultOptions() Options {
	return Options{
		PresenceTTL: 60 * time.Second,
		InitTimeout: 10 * time.Second,
	}
}

func (o Options) withDefaults() Options {
	if o.InitTimeout <= 0 {
		o.InitTimeout = DefaultOptions().InitTimeout
	}
	return o
}

type Cli struct {
	io        iocli.IO
	auth      auth.Service
	documents DocumentClient
	snapshots storage.SnapshotStorage
	metadata  storage.MetadataStorage
	dialer    conn.Dialer
	logger    *slog.Logger
	opts      Options
}

func New(
	io iocli.IO,
	authService auth.Service,
	documents DocumentClient,
	snapshots storage.SnapshotStorage,
	metadata storage.MetadataStorage,
	dialer conn.Dialer,
	logger *slog.Logger,
	opts Options,
) *Cli {
	return &Cli{
		io:        io,
		auth:      authService,
		documents: documents,
		snapshots: snapshots,
		metadata:  metadata,
		dialer:    dialer,
		logger:    logger,
		opts:      opts.withDefaults(),
	}
}

// currentAuth возвращает действующие данные авторизации
func (c *Cli) currentAuth(ctx context.Context) (*storage.AuthData, error) {
	authData, err := c.auth.Current(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return authData, nil
}

// readPassword читает пароль из DOCSYNC_PASSWORD или интерактивно
func (c *Cli) readPassword(prompt string) (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// PrintUsage prints usage information
func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `docsync - collaborative document editor

Usage:
  docsync [flags] <command> [arguments]

Commands:
  register              Register a new account
  login                 Login to the server
  logout                Remove the local session
  status                Show authentication status and cached documents
  open <documentId>     Edit a document together with other users
  cat <documentId>      Print a document (cached copy when offline)

Flags:
  -server string        Server URL (default "http://localhost:8080")
  -db string            Path to local database (default "docsync-client.db")
  -version              Show version information

Inside 'open':
  <text>                Append a line to the document
  :undo, :redo          Move through the edit history
  :cursor N             Share cursor position N with other users
  :up, :down            Load more lines above/below the visible window
  :show                 Print the visible document and remote cursors
  :quit                 Send pending changes and exit

Environment:
  DOCSYNC_PASSWORD      Password for register/login without a prompt
`)
}
