package auth

import (
	"context"

	"github.com/iudanet/docsync/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for authentication operations.
// Токен доступа хранится локально в storage.AuthStorage.
type Service interface {
	// Register регистрирует нового пользователя и возвращает его ID
	Register(ctx context.Context, username, password string) (string, error)

	// Login выполняет аутентификацию и сохраняет токен
	Login(ctx context.Context, username, password string) (*storage.AuthData, error)

	// Logout удаляет локальные данные авторизации
	Logout(ctx context.Context) error

	// Current возвращает действующие данные авторизации
	// ErrNotLoggedIn если данных нет, ErrSessionExpired если токен истек
	Current(ctx context.Context) (*storage.AuthData, error)
}
