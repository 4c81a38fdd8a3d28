package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/validation"
	pkgapi "github.com/iudanet/docsync/pkg/api"
)

var (
	// ErrNotLoggedIn нет сохраненных данных авторизации
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrSessionExpired срок действия токена истек
	ErrSessionExpired = errors.New("session expired, please login again")
)

// APIClient часть HTTP клиента, нужная сервису авторизации
type APIClient interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	BaseURL() string
}

// AuthService реализует Service поверх HTTP API и локального хранилища
type AuthService struct {
	apiClient APIClient
	authStore storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
}

var _ Service = (*AuthService)(nil)

// NewService создает новый сервис авторизации
func NewService(apiClient APIClient, authStore storage.AuthStorage, logger *slog.Logger) *AuthService {
	return &AuthService{
		apiClient: apiClient,
		authStore: authStore,
		logger:    logger,
		now:       time.Now,
	}
}

// Register регистрирует нового пользователя
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return "", fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("User registered", "username", username, "user_id", resp.UserID)
	return resp.UserID, nil
}

// Login выполняет аутентификацию пользователя и сохраняет токен
func (s *AuthService) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("invalid password: %w", validation.ErrEmptyPassword)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	authData := &storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ServerURL:   s.apiClient.BaseURL(),
		ExpiresAt:   s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}

	if err := s.authStore.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("User logged in", "username", username, "user_id", resp.UserID)
	return authData, nil
}

// Logout удаляет локальные данные авторизации.
// Токен без состояния на сервере, поэтому сервер не уведомляется.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

// Current возвращает действующие данные авторизации
func (s *AuthService) Current(ctx context.Context) (*storage.AuthData, error) {
	authData, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	if s.now().Unix() >= authData.ExpiresAt {
		return authData, ErrSessionExpired
	}
	return authData, nil
}
