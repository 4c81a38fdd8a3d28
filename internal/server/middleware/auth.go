package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/docsync/internal/server/handlers"
)

// TokenQueryParam query параметр с токеном для клиентов,
// которые не могут выставить заголовок при WebSocket handshake
const TokenQueryParam = "access_token"

var (
	errMissingToken     = errors.New("missing token")
	errInvalidTokenForm = errors.New("invalid token format")
)

// AuthMiddleware проверяет JWT access token и кладет user_id и username в контекст.
// Токен берется из заголовка Authorization: Bearer, иначе из query access_token.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := tokenFromRequest(r)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthenticated request",
					slog.String("path", r.URL.Path),
					slog.Any("error", err))
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, tokenString)
			if err != nil {
				logger.WarnContext(r.Context(), "invalid access token", slog.Any("error", err))
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, handlers.UsernameKey, claims.Username)

			logger.DebugContext(ctx, "user authenticated",
				slog.String("user_id", claims.UserID),
				slog.String("username", claims.Username))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", errInvalidTokenForm
		}
		return strings.TrimSpace(token), nil
	}
	if token := r.URL.Query().Get(TokenQueryParam); token != "" {
		return token, nil
	}
	return "", errMissingToken
}
