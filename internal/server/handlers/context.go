package handlers

import "context"

// contextKey тип ключей контекста запроса
type contextKey string

const (
	// UserIDKey ключ user_id из токена
	UserIDKey contextKey = "user_id"
	// UsernameKey ключ username из токена
	UsernameKey contextKey = "username"
)

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername извлекает username из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
