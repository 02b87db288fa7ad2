package handlers

import (
	"context"

	"github.com/iudanet/khutwa/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
	// RoleKey ключ для хранения роли пользователя в контексте
	RoleKey contextKey = "role"
)

// WithUser кладет данные аутентифицированного пользователя в контекст
func WithUser(ctx context.Context, userID string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, RoleKey, role)
}

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

// GetRole извлекает роль из контекста запроса
func GetRole(ctx context.Context) models.Role {
	role, _ := ctx.Value(RoleKey).(models.Role)
	return role
}
