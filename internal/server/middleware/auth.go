package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/khutwa/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки bearer токена
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(r.Context(), "missing Authorization header", "path", r.URL.Path)
				writeError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				// Сам заголовок не логируем: в нем может быть токен
				logger.WarnContext(r.Context(), "invalid Authorization header format")
				writeError(w, "Invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateToken(jwtConfig, parts[1])
			if err != nil {
				logger.WarnContext(r.Context(), "invalid bearer token", "error", err)
				writeError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := handlers.WithUser(r.Context(), claims.UserID, claims.Role)

			logger.DebugContext(ctx, "user authenticated", "user_id", claims.UserID, "role", claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
