// Package server assembles the khutwa HTTP API: routes, middleware and
// the listener lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/khutwa/internal/server/config"
	"github.com/iudanet/khutwa/internal/server/handlers"
	"github.com/iudanet/khutwa/internal/server/middleware"
	"github.com/iudanet/khutwa/internal/server/storage"
)

const (
	// rateLimiterIdleTTL время, после которого неактивный IP забывается
	rateLimiterIdleTTL = 10 * time.Minute
	shutdownTimeout    = 10 * time.Second
	healthPath         = "/api/health"
)

// Store объединяет все хранилища, нужные API
type Store interface {
	storage.UserStorage
	storage.ShareStorage
	storage.ContentStorage
	storage.SensorStorage
	handlers.Pinger
}

// Server HTTP сервер khutwa
type Server struct {
	httpServer *http.Server
	limiter    *middleware.RateLimiter
	logger     *slog.Logger
}

// New создает сервер; слушать порт начинает Run
func New(cfg *config.Config, store Store, logger *slog.Logger, version string) *Server {
	limiter := middleware.NewRateLimiter(cfg.Rate, cfg.Burst, rateLimiterIdleTTL, logger)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(cfg, store, limiter, logger, version),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		limiter: limiter,
		logger:  logger,
	}
}

// Handler возвращает корневой http.Handler (для тестов)
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Close освобождает фоновые ресурсы сервера. Повторный вызов безопасен.
func (s *Server) Close() {
	s.limiter.Stop()
}

// Run слушает порт до отмены ctx, затем корректно завершает соединения
func (s *Server) Run(ctx context.Context) error {
	defer s.Close()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("addr", s.httpServer.Addr))
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// NewRouter регистрирует все маршруты /api и /uploads.
// Цепочка: recovery -> logging -> rate limit -> auth (для защищенных маршрутов).
func NewRouter(cfg *config.Config, store Store, limiter *middleware.RateLimiter, logger *slog.Logger, version string) http.Handler {
	jwtConfig := handlers.JWTConfig{
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
	}
	uploads := handlers.NewUploads(cfg.UploadDir)

	authHandler := handlers.NewAuthHandler(logger, store, uploads, handlers.AuthConfig{
		JWT:        jwtConfig,
		AdminEmail: cfg.AdminEmail,
	})
	shareHandler := handlers.NewShareHandler(logger, store, store)
	contentHandler := handlers.NewContentHandler(logger, store, uploads)
	sensorHandler := handlers.NewSensorHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store, version)

	auth := middleware.AuthMiddleware(logger, jwtConfig)
	protected := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	mux := http.NewServeMux()

	// Публичные маршруты
	mux.HandleFunc("GET "+healthPath, healthHandler.Health)
	mux.HandleFunc("POST /api/users/signup", authHandler.SignUp)
	mux.HandleFunc("POST /api/users/signin", authHandler.SignIn)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))

	// Профиль
	mux.Handle("GET /api/users/profile", protected(authHandler.GetProfile))
	mux.Handle("PUT /api/users/profile", protected(authHandler.UpdateProfile))

	// Доступ к данным
	mux.Handle("POST /api/users/share", protected(shareHandler.Share))
	mux.Handle("DELETE /api/users/unshare/{id}", protected(shareHandler.Unshare))
	mux.Handle("DELETE /api/users/shared/remove/{id}", protected(shareHandler.RemoveShared))
	mux.Handle("GET /api/users/shared/users-i-can-see", protected(shareHandler.UsersICanSee))
	mux.Handle("GET /api/users/shared/users-sharing-with-me", protected(shareHandler.UsersSharingWithMe))
	mux.Handle("GET /api/users/shared/search", protected(shareHandler.Search))

	// Образовательный контент
	mux.Handle("GET /api/educational-content", protected(contentHandler.List))
	mux.Handle("POST /api/educational-content", protected(contentHandler.Create))
	mux.Handle("GET /api/educational-content/stats/overview", protected(contentHandler.Stats))
	mux.Handle("GET /api/educational-content/category/{category}", protected(contentHandler.ByCategory))
	mux.Handle("GET /api/educational-content/{id}", protected(contentHandler.Get))
	mux.Handle("PUT /api/educational-content/{id}", protected(contentHandler.Update))
	mux.Handle("DELETE /api/educational-content/{id}", protected(contentHandler.Delete))

	// Показания стелек
	mux.Handle("GET /api/sensor-data/latest", protected(sensorHandler.Latest))
	mux.Handle("POST /api/sensor-data", protected(sensorHandler.Push))

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(limiter)(handler)
	handler = middleware.LoggingMiddleware(logger, healthPath)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}
