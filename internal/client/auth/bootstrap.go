package auth

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iudanet/khutwa/internal/client/storage"
)

// Bootstrapper resolves the session once at startup: a stored token that
// the backend still accepts yields an authenticated session, anything else
// an unauthenticated one. Failures are logged, never returned.
type Bootstrapper struct {
	tokens  storage.TokenStorage
	gateway Gateway
	session *Session
	logger  *slog.Logger
	ready   chan struct{}
	once    sync.Once
}

// NewBootstrapper создает Bootstrapper
func NewBootstrapper(tokens storage.TokenStorage, gateway Gateway, session *Session, logger *slog.Logger) *Bootstrapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bootstrapper{
		tokens:  tokens,
		gateway: gateway,
		session: session,
		logger:  logger,
		ready:   make(chan struct{}),
	}
}

// Bootstrap runs the startup transition exactly once per Bootstrapper.
// Later and concurrent calls wait for the first one and return the same state.
func (b *Bootstrapper) Bootstrap(ctx context.Context) State {
	b.once.Do(func() {
		defer close(b.ready)
		b.run(ctx)
	})
	return b.session.State()
}

// Ready returns a channel closed once Bootstrap has finished
func (b *Bootstrapper) Ready() <-chan struct{} {
	return b.ready
}

// Wait blocks until Bootstrap has finished or ctx is done
func (b *Bootstrapper) Wait(ctx context.Context) error {
	select {
	case <-b.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bootstrapper) run(ctx context.Context) {
	token, ok, err := b.tokens.GetToken(ctx)
	if err != nil {
		b.logger.WarnContext(ctx, "failed to read session token", "error", err)
		b.session.clear()
		return
	}
	if !ok || token == "" {
		// Токена нет: сетевой запрос не нужен
		b.logger.DebugContext(ctx, "no stored session token")
		b.session.clear()
		return
	}

	user, err := b.gateway.GetProfile(ctx)
	if err != nil {
		// Любая ошибка (в т.ч. истекший токен или сеть) = unauthenticated, без показа пользователю
		b.logger.WarnContext(ctx, "failed to restore session", "error", err)
		b.session.clear()
		return
	}

	b.logger.DebugContext(ctx, "session restored", "user_id", user.ID)
	b.session.setUser(user)
}
