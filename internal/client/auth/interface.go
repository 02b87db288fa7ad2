package auth

import (
	"context"

	clientapi "github.com/iudanet/khutwa/internal/client/api"
	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/pkg/api"
)

//go:generate moq -out gateway_mock.go . Gateway

// Gateway is the part of the backend API the auth flows need.
// *clientapi.Client implements it.
type Gateway interface {
	// SignUp регистрирует нового пользователя
	SignUp(ctx context.Context, req api.SignUpRequest) (*api.AuthResponse, error)

	// SignIn выполняет аутентификацию пользователя
	SignIn(ctx context.Context, req api.SignInRequest) (*api.AuthResponse, error)

	// GetProfile возвращает профиль по текущему токену
	GetProfile(ctx context.Context) (*models.User, error)

	// UpdateProfile обновляет профиль и возвращает его новую версию целиком
	UpdateProfile(ctx context.Context, fields map[string]string, photo *clientapi.FilePart) (*models.User, error)
}

var _ Gateway = (*clientapi.Client)(nil)
