// Package auth owns the client session: the Session holder, the startup
// Bootstrapper and the sign-up, sign-in, logout and profile flows that are
// the only writers of the session.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	clientapi "github.com/iudanet/khutwa/internal/client/api"
	"github.com/iudanet/khutwa/internal/client/storage"
	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/validation"
	"github.com/iudanet/khutwa/pkg/api"
)

// Service предоставляет функции авторизации
type Service struct {
	gateway Gateway
	tokens  storage.TokenStorage
	session *Session
	logger  *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(gateway Gateway, tokens storage.TokenStorage, session *Session, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gateway: gateway,
		tokens:  tokens,
		session: session,
		logger:  logger,
	}
}

// Session returns the session this service writes to
func (s *Service) Session() *Session {
	return s.session
}

// SignUpInput содержит данные формы регистрации
type SignUpInput struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	Role        models.Role
	DateOfBirth string
}

// ProfileUpdate содержит изменяемые поля профиля. Пустые поля не отправляются.
type ProfileUpdate struct {
	Photo       *clientapi.FilePart
	Name        string
	Phone       string
	DateOfBirth string
}

// SignUp registers a new account, stores its token and authenticates the session
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Role == "" {
		in.Role = models.RolePatient
	}

	fields := map[string]string{}
	check(fields, "name", validation.ValidateName(in.Name))
	check(fields, "email", validation.ValidateEmail(in.Email))
	check(fields, "password", validation.ValidatePassword(in.Password))
	check(fields, "phone", validation.ValidatePhone(in.Phone))
	check(fields, "role", validation.ValidateRole(in.Role))
	check(fields, "dateOfBirth", validation.ValidateDateOfBirth(in.DateOfBirth))
	if len(fields) > 0 {
		return nil, clientapi.Validation("Please fix the highlighted fields.", fields)
	}

	resp, err := s.gateway.SignUp(ctx, api.SignUpRequest{
		Name:        in.Name,
		Email:       in.Email,
		Password:    in.Password,
		Phone:       in.Phone,
		Role:        in.Role,
		DateOfBirth: in.DateOfBirth,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "sign up failed", "error", err)
		return nil, err
	}

	return s.establish(ctx, resp)
}

// SignIn authenticates with email and password, stores the token, fetches
// the profile and authenticates the session
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)

	fields := map[string]string{}
	check(fields, "email", validation.ValidateEmail(email))
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, clientapi.Validation("Please fix the highlighted fields.", fields)
	}

	resp, err := s.gateway.SignIn(ctx, api.SignInRequest{Email: email, Password: password})
	if err != nil {
		s.logger.WarnContext(ctx, "sign in failed", "error", err)
		return nil, signInError(err)
	}

	// Профиль всегда запрашивается отдельно после входа
	resp.User = nil
	return s.establish(ctx, resp)
}

// Logout deletes the stored token and then marks the session unauthenticated.
// The session is cleared even when the delete fails; that error is returned.
func (s *Service) Logout(ctx context.Context) error {
	// Порядок важен: сначала токен, потом сессия
	err := s.tokens.DeleteToken(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete session token", "error", err)
		err = &clientapi.Error{Kind: clientapi.KindUnexpected, Message: "failed to remove the saved session", Err: err}
	}
	s.session.clear()
	return err
}

// UpdateProfile sends the changed fields and replaces the session profile
// with the backend's response
func (s *Service) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	form := map[string]string{}
	fields := map[string]string{}

	if name := strings.TrimSpace(upd.Name); name != "" {
		check(fields, "name", validation.ValidateName(name))
		form["name"] = name
	}
	if phone := strings.TrimSpace(upd.Phone); phone != "" {
		check(fields, "phone", validation.ValidatePhone(phone))
		form["phone"] = phone
	}
	if upd.DateOfBirth != "" {
		check(fields, "dateOfBirth", validation.ValidateDateOfBirth(upd.DateOfBirth))
		form["dateOfBirth"] = upd.DateOfBirth
	}
	if len(fields) > 0 {
		return nil, clientapi.Validation("Please fix the highlighted fields.", fields)
	}
	if len(form) == 0 && upd.Photo == nil {
		return nil, clientapi.Validation("Nothing to update.", nil)
	}

	user, err := s.gateway.UpdateProfile(ctx, form, upd.Photo)
	if err != nil {
		s.logger.WarnContext(ctx, "profile update failed", "error", err)
		return nil, s.invalidateOnAuth(ctx, err)
	}

	s.session.setUser(user)
	return user, nil
}

// RefreshProfile re-fetches the profile. An authorization failure means the
// token is no longer valid: the token is deleted and the session cleared.
func (s *Service) RefreshProfile(ctx context.Context) (*models.User, error) {
	user, err := s.gateway.GetProfile(ctx)
	if err != nil {
		return nil, s.invalidateOnAuth(ctx, err)
	}

	s.session.setUser(user)
	return user, nil
}

// establish сохраняет токен и заполняет сессию
func (s *Service) establish(ctx context.Context, resp *api.AuthResponse) (*models.User, error) {
	if resp.Token == "" {
		return nil, &clientapi.Error{Kind: clientapi.KindUnexpected, Message: "the server did not return a session token"}
	}

	if err := s.tokens.SaveToken(ctx, resp.Token); err != nil {
		s.logger.ErrorContext(ctx, "failed to save session token", "error", err)
		return nil, &clientapi.Error{Kind: clientapi.KindUnexpected, Message: "failed to save the session", Err: err}
	}

	user := resp.User
	if user == nil {
		var err error
		user, err = s.gateway.GetProfile(ctx)
		if err != nil {
			// Откатываем токен, чтобы не оставить полуавторизованное состояние
			if delErr := s.tokens.DeleteToken(ctx); delErr != nil {
				s.logger.ErrorContext(ctx, "failed to roll back session token", "error", delErr)
			}
			s.logger.WarnContext(ctx, "failed to fetch profile after authentication", "error", err)
			return nil, err
		}
	}

	s.session.setUser(user)
	s.logger.InfoContext(ctx, "authenticated", "user_id", user.ID)
	return user, nil
}

// invalidateOnAuth сбрасывает сессию, если бэкенд отверг токен
func (s *Service) invalidateOnAuth(ctx context.Context, err error) error {
	var apiErr *clientapi.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return err
	}

	s.logger.InfoContext(ctx, "session rejected by server, signing out")
	if logoutErr := s.Logout(ctx); logoutErr != nil {
		return fmt.Errorf("%w (logout: %v)", err, logoutErr)
	}
	return err
}

// signInError заменяет сообщения 401/404 на понятные пользователю
func signInError(err error) error {
	var apiErr *clientapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	out := *apiErr
	switch {
	case apiErr.Status == http.StatusUnauthorized:
		out.Message = "The email or password you entered is incorrect. Please try again."
		out.Fields = map[string]string{
			"email":    "Invalid email or password",
			"password": "Invalid email or password",
		}
	case apiErr.Kind == clientapi.KindNotFound:
		out.Message = "No account found with this email. Would you like to create one?"
		out.Fields = map[string]string{"email": "Account not found"}
	default:
		return err
	}
	return &out
}

func check(fields map[string]string, name string, err error) {
	if err != nil {
		fields[name] = err.Error()
	}
}
