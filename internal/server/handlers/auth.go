package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/server/storage"
	"github.com/iudanet/khutwa/internal/validation"
	"github.com/iudanet/khutwa/pkg/api"
)

// AuthConfig настройки регистрации и входа
type AuthConfig struct {
	JWT        JWTConfig
	AdminEmail string // этот email получает роль admin при регистрации
	BcryptCost int    // 0 означает bcrypt.DefaultCost
}

// AuthHandler обрабатывает регистрацию, вход и профиль
type AuthHandler struct {
	responder
	userStorage storage.UserStorage
	uploads     *Uploads
	cfg         AuthConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, uploads *Uploads, cfg AuthConfig) *AuthHandler {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthHandler{
		responder:   responder{logger: logger},
		userStorage: userStorage,
		uploads:     uploads,
		cfg:         cfg,
	}
}

// SignUp обрабатывает POST /api/users/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode signup request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)

	fields := map[string]string{}
	check(fields, "name", validation.ValidateName(req.Name))
	check(fields, "email", validation.ValidateEmail(req.Email))
	check(fields, "password", validation.ValidatePassword(req.Password))
	check(fields, "phone", validation.ValidatePhone(req.Phone))
	check(fields, "dateOfBirth", validation.ValidateDateOfBirth(req.DateOfBirth))
	check(fields, "role", validation.ValidateRole(req.Role))
	if len(fields) > 0 {
		h.sendFieldErrors(w, fields)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RolePatient
	}
	isAdminEmail := h.cfg.AdminEmail != "" && strings.EqualFold(h.cfg.AdminEmail, req.Email)
	switch {
	case isAdminEmail:
		role = models.RoleAdmin
	case role == models.RoleAdmin:
		h.sendFieldErrors(w, map[string]string{"role": "administrator accounts cannot be self-registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.cfg.BcryptCost)
	if err != nil {
		h.sendInternal(w, r, "failed to hash password", err)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: string(hash),
		Profile:      models.Profile{DateOfBirth: req.DateOfBirth},
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists")
			h.sendJSON(w, api.ErrorResponse{
				Error:   http.StatusText(http.StatusConflict),
				Message: "An account with this email already exists",
				Errors:  map[string]string{"email": "email is already registered"},
			}, http.StatusConflict)
			return
		}
		h.sendInternal(w, r, "failed to create user", err)
		return
	}

	token, err := GenerateToken(h.cfg.JWT, user)
	if err != nil {
		h.sendInternal(w, r, "failed to generate token", err)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)))

	h.sendJSON(w, api.AuthResponse{
		User:    user,
		Token:   token,
		Message: "User registered successfully",
	}, http.StatusCreated)
}

// SignIn обрабатывает POST /api/users/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode signin request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	fields := map[string]string{}
	check(fields, "email", validation.ValidateEmail(req.Email))
	if req.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		h.sendFieldErrors(w, fields)
		return
	}

	user, err := h.userStorage.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "signin failed: user not found")
			h.sendError(w, "User not found", http.StatusNotFound)
			return
		}
		h.sendInternal(w, r, "failed to get user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "signin failed: invalid password", slog.String("user_id", user.ID))
		h.sendError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := GenerateToken(h.cfg.JWT, user)
	if err != nil {
		h.sendInternal(w, r, "failed to generate token", err)
		return
	}

	h.logger.InfoContext(ctx, "user signed in successfully", slog.String("user_id", user.ID))

	h.sendJSON(w, api.AuthResponse{User: user, Token: token}, http.StatusOK)
}

// GetProfile обрабатывает GET /api/users/profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	h.sendJSON(w, api.ProfileResponse{User: user}, http.StatusOK)
}

// UpdateProfile обрабатывает PUT /api/users/profile (multipart form).
// Меняются только переданные поля; photo необязателен.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := parseForm(r); err != nil {
		h.logger.WarnContext(ctx, "failed to parse profile form", slog.Any("error", err))
		h.sendError(w, "invalid form data", http.StatusBadRequest)
		return
	}

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	fields := map[string]string{}
	if _, ok := r.Form["name"]; ok {
		user.Name = strings.TrimSpace(r.FormValue("name"))
		check(fields, "name", validation.ValidateName(user.Name))
	}
	if _, ok := r.Form["phone"]; ok {
		user.Phone = strings.TrimSpace(r.FormValue("phone"))
		check(fields, "phone", validation.ValidatePhone(user.Phone))
	}
	if _, ok := r.Form["dateOfBirth"]; ok {
		user.Profile.DateOfBirth = r.FormValue("dateOfBirth")
		check(fields, "dateOfBirth", validation.ValidateDateOfBirth(user.Profile.DateOfBirth))
	}
	if len(fields) > 0 {
		h.sendFieldErrors(w, fields)
		return
	}

	photo, err := h.uploads.SavePhoto(r)
	if err != nil {
		if errors.Is(err, errUnsupportedPhoto) {
			h.sendFieldErrors(w, map[string]string{"photo": err.Error()})
			return
		}
		h.sendInternal(w, r, "failed to save photo", err)
		return
	}
	oldPhoto := user.Profile.Photo
	if photo != "" {
		user.Profile.Photo = photo
	}

	if err := h.userStorage.UpdateProfile(ctx, user); err != nil {
		h.discardPhoto(ctx, h.uploads, photo)
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "User not found", http.StatusNotFound)
			return
		}
		h.sendInternal(w, r, "failed to update profile", err)
		return
	}
	if photo != "" && oldPhoto != photo {
		h.discardPhoto(ctx, h.uploads, oldPhoto)
	}

	h.logger.InfoContext(ctx, "profile updated", slog.String("user_id", user.ID))
	h.sendJSON(w, api.ProfileResponse{User: user}, http.StatusOK)
}

// currentUser загружает пользователя из контекста запроса.
// Удаленный пользователь с валидным токеном получает 401.
func (h *AuthHandler) currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		h.sendError(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "token of a deleted user", slog.String("user_id", userID))
			h.sendError(w, "User no longer exists", http.StatusUnauthorized)
			return nil, false
		}
		h.sendInternal(w, r, "failed to get user", err)
		return nil, false
	}

	return user, true
}
