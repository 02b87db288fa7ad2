package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/server/storage"
	"github.com/iudanet/khutwa/internal/server/storage/sqlite"
	"github.com/iudanet/khutwa/pkg/api"
)

// failingUserStorage отдает ошибку на любой вызов
type failingUserStorage struct {
	storage.UserStorage
	err error
}

func (m *failingUserStorage) CreateUser(context.Context, *models.User) error { return m.err }

func (m *failingUserStorage) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, m.err
}

func newTestAuthHandler(t *testing.T, users storage.UserStorage) *AuthHandler {
	t.Helper()
	return NewAuthHandler(setupTestLogger(), users, NewUploads(t.TempDir()), AuthConfig{
		JWT:        testJWT(),
		AdminEmail: "admin@khutwa.example",
		BcryptCost: bcrypt.MinCost,
	})
}

func TestAuthHandler_SignUp(t *testing.T) {
	tests := []struct {
		req        api.SignUpRequest
		wantFields []string
		name       string
		wantRole   models.Role
		wantCode   int
	}{
		{
			name:     "patient by default",
			req:      api.SignUpRequest{Name: "Ann Lee", Email: "Ann@Example.com", Password: "secret1"},
			wantCode: http.StatusCreated,
			wantRole: models.RolePatient,
		},
		{
			name:     "doctor",
			req:      api.SignUpRequest{Name: "Dr Bob", Email: "bob@example.com", Password: "secret1", Role: models.RoleDoctor, Phone: "+7 900 000-00-00"},
			wantCode: http.StatusCreated,
			wantRole: models.RoleDoctor,
		},
		{
			name:     "configured admin email",
			req:      api.SignUpRequest{Name: "Admin", Email: "admin@khutwa.example", Password: "secret1"},
			wantCode: http.StatusCreated,
			wantRole: models.RoleAdmin,
		},
		{
			name:       "self-registered admin",
			req:        api.SignUpRequest{Name: "Eve", Email: "eve@example.com", Password: "secret1", Role: models.RoleAdmin},
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"role"},
		},
		{
			name:       "invalid fields",
			req:        api.SignUpRequest{Email: "not-an-email", Password: "123", Phone: "abc", DateOfBirth: "31.12.1990"},
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"name", "email", "password", "phone", "dateOfBirth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestAuthHandler(t, setupTestStore(t))

			w := httptest.NewRecorder()
			handler.SignUp(w, jsonRequest(t, http.MethodPost, "/api/users/signup", tt.req))

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())

			if tt.wantCode != http.StatusCreated {
				resp := decode[api.ErrorResponse](t, w)
				for _, f := range tt.wantFields {
					assert.Contains(t, resp.Errors, f)
				}
				return
			}

			resp := decode[api.AuthResponse](t, w)
			require.NotNil(t, resp.User)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, tt.wantRole, resp.User.Role)

			claims, err := ValidateToken(testJWT(), resp.Token)
			require.NoError(t, err)
			assert.Equal(t, resp.User.ID, claims.UserID)
			assert.Equal(t, tt.wantRole, claims.Role)
		})
	}
}

func TestAuthHandler_SignUp_Duplicate(t *testing.T) {
	store := setupTestStore(t)
	seedUser(t, store, "Ann", "ann@example.com", models.RolePatient)
	handler := newTestAuthHandler(t, store)

	w := httptest.NewRecorder()
	handler.SignUp(w, jsonRequest(t, http.MethodPost, "/api/users/signup",
		api.SignUpRequest{Name: "Ann Again", Email: "ANN@example.com", Password: "secret1"}))

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode[api.ErrorResponse](t, w)
	assert.Equal(t, "An account with this email already exists", resp.Message)
	assert.Contains(t, resp.Errors, "email")
}

func TestAuthHandler_SignUp_BadBody(t *testing.T) {
	handler := newTestAuthHandler(t, setupTestStore(t))

	w := httptest.NewRecorder()
	handler.SignUp(w, httptest.NewRequest(http.MethodPost, "/api/users/signup", bytes.NewBufferString("{")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_SignUp_StorageError(t *testing.T) {
	handler := newTestAuthHandler(t, &failingUserStorage{err: errors.New("db is locked")})

	w := httptest.NewRecorder()
	handler.SignUp(w, jsonRequest(t, http.MethodPost, "/api/users/signup",
		api.SignUpRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db is locked")
}

func TestAuthHandler_SignIn(t *testing.T) {
	store := setupTestStore(t)
	ann := seedUser(t, store, "Ann", "ann@example.com", models.RolePatient)
	handler := newTestAuthHandler(t, store)

	tests := []struct {
		req         api.SignInRequest
		name        string
		wantMessage string
		wantCode    int
	}{
		{name: "success", req: api.SignInRequest{Email: "ann@example.com", Password: "secret1"}, wantCode: http.StatusOK},
		{name: "email case-insensitive", req: api.SignInRequest{Email: " ANN@example.com ", Password: "secret1"}, wantCode: http.StatusOK},
		{name: "wrong password", req: api.SignInRequest{Email: "ann@example.com", Password: "wrong12"}, wantCode: http.StatusUnauthorized, wantMessage: "Invalid credentials"},
		{name: "unknown email", req: api.SignInRequest{Email: "nobody@example.com", Password: "secret1"}, wantCode: http.StatusNotFound, wantMessage: "User not found"},
		{name: "missing password", req: api.SignInRequest{Email: "ann@example.com"}, wantCode: http.StatusBadRequest, wantMessage: "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.SignIn(w, jsonRequest(t, http.MethodPost, "/api/users/signin", tt.req))

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode != http.StatusOK {
				assert.Equal(t, tt.wantMessage, decode[api.ErrorResponse](t, w).Message)
				return
			}

			resp := decode[api.AuthResponse](t, w)
			assert.Equal(t, ann.ID, resp.User.ID)
			assert.NotEmpty(t, resp.Token)
			assert.NotContains(t, w.Body.String(), "passwordHash")
		})
	}
}

func TestAuthHandler_SignIn_StorageError(t *testing.T) {
	handler := newTestAuthHandler(t, &failingUserStorage{err: errors.New("boom")})

	w := httptest.NewRecorder()
	handler.SignIn(w, jsonRequest(t, http.MethodPost, "/api/users/signin",
		api.SignInRequest{Email: "ann@example.com", Password: "secret1"}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthHandler_GetProfile(t *testing.T) {
	store := setupTestStore(t)
	ann := seedUser(t, store, "Ann", "ann@example.com", models.RolePatient)
	handler := newTestAuthHandler(t, store)

	t.Run("current user", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetProfile(w, asUser(httptest.NewRequest(http.MethodGet, "/api/users/profile", nil), ann))

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[api.ProfileResponse](t, w)
		assert.Equal(t, "ann@example.com", resp.User.Email)
	})

	t.Run("no user in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetProfile(w, httptest.NewRequest(http.MethodGet, "/api/users/profile", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deleted user", func(t *testing.T) {
		ghost := &models.User{ID: "ghost", Role: models.RolePatient}
		w := httptest.NewRecorder()
		handler.GetProfile(w, asUser(httptest.NewRequest(http.MethodGet, "/api/users/profile", nil), ghost))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, fileName string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile(photoField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	store := setupTestStore(t)
	ann := seedUser(t, store, "Ann", "ann@example.com", models.RolePatient)
	handler := newTestAuthHandler(t, store)

	t.Run("partial update with photo", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPut, "/api/users/profile",
			map[string]string{"name": "Ann Lee", "dateOfBirth": "1980-05-01"}, "me.png", []byte("png"))

		w := httptest.NewRecorder()
		handler.UpdateProfile(w, asUser(req, ann))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[api.ProfileResponse](t, w)
		assert.Equal(t, "Ann Lee", resp.User.Name)
		assert.Equal(t, "1980-05-01", resp.User.Profile.DateOfBirth)
		require.NotEmpty(t, resp.User.Profile.Photo)
		assert.FileExists(t, filepath.Join(handler.uploads.Dir(), resp.User.Profile.Photo))

		stored, err := store.GetUserByID(context.Background(), ann.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ann Lee", stored.Name)
		assert.Equal(t, resp.User.Profile.Photo, stored.Profile.Photo)
	})

	t.Run("url-encoded without photo", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/users/profile", bytes.NewBufferString("phone=%2B1+555+0100"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := httptest.NewRecorder()
		handler.UpdateProfile(w, asUser(req, ann))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[api.ProfileResponse](t, w)
		assert.Equal(t, "+1 555 0100", resp.User.Phone)
		assert.Equal(t, "Ann Lee", resp.User.Name)
	})

	t.Run("invalid fields", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPut, "/api/users/profile",
			map[string]string{"name": "", "dateOfBirth": "tomorrow"}, "", nil)

		w := httptest.NewRecorder()
		handler.UpdateProfile(w, asUser(req, ann))

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[api.ErrorResponse](t, w)
		assert.Contains(t, resp.Errors, "name")
		assert.Contains(t, resp.Errors, "dateOfBirth")
	})

	t.Run("unsupported photo", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPut, "/api/users/profile", nil, "script.sh", []byte("#!/bin/sh"))

		w := httptest.NewRecorder()
		handler.UpdateProfile(w, asUser(req, ann))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[api.ErrorResponse](t, w).Errors, "photo")

		entries, err := os.ReadDir(handler.uploads.Dir())
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotEqual(t, ".sh", filepath.Ext(e.Name()))
		}
	})
}

// failingProfileStorage ломает только UpdateProfile
type failingProfileStorage struct {
	*sqlite.Storage
	err error
}

func (m *failingProfileStorage) UpdateProfile(context.Context, *models.User) error { return m.err }

func TestAuthHandler_UpdateProfile_PhotoCleanup(t *testing.T) {
	store := setupTestStore(t)
	ann := seedUser(t, store, "Ann", "ann@example.com", models.RolePatient)
	handler := newTestAuthHandler(t, store)

	upload := func(h *AuthHandler, fileName string) *httptest.ResponseRecorder {
		req := multipartRequest(t, http.MethodPut, "/api/users/profile", nil, fileName, []byte("img"))
		w := httptest.NewRecorder()
		h.UpdateProfile(w, asUser(req, ann))
		return w
	}

	w := upload(handler, "old.jpg")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	old := decode[api.ProfileResponse](t, w).User.Profile.Photo

	w = upload(handler, "new.png")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	current := decode[api.ProfileResponse](t, w).User.Profile.Photo
	assert.NoFileExists(t, filepath.Join(handler.uploads.Dir(), old))
	assert.Equal(t, []string{current}, uploadedFiles(t, handler.uploads))

	failing := NewAuthHandler(setupTestLogger(), &failingProfileStorage{Storage: store, err: errors.New("disk full")}, handler.uploads, AuthConfig{
		JWT:        testJWT(),
		BcryptCost: bcrypt.MinCost,
	})
	w = upload(failing, "lost.gif")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, []string{current}, uploadedFiles(t, handler.uploads))

	stored, err := store.GetUserByID(context.Background(), ann.ID)
	require.NoError(t, err)
	assert.Equal(t, current, stored.Profile.Photo)
}
