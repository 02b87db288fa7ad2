package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/khutwa/internal/client/api"
	"github.com/iudanet/khutwa/internal/client/auth"
	"github.com/iudanet/khutwa/internal/client/content"
	"github.com/iudanet/khutwa/internal/client/sensor"
	"github.com/iudanet/khutwa/internal/client/sharing"
	"github.com/iudanet/khutwa/internal/client/storage/boltdb"
	"github.com/iudanet/khutwa/internal/logging"
	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/server"
	"github.com/iudanet/khutwa/internal/server/config"
	"github.com/iudanet/khutwa/internal/server/storage/sqlite"
	"github.com/iudanet/khutwa/pkg/api"
)

const adminEmail = "admin@khutwa.example"

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.Default()
	cfg.JWTSecret = "integration-secret-0123456789"
	cfg.UploadDir = t.TempDir()
	cfg.AdminEmail = adminEmail
	cfg.Rate = 1000
	cfg.Burst = 1000
	require.NoError(t, cfg.Validate())

	s := server.New(cfg, store, logging.Discard(), "test")
	t.Cleanup(s.Close)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

// account собирает клиентский стек одного пользователя: bbolt токен, gateway и сервисы
type account struct {
	auth    *auth.Service
	gateway *clientapi.Client
	sharing *sharing.Manager
	content *content.Service
	sensor  *sensor.Service
}

func newAccount(t *testing.T, srv *httptest.Server) *account {
	t.Helper()
	tokens, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tokens.Close() })

	logger := logging.Discard()
	gateway := clientapi.NewClient(srv.URL, tokens, clientapi.WithTimeout(5*time.Second))
	return &account{
		auth:    auth.NewService(gateway, tokens, auth.NewSession(), logger),
		gateway: gateway,
		sharing: sharing.NewManager(gateway, logger),
		content: content.NewService(gateway, logger),
		sensor:  sensor.NewService(gateway, logger),
	}
}

func (a *account) signUp(t *testing.T, name, email string, role models.Role) *models.User {
	t.Helper()
	user, err := a.auth.SignUp(context.Background(), auth.SignUpInput{
		Name:     name,
		Email:    email,
		Password: "secret1",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestHealth(t *testing.T) {
	srv := startServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	require.NoError(t, newAccount(t, srv).gateway.Health(context.Background()))
}

func TestAuthFlow(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()

	ann := newAccount(t, srv)
	user := ann.signUp(t, "Ann Lee", "ann@example.com", "")
	assert.Equal(t, models.RolePatient, user.Role)
	assert.True(t, ann.auth.Session().IsAuthenticated())

	// Повторная регистрация того же email
	other := newAccount(t, srv)
	_, err := other.auth.SignUp(ctx, auth.SignUpInput{Name: "Ann 2", Email: "ANN@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, clientapi.KindValidation, clientapi.KindOf(err))

	// Вход с другого устройства
	_, err = other.auth.SignIn(ctx, "ann@example.com", "wrong-password")
	assert.Equal(t, clientapi.KindAuth, clientapi.KindOf(err))

	_, err = other.auth.SignIn(ctx, "nobody@example.com", "secret1")
	assert.Equal(t, clientapi.KindNotFound, clientapi.KindOf(err))

	signedIn, err := other.auth.SignIn(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, signedIn.ID)

	updated, err := other.auth.UpdateProfile(ctx, auth.ProfileUpdate{
		Name:  "Ann Lee-Smith",
		Photo: &clientapi.FilePart{Field: "photo", FileName: "me.png", Content: strings.NewReader("png")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee-Smith", updated.Name)
	require.NotEmpty(t, updated.Profile.Photo)

	photo, err := http.Get(srv.URL + "/uploads/" + updated.Profile.Photo)
	require.NoError(t, err)
	_ = photo.Body.Close()
	assert.Equal(t, http.StatusOK, photo.StatusCode)

	refreshed, err := ann.auth.RefreshProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee-Smith", refreshed.Name)

	require.NoError(t, other.auth.Logout(ctx))
	_, err = other.gateway.GetProfile(ctx)
	assert.Equal(t, clientapi.KindAuth, clientapi.KindOf(err))
}

func TestSelfRegisteredAdminRejected(t *testing.T) {
	srv := startServer(t)

	_, err := newAccount(t, srv).auth.SignUp(context.Background(), auth.SignUpInput{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "secret1",
		Role:     models.RoleAdmin,
	})
	require.Error(t, err)

	var apiErr *clientapi.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Fields, "role")
}

func TestSharingFlow(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()

	ann := newAccount(t, srv)
	annUser := ann.signUp(t, "Ann Lee", "ann@example.com", models.RolePatient)
	bob := newAccount(t, srv)
	bobUser := bob.signUp(t, "Dr Bob Stone", "bob@clinic.example", models.RoleDoctor)

	found, err := ann.sharing.Search(ctx, "clinic")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, bobUser.ID, found[0].ID)
	assert.False(t, found[0].AlreadyShared)

	granted, err := ann.sharing.GrantAndReload(ctx, bobUser.ID)
	require.NoError(t, err)
	require.Len(t, granted, 1)
	assert.Equal(t, bobUser.ID, granted[0].ID)

	// Повторная выдача доступа не ошибка и не дублирует запись
	require.NoError(t, ann.sharing.Grant(ctx, bobUser.ID))
	granted, err = ann.sharing.ListGranted(ctx)
	require.NoError(t, err)
	require.Len(t, granted, 1)
	assert.Equal(t, bobUser.ID, granted[0].ID)

	found, err = ann.sharing.Search(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.True(t, found[0].AlreadyShared)

	// Встречный доступ: bob тоже открывает свои данные ann
	require.NoError(t, bob.sharing.Grant(ctx, annUser.ID))

	overview, err := bob.sharing.Load(ctx)
	require.NoError(t, err)
	require.Len(t, overview.Granted, 1)
	assert.Equal(t, annUser.ID, overview.Granted[0].ID)
	require.Len(t, overview.Received, 1)
	assert.Equal(t, annUser.ID, overview.Received[0].ID)
	assert.NotNil(t, overview.Received[0].SharedAt)

	err = ann.sharing.Grant(ctx, annUser.ID)
	assert.Equal(t, clientapi.KindValidation, clientapi.KindOf(err))

	// bob перестает видеть данные ann, но его собственный доступ для ann остается
	received, err := bob.sharing.StopSeeingAndReload(ctx, annUser.ID)
	require.NoError(t, err)
	assert.Empty(t, received)

	stillGranted, err := bob.sharing.ListGranted(ctx)
	require.NoError(t, err)
	require.Len(t, stillGranted, 1)
	assert.Equal(t, annUser.ID, stillGranted[0].ID)

	annReceived, err := ann.sharing.ListReceived(ctx)
	require.NoError(t, err)
	require.Len(t, annReceived, 1)
	assert.Equal(t, bobUser.ID, annReceived[0].ID)

	annGranted, err := ann.sharing.ListGranted(ctx)
	require.NoError(t, err)
	assert.Empty(t, annGranted)

	err = ann.sharing.Revoke(ctx, bobUser.ID)
	assert.Equal(t, clientapi.KindNotFound, clientapi.KindOf(err))
}

// TestGrantRevokeScenario: регистрация, выдача доступа и отзыв со списками после каждого шага
func TestGrantRevokeScenario(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()

	owner := newAccount(t, srv)
	owner.signUp(t, "Alice", "a@x.com", models.RolePatient)

	current := owner.auth.Session().Current()
	require.NotNil(t, current)
	assert.Equal(t, "a@x.com", current.Email)
	assert.True(t, owner.auth.Session().IsAuthenticated())

	target := newAccount(t, srv).signUp(t, "Dr Xavier", "x@x.com", models.RoleDoctor)

	granted, err := owner.sharing.GrantAndReload(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, granted, 1)
	assert.Equal(t, target.ID, granted[0].ID)

	granted, err = owner.sharing.GrantAndReload(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, granted, 1)

	granted, err = owner.sharing.RevokeAndReload(ctx, target.ID)
	require.NoError(t, err)
	assert.Empty(t, granted)

	granted, err = owner.sharing.ListGranted(ctx)
	require.NoError(t, err)
	assert.Empty(t, granted)
}

func TestContentFlow(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()

	admin := newAccount(t, srv)
	adminUser := admin.signUp(t, "Admin", adminEmail, "")
	require.Equal(t, models.RoleAdmin, adminUser.Role)

	patient := newAccount(t, srv)
	patient.signUp(t, "Ann", "ann@example.com", "")

	item, err := admin.content.Create(ctx, content.Draft{
		Title:    "Check your feet daily",
		Body:     "Look for cuts, blisters and redness.",
		Category: models.CategoryFootCare,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContentTypeArticle, item.ContentType)
	require.NotNil(t, item.CreatedBy)
	assert.Equal(t, "Admin", item.CreatedBy.Name)

	_, err = patient.content.Create(ctx, content.Draft{Title: "x", Body: "y", Category: models.CategoryNutrition})
	assert.Equal(t, clientapi.KindAuth, clientapi.KindOf(err))

	page, err := patient.content.List(ctx, content.Query{Category: models.CategoryFootCare})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.False(t, page.HasMore())

	got, err := patient.content.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)

	updated, err := admin.content.Update(ctx, item.ID, content.Draft{Title: "Daily foot check"})
	require.NoError(t, err)
	assert.Equal(t, "Daily foot check", updated.Title)
	assert.Equal(t, item.Body, updated.Body)

	byCategory, err := patient.content.ByCategory(ctx, models.CategoryFootCare)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)

	stats, err := admin.content.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.TotalViews)

	require.NoError(t, admin.content.Delete(ctx, item.ID))
	_, err = patient.content.Get(ctx, item.ID)
	assert.Equal(t, clientapi.KindNotFound, clientapi.KindOf(err))
}

func TestSensorFlow(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()

	ann := newAccount(t, srv)
	ann.signUp(t, "Ann", "ann@example.com", "")

	reading, err := ann.sensor.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, reading)

	_, err = ann.gateway.PushSensorData(ctx, api.SensorDataRequest{
		Left:        models.FootPressure{Heel: 120, Midfoot: 60, Forefoot: 230, Toe: 40},
		Right:       models.FootPressure{Heel: 110, Midfoot: 55, Forefoot: 180, Toe: 35},
		Temperature: 30.2,
		Humidity:    48,
	})
	require.NoError(t, err)

	reading, err = ann.sensor.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, reading)
	assert.Equal(t, []string{"left.forefoot"}, reading.HighPressureZones(200))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := startServer(t)

	for _, path := range []string{
		"/api/users/profile",
		"/api/users/shared/users-i-can-see",
		"/api/educational-content",
		"/api/sensor-data/latest",
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"), path)
	}
}
