package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/khutwa/internal/client/api"
	"github.com/iudanet/khutwa/internal/client/iocli"
	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/pkg/api"
)

const (
	testEmail    = "ann@example.com"
	testPassword = "secret1"
	testToken    = "tok-1"
)

// fakeBackend минимальный backend для проверки команд
type fakeBackend struct {
	mu       sync.Mutex
	requests []string
	expired  bool
	reading  *models.SensorReading
}

func (b *fakeBackend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)
}

func (b *fakeBackend) count(req string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if r == req {
			n++
		}
	}
	return n
}

func (b *fakeBackend) setExpired(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = v
}

func (b *fakeBackend) authorized(w http.ResponseWriter, r *http.Request) bool {
	b.mu.Lock()
	expired := b.expired
	b.mu.Unlock()
	if expired || r.Header.Get("Authorization") != "Bearer "+testToken {
		reply(w, http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid token"})
		return false
	}
	return true
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var testUser = models.User{ID: "u1", Name: "Ann Lee", Email: testEmail, Role: models.RolePatient}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/signin", func(w http.ResponseWriter, r *http.Request) {
		var req api.SignInRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		switch {
		case req.Email != testEmail:
			reply(w, http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
		case req.Password != testPassword:
			reply(w, http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid credentials"})
		default:
			reply(w, http.StatusOK, api.AuthResponse{Token: testToken})
		}
	})
	mux.HandleFunc("GET /api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(w, r) {
			return
		}
		reply(w, http.StatusOK, api.ProfileResponse{User: &testUser})
	})
	mux.HandleFunc("GET /api/users/shared/users-i-can-see", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(w, r) {
			return
		}
		reply(w, http.StatusOK, api.SharedUsersResponse{Users: []models.SharedUser{
			{ID: "d1", Name: "Dr. Omar", Email: "omar@example.com"},
		}})
	})
	mux.HandleFunc("GET /api/users/shared/users-sharing-with-me", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(w, r) {
			return
		}
		reply(w, http.StatusOK, api.SharedUsersResponse{})
	})
	mux.HandleFunc("GET /api/users/shared/search", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(w, r) {
			return
		}
		reply(w, http.StatusOK, api.SearchUsersResponse{Users: []models.ShareCandidate{
			{ID: "d1", Name: "Dr. Omar", Email: "omar@example.com", AlreadyShared: true},
		}})
	})
	mux.HandleFunc("GET /api/sensor-data/latest", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(w, r) {
			return
		}
		b.mu.Lock()
		reading := b.reading
		b.mu.Unlock()
		reply(w, http.StatusOK, api.SensorDataResponse{Data: reading, Success: true})
	})
	mux.HandleFunc("GET /api/educational-content", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(w, r) {
			return
		}
		reply(w, http.StatusOK, api.ContentListResponse{
			Content:    []models.Content{{ID: "c1", Title: "Daily foot check", Category: models.CategoryFootCare, ContentType: models.ContentTypeArticle}},
			Pagination: api.Pagination{Page: 1, Limit: 10, Total: 11, Pages: 2},
		})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		mux.ServeHTTP(w, r)
	})
}

type harness struct {
	backend *fakeBackend
	server  *httptest.Server
	db      string
	env     map[string]string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	b := &fakeBackend{}
	server := httptest.NewServer(b.handler())
	t.Cleanup(server.Close)
	return &harness{
		backend: b,
		server:  server,
		db:      filepath.Join(t.TempDir(), "session.db"),
		env:     map[string]string{},
	}
}

// run выполняет команду как отдельный запуск процесса
func (h *harness) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	c := New(iocli.NewStreams(strings.NewReader(stdin), out), Options{
		LookupEnv: func(key string) (string, bool) {
			v, ok := h.env[key]
			return v, ok
		},
		LogOutput: io.Discard,
		Build:     BuildInfo{Version: "1.2.3", BuildDate: "2026-01-01", GitCommit: "abc"},
	})
	full := append([]string{"--server", h.server.URL, "--db", h.db}, args...)
	err := c.Execute(context.Background(), full)
	return out.String(), err
}

func (h *harness) signIn(t *testing.T) {
	t.Helper()
	out, err := h.run(t, testPassword+"\n", "signin", "--email", testEmail)
	require.NoError(t, err, out)
}

func TestVersion_NoSession(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "khutwa 1.2.3")
	assert.Contains(t, out, "Git commit: abc")
	assert.NoFileExists(t, h.db)
	assert.Zero(t, h.backend.count("GET /api/users/profile"))
}

func TestVersion_JSON(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "", "--json", "version")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1.2.3", got["version"])
}

func TestWhoami_NotSignedIn(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in.")
	// Без токена bootstrap не обращается к серверу
	assert.Zero(t, h.backend.count("GET /api/users/profile"))
}

func TestSignIn_PersistsSession(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, testPassword+"\n", "signin", "--email", testEmail)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Ann Lee!")

	out, err = h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Ann Lee")
	assert.Contains(t, out, testEmail)
}

func TestSignIn_PasswordFromEnv(t *testing.T) {
	h := newHarness(t)
	h.env[PasswordEnv] = testPassword

	out, err := h.run(t, "", "signin", "--email", testEmail, "--password", "ignored")
	require.NoError(t, err, out)
	assert.Contains(t, out, "✓ Signed in.")
}

func TestSignIn_WrongPassword(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "wrong-password\n", "signin", "--email", testEmail)
	require.Error(t, err)
	assert.Contains(t, out, "Error: The email or password you entered is incorrect.")

	out, err = h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in.")
}

func TestSignIn_UnknownEmail(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "whatever\n", "signin", "--email", "nobody@example.com")
	require.Error(t, err)
	assert.Contains(t, out, `Run "khutwa signup" to create an account.`)
	assert.Contains(t, out, "No account found with this email")
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)

	out, err := h.run(t, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Signed out.")

	out, err = h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in.")
}

func TestExpiredTokenBootstrapsUnauthenticated(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.backend.setExpired(true)

	out, err := h.run(t, "", "share", "list")
	require.Error(t, err)
	assert.Contains(t, out, `not signed in, run "khutwa signin" first`)
}

func TestShareList(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)

	out, err := h.run(t, "", "share", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "People who can see your data:")
	assert.Contains(t, out, "Dr. Omar")
	assert.Contains(t, out, "No one is sharing their data with you.")
}

func TestShareList_RequiresAuth(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "", "share", "list")
	require.Error(t, err)
	assert.Contains(t, out, "not signed in")
	assert.Zero(t, h.backend.count("GET /api/users/shared/users-i-can-see"))
}

func TestShareSearch(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)

	out, err := h.run(t, "", "share", "search", "om")
	require.NoError(t, err)
	assert.Contains(t, out, "omar@example.com")
	assert.Contains(t, out, "yes")

	// Короткий запрос отклоняется без обращения к серверу
	_, err = h.run(t, "", "share", "search", " o ")
	require.Error(t, err)
	assert.Equal(t, 1, h.backend.count("GET /api/users/shared/search"))
}

func TestContentList_JSON(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)

	out, err := h.run(t, "", "--json", "content", "list")
	require.NoError(t, err)

	var got struct {
		Content    []models.Content `json:"content"`
		Pagination api.Pagination   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Content, 1)
	assert.Equal(t, "Daily foot check", got.Content[0].Title)
	assert.Equal(t, 2, got.Pagination.Pages)
}

func TestContentList_Table(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)

	out, err := h.run(t, "", "content", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily foot check")
	assert.Contains(t, out, "Page 1 of 2 (11 items)")
	assert.Contains(t, out, "Next page: --page 2")
}

func TestDashboard_Count(t *testing.T) {
	h := newHarness(t)
	h.backend.reading = &models.SensorReading{
		RecordedAt:  time.Now(),
		Left:        models.FootPressure{Heel: 250, Midfoot: 80, Forefoot: 120, Toe: 60},
		Right:       models.FootPressure{Heel: 110, Midfoot: 70, Forefoot: 130, Toe: 50},
		Temperature: 31.2,
		Humidity:    48,
	}
	h.signIn(t)

	out, err := h.run(t, "", "--poll-interval", "10ms", "dashboard", "--count", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello, Ann Lee.")
	assert.Equal(t, 2, strings.Count(out, "temp 31.2°C"))
	assert.Contains(t, out, "high pressure (> 200 kPa): left.heel")
}

func TestDashboard_NoReadingYet(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)

	out, err := h.run(t, "", "--poll-interval", "10ms", "dashboard", "--count", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "No sensor data yet.")
}

func TestDashboard_StopsWhenSessionExpires(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)

	// Токен истекает после первого опроса: следующий получает 401
	go func() {
		for h.backend.count("GET /api/sensor-data/latest") == 0 {
			time.Sleep(time.Millisecond)
		}
		h.backend.setExpired(true)
	}()

	done := make(chan struct{})
	var (
		out string
		err error
	)
	go func() {
		defer close(done)
		out, err = h.run(t, "", "--poll-interval", "10ms", "dashboard")
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("dashboard did not stop after the session expired")
	}
	require.NoError(t, err)
	assert.Contains(t, out, "Session ended.")

	out, err = h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in.")
}

func TestSetup_InvalidFlag(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "", "--timeout", "soon", "whoami")
	require.Error(t, err)
	assert.Contains(t, out, `invalid --timeout "soon"`)
}

func TestDescribe(t *testing.T) {
	assert.Empty(t, Describe(context.Canceled))
	assert.Equal(t, "boom", Describe(errors.New("boom")))
	assert.Equal(t, "The requested item was not found.",
		Describe(fmt.Errorf("load: %w", &clientapi.Error{Kind: clientapi.KindNotFound})))
}
