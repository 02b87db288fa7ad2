package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/pkg/api"
)

type shareFixture struct {
	handler *ShareHandler
	ann     *models.User
	bob     *models.User
	carol   *models.User
}

func setupShareFixture(t *testing.T) shareFixture {
	t.Helper()
	store := setupTestStore(t)
	return shareFixture{
		handler: NewShareHandler(setupTestLogger(), store, store),
		ann:     seedUser(t, store, "Ann Lee", "ann@example.com", models.RolePatient),
		bob:     seedUser(t, store, "Bob Stone", "bob@clinic.example", models.RoleDoctor),
		carol:   seedUser(t, store, "Carol White", "carol@clinic.example", models.RoleDoctor),
	}
}

func (f shareFixture) share(t *testing.T, from *models.User, targetID string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := jsonRequest(t, http.MethodPost, "/api/users/share", api.ShareRequest{TargetUserID: targetID})
	f.handler.Share(w, asUser(req, from))
	return w
}

// withPathID эмулирует ServeMux, заполняющий {id}
func withPathID(r *http.Request, id string) *http.Request {
	r.SetPathValue("id", id)
	return r
}

func TestShareHandler_Share(t *testing.T) {
	f := setupShareFixture(t)

	w := f.share(t, f.ann, f.bob.ID)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[api.ShareResponse](t, w)
	assert.Equal(t, f.ann.ID, resp.Share.OwnerID)
	assert.Equal(t, f.bob.ID, resp.Share.TargetID)

	// Повторная выдача не ошибка
	w = f.share(t, f.ann, f.bob.ID)
	require.Equal(t, http.StatusOK, w.Code)
	repeat := decode[api.ShareResponse](t, w)
	assert.Equal(t, "Data is already shared with this user", repeat.Message)
	assert.Nil(t, repeat.Share)
	assert.NotContains(t, w.Body.String(), "share\"")
}

func TestShareHandler_Share_Errors(t *testing.T) {
	f := setupShareFixture(t)

	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{name: "empty target", target: "  ", wantCode: http.StatusBadRequest},
		{name: "self", target: f.ann.ID, wantCode: http.StatusBadRequest},
		{name: "unknown target", target: "no-such-user", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.share(t, f.ann, tt.target)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}

	t.Run("no user in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		f.handler.Share(w, jsonRequest(t, http.MethodPost, "/api/users/share", api.ShareRequest{TargetUserID: f.bob.ID}))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestShareHandler_Lists(t *testing.T) {
	f := setupShareFixture(t)
	require.Equal(t, http.StatusCreated, f.share(t, f.ann, f.bob.ID).Code)
	require.Equal(t, http.StatusCreated, f.share(t, f.carol, f.bob.ID).Code)

	list := func(h http.HandlerFunc, u *models.User) []models.SharedUser {
		w := httptest.NewRecorder()
		h(w, asUser(httptest.NewRequest(http.MethodGet, "/", nil), u))
		require.Equal(t, http.StatusOK, w.Code)
		return decode[api.SharedUsersResponse](t, w).Users
	}

	granted := list(f.handler.UsersICanSee, f.ann)
	require.Len(t, granted, 1)
	assert.Equal(t, f.bob.ID, granted[0].ID)
	assert.Nil(t, granted[0].SharedAt)

	received := list(f.handler.UsersSharingWithMe, f.bob)
	require.Len(t, received, 2)
	for _, u := range received {
		assert.NotNil(t, u.SharedAt)
	}

	assert.Empty(t, list(f.handler.UsersSharingWithMe, f.ann))

	// Пустой список сериализуется как [], а не null
	w := httptest.NewRecorder()
	f.handler.UsersICanSee(w, asUser(httptest.NewRequest(http.MethodGet, "/", nil), f.bob))
	assert.JSONEq(t, `{"users":[]}`, w.Body.String())
}

func TestShareHandler_UnshareAndRemove(t *testing.T) {
	f := setupShareFixture(t)
	require.Equal(t, http.StatusCreated, f.share(t, f.ann, f.bob.ID).Code)
	require.Equal(t, http.StatusCreated, f.share(t, f.carol, f.bob.ID).Code)
	require.Equal(t, http.StatusCreated, f.share(t, f.bob, f.carol.ID).Code)

	// Владелец отзывает доступ
	w := httptest.NewRecorder()
	f.handler.Unshare(w, asUser(withPathID(httptest.NewRequest(http.MethodDelete, "/", nil), f.bob.ID), f.ann))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	f.handler.Unshare(w, asUser(withPathID(httptest.NewRequest(http.MethodDelete, "/", nil), f.bob.ID), f.ann))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Получатель отказывается от чужих данных
	w = httptest.NewRecorder()
	f.handler.RemoveShared(w, asUser(withPathID(httptest.NewRequest(http.MethodDelete, "/", nil), f.carol.ID), f.bob))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	owners, err := f.handler.shares.ListOwners(context.Background(), f.bob.ID)
	require.NoError(t, err)
	assert.Empty(t, owners)

	// Встречное ребро bob -> carol не затронуто
	targets, err := f.handler.shares.ListTargets(context.Background(), f.bob.ID)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, f.carol.ID, targets[0].ID)

	carolOwners, err := f.handler.shares.ListOwners(context.Background(), f.carol.ID)
	require.NoError(t, err)
	require.Len(t, carolOwners, 1)
	assert.Equal(t, f.bob.ID, carolOwners[0].ID)

	w = httptest.NewRecorder()
	f.handler.RemoveShared(w, asUser(withPathID(httptest.NewRequest(http.MethodDelete, "/", nil), ""), f.bob))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShareHandler_Search(t *testing.T) {
	f := setupShareFixture(t)
	require.Equal(t, http.StatusCreated, f.share(t, f.ann, f.bob.ID).Code)

	search := func(q string, u *models.User) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/shared/search?search="+q, nil)
		f.handler.Search(w, asUser(req, u))
		return w
	}

	w := search("clinic", f.ann)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	found := decode[api.SearchUsersResponse](t, w).Users
	require.Len(t, found, 2)
	flags := map[string]bool{}
	for _, c := range found {
		flags[c.ID] = c.AlreadyShared
	}
	assert.True(t, flags[f.bob.ID])
	assert.False(t, flags[f.carol.ID])

	// Сам себя не находит
	w = search("ann", f.ann)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[api.SearchUsersResponse](t, w).Users)

	w = search("a", f.ann)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[api.ErrorResponse](t, w).Errors, "search")
}
