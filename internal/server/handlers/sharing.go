package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/server/storage"
	"github.com/iudanet/khutwa/internal/validation"
	"github.com/iudanet/khutwa/pkg/api"
)

// searchLimit максимальное число результатов поиска пользователей
const searchLimit = 20

// ShareHandler обрабатывает управление доступом к данным
type ShareHandler struct {
	responder
	users  storage.UserStorage
	shares storage.ShareStorage
}

// NewShareHandler создает ShareHandler
func NewShareHandler(logger *slog.Logger, users storage.UserStorage, shares storage.ShareStorage) *ShareHandler {
	return &ShareHandler{
		responder: responder{logger: logger},
		users:     users,
		shares:    shares,
	}
}

// Share обрабатывает POST /api/users/share.
// Повторная выдача доступа не ошибка: возвращается 200 без share вместо 201.
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	targetID := strings.TrimSpace(req.TargetUserID)
	switch {
	case targetID == "":
		h.sendFieldErrors(w, map[string]string{"targetUserId": "target user id is required"})
		return
	case targetID == userID:
		h.sendError(w, "You cannot share data with yourself", http.StatusBadRequest)
		return
	}

	if _, err := h.users.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "User not found", http.StatusNotFound)
			return
		}
		h.sendInternal(w, r, "failed to get target user", err)
		return
	}

	share := &models.Share{OwnerID: userID, TargetID: targetID, CreatedAt: time.Now().UTC()}
	created, err := h.shares.CreateShare(ctx, share)
	if err != nil {
		h.sendInternal(w, r, "failed to create share", err)
		return
	}

	if !created {
		// сохраненная запись не перечитывается, share в ответ не кладем
		h.sendJSON(w, api.ShareResponse{Message: "Data is already shared with this user"}, http.StatusOK)
		return
	}

	h.logger.InfoContext(ctx, "data shared", slog.String("owner_id", userID), slog.String("target_id", targetID))
	h.sendJSON(w, api.ShareResponse{Share: share, Message: "Data shared successfully"}, http.StatusCreated)
}

// Unshare обрабатывает DELETE /api/users/unshare/{id}: владелец отзывает доступ
func (h *ShareHandler) Unshare(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	h.deleteShare(w, r, userID, r.PathValue("id"), "Access revoked")
}

// RemoveShared обрабатывает DELETE /api/users/shared/remove/{id}:
// получатель отказывается от чужих данных
func (h *ShareHandler) RemoveShared(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	h.deleteShare(w, r, r.PathValue("id"), userID, "Removed from your shared list")
}

func (h *ShareHandler) deleteShare(w http.ResponseWriter, r *http.Request, ownerID, targetID, message string) {
	ctx := r.Context()

	if strings.TrimSpace(ownerID) == "" || strings.TrimSpace(targetID) == "" {
		h.sendError(w, "user id is required", http.StatusBadRequest)
		return
	}

	if err := h.shares.DeleteShare(ctx, ownerID, targetID); err != nil {
		if errors.Is(err, storage.ErrShareNotFound) {
			h.sendError(w, "Share not found", http.StatusNotFound)
			return
		}
		h.sendInternal(w, r, "failed to delete share", err)
		return
	}

	h.logger.InfoContext(ctx, "share removed", slog.String("owner_id", ownerID), slog.String("target_id", targetID))
	h.sendJSON(w, api.MessageResponse{Message: message}, http.StatusOK)
}

// UsersICanSee обрабатывает GET /api/users/shared/users-i-can-see:
// пользователи, которым текущий пользователь открыл свои данные
func (h *ShareHandler) UsersICanSee(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	users, err := h.shares.ListTargets(r.Context(), userID)
	if err != nil {
		h.sendInternal(w, r, "failed to list share targets", err)
		return
	}
	h.sendJSON(w, api.SharedUsersResponse{Users: users}, http.StatusOK)
}

// UsersSharingWithMe обрабатывает GET /api/users/shared/users-sharing-with-me
func (h *ShareHandler) UsersSharingWithMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	users, err := h.shares.ListOwners(r.Context(), userID)
	if err != nil {
		h.sendInternal(w, r, "failed to list share owners", err)
		return
	}
	h.sendJSON(w, api.SharedUsersResponse{Users: users}, http.StatusOK)
}

// Search обрабатывает GET /api/users/shared/search?search=
func (h *ShareHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("search"))
	if err := validation.ValidateSearchQuery(query); err != nil {
		h.sendFieldErrors(w, map[string]string{"search": err.Error()})
		return
	}

	found, err := h.users.SearchUsers(ctx, query, userID, searchLimit)
	if err != nil {
		h.sendInternal(w, r, "failed to search users", err)
		return
	}

	ids := make([]string, 0, len(found))
	for _, u := range found {
		ids = append(ids, u.ID)
	}
	shared, err := h.shares.SharedTargetIDs(ctx, userID, ids)
	if err != nil {
		h.sendInternal(w, r, "failed to load share flags", err)
		return
	}

	candidates := make([]models.ShareCandidate, 0, len(found))
	for _, u := range found {
		candidates = append(candidates, models.ShareCandidate{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Phone:         u.Phone,
			AlreadyShared: shared[u.ID],
		})
	}

	h.sendJSON(w, api.SearchUsersResponse{Users: candidates}, http.StatusOK)
}

func (h *ShareHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "user id not found in context")
		h.sendError(w, "Unauthorized", http.StatusUnauthorized)
	}
	return userID, ok
}
