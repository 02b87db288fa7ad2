// Package sharing manages who may see the current user's data and whose
// data the current user may see.
package sharing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	clientapi "github.com/iudanet/khutwa/internal/client/api"
	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/validation"
	"github.com/iudanet/khutwa/pkg/api"
)

//go:generate moq -out gateway_mock.go . Gateway

// Gateway is the part of the backend API the sharing view needs.
// *clientapi.Client implements it.
type Gateway interface {
	Share(ctx context.Context, targetUserID string) (*api.ShareResponse, error)
	Unshare(ctx context.Context, targetUserID string) error
	RemoveSharedUser(ctx context.Context, ownerID string) error
	UsersICanSee(ctx context.Context) ([]models.SharedUser, error)
	UsersSharingWithMe(ctx context.Context) ([]models.SharedUser, error)
	SearchUsers(ctx context.Context, query string) ([]models.ShareCandidate, error)
}

var _ Gateway = (*clientapi.Client)(nil)

// Overview is the sharing view: both directions of access, fetched together
type Overview struct {
	// Granted lists users the current user shares data with
	Granted []models.SharedUser
	// Received lists users who share data with the current user
	Received []models.SharedUser
}

// Manager выполняет операции доступа. Ничего не кэширует: каждый вызов идет на сервер.
type Manager struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewManager создает Manager
func NewManager(gateway Gateway, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{gateway: gateway, logger: logger}
}

// Grant gives targetUserID access. Granting twice is not an error.
func (m *Manager) Grant(ctx context.Context, targetUserID string) error {
	targetUserID, err := requireID(targetUserID)
	if err != nil {
		return err
	}

	if _, err := m.gateway.Share(ctx, targetUserID); err != nil {
		if clientapi.IsKind(err, clientapi.KindValidation) && statusOf(err) == http.StatusConflict {
			// Уже есть доступ: для клиента это успех
			m.logger.DebugContext(ctx, "share already exists", "target_id", targetUserID)
			return nil
		}
		m.logger.WarnContext(ctx, "grant failed", "target_id", targetUserID, "error", err)
		return err
	}

	m.logger.InfoContext(ctx, "access granted", "target_id", targetUserID)
	return nil
}

// Revoke withdraws access the current user granted to targetUserID
func (m *Manager) Revoke(ctx context.Context, targetUserID string) error {
	targetUserID, err := requireID(targetUserID)
	if err != nil {
		return err
	}

	if err := m.gateway.Unshare(ctx, targetUserID); err != nil {
		m.logger.WarnContext(ctx, "revoke failed", "target_id", targetUserID, "error", err)
		return err
	}
	m.logger.InfoContext(ctx, "access revoked", "target_id", targetUserID)
	return nil
}

// StopSeeing drops access ownerID granted to the current user
func (m *Manager) StopSeeing(ctx context.Context, ownerID string) error {
	ownerID, err := requireID(ownerID)
	if err != nil {
		return err
	}

	if err := m.gateway.RemoveSharedUser(ctx, ownerID); err != nil {
		m.logger.WarnContext(ctx, "stop seeing failed", "owner_id", ownerID, "error", err)
		return err
	}
	m.logger.InfoContext(ctx, "stopped seeing shared data", "owner_id", ownerID)
	return nil
}

// ListGranted returns users the current user shares data with
func (m *Manager) ListGranted(ctx context.Context) ([]models.SharedUser, error) {
	return m.gateway.UsersICanSee(ctx)
}

// ListReceived returns users who share data with the current user
func (m *Manager) ListReceived(ctx context.Context) ([]models.SharedUser, error) {
	return m.gateway.UsersSharingWithMe(ctx)
}

// Search finds share candidates. Queries shorter than two characters after
// trimming fail locally without a request.
func (m *Manager) Search(ctx context.Context, query string) ([]models.ShareCandidate, error) {
	query = strings.TrimSpace(query)
	if err := validation.ValidateSearchQuery(query); err != nil {
		return nil, clientapi.Validation(err.Error(), map[string]string{"search": err.Error()})
	}

	candidates, err := m.gateway.SearchUsers(ctx, query)
	if err != nil {
		m.logger.WarnContext(ctx, "user search failed", "error", err)
		return nil, err
	}
	return candidates, nil
}

// Load fetches both directions concurrently and returns once both have
// settled. Either failure fails the whole load.
func (m *Manager) Load(ctx context.Context) (*Overview, error) {
	var overview Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := m.gateway.UsersICanSee(gctx)
		if err != nil {
			return err
		}
		overview.Granted = users
		return nil
	})
	g.Go(func() error {
		users, err := m.gateway.UsersSharingWithMe(gctx)
		if err != nil {
			return err
		}
		overview.Received = users
		return nil
	})

	if err := g.Wait(); err != nil {
		m.logger.WarnContext(ctx, "failed to load sharing overview", "error", err)
		return nil, err
	}
	return &overview, nil
}

// GrantAndReload grants access and then, after the grant completed,
// re-fetches the granted list
func (m *Manager) GrantAndReload(ctx context.Context, targetUserID string) ([]models.SharedUser, error) {
	if err := m.Grant(ctx, targetUserID); err != nil {
		return nil, err
	}
	return m.ListGranted(ctx)
}

// RevokeAndReload revokes access and then re-fetches the granted list
func (m *Manager) RevokeAndReload(ctx context.Context, targetUserID string) ([]models.SharedUser, error) {
	if err := m.Revoke(ctx, targetUserID); err != nil {
		return nil, err
	}
	return m.ListGranted(ctx)
}

// StopSeeingAndReload drops received access and then re-fetches the received list
func (m *Manager) StopSeeingAndReload(ctx context.Context, ownerID string) ([]models.SharedUser, error) {
	if err := m.StopSeeing(ctx, ownerID); err != nil {
		return nil, err
	}
	return m.ListReceived(ctx)
}

func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", clientapi.Validation("user id is required", map[string]string{"targetUserId": "user id is required"})
	}
	return id, nil
}

func statusOf(err error) int {
	var apiErr *clientapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
