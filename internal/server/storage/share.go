package storage

import (
	"context"

	"github.com/iudanet/khutwa/internal/models"
)

// ShareStorage defines interface for the directed "shares data with" relation
type ShareStorage interface {
	// CreateShare adds an owner -> target edge.
	// Returns false without error if the edge already exists.
	CreateShare(ctx context.Context, share *models.Share) (bool, error)

	// DeleteShare removes the owner -> target edge
	// Returns ErrShareNotFound if there is no such edge
	DeleteShare(ctx context.Context, ownerID, targetID string) error

	// ListTargets returns users the owner shares data with
	ListTargets(ctx context.Context, ownerID string) ([]models.SharedUser, error)

	// ListOwners returns users sharing data with target, with SharedAt set
	ListOwners(ctx context.Context, targetID string) ([]models.SharedUser, error)

	// SharedTargetIDs returns the set of target ids among candidates the
	// owner already shares with
	SharedTargetIDs(ctx context.Context, ownerID string, candidates []string) (map[string]bool, error)
}
