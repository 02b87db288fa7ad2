package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/server/storage"
)

// CreateShare adds the owner -> target edge; an existing edge is left as is
func (s *Storage) CreateShare(ctx context.Context, share *models.Share) (bool, error) {
	query := `
		INSERT OR IGNORE INTO shares (owner_id, target_id, created_at)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, share.OwnerID, share.TargetID, share.CreatedAt.UTC())
	if err != nil {
		return false, fmt.Errorf("failed to insert share: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// DeleteShare removes the owner -> target edge
func (s *Storage) DeleteShare(ctx context.Context, ownerID, targetID string) error {
	query := `DELETE FROM shares WHERE owner_id = ? AND target_id = ?`

	result, err := s.db.ExecContext(ctx, query, ownerID, targetID)
	if err != nil {
		return fmt.Errorf("failed to delete share: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrShareNotFound
	}

	return nil
}

// ListTargets returns users the owner shares data with
func (s *Storage) ListTargets(ctx context.Context, ownerID string) ([]models.SharedUser, error) {
	query := `
		SELECT u.id, u.name, u.email, u.phone, sh.created_at
		FROM shares sh
		JOIN users u ON u.id = sh.target_id
		WHERE sh.owner_id = ?
		ORDER BY sh.created_at DESC, u.name
	`
	return s.listSharedUsers(ctx, query, ownerID, false)
}

// ListOwners returns users sharing data with target
func (s *Storage) ListOwners(ctx context.Context, targetID string) ([]models.SharedUser, error) {
	query := `
		SELECT u.id, u.name, u.email, u.phone, sh.created_at
		FROM shares sh
		JOIN users u ON u.id = sh.owner_id
		WHERE sh.target_id = ?
		ORDER BY sh.created_at DESC, u.name
	`
	return s.listSharedUsers(ctx, query, targetID, true)
}

func (s *Storage) listSharedUsers(ctx context.Context, query, userID string, withSharedAt bool) ([]models.SharedUser, error) {
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shares: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	users := []models.SharedUser{}
	for rows.Next() {
		var (
			u        models.SharedUser
			sharedAt time.Time
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &sharedAt); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		// SharedAt показываем только получателю
		if withSharedAt {
			u.SharedAt = &sharedAt
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// SharedTargetIDs returns which of candidates the owner already shares with
func (s *Storage) SharedTargetIDs(ctx context.Context, ownerID string, candidates []string) (map[string]bool, error) {
	result := make(map[string]bool, len(candidates))
	if len(candidates) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(candidates)), ",")
	query := `SELECT target_id FROM shares WHERE owner_id = ? AND target_id IN (` + placeholders + `)`

	args := make([]any, 0, len(candidates)+1)
	args = append(args, ownerID)
	for _, id := range candidates {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shares: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		result[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
