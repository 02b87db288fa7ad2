package storage

import (
	"context"

	"github.com/iudanet/khutwa/internal/models"
)

// ContentFilter параметры выборки образовательного контента
type ContentFilter struct {
	Category    models.Category
	ContentType models.ContentType
	Search      string
	Sort        string // createdAt, views или title
	Order       string // asc или desc
	Offset      int
	Limit       int
}

// ContentStorage defines interface for educational content persistence
type ContentStorage interface {
	// CreateContent stores a new item
	CreateContent(ctx context.Context, content *models.Content) error

	// UpdateContent replaces editable fields of an item
	// Returns ErrContentNotFound if item doesn't exist
	UpdateContent(ctx context.Context, content *models.Content) error

	// GetContent retrieves an item by ID
	// Returns ErrContentNotFound if item doesn't exist
	GetContent(ctx context.Context, id string) (*models.Content, error)

	// IncrementViews bumps the view counter
	IncrementViews(ctx context.Context, id string) error

	// DeleteContent deletes an item
	// Returns ErrContentNotFound if item doesn't exist
	DeleteContent(ctx context.Context, id string) error

	// ListContent returns one page of items and the total number of matches
	ListContent(ctx context.Context, filter ContentFilter) ([]models.Content, int64, error)

	// ContentStats aggregates counters over all items
	ContentStats(ctx context.Context) (*models.ContentStats, error)
}
