package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/server/storage"
)

const contentColumns = `c.id, c.title, c.description, c.body, c.category, c.content_type,
	c.photo, c.views, c.created_at, c.updated_at, c.created_by, u.name`

// sortColumns допустимые поля сортировки
var sortColumns = map[string]string{
	"":          "c.created_at",
	"createdAt": "c.created_at",
	"views":     "c.views",
	"title":     "c.title",
}

func scanContent(row rowScanner) (*models.Content, error) {
	var (
		item       models.Content
		authorID   sql.NullString
		authorName sql.NullString
	)
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.Body,
		&item.Category,
		&item.ContentType,
		&item.Photo,
		&item.Views,
		&item.CreatedAt,
		&item.UpdatedAt,
		&authorID,
		&authorName,
	)
	if err != nil {
		return nil, err
	}
	if authorID.Valid {
		item.CreatedBy = &models.Author{ID: authorID.String, Name: authorName.String}
	}
	return &item, nil
}

// CreateContent stores a new item
func (s *Storage) CreateContent(ctx context.Context, content *models.Content) error {
	query := `
		INSERT INTO educational_content
			(id, title, description, body, category, content_type, photo, views, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var createdBy sql.NullString
	if content.CreatedBy != nil {
		createdBy = sql.NullString{String: content.CreatedBy.ID, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		content.ID,
		content.Title,
		content.Description,
		content.Body,
		content.Category,
		content.ContentType,
		content.Photo,
		content.Views,
		createdBy,
		content.CreatedAt.UTC(),
		content.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert content: %w", err)
	}

	return nil
}

// UpdateContent replaces the editable fields of an item
func (s *Storage) UpdateContent(ctx context.Context, content *models.Content) error {
	query := `
		UPDATE educational_content
		SET title = ?, description = ?, body = ?, category = ?, content_type = ?, photo = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		content.Title,
		content.Description,
		content.Body,
		content.Category,
		content.ContentType,
		content.Photo,
		content.UpdatedAt.UTC(),
		content.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update content: %w", err)
	}

	return expectOneRow(result, storage.ErrContentNotFound)
}

// GetContent retrieves an item by ID
func (s *Storage) GetContent(ctx context.Context, id string) (*models.Content, error) {
	query := `
		SELECT ` + contentColumns + `
		FROM educational_content c
		LEFT JOIN users u ON u.id = c.created_by
		WHERE c.id = ?
	`

	item, err := scanContent(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	return item, nil
}

// IncrementViews bumps the view counter
func (s *Storage) IncrementViews(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE educational_content SET views = views + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return expectOneRow(result, storage.ErrContentNotFound)
}

// DeleteContent deletes an item
func (s *Storage) DeleteContent(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM educational_content WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	return expectOneRow(result, storage.ErrContentNotFound)
}

// ListContent returns one page of items matching filter and the total count
func (s *Storage) ListContent(ctx context.Context, filter storage.ContentFilter) ([]models.Content, int64, error) {
	var (
		where []string
		args  []any
	)
	if filter.Category != "" {
		where = append(where, "c.category = ?")
		args = append(args, filter.Category)
	}
	if filter.ContentType != "" {
		where = append(where, "c.content_type = ?")
		args = append(args, filter.ContentType)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		where = append(where, `(c.title LIKE ? ESCAPE '\' OR c.description LIKE ? ESCAPE '\' OR c.body LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM educational_content c ` + whereSQL
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count content: %w", err)
	}

	column, ok := sortColumns[filter.Sort]
	if !ok {
		return nil, 0, fmt.Errorf("unsupported sort field %q", filter.Sort)
	}
	direction := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "ASC"
	}

	query := `
		SELECT ` + contentColumns + `
		FROM educational_content c
		LEFT JOIN users u ON u.id = c.created_by
		` + whereSQL + `
		ORDER BY ` + column + ` ` + direction + `, c.id
		LIMIT ? OFFSET ?
	`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query content: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	items := []models.Content{}
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan content: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, total, nil
}

// ContentStats aggregates counters over all items
func (s *Storage) ContentStats(ctx context.Context) (*models.ContentStats, error) {
	stats := &models.ContentStats{
		ByCategory: make(map[models.Category]int64),
		ByType:     make(map[models.ContentType]int64),
	}

	query := `SELECT COUNT(*), COALESCE(SUM(views), 0) FROM educational_content`
	if err := s.db.QueryRowContext(ctx, query).Scan(&stats.Total, &stats.TotalViews); err != nil {
		return nil, fmt.Errorf("failed to aggregate content: %w", err)
	}

	if err := s.countBy(ctx, "category", func(key string, n int64) {
		stats.ByCategory[models.Category(key)] = n
	}); err != nil {
		return nil, err
	}
	if err := s.countBy(ctx, "content_type", func(key string, n int64) {
		stats.ByType[models.ContentType(key)] = n
	}); err != nil {
		return nil, err
	}

	return stats, nil
}

// countBy группирует контент по колонке column (только константы из кода)
func (s *Storage) countBy(ctx context.Context, column string, fn func(string, int64)) error {
	query := `SELECT ` + column + `, COUNT(*) FROM educational_content GROUP BY ` + column
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to group content by %s: %w", column, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			key string
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		fn(key, n)
	}
	return rows.Err()
}

func expectOneRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
