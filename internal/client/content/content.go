// Package content browses and, for administrators, edits the educational
// library.
package content

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	clientapi "github.com/iudanet/khutwa/internal/client/api"
	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/validation"
	"github.com/iudanet/khutwa/pkg/api"
)

// DefaultPageSize размер страницы по умолчанию
const DefaultPageSize = 10

//go:generate moq -out gateway_mock.go . Gateway

// Gateway is the part of the backend API the content browser needs.
// *clientapi.Client implements it.
type Gateway interface {
	ListContent(ctx context.Context, params url.Values) (*api.ContentListResponse, error)
	GetContent(ctx context.Context, id string) (*models.Content, error)
	ContentByCategory(ctx context.Context, category string) ([]models.Content, error)
	CreateContent(ctx context.Context, fields map[string]string, photo *clientapi.FilePart) (*models.Content, error)
	UpdateContent(ctx context.Context, id string, fields map[string]string, photo *clientapi.FilePart) (*models.Content, error)
	DeleteContent(ctx context.Context, id string) error
	ContentStats(ctx context.Context) (*models.ContentStats, error)
}

var _ Gateway = (*clientapi.Client)(nil)

// Query describes one page of the content list. Zero values are omitted.
type Query struct {
	Category    models.Category
	ContentType models.ContentType
	Search      string
	Sort        string // createdAt, views, title
	Order       string // asc, desc
	Page        int
	Limit       int
}

// Page is one page of results
type Page struct {
	Items      []models.Content
	Pagination api.Pagination
}

// HasMore reports whether a following page exists
func (p *Page) HasMore() bool {
	return p.Pagination.Page < p.Pagination.Pages
}

// Draft holds the editable fields of a content item. For updates, empty
// fields are left unchanged.
type Draft struct {
	Photo       *clientapi.FilePart
	Title       string
	Description string
	Body        string
	Category    models.Category
	ContentType models.ContentType
}

// Service обращается к API образовательных материалов
type Service struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewService создает Service
func NewService(gateway Gateway, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gateway: gateway, logger: logger}
}

// List returns one page of content matching q
func (s *Service) List(ctx context.Context, q Query) (*Page, error) {
	params, err := q.values()
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.ListContent(ctx, params)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to list content", "error", err)
		return nil, err
	}

	return &Page{Items: resp.Content, Pagination: resp.Pagination}, nil
}

// Get returns one item. The backend counts it as a view.
func (s *Service) Get(ctx context.Context, id string) (*models.Content, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, clientapi.Validation("content id is required", nil)
	}
	return s.gateway.GetContent(ctx, id)
}

// ByCategory returns every item of a category
func (s *Service) ByCategory(ctx context.Context, category models.Category) ([]models.Content, error) {
	if err := validation.ValidateCategory(category); err != nil {
		return nil, clientapi.Validation(err.Error(), map[string]string{"category": err.Error()})
	}
	return s.gateway.ContentByCategory(ctx, string(category))
}

// Create adds a new item (administrators only)
func (s *Service) Create(ctx context.Context, d Draft) (*models.Content, error) {
	fields := map[string]string{}
	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(d.Body) == "" {
		fields["content"] = "content is required"
	}
	if err := validation.ValidateCategory(d.Category); err != nil {
		fields["category"] = err.Error()
	}
	if d.ContentType == "" {
		d.ContentType = models.ContentTypeArticle
	}
	if err := validation.ValidateContentType(d.ContentType); err != nil {
		fields["contentType"] = err.Error()
	}
	if len(fields) > 0 {
		return nil, clientapi.Validation("Please fix the highlighted fields.", fields)
	}

	item, err := s.gateway.CreateContent(ctx, d.form(), d.Photo)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to create content", "error", err)
		return nil, err
	}
	s.logger.InfoContext(ctx, "content created", "content_id", item.ID)
	return item, nil
}

// Update changes the non-empty fields of d (administrators only)
func (s *Service) Update(ctx context.Context, id string, d Draft) (*models.Content, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, clientapi.Validation("content id is required", nil)
	}

	fields := map[string]string{}
	if d.Category != "" {
		if err := validation.ValidateCategory(d.Category); err != nil {
			fields["category"] = err.Error()
		}
	}
	if d.ContentType != "" {
		if err := validation.ValidateContentType(d.ContentType); err != nil {
			fields["contentType"] = err.Error()
		}
	}
	if len(fields) > 0 {
		return nil, clientapi.Validation("Please fix the highlighted fields.", fields)
	}

	form := d.form()
	if len(form) == 0 && d.Photo == nil {
		return nil, clientapi.Validation("Nothing to update.", nil)
	}

	item, err := s.gateway.UpdateContent(ctx, id, form, d.Photo)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to update content", "content_id", id, "error", err)
		return nil, err
	}
	return item, nil
}

// Delete removes an item (administrators only)
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return clientapi.Validation("content id is required", nil)
	}
	if err := s.gateway.DeleteContent(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to delete content", "content_id", id, "error", err)
		return err
	}
	return nil
}

// Stats returns library statistics (administrators only)
func (s *Service) Stats(ctx context.Context) (*models.ContentStats, error) {
	return s.gateway.ContentStats(ctx)
}

// values переводит Query в параметры строки запроса
func (q Query) values() (url.Values, error) {
	params := url.Values{}

	if q.Category != "" {
		if err := validation.ValidateCategory(q.Category); err != nil {
			return nil, clientapi.Validation(err.Error(), map[string]string{"category": err.Error()})
		}
		params.Set("category", string(q.Category))
	}
	if q.ContentType != "" {
		if err := validation.ValidateContentType(q.ContentType); err != nil {
			return nil, clientapi.Validation(err.Error(), map[string]string{"contentType": err.Error()})
		}
		params.Set("contentType", string(q.ContentType))
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		params.Set("search", search)
	}
	switch q.Sort {
	case "":
	case "createdAt", "views", "title":
		params.Set("sort", q.Sort)
	default:
		return nil, clientapi.Validation("sort must be one of: createdAt, views, title", nil)
	}
	switch q.Order {
	case "":
	case "asc", "desc":
		params.Set("order", q.Order)
	default:
		return nil, clientapi.Validation("order must be asc or desc", nil)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	return params, nil
}

func (d Draft) form() map[string]string {
	form := map[string]string{}
	set := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			form[key] = v
		}
	}
	set("title", d.Title)
	set("description", d.Description)
	set("content", d.Body)
	set("category", string(d.Category))
	set("contentType", string(d.ContentType))
	return form
}
