package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/server/storage"
	"github.com/iudanet/khutwa/internal/validation"
	"github.com/iudanet/khutwa/pkg/api"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
	// categoryLimit ограничивает выдачу GET /educational-content/category/{category}
	categoryLimit = 500
)

// ContentHandler обрабатывает образовательный контент
type ContentHandler struct {
	responder
	contents storage.ContentStorage
	uploads  *Uploads
}

// NewContentHandler создает ContentHandler
func NewContentHandler(logger *slog.Logger, contents storage.ContentStorage, uploads *Uploads) *ContentHandler {
	return &ContentHandler{
		responder: responder{logger: logger},
		contents:  contents,
		uploads:   uploads,
	}
}

// List обрабатывает GET /api/educational-content
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fields := map[string]string{}

	filter := storage.ContentFilter{
		Category:    models.Category(q.Get("category")),
		ContentType: models.ContentType(q.Get("contentType")),
		Search:      strings.TrimSpace(q.Get("search")),
		Sort:        q.Get("sort"),
		Order:       strings.ToLower(q.Get("order")),
	}
	if filter.Category != "" {
		check(fields, "category", validation.ValidateCategory(filter.Category))
	}
	if filter.ContentType != "" {
		check(fields, "contentType", validation.ValidateContentType(filter.ContentType))
	}
	switch filter.Sort {
	case "", "createdAt", "views", "title":
	default:
		fields["sort"] = "sort must be one of: createdAt, views, title"
	}
	switch filter.Order {
	case "", "asc", "desc":
	default:
		fields["order"] = "order must be asc or desc"
	}

	page, err := positiveInt(q.Get("page"), 1)
	if err != nil {
		fields["page"] = "page must be a positive number"
	}
	limit, err := positiveInt(q.Get("limit"), defaultPageLimit)
	if err != nil {
		fields["limit"] = "limit must be a positive number"
	}
	if len(fields) > 0 {
		h.sendFieldErrors(w, fields)
		return
	}
	limit = min(limit, maxPageLimit)
	// смещение (page-1)*limit должно помещаться в int
	if page-1 > math.MaxInt/limit {
		h.sendFieldErrors(w, map[string]string{"page": "page is too large"})
		return
	}

	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	items, total, err := h.contents.ListContent(r.Context(), filter)
	if err != nil {
		h.sendInternal(w, r, "failed to list content", err)
		return
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	h.sendJSON(w, api.ContentListResponse{
		Content: items,
		Pagination: api.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, http.StatusOK)
}

// Get обрабатывает GET /api/educational-content/{id}; каждый запрос считается просмотром
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.contents.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, storage.ErrContentNotFound) {
			h.sendError(w, "Content not found", http.StatusNotFound)
			return
		}
		h.sendInternal(w, r, "failed to count view", err)
		return
	}

	item, err := h.contents.GetContent(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrContentNotFound) {
			h.sendError(w, "Content not found", http.StatusNotFound)
			return
		}
		h.sendInternal(w, r, "failed to get content", err)
		return
	}

	h.sendJSON(w, api.ContentResponse{Content: item}, http.StatusOK)
}

// ByCategory обрабатывает GET /api/educational-content/category/{category}
func (h *ContentHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.PathValue("category"))
	if err := validation.ValidateCategory(category); err != nil {
		h.sendFieldErrors(w, map[string]string{"category": err.Error()})
		return
	}

	items, _, err := h.contents.ListContent(r.Context(), storage.ContentFilter{
		Category: category,
		Limit:    categoryLimit,
	})
	if err != nil {
		h.sendInternal(w, r, "failed to list category", err)
		return
	}

	h.sendJSON(w, api.ContentCategoryResponse{Category: string(category), Content: items}, http.StatusOK)
}

// Create обрабатывает POST /api/educational-content (только admin)
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.requireAdmin(w, r) {
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	userID, _ := GetUserID(ctx)
	now := time.Now().UTC()
	item := &models.Content{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Body:        strings.TrimSpace(r.FormValue("content")),
		Category:    models.Category(r.FormValue("category")),
		ContentType: models.ContentType(r.FormValue("contentType")),
		CreatedBy:   &models.Author{ID: userID},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.ContentType == "" {
		item.ContentType = models.ContentTypeArticle
	}

	if fields := validateContent(item); len(fields) > 0 {
		h.sendFieldErrors(w, fields)
		return
	}
	photo, ok := h.savePhoto(w, r, item)
	if !ok {
		return
	}

	if err := h.contents.CreateContent(ctx, item); err != nil {
		h.discardPhoto(ctx, h.uploads, photo)
		h.sendInternal(w, r, "failed to create content", err)
		return
	}

	h.logger.InfoContext(ctx, "content created", slog.String("content_id", item.ID))
	h.respondWithItem(w, r, item.ID, "Content created successfully", http.StatusCreated)
}

// Update обрабатывает PUT /api/educational-content/{id} (только admin).
// Меняются только переданные поля.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.requireAdmin(w, r) {
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	item, err := h.contents.GetContent(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrContentNotFound) {
			h.sendError(w, "Content not found", http.StatusNotFound)
			return
		}
		h.sendInternal(w, r, "failed to get content", err)
		return
	}

	set := func(key string, apply func(string)) {
		if _, ok := r.Form[key]; ok {
			apply(strings.TrimSpace(r.FormValue(key)))
		}
	}
	set("title", func(v string) { item.Title = v })
	set("description", func(v string) { item.Description = v })
	set("content", func(v string) { item.Body = v })
	set("category", func(v string) { item.Category = models.Category(v) })
	set("contentType", func(v string) { item.ContentType = models.ContentType(v) })
	item.UpdatedAt = time.Now().UTC()

	if fields := validateContent(item); len(fields) > 0 {
		h.sendFieldErrors(w, fields)
		return
	}
	oldPhoto := item.Photo
	photo, ok := h.savePhoto(w, r, item)
	if !ok {
		return
	}

	if err := h.contents.UpdateContent(ctx, item); err != nil {
		h.discardPhoto(ctx, h.uploads, photo)
		if errors.Is(err, storage.ErrContentNotFound) {
			h.sendError(w, "Content not found", http.StatusNotFound)
			return
		}
		h.sendInternal(w, r, "failed to update content", err)
		return
	}
	if photo != "" && oldPhoto != photo {
		h.discardPhoto(ctx, h.uploads, oldPhoto)
	}

	h.logger.InfoContext(ctx, "content updated", slog.String("content_id", item.ID))
	h.respondWithItem(w, r, item.ID, "Content updated successfully", http.StatusOK)
}

// Delete обрабатывает DELETE /api/educational-content/{id} (только admin)
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.requireAdmin(w, r) {
		return
	}

	id := r.PathValue("id")
	if err := h.contents.DeleteContent(ctx, id); err != nil {
		if errors.Is(err, storage.ErrContentNotFound) {
			h.sendError(w, "Content not found", http.StatusNotFound)
			return
		}
		h.sendInternal(w, r, "failed to delete content", err)
		return
	}

	h.logger.InfoContext(ctx, "content deleted", slog.String("content_id", id))
	h.sendJSON(w, api.MessageResponse{Message: "Content deleted successfully"}, http.StatusOK)
}

// Stats обрабатывает GET /api/educational-content/stats/overview (только admin)
func (h *ContentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	stats, err := h.contents.ContentStats(r.Context())
	if err != nil {
		h.sendInternal(w, r, "failed to aggregate content", err)
		return
	}

	h.sendJSON(w, api.ContentStatsResponse{Stats: *stats}, http.StatusOK)
}

func (h *ContentHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if GetRole(r.Context()) != models.RoleAdmin {
		h.sendError(w, "Only administrators can manage educational content", http.StatusForbidden)
		return false
	}
	return true
}

func (h *ContentHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := parseForm(r); err != nil {
		h.logger.WarnContext(r.Context(), "failed to parse content form", slog.Any("error", err))
		h.sendError(w, "invalid form data", http.StatusBadRequest)
		return false
	}
	return true
}

// savePhoto возвращает имя нового файла или пустую строку, если фото не передано
func (h *ContentHandler) savePhoto(w http.ResponseWriter, r *http.Request, item *models.Content) (string, bool) {
	photo, err := h.uploads.SavePhoto(r)
	if err != nil {
		if errors.Is(err, errUnsupportedPhoto) {
			h.sendFieldErrors(w, map[string]string{"photo": err.Error()})
			return "", false
		}
		h.sendInternal(w, r, "failed to save photo", err)
		return "", false
	}
	if photo != "" {
		item.Photo = photo
	}
	return photo, true
}

// respondWithItem перечитывает материал, чтобы вернуть имя автора
func (h *ContentHandler) respondWithItem(w http.ResponseWriter, r *http.Request, id, message string, status int) {
	item, err := h.contents.GetContent(r.Context(), id)
	if err != nil {
		h.sendInternal(w, r, "failed to reload content", err)
		return
	}
	h.sendJSON(w, api.ContentResponse{Content: item, Message: message}, status)
}

func validateContent(item *models.Content) map[string]string {
	fields := map[string]string{}
	if item.Title == "" {
		fields["title"] = "title is required"
	}
	if item.Body == "" {
		fields["content"] = "content is required"
	}
	check(fields, "category", validation.ValidateCategory(item.Category))
	check(fields, "contentType", validation.ValidateContentType(item.ContentType))
	return fields
}

// positiveInt разбирает число > 0; пустая строка дает def
func positiveInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def, err
	}
	if n < 1 {
		return def, strconv.ErrRange
	}
	return n, nil
}
