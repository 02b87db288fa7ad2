package api

import "github.com/iudanet/khutwa/internal/models"

// Pagination параметры страницы списка
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ContentListResponse ответ GET /educational-content
type ContentListResponse struct {
	Content    []models.Content `json:"content"`
	Pagination Pagination       `json:"pagination"`
}

// ContentResponse ответ с одним материалом
type ContentResponse struct {
	Content *models.Content `json:"content"`
	Message string          `json:"message,omitempty"`
}

// ContentStatsResponse ответ GET /educational-content/stats/overview
type ContentStatsResponse struct {
	Stats models.ContentStats `json:"stats"`
}

// ContentCategoryResponse ответ GET /educational-content/category/{category}
type ContentCategoryResponse struct {
	Category string           `json:"category"`
	Content  []models.Content `json:"content"`
}
