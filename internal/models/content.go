package models

import "time"

// Category категория образовательного контента
type Category string

const (
	CategoryPrevention Category = "prevention"
	CategoryFootCare   Category = "foot_care"
	CategoryNutrition  Category = "nutrition"
	CategoryExercise   Category = "exercise"
	CategoryMonitoring Category = "monitoring"
	CategoryEmergency  Category = "emergency"
)

// Categories возвращает все категории в порядке отображения
func Categories() []Category {
	return []Category{
		CategoryPrevention,
		CategoryFootCare,
		CategoryNutrition,
		CategoryExercise,
		CategoryMonitoring,
		CategoryEmergency,
	}
}

// ContentType тип материала
type ContentType string

const (
	ContentTypeArticle     ContentType = "article"
	ContentTypeVideo       ContentType = "video"
	ContentTypeInfographic ContentType = "infographic"
	ContentTypeTip         ContentType = "tip"
)

// ContentTypes возвращает все типы материалов
func ContentTypes() []ContentType {
	return []ContentType{ContentTypeArticle, ContentTypeVideo, ContentTypeInfographic, ContentTypeTip}
}

// Author автор материала
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Content представляет образовательный материал
type Content struct {
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	CreatedBy   *Author     `json:"createdBy,omitempty"` // nil для материалов команды Khutwa
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Body        string      `json:"content"` // основной текст материала
	Category    Category    `json:"category"`
	ContentType ContentType `json:"contentType"`
	Photo       string      `json:"photo,omitempty"`
	Views       int64       `json:"views"`
}

// ContentStats агрегированная статистика по контенту (только для администратора)
type ContentStats struct {
	ByCategory map[Category]int64    `json:"byCategory"`
	ByType     map[ContentType]int64 `json:"byType"`
	Total      int64                 `json:"total"`
	TotalViews int64                 `json:"totalViews"`
}
