package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/khutwa/internal/models"
)

// MinSearchLen минимальная длина поискового запроса по пользователям
const MinSearchLen = 2

// ValidateSearchQuery checks a user-search query. Leading and trailing
// whitespace does not count towards the minimum length.
func ValidateSearchQuery(query string) error {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < MinSearchLen {
		return fmt.Errorf("search query must be at least %d characters long", MinSearchLen)
	}
	return nil
}

// ValidateCategory проверяет категорию контента
func ValidateCategory(category models.Category) error {
	for _, c := range models.Categories() {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("unknown category: %s", category)
}

// ValidateContentType проверяет тип материала
func ValidateContentType(contentType models.ContentType) error {
	for _, t := range models.ContentTypes() {
		if t == contentType {
			return nil
		}
	}
	return fmt.Errorf("unknown content type: %s", contentType)
}
