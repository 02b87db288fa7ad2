package api

import "github.com/iudanet/khutwa/internal/models"

// ShareRequest запрос на предоставление доступа к данным
type ShareRequest struct {
	TargetUserID string `json:"targetUserId"`
}

// ShareResponse ответ на предоставление доступа
type ShareResponse struct {
	Share   *models.Share `json:"share,omitempty"`
	Message string        `json:"message,omitempty"`
}

// SharedUsersResponse список пользователей по одному направлению связи
type SharedUsersResponse struct {
	Users []models.SharedUser `json:"users"`
}

// SearchUsersResponse результаты поиска пользователей
type SearchUsersResponse struct {
	Users []models.ShareCandidate `json:"users"`
}
