package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/khutwa/pkg/api"
)

// writeError отправляет JSON ошибку в формате api.ErrorResponse
func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
