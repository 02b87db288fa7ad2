package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/khutwa/pkg/api"
)

// responder общие методы ответа для всех handlers
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}

// sendFieldErrors отправляет 400 с ошибками по полям формы
func (h responder) sendFieldErrors(w http.ResponseWriter, fields map[string]string) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(http.StatusBadRequest),
		Message: "Validation failed",
		Errors:  fields,
	}
	h.sendJSON(w, resp, http.StatusBadRequest)
}

// sendInternal логирует ошибку и отправляет 500 без деталей
func (h responder) sendInternal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	h.sendError(w, "internal server error", http.StatusInternalServerError)
}

// check добавляет ошибку поля, если она есть
func check(fields map[string]string, name string, err error) {
	if err != nil {
		fields[name] = err.Error()
	}
}
