package handlers

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/internal/server/storage"
	"github.com/iudanet/khutwa/pkg/api"
)

// SensorHandler принимает и отдает показания стелек
type SensorHandler struct {
	responder
	readings storage.SensorStorage
}

// NewSensorHandler создает SensorHandler
func NewSensorHandler(logger *slog.Logger, readings storage.SensorStorage) *SensorHandler {
	return &SensorHandler{
		responder: responder{logger: logger},
		readings:  readings,
	}
}

// Latest обрабатывает GET /api/sensor-data/latest.
// Если показаний нет, data равно null.
func (h *SensorHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.sendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	reading, err := h.readings.LatestReading(r.Context(), userID)
	if err != nil {
		h.sendInternal(w, r, "failed to get latest reading", err)
		return
	}

	h.sendJSON(w, api.SensorDataResponse{Data: reading, Success: true}, http.StatusOK)
}

// Push обрабатывает POST /api/sensor-data (прием показаний от стелек)
func (h *SensorHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.SensorDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	fields := map[string]string{}
	checkPressure(fields, "left", req.Left)
	checkPressure(fields, "right", req.Right)
	if req.Humidity < 0 || req.Humidity > 100 {
		fields["humidity"] = "humidity must be between 0 and 100"
	}
	if math.IsNaN(req.Temperature) || req.Temperature < -40 || req.Temperature > 80 {
		fields["temperature"] = "temperature must be between -40 and 80"
	}
	if len(fields) > 0 {
		h.sendFieldErrors(w, fields)
		return
	}

	reading := &models.SensorReading{
		ID:          uuid.New().String(),
		UserID:      userID,
		Left:        req.Left,
		Right:       req.Right,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		RecordedAt:  time.Now().UTC(),
	}
	if err := h.readings.SaveReading(ctx, reading); err != nil {
		h.sendInternal(w, r, "failed to save reading", err)
		return
	}

	h.logger.DebugContext(ctx, "sensor reading stored", slog.String("user_id", userID))
	h.sendJSON(w, api.SensorDataResponse{Data: reading, Success: true}, http.StatusCreated)
}

func checkPressure(fields map[string]string, foot string, p models.FootPressure) {
	for _, v := range []float64{p.Heel, p.Midfoot, p.Forefoot, p.Toe} {
		if v < 0 || math.IsNaN(v) {
			fields[foot] = "pressure must not be negative"
			return
		}
	}
}
