package api

import "github.com/iudanet/khutwa/internal/models"

// SensorDataResponse конверт ответа GET /sensor-data/latest.
// Data равен nil, если показаний ещё нет.
type SensorDataResponse struct {
	Data    *models.SensorReading `json:"data"`
	Success bool                  `json:"success"`
}

// SensorDataRequest тело POST /sensor-data
type SensorDataRequest struct {
	Left        models.FootPressure `json:"left"`
	Right       models.FootPressure `json:"right"`
	Temperature float64             `json:"temperature"`
	Humidity    float64             `json:"humidity"`
}
