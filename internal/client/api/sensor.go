package api

import (
	"context"
	"net/http"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/pkg/api"
)

// LatestSensorData возвращает последнее показание датчиков.
// (nil, nil) означает, что показаний ещё нет.
func (c *Client) LatestSensorData(ctx context.Context) (*models.SensorReading, error) {
	var resp api.SensorDataResponse
	if err := c.doRequest(ctx, http.MethodGet, "/sensor-data/latest", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// PushSensorData отправляет показание датчиков текущего пользователя
func (c *Client) PushSensorData(ctx context.Context, req api.SensorDataRequest) (*models.SensorReading, error) {
	var resp api.SensorDataResponse
	if err := c.doRequest(ctx, http.MethodPost, "/sensor-data", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
