package storage

import (
	"context"

	"github.com/iudanet/khutwa/internal/models"
)

// SensorStorage defines interface for insole sensor readings
type SensorStorage interface {
	// SaveReading stores a reading
	SaveReading(ctx context.Context, reading *models.SensorReading) error

	// LatestReading returns the most recent reading of the user,
	// or nil without error if there are none
	LatestReading(ctx context.Context, userID string) (*models.SensorReading, error)
}
