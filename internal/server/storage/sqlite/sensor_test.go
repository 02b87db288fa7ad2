package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/khutwa/internal/models"
)

func TestSensorStorage_Latest(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ann := createTestUser(t, ctx, s, "Ann", "ann@example.com")
	omar := createTestUser(t, ctx, s, "Omar", "omar@example.com")

	got, err := s.LatestReading(ctx, ann.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "no readings yet")

	now := time.Now()
	older := &models.SensorReading{
		ID: uuid.New().String(), UserID: ann.ID, RecordedAt: now.Add(-time.Minute),
		Left: models.FootPressure{Heel: 100}, Temperature: 30,
	}
	newer := &models.SensorReading{
		ID:          uuid.New().String(),
		UserID:      ann.ID,
		RecordedAt:  now,
		Left:        models.FootPressure{Heel: 210, Midfoot: 80, Forefoot: 150, Toe: 60},
		Right:       models.FootPressure{Heel: 190, Midfoot: 75, Forefoot: 140, Toe: 55},
		Temperature: 31.5,
		Humidity:    47,
	}
	other := &models.SensorReading{ID: uuid.New().String(), UserID: omar.ID, RecordedAt: now.Add(time.Minute)}

	for _, r := range []*models.SensorReading{newer, older, other} {
		require.NoError(t, s.SaveReading(ctx, r))
	}

	got, err = s.LatestReading(ctx, ann.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, newer.ID, got.ID)
	assert.Equal(t, newer.Left, got.Left)
	assert.Equal(t, newer.Right, got.Right)
	assert.InDelta(t, 31.5, got.Temperature, 0.001)
	assert.WithinDuration(t, now, got.RecordedAt, time.Second)
}
