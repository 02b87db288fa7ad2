package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/khutwa/internal/models"
)

// SaveReading stores a sensor reading
func (s *Storage) SaveReading(ctx context.Context, r *models.SensorReading) error {
	query := `
		INSERT INTO sensor_readings (
			id, user_id,
			left_heel, left_midfoot, left_forefoot, left_toe,
			right_heel, right_midfoot, right_forefoot, right_toe,
			temperature, humidity, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.UserID,
		r.Left.Heel, r.Left.Midfoot, r.Left.Forefoot, r.Left.Toe,
		r.Right.Heel, r.Right.Midfoot, r.Right.Forefoot, r.Right.Toe,
		r.Temperature, r.Humidity, r.RecordedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert sensor reading: %w", err)
	}

	return nil
}

// LatestReading returns the most recent reading of the user or nil
func (s *Storage) LatestReading(ctx context.Context, userID string) (*models.SensorReading, error) {
	query := `
		SELECT id, user_id,
			left_heel, left_midfoot, left_forefoot, left_toe,
			right_heel, right_midfoot, right_forefoot, right_toe,
			temperature, humidity, recorded_at
		FROM sensor_readings
		WHERE user_id = ?
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	r := &models.SensorReading{}
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&r.ID, &r.UserID,
		&r.Left.Heel, &r.Left.Midfoot, &r.Left.Forefoot, &r.Left.Toe,
		&r.Right.Heel, &r.Right.Midfoot, &r.Right.Forefoot, &r.Right.Toe,
		&r.Temperature, &r.Humidity, &r.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest reading: %w", err)
	}

	return r, nil
}
