package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DataStats holds aggregate counts about a user's stored data, for the
// profile page and the MCP catalog resource.
type DataStats struct {
	TotalWorkouts     int64      `json:"total_workouts"`
	CompletedWorkouts int64      `json:"completed_workouts"`
	TotalSets         int64      `json:"total_sets"`
	CustomExercises   int64      `json:"custom_exercises"`
	FirstWorkout      *time.Time `json:"first_workout,omitempty"`
	LastWorkout       *time.Time `json:"last_workout,omitempty"`
}

// GetDataStats returns aggregate statistics for a user's stored data.
func (db *DB) GetDataStats(ctx context.Context, userID uuid.UUID) (*DataStats, error) {
	stats := &DataStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'completed'),
		        COALESCE(SUM(total_sets), 0),
		        MIN(date), MAX(date)
		 FROM workouts WHERE user_id = $1`, userID,
	).Scan(&stats.TotalWorkouts, &stats.CompletedWorkouts, &stats.TotalSets,
		&stats.FirstWorkout, &stats.LastWorkout)
	if err != nil {
		return nil, fmt.Errorf("counting workouts: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM exercises WHERE is_custom AND created_by = $1`, userID,
	).Scan(&stats.CustomExercises)
	if err != nil {
		return nil, fmt.Errorf("counting custom exercises: %w", err)
	}

	return stats, nil
}
