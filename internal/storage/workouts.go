package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WorkoutFilter narrows workout listings. Zero values mean "no filter".
type WorkoutFilter struct {
	Status    models.Status
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// InsertWorkout stores a fully-recomputed workout. The exercises document is
// persisted as JSONB alongside the derived totals; callers must have run the
// aggregator's Recompute first so derived state is never stored stale.
func (db *DB) InsertWorkout(ctx context.Context, w models.Workout) error {
	exercises, err := json.Marshal(w.Exercises)
	if err != nil {
		return fmt.Errorf("marshaling exercises: %w", err)
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO workouts (id, user_id, name, description, date, status,
		 start_time, end_time, duration_min, rating, notes, exercises,
		 total_exercises, total_sets, total_reps, total_weight, total_volume,
		 created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		w.ID, w.UserID, w.Name, w.Description, w.Date, w.Status,
		w.StartTime, w.EndTime, w.DurationMin, w.Rating, w.Notes, exercises,
		w.TotalExercises, w.TotalSets, w.TotalReps, w.TotalWeight, w.TotalVolume,
		w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}
	return nil
}

// UpdateWorkout replaces the stored workout document. Last write wins;
// concurrent edits to the same workout are not arbitrated here.
func (db *DB) UpdateWorkout(ctx context.Context, w models.Workout) error {
	exercises, err := json.Marshal(w.Exercises)
	if err != nil {
		return fmt.Errorf("marshaling exercises: %w", err)
	}

	tag, err := db.Pool.Exec(ctx,
		`UPDATE workouts SET name = $3, description = $4, date = $5, status = $6,
		 start_time = $7, end_time = $8, duration_min = $9, rating = $10, notes = $11,
		 exercises = $12, total_exercises = $13, total_sets = $14, total_reps = $15,
		 total_weight = $16, total_volume = $17, updated_at = $18
		 WHERE id = $1 AND user_id = $2`,
		w.ID, w.UserID, w.Name, w.Description, w.Date, w.Status,
		w.StartTime, w.EndTime, w.DurationMin, w.Rating, w.Notes, exercises,
		w.TotalExercises, w.TotalSets, w.TotalReps, w.TotalWeight, w.TotalVolume,
		w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetWorkout retrieves a single workout scoped to its owner.
func (db *DB) GetWorkout(ctx context.Context, id, userID uuid.UUID) (*models.Workout, error) {
	row := db.Pool.QueryRow(ctx, workoutSelect+` WHERE id = $1 AND user_id = $2`, id, userID)
	w, err := scanWorkout(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying workout: %w", err)
	}
	return w, nil
}

// ListWorkouts retrieves a user's workouts matching the filter, newest first.
func (db *DB) ListWorkouts(ctx context.Context, userID uuid.UUID, f WorkoutFilter) ([]models.Workout, error) {
	query := workoutSelect + ` WHERE user_id = $1`
	args := []any{userID}

	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		result = append(result, *w)
	}
	return result, rows.Err()
}

// DeleteWorkout removes a workout. Only the owner's rows match; deleting a
// workout never cascades into the exercise catalog.
func (db *DB) DeleteWorkout(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountWorkouts returns how many workouts match the filter, for pagination.
func (db *DB) CountWorkouts(ctx context.Context, userID uuid.UUID, f WorkoutFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM workouts WHERE user_id = $1`
	args := []any{userID}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	var count int64
	if err := db.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting workouts: %w", err)
	}
	return count, nil
}

const workoutSelect = `SELECT id, user_id, name, description, date, status,
	start_time, end_time, duration_min, rating, notes, exercises,
	total_exercises, total_sets, total_reps, total_weight, total_volume,
	created_at, updated_at FROM workouts`

func scanWorkout(row pgx.Row) (*models.Workout, error) {
	var w models.Workout
	var exercises []byte
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Description, &w.Date, &w.Status,
		&w.StartTime, &w.EndTime, &w.DurationMin, &w.Rating, &w.Notes, &exercises,
		&w.TotalExercises, &w.TotalSets, &w.TotalReps, &w.TotalWeight, &w.TotalVolume,
		&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(exercises) > 0 {
		if err := json.Unmarshal(exercises, &w.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshaling exercises: %w", err)
		}
	}
	return &w, nil
}
