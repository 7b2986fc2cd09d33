package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertExercise adds a catalog entry. Returns true if inserted, false if a
// non-custom exercise with the same name already exists (seeding is
// idempotent).
func (db *DB) InsertExercise(ctx context.Context, e models.Exercise) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO exercises (id, name, category, muscle_groups, equipment, difficulty,
		 description, instructions, is_custom, created_by, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 ON CONFLICT (name) WHERE NOT is_custom DO NOTHING`,
		e.ID, e.Name, e.Category, e.MuscleGroups, e.Equipment, e.Difficulty,
		e.Description, e.Instructions, e.IsCustom, e.CreatedBy, e.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("inserting exercise: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetExercise retrieves a single catalog entry.
func (db *DB) GetExercise(ctx context.Context, id uuid.UUID) (*models.Exercise, error) {
	row := db.Pool.QueryRow(ctx, exerciseSelect+` WHERE id = $1`, id)
	e, err := scanExercise(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying exercise: %w", err)
	}
	return e, nil
}

// ListExercises returns catalog entries matching the filter, name-ordered.
// Custom exercises are visible only to their creator.
func (db *DB) ListExercises(ctx context.Context, f models.ExerciseFilter, userID uuid.UUID) ([]models.Exercise, error) {
	query := exerciseSelect + ` WHERE (NOT is_custom OR created_by = $1)`
	args := []any{userID}

	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Equipment != "" {
		args = append(args, f.Equipment)
		query += fmt.Sprintf(" AND equipment = $%d", len(args))
	}
	if f.Difficulty != "" {
		args = append(args, f.Difficulty)
		query += fmt.Sprintf(" AND difficulty = $%d", len(args))
	}
	if f.MuscleGroup != "" {
		args = append(args, f.MuscleGroup)
		query += fmt.Sprintf(" AND $%d = ANY(muscle_groups)", len(args))
	}
	query += " ORDER BY name ASC"

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

// ExerciseCategories returns a map from exercise ID to category for the given
// IDs, used by the stats handlers to resolve category distributions.
func (db *DB) ExerciseCategories(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT id, category FROM exercises WHERE id IN (`+strings.Join(placeholders, ",")+`)`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("querying exercise categories: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]string, len(ids))
	for rows.Next() {
		var id uuid.UUID
		var category string
		if err := rows.Scan(&id, &category); err != nil {
			return nil, fmt.Errorf("scanning exercise category: %w", err)
		}
		result[id] = category
	}
	return result, rows.Err()
}

const exerciseSelect = `SELECT id, name, category, muscle_groups, equipment, difficulty,
	description, instructions, is_custom, created_by, created_at FROM exercises`

func scanExercise(row pgx.Row) (*models.Exercise, error) {
	var e models.Exercise
	err := row.Scan(&e.ID, &e.Name, &e.Category, &e.MuscleGroups, &e.Equipment, &e.Difficulty,
		&e.Description, &e.Instructions, &e.IsCustom, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
