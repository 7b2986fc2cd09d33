package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// CreateUser inserts a new user. Email uniqueness is enforced by the schema;
// a duplicate insert surfaces as an error from the driver.
func (db *DB) CreateUser(ctx context.Context, u models.User) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, height_cm, age_years,
		 weekly_workout_goal, fitness_level, created_at, last_login)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.HeightCm, u.AgeYears,
		u.WeeklyWorkoutGoal, u.FitnessLevel, u.CreatedAt, u.LastLogin)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email, for login.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return db.scanUser(db.Pool.QueryRow(ctx, userSelect+` WHERE email = $1`, email))
}

// GetUser retrieves a user by ID.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return db.scanUser(db.Pool.QueryRow(ctx, userSelect+` WHERE id = $1`, id))
}

const userSelect = `SELECT id, name, email, password_hash, height_cm, age_years,
	weekly_workout_goal, fitness_level, created_at, last_login FROM users`

func (db *DB) scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.HeightCm, &u.AgeYears,
		&u.WeeklyWorkoutGoal, &u.FitnessLevel, &u.CreatedAt, &u.LastLogin)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

// UpdateUserProfile updates the mutable profile fields.
func (db *DB) UpdateUserProfile(ctx context.Context, u models.User) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE users SET name = $2, height_cm = $3, age_years = $4,
		 weekly_workout_goal = $5, fitness_level = $6
		 WHERE id = $1`,
		u.ID, u.Name, u.HeightCm, u.AgeYears, u.WeeklyWorkoutGoal, u.FitnessLevel)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchLastLogin records a successful login.
func (db *DB) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := db.Pool.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("updating last login: %w", err)
	}
	return nil
}

// AddWeightEntry appends a body-weight measurement to the user's history.
func (db *DB) AddWeightEntry(ctx context.Context, userID uuid.UUID, e models.WeightEntry) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO user_weights (user_id, weight_kg, recorded_at) VALUES ($1, $2, $3)`,
		userID, e.WeightKg, e.Date)
	if err != nil {
		return fmt.Errorf("inserting weight entry: %w", err)
	}
	return nil
}

// LatestWeight returns the most recent body-weight entry, or ErrNotFound when
// the user has never logged one.
func (db *DB) LatestWeight(ctx context.Context, userID uuid.UUID) (*models.WeightEntry, error) {
	var e models.WeightEntry
	err := db.Pool.QueryRow(ctx,
		`SELECT weight_kg, recorded_at FROM user_weights
		 WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT 1`,
		userID).Scan(&e.WeightKg, &e.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest weight: %w", err)
	}
	return &e, nil
}
