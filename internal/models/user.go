package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. PasswordHash never leaves the storage and auth
// layers; the JSON tag keeps it out of API responses.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`

	HeightCm *float64 `json:"height_cm,omitempty"`
	AgeYears *int     `json:"age_years,omitempty"`

	WeeklyWorkoutGoal int    `json:"weekly_workout_goal"`
	FitnessLevel      string `json:"fitness_level,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

// WeightEntry is one point in a user's body-weight history, in kilograms.
type WeightEntry struct {
	WeightKg float64   `json:"weight_kg"`
	Date     time.Time `json:"date"`
}

// Session is an issued bearer token for an authenticated user.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
