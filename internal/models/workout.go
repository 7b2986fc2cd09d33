package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a workout.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusSkipped    Status = "skipped"
)

// Valid reports whether s is one of the known workout statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// Set is a single performed set of an exercise. Weight is in kilograms,
// durations in seconds. RPE is the 1-10 perceived exertion scale.
type Set struct {
	Reps        int      `json:"reps"`
	Weight      float64  `json:"weight"`
	DurationSec *float64 `json:"duration_sec,omitempty"`
	RestTimeSec *float64 `json:"rest_time_sec,omitempty"`
	RPE         *int     `json:"rpe,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Completed   bool     `json:"completed"`
}

// ExerciseEntry is one exercise within a workout together with its sets.
// The Total* and MaxWeight fields are derived; they are recomputed from the
// sets on every structural change and never edited directly.
type ExerciseEntry struct {
	ExerciseID uuid.UUID `json:"exercise_id"`
	Order      int       `json:"order"`
	Sets       []Set     `json:"sets"`
	Notes      string    `json:"notes,omitempty"`

	TotalReps   int     `json:"total_reps"`
	TotalWeight float64 `json:"total_weight"`
	TotalVolume float64 `json:"total_volume"`
	MaxWeight   float64 `json:"max_weight"`
}

// Workout is a single training session owned by a user. Derived aggregate
// fields mirror the per-entry derived fields and are maintained by the
// workout aggregator, not by callers.
type Workout struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	Status      Status          `json:"status"`
	StartTime   *time.Time      `json:"start_time,omitempty"`
	EndTime     *time.Time      `json:"end_time,omitempty"`
	Exercises   []ExerciseEntry `json:"exercises"`

	// DurationMin is minutes. It is computed from StartTime/EndTime when both
	// are present; otherwise it holds whatever the user supplied.
	DurationMin *int   `json:"duration_min,omitempty"`
	Rating      *int   `json:"rating,omitempty"`
	Notes       string `json:"notes,omitempty"`

	TotalExercises int     `json:"total_exercises"`
	TotalSets      int     `json:"total_sets"`
	TotalReps      int     `json:"total_reps"`
	TotalWeight    float64 `json:"total_weight"`
	TotalVolume    float64 `json:"total_volume"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PersonalRecord is a new best value for a tracked metric on one exercise,
// relative to the user's prior completed history.
type PersonalRecord struct {
	ExerciseID    uuid.UUID `json:"exercise_id"`
	Metric        string    `json:"metric"` // max_weight, max_set_volume, estimated_1rm
	Value         float64   `json:"value"`
	PreviousValue float64   `json:"previous_value"`
	AchievedAt    time.Time `json:"achieved_at"`
}
