// Package workout maintains the structural and derived-field consistency of
// a single workout across its lifecycle. All operations are synchronous and
// side-effect free beyond mutating the passed workout; persistence belongs to
// the caller, which must Recompute before every write so that no workout is
// ever stored with stale derived totals.
package workout

import (
	"time"

	"github.com/claude/liftlog/internal/metrics"
	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// New creates a planned workout with no exercises for the given user.
func New(userID uuid.UUID, name string, date time.Time) *models.Workout {
	now := time.Now().UTC()
	return &models.Workout{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Date:      date,
		Status:    models.StatusPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidateSet checks a raw set against the input contract: non-negative
// reps/weight/duration/rest and RPE in [1,10]. It returns a ValidationError
// naming the offending field.
func ValidateSet(s models.Set) error {
	if s.Reps < 0 {
		return &ValidationError{Field: "reps", Reason: "must not be negative"}
	}
	if s.Weight < 0 {
		return &ValidationError{Field: "weight", Reason: "must not be negative"}
	}
	if s.DurationSec != nil && *s.DurationSec < 0 {
		return &ValidationError{Field: "duration_sec", Reason: "must not be negative"}
	}
	if s.RestTimeSec != nil && *s.RestTimeSec < 0 {
		return &ValidationError{Field: "rest_time_sec", Reason: "must not be negative"}
	}
	if s.RPE != nil && (*s.RPE < 1 || *s.RPE > 10) {
		return &ValidationError{Field: "rpe", Reason: "must be between 1 and 10"}
	}
	return nil
}

// AddExercise appends an entry with an empty set list. order 0 auto-assigns
// len(exercises)+1; an explicit order already in use fails with
// ErrDuplicateOrder and leaves the workout untouched.
func AddExercise(w *models.Workout, exerciseID uuid.UUID, order int) error {
	if order < 0 {
		return &ValidationError{Field: "order", Reason: "must be positive"}
	}
	if order == 0 {
		order = len(w.Exercises) + 1
	}
	for _, e := range w.Exercises {
		if e.Order == order {
			return ErrDuplicateOrder
		}
	}
	w.Exercises = append(w.Exercises, models.ExerciseEntry{
		ExerciseID: exerciseID,
		Order:      order,
		Sets:       []models.Set{},
	})
	Recompute(w)
	return nil
}

// RemoveExercise deletes the entry at exerciseIndex.
func RemoveExercise(w *models.Workout, exerciseIndex int) error {
	if exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return ErrExerciseNotFound
	}
	w.Exercises = append(w.Exercises[:exerciseIndex], w.Exercises[exerciseIndex+1:]...)
	Recompute(w)
	return nil
}

// AddSet validates the set and appends it to the entry at exerciseIndex.
func AddSet(w *models.Workout, exerciseIndex int, s models.Set) error {
	if exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return ErrExerciseNotFound
	}
	if err := ValidateSet(s); err != nil {
		return err
	}
	w.Exercises[exerciseIndex].Sets = append(w.Exercises[exerciseIndex].Sets, s)
	Recompute(w)
	return nil
}

// UpdateSet replaces the set at setIndex within the entry at exerciseIndex.
func UpdateSet(w *models.Workout, exerciseIndex, setIndex int, s models.Set) error {
	if exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return ErrExerciseNotFound
	}
	if setIndex < 0 || setIndex >= len(w.Exercises[exerciseIndex].Sets) {
		return ErrSetNotFound
	}
	if err := ValidateSet(s); err != nil {
		return err
	}
	w.Exercises[exerciseIndex].Sets[setIndex] = s
	Recompute(w)
	return nil
}

// RemoveSet deletes the set at setIndex within the entry at exerciseIndex.
func RemoveSet(w *models.Workout, exerciseIndex, setIndex int) error {
	if exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return ErrExerciseNotFound
	}
	sets := w.Exercises[exerciseIndex].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return ErrSetNotFound
	}
	w.Exercises[exerciseIndex].Sets = append(sets[:setIndex], sets[setIndex+1:]...)
	Recompute(w)
	return nil
}

// Recompute refreshes every derived field from the current sets: per-entry
// totals first, then workout-level aggregates, then duration when both
// timestamps exist. An explicitly supplied duration survives incomplete
// timestamps. Recompute is idempotent and must run before any persistence of
// a structural change.
func Recompute(w *models.Workout) {
	for i := range w.Exercises {
		em := metrics.ForSets(w.Exercises[i].Sets)
		w.Exercises[i].TotalReps = em.TotalReps
		w.Exercises[i].TotalWeight = em.TotalWeight
		w.Exercises[i].TotalVolume = em.TotalVolume
		w.Exercises[i].MaxWeight = em.MaxWeight
	}

	wm := metrics.ForWorkout(w.Exercises)
	w.TotalExercises = wm.TotalExercises
	w.TotalSets = wm.TotalSets
	w.TotalReps = wm.TotalReps
	w.TotalWeight = wm.TotalWeight
	w.TotalVolume = wm.TotalVolume

	if d, ok := metrics.Duration(w.StartTime, w.EndTime); ok {
		w.DurationMin = &d
	}
	w.UpdatedAt = time.Now().UTC()
}

// Start moves the workout to in_progress and records the start time.
// Completed and skipped workouts cannot be (re)started.
func Start(w *models.Workout, now time.Time) error {
	if w.Status == models.StatusCompleted || w.Status == models.StatusSkipped {
		return ErrInvalidTransition
	}
	w.Status = models.StatusInProgress
	t := now.UTC()
	w.StartTime = &t
	w.UpdatedAt = t
	return nil
}

// Complete moves the workout to completed, records the end time, and
// recomputes derived fields including duration.
func Complete(w *models.Workout, now time.Time) error {
	if w.Status == models.StatusCompleted {
		return ErrInvalidTransition
	}
	w.Status = models.StatusCompleted
	t := now.UTC()
	w.EndTime = &t
	Recompute(w)
	return nil
}

// Skip marks a planned workout as skipped.
func Skip(w *models.Workout) error {
	if w.Status != models.StatusPlanned {
		return ErrInvalidTransition
	}
	w.Status = models.StatusSkipped
	w.UpdatedAt = time.Now().UTC()
	return nil
}
