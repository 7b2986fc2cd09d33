// Package metrics derives aggregate training metrics from raw set data.
// All functions are pure: they assume already-validated input (validation
// happens at the workout aggregator boundary) and never fail on well-formed
// data. Degenerate inputs such as empty set lists produce zero values.
package metrics

import (
	"math"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// ExerciseMetrics holds the derived fields of one exercise entry.
//
// TotalWeight is the plain sum of per-set weights ("total weight lifted
// across sets"), deliberately distinct from TotalVolume which weights each
// set by its rep count. The two totals coexist on purpose.
type ExerciseMetrics struct {
	TotalReps   int
	TotalWeight float64
	TotalVolume float64
	MaxWeight   float64
}

// WorkoutMetrics holds the derived aggregate fields of a whole workout.
type WorkoutMetrics struct {
	TotalExercises int
	TotalSets      int
	TotalReps      int
	TotalWeight    float64
	TotalVolume    float64
}

// ForSets computes per-exercise metrics over a list of sets.
// An empty list yields the zero value; MaxWeight is 0, never an error.
func ForSets(sets []models.Set) ExerciseMetrics {
	var m ExerciseMetrics
	for _, s := range sets {
		m.TotalReps += s.Reps
		m.TotalWeight += s.Weight
		m.TotalVolume += float64(s.Reps) * s.Weight
		if s.Weight > m.MaxWeight {
			m.MaxWeight = s.Weight
		}
	}
	return m
}

// ForWorkout sums the already-derived per-entry fields into workout-level
// aggregates. Callers are expected to have refreshed each entry via ForSets
// first; the workout aggregator's Recompute does both in order.
func ForWorkout(entries []models.ExerciseEntry) WorkoutMetrics {
	m := WorkoutMetrics{TotalExercises: len(entries)}
	for _, e := range entries {
		m.TotalSets += len(e.Sets)
		m.TotalReps += e.TotalReps
		m.TotalWeight += e.TotalWeight
		m.TotalVolume += e.TotalVolume
	}
	return m
}

// Duration computes a workout duration in whole minutes, rounded to nearest.
// It reports false when either timestamp is missing, in which case the caller
// must leave any explicitly supplied duration untouched.
func Duration(start, end *time.Time) (int, bool) {
	if start == nil || end == nil {
		return 0, false
	}
	minutes := end.Sub(*start).Minutes()
	return int(math.Round(minutes)), true
}

// Epley1RM estimates a one-rep max from a set's weight and reps using the
// Epley formula. Zero reps yields zero rather than a divide-free nonsense
// extrapolation.
func Epley1RM(weight float64, reps int) float64 {
	if reps == 0 {
		return 0
	}
	return weight * (1 + float64(reps)/30)
}
