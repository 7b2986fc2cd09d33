package stats

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

func entryWithSets(exerciseID uuid.UUID, sets ...models.Set) models.ExerciseEntry {
	return models.ExerciseEntry{ExerciseID: exerciseID, Sets: sets}
}

// TestPersonalRecordsFirstWorkout verifies that the first completed workout
// for an exercise sets records against a zero baseline.
func TestPersonalRecordsFirstWorkout(t *testing.T) {
	bench := uuid.New()
	w := models.Workout{
		Status: models.StatusCompleted,
		Date:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Exercises: []models.ExerciseEntry{
			entryWithSets(bench, models.Set{Reps: 5, Weight: 80}),
		},
	}

	records := PersonalRecords(nil, w)
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3 (max weight, set volume, 1RM)", len(records))
	}
	for _, r := range records {
		if r.PreviousValue != 0 {
			t.Errorf("%s previous = %f, want 0", r.Metric, r.PreviousValue)
		}
		if r.ExerciseID != bench {
			t.Errorf("%s exercise = %v, want %v", r.Metric, r.ExerciseID, bench)
		}
	}
}

// TestPersonalRecordsLighterSession verifies that a session below all prior
// bests yields no records.
func TestPersonalRecordsLighterSession(t *testing.T) {
	bench := uuid.New()
	history := []models.Workout{{
		Status:    models.StatusCompleted,
		Exercises: []models.ExerciseEntry{entryWithSets(bench, models.Set{Reps: 5, Weight: 100})},
	}}
	w := models.Workout{
		Status:    models.StatusCompleted,
		Exercises: []models.ExerciseEntry{entryWithSets(bench, models.Set{Reps: 5, Weight: 80})},
	}

	if records := PersonalRecords(history, w); len(records) != 0 {
		t.Errorf("records = %+v, want none", records)
	}
}

// TestPersonalRecordsMixedMetrics verifies that a higher-rep lighter set can
// break the volume and 1RM records without touching max weight.
func TestPersonalRecordsMixedMetrics(t *testing.T) {
	bench := uuid.New()
	history := []models.Workout{{
		Status:    models.StatusCompleted,
		Exercises: []models.ExerciseEntry{entryWithSets(bench, models.Set{Reps: 1, Weight: 100})},
	}}
	// 12x90: volume 1080 > 100, Epley 1RM 126 > 103.3, max weight 90 < 100.
	w := models.Workout{
		Status:    models.StatusCompleted,
		Exercises: []models.ExerciseEntry{entryWithSets(bench, models.Set{Reps: 12, Weight: 90})},
	}

	records := PersonalRecords(history, w)
	got := make(map[string]bool)
	for _, r := range records {
		got[r.Metric] = true
	}
	if got[MetricMaxWeight] {
		t.Error("max_weight record set despite lighter top set")
	}
	if !got[MetricMaxSetVolume] || !got[MetricEstimated1RM] {
		t.Errorf("records = %+v, want set volume and 1RM records", records)
	}
}

// TestPersonalRecordsIgnoresNonCompletedHistory verifies that planned or
// skipped history does not raise the baseline.
func TestPersonalRecordsIgnoresNonCompletedHistory(t *testing.T) {
	bench := uuid.New()
	history := []models.Workout{{
		Status:    models.StatusPlanned,
		Exercises: []models.ExerciseEntry{entryWithSets(bench, models.Set{Reps: 5, Weight: 200})},
	}}
	w := models.Workout{
		Status:    models.StatusCompleted,
		Exercises: []models.ExerciseEntry{entryWithSets(bench, models.Set{Reps: 5, Weight: 80})},
	}

	records := PersonalRecords(history, w)
	if len(records) != 3 {
		t.Errorf("len(records) = %d, want 3 against zero baseline", len(records))
	}
}

// TestPersonalRecordsBodyweightOnly verifies that all-zero weights produce no
// zero-valued records.
func TestPersonalRecordsBodyweightOnly(t *testing.T) {
	pullup := uuid.New()
	w := models.Workout{
		Status:    models.StatusCompleted,
		Exercises: []models.ExerciseEntry{entryWithSets(pullup, models.Set{Reps: 10, Weight: 0})},
	}
	if records := PersonalRecords(nil, w); len(records) != 0 {
		t.Errorf("records = %+v, want none for zero-weight sets", records)
	}
}
