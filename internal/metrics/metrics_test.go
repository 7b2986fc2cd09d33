package metrics

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// TestForSetsBasic verifies the core volume identity: total volume is the
// exact sum of reps*weight per set, with no intermediate rounding.
func TestForSetsBasic(t *testing.T) {
	sets := []models.Set{
		{Reps: 10, Weight: 50},
		{Reps: 8, Weight: 60},
		{Reps: 6, Weight: 70},
	}
	m := ForSets(sets)

	if m.TotalReps != 24 {
		t.Errorf("TotalReps = %d, want 24", m.TotalReps)
	}
	if m.TotalWeight != 180 {
		t.Errorf("TotalWeight = %f, want 180", m.TotalWeight)
	}
	if m.TotalVolume != 10*50+8*60+6*70 {
		t.Errorf("TotalVolume = %f, want %d", m.TotalVolume, 10*50+8*60+6*70)
	}
	if m.MaxWeight != 70 {
		t.Errorf("MaxWeight = %f, want 70", m.MaxWeight)
	}
}

// TestForSetsEmpty verifies the empty-list contract: all zeros, MaxWeight 0
// rather than -Inf or a panic.
func TestForSetsEmpty(t *testing.T) {
	m := ForSets(nil)
	if m != (ExerciseMetrics{}) {
		t.Errorf("ForSets(nil) = %+v, want zero value", m)
	}
}

// TestForSetsZeroWeight verifies bodyweight-style sets: reps count toward
// totals but volume and max weight stay zero.
func TestForSetsZeroWeight(t *testing.T) {
	m := ForSets([]models.Set{{Reps: 8, Weight: 0}})
	if m.TotalReps != 8 {
		t.Errorf("TotalReps = %d, want 8", m.TotalReps)
	}
	if m.TotalVolume != 0 || m.MaxWeight != 0 {
		t.Errorf("volume/max = %f/%f, want 0/0", m.TotalVolume, m.MaxWeight)
	}
}

// TestForWorkoutScenario is the reference two-entry scenario: one weighted
// entry and one bodyweight entry roll up into the documented workout totals.
func TestForWorkoutScenario(t *testing.T) {
	entries := []models.ExerciseEntry{
		{Sets: []models.Set{{Reps: 10, Weight: 50}}},
		{Sets: []models.Set{{Reps: 8, Weight: 0}}},
	}
	for i := range entries {
		em := ForSets(entries[i].Sets)
		entries[i].TotalReps = em.TotalReps
		entries[i].TotalWeight = em.TotalWeight
		entries[i].TotalVolume = em.TotalVolume
		entries[i].MaxWeight = em.MaxWeight
	}

	if entries[0].TotalVolume != 500 || entries[0].MaxWeight != 50 {
		t.Errorf("entry 0 = %+v, want volume=500 max=50", entries[0])
	}
	if entries[1].TotalVolume != 0 || entries[1].MaxWeight != 0 {
		t.Errorf("entry 1 = %+v, want volume=0 max=0", entries[1])
	}

	w := ForWorkout(entries)
	if w.TotalExercises != 2 {
		t.Errorf("TotalExercises = %d, want 2", w.TotalExercises)
	}
	if w.TotalSets != 2 {
		t.Errorf("TotalSets = %d, want 2", w.TotalSets)
	}
	if w.TotalReps != 18 {
		t.Errorf("TotalReps = %d, want 18", w.TotalReps)
	}
	if w.TotalVolume != 500 {
		t.Errorf("TotalVolume = %f, want 500", w.TotalVolume)
	}
}

// TestForWorkoutEmpty verifies that a workout with no entries aggregates to
// all zeros instead of failing.
func TestForWorkoutEmpty(t *testing.T) {
	if m := ForWorkout(nil); m != (WorkoutMetrics{}) {
		t.Errorf("ForWorkout(nil) = %+v, want zero value", m)
	}
}

// TestDuration verifies rounding to the nearest whole minute and the
// missing-timestamp contract.
func TestDuration(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  int
		ok    bool
	}{
		{"exact hour", &start, timePtr(start.Add(60 * time.Minute)), 60, true},
		{"rounds down", &start, timePtr(start.Add(45*time.Minute + 20*time.Second)), 45, true},
		{"rounds up", &start, timePtr(start.Add(45*time.Minute + 40*time.Second)), 46, true},
		{"missing end", &start, nil, 0, false},
		{"missing start", nil, timePtr(start), 0, false},
		{"both missing", nil, nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Duration(tt.start, tt.end)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Duration() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

// TestEpley1RM verifies the estimation formula and its zero-reps guard.
func TestEpley1RM(t *testing.T) {
	if got := Epley1RM(100, 0); got != 0 {
		t.Errorf("Epley1RM(100, 0) = %f, want 0", got)
	}
	if got := Epley1RM(100, 1); got != 100+100.0/30 {
		t.Errorf("Epley1RM(100, 1) = %f", got)
	}
	// 10 reps at 100kg estimates 133.3kg.
	if got := Epley1RM(100, 10); got < 133.3 || got > 133.4 {
		t.Errorf("Epley1RM(100, 10) = %f, want ~133.33", got)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
