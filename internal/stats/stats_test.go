package stats

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

func completedWorkout(date time.Time, volume float64, sets int) models.Workout {
	return models.Workout{
		Status:      models.StatusCompleted,
		Date:        date,
		TotalVolume: volume,
		TotalSets:   sets,
	}
}

// TestAggregateEmpty verifies the steady state for a new user: all sums zero
// and averages undefined, never NaN or an error.
func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil, Range{})
	if s.TotalWorkouts != 0 || s.TotalVolume != 0 {
		t.Errorf("Aggregate(nil) = %+v, want zeros", s)
	}
	if s.AvgDurationMin != nil || s.AvgRating != nil {
		t.Errorf("averages = %v/%v, want nil/nil", s.AvgDurationMin, s.AvgRating)
	}
}

// TestAggregateScenario is the reference scenario: three completed workouts
// with volumes 1000, 1500, and 0 sum to 2500 across 3 workouts.
func TestAggregateScenario(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		completedWorkout(date, 1000, 5),
		completedWorkout(date.AddDate(0, 0, 1), 1500, 6),
		completedWorkout(date.AddDate(0, 0, 2), 0, 0), // no sets logged
	}

	s := Aggregate(workouts, Range{})
	if s.TotalWorkouts != 3 {
		t.Errorf("TotalWorkouts = %d, want 3", s.TotalWorkouts)
	}
	if s.TotalVolume != 2500 {
		t.Errorf("TotalVolume = %f, want 2500", s.TotalVolume)
	}
	if s.TotalSets != 11 {
		t.Errorf("TotalSets = %d, want 11", s.TotalSets)
	}
}

// TestAggregateExcludesNonCompleted verifies the explicit policy that planned,
// in-progress, and skipped workouts never count toward historical stats.
func TestAggregateExcludesNonCompleted(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		completedWorkout(date, 1000, 5),
		{Status: models.StatusPlanned, Date: date, TotalVolume: 900},
		{Status: models.StatusInProgress, Date: date, TotalVolume: 800},
		{Status: models.StatusSkipped, Date: date, TotalVolume: 700},
	}

	s := Aggregate(workouts, Range{})
	if s.TotalWorkouts != 1 {
		t.Errorf("TotalWorkouts = %d, want 1", s.TotalWorkouts)
	}
	if s.TotalVolume != 1000 {
		t.Errorf("TotalVolume = %f, want 1000", s.TotalVolume)
	}
}

// TestAggregateDateRange verifies inclusive range bounds on both ends.
func TestAggregateDateRange(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	workouts := []models.Workout{
		completedWorkout(day(1), 100, 1),
		completedWorkout(day(5), 200, 1),
		completedWorkout(day(10), 400, 1),
	}

	start, end := day(1), day(5)
	s := Aggregate(workouts, Range{Start: &start, End: &end})
	if s.TotalWorkouts != 2 || s.TotalVolume != 300 {
		t.Errorf("ranged Aggregate = %d workouts / %f volume, want 2 / 300", s.TotalWorkouts, s.TotalVolume)
	}
}

// TestAggregateSparseAverages verifies that workouts missing duration or
// rating are excluded from that mean's denominator, not treated as zero.
func TestAggregateSparseAverages(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	d1, d2 := 40, 60
	r1 := 4

	w1 := completedWorkout(date, 100, 1)
	w1.DurationMin, w1.Rating = &d1, &r1
	w2 := completedWorkout(date, 100, 1)
	w2.DurationMin = &d2
	w3 := completedWorkout(date, 100, 1) // neither field

	s := Aggregate([]models.Workout{w1, w2, w3}, Range{})
	if s.AvgDurationMin == nil || *s.AvgDurationMin != 50 {
		t.Errorf("AvgDurationMin = %v, want 50 (mean of 40, 60)", s.AvgDurationMin)
	}
	if s.AvgRating == nil || *s.AvgRating != 4 {
		t.Errorf("AvgRating = %v, want 4 (single rated workout)", s.AvgRating)
	}
}

// TestWeeklyBuckets verifies trailing Sunday-start weeks, oldest first, with
// zero-workout weeks present rather than omitted.
func TestWeeklyBuckets(t *testing.T) {
	// Wednesday 2025-03-19; its week starts Sunday 2025-03-16.
	now := time.Date(2025, 3, 19, 15, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		completedWorkout(time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC), 100, 1),  // current week
		completedWorkout(time.Date(2025, 3, 18, 9, 0, 0, 0, time.UTC), 100, 1),  // current week
		completedWorkout(time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC), 100, 1),   // two weeks back
		{Status: models.StatusPlanned, Date: time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)},
	}

	buckets := WeeklyBuckets(workouts, 4, now)
	if len(buckets) != 4 {
		t.Fatalf("len(buckets) = %d, want 4", len(buckets))
	}

	wantStarts := []time.Time{
		time.Date(2025, 2, 23, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
	}
	wantCounts := []int{0, 1, 0, 2}
	for i, b := range buckets {
		if !b.WeekStart.Equal(wantStarts[i]) {
			t.Errorf("bucket %d start = %v, want %v", i, b.WeekStart, wantStarts[i])
		}
		if b.Count != wantCounts[i] {
			t.Errorf("bucket %d count = %d, want %d", i, b.Count, wantCounts[i])
		}
	}
}

// TestWeeklyBucketsSundayBoundary verifies that a workout dated exactly on a
// Sunday lands in the week that Sunday opens.
func TestWeeklyBucketsSundayBoundary(t *testing.T) {
	now := time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	buckets := WeeklyBuckets([]models.Workout{completedWorkout(sunday, 100, 1)}, 2, now)
	if buckets[1].Count != 1 {
		t.Errorf("sunday workout counted in bucket %+v, want current week", buckets)
	}
	if buckets[0].Count != 0 {
		t.Errorf("previous week count = %d, want 0", buckets[0].Count)
	}
}

// TestCategoryDistribution verifies counting across entries and first-seen
// output ordering.
func TestCategoryDistribution(t *testing.T) {
	bench, squat, run := uuid.New(), uuid.New(), uuid.New()
	categories := map[uuid.UUID]string{
		bench: models.CategoryChest,
		squat: models.CategoryLegs,
		run:   models.CategoryCardio,
	}
	categoryOf := func(e models.ExerciseEntry) (string, bool) {
		c, ok := categories[e.ExerciseID]
		return c, ok
	}

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		{
			Status: models.StatusCompleted, Date: date,
			Exercises: []models.ExerciseEntry{{ExerciseID: bench}, {ExerciseID: squat}},
		},
		{
			Status: models.StatusCompleted, Date: date,
			Exercises: []models.ExerciseEntry{{ExerciseID: bench}, {ExerciseID: run}, {ExerciseID: uuid.New()}},
		},
		{
			Status: models.StatusPlanned, Date: date,
			Exercises: []models.ExerciseEntry{{ExerciseID: squat}},
		},
	}

	dist := CategoryDistribution(workouts, categoryOf)
	want := []CategoryCount{
		{Category: models.CategoryChest, Count: 2},
		{Category: models.CategoryLegs, Count: 1},
		{Category: models.CategoryCardio, Count: 1},
	}
	if len(dist) != len(want) {
		t.Fatalf("len(dist) = %d, want %d (%+v)", len(dist), len(want), dist)
	}
	for i := range want {
		if dist[i] != want[i] {
			t.Errorf("dist[%d] = %+v, want %+v", i, dist[i], want[i])
		}
	}
}
