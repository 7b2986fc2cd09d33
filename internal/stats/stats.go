// Package stats summarizes a user's workout history. All computations are
// pure over already-loaded workouts; storage supplies the rows. Sparse input
// (a brand-new user, weeks without training) degrades to zeros and undefined
// averages, never to errors.
package stats

import (
	"time"

	"github.com/claude/liftlog/internal/models"
)

// Range restricts aggregation to workouts dated within [Start, End],
// inclusive on both ends. Nil bounds are open.
type Range struct {
	Start *time.Time
	End   *time.Time
}

func (r Range) contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// Summary holds cross-workout aggregates. Averages are nil when no workout in
// the filtered set defines the underlying field; a workout without a rating
// is excluded from the rating mean's denominator rather than counted as zero.
type Summary struct {
	TotalWorkouts  int      `json:"total_workouts"`
	TotalExercises int      `json:"total_exercises"`
	TotalSets      int      `json:"total_sets"`
	TotalReps      int      `json:"total_reps"`
	TotalWeight    float64  `json:"total_weight"`
	TotalVolume    float64  `json:"total_volume"`
	AvgDurationMin *float64 `json:"avg_duration_min,omitempty"`
	AvgRating      *float64 `json:"avg_rating,omitempty"`
}

// Aggregate summarizes completed workouts within the range. Planned, skipped,
// and in-progress workouts never count toward historical stats. An empty
// filtered set yields the zero Summary with undefined averages.
func Aggregate(workouts []models.Workout, r Range) Summary {
	var s Summary
	var durationSum, ratingSum float64
	var durationN, ratingN int

	for _, w := range workouts {
		if w.Status != models.StatusCompleted || !r.contains(w.Date) {
			continue
		}
		s.TotalWorkouts++
		s.TotalExercises += w.TotalExercises
		s.TotalSets += w.TotalSets
		s.TotalReps += w.TotalReps
		s.TotalWeight += w.TotalWeight
		s.TotalVolume += w.TotalVolume

		if w.DurationMin != nil {
			durationSum += float64(*w.DurationMin)
			durationN++
		}
		if w.Rating != nil {
			ratingSum += float64(*w.Rating)
			ratingN++
		}
	}

	if durationN > 0 {
		avg := durationSum / float64(durationN)
		s.AvgDurationMin = &avg
	}
	if ratingN > 0 {
		avg := ratingSum / float64(ratingN)
		s.AvgRating = &avg
	}
	return s
}

// WeekBucket is the workout count for one calendar week.
type WeekBucket struct {
	WeekStart time.Time `json:"week_start"`
	Count     int       `json:"count"`
}

// WeeklyBuckets partitions completed workouts into weekCount trailing
// calendar weeks ending with the week containing now. Weeks start on Sunday
// and buckets are returned oldest first; weeks without workouts appear with
// count 0 rather than being omitted.
func WeeklyBuckets(workouts []models.Workout, weekCount int, now time.Time) []WeekBucket {
	if weekCount <= 0 {
		return nil
	}

	currentWeek := startOfWeek(now)
	buckets := make([]WeekBucket, weekCount)
	for i := range buckets {
		buckets[i].WeekStart = currentWeek.AddDate(0, 0, -7*(weekCount-1-i))
	}

	for _, w := range workouts {
		if w.Status != models.StatusCompleted {
			continue
		}
		week := startOfWeek(w.Date)
		for i := range buckets {
			if buckets[i].WeekStart.Equal(week) {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

// startOfWeek truncates t to midnight of its week's Sunday, in t's location.
func startOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// CategoryCount is the number of exercise entries seen for one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryDistribution tallies exercise-category occurrence across all
// entries of completed workouts. categoryOf resolves a catalog exercise to
// its category; entries it cannot resolve are skipped. Output is in
// first-seen order, which keeps chart colors stable across refreshes.
func CategoryDistribution(workouts []models.Workout, categoryOf func(models.ExerciseEntry) (string, bool)) []CategoryCount {
	counts := make(map[string]int)
	var order []string

	for _, w := range workouts {
		if w.Status != models.StatusCompleted {
			continue
		}
		for _, e := range w.Exercises {
			cat, ok := categoryOf(e)
			if !ok {
				continue
			}
			if _, seen := counts[cat]; !seen {
				order = append(order, cat)
			}
			counts[cat]++
		}
	}

	result := make([]CategoryCount, 0, len(order))
	for _, cat := range order {
		result = append(result, CategoryCount{Category: cat, Count: counts[cat]})
	}
	return result
}
