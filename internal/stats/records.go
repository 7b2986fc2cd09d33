package stats

import (
	"github.com/claude/liftlog/internal/metrics"
	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// Tracked personal-record metrics.
const (
	MetricMaxWeight    = "max_weight"
	MetricMaxSetVolume = "max_set_volume"
	MetricEstimated1RM = "estimated_1rm"
)

// exerciseBests holds the best observed value per tracked metric for one
// exercise.
type exerciseBests struct {
	maxWeight    float64
	maxSetVolume float64
	estimated1RM float64
}

// PersonalRecords returns the new bests the given workout sets against the
// user's prior completed history. History should not include the candidate
// workout itself. A first-ever non-zero value for an exercise counts as a
// record with PreviousValue 0.
func PersonalRecords(history []models.Workout, w models.Workout) []models.PersonalRecord {
	prior := make(map[uuid.UUID]exerciseBests)
	for _, h := range history {
		if h.Status != models.StatusCompleted {
			continue
		}
		for _, e := range h.Exercises {
			b := prior[e.ExerciseID]
			accumulateBests(&b, e.Sets)
			prior[e.ExerciseID] = b
		}
	}

	var records []models.PersonalRecord
	seen := make(map[uuid.UUID]bool)
	for _, e := range w.Exercises {
		// A workout can list the same exercise twice with distinct orders;
		// evaluate its sets together once.
		if seen[e.ExerciseID] {
			continue
		}
		seen[e.ExerciseID] = true

		var current exerciseBests
		for _, entry := range w.Exercises {
			if entry.ExerciseID == e.ExerciseID {
				accumulateBests(&current, entry.Sets)
			}
		}

		old := prior[e.ExerciseID]
		if current.maxWeight > old.maxWeight && current.maxWeight > 0 {
			records = append(records, models.PersonalRecord{
				ExerciseID:    e.ExerciseID,
				Metric:        MetricMaxWeight,
				Value:         current.maxWeight,
				PreviousValue: old.maxWeight,
				AchievedAt:    w.Date,
			})
		}
		if current.maxSetVolume > old.maxSetVolume && current.maxSetVolume > 0 {
			records = append(records, models.PersonalRecord{
				ExerciseID:    e.ExerciseID,
				Metric:        MetricMaxSetVolume,
				Value:         current.maxSetVolume,
				PreviousValue: old.maxSetVolume,
				AchievedAt:    w.Date,
			})
		}
		if current.estimated1RM > old.estimated1RM && current.estimated1RM > 0 {
			records = append(records, models.PersonalRecord{
				ExerciseID:    e.ExerciseID,
				Metric:        MetricEstimated1RM,
				Value:         current.estimated1RM,
				PreviousValue: old.estimated1RM,
				AchievedAt:    w.Date,
			})
		}
	}
	return records
}

func accumulateBests(b *exerciseBests, sets []models.Set) {
	for _, s := range sets {
		if s.Weight > b.maxWeight {
			b.maxWeight = s.Weight
		}
		if v := float64(s.Reps) * s.Weight; v > b.maxSetVolume {
			b.maxSetVolume = v
		}
		if rm := metrics.Epley1RM(s.Weight, s.Reps); rm > b.estimated1RM {
			b.estimated1RM = rm
		}
	}
}
