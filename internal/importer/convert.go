package importer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// ExportFile is the top-level shape of a workout export: either a single
// workout object or a {"workouts": [...]} envelope. ParseExport accepts both.
type ExportFile struct {
	Workouts []ExportWorkout `json:"workouts"`
}

// ExportWorkout is one workout as written by the app's JSON export.
type ExportWorkout struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	Status      string           `json:"status"`
	DurationMin *int             `json:"duration_min"`
	Rating      *int             `json:"rating"`
	Notes       string           `json:"notes"`
	Exercises   []ExportExercise `json:"exercises"`
}

// ExportExercise references a catalog exercise by name rather than ID, since
// IDs differ between installations.
type ExportExercise struct {
	Exercise string      `json:"exercise"`
	Order    int         `json:"order"`
	Notes    string      `json:"notes"`
	Sets     []ExportSet `json:"sets"`
}

type ExportSet struct {
	Reps        int      `json:"reps"`
	Weight      float64  `json:"weight"`
	DurationSec *float64 `json:"duration_sec"`
	RestTimeSec *float64 `json:"rest_time_sec"`
	RPE         *int     `json:"rpe"`
	Notes       string   `json:"notes"`
	Completed   bool     `json:"completed"`
}

// ParseExport decodes an export file. A bare workout object is treated as a
// one-element export.
func ParseExport(data []byte) ([]ExportWorkout, error) {
	var file ExportFile
	if err := json.Unmarshal(data, &file); err == nil && len(file.Workouts) > 0 {
		return file.Workouts, nil
	}

	var single ExportWorkout
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}
	if single.Name == "" {
		return nil, fmt.Errorf("parsing export: no workouts found")
	}
	return []ExportWorkout{single}, nil
}

// Validate checks an export workout before any API calls are made for it, so
// a bad record fails whole rather than half-imported.
func (w ExportWorkout) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("workout name is required")
	}
	if w.Date != "" {
		if _, err := parseExportDate(w.Date); err != nil {
			return fmt.Errorf("invalid date %q: %w", w.Date, err)
		}
	}
	if w.Status != "" && !models.Status(w.Status).Valid() {
		return fmt.Errorf("unknown status %q", w.Status)
	}
	if w.Rating != nil && (*w.Rating < 1 || *w.Rating > 5) {
		return fmt.Errorf("rating %d out of range", *w.Rating)
	}
	for i, e := range w.Exercises {
		if e.Exercise == "" {
			return fmt.Errorf("exercise %d: name is required", i)
		}
		for j, s := range e.Sets {
			if s.Reps < 0 {
				return fmt.Errorf("exercise %d set %d: negative reps", i, j)
			}
			if s.Weight < 0 {
				return fmt.Errorf("exercise %d set %d: negative weight", i, j)
			}
		}
	}
	return nil
}

// Set converts an export set to the API model.
func (s ExportSet) Set() models.Set {
	return models.Set{
		Reps:        s.Reps,
		Weight:      s.Weight,
		DurationSec: s.DurationSec,
		RestTimeSec: s.RestTimeSec,
		RPE:         s.RPE,
		Notes:       s.Notes,
		Completed:   s.Completed,
	}
}

func parseExportDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
