package importer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// Stats tracks import progress.
type Stats struct {
	FilesTotal    int
	FilesImported int
	FilesSkipped  int
	FilesErrored  int

	WorkoutsCreated  int
	ExercisesLinked  int
	SetsCreated      int
	UnknownExercises []string
}

// Importer walks a directory of workout export files and replays them against
// the LiftLog API: create the workout, attach exercises and sets, then move it
// to its exported status. The server recomputes all derived totals, so an
// import can never disagree with live data.
type Importer struct {
	client *Client
	state  *StateDB
	dir    string
	dryRun bool
	log    *slog.Logger
	stats  Stats

	exerciseIndex map[string]uuid.UUID
	unknownSeen   map[string]bool
}

// New creates a new Importer reading export files from dir.
func New(client *Client, state *StateDB, dir string, dryRun bool, log *slog.Logger) *Importer {
	return &Importer{
		client:      client,
		state:       state,
		dir:         dir,
		dryRun:      dryRun,
		log:         log,
		unknownSeen: map[string]bool{},
	}
}

// Run executes the import pipeline.
func (im *Importer) Run() (*Stats, error) {
	if !im.dryRun {
		index, err := im.client.FetchExerciseIndex()
		if err != nil {
			return &im.stats, fmt.Errorf("fetching exercise catalog: %w", err)
		}
		im.exerciseIndex = index
		im.log.Info("fetched exercise catalog", "exercises", len(index))
	}

	files, err := filepath.Glob(filepath.Join(im.dir, "*.json"))
	if err != nil {
		return &im.stats, fmt.Errorf("listing export files: %w", err)
	}

	for _, f := range files {
		im.stats.FilesTotal++
		if err := im.processFile(f); err != nil {
			im.log.Warn("import failed", "file", f, "error", err)
			im.stats.FilesErrored++
		}
	}

	return &im.stats, nil
}

// processFile imports a single export file, skipping it when the state DB
// already has it with the same size and hash.
func (im *Importer) processFile(path string) error {
	relPath, _ := filepath.Rel(im.dir, path)
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	hash, err := HashFile(path)
	if err != nil {
		return fmt.Errorf("hashing: %w", err)
	}

	imported, err := im.state.IsImported(relPath, info.Size(), hash)
	if err != nil {
		return fmt.Errorf("state check: %w", err)
	}
	if imported {
		im.stats.FilesSkipped++
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}
	workouts, err := ParseExport(data)
	if err != nil {
		return err
	}
	for _, w := range workouts {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("workout %q: %w", w.Name, err)
		}
	}

	for _, w := range workouts {
		if im.dryRun {
			im.log.Info("dry-run: would import workout",
				"name", w.Name, "exercises", len(w.Exercises))
			continue
		}
		if err := im.importWorkout(w); err != nil {
			return fmt.Errorf("workout %q: %w", w.Name, err)
		}
	}

	if !im.dryRun {
		if err := im.state.MarkImported(relPath, info.Size(), hash); err != nil {
			im.log.Warn("failed to mark imported", "file", relPath, "error", err)
		}
	}
	im.stats.FilesImported++

	im.log.Info("imported file", "file", relPath, "workouts", len(workouts))
	return nil
}

func (im *Importer) importWorkout(w ExportWorkout) error {
	var created models.Workout
	err := im.client.Post("/api/v1/workouts", map[string]any{
		"name":        w.Name,
		"description": w.Description,
		"date":        w.Date,
		"notes":       w.Notes,
	}, &created)
	if err != nil {
		return fmt.Errorf("creating: %w", err)
	}
	im.stats.WorkoutsCreated++
	base := "/api/v1/workouts/" + created.ID.String()

	// linked counts entries actually attached; unknown exercises are skipped,
	// so it is the server-side index of the next entry.
	linked := 0
	for _, e := range w.Exercises {
		exerciseID, ok := im.exerciseIndex[strings.ToLower(e.Exercise)]
		if !ok {
			if !im.unknownSeen[e.Exercise] {
				im.unknownSeen[e.Exercise] = true
				im.stats.UnknownExercises = append(im.stats.UnknownExercises, e.Exercise)
			}
			im.log.Warn("unknown exercise, skipping entry",
				"workout", w.Name, "exercise", e.Exercise)
			continue
		}

		err := im.client.Post(base+"/exercises", map[string]any{
			"exercise_id": exerciseID,
			"order":       e.Order,
			"notes":       e.Notes,
		}, nil)
		if err != nil {
			return fmt.Errorf("adding exercise %q: %w", e.Exercise, err)
		}
		im.stats.ExercisesLinked++

		setsPath := fmt.Sprintf("%s/exercises/%d/sets", base, linked)
		for _, s := range e.Sets {
			if err := im.client.Post(setsPath, s.Set(), nil); err != nil {
				return fmt.Errorf("adding set to %q: %w", e.Exercise, err)
			}
			im.stats.SetsCreated++
		}
		linked++
	}

	if w.Rating != nil || w.DurationMin != nil {
		patch := map[string]any{}
		if w.Rating != nil {
			patch["rating"] = *w.Rating
		}
		if w.DurationMin != nil {
			patch["duration_min"] = *w.DurationMin
		}
		if err := im.client.Put(base, patch, nil); err != nil {
			return fmt.Errorf("setting rating/duration: %w", err)
		}
	}

	switch models.Status(w.Status) {
	case models.StatusCompleted:
		if err := im.client.Post(base+"/complete", nil, nil); err != nil {
			return fmt.Errorf("completing: %w", err)
		}
	case models.StatusSkipped:
		if err := im.client.Post(base+"/skip", nil, nil); err != nil {
			return fmt.Errorf("skipping: %w", err)
		}
	}

	return nil
}
