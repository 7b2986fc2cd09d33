package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/stats"
	"github.com/claude/liftlog/internal/storage"
	"github.com/google/uuid"
)

// loadCompleted fetches the user's completed workouts, optionally narrowed by
// start/end query parameters. The date range is applied in SQL; the stats
// package re-checks it, which makes the in-memory aggregation self-contained.
func (s *Server) loadCompleted(r *http.Request) ([]models.Workout, stats.Range, error) {
	var rng stats.Range
	f := storage.WorkoutFilter{Status: models.StatusCompleted}

	if v := r.URL.Query().Get("start"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, rng, err
		}
		f.StartDate = &t
		rng.Start = &t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, rng, err
		}
		f.EndDate = &t
		rng.End = &t
	}

	workouts, err := s.db.ListWorkouts(r.Context(), userID(r), f)
	if err != nil {
		return nil, rng, err
	}
	return workouts, rng, nil
}

func (s *Server) handleWorkoutStats(w http.ResponseWriter, r *http.Request) {
	workouts, rng, err := s.loadCompleted(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats.Aggregate(workouts, rng))
}

func (s *Server) handleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	weeks := 8
	if v := r.URL.Query().Get("weeks"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 52 {
			badRequest(w, "weeks must be between 1 and 52")
			return
		}
		weeks = n
	}

	workouts, _, err := s.loadCompleted(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats.WeeklyBuckets(workouts, weeks, time.Now()))
}

func (s *Server) handleCategoryStats(w http.ResponseWriter, r *http.Request) {
	workouts, _, err := s.loadCompleted(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	// Resolve each referenced exercise to its catalog category in one query.
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, wk := range workouts {
		for _, e := range wk.Exercises {
			if !seen[e.ExerciseID] {
				seen[e.ExerciseID] = true
				ids = append(ids, e.ExerciseID)
			}
		}
	}
	categories, err := s.db.ExerciseCategories(r.Context(), ids)
	if err != nil {
		s.writeError(w, err)
		return
	}

	dist := stats.CategoryDistribution(workouts, func(e models.ExerciseEntry) (string, bool) {
		cat, ok := categories[e.ExerciseID]
		return cat, ok
	})
	writeJSON(w, http.StatusOK, dist)
}

// handlePersonalRecords reports the records set by the user's most recent
// completed workout, judged against everything completed before it.
func (s *Server) handlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	workouts, _, err := s.loadCompleted(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(workouts) == 0 {
		writeJSON(w, http.StatusOK, []models.PersonalRecord{})
		return
	}

	// ListWorkouts returns newest first.
	latest := workouts[0]
	history := workouts[1:]
	records := stats.PersonalRecords(history, latest)
	if records == nil {
		records = []models.PersonalRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleDataStats(w http.ResponseWriter, r *http.Request) {
	ds, err := s.db.GetDataStats(r.Context(), userID(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}
