package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/stats"
	"github.com/claude/liftlog/internal/storage"
	"github.com/claude/liftlog/internal/workout"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type createWorkoutRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Notes       string `json:"notes"`
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req createWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	if req.Name == "" {
		badRequest(w, "name is required")
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			badRequest(w, "invalid date: "+err.Error())
			return
		}
		date = d
	}

	wk := workout.New(userID(r), req.Name, date)
	wk.Description = req.Description
	wk.Notes = req.Notes

	if err := s.db.InsertWorkout(r.Context(), *wk); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wk)
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	f, err := parseWorkoutFilter(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	workouts, err := s.db.ListWorkouts(r.Context(), userID(r), f)
	if err != nil {
		s.writeError(w, err)
		return
	}
	total, err := s.db.CountWorkouts(r.Context(), userID(r), f)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"workouts": workouts,
		"total":    total,
	})
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	wk, ok := s.loadWorkout(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

type updateWorkoutRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Notes       *string `json:"notes"`
	Rating      *int    `json:"rating"`
	DurationMin *int    `json:"duration_min"`
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	wk, ok := s.loadWorkout(w, r)
	if !ok {
		return
	}

	var req updateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			badRequest(w, "name must not be empty")
			return
		}
		wk.Name = *req.Name
	}
	if req.Description != nil {
		wk.Description = *req.Description
	}
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			badRequest(w, "invalid date: "+err.Error())
			return
		}
		wk.Date = d
	}
	if req.Notes != nil {
		wk.Notes = *req.Notes
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			badRequest(w, "rating must be between 1 and 5")
			return
		}
		wk.Rating = req.Rating
	}
	if req.DurationMin != nil {
		if *req.DurationMin < 0 {
			badRequest(w, "duration_min must not be negative")
			return
		}
		wk.DurationMin = req.DurationMin
	}

	workout.Recompute(wk)
	if err := s.db.UpdateWorkout(r.Context(), *wk); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid workout ID")
		return
	}
	if err := s.db.DeleteWorkout(r.Context(), id, userID(r)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addExerciseRequest struct {
	ExerciseID uuid.UUID `json:"exercise_id"`
	Order      int       `json:"order"`
	Notes      string    `json:"notes"`
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	wk, ok := s.loadWorkout(w, r)
	if !ok {
		return
	}

	var req addExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	// The exercise must exist in the catalog before it can be logged.
	if _, err := s.db.GetExercise(r.Context(), req.ExerciseID); err != nil {
		s.writeError(w, err)
		return
	}

	if err := workout.AddExercise(wk, req.ExerciseID, req.Order); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Notes != "" {
		wk.Exercises[len(wk.Exercises)-1].Notes = req.Notes
	}

	if err := s.db.UpdateWorkout(r.Context(), *wk); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wk)
}

func (s *Server) handleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	wk, ok := s.loadWorkout(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		badRequest(w, "invalid exercise index")
		return
	}

	if err := workout.RemoveExercise(wk, index); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.db.UpdateWorkout(r.Context(), *wk); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

func (s *Server) handleAddSet(w http.ResponseWriter, r *http.Request) {
	wk, ok := s.loadWorkout(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		badRequest(w, "invalid exercise index")
		return
	}

	var set models.Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	if err := workout.AddSet(wk, index, set); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.db.UpdateWorkout(r.Context(), *wk); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wk)
}

func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	wk, ok := s.loadWorkout(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		badRequest(w, "invalid exercise index")
		return
	}
	setIndex, err := strconv.Atoi(chi.URLParam(r, "setIndex"))
	if err != nil {
		badRequest(w, "invalid set index")
		return
	}

	var set models.Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	if err := workout.UpdateSet(wk, index, setIndex, set); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.db.UpdateWorkout(r.Context(), *wk); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

func (s *Server) handleRemoveSet(w http.ResponseWriter, r *http.Request) {
	wk, ok := s.loadWorkout(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		badRequest(w, "invalid exercise index")
		return
	}
	setIndex, err := strconv.Atoi(chi.URLParam(r, "setIndex"))
	if err != nil {
		badRequest(w, "invalid set index")
		return
	}

	if err := workout.RemoveSet(wk, index, setIndex); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.db.UpdateWorkout(r.Context(), *wk); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

func (s *Server) handleStartWorkout(w http.ResponseWriter, r *http.Request) {
	wk, ok := s.loadWorkout(w, r)
	if !ok {
		return
	}
	if err := workout.Start(wk, time.Now()); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.db.UpdateWorkout(r.Context(), *wk); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

// handleCompleteWorkout finishes the workout and reports any personal records
// it set, judged against the user's prior completed history.
func (s *Server) handleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	wk, ok := s.loadWorkout(w, r)
	if !ok {
		return
	}

	history, err := s.db.ListWorkouts(r.Context(), userID(r), storage.WorkoutFilter{
		Status: models.StatusCompleted,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := workout.Complete(wk, time.Now()); err != nil {
		s.writeError(w, err)
		return
	}
	records := stats.PersonalRecords(history, *wk)

	if err := s.db.UpdateWorkout(r.Context(), *wk); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"workout":          wk,
		"personal_records": records,
	})
}

func (s *Server) handleSkipWorkout(w http.ResponseWriter, r *http.Request) {
	wk, ok := s.loadWorkout(w, r)
	if !ok {
		return
	}
	if err := workout.Skip(wk); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.db.UpdateWorkout(r.Context(), *wk); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

// loadWorkout fetches the workout in the URL, scoped to the authenticated
// user. On failure it writes the response and returns ok=false.
func (s *Server) loadWorkout(w http.ResponseWriter, r *http.Request) (*models.Workout, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid workout ID")
		return nil, false
	}
	wk, err := s.db.GetWorkout(r.Context(), id, userID(r))
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return wk, true
}

func parseWorkoutFilter(r *http.Request) (storage.WorkoutFilter, error) {
	var f storage.WorkoutFilter
	q := r.URL.Query()

	if v := q.Get("status"); v != "" {
		st := models.Status(v)
		if !st.Valid() {
			return f, &workout.ValidationError{Field: "status", Reason: "unknown status " + v}
		}
		f.Status = st
	}
	if v := q.Get("start"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return f, &workout.ValidationError{Field: "start", Reason: err.Error()}
		}
		f.StartDate = &t
	}
	if v := q.Get("end"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return f, &workout.ValidationError{Field: "end", Reason: err.Error()}
		}
		f.EndDate = &t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, &workout.ValidationError{Field: "limit", Reason: "must be a non-negative integer"}
		}
		f.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, &workout.ValidationError{Field: "offset", Reason: "must be a non-negative integer"}
		}
		f.Offset = n
	}
	return f, nil
}
