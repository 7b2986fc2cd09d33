package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.ExerciseFilter{
		Category:    q.Get("category"),
		Equipment:   q.Get("equipment"),
		Difficulty:  q.Get("difficulty"),
		MuscleGroup: q.Get("muscle_group"),
	}
	if f.Category != "" && !models.ValidCategory(f.Category) {
		badRequest(w, "unknown category "+f.Category)
		return
	}

	exercises, err := s.db.ListExercises(r.Context(), f, userID(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid exercise ID")
		return
	}
	e, err := s.db.GetExercise(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

type createExerciseRequest struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	MuscleGroups []string `json:"muscle_groups"`
	Equipment    string   `json:"equipment"`
	Difficulty   string   `json:"difficulty"`
	Description  string   `json:"description"`
	Instructions []string `json:"instructions"`
}

// handleCreateExercise adds a custom exercise to the catalog. Custom entries
// are visible only to their creator.
func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var req createExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	if req.Name == "" {
		badRequest(w, "name is required")
		return
	}
	if !models.ValidCategory(req.Category) {
		badRequest(w, "unknown category "+req.Category)
		return
	}

	uid := userID(r)
	e := models.Exercise{
		ID:           uuid.New(),
		Name:         req.Name,
		Category:     req.Category,
		MuscleGroups: req.MuscleGroups,
		Equipment:    req.Equipment,
		Difficulty:   req.Difficulty,
		Description:  req.Description,
		Instructions: req.Instructions,
		IsCustom:     true,
		CreatedBy:    &uid,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.db.InsertExercise(r.Context(), e); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}
