package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/auth"
	"github.com/claude/liftlog/internal/body"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/google/uuid"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" {
		badRequest(w, "name and email are required")
		return
	}
	if len(req.Password) < 8 {
		badRequest(w, "password must be at least 8 characters")
		return
	}

	if _, err := s.db.GetUserByEmail(r.Context(), req.Email); err == nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "email already registered"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.writeError(w, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		LastLogin:    now,
	}
	if err := s.db.CreateUser(r.Context(), u); err != nil {
		s.writeError(w, err)
		return
	}

	sess, err := s.auth.IssueFor(r.Context(), u.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"token": sess.Token,
		"user":  u,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	sess, user, err := s.auth.Login(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": sess.Token,
		"user":  user,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := s.auth.Logout(r.Context(), token); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := s.db.GetUser(r.Context(), userID(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type profileUpdateRequest struct {
	Name              *string  `json:"name"`
	HeightCm          *float64 `json:"height_cm"`
	AgeYears          *int     `json:"age_years"`
	WeeklyWorkoutGoal *int     `json:"weekly_workout_goal"`
	FitnessLevel      *string  `json:"fitness_level"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	u, err := s.db.GetUser(r.Context(), userID(r))
	if err != nil {
		s.writeError(w, err)
		return
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.HeightCm != nil {
		if *req.HeightCm <= 0 {
			badRequest(w, "height_cm must be positive")
			return
		}
		u.HeightCm = req.HeightCm
	}
	if req.AgeYears != nil {
		u.AgeYears = req.AgeYears
	}
	if req.WeeklyWorkoutGoal != nil {
		u.WeeklyWorkoutGoal = *req.WeeklyWorkoutGoal
	}
	if req.FitnessLevel != nil {
		u.FitnessLevel = *req.FitnessLevel
	}

	if err := s.db.UpdateUserProfile(r.Context(), *u); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type weightRequest struct {
	WeightKg float64 `json:"weight_kg"`
	Date     string  `json:"date"`
}

func (s *Server) handleAddWeight(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	if req.WeightKg <= 0 {
		badRequest(w, "weight_kg must be positive")
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

	entry := models.WeightEntry{WeightKg: req.WeightKg, Date: date}
	if err := s.db.AddWeightEntry(r.Context(), userID(r), entry); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// handleBMI computes the body mass index from the profile height and the most
// recent logged weight. Both must be on file; otherwise the result would be
// meaningless rather than approximately right.
func (s *Server) handleBMI(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	u, err := s.db.GetUser(r.Context(), uid)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if u.HeightCm == nil {
		badRequest(w, "height not set on profile")
		return
	}

	entry, err := s.db.LatestWeight(r.Context(), uid)
	if errors.Is(err, storage.ErrNotFound) {
		badRequest(w, "no weight entries logged")
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	bmi, ok := body.BMI(entry.WeightKg, *u.HeightCm)
	if !ok {
		badRequest(w, "height and weight must be positive")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bmi":        bmi,
		"category":   body.Category(bmi),
		"weight_kg":  entry.WeightKg,
		"height_cm":  *u.HeightCm,
		"weighed_at": entry.Date,
	})
}
