package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftlog/internal/auth"
	"github.com/claude/liftlog/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	auth   *auth.Service
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, authSvc *auth.Service, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		auth:   authSvc,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Account endpoints (no token required)
	s.router.Post("/api/v1/auth/register", s.handleRegister)
	s.router.Post("/api/v1/auth/login", s.handleLogin)

	// Everything else requires a bearer token
	s.router.Group(func(r chi.Router) {
		r.Use(RequireAuth(s.auth))

		r.Post("/api/v1/auth/logout", s.handleLogout)
		r.Get("/api/v1/auth/profile", s.handleGetProfile)
		r.Put("/api/v1/auth/profile", s.handleUpdateProfile)

		r.Get("/api/v1/profile/bmi", s.handleBMI)
		r.Post("/api/v1/profile/weight", s.handleAddWeight)

		r.Get("/api/v1/exercises", s.handleListExercises)
		r.Post("/api/v1/exercises", s.handleCreateExercise)
		r.Get("/api/v1/exercises/{id}", s.handleGetExercise)

		// Stats routes are registered before /{id} so "stats" is never
		// parsed as a workout ID.
		r.Get("/api/v1/workouts/stats", s.handleWorkoutStats)
		r.Get("/api/v1/workouts/stats/weekly", s.handleWeeklyStats)
		r.Get("/api/v1/workouts/stats/categories", s.handleCategoryStats)
		r.Get("/api/v1/workouts/stats/records", s.handlePersonalRecords)
		r.Get("/api/v1/workouts/stats/data", s.handleDataStats)

		r.Get("/api/v1/workouts", s.handleListWorkouts)
		r.Post("/api/v1/workouts", s.handleCreateWorkout)
		r.Get("/api/v1/workouts/{id}", s.handleGetWorkout)
		r.Put("/api/v1/workouts/{id}", s.handleUpdateWorkout)
		r.Delete("/api/v1/workouts/{id}", s.handleDeleteWorkout)

		r.Post("/api/v1/workouts/{id}/exercises", s.handleAddExercise)
		r.Delete("/api/v1/workouts/{id}/exercises/{index}", s.handleRemoveExercise)
		r.Post("/api/v1/workouts/{id}/exercises/{index}/sets", s.handleAddSet)
		r.Put("/api/v1/workouts/{id}/exercises/{index}/sets/{setIndex}", s.handleUpdateSet)
		r.Delete("/api/v1/workouts/{id}/exercises/{index}/sets/{setIndex}", s.handleRemoveSet)

		r.Post("/api/v1/workouts/{id}/start", s.handleStartWorkout)
		r.Post("/api/v1/workouts/{id}/complete", s.handleCompleteWorkout)
		r.Post("/api/v1/workouts/{id}/skip", s.handleSkipWorkout)
	})
}
