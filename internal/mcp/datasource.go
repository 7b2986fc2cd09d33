package mcp

import (
	"context"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListWorkouts(ctx context.Context, userID uuid.UUID, f storage.WorkoutFilter) ([]models.Workout, error)
	GetWorkout(ctx context.Context, id, userID uuid.UUID) (*models.Workout, error)
	ExerciseCategories(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	LatestWeight(ctx context.Context, userID uuid.UUID) (*models.WeightEntry, error)
	GetDataStats(ctx context.Context, userID uuid.UUID) (*storage.DataStats, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
