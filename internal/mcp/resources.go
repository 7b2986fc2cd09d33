package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/stats"
	"github.com/claude/liftlog/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)
	start := time.Now().AddDate(0, 0, -14)

	workouts, err := h.ds.ListWorkouts(ctx, uid, storage.WorkoutFilter{
		Status:    models.StatusCompleted,
		StartDate: &start,
	})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(workouts)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) trainingOverview(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	dataStats, err := h.ds.GetDataStats(ctx, uid)
	if err != nil {
		return nil, err
	}

	workouts, err := h.ds.ListWorkouts(ctx, uid, storage.WorkoutFilter{Status: models.StatusCompleted})
	if err != nil {
		h.log.Warn("training_overview: workout query failed", "error", err)
	}

	overview := map[string]any{
		"totals":          dataStats,
		"summary":         stats.Aggregate(workouts, stats.Range{}),
		"weekly_activity": stats.WeeklyBuckets(workouts, 8, time.Now()),
	}

	data, err := json.Marshal(overview)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
