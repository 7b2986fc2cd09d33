package mcp

import (
	"context"
	"time"

	"github.com/claude/liftlog/internal/body"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/stats"
	"github.com/claude/liftlog/internal/storage"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// completedFilter builds a filter for completed workouts with an optional
// start/end narrowing. Empty strings leave the bound open.
func completedFilter(startStr, endStr string) (storage.WorkoutFilter, stats.Range, error) {
	f := storage.WorkoutFilter{Status: models.StatusCompleted}
	var rng stats.Range

	if startStr != "" {
		t, err := parseFlexTime(startStr)
		if err != nil {
			return f, rng, err
		}
		f.StartDate = &t
		rng.Start = &t
	}
	if endStr != "" {
		t, err := parseFlexTime(endStr)
		if err != nil {
			return f, rng, err
		}
		f.EndDate = &t
		rng.End = &t
	}
	return f, rng, nil
}

// --- Tool definitions ---

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Query the user's workouts with optional status and date filters. Returns workout summaries including totals for sets, reps, weight, and volume."),
	mcp.WithString("status", mcp.Description("Filter by lifecycle status"), mcp.Enum("planned", "in_progress", "completed", "skipped")),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD)")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD)")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of workouts to return. Defaults to 50.")),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Fetch one workout by ID with full exercise entries and per-set detail."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout UUID")),
)

var toolGetWorkoutStats = mcp.NewTool("get_workout_stats",
	mcp.WithDescription("Aggregate statistics over completed workouts: counts, total reps/weight/volume, and average duration and rating. Optionally restricted to a date range."),
	mcp.WithString("start", mcp.Description("Start date. Open-ended when omitted.")),
	mcp.WithString("end", mcp.Description("End date. Open-ended when omitted.")),
)

var toolGetWeeklyActivity = mcp.NewTool("get_weekly_activity",
	mcp.WithDescription("Completed-workout counts per calendar week (Sunday start) for the trailing weeks, oldest first. Weeks without training appear with count 0."),
	mcp.WithNumber("weeks", mcp.Description("Number of trailing weeks. Defaults to 8, maximum 52.")),
)

var toolGetCategoryDistribution = mcp.NewTool("get_category_distribution",
	mcp.WithDescription("How training is distributed across exercise categories (chest, back, legs, ...), counted per exercise entry in completed workouts."),
	mcp.WithString("start", mcp.Description("Start date. Open-ended when omitted.")),
	mcp.WithString("end", mcp.Description("End date. Open-ended when omitted.")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Personal records set by the most recent completed workout: max weight, max single-set volume, and estimated one-rep max per exercise."),
)

var toolGetBodyMetrics = mcp.NewTool("get_body_metrics",
	mcp.WithDescription("Body mass index computed from the profile height and the latest logged weight, with its category."),
)

// --- Tool handlers ---

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, _, err := completedFilter(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	// get_workouts is not restricted to completed workouts.
	f.Status = ""
	if st := req.GetString("status", ""); st != "" {
		status := models.Status(st)
		if !status.Valid() {
			return mcp.NewToolResultError("unknown status: " + st), nil
		}
		f.Status = status
	}
	f.Limit = req.GetInt("limit", 50)

	workouts, err := h.ds.ListWorkouts(ctx, UserIDFromContext(ctx), f)
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid workout ID: " + err.Error()), nil
	}

	wk, err := h.ds.GetWorkout(ctx, id, UserIDFromContext(ctx))
	if err != nil {
		h.log.Error("mcp get_workout", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(wk)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, rng, err := completedFilter(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	workouts, err := h.ds.ListWorkouts(ctx, UserIDFromContext(ctx), f)
	if err != nil {
		h.log.Error("mcp get_workout_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats.Aggregate(workouts, rng))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklyActivity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weeks := req.GetInt("weeks", 8)
	if weeks < 1 || weeks > 52 {
		return mcp.NewToolResultError("weeks must be between 1 and 52"), nil
	}

	workouts, err := h.ds.ListWorkouts(ctx, UserIDFromContext(ctx),
		storage.WorkoutFilter{Status: models.StatusCompleted})
	if err != nil {
		h.log.Error("mcp get_weekly_activity", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats.WeeklyBuckets(workouts, weeks, time.Now()))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCategoryDistribution(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, _, err := completedFilter(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	workouts, err := h.ds.ListWorkouts(ctx, UserIDFromContext(ctx), f)
	if err != nil {
		h.log.Error("mcp get_category_distribution", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

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
	categories, err := h.ds.ExerciseCategories(ctx, ids)
	if err != nil {
		h.log.Error("mcp get_category_distribution categories", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	dist := stats.CategoryDistribution(workouts, func(e models.ExerciseEntry) (string, bool) {
		cat, ok := categories[e.ExerciseID]
		return cat, ok
	})

	result, err := mcp.NewToolResultJSON(dist)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts, err := h.ds.ListWorkouts(ctx, UserIDFromContext(ctx),
		storage.WorkoutFilter{Status: models.StatusCompleted})
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	records := []models.PersonalRecord{}
	if len(workouts) > 0 {
		// ListWorkouts returns newest first.
		if recs := stats.PersonalRecords(workouts[1:], workouts[0]); recs != nil {
			records = recs
		}
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getBodyMetrics(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	u, err := h.ds.GetUser(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_body_metrics user", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if u.HeightCm == nil {
		return mcp.NewToolResultError("height not set on profile"), nil
	}

	entry, err := h.ds.LatestWeight(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_body_metrics weight", "error", err)
		return mcp.NewToolResultError("no weight entries logged"), nil
	}

	bmi, ok := body.BMI(entry.WeightKg, *u.HeightCm)
	if !ok {
		return mcp.NewToolResultError("height and weight must be positive"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"bmi":        bmi,
		"category":   body.Category(bmi),
		"weight_kg":  entry.WeightKg,
		"height_cm":  *u.HeightCm,
		"weighed_at": entry.Date,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
