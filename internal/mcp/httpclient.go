package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/google/uuid"
)

// HTTPClient implements DataSource by calling the LiftLog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server. The bearer token scopes every call
// to one user, so the userID arguments are ignored.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL,
// authenticating with the given session token.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) ListWorkouts(ctx context.Context, _ uuid.UUID, f storage.WorkoutFilter) ([]models.Workout, error) {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", string(f.Status))
	}
	if f.StartDate != nil {
		params.Set("start", f.StartDate.Format(time.RFC3339))
	}
	if f.EndDate != nil {
		params.Set("end", f.EndDate.Format(time.RFC3339))
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}

	body, err := c.get(ctx, "/api/v1/workouts", params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Workouts []models.Workout `json:"workouts"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode workouts: %w", err)
	}
	return resp.Workouts, nil
}

func (c *HTTPClient) GetWorkout(ctx context.Context, id, _ uuid.UUID) (*models.Workout, error) {
	body, err := c.get(ctx, "/api/v1/workouts/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var wk models.Workout
	if err := json.Unmarshal(body, &wk); err != nil {
		return nil, fmt.Errorf("httpclient: decode workout: %w", err)
	}
	return &wk, nil
}

// ExerciseCategories resolves the requested catalog IDs by listing the
// visible catalog once and filtering client-side.
func (c *HTTPClient) ExerciseCategories(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	body, err := c.get(ctx, "/api/v1/exercises", nil)
	if err != nil {
		return nil, err
	}

	var exercises []models.Exercise
	if err := json.Unmarshal(body, &exercises); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}

	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	categories := make(map[uuid.UUID]string)
	for _, e := range exercises {
		if wanted[e.ID] {
			categories[e.ID] = e.Category
		}
	}
	return categories, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, _ uuid.UUID) (*models.User, error) {
	body, err := c.get(ctx, "/api/v1/auth/profile", nil)
	if err != nil {
		return nil, err
	}

	var u models.User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("httpclient: decode profile: %w", err)
	}
	return &u, nil
}

func (c *HTTPClient) LatestWeight(ctx context.Context, _ uuid.UUID) (*models.WeightEntry, error) {
	body, err := c.get(ctx, "/api/v1/profile/bmi", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		WeightKg  float64   `json:"weight_kg"`
		WeighedAt time.Time `json:"weighed_at"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode body metrics: %w", err)
	}
	return &models.WeightEntry{WeightKg: resp.WeightKg, Date: resp.WeighedAt}, nil
}

func (c *HTTPClient) GetDataStats(ctx context.Context, _ uuid.UUID) (*storage.DataStats, error) {
	body, err := c.get(ctx, "/api/v1/workouts/stats/data", nil)
	if err != nil {
		return nil, err
	}

	var ds storage.DataStats
	if err := json.Unmarshal(body, &ds); err != nil {
		return nil, fmt.Errorf("httpclient: decode data stats: %w", err)
	}
	return &ds, nil
}
