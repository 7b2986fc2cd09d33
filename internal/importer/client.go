package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// Client sends data to the LiftLog server over HTTP, authenticated with a
// session token.
type Client struct {
	serverURL  string
	token      string
	httpClient *http.Client
}

// NewClient creates a new HTTP client for the LiftLog server.
func NewClient(serverURL, token string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		token:     token,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// FetchExerciseIndex retrieves the exercise catalog and indexes it by
// lowercase name, for resolving export entries to catalog IDs.
func (c *Client) FetchExerciseIndex() (map[string]uuid.UUID, error) {
	req, err := http.NewRequest(http.MethodGet, c.serverURL+"/api/v1/exercises", nil)
	if err != nil {
		return nil, fmt.Errorf("creating catalog request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching exercise catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog request failed (status %d): %s", resp.StatusCode, body)
	}

	var exercises []models.Exercise
	if err := json.NewDecoder(resp.Body).Decode(&exercises); err != nil {
		return nil, fmt.Errorf("decoding exercise catalog: %w", err)
	}

	index := make(map[string]uuid.UUID, len(exercises))
	for _, e := range exercises {
		index[strings.ToLower(e.Name)] = e.ID
	}
	return index, nil
}

// Post sends a JSON body to the given API path and decodes the response into
// out when non-nil. Retries up to 3 times with exponential backoff.
func (c *Client) Post(path string, payload, out any) error {
	return c.send(http.MethodPost, path, payload, out)
}

// Put sends a JSON body with PUT semantics, with the same retry policy.
func (c *Client) Put(path string, payload, out any) error {
	return c.send(http.MethodPut, path, payload, out)
}

func (c *Client) send(method, path string, payload, out any) error {
	var data []byte
	if payload != nil {
		var err error
		data, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling payload: %w", err)
		}
	}

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequest(method, c.serverURL+path, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
			if out != nil {
				if err := json.Unmarshal(body, out); err != nil {
					return fmt.Errorf("decoding response: %w", err)
				}
			}
			return nil
		}

		lastErr = fmt.Errorf("%s %s failed (status %d): %s", method, path, resp.StatusCode, body)
		// Client errors won't improve on retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return lastErr
		}
	}

	return fmt.Errorf("after 3 attempts: %w", lastErr)
}
