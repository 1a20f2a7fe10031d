package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stretchr/testify/require"
)

// doJSON performs one request against the app and decodes the JSON body into
// out (skipped when out is nil or the body is empty). Returns the status code.
func (app *TestApp) doJSON(method, path string, body, out any) int {
	app.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(app.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, app.BaseURL+path, reader)
	require.NoError(app.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(app.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(app.t, err)
	if out != nil && len(raw) > 0 {
		require.NoError(app.t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

// CreateEngagement submits an engagement and returns its ID.
func (app *TestApp) CreateEngagement(objective, objectiveType string) string {
	app.t.Helper()

	var created struct {
		EngagementID string `json:"engagement_id"`
		Status       string `json:"status"`
	}
	status := app.doJSON(http.MethodPost, "/api/v1/engagements", map[string]any{
		"objective":      objective,
		"objective_type": objectiveType,
	}, &created)
	require.Equal(app.t, http.StatusCreated, status)
	require.NotEmpty(app.t, created.EngagementID)
	require.Equal(app.t, "pending", created.Status)
	return created.EngagementID
}

// GetEngagement fetches one engagement as a generic map.
func (app *TestApp) GetEngagement(id string) map[string]any {
	app.t.Helper()

	var out map[string]any
	status := app.doJSON(http.MethodGet, "/api/v1/engagements/"+id, nil, &out)
	require.Equal(app.t, http.StatusOK, status)
	return out
}

// AwaitEngagementStatus polls the API until the engagement reaches the
// target status or the timeout elapses.
func (app *TestApp) AwaitEngagementStatus(id, target string, timeout time.Duration) map[string]any {
	app.t.Helper()

	deadline := time.Now().Add(timeout)
	var last string
	for time.Now().Before(deadline) {
		eng := app.GetEngagement(id)
		last, _ = eng["status"].(string)
		if last == target {
			return eng
		}
		if isTerminalStatus(last) && last != target {
			app.t.Fatalf("engagement %s reached terminal status %q while waiting for %q (error: %v)",
				id, last, target, eng["error_message"])
		}
		time.Sleep(100 * time.Millisecond)
	}
	app.t.Fatalf("engagement %s did not reach status %q within %v (last: %q)", id, target, timeout, last)
	return nil
}

func isTerminalStatus(status string) bool {
	switch status {
	case "completed", "failed", "cancelled", "timed_out":
		return true
	}
	return false
}

// ListFindings fetches the findings payload for an engagement.
func (app *TestApp) ListFindings(id string) map[string]any {
	app.t.Helper()

	var out map[string]any
	status := app.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/engagements/%s/findings", id), nil, &out)
	require.Equal(app.t, http.StatusOK, status)
	return out
}

// Timeline fetches the merged interaction timeline for an engagement.
func (app *TestApp) Timeline(id string) []any {
	app.t.Helper()

	var out struct {
		Entries []any `json:"entries"`
	}
	status := app.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/engagements/%s/timeline", id), nil, &out)
	require.Equal(app.t, http.StatusOK, status)
	return out.Entries
}
