package e2e

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sseEvent is one decoded server-sent event: the optional id line and the
// parsed data payload.
type sseEvent struct {
	ID      string
	Payload map[string]any
}

// readSSE consumes an SSE body into a channel until the context is done.
func readSSE(ctx context.Context, t *testing.T, body *bufio.Scanner, out chan<- sseEvent) {
	t.Helper()
	var current sseEvent
	for body.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := body.Text()
		switch {
		case strings.HasPrefix(line, "id: "):
			current.ID = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "data: "):
			payload := map[string]any{}
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &payload); err == nil {
				current.Payload = payload
			}
		case line == "":
			if current.Payload != nil {
				select {
				case out <- current:
				case <-ctx.Done():
					return
				}
			}
			current = sseEvent{}
		}
	}
}

// TestEngagementEventStream drives an engagement through the persist, NOTIFY
// and fanout path while an SSE client is attached, asserting that task and
// engagement status transitions arrive as framed events with database
// cursors.
func TestEngagementEventStream(t *testing.T) {
	release := make(chan struct{})
	script := NewScriptedLLMClient()
	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool {
			return IsWorkerTask(req, "Enumerate services")
		},
		Respond: func(ctx context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
			select {
			case <-release:
				return TextResponse("FINDING: high | Exposed admin panel | Admin UI reachable without auth"), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	})

	app := NewTestApp(t, WithLLM(script))

	id := app.CreateEngagement("Assess the 10.0.0.0/24 network", "network")
	app.AwaitEngagementStatus(id, "in_progress", 15*time.Second)

	// Attach with a zero cursor so persisted history replays before the
	// live feed takes over.
	streamCtx, cancelStream := context.WithCancel(context.Background())
	defer cancelStream()
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet,
		app.BaseURL+"/api/v1/engagements/"+id+"/stream?last_event_id=0", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	eventCh := make(chan sseEvent, 64)
	go readSSE(streamCtx, t, bufio.NewScanner(resp.Body), eventCh)

	close(release)
	app.AwaitEngagementStatus(id, "completed", 30*time.Second)

	var (
		sawTaskComplete      bool
		sawFinding           bool
		sawEngagementRunning bool
		withCursor           int
	)
	deadline := time.After(15 * time.Second)
	for !(sawTaskComplete && sawFinding && sawEngagementRunning) {
		select {
		case ev := <-eventCh:
			if ev.ID != "" {
				withCursor++
			}
			switch ev.Payload["type"] {
			case "task.status":
				if ev.Payload["status"] == "complete" {
					sawTaskComplete = true
				}
			case "finding.created":
				sawFinding = true
			case "engagement.status":
				if ev.Payload["status"] == "in_progress" {
					sawEngagementRunning = true
				}
			}
		case <-deadline:
			t.Fatalf("stream incomplete: task_complete=%v finding=%v running=%v",
				sawTaskComplete, sawFinding, sawEngagementRunning)
		}
	}
	assert.NotZero(t, withCursor, "persisted events should carry an SSE id cursor")
}

// TestEventCatchupEndpoint reads the persisted event history through the
// REST catchup endpoint after the engagement finishes.
func TestEventCatchupEndpoint(t *testing.T) {
	app := NewTestApp(t, WithLLM(NewScriptedLLMClient()))

	id := app.CreateEngagement("Assess the 10.0.0.0/24 network", "network")
	app.AwaitEngagementStatus(id, "completed", 30*time.Second)

	var out struct {
		Events  []map[string]any `json:"events"`
		HasMore bool             `json:"has_more"`
	}
	status := app.doJSON(http.MethodGet, "/api/v1/engagements/"+id+"/events?after_id=0", nil, &out)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, out.Events)
	assert.False(t, out.HasMore)

	types := map[string]int{}
	lastID := 0
	for _, ev := range out.Events {
		if tpe, ok := ev["type"].(string); ok {
			types[tpe]++
		}
		if raw, ok := ev["db_event_id"].(float64); ok {
			cur := int(raw)
			assert.Greater(t, cur, lastID, "catchup events should be cursor-ordered")
			lastID = cur
		}
	}
	assert.NotZero(t, types["task.status"])
	assert.NotZero(t, types["engagement.status"])

	// An unknown engagement is a 404, not an empty list.
	var errBody map[string]any
	status = app.doJSON(http.MethodGet,
		"/api/v1/engagements/00000000-0000-0000-0000-000000000000/events", nil, &errBody)
	assert.Equal(t, http.StatusNotFound, status)
}
