package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultiReplicaClaiming runs a worker replica and an API-only replica
// against the same database. Engagements submitted through either API get
// claimed and finished by the worker replica, and read consistently from
// both.
func TestMultiReplicaClaiming(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	workerApp := NewTestApp(t,
		WithPodID("pod-worker"),
		WithLLM(NewScriptedLLMClient()),
		WithDBClient(shared.NewClient(t)),
	)
	apiApp := NewTestApp(t,
		WithPodID("pod-api"),
		WithWorkerCount(0),
		WithDBClient(shared.NewClient(t)),
	)

	// Submitted through the replica with no workers of its own.
	id := apiApp.CreateEngagement("Assess the 10.0.0.0/24 network", "network")
	apiApp.AwaitEngagementStatus(id, "completed", 30*time.Second)

	eng := apiApp.GetEngagement(id)
	assert.Equal(t, "pod-worker", eng["pod_id"], "only the worker replica claims")
	assert.NotEmpty(t, eng["final_report"])

	// The worker replica's API sees the identical row.
	fromWorker := workerApp.GetEngagement(id)
	assert.Equal(t, eng["status"], fromWorker["status"])
	assert.Equal(t, eng["pod_id"], fromWorker["pod_id"])
}

// TestCrossReplicaCancelConflict verifies that cancelling an in-progress
// engagement only works on the replica that owns it: the API-only replica
// has no executor to signal and answers 409.
func TestCrossReplicaCancelConflict(t *testing.T) {
	release := make(chan struct{})
	script := NewScriptedLLMClient()
	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool { return !IsDecomposition(req) },
		Respond: func(ctx context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
			select {
			case <-release:
				return TextResponse("Task finished."), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	})
	defer close(release)

	shared := testdb.NewSharedTestDB(t)
	workerApp := NewTestApp(t,
		WithPodID("pod-worker"),
		WithLLM(script),
		WithDBClient(shared.NewClient(t)),
	)
	apiApp := NewTestApp(t,
		WithPodID("pod-api"),
		WithWorkerCount(0),
		WithDBClient(shared.NewClient(t)),
	)

	id := workerApp.CreateEngagement("Assess the 10.0.0.0/24 network", "network")
	workerApp.AwaitEngagementStatus(id, "in_progress", 15*time.Second)

	// The replica that did not claim the engagement cannot stop it.
	var conflict map[string]any
	status := apiApp.doJSON(http.MethodPost, "/api/v1/engagements/"+id+"/cancel", nil, &conflict)
	require.Equal(t, http.StatusConflict, status)

	// The owning replica can.
	var ok map[string]any
	status = workerApp.doJSON(http.MethodPost, "/api/v1/engagements/"+id+"/cancel", nil, &ok)
	require.Equal(t, http.StatusOK, status)
	workerApp.AwaitEngagementStatus(id, "cancelled", 15*time.Second)
}
