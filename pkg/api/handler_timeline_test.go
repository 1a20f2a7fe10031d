package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/agent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFindingsHandler(t *testing.T) {
	srv, client := newTestServer(t)
	id := createEngagementViaAPI(t, srv)
	ctx := context.Background()

	findings := services.NewFindingService(client.Client)
	_, err := findings.Add(ctx, id, services.FindingInput{
		Phase:    "recon",
		Title:    "Open SSH port",
		Severity: models.SeverityHigh,
		AgentID:  "recon-1",
	})
	require.NoError(t, err)
	_, err = findings.Add(ctx, id, services.FindingInput{
		Phase:    "recon",
		Title:    "Verbose server banner",
		Severity: models.SeverityInfo,
		AgentID:  "recon-1",
	})
	require.NoError(t, err)

	t.Run("lists all with severity counts", func(t *testing.T) {
		var resp struct {
			Findings   []struct{ Title string } `json:"findings"`
			BySeverity map[string]int           `json:"by_severity"`
		}
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements/"+id+"/findings", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, resp.Findings, 2)
		assert.Equal(t, 1, resp.BySeverity["high"])
		assert.Equal(t, 1, resp.BySeverity["info"])
	})

	t.Run("severity filter", func(t *testing.T) {
		var resp struct {
			Findings []struct {
				Title string `json:"title"`
			} `json:"findings"`
		}
		rec := doJSON(t, srv, http.MethodGet,
			"/api/v1/engagements/"+id+"/findings?severity=high", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, resp.Findings, 1)
		assert.Equal(t, "Open SSH port", resp.Findings[0].Title)
	})

	t.Run("unknown engagement is a 404", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements/ghost/findings", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTimelineHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createEngagementViaAPI(t, srv)
	ctx := context.Background()

	require.NoError(t, srv.timelineService.RecordLLMInteraction(ctx, &agent.LLMRecord{
		EngagementID: id, AgentID: "recon-1", RequestSummary: "turn 1",
	}))
	require.NoError(t, srv.timelineService.RecordToolInteraction(ctx, &agent.ToolRecord{
		EngagementID: id, AgentID: "recon-1", ToolName: "nmap_scan", Success: true,
	}))

	var resp struct {
		Entries []struct {
			Kind string `json:"kind"`
		} `json:"entries"`
	}
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements/"+id+"/timeline", nil, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "llm", resp.Entries[0].Kind)
	assert.Equal(t, "tool", resp.Entries[1].Kind)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/engagements/ghost/timeline", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMessagesHandler(t *testing.T) {
	srv, client := newTestServer(t)
	id := createEngagementViaAPI(t, srv)
	ctx := context.Background()

	mailbox := coordination.NewMailbox(client.Client, id)
	require.NoError(t, mailbox.Send(ctx, "recon-1", "team-lead",
		models.MessageKindTaskComplete, map[string]any{"task": "recon"}))
	require.NoError(t, mailbox.Send(ctx, "team-lead", "recon-1",
		models.MessageKindTerminate, nil))

	t.Run("lists all messages", func(t *testing.T) {
		var resp struct {
			Messages []struct {
				FromAgent string `json:"from_agent"`
				Kind      string `json:"kind"`
			} `json:"messages"`
		}
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements/"+id+"/messages", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, resp.Messages, 2)
		assert.Equal(t, "recon-1", resp.Messages[0].FromAgent)
	})

	t.Run("kind filter", func(t *testing.T) {
		var resp struct {
			Messages []struct {
				Kind string `json:"kind"`
			} `json:"messages"`
		}
		rec := doJSON(t, srv, http.MethodGet,
			"/api/v1/engagements/"+id+"/messages?kind=terminate", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, "terminate", resp.Messages[0].Kind)
	})

	t.Run("unknown kind is a 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet,
			"/api/v1/engagements/"+id+"/messages?kind=telepathy", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
