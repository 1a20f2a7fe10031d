package api

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishStatusEvent(t *testing.T, srv *Server, engagementID, status string) {
	t.Helper()
	publisher := events.NewEventPublisher(srv.dbClient.DB())
	err := publisher.PublishEngagementStatus(context.Background(), engagementID,
		events.EngagementStatusPayload{
			BasePayload: events.BasePayload{
				Type:         events.EventTypeEngagementStatus,
				EngagementID: engagementID,
				Timestamp:    time.Now().Format(time.RFC3339Nano),
			},
			Status: status,
		})
	require.NoError(t, err)
}

func TestEventCatchupHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createEngagementViaAPI(t, srv)

	publishStatusEvent(t, srv, id, "in_progress")
	publishStatusEvent(t, srv, id, "completed")

	t.Run("returns all events from cursor zero", func(t *testing.T) {
		var resp struct {
			Events []struct {
				Type      string `json:"type"`
				Status    string `json:"status"`
				DBEventID int    `json:"db_event_id"`
			} `json:"events"`
			HasMore bool `json:"has_more"`
		}
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements/"+id+"/events", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Len(t, resp.Events, 2)
		assert.False(t, resp.HasMore)
		assert.Equal(t, "in_progress", resp.Events[0].Status)
		assert.Equal(t, "completed", resp.Events[1].Status)
		assert.Greater(t, resp.Events[1].DBEventID, resp.Events[0].DBEventID)
	})

	t.Run("after_id skips already-seen events", func(t *testing.T) {
		var first struct {
			Events []struct {
				DBEventID int `json:"db_event_id"`
			} `json:"events"`
		}
		doJSON(t, srv, http.MethodGet, "/api/v1/engagements/"+id+"/events", nil, &first)
		require.Len(t, first.Events, 2)

		var resp struct {
			Events []struct {
				Status string `json:"status"`
			} `json:"events"`
		}
		rec := doJSON(t, srv, http.MethodGet,
			"/api/v1/engagements/"+id+"/events?after_id="+strconv.Itoa(first.Events[0].DBEventID), nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, resp.Events, 1)
		assert.Equal(t, "completed", resp.Events[0].Status)
	})

	t.Run("invalid after_id is a 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements/"+id+"/events?after_id=-3", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown engagement is a 404", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements/ghost/events", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStreamHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createEngagementViaAPI(t, srv)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		ts.URL+"/api/v1/engagements/"+id+"/stream", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	// The subscription is live once the handler responds; without a PG
	// listener, Broadcast delivers directly.
	require.Eventually(t, func() bool {
		return srv.connMgr.ActiveSubscribers() > 0
	}, 5*time.Second, 10*time.Millisecond)

	srv.connMgr.Broadcast(events.EngagementChannel(id),
		[]byte(`{"type":"engagement.status","status":"in_progress","db_event_id":7}`))

	reader := bufio.NewReader(resp.Body)
	var idLine, dataLine string
	for dataLine == "" {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "id: "):
			idLine = line
		case strings.HasPrefix(line, "data: "):
			dataLine = line
		}
	}

	assert.Equal(t, "id: 7", idLine)
	assert.Contains(t, dataLine, `"status":"in_progress"`)
}

func TestStreamHandler_ReplaysSinceLastEventID(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createEngagementViaAPI(t, srv)

	publishStatusEvent(t, srv, id, "in_progress")
	publishStatusEvent(t, srv, id, "completed")

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		ts.URL+"/api/v1/engagements/"+id+"/stream", nil)
	require.NoError(t, err)
	req.Header.Set("Last-Event-ID", "0")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Both persisted events replay before any live traffic.
	reader := bufio.NewReader(resp.Body)
	var replayed []string
	for len(replayed) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "data: ") {
			replayed = append(replayed, strings.TrimSpace(line))
		}
	}
	assert.Contains(t, replayed[0], `"in_progress"`)
	assert.Contains(t, replayed[1], `"completed"`)
}

