package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/masking"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a Server against an isolated test schema, with
// event catchup wired but no live listener.
func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)

	eventService := services.NewEventService(client.Client)
	connMgr := events.NewConnectionManager(events.NewEventServiceAdapter(eventService))
	masker := masking.NewService(nil)

	srv := NewServer(Deps{
		DBClient:   client,
		Engagement: services.NewEngagementService(client.Client),
		Findings:   services.NewFindingService(client.Client),
		Timeline:   services.NewTimelineService(client.Client, masker),
		Messages:   services.NewMessageService(client.Client),
		Warnings:   services.NewSystemWarningsService(),
		ConnMgr:    connMgr,
		Guardian:   guardian.New(guardian.Config{}),
	})
	return srv, client
}

// doJSON performs a request against the server's handler and decodes the
// JSON response body into out (when out is non-nil).
func doJSON(t *testing.T, srv *Server, method, path string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out),
			"response body: %s", rec.Body.String())
	}
	return rec
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_SecurityHeaders(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
