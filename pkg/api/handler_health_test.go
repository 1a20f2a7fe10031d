package api

import (
	"net/http"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("healthy with a reachable database", func(t *testing.T) {
		var resp HealthResponse
		rec := doJSON(t, srv, http.MethodGet, "/health", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, healthStatusHealthy, resp.Status)
		require.NotNil(t, resp.Database)
		assert.Equal(t, "healthy", resp.Database.Status)
	})

	t.Run("warnings degrade the status but keep 200", func(t *testing.T) {
		srv.warningsService.AddWarning("tool_server", "nmap server unreachable", "", "nmap")

		var resp HealthResponse
		rec := doJSON(t, srv, http.MethodGet, "/health", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, healthStatusDegraded, resp.Status)
		require.Len(t, resp.Warnings, 1)
		assert.Equal(t, "nmap server unreachable", resp.Warnings[0].Message)
	})
}

func TestSystemWarningsHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.warningsService.AddWarning("llm_provider", "fallback provider has no API key", "", "fallback")

	var resp struct {
		Warnings []struct {
			Category string `json:"category"`
			Message  string `json:"message"`
		} `json:"warnings"`
	}
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/system/warnings", nil, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "llm_provider", resp.Warnings[0].Category)
}

func TestGuardianAuditHandler(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("empty audit log", func(t *testing.T) {
		var resp struct {
			Records []any `json:"records"`
			Count   int   `json:"count"`
		}
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/guardian/audit", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, resp.Count)
	})

	t.Run("decisions appear in order", func(t *testing.T) {
		srv.guard.Evaluate("nmap -sV 10.0.0.5", guardian.SessionRemote)
		srv.guard.Evaluate("whoami", guardian.SessionLocal)

		var resp struct {
			Records []struct {
				Command string `json:"command"`
				Allowed bool   `json:"allowed"`
			} `json:"records"`
			Count int `json:"count"`
		}
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/guardian/audit", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, "nmap -sV 10.0.0.5", resp.Records[0].Command)
	})
}
