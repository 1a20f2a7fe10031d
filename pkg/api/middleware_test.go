package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIKeyAuth(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.apiKey = "test-key-123"
	handler := srv.Handler()

	t.Run("missing key is a 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/engagements", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key is a 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/engagements", nil)
		req.Header.Set("X-API-Key", "wrong")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct key passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/engagements", nil)
		req.Header.Set("X-API-Key", "test-key-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health stays unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
	})
}
