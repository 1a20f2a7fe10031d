package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEngagementViaAPI(t *testing.T, srv *Server) string {
	t.Helper()
	var resp CreateEngagementResponse
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/engagements", CreateEngagementRequest{
		Objective:     "assess host 10.0.0.5 for exposed services",
		ObjectiveType: "network",
	}, &resp)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotEmpty(t, resp.EngagementID)
	return resp.EngagementID
}

func TestCreateEngagementHandler(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("valid request returns 201 pending", func(t *testing.T) {
		var resp CreateEngagementResponse
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/engagements", CreateEngagementRequest{
			Objective: "enumerate the staging subnet",
			Scope: map[string]interface{}{
				"include_cidrs": []string{"10.20.0.0/24"},
			},
		}, &resp)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("missing objective is a 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/engagements",
			map[string]string{"objective_type": "network"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed scope CIDR is a 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/engagements", CreateEngagementRequest{
			Objective: "enumerate the staging subnet",
			Scope: map[string]interface{}{
				"include_cidrs": []string{"not-a-cidr"},
			},
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListEngagementsHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createEngagementViaAPI(t, srv)

	t.Run("lists created engagements", func(t *testing.T) {
		var resp struct {
			Engagements []struct {
				ID string `json:"id"`
			} `json:"engagements"`
			TotalCount int `json:"total_count"`
		}
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Engagements, 1)
		assert.Equal(t, id, resp.Engagements[0].ID)
	})

	t.Run("status filter excludes non-matching", func(t *testing.T) {
		var resp struct {
			TotalCount int `json:"total_count"`
		}
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements?status=completed", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, resp.TotalCount)
	})

	t.Run("bad limit is a 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements?limit=banana", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad created_after is a 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements?created_after=yesterday", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetEngagementHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createEngagementViaAPI(t, srv)

	t.Run("returns the engagement", func(t *testing.T) {
		var resp struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements/"+id, nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements/ghost", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCancelEngagementHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createEngagementViaAPI(t, srv)

	t.Run("cancels a pending engagement", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/engagements/"+id+"/cancel", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cancelling again is a 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/engagements/"+id+"/cancel", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/engagements/ghost/cancel", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteEngagementHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createEngagementViaAPI(t, srv)

	rec := doJSON(t, srv, http.MethodDelete, "/api/v1/engagements/"+id, nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var resp struct {
		TotalCount int `json:"total_count"`
	}
	rec = doJSON(t, srv, http.MethodGet, "/api/v1/engagements", nil, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, resp.TotalCount)
}

func TestEngagementStatsHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	createEngagementViaAPI(t, srv)

	var resp struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"by_status"`
	}
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/engagements/stats", nil, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.ByStatus["pending"])
}
