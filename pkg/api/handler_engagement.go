package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
)

// CreateEngagementRequest is the body for POST /api/v1/engagements.
type CreateEngagementRequest struct {
	Objective     string                 `json:"objective" binding:"required"`
	ObjectiveType string                 `json:"objective_type"`
	Scope         map[string]interface{} `json:"scope"`
}

// CreateEngagementResponse is returned with 201 on submission.
type CreateEngagementResponse struct {
	EngagementID string `json:"engagement_id"`
	Status       string `json:"status"`
}

// createEngagementHandler handles POST /api/v1/engagements. The engagement
// is enqueued; a worker pool on some replica claims and runs it.
func (s *Server) createEngagementHandler(c *gin.Context) {
	var req CreateEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	eng, err := s.engagementService.Create(c.Request.Context(), services.CreateEngagementInput{
		Objective:     req.Objective,
		ObjectiveType: req.ObjectiveType,
		Scope:         req.Scope,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateEngagementResponse{
		EngagementID: eng.ID,
		Status:       string(eng.Status),
	})
}

// listEngagementsHandler handles GET /api/v1/engagements with optional
// status, objective_type, created_after/created_before, limit, offset.
func (s *Server) listEngagementsHandler(c *gin.Context) {
	filters := models.EngagementFilters{
		Status:        c.Query("status"),
		ObjectiveType: c.Query("objective_type"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filters.Offset = n
	}
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_after, want RFC3339"})
			return
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_before, want RFC3339"})
			return
		}
		filters.CreatedBefore = &t
	}

	resp, err := s.engagementService.List(c.Request.Context(), filters)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getEngagementHandler handles GET /api/v1/engagements/:id.
func (s *Server) getEngagementHandler(c *gin.Context) {
	eng, err := s.engagementService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, eng)
}

// cancelEngagementHandler handles POST /api/v1/engagements/:id/cancel.
func (s *Server) cancelEngagementHandler(c *gin.Context) {
	engagementID := c.Param("id")
	if err := s.engagementService.Cancel(c.Request.Context(), engagementID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"engagement_id": engagementID,
		"status":        "cancelled",
	})
}

// deleteEngagementHandler handles DELETE /api/v1/engagements/:id.
// Soft delete; the retention cleanup purges rows for good.
func (s *Server) deleteEngagementHandler(c *gin.Context) {
	if err := s.engagementService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// engagementStatsHandler handles GET /api/v1/engagements/stats.
func (s *Server) engagementStatsHandler(c *gin.Context) {
	stats, err := s.engagementService.Stats(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
