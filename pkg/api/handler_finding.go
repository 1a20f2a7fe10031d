package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listFindingsHandler handles GET /api/v1/engagements/:id/findings with an
// optional severity filter.
func (s *Server) listFindingsHandler(c *gin.Context) {
	engagementID := c.Param("id")

	// 404 for a missing engagement rather than an empty list.
	if _, err := s.engagementService.Get(c.Request.Context(), engagementID); err != nil {
		writeServiceError(c, err)
		return
	}

	rows, err := s.findingService.List(c.Request.Context(), engagementID, c.Query("severity"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	counts, err := s.findingService.CountBySeverity(c.Request.Context(), engagementID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"findings":    rows,
		"by_severity": counts,
	})
}
