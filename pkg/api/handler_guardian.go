package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
)

// guardianAuditHandler handles GET /api/v1/guardian/audit: the in-memory
// log of every authorization decision made since this pod started.
func (s *Server) guardianAuditHandler(c *gin.Context) {
	records := []guardian.AuditRecord{}
	if s.guard != nil {
		records = s.guard.AuditLog()
	}
	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"count":   len(records),
	})
}
