package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
)

// timelineHandler handles GET /api/v1/engagements/:id/timeline. Optional
// ?agent= narrows to one agent's interactions.
func (s *Server) timelineHandler(c *gin.Context) {
	engagementID := c.Param("id")

	if _, err := s.engagementService.Get(c.Request.Context(), engagementID); err != nil {
		writeServiceError(c, err)
		return
	}

	entries, err := s.timelineService.List(c.Request.Context(), engagementID, c.Query("agent"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"engagement_id": engagementID,
		"entries":       entries,
	})
}

// listMessagesHandler handles GET /api/v1/engagements/:id/messages. Filters:
// ?agent= (sender or recipient), ?kind=, ?unread=true, ?limit=.
func (s *Server) listMessagesHandler(c *gin.Context) {
	engagementID := c.Param("id")

	if _, err := s.engagementService.Get(c.Request.Context(), engagementID); err != nil {
		writeServiceError(c, err)
		return
	}

	filters := services.MessageFilters{
		Agent:  c.Query("agent"),
		Kind:   c.Query("kind"),
		Unread: c.Query("unread") == "true",
	}

	msgs, err := s.messageService.List(c.Request.Context(), engagementID, filters)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"engagement_id": engagementID,
		"messages":      msgs,
	})
}
