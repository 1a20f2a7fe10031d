package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
)

// sseHeartbeatInterval keeps idle SSE connections alive through proxies.
const sseHeartbeatInterval = 30 * time.Second

// streamBufferSize bounds an SSE subscriber's in-process queue. Overflow
// drops events; persistent ones are recoverable through catchup.
const streamBufferSize = 256

// eventCatchupHandler handles GET /api/v1/engagements/:id/events?after_id=N.
// Returns persisted events on the engagement channel after the cursor, with
// has_more signalling an overflow that warrants a full REST reload.
func (s *Server) eventCatchupHandler(c *gin.Context) {
	engagementID := c.Param("id")

	if _, err := s.engagementService.Get(c.Request.Context(), engagementID); err != nil {
		writeServiceError(c, err)
		return
	}
	if s.connMgr == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming is not enabled"})
		return
	}

	afterID := 0
	if v := c.Query("after_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid after_id"})
			return
		}
		afterID = n
	}

	payloads, hasMore, err := s.connMgr.Catchup(
		c.Request.Context(), events.EngagementChannel(engagementID), afterID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	raw := make([]json.RawMessage, len(payloads))
	for i, p := range payloads {
		raw[i] = p
	}
	c.JSON(http.StatusOK, gin.H{
		"events":   raw,
		"has_more": hasMore,
	})
}

// streamHandler handles GET /api/v1/engagements/:id/stream: an SSE feed of
// the engagement's channel. A Last-Event-ID header (or ?last_event_id=)
// replays persisted events missed since that cursor before going live.
func (s *Server) streamHandler(c *gin.Context) {
	engagementID := c.Param("id")
	if _, err := s.engagementService.Get(c.Request.Context(), engagementID); err != nil {
		writeServiceError(c, err)
		return
	}
	s.serveStream(c, events.EngagementChannel(engagementID))
}

// globalStreamHandler handles GET /api/v1/stream: engagement-level status
// events across all engagements, for list views.
func (s *Server) globalStreamHandler(c *gin.Context) {
	s.serveStream(c, events.GlobalEngagementsChannel)
}

func (s *Server) serveStream(c *gin.Context, channel string) {
	if s.connMgr == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming is not enabled"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	// Subscribe before catchup so no event can fall between the two.
	sub, err := s.connMgr.Subscribe(c.Request.Context(), channel, streamBufferSize)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer s.connMgr.Unsubscribe(sub)

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	if sinceID, ok := lastEventID(c); ok {
		payloads, hasMore, err := s.connMgr.Catchup(c.Request.Context(), channel, sinceID)
		if err == nil {
			for _, p := range payloads {
				writeSSEEvent(c.Writer, p)
			}
			if hasMore {
				fmt.Fprint(c.Writer, "event: catchup_overflow\ndata: {}\n\n")
			}
			flusher.Flush()
		}
	}

	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case payload, open := <-sub.C:
			if !open {
				return
			}
			writeSSEEvent(c.Writer, payload)
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			flusher.Flush()
		}
	}
}

// lastEventID resolves the SSE replay cursor from the standard header or the
// last_event_id query parameter used by clients that cannot set headers.
func lastEventID(c *gin.Context) (int, bool) {
	v := c.GetHeader("Last-Event-ID")
	if v == "" {
		v = c.Query("last_event_id")
	}
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// writeSSEEvent frames one payload as an SSE message. Persistent events carry
// db_event_id, surfaced as the SSE id field so browsers resume with
// Last-Event-ID automatically.
func writeSSEEvent(w io.Writer, payload []byte) {
	var envelope struct {
		DBEventID *int `json:"db_event_id"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.DBEventID != nil {
		fmt.Fprintf(w, "id: %d\n", *envelope.DBEventID)
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
}
