// Package api exposes the HTTP surface: engagement submission and reads,
// findings, timelines, mailbox messages, event catchup and live SSE streaming,
// guardian audit export, and health.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/queue"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
)

// Server holds the handler dependencies and the underlying http.Server.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	engagementService *services.EngagementService
	findingService    *services.FindingService
	timelineService   *services.TimelineService
	messageService    *services.MessageService
	warningsService   *services.SystemWarningsService

	connMgr    *events.ConnectionManager
	guard      *guardian.Guardian
	router     *llm.Router
	workerPool *queue.WorkerPool

	apiKey string
	httpd  *http.Server
}

// Deps bundles what the server needs. Optional fields (ConnMgr, Guardian,
// Router, WorkerPool, Warnings) degrade their endpoints gracefully when nil.
type Deps struct {
	Config     *config.Config
	DBClient   *database.Client
	Engagement *services.EngagementService
	Findings   *services.FindingService
	Timeline   *services.TimelineService
	Messages   *services.MessageService
	Warnings   *services.SystemWarningsService
	ConnMgr    *events.ConnectionManager
	Guardian   *guardian.Guardian
	Router     *llm.Router
	WorkerPool *queue.WorkerPool

	// APIKey enables static key auth on /api/v1 when non-empty.
	APIKey string
}

// NewServer creates the API server. Routes are wired immediately; call
// Start to begin serving.
func NewServer(deps Deps) *Server {
	s := &Server{
		cfg:               deps.Config,
		dbClient:          deps.DBClient,
		engagementService: deps.Engagement,
		findingService:    deps.Findings,
		timelineService:   deps.Timeline,
		messageService:    deps.Messages,
		warningsService:   deps.Warnings,
		connMgr:           deps.ConnMgr,
		guard:             deps.Guardian,
		router:            deps.Router,
		workerPool:        deps.WorkerPool,
		apiKey:            deps.APIKey,
	}
	return s
}

// Handler builds the gin engine with all routes and middleware. Exposed
// separately from Start so tests can drive it with httptest.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestLogger(), recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	if s.apiKey != "" {
		v1.Use(apiKeyAuth(s.apiKey))
	}

	v1.POST("/engagements", s.createEngagementHandler)
	v1.GET("/engagements", s.listEngagementsHandler)
	v1.GET("/engagements/stats", s.engagementStatsHandler)
	v1.GET("/engagements/:id", s.getEngagementHandler)
	v1.POST("/engagements/:id/cancel", s.cancelEngagementHandler)
	v1.DELETE("/engagements/:id", s.deleteEngagementHandler)

	v1.GET("/engagements/:id/findings", s.listFindingsHandler)
	v1.GET("/engagements/:id/timeline", s.timelineHandler)
	v1.GET("/engagements/:id/messages", s.listMessagesHandler)

	v1.GET("/engagements/:id/events", s.eventCatchupHandler)
	v1.GET("/engagements/:id/stream", s.streamHandler)
	v1.GET("/stream", s.globalStreamHandler)

	v1.GET("/guardian/audit", s.guardianAuditHandler)
	v1.GET("/system/warnings", s.systemWarningsHandler)

	return r
}

// Start begins serving on the given port. Blocks until the listener fails
// or Shutdown is called.
func (s *Server) Start(port int) error {
	s.httpd = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", s.httpd.Addr)
	if err := s.httpd.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests. SSE streams observe the server
// context cancellation and close.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpd == nil {
		return nil
	}
	return s.httpd.Shutdown(ctx)
}
