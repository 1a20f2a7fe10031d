// Package e2e boots complete RedClaw instances against real Postgres for
// end-to-end scenarios: engagement intake over HTTP, queue claiming, the
// team lead executor, event streaming, and the final report.
package e2e

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/api"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/masking"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/queue"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/tools"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/test/util"
)

// TestApp is one running RedClaw replica wired against the test database.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	LLM    llm.Client
	Bridge *tools.Bridge
	Guard  *guardian.Guardian

	EventPublisher *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	WorkerPool     *queue.WorkerPool
	Server         *api.Server

	// BaseURL is the httptest server address, e.g. "http://127.0.0.1:54321".
	BaseURL string

	t *testing.T
}

type testAppConfig struct {
	cfg               *config.Config
	llmClient         llm.Client
	bridge            *tools.Bridge
	guard             *guardian.Guardian
	workerCount       int
	engagementTimeout time.Duration
	dbClient          *database.Client
	podID             string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithLLM sets the LLM client the executor uses. Defaults to a fresh
// ScriptedLLMClient with the standard two-task script.
func WithLLM(client llm.Client) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithBridge sets a pre-built tool bridge, e.g. one carrying the terminal
// server behind a guardian.
func WithBridge(bridge *tools.Bridge) TestAppOption {
	return func(c *testAppConfig) { c.bridge = bridge }
}

// WithGuardian injects the guardian instance exposed on the audit endpoint.
func WithGuardian(g *guardian.Guardian) TestAppOption {
	return func(c *testAppConfig) { c.guard = g }
}

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithEngagementTimeout bounds one engagement's execution.
func WithEngagementTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.engagementTimeout = d }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used by multi-replica tests where several
// TestApp instances share one schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod identity. Required for
// multi-replica tests so claiming and orphan detection see distinct pods.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// NewTestApp boots a full replica. Shutdown is registered via t.Cleanup.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workerCount:       1,
		engagementTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		tc.cfg = defaultTestConfig()
	}
	if tc.cfg.Queue == nil {
		tc.cfg.Queue = &config.QueueConfig{}
	}
	tc.cfg.Queue.WorkerCount = tc.workerCount
	if tc.cfg.Queue.MaxConcurrentEngagements == 0 {
		tc.cfg.Queue.MaxConcurrentEngagements = tc.workerCount
	}
	tc.cfg.Queue.PollInterval = 100 * time.Millisecond
	tc.cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	tc.cfg.Queue.EngagementTimeout = tc.engagementTimeout
	tc.cfg.Queue.HeartbeatInterval = 5 * time.Second
	tc.cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	tc.cfg.Queue.OrphanDetectionInterval = 1 * time.Minute
	tc.cfg.Queue.OrphanThreshold = 1 * time.Minute

	if tc.llmClient == nil {
		tc.llmClient = NewScriptedLLMClient()
	}

	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client
	ctx := context.Background()

	// Real event plumbing: persist+NOTIFY publisher, fan-out manager, and a
	// dedicated LISTEN connection against the shared test database.
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(entClient)
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService))
	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), connManager)
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	masker := masking.NewService(tc.cfg.Masking)
	engagementService := services.NewEngagementService(entClient)
	findingService := services.NewFindingService(entClient)
	timelineService := services.NewTimelineService(entClient, masker)
	timelineService.SetEventPublisher(eventPublisher)
	messageService := services.NewMessageService(entClient)
	warningsService := services.NewSystemWarningsService()

	executor := queue.NewTeamLeadExecutor(tc.cfg, entClient, tc.llmClient, tc.bridge, eventPublisher, timelineService)

	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-%s", t.Name())
	}
	workerPool := queue.NewWorkerPool(podID, entClient, tc.cfg.Queue, executor, eventPublisher)
	require.NoError(t, workerPool.Start(ctx))
	engagementService.SetPoolCanceler(workerPool)

	server := api.NewServer(api.Deps{
		Config:     tc.cfg,
		DBClient:   dbClient,
		Engagement: engagementService,
		Findings:   findingService,
		Timeline:   timelineService,
		Messages:   messageService,
		Warnings:   warningsService,
		ConnMgr:    connManager,
		Guardian:   tc.guard,
		WorkerPool: workerPool,
	})
	httpd := httptest.NewServer(server.Handler())

	app := &TestApp{
		Config:         tc.cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		LLM:            tc.llmClient,
		Bridge:         tc.bridge,
		Guard:          tc.guard,
		EventPublisher: eventPublisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		WorkerPool:     workerPool,
		Server:         server,
		BaseURL:        httpd.URL,
		t:              t,
	}

	t.Cleanup(func() {
		workerPool.Stop()
		httpd.Close()
		notifyListener.Stop(context.Background())
		if tc.bridge != nil {
			_ = tc.bridge.Close()
		}
	})

	return app
}

// defaultTestConfig is the baseline for tests that do not bring their own:
// fast monitor ticks, a small scope, and no masking or guardian sections.
func defaultTestConfig() *config.Config {
	agentCfg := config.DefaultAgentConfig()
	agentCfg.MonitorInterval = 50 * time.Millisecond
	agentCfg.TaskTimeout = 20 * time.Second
	agentCfg.CleanupTimeout = 5 * time.Second
	return &config.Config{
		Agent: agentCfg,
		Scope: &models.Scope{IncludeCIDRs: []string{"10.0.0.0/24"}},
	}
}
