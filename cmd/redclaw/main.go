// RedClaw orchestrator server — serves the HTTP API, runs the engagement
// worker pool, and coordinates agent teams against in-scope targets.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/api"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/cleanup"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/masking"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/queue"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/tools"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/version"
	"github.com/joho/godotenv"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort, err := strconv.Atoi(getEnv("HTTP_PORT", "8080"))
	if err != nil {
		slog.Error("Invalid HTTP_PORT", "error", err)
		os.Exit(1)
	}
	podID := resolvePodID()

	slog.Info("Starting RedClaw",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Masking and domain services
	maskingService := masking.NewService(cfg.Masking)

	engagementService := services.NewEngagementService(dbClient.Client)
	findingService := services.NewFindingService(dbClient.Client)
	timelineService := services.NewTimelineService(dbClient.Client, maskingService)
	messageService := services.NewMessageService(dbClient.Client)
	warningsService := services.NewSystemWarningsService()
	slog.Info("Services initialized")

	// 5. Streaming infrastructure
	eventService := services.NewEventService(dbClient.Client)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier)

	// Start NotifyListener (dedicated connection for LISTEN, bypasses the pool)
	notifyListener := events.NewNotifyListener(dbConfig.ConnString(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	timelineService.SetEventPublisher(eventPublisher)
	slog.Info("Streaming infrastructure initialized")

	// 6. Guardian and tool bridge
	guard := guardian.New(guardian.ConfigFrom(cfg.Guardian, cfg.Scope))
	bridge := tools.NewBridge(guard)
	bridge.UseMasking(maskingService)
	defer func() {
		if err := bridge.Close(); err != nil {
			slog.Error("Error closing tool bridge", "error", err)
		}
	}()

	if err := bridge.RegisterServer(ctx, tools.NewTerminalServer()); err != nil {
		slog.Error("Failed to register terminal server", "error", err)
		os.Exit(1)
	}

	// Eager tool server validation: every configured MCP server must connect
	// at boot — prevents silently broken configs.
	for _, serverID := range cfg.AllToolServerIDs() {
		serverCfg, err := cfg.GetToolServer(serverID)
		if err != nil {
			slog.Error("Tool server lookup failed", "server", serverID, "error", err)
			os.Exit(1)
		}
		server, err := tools.NewMCPServer(ctx, serverID, serverCfg)
		if err != nil {
			slog.Error("Tool server failed startup validation", "server", serverID, "error", err)
			os.Exit(1)
		}
		if err := bridge.RegisterServer(ctx, server); err != nil {
			slog.Error("Failed to register tool server", "server", serverID, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Tool bridge initialized", "servers", len(cfg.AllToolServerIDs())+1)

	// 7. LLM provider router
	providers := cfg.ProvidersByPriority()
	router := llm.NewRouter(providers)
	for _, p := range providers {
		if p.APIKeyEnv != "" && os.Getenv(p.APIKeyEnv) == "" {
			warningsService.AddWarning("llm_provider",
				"provider API key env is not set", p.APIKeyEnv, p.Name)
		}
	}
	slog.Info("LLM router initialized", "providers", len(providers))

	// 8. Team lead executor and worker pool
	executor := queue.NewTeamLeadExecutor(cfg, dbClient.Client, router, bridge, eventPublisher, timelineService)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}
	engagementService.SetPoolCanceler(workerPool)

	// 9. Retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, engagementService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. HTTP server
	httpServer := api.NewServer(api.Deps{
		Config:     cfg,
		DBClient:   dbClient,
		Engagement: engagementService,
		Findings:   findingService,
		Timeline:   timelineService,
		Messages:   messageService,
		Warnings:   warningsService,
		ConnMgr:    connManager,
		Guardian:   guard,
		Router:     router,
		WorkerPool: workerPool,
		APIKey:     os.Getenv("API_KEY"),
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(httpPort); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("RedClaw started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain the pool, then the HTTP server
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete engagements will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
