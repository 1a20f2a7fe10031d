// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes terminal engagements past the retention window
//   - Removes Event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config            *config.RetentionConfig
	engagementService *services.EngagementService
	eventService      *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	engagementService *services.EngagementService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:            cfg,
		engagementService: engagementService,
		eventService:      eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"engagement_retention_days", s.config.EngagementRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldEngagements(ctx)
	s.cleanupExpiredEvents(ctx)
}

func (s *Service) softDeleteOldEngagements(_ context.Context) {
	count, err := s.engagementService.SoftDeleteOldEngagements(context.Background(), s.config.EngagementRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete engagements failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old engagements", "count", count)
	}
}

func (s *Service) cleanupExpiredEvents(_ context.Context) {
	count, err := s.eventService.CleanupExpiredEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired events", "count", count)
	}
}
