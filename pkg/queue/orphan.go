package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
)

// orphanState tracks orphan recovery metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanRecovery periodically scans for orphaned engagements.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanRecovery(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan recovery failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress engagements with stale heartbeats
// and returns them to the queue so another pod can pick them up.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Engagement.Query().
		Where(
			engagement.StatusEQ(engagement.StatusInProgress),
			engagement.LastInteractionAtNotNil(),
			engagement.LastInteractionAtLT(threshold),
			engagement.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned engagements: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned engagements", "count", len(orphans))

	recovered := 0
	for _, orphan := range orphans {
		if err := recoverOrphanedEngagement(ctx, p.client, orphan); err != nil {
			slog.Error("Failed to recover orphaned engagement",
				"engagement_id", orphan.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedEngagement returns one orphaned engagement to the queue:
// the row goes back to pending and its running tasks are requeued, so the
// next claimer's team lead reseeds workers from the persisted task graph.
func recoverOrphanedEngagement(ctx context.Context, client *ent.Client, orphan *ent.Engagement) error {
	lastHeartbeat := "unknown"
	if orphan.LastInteractionAt != nil {
		lastHeartbeat = orphan.LastInteractionAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if orphan.PodID != nil {
		podID = *orphan.PodID
	}

	err := orphan.Update().
		SetStatus(engagement.StatusPending).
		ClearPodID().
		ClearStartedAt().
		ClearLastInteractionAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-pend engagement: %w", err)
	}

	// Running tasks go back to pending so they can be claimed again.
	requeued, err := coordination.NewTaskQueue(client, orphan.ID).RequeueRunning(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue running tasks: %w", err)
	}

	slog.Warn("Orphaned engagement returned to queue",
		"engagement_id", orphan.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat,
		"tasks_requeued", requeued)
	return nil
}

// CleanupStartupOrphans recovers engagements owned by this pod that were
// in_progress when the pod previously crashed. Called once during startup,
// before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Engagement.Query().
		Where(
			engagement.StatusEQ(engagement.StatusInProgress),
			engagement.PodIDEQ(podID),
			engagement.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, orphan := range orphans {
		if err := recoverOrphanedEngagement(ctx, client, orphan); err != nil {
			slog.Error("Failed to recover startup orphan",
				"engagement_id", orphan.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan returned to queue", "engagement_id", orphan.ID)
	}

	return nil
}
