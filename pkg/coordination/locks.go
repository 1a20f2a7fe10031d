package coordination

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/resourcelock"
)

const (
	// defaultStaleThreshold is how long a lock may sit untouched before any
	// caller may reclaim it. Crashed workers never release their locks, so
	// reclaim is the only way those resources come back.
	defaultStaleThreshold = 600 * time.Second

	// defaultPollInterval is the wait between acquisition attempts while a
	// resource is held by a live owner.
	defaultPollInterval = 500 * time.Millisecond
)

// LockManager provides advisory locks over named external resources (e.g.
// "nmap_10.0.0.5") so concurrent workers do not hammer one target. The
// unique constraint on the resource column is the exclusivity mechanism:
// acquisition is an INSERT that loses on conflict.
type LockManager struct {
	client         *ent.Client
	engagementID   string
	staleThreshold time.Duration
	pollInterval   time.Duration
	logger         *slog.Logger
}

// NewLockManager creates a lock manager scoped to one engagement.
func NewLockManager(client *ent.Client, engagementID string) *LockManager {
	return &LockManager{
		client:         client,
		engagementID:   engagementID,
		staleThreshold: defaultStaleThreshold,
		pollInterval:   defaultPollInterval,
		logger:         slog.With("component", "lock_manager", "engagement_id", engagementID),
	}
}

// Acquire tries to take the lock on resource for agentID, polling until it
// succeeds or timeout elapses. Locks held longer than the stale threshold
// are reclaimed. Returns false when the lock could not be obtained in time;
// the error return is reserved for database failures.
func (l *LockManager) Acquire(ctx context.Context, resource, agentID string, timeout time.Duration) (bool, error) {
	deadline := time.Now().Add(timeout)

	for {
		err := l.client.ResourceLock.Create().
			SetResource(resource).
			SetEngagementID(l.engagementID).
			SetOwner(agentID).
			SetAcquiredAt(time.Now()).
			Exec(ctx)
		if err == nil {
			l.logger.Debug("Lock acquired", "resource", resource, "owner", agentID)
			return true, nil
		}
		if !ent.IsConstraintError(err) {
			return false, fmt.Errorf("failed to insert lock %s: %w", resource, err)
		}

		// Resource is held. Read the holder to decide between reclaiming
		// and waiting.
		holder, err := l.client.ResourceLock.Query().
			Where(resourcelock.ResourceEQ(resource)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue // released between insert and read; retry immediately
			}
			return false, fmt.Errorf("failed to read lock %s: %w", resource, err)
		}

		if time.Since(holder.AcquiredAt) > l.staleThreshold {
			// Delete conditioned on acquired_at being unchanged, so if
			// someone else reclaims and re-acquires first we do not
			// clobber their fresh lock.
			n, err := l.client.ResourceLock.Delete().
				Where(
					resourcelock.IDEQ(holder.ID),
					resourcelock.AcquiredAtEQ(holder.AcquiredAt),
				).
				Exec(ctx)
			if err != nil {
				return false, fmt.Errorf("failed to reclaim stale lock %s: %w", resource, err)
			}
			if n > 0 {
				l.logger.Warn("Reclaimed stale lock",
					"resource", resource,
					"previous_owner", holder.Owner,
					"held_for", time.Since(holder.AcquiredAt).Round(time.Second))
			}
			continue // retry immediately
		}

		if time.Now().After(deadline) {
			return false, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(l.pollInterval):
		}
	}
}

// Release frees the lock if agentID holds it. Returns false when the lock
// was not held by agentID (already released, reclaimed, or never acquired).
func (l *LockManager) Release(ctx context.Context, resource, agentID string) (bool, error) {
	n, err := l.client.ResourceLock.Delete().
		Where(
			resourcelock.ResourceEQ(resource),
			resourcelock.OwnerEQ(agentID),
		).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to release lock %s: %w", resource, err)
	}
	if n > 0 {
		l.logger.Debug("Lock released", "resource", resource, "owner", agentID)
	}
	return n > 0, nil
}

// IsLocked reports whether any agent currently holds the resource.
func (l *LockManager) IsLocked(ctx context.Context, resource string) (bool, error) {
	exists, err := l.client.ResourceLock.Query().
		Where(resourcelock.ResourceEQ(resource)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check lock %s: %w", resource, err)
	}
	return exists, nil
}

// Owner returns the agent holding the resource, or "" when unheld.
func (l *LockManager) Owner(ctx context.Context, resource string) (string, error) {
	holder, err := l.client.ResourceLock.Query().
		Where(resourcelock.ResourceEQ(resource)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read lock %s: %w", resource, err)
	}
	return holder.Owner, nil
}

// ReleaseAll frees every lock of this engagement. Called during engagement
// cleanup so no resource stays locked after the team shuts down.
func (l *LockManager) ReleaseAll(ctx context.Context) (int, error) {
	n, err := l.client.ResourceLock.Delete().
		Where(resourcelock.EngagementIDEQ(l.engagementID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to release engagement locks: %w", err)
	}
	if n > 0 {
		l.logger.Info("Released all engagement locks", "count", n)
	}
	return n, nil
}
