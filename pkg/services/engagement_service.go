package services

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/google/uuid"
)

// CreateEngagementInput contains the domain-level data needed to create an
// engagement. Transformed from the HTTP request by the handler.
type CreateEngagementInput struct {
	Objective     string
	ObjectiveType string
	Scope         map[string]interface{} // scope override; nil = use the configured default at run time
}

// PoolCanceler cancels a running engagement on this replica. Implemented by
// the queue worker pool; wired after both sides exist.
type PoolCanceler interface {
	CancelEngagement(engagementID string) bool
}

// EngagementStats summarizes engagement counts for the dashboard and health
// endpoint.
type EngagementStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// EngagementService handles engagement submission and lifecycle.
type EngagementService struct {
	client *ent.Client
	pool   PoolCanceler
}

// NewEngagementService creates a new EngagementService.
func NewEngagementService(client *ent.Client) *EngagementService {
	if client == nil {
		panic("NewEngagementService: client must not be nil")
	}
	return &EngagementService{client: client}
}

// SetPoolCanceler wires the worker pool for best-effort cancellation of
// running engagements. Called once during startup.
func (s *EngagementService) SetPoolCanceler(pool PoolCanceler) {
	s.pool = pool
}

// Create validates and persists a new engagement in "pending" status. The
// worker pool picks it up from there.
func (s *EngagementService) Create(ctx context.Context, input CreateEngagementInput) (*ent.Engagement, error) {
	if input.Objective == "" {
		return nil, NewValidationError("objective", "required")
	}
	if input.Scope != nil {
		if err := validateScopeMap(input.Scope); err != nil {
			return nil, err
		}
	}

	builder := s.client.Engagement.Create().
		SetID(uuid.New().String()).
		SetObjective(input.Objective)

	if input.ObjectiveType != "" {
		builder.SetObjectiveType(input.ObjectiveType)
	}
	if input.Scope != nil {
		builder.SetScope(input.Scope)
	}

	eng, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create engagement: %w", err)
	}

	return eng, nil
}

// validateScopeMap rejects scope snapshots the guardian could not enforce.
func validateScopeMap(m map[string]interface{}) error {
	scope, err := models.ScopeFromMap(m)
	if err != nil {
		return NewValidationError("scope", fmt.Sprintf("malformed scope: %v", err))
	}
	for _, cidr := range scope.IncludeCIDRs {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return NewValidationError("scope.include_cidrs", fmt.Sprintf("invalid CIDR %q", cidr))
		}
	}
	for _, cidr := range scope.ExcludeCIDRs {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return NewValidationError("scope.exclude_cidrs", fmt.Sprintf("invalid CIDR %q", cidr))
		}
	}
	if scope.RateLimit < 0 {
		return NewValidationError("scope.rate_limit", "must not be negative")
	}
	return nil
}

// Get retrieves an engagement by ID.
func (s *EngagementService) Get(ctx context.Context, engagementID string) (*ent.Engagement, error) {
	eng, err := s.client.Engagement.Query().
		Where(engagement.IDEQ(engagementID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get engagement: %w", err)
	}
	return eng, nil
}

// List lists engagements with filtering and pagination, newest first.
func (s *EngagementService) List(ctx context.Context, filters models.EngagementFilters) (*models.EngagementListResponse, error) {
	query := s.client.Engagement.Query()

	if filters.Status != "" {
		query = query.Where(engagement.StatusEQ(engagement.Status(filters.Status)))
	}
	if filters.ObjectiveType != "" {
		query = query.Where(engagement.ObjectiveTypeEQ(filters.ObjectiveType))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(engagement.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(engagement.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(engagement.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count engagements: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	engagements, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(engagement.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list engagements: %w", err)
	}

	return &models.EngagementListResponse{
		Engagements: engagements,
		TotalCount:  totalCount,
		Limit:       limit,
		Offset:      offset,
	}, nil
}

// Cancel stops an engagement. Pending engagements flip to cancelled
// directly; in-progress ones get a best-effort context cancellation through
// the worker pool, and the executor persists the terminal status.
func (s *EngagementService) Cancel(ctx context.Context, engagementID string) error {
	eng, err := s.Get(ctx, engagementID)
	if err != nil {
		return err
	}

	switch eng.Status {
	case engagement.StatusPending:
		// Conditional update: a worker may claim the row between the read
		// and this write. count==0 means it did; fall through to the pool.
		writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		count, err := s.client.Engagement.Update().
			Where(
				engagement.IDEQ(engagementID),
				engagement.StatusEQ(engagement.StatusPending),
			).
			SetStatus(engagement.StatusCancelled).
			SetCompletedAt(time.Now()).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to cancel pending engagement: %w", err)
		}
		if count > 0 {
			return nil
		}
		return s.cancelRunning(engagementID)

	case engagement.StatusInProgress:
		return s.cancelRunning(engagementID)

	default:
		return NewValidationError("status", fmt.Sprintf("engagement is already %s", eng.Status))
	}
}

func (s *EngagementService) cancelRunning(engagementID string) error {
	if s.pool != nil && s.pool.CancelEngagement(engagementID) {
		return nil
	}
	return fmt.Errorf("engagement %s is in progress on another replica: %w",
		engagementID, ErrNotCancellable)
}

// Delete soft-deletes an engagement. Running engagements must be cancelled
// first; the retention cleanup purges soft-deleted rows for good.
func (s *EngagementService) Delete(ctx context.Context, engagementID string) error {
	eng, err := s.Get(ctx, engagementID)
	if err != nil {
		return err
	}
	if eng.Status == engagement.StatusInProgress {
		return NewValidationError("status", "cannot delete a running engagement; cancel it first")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.client.Engagement.UpdateOneID(engagementID).
		SetDeletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to soft delete engagement: %w", err)
	}
	return nil
}

// Stats returns engagement counts grouped by status, excluding soft-deleted
// rows.
func (s *EngagementService) Stats(ctx context.Context) (*EngagementStats, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Engagement.Query().
		Where(engagement.DeletedAtIsNil()).
		GroupBy(engagement.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate engagement stats: %w", err)
	}

	stats := &EngagementStats{ByStatus: make(map[string]int, len(rows))}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
	}
	return stats, nil
}

// SoftDeleteOldEngagements soft-deletes terminal engagements older than
// retentionDays. Idempotent and safe across replicas; rows already marked
// are skipped. Returns the number of rows marked this pass.
func (s *EngagementService) SoftDeleteOldEngagements(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Engagement.Update().
		Where(
			engagement.StatusIn(
				engagement.StatusCompleted,
				engagement.StatusFailed,
				engagement.StatusCancelled,
				engagement.StatusTimedOut,
			),
			engagement.CreatedAtLT(cutoff),
			engagement.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete old engagements: %w", err)
	}
	return count, nil
}
