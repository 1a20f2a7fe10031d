package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/finding"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/google/uuid"
)

// FindingInput contains the domain-level data for one reported finding.
type FindingInput struct {
	Phase       string
	Title       string
	Severity    models.Severity
	Description string
	Evidence    []string
	Metadata    map[string]interface{}
	AgentID     string
}

// FindingService manages engagement findings.
type FindingService struct {
	client *ent.Client
}

// NewFindingService creates a new FindingService.
func NewFindingService(client *ent.Client) *FindingService {
	if client == nil {
		panic("NewFindingService: client must not be nil")
	}
	return &FindingService{client: client}
}

// Add validates and persists a finding. Detached write context: findings
// reported during engagement teardown must still land.
func (s *FindingService) Add(ctx context.Context, engagementID string, input FindingInput) (*ent.Finding, error) {
	if engagementID == "" {
		return nil, NewValidationError("engagement_id", "required")
	}
	if input.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if !input.Severity.IsValid() {
		return nil, NewValidationError("severity", fmt.Sprintf("unknown severity %q", input.Severity))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Finding.Create().
		SetID(uuid.New().String()).
		SetEngagementID(engagementID).
		SetTitle(input.Title).
		SetSeverity(finding.Severity(input.Severity))

	if input.Phase != "" {
		builder.SetPhase(input.Phase)
	}
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	if len(input.Evidence) > 0 {
		builder.SetEvidence(input.Evidence)
	}
	if input.Metadata != nil {
		builder.SetMetadata(input.Metadata)
	}
	if input.AgentID != "" {
		builder.SetAgentID(input.AgentID)
	}

	row, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// FK failure: the engagement row is gone.
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create finding: %w", err)
	}
	return row, nil
}

// List returns an engagement's findings in chronological order, optionally
// filtered by severity.
func (s *FindingService) List(ctx context.Context, engagementID, severity string) ([]*ent.Finding, error) {
	query := s.client.Finding.Query().
		Where(finding.EngagementIDEQ(engagementID))

	if severity != "" {
		if !models.Severity(severity).IsValid() {
			return nil, NewValidationError("severity", fmt.Sprintf("unknown severity %q", severity))
		}
		query = query.Where(finding.SeverityEQ(finding.Severity(severity)))
	}

	rows, err := query.
		Order(ent.Asc(finding.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list findings: %w", err)
	}
	return rows, nil
}

// CountBySeverity returns finding counts keyed by severity value. Severities
// with no findings are absent from the map.
func (s *FindingService) CountBySeverity(ctx context.Context, engagementID string) (map[string]int, error) {
	var rows []struct {
		Severity string `json:"severity"`
		Count    int    `json:"count"`
	}
	err := s.client.Finding.Query().
		Where(finding.EngagementIDEQ(engagementID)).
		GroupBy(finding.FieldSeverity).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count findings by severity: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Severity] = row.Count
	}
	return counts, nil
}
