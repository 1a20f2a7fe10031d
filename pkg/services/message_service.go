package services

import (
	"context"
	"fmt"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/agentmessage"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

// MessageFilters narrows mailbox listings for the API.
type MessageFilters struct {
	Agent  string // matches either sender or recipient
	Kind   string
	Unread bool // only rows not yet delivered
	Limit  int
}

// MessageService is the read view over the durable agent mailbox. Agents
// write and consume through coordination.Mailbox; this service only serves
// the dashboard's coordination-traffic view and post-mortem queries.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	if client == nil {
		panic("NewMessageService: client must not be nil")
	}
	return &MessageService{client: client}
}

// List returns an engagement's coordination messages in send order.
func (s *MessageService) List(ctx context.Context, engagementID string, filters MessageFilters) ([]*ent.AgentMessage, error) {
	if engagementID == "" {
		return nil, NewValidationError("engagement_id", "required")
	}
	if filters.Kind != "" && !models.MessageKind(filters.Kind).IsValid() {
		return nil, NewValidationError("kind", fmt.Sprintf("unknown message kind %q", filters.Kind))
	}

	query := s.client.AgentMessage.Query().
		Where(agentmessage.EngagementIDEQ(engagementID))

	if filters.Agent != "" {
		query = query.Where(agentmessage.Or(
			agentmessage.FromAgentEQ(filters.Agent),
			agentmessage.ToAgentEQ(filters.Agent),
		))
	}
	if filters.Kind != "" {
		query = query.Where(agentmessage.KindEQ(agentmessage.Kind(filters.Kind)))
	}
	if filters.Unread {
		query = query.Where(agentmessage.ReadEQ(false))
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 200
	}

	rows, err := query.
		Order(ent.Asc(agentmessage.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent messages: %w", err)
	}
	return rows, nil
}

// CountByKind returns message counts keyed by kind for one engagement.
func (s *MessageService) CountByKind(ctx context.Context, engagementID string) (map[string]int, error) {
	var rows []struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
	}
	err := s.client.AgentMessage.Query().
		Where(agentmessage.EngagementIDEQ(engagementID)).
		GroupBy(agentmessage.FieldKind).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count agent messages: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}
	return counts, nil
}
