package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/llminteraction"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/toolinteraction"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/agent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/masking"
	"github.com/google/uuid"
)

// InteractionPublisher pushes interaction.created events to live subscribers.
// Implemented by events.EventPublisher; declared here so the service layer
// depends only on the slice it uses.
type InteractionPublisher interface {
	PublishInteractionCreated(ctx context.Context, engagementID string, payload events.InteractionCreatedPayload) error
}

// TimelineEntry is one item in a merged engagement timeline: an LLM call or
// a tool dispatch, ordered by creation time. Exactly one of LLM/Tool is set.
type TimelineEntry struct {
	Kind string               `json:"kind"` // "llm" or "tool"
	At   time.Time            `json:"at"`
	LLM  *ent.LLMInteraction  `json:"llm,omitempty"`
	Tool *ent.ToolInteraction `json:"tool,omitempty"`
}

// TimelineService persists interaction records and serves the merged
// per-engagement timeline. It is the Recorder the agent runtime writes
// through; all stored content passes the masking service first.
type TimelineService struct {
	client    *ent.Client
	masker    *masking.Service
	publisher InteractionPublisher
}

var _ agent.Recorder = (*TimelineService)(nil)

// NewTimelineService creates a new TimelineService.
func NewTimelineService(client *ent.Client, masker *masking.Service) *TimelineService {
	if client == nil {
		panic("NewTimelineService: client must not be nil")
	}
	if masker == nil {
		panic("NewTimelineService: masker must not be nil")
	}
	return &TimelineService{client: client, masker: masker}
}

// SetEventPublisher wires live event publishing for recorded interactions.
// Optional; without it records are persisted but not streamed.
func (s *TimelineService) SetEventPublisher(pub InteractionPublisher) {
	s.publisher = pub
}

// RecordLLMInteraction persists one router call made by an agent.
func (s *TimelineService) RecordLLMInteraction(ctx context.Context, rec *agent.LLMRecord) error {
	if rec.EngagementID == "" {
		return NewValidationError("engagement_id", "required")
	}
	if rec.AgentID == "" {
		return NewValidationError("agent_id", "required")
	}

	// Detached write context: interactions recorded during engagement
	// teardown must still land.
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.LLMInteraction.Create().
		SetID(uuid.New().String()).
		SetEngagementID(rec.EngagementID).
		SetAgentID(rec.AgentID).
		SetProvider(rec.Provider).
		SetModelName(rec.Model).
		SetToolCallCount(rec.ToolCallCount).
		SetDurationMs(rec.Duration.Milliseconds())

	if rec.Iteration > 0 {
		builder.SetIteration(rec.Iteration)
	}
	if rec.RequestSummary != "" {
		builder.SetRequestSummary(rec.RequestSummary)
	}
	if rec.ResponseContent != "" {
		builder.SetResponseContent(s.masker.MaskText(rec.ResponseContent))
	}
	if rec.Usage.TotalTokens > 0 {
		builder.SetPromptTokens(rec.Usage.PromptTokens).
			SetCompletionTokens(rec.Usage.CompletionTokens).
			SetTotalTokens(rec.Usage.TotalTokens)
	}
	if rec.Error != "" {
		builder.SetErrorMessage(rec.Error)
	}

	row, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// FK failure: the engagement row is gone.
			return ErrNotFound
		}
		return fmt.Errorf("failed to record llm interaction: %w", err)
	}

	s.publishInteraction(writeCtx, rec.EngagementID, row.ID, "llm", rec.AgentID, rec.RequestSummary)
	return nil
}

// RecordToolInteraction persists one tool dispatch made through the bridge.
// The output is masked before storage.
func (s *TimelineService) RecordToolInteraction(ctx context.Context, rec *agent.ToolRecord) error {
	if rec.EngagementID == "" {
		return NewValidationError("engagement_id", "required")
	}
	if rec.AgentID == "" {
		return NewValidationError("agent_id", "required")
	}
	if rec.ToolName == "" {
		return NewValidationError("tool_name", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ToolInteraction.Create().
		SetID(uuid.New().String()).
		SetEngagementID(rec.EngagementID).
		SetAgentID(rec.AgentID).
		SetServerName(rec.ServerName).
		SetToolName(rec.ToolName).
		SetSuccess(rec.Success).
		SetDurationMs(rec.Duration.Milliseconds())

	if rec.Arguments != nil {
		builder.SetArguments(rec.Arguments)
	}
	if rec.Output != "" {
		builder.SetOutput(s.masker.MaskToolResult(rec.Output, rec.ToolName))
	}
	if rec.Error != "" {
		builder.SetErrorMessage(rec.Error)
	}
	if rec.Risk != "" {
		builder.SetRisk(rec.Risk)
	}

	row, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record tool interaction: %w", err)
	}

	summary := rec.ToolName
	if rec.ServerName != "" {
		summary = rec.ServerName + "/" + rec.ToolName
	}
	s.publishInteraction(writeCtx, rec.EngagementID, row.ID, "tool", rec.AgentID, summary)
	return nil
}

// publishInteraction emits an interaction.created event. Best-effort: the
// interaction row is already durable when this runs.
func (s *TimelineService) publishInteraction(ctx context.Context, engagementID, interactionID, kind, agentID, summary string) {
	if s.publisher == nil {
		return
	}

	payload := events.InteractionCreatedPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeInteractionCreated,
			EngagementID: engagementID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		InteractionID: interactionID,
		Kind:          kind,
		AgentID:       agentID,
		Summary:       summary,
	}

	if err := s.publisher.PublishInteractionCreated(ctx, engagementID, payload); err != nil {
		slog.Warn("Failed to publish interaction event",
			"engagement_id", engagementID,
			"interaction_id", interactionID,
			"kind", kind,
			"error", err)
	}
}

// List returns the merged timeline for an engagement, oldest first. An empty
// agentID returns all agents.
func (s *TimelineService) List(ctx context.Context, engagementID, agentID string) ([]TimelineEntry, error) {
	if engagementID == "" {
		return nil, NewValidationError("engagement_id", "required")
	}

	llmQuery := s.client.LLMInteraction.Query().
		Where(llminteraction.EngagementIDEQ(engagementID)).
		Order(ent.Asc(llminteraction.FieldCreatedAt))
	toolQuery := s.client.ToolInteraction.Query().
		Where(toolinteraction.EngagementIDEQ(engagementID)).
		Order(ent.Asc(toolinteraction.FieldCreatedAt))

	if agentID != "" {
		llmQuery = llmQuery.Where(llminteraction.AgentIDEQ(agentID))
		toolQuery = toolQuery.Where(toolinteraction.AgentIDEQ(agentID))
	}

	llmRows, err := llmQuery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query llm interactions: %w", err)
	}
	toolRows, err := toolQuery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tool interactions: %w", err)
	}

	// Merge the two streams; both are already ordered by creation time.
	// On a timestamp tie the LLM call sorts first: it precedes the tool
	// dispatch it requested.
	entries := make([]TimelineEntry, 0, len(llmRows)+len(toolRows))
	i, j := 0, 0
	for i < len(llmRows) && j < len(toolRows) {
		if !toolRows[j].CreatedAt.Before(llmRows[i].CreatedAt) {
			entries = append(entries, TimelineEntry{Kind: "llm", At: llmRows[i].CreatedAt, LLM: llmRows[i]})
			i++
		} else {
			entries = append(entries, TimelineEntry{Kind: "tool", At: toolRows[j].CreatedAt, Tool: toolRows[j]})
			j++
		}
	}
	for ; i < len(llmRows); i++ {
		entries = append(entries, TimelineEntry{Kind: "llm", At: llmRows[i].CreatedAt, LLM: llmRows[i]})
	}
	for ; j < len(toolRows); j++ {
		entries = append(entries, TimelineEntry{Kind: "tool", At: toolRows[j].CreatedAt, Tool: toolRows[j]})
	}

	return entries, nil
}
