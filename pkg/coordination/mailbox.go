package coordination

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/agentmessage"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

// Mailbox delivers durable messages between the agents of one engagement.
// Messages are PostgreSQL rows; membership (who receives broadcasts) is an
// in-memory set maintained by the team lead process. Workers re-register
// after an orphan recovery reseeds the engagement.
type Mailbox struct {
	client       *ent.Client
	engagementID string
	logger       *slog.Logger

	mu      sync.Mutex
	members map[string]struct{}
}

// NewMailbox creates a mailbox scoped to one engagement.
func NewMailbox(client *ent.Client, engagementID string) *Mailbox {
	return &Mailbox{
		client:       client,
		engagementID: engagementID,
		logger:       slog.With("component", "mailbox", "engagement_id", engagementID),
		members:      make(map[string]struct{}),
	}
}

// Register adds an agent to the broadcast membership.
func (m *Mailbox) Register(agentID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[agentID] = struct{}{}
}

// Unregister removes an agent from the broadcast membership. Its unread
// messages remain stored.
func (m *Mailbox) Unregister(agentID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.members, agentID)
}

// Send delivers one message to one agent. The recipient does not need to be
// registered; registration only affects broadcasts.
func (m *Mailbox) Send(ctx context.Context, from, to string, kind models.MessageKind, payload map[string]any) error {
	if !kind.IsValid() {
		return fmt.Errorf("invalid message kind %q", kind)
	}
	if to == "" {
		return fmt.Errorf("recipient is required")
	}

	err := m.client.AgentMessage.Create().
		SetEngagementID(m.engagementID).
		SetFromAgent(from).
		SetToAgent(to).
		SetKind(agentmessage.Kind(kind)).
		SetPayload(payload).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", to, err)
	}
	return nil
}

// Broadcast sends the same message to every registered agent except the
// sender, in one transaction. Returns the number of recipients.
func (m *Mailbox) Broadcast(ctx context.Context, from string, kind models.MessageKind, payload map[string]any) (int, error) {
	if !kind.IsValid() {
		return 0, fmt.Errorf("invalid message kind %q", kind)
	}

	m.mu.Lock()
	recipients := make([]string, 0, len(m.members))
	for member := range m.members {
		if member != from {
			recipients = append(recipients, member)
		}
	}
	m.mu.Unlock()
	sort.Strings(recipients)

	if len(recipients) == 0 {
		return 0, nil
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builders := make([]*ent.AgentMessageCreate, 0, len(recipients))
	for _, to := range recipients {
		builders = append(builders, tx.AgentMessage.Create().
			SetEngagementID(m.engagementID).
			SetFromAgent(from).
			SetToAgent(to).
			SetKind(agentmessage.Kind(kind)).
			SetPayload(payload))
	}
	if _, err := tx.AgentMessage.CreateBulk(builders...).Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to broadcast message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit broadcast: %w", err)
	}

	m.logger.Debug("Broadcast sent", "from", from, "kind", kind, "recipients", len(recipients))
	return len(recipients), nil
}

// Receive returns the agent's unread messages in delivery order. With
// markRead, messages are flagged read in the same transaction that reads
// them, so each message is delivered exactly once.
func (m *Mailbox) Receive(ctx context.Context, agentID string, markRead bool) ([]*ent.AgentMessage, error) {
	if !markRead {
		msgs, err := m.client.AgentMessage.Query().
			Where(
				agentmessage.EngagementIDEQ(m.engagementID),
				agentmessage.ToAgentEQ(agentID),
				agentmessage.ReadEQ(false),
			).
			Order(ent.Asc(agentmessage.FieldID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query messages for %s: %w", agentID, err)
		}
		return msgs, nil
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SKIP LOCKED partitions messages between concurrent receivers of the
	// same mailbox instead of delivering duplicates.
	msgs, err := tx.AgentMessage.Query().
		Where(
			agentmessage.EngagementIDEQ(m.engagementID),
			agentmessage.ToAgentEQ(agentID),
			agentmessage.ReadEQ(false),
		).
		Order(ent.Asc(agentmessage.FieldID)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for %s: %w", agentID, err)
	}
	if len(msgs) == 0 {
		return nil, nil
	}

	ids := make([]int, len(msgs))
	for i, msg := range msgs {
		ids[i] = msg.ID
	}
	_, err = tx.AgentMessage.Update().
		Where(agentmessage.IDIn(ids...)).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit receive: %w", err)
	}
	return msgs, nil
}

// HasMessages reports whether the agent has unread messages.
func (m *Mailbox) HasMessages(ctx context.Context, agentID string) (bool, error) {
	exists, err := m.client.AgentMessage.Query().
		Where(
			agentmessage.EngagementIDEQ(m.engagementID),
			agentmessage.ToAgentEQ(agentID),
			agentmessage.ReadEQ(false),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check messages for %s: %w", agentID, err)
	}
	return exists, nil
}

// Count returns the agent's unread message count.
func (m *Mailbox) Count(ctx context.Context, agentID string) (int, error) {
	n, err := m.client.AgentMessage.Query().
		Where(
			agentmessage.EngagementIDEQ(m.engagementID),
			agentmessage.ToAgentEQ(agentID),
			agentmessage.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages for %s: %w", agentID, err)
	}
	return n, nil
}

// Reset deletes every message of this engagement and clears the membership.
func (m *Mailbox) Reset(ctx context.Context) error {
	_, err := m.client.AgentMessage.Delete().
		Where(agentmessage.EngagementIDEQ(m.engagementID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset mailbox: %w", err)
	}

	m.mu.Lock()
	m.members = make(map[string]struct{})
	m.mu.Unlock()
	return nil
}
