// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/agentmessage"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/event"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/finding"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/llminteraction"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/predicate"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/resourcelock"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/toolinteraction"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentMessage    = "AgentMessage"
	TypeEngagement      = "Engagement"
	TypeEvent           = "Event"
	TypeFinding         = "Finding"
	TypeLLMInteraction  = "LLMInteraction"
	TypeResourceLock    = "ResourceLock"
	TypeTask            = "Task"
	TypeToolInteraction = "ToolInteraction"
)

// AgentMessageMutation represents an operation that mutates the AgentMessage nodes in the graph.
type AgentMessageMutation struct {
	config
	op                Op
	typ               string
	id                *int
	from_agent        *string
	to_agent          *string
	kind              *agentmessage.Kind
	payload           *map[string]interface{}
	read              *bool
	sent_at           *time.Time
	read_at           *time.Time
	clearedFields     map[string]struct{}
	engagement        *string
	clearedengagement bool
	done              bool
	oldValue          func(context.Context) (*AgentMessage, error)
	predicates        []predicate.AgentMessage
}

var _ ent.Mutation = (*AgentMessageMutation)(nil)

// agentmessageOption allows management of the mutation configuration using functional options.
type agentmessageOption func(*AgentMessageMutation)

// newAgentMessageMutation creates new mutation for the AgentMessage entity.
func newAgentMessageMutation(c config, op Op, opts ...agentmessageOption) *AgentMessageMutation {
	m := &AgentMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentMessageID sets the ID field of the mutation.
func withAgentMessageID(id int) agentmessageOption {
	return func(m *AgentMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentMessage
		)
		m.oldValue = func(ctx context.Context) (*AgentMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentMessage sets the old AgentMessage of the mutation.
func withAgentMessage(node *AgentMessage) agentmessageOption {
	return func(m *AgentMessageMutation) {
		m.oldValue = func(context.Context) (*AgentMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngagementID sets the "engagement_id" field.
func (m *AgentMessageMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *AgentMessageMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *AgentMessageMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetFromAgent sets the "from_agent" field.
func (m *AgentMessageMutation) SetFromAgent(s string) {
	m.from_agent = &s
}

// FromAgent returns the value of the "from_agent" field in the mutation.
func (m *AgentMessageMutation) FromAgent() (r string, exists bool) {
	v := m.from_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAgent returns the old "from_agent" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldFromAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAgent: %w", err)
	}
	return oldValue.FromAgent, nil
}

// ResetFromAgent resets all changes to the "from_agent" field.
func (m *AgentMessageMutation) ResetFromAgent() {
	m.from_agent = nil
}

// SetToAgent sets the "to_agent" field.
func (m *AgentMessageMutation) SetToAgent(s string) {
	m.to_agent = &s
}

// ToAgent returns the value of the "to_agent" field in the mutation.
func (m *AgentMessageMutation) ToAgent() (r string, exists bool) {
	v := m.to_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldToAgent returns the old "to_agent" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldToAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToAgent: %w", err)
	}
	return oldValue.ToAgent, nil
}

// ResetToAgent resets all changes to the "to_agent" field.
func (m *AgentMessageMutation) ResetToAgent() {
	m.to_agent = nil
}

// SetKind sets the "kind" field.
func (m *AgentMessageMutation) SetKind(a agentmessage.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AgentMessageMutation) Kind() (r agentmessage.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldKind(ctx context.Context) (v agentmessage.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AgentMessageMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *AgentMessageMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AgentMessageMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *AgentMessageMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[agentmessage.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *AgentMessageMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[agentmessage.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *AgentMessageMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, agentmessage.FieldPayload)
}

// SetRead sets the "read" field.
func (m *AgentMessageMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *AgentMessageMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *AgentMessageMutation) ResetRead() {
	m.read = nil
}

// SetSentAt sets the "sent_at" field.
func (m *AgentMessageMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *AgentMessageMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *AgentMessageMutation) ResetSentAt() {
	m.sent_at = nil
}

// SetReadAt sets the "read_at" field.
func (m *AgentMessageMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *AgentMessageMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *AgentMessageMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[agentmessage.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *AgentMessageMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[agentmessage.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *AgentMessageMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, agentmessage.FieldReadAt)
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *AgentMessageMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[agentmessage.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *AgentMessageMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *AgentMessageMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *AgentMessageMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the AgentMessageMutation builder.
func (m *AgentMessageMutation) Where(ps ...predicate.AgentMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentMessage).
func (m *AgentMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.engagement != nil {
		fields = append(fields, agentmessage.FieldEngagementID)
	}
	if m.from_agent != nil {
		fields = append(fields, agentmessage.FieldFromAgent)
	}
	if m.to_agent != nil {
		fields = append(fields, agentmessage.FieldToAgent)
	}
	if m.kind != nil {
		fields = append(fields, agentmessage.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, agentmessage.FieldPayload)
	}
	if m.read != nil {
		fields = append(fields, agentmessage.FieldRead)
	}
	if m.sent_at != nil {
		fields = append(fields, agentmessage.FieldSentAt)
	}
	if m.read_at != nil {
		fields = append(fields, agentmessage.FieldReadAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentmessage.FieldEngagementID:
		return m.EngagementID()
	case agentmessage.FieldFromAgent:
		return m.FromAgent()
	case agentmessage.FieldToAgent:
		return m.ToAgent()
	case agentmessage.FieldKind:
		return m.Kind()
	case agentmessage.FieldPayload:
		return m.Payload()
	case agentmessage.FieldRead:
		return m.Read()
	case agentmessage.FieldSentAt:
		return m.SentAt()
	case agentmessage.FieldReadAt:
		return m.ReadAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentmessage.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case agentmessage.FieldFromAgent:
		return m.OldFromAgent(ctx)
	case agentmessage.FieldToAgent:
		return m.OldToAgent(ctx)
	case agentmessage.FieldKind:
		return m.OldKind(ctx)
	case agentmessage.FieldPayload:
		return m.OldPayload(ctx)
	case agentmessage.FieldRead:
		return m.OldRead(ctx)
	case agentmessage.FieldSentAt:
		return m.OldSentAt(ctx)
	case agentmessage.FieldReadAt:
		return m.OldReadAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentmessage.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case agentmessage.FieldFromAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAgent(v)
		return nil
	case agentmessage.FieldToAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToAgent(v)
		return nil
	case agentmessage.FieldKind:
		v, ok := value.(agentmessage.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case agentmessage.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case agentmessage.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case agentmessage.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case agentmessage.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentmessage.FieldPayload) {
		fields = append(fields, agentmessage.FieldPayload)
	}
	if m.FieldCleared(agentmessage.FieldReadAt) {
		fields = append(fields, agentmessage.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMessageMutation) ClearField(name string) error {
	switch name {
	case agentmessage.FieldPayload:
		m.ClearPayload()
		return nil
	case agentmessage.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMessageMutation) ResetField(name string) error {
	switch name {
	case agentmessage.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case agentmessage.FieldFromAgent:
		m.ResetFromAgent()
		return nil
	case agentmessage.FieldToAgent:
		m.ResetToAgent()
		return nil
	case agentmessage.FieldKind:
		m.ResetKind()
		return nil
	case agentmessage.FieldPayload:
		m.ResetPayload()
		return nil
	case agentmessage.FieldRead:
		m.ResetRead()
		return nil
	case agentmessage.FieldSentAt:
		m.ResetSentAt()
		return nil
	case agentmessage.FieldReadAt:
		m.ResetReadAt()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, agentmessage.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentmessage.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, agentmessage.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case agentmessage.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMessageMutation) ClearEdge(name string) error {
	switch name {
	case agentmessage.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMessageMutation) ResetEdge(name string) error {
	switch name {
	case agentmessage.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage edge %s", name)
}

// EngagementMutation represents an operation that mutates the Engagement nodes in the graph.
type EngagementMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	objective                *string
	objective_type           *string
	scope                    *map[string]interface{}
	status                   *engagement.Status
	created_at               *time.Time
	started_at               *time.Time
	completed_at             *time.Time
	error_message            *string
	final_report             *string
	executive_summary        *string
	stats                    *map[string]interface{}
	pod_id                   *string
	last_interaction_at      *time.Time
	deleted_at               *time.Time
	clearedFields            map[string]struct{}
	tasks                    map[string]struct{}
	removedtasks             map[string]struct{}
	clearedtasks             bool
	agent_messages           map[int]struct{}
	removedagent_messages    map[int]struct{}
	clearedagent_messages    bool
	locks                    map[int]struct{}
	removedlocks             map[int]struct{}
	clearedlocks             bool
	findings                 map[string]struct{}
	removedfindings          map[string]struct{}
	clearedfindings          bool
	llm_interactions         map[string]struct{}
	removedllm_interactions  map[string]struct{}
	clearedllm_interactions  bool
	tool_interactions        map[string]struct{}
	removedtool_interactions map[string]struct{}
	clearedtool_interactions bool
	events                   map[int]struct{}
	removedevents            map[int]struct{}
	clearedevents            bool
	done                     bool
	oldValue                 func(context.Context) (*Engagement, error)
	predicates               []predicate.Engagement
}

var _ ent.Mutation = (*EngagementMutation)(nil)

// engagementOption allows management of the mutation configuration using functional options.
type engagementOption func(*EngagementMutation)

// newEngagementMutation creates new mutation for the Engagement entity.
func newEngagementMutation(c config, op Op, opts ...engagementOption) *EngagementMutation {
	m := &EngagementMutation{
		config:        c,
		op:            op,
		typ:           TypeEngagement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEngagementID sets the ID field of the mutation.
func withEngagementID(id string) engagementOption {
	return func(m *EngagementMutation) {
		var (
			err   error
			once  sync.Once
			value *Engagement
		)
		m.oldValue = func(ctx context.Context) (*Engagement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Engagement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEngagement sets the old Engagement of the mutation.
func withEngagement(node *Engagement) engagementOption {
	return func(m *EngagementMutation) {
		m.oldValue = func(context.Context) (*Engagement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EngagementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EngagementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Engagement entities.
func (m *EngagementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EngagementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EngagementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Engagement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetObjective sets the "objective" field.
func (m *EngagementMutation) SetObjective(s string) {
	m.objective = &s
}

// Objective returns the value of the "objective" field in the mutation.
func (m *EngagementMutation) Objective() (r string, exists bool) {
	v := m.objective
	if v == nil {
		return
	}
	return *v, true
}

// OldObjective returns the old "objective" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldObjective(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjective is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjective requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjective: %w", err)
	}
	return oldValue.Objective, nil
}

// ResetObjective resets all changes to the "objective" field.
func (m *EngagementMutation) ResetObjective() {
	m.objective = nil
}

// SetObjectiveType sets the "objective_type" field.
func (m *EngagementMutation) SetObjectiveType(s string) {
	m.objective_type = &s
}

// ObjectiveType returns the value of the "objective_type" field in the mutation.
func (m *EngagementMutation) ObjectiveType() (r string, exists bool) {
	v := m.objective_type
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectiveType returns the old "objective_type" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldObjectiveType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectiveType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectiveType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectiveType: %w", err)
	}
	return oldValue.ObjectiveType, nil
}

// ClearObjectiveType clears the value of the "objective_type" field.
func (m *EngagementMutation) ClearObjectiveType() {
	m.objective_type = nil
	m.clearedFields[engagement.FieldObjectiveType] = struct{}{}
}

// ObjectiveTypeCleared returns if the "objective_type" field was cleared in this mutation.
func (m *EngagementMutation) ObjectiveTypeCleared() bool {
	_, ok := m.clearedFields[engagement.FieldObjectiveType]
	return ok
}

// ResetObjectiveType resets all changes to the "objective_type" field.
func (m *EngagementMutation) ResetObjectiveType() {
	m.objective_type = nil
	delete(m.clearedFields, engagement.FieldObjectiveType)
}

// SetScope sets the "scope" field.
func (m *EngagementMutation) SetScope(value map[string]interface{}) {
	m.scope = &value
}

// Scope returns the value of the "scope" field in the mutation.
func (m *EngagementMutation) Scope() (r map[string]interface{}, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldScope(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ClearScope clears the value of the "scope" field.
func (m *EngagementMutation) ClearScope() {
	m.scope = nil
	m.clearedFields[engagement.FieldScope] = struct{}{}
}

// ScopeCleared returns if the "scope" field was cleared in this mutation.
func (m *EngagementMutation) ScopeCleared() bool {
	_, ok := m.clearedFields[engagement.FieldScope]
	return ok
}

// ResetScope resets all changes to the "scope" field.
func (m *EngagementMutation) ResetScope() {
	m.scope = nil
	delete(m.clearedFields, engagement.FieldScope)
}

// SetStatus sets the "status" field.
func (m *EngagementMutation) SetStatus(e engagement.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EngagementMutation) Status() (r engagement.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldStatus(ctx context.Context) (v engagement.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EngagementMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EngagementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EngagementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EngagementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *EngagementMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *EngagementMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *EngagementMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[engagement.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *EngagementMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *EngagementMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, engagement.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *EngagementMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *EngagementMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *EngagementMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[engagement.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *EngagementMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *EngagementMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, engagement.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *EngagementMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *EngagementMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *EngagementMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[engagement.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *EngagementMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[engagement.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *EngagementMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, engagement.FieldErrorMessage)
}

// SetFinalReport sets the "final_report" field.
func (m *EngagementMutation) SetFinalReport(s string) {
	m.final_report = &s
}

// FinalReport returns the value of the "final_report" field in the mutation.
func (m *EngagementMutation) FinalReport() (r string, exists bool) {
	v := m.final_report
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalReport returns the old "final_report" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldFinalReport(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalReport: %w", err)
	}
	return oldValue.FinalReport, nil
}

// ClearFinalReport clears the value of the "final_report" field.
func (m *EngagementMutation) ClearFinalReport() {
	m.final_report = nil
	m.clearedFields[engagement.FieldFinalReport] = struct{}{}
}

// FinalReportCleared returns if the "final_report" field was cleared in this mutation.
func (m *EngagementMutation) FinalReportCleared() bool {
	_, ok := m.clearedFields[engagement.FieldFinalReport]
	return ok
}

// ResetFinalReport resets all changes to the "final_report" field.
func (m *EngagementMutation) ResetFinalReport() {
	m.final_report = nil
	delete(m.clearedFields, engagement.FieldFinalReport)
}

// SetExecutiveSummary sets the "executive_summary" field.
func (m *EngagementMutation) SetExecutiveSummary(s string) {
	m.executive_summary = &s
}

// ExecutiveSummary returns the value of the "executive_summary" field in the mutation.
func (m *EngagementMutation) ExecutiveSummary() (r string, exists bool) {
	v := m.executive_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutiveSummary returns the old "executive_summary" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldExecutiveSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutiveSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutiveSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutiveSummary: %w", err)
	}
	return oldValue.ExecutiveSummary, nil
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (m *EngagementMutation) ClearExecutiveSummary() {
	m.executive_summary = nil
	m.clearedFields[engagement.FieldExecutiveSummary] = struct{}{}
}

// ExecutiveSummaryCleared returns if the "executive_summary" field was cleared in this mutation.
func (m *EngagementMutation) ExecutiveSummaryCleared() bool {
	_, ok := m.clearedFields[engagement.FieldExecutiveSummary]
	return ok
}

// ResetExecutiveSummary resets all changes to the "executive_summary" field.
func (m *EngagementMutation) ResetExecutiveSummary() {
	m.executive_summary = nil
	delete(m.clearedFields, engagement.FieldExecutiveSummary)
}

// SetStats sets the "stats" field.
func (m *EngagementMutation) SetStats(value map[string]interface{}) {
	m.stats = &value
}

// Stats returns the value of the "stats" field in the mutation.
func (m *EngagementMutation) Stats() (r map[string]interface{}, exists bool) {
	v := m.stats
	if v == nil {
		return
	}
	return *v, true
}

// OldStats returns the old "stats" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldStats(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStats: %w", err)
	}
	return oldValue.Stats, nil
}

// ClearStats clears the value of the "stats" field.
func (m *EngagementMutation) ClearStats() {
	m.stats = nil
	m.clearedFields[engagement.FieldStats] = struct{}{}
}

// StatsCleared returns if the "stats" field was cleared in this mutation.
func (m *EngagementMutation) StatsCleared() bool {
	_, ok := m.clearedFields[engagement.FieldStats]
	return ok
}

// ResetStats resets all changes to the "stats" field.
func (m *EngagementMutation) ResetStats() {
	m.stats = nil
	delete(m.clearedFields, engagement.FieldStats)
}

// SetPodID sets the "pod_id" field.
func (m *EngagementMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *EngagementMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *EngagementMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[engagement.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *EngagementMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[engagement.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *EngagementMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, engagement.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *EngagementMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *EngagementMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *EngagementMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[engagement.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *EngagementMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *EngagementMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, engagement.FieldLastInteractionAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *EngagementMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *EngagementMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *EngagementMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[engagement.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *EngagementMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[engagement.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *EngagementMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, engagement.FieldDeletedAt)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *EngagementMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *EngagementMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *EngagementMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *EngagementMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *EngagementMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *EngagementMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *EngagementMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddAgentMessageIDs adds the "agent_messages" edge to the AgentMessage entity by ids.
func (m *EngagementMutation) AddAgentMessageIDs(ids ...int) {
	if m.agent_messages == nil {
		m.agent_messages = make(map[int]struct{})
	}
	for i := range ids {
		m.agent_messages[ids[i]] = struct{}{}
	}
}

// ClearAgentMessages clears the "agent_messages" edge to the AgentMessage entity.
func (m *EngagementMutation) ClearAgentMessages() {
	m.clearedagent_messages = true
}

// AgentMessagesCleared reports if the "agent_messages" edge to the AgentMessage entity was cleared.
func (m *EngagementMutation) AgentMessagesCleared() bool {
	return m.clearedagent_messages
}

// RemoveAgentMessageIDs removes the "agent_messages" edge to the AgentMessage entity by IDs.
func (m *EngagementMutation) RemoveAgentMessageIDs(ids ...int) {
	if m.removedagent_messages == nil {
		m.removedagent_messages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agent_messages, ids[i])
		m.removedagent_messages[ids[i]] = struct{}{}
	}
}

// RemovedAgentMessages returns the removed IDs of the "agent_messages" edge to the AgentMessage entity.
func (m *EngagementMutation) RemovedAgentMessagesIDs() (ids []int) {
	for id := range m.removedagent_messages {
		ids = append(ids, id)
	}
	return
}

// AgentMessagesIDs returns the "agent_messages" edge IDs in the mutation.
func (m *EngagementMutation) AgentMessagesIDs() (ids []int) {
	for id := range m.agent_messages {
		ids = append(ids, id)
	}
	return
}

// ResetAgentMessages resets all changes to the "agent_messages" edge.
func (m *EngagementMutation) ResetAgentMessages() {
	m.agent_messages = nil
	m.clearedagent_messages = false
	m.removedagent_messages = nil
}

// AddLockIDs adds the "locks" edge to the ResourceLock entity by ids.
func (m *EngagementMutation) AddLockIDs(ids ...int) {
	if m.locks == nil {
		m.locks = make(map[int]struct{})
	}
	for i := range ids {
		m.locks[ids[i]] = struct{}{}
	}
}

// ClearLocks clears the "locks" edge to the ResourceLock entity.
func (m *EngagementMutation) ClearLocks() {
	m.clearedlocks = true
}

// LocksCleared reports if the "locks" edge to the ResourceLock entity was cleared.
func (m *EngagementMutation) LocksCleared() bool {
	return m.clearedlocks
}

// RemoveLockIDs removes the "locks" edge to the ResourceLock entity by IDs.
func (m *EngagementMutation) RemoveLockIDs(ids ...int) {
	if m.removedlocks == nil {
		m.removedlocks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.locks, ids[i])
		m.removedlocks[ids[i]] = struct{}{}
	}
}

// RemovedLocks returns the removed IDs of the "locks" edge to the ResourceLock entity.
func (m *EngagementMutation) RemovedLocksIDs() (ids []int) {
	for id := range m.removedlocks {
		ids = append(ids, id)
	}
	return
}

// LocksIDs returns the "locks" edge IDs in the mutation.
func (m *EngagementMutation) LocksIDs() (ids []int) {
	for id := range m.locks {
		ids = append(ids, id)
	}
	return
}

// ResetLocks resets all changes to the "locks" edge.
func (m *EngagementMutation) ResetLocks() {
	m.locks = nil
	m.clearedlocks = false
	m.removedlocks = nil
}

// AddFindingIDs adds the "findings" edge to the Finding entity by ids.
func (m *EngagementMutation) AddFindingIDs(ids ...string) {
	if m.findings == nil {
		m.findings = make(map[string]struct{})
	}
	for i := range ids {
		m.findings[ids[i]] = struct{}{}
	}
}

// ClearFindings clears the "findings" edge to the Finding entity.
func (m *EngagementMutation) ClearFindings() {
	m.clearedfindings = true
}

// FindingsCleared reports if the "findings" edge to the Finding entity was cleared.
func (m *EngagementMutation) FindingsCleared() bool {
	return m.clearedfindings
}

// RemoveFindingIDs removes the "findings" edge to the Finding entity by IDs.
func (m *EngagementMutation) RemoveFindingIDs(ids ...string) {
	if m.removedfindings == nil {
		m.removedfindings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.findings, ids[i])
		m.removedfindings[ids[i]] = struct{}{}
	}
}

// RemovedFindings returns the removed IDs of the "findings" edge to the Finding entity.
func (m *EngagementMutation) RemovedFindingsIDs() (ids []string) {
	for id := range m.removedfindings {
		ids = append(ids, id)
	}
	return
}

// FindingsIDs returns the "findings" edge IDs in the mutation.
func (m *EngagementMutation) FindingsIDs() (ids []string) {
	for id := range m.findings {
		ids = append(ids, id)
	}
	return
}

// ResetFindings resets all changes to the "findings" edge.
func (m *EngagementMutation) ResetFindings() {
	m.findings = nil
	m.clearedfindings = false
	m.removedfindings = nil
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by ids.
func (m *EngagementMutation) AddLlmInteractionIDs(ids ...string) {
	if m.llm_interactions == nil {
		m.llm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_interactions[ids[i]] = struct{}{}
	}
}

// ClearLlmInteractions clears the "llm_interactions" edge to the LLMInteraction entity.
func (m *EngagementMutation) ClearLlmInteractions() {
	m.clearedllm_interactions = true
}

// LlmInteractionsCleared reports if the "llm_interactions" edge to the LLMInteraction entity was cleared.
func (m *EngagementMutation) LlmInteractionsCleared() bool {
	return m.clearedllm_interactions
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (m *EngagementMutation) RemoveLlmInteractionIDs(ids ...string) {
	if m.removedllm_interactions == nil {
		m.removedllm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_interactions, ids[i])
		m.removedllm_interactions[ids[i]] = struct{}{}
	}
}

// RemovedLlmInteractions returns the removed IDs of the "llm_interactions" edge to the LLMInteraction entity.
func (m *EngagementMutation) RemovedLlmInteractionsIDs() (ids []string) {
	for id := range m.removedllm_interactions {
		ids = append(ids, id)
	}
	return
}

// LlmInteractionsIDs returns the "llm_interactions" edge IDs in the mutation.
func (m *EngagementMutation) LlmInteractionsIDs() (ids []string) {
	for id := range m.llm_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetLlmInteractions resets all changes to the "llm_interactions" edge.
func (m *EngagementMutation) ResetLlmInteractions() {
	m.llm_interactions = nil
	m.clearedllm_interactions = false
	m.removedllm_interactions = nil
}

// AddToolInteractionIDs adds the "tool_interactions" edge to the ToolInteraction entity by ids.
func (m *EngagementMutation) AddToolInteractionIDs(ids ...string) {
	if m.tool_interactions == nil {
		m.tool_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_interactions[ids[i]] = struct{}{}
	}
}

// ClearToolInteractions clears the "tool_interactions" edge to the ToolInteraction entity.
func (m *EngagementMutation) ClearToolInteractions() {
	m.clearedtool_interactions = true
}

// ToolInteractionsCleared reports if the "tool_interactions" edge to the ToolInteraction entity was cleared.
func (m *EngagementMutation) ToolInteractionsCleared() bool {
	return m.clearedtool_interactions
}

// RemoveToolInteractionIDs removes the "tool_interactions" edge to the ToolInteraction entity by IDs.
func (m *EngagementMutation) RemoveToolInteractionIDs(ids ...string) {
	if m.removedtool_interactions == nil {
		m.removedtool_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_interactions, ids[i])
		m.removedtool_interactions[ids[i]] = struct{}{}
	}
}

// RemovedToolInteractions returns the removed IDs of the "tool_interactions" edge to the ToolInteraction entity.
func (m *EngagementMutation) RemovedToolInteractionsIDs() (ids []string) {
	for id := range m.removedtool_interactions {
		ids = append(ids, id)
	}
	return
}

// ToolInteractionsIDs returns the "tool_interactions" edge IDs in the mutation.
func (m *EngagementMutation) ToolInteractionsIDs() (ids []string) {
	for id := range m.tool_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetToolInteractions resets all changes to the "tool_interactions" edge.
func (m *EngagementMutation) ResetToolInteractions() {
	m.tool_interactions = nil
	m.clearedtool_interactions = false
	m.removedtool_interactions = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *EngagementMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *EngagementMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *EngagementMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *EngagementMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *EngagementMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *EngagementMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *EngagementMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the EngagementMutation builder.
func (m *EngagementMutation) Where(ps ...predicate.Engagement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EngagementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EngagementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Engagement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EngagementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EngagementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Engagement).
func (m *EngagementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EngagementMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.objective != nil {
		fields = append(fields, engagement.FieldObjective)
	}
	if m.objective_type != nil {
		fields = append(fields, engagement.FieldObjectiveType)
	}
	if m.scope != nil {
		fields = append(fields, engagement.FieldScope)
	}
	if m.status != nil {
		fields = append(fields, engagement.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, engagement.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, engagement.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, engagement.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, engagement.FieldErrorMessage)
	}
	if m.final_report != nil {
		fields = append(fields, engagement.FieldFinalReport)
	}
	if m.executive_summary != nil {
		fields = append(fields, engagement.FieldExecutiveSummary)
	}
	if m.stats != nil {
		fields = append(fields, engagement.FieldStats)
	}
	if m.pod_id != nil {
		fields = append(fields, engagement.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, engagement.FieldLastInteractionAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, engagement.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EngagementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case engagement.FieldObjective:
		return m.Objective()
	case engagement.FieldObjectiveType:
		return m.ObjectiveType()
	case engagement.FieldScope:
		return m.Scope()
	case engagement.FieldStatus:
		return m.Status()
	case engagement.FieldCreatedAt:
		return m.CreatedAt()
	case engagement.FieldStartedAt:
		return m.StartedAt()
	case engagement.FieldCompletedAt:
		return m.CompletedAt()
	case engagement.FieldErrorMessage:
		return m.ErrorMessage()
	case engagement.FieldFinalReport:
		return m.FinalReport()
	case engagement.FieldExecutiveSummary:
		return m.ExecutiveSummary()
	case engagement.FieldStats:
		return m.Stats()
	case engagement.FieldPodID:
		return m.PodID()
	case engagement.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case engagement.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EngagementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case engagement.FieldObjective:
		return m.OldObjective(ctx)
	case engagement.FieldObjectiveType:
		return m.OldObjectiveType(ctx)
	case engagement.FieldScope:
		return m.OldScope(ctx)
	case engagement.FieldStatus:
		return m.OldStatus(ctx)
	case engagement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case engagement.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case engagement.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case engagement.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case engagement.FieldFinalReport:
		return m.OldFinalReport(ctx)
	case engagement.FieldExecutiveSummary:
		return m.OldExecutiveSummary(ctx)
	case engagement.FieldStats:
		return m.OldStats(ctx)
	case engagement.FieldPodID:
		return m.OldPodID(ctx)
	case engagement.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case engagement.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Engagement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case engagement.FieldObjective:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjective(v)
		return nil
	case engagement.FieldObjectiveType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectiveType(v)
		return nil
	case engagement.FieldScope:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case engagement.FieldStatus:
		v, ok := value.(engagement.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case engagement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case engagement.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case engagement.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case engagement.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case engagement.FieldFinalReport:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalReport(v)
		return nil
	case engagement.FieldExecutiveSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutiveSummary(v)
		return nil
	case engagement.FieldStats:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStats(v)
		return nil
	case engagement.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case engagement.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case engagement.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Engagement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EngagementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EngagementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Engagement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EngagementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(engagement.FieldObjectiveType) {
		fields = append(fields, engagement.FieldObjectiveType)
	}
	if m.FieldCleared(engagement.FieldScope) {
		fields = append(fields, engagement.FieldScope)
	}
	if m.FieldCleared(engagement.FieldStartedAt) {
		fields = append(fields, engagement.FieldStartedAt)
	}
	if m.FieldCleared(engagement.FieldCompletedAt) {
		fields = append(fields, engagement.FieldCompletedAt)
	}
	if m.FieldCleared(engagement.FieldErrorMessage) {
		fields = append(fields, engagement.FieldErrorMessage)
	}
	if m.FieldCleared(engagement.FieldFinalReport) {
		fields = append(fields, engagement.FieldFinalReport)
	}
	if m.FieldCleared(engagement.FieldExecutiveSummary) {
		fields = append(fields, engagement.FieldExecutiveSummary)
	}
	if m.FieldCleared(engagement.FieldStats) {
		fields = append(fields, engagement.FieldStats)
	}
	if m.FieldCleared(engagement.FieldPodID) {
		fields = append(fields, engagement.FieldPodID)
	}
	if m.FieldCleared(engagement.FieldLastInteractionAt) {
		fields = append(fields, engagement.FieldLastInteractionAt)
	}
	if m.FieldCleared(engagement.FieldDeletedAt) {
		fields = append(fields, engagement.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EngagementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EngagementMutation) ClearField(name string) error {
	switch name {
	case engagement.FieldObjectiveType:
		m.ClearObjectiveType()
		return nil
	case engagement.FieldScope:
		m.ClearScope()
		return nil
	case engagement.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case engagement.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case engagement.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case engagement.FieldFinalReport:
		m.ClearFinalReport()
		return nil
	case engagement.FieldExecutiveSummary:
		m.ClearExecutiveSummary()
		return nil
	case engagement.FieldStats:
		m.ClearStats()
		return nil
	case engagement.FieldPodID:
		m.ClearPodID()
		return nil
	case engagement.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case engagement.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Engagement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EngagementMutation) ResetField(name string) error {
	switch name {
	case engagement.FieldObjective:
		m.ResetObjective()
		return nil
	case engagement.FieldObjectiveType:
		m.ResetObjectiveType()
		return nil
	case engagement.FieldScope:
		m.ResetScope()
		return nil
	case engagement.FieldStatus:
		m.ResetStatus()
		return nil
	case engagement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case engagement.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case engagement.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case engagement.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case engagement.FieldFinalReport:
		m.ResetFinalReport()
		return nil
	case engagement.FieldExecutiveSummary:
		m.ResetExecutiveSummary()
		return nil
	case engagement.FieldStats:
		m.ResetStats()
		return nil
	case engagement.FieldPodID:
		m.ResetPodID()
		return nil
	case engagement.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case engagement.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Engagement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EngagementMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.tasks != nil {
		edges = append(edges, engagement.EdgeTasks)
	}
	if m.agent_messages != nil {
		edges = append(edges, engagement.EdgeAgentMessages)
	}
	if m.locks != nil {
		edges = append(edges, engagement.EdgeLocks)
	}
	if m.findings != nil {
		edges = append(edges, engagement.EdgeFindings)
	}
	if m.llm_interactions != nil {
		edges = append(edges, engagement.EdgeLlmInteractions)
	}
	if m.tool_interactions != nil {
		edges = append(edges, engagement.EdgeToolInteractions)
	}
	if m.events != nil {
		edges = append(edges, engagement.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EngagementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case engagement.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeAgentMessages:
		ids := make([]ent.Value, 0, len(m.agent_messages))
		for id := range m.agent_messages {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeLocks:
		ids := make([]ent.Value, 0, len(m.locks))
		for id := range m.locks {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeFindings:
		ids := make([]ent.Value, 0, len(m.findings))
		for id := range m.findings {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.llm_interactions))
		for id := range m.llm_interactions {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeToolInteractions:
		ids := make([]ent.Value, 0, len(m.tool_interactions))
		for id := range m.tool_interactions {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EngagementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedtasks != nil {
		edges = append(edges, engagement.EdgeTasks)
	}
	if m.removedagent_messages != nil {
		edges = append(edges, engagement.EdgeAgentMessages)
	}
	if m.removedlocks != nil {
		edges = append(edges, engagement.EdgeLocks)
	}
	if m.removedfindings != nil {
		edges = append(edges, engagement.EdgeFindings)
	}
	if m.removedllm_interactions != nil {
		edges = append(edges, engagement.EdgeLlmInteractions)
	}
	if m.removedtool_interactions != nil {
		edges = append(edges, engagement.EdgeToolInteractions)
	}
	if m.removedevents != nil {
		edges = append(edges, engagement.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EngagementMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case engagement.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeAgentMessages:
		ids := make([]ent.Value, 0, len(m.removedagent_messages))
		for id := range m.removedagent_messages {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeLocks:
		ids := make([]ent.Value, 0, len(m.removedlocks))
		for id := range m.removedlocks {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeFindings:
		ids := make([]ent.Value, 0, len(m.removedfindings))
		for id := range m.removedfindings {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.removedllm_interactions))
		for id := range m.removedllm_interactions {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeToolInteractions:
		ids := make([]ent.Value, 0, len(m.removedtool_interactions))
		for id := range m.removedtool_interactions {
			ids = append(ids, id)
		}
		return ids
	case engagement.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EngagementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedtasks {
		edges = append(edges, engagement.EdgeTasks)
	}
	if m.clearedagent_messages {
		edges = append(edges, engagement.EdgeAgentMessages)
	}
	if m.clearedlocks {
		edges = append(edges, engagement.EdgeLocks)
	}
	if m.clearedfindings {
		edges = append(edges, engagement.EdgeFindings)
	}
	if m.clearedllm_interactions {
		edges = append(edges, engagement.EdgeLlmInteractions)
	}
	if m.clearedtool_interactions {
		edges = append(edges, engagement.EdgeToolInteractions)
	}
	if m.clearedevents {
		edges = append(edges, engagement.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EngagementMutation) EdgeCleared(name string) bool {
	switch name {
	case engagement.EdgeTasks:
		return m.clearedtasks
	case engagement.EdgeAgentMessages:
		return m.clearedagent_messages
	case engagement.EdgeLocks:
		return m.clearedlocks
	case engagement.EdgeFindings:
		return m.clearedfindings
	case engagement.EdgeLlmInteractions:
		return m.clearedllm_interactions
	case engagement.EdgeToolInteractions:
		return m.clearedtool_interactions
	case engagement.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EngagementMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Engagement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EngagementMutation) ResetEdge(name string) error {
	switch name {
	case engagement.EdgeTasks:
		m.ResetTasks()
		return nil
	case engagement.EdgeAgentMessages:
		m.ResetAgentMessages()
		return nil
	case engagement.EdgeLocks:
		m.ResetLocks()
		return nil
	case engagement.EdgeFindings:
		m.ResetFindings()
		return nil
	case engagement.EdgeLlmInteractions:
		m.ResetLlmInteractions()
		return nil
	case engagement.EdgeToolInteractions:
		m.ResetToolInteractions()
		return nil
	case engagement.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Engagement edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	channel           *string
	payload           *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	engagement        *string
	clearedengagement bool
	done              bool
	oldValue          func(context.Context) (*Event, error)
	predicates        []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngagementID sets the "engagement_id" field.
func (m *EventMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *EventMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *EventMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *EventMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[event.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *EventMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *EventMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *EventMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.engagement != nil {
		fields = append(fields, event.FieldEngagementID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEngagementID:
		return m.EngagementID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, event.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, event.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// FindingMutation represents an operation that mutates the Finding nodes in the graph.
type FindingMutation struct {
	config
	op                Op
	typ               string
	id                *string
	phase             *string
	title             *string
	severity          *finding.Severity
	description       *string
	evidence          *[]string
	appendevidence    []string
	metadata          *map[string]interface{}
	agent_id          *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	engagement        *string
	clearedengagement bool
	done              bool
	oldValue          func(context.Context) (*Finding, error)
	predicates        []predicate.Finding
}

var _ ent.Mutation = (*FindingMutation)(nil)

// findingOption allows management of the mutation configuration using functional options.
type findingOption func(*FindingMutation)

// newFindingMutation creates new mutation for the Finding entity.
func newFindingMutation(c config, op Op, opts ...findingOption) *FindingMutation {
	m := &FindingMutation{
		config:        c,
		op:            op,
		typ:           TypeFinding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFindingID sets the ID field of the mutation.
func withFindingID(id string) findingOption {
	return func(m *FindingMutation) {
		var (
			err   error
			once  sync.Once
			value *Finding
		)
		m.oldValue = func(ctx context.Context) (*Finding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Finding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinding sets the old Finding of the mutation.
func withFinding(node *Finding) findingOption {
	return func(m *FindingMutation) {
		m.oldValue = func(context.Context) (*Finding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FindingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FindingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Finding entities.
func (m *FindingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FindingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FindingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Finding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngagementID sets the "engagement_id" field.
func (m *FindingMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *FindingMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *FindingMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetPhase sets the "phase" field.
func (m *FindingMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *FindingMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ClearPhase clears the value of the "phase" field.
func (m *FindingMutation) ClearPhase() {
	m.phase = nil
	m.clearedFields[finding.FieldPhase] = struct{}{}
}

// PhaseCleared returns if the "phase" field was cleared in this mutation.
func (m *FindingMutation) PhaseCleared() bool {
	_, ok := m.clearedFields[finding.FieldPhase]
	return ok
}

// ResetPhase resets all changes to the "phase" field.
func (m *FindingMutation) ResetPhase() {
	m.phase = nil
	delete(m.clearedFields, finding.FieldPhase)
}

// SetTitle sets the "title" field.
func (m *FindingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *FindingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *FindingMutation) ResetTitle() {
	m.title = nil
}

// SetSeverity sets the "severity" field.
func (m *FindingMutation) SetSeverity(f finding.Severity) {
	m.severity = &f
}

// Severity returns the value of the "severity" field in the mutation.
func (m *FindingMutation) Severity() (r finding.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldSeverity(ctx context.Context) (v finding.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *FindingMutation) ResetSeverity() {
	m.severity = nil
}

// SetDescription sets the "description" field.
func (m *FindingMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *FindingMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *FindingMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[finding.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *FindingMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[finding.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *FindingMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, finding.FieldDescription)
}

// SetEvidence sets the "evidence" field.
func (m *FindingMutation) SetEvidence(s []string) {
	m.evidence = &s
	m.appendevidence = nil
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *FindingMutation) Evidence() (r []string, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldEvidence(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// AppendEvidence adds s to the "evidence" field.
func (m *FindingMutation) AppendEvidence(s []string) {
	m.appendevidence = append(m.appendevidence, s...)
}

// AppendedEvidence returns the list of values that were appended to the "evidence" field in this mutation.
func (m *FindingMutation) AppendedEvidence() ([]string, bool) {
	if len(m.appendevidence) == 0 {
		return nil, false
	}
	return m.appendevidence, true
}

// ClearEvidence clears the value of the "evidence" field.
func (m *FindingMutation) ClearEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	m.clearedFields[finding.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *FindingMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[finding.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *FindingMutation) ResetEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	delete(m.clearedFields, finding.FieldEvidence)
}

// SetMetadata sets the "metadata" field.
func (m *FindingMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *FindingMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *FindingMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[finding.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *FindingMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[finding.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *FindingMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, finding.FieldMetadata)
}

// SetAgentID sets the "agent_id" field.
func (m *FindingMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *FindingMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *FindingMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[finding.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *FindingMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[finding.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *FindingMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, finding.FieldAgentID)
}

// SetCreatedAt sets the "created_at" field.
func (m *FindingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FindingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FindingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *FindingMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[finding.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *FindingMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *FindingMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *FindingMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the FindingMutation builder.
func (m *FindingMutation) Where(ps ...predicate.Finding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FindingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FindingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Finding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FindingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FindingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Finding).
func (m *FindingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FindingMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.engagement != nil {
		fields = append(fields, finding.FieldEngagementID)
	}
	if m.phase != nil {
		fields = append(fields, finding.FieldPhase)
	}
	if m.title != nil {
		fields = append(fields, finding.FieldTitle)
	}
	if m.severity != nil {
		fields = append(fields, finding.FieldSeverity)
	}
	if m.description != nil {
		fields = append(fields, finding.FieldDescription)
	}
	if m.evidence != nil {
		fields = append(fields, finding.FieldEvidence)
	}
	if m.metadata != nil {
		fields = append(fields, finding.FieldMetadata)
	}
	if m.agent_id != nil {
		fields = append(fields, finding.FieldAgentID)
	}
	if m.created_at != nil {
		fields = append(fields, finding.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FindingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case finding.FieldEngagementID:
		return m.EngagementID()
	case finding.FieldPhase:
		return m.Phase()
	case finding.FieldTitle:
		return m.Title()
	case finding.FieldSeverity:
		return m.Severity()
	case finding.FieldDescription:
		return m.Description()
	case finding.FieldEvidence:
		return m.Evidence()
	case finding.FieldMetadata:
		return m.Metadata()
	case finding.FieldAgentID:
		return m.AgentID()
	case finding.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FindingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case finding.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case finding.FieldPhase:
		return m.OldPhase(ctx)
	case finding.FieldTitle:
		return m.OldTitle(ctx)
	case finding.FieldSeverity:
		return m.OldSeverity(ctx)
	case finding.FieldDescription:
		return m.OldDescription(ctx)
	case finding.FieldEvidence:
		return m.OldEvidence(ctx)
	case finding.FieldMetadata:
		return m.OldMetadata(ctx)
	case finding.FieldAgentID:
		return m.OldAgentID(ctx)
	case finding.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Finding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FindingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case finding.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case finding.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case finding.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case finding.FieldSeverity:
		v, ok := value.(finding.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case finding.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case finding.FieldEvidence:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case finding.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case finding.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case finding.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Finding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FindingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FindingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FindingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Finding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FindingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(finding.FieldPhase) {
		fields = append(fields, finding.FieldPhase)
	}
	if m.FieldCleared(finding.FieldDescription) {
		fields = append(fields, finding.FieldDescription)
	}
	if m.FieldCleared(finding.FieldEvidence) {
		fields = append(fields, finding.FieldEvidence)
	}
	if m.FieldCleared(finding.FieldMetadata) {
		fields = append(fields, finding.FieldMetadata)
	}
	if m.FieldCleared(finding.FieldAgentID) {
		fields = append(fields, finding.FieldAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FindingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FindingMutation) ClearField(name string) error {
	switch name {
	case finding.FieldPhase:
		m.ClearPhase()
		return nil
	case finding.FieldDescription:
		m.ClearDescription()
		return nil
	case finding.FieldEvidence:
		m.ClearEvidence()
		return nil
	case finding.FieldMetadata:
		m.ClearMetadata()
		return nil
	case finding.FieldAgentID:
		m.ClearAgentID()
		return nil
	}
	return fmt.Errorf("unknown Finding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FindingMutation) ResetField(name string) error {
	switch name {
	case finding.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case finding.FieldPhase:
		m.ResetPhase()
		return nil
	case finding.FieldTitle:
		m.ResetTitle()
		return nil
	case finding.FieldSeverity:
		m.ResetSeverity()
		return nil
	case finding.FieldDescription:
		m.ResetDescription()
		return nil
	case finding.FieldEvidence:
		m.ResetEvidence()
		return nil
	case finding.FieldMetadata:
		m.ResetMetadata()
		return nil
	case finding.FieldAgentID:
		m.ResetAgentID()
		return nil
	case finding.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Finding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FindingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, finding.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FindingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case finding.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FindingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FindingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FindingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, finding.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FindingMutation) EdgeCleared(name string) bool {
	switch name {
	case finding.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FindingMutation) ClearEdge(name string) error {
	switch name {
	case finding.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown Finding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FindingMutation) ResetEdge(name string) error {
	switch name {
	case finding.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown Finding edge %s", name)
}

// LLMInteractionMutation represents an operation that mutates the LLMInteraction nodes in the graph.
type LLMInteractionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	agent_id             *string
	provider             *string
	model_name           *string
	iteration            *int
	additeration         *int
	request_summary      *string
	response_content     *string
	tool_call_count      *int
	addtool_call_count   *int
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	total_tokens         *int
	addtotal_tokens      *int
	duration_ms          *int64
	addduration_ms       *int64
	error_message        *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	engagement           *string
	clearedengagement    bool
	done                 bool
	oldValue             func(context.Context) (*LLMInteraction, error)
	predicates           []predicate.LLMInteraction
}

var _ ent.Mutation = (*LLMInteractionMutation)(nil)

// llminteractionOption allows management of the mutation configuration using functional options.
type llminteractionOption func(*LLMInteractionMutation)

// newLLMInteractionMutation creates new mutation for the LLMInteraction entity.
func newLLMInteractionMutation(c config, op Op, opts ...llminteractionOption) *LLMInteractionMutation {
	m := &LLMInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMInteractionID sets the ID field of the mutation.
func withLLMInteractionID(id string) llminteractionOption {
	return func(m *LLMInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMInteraction
		)
		m.oldValue = func(ctx context.Context) (*LLMInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMInteraction sets the old LLMInteraction of the mutation.
func withLLMInteraction(node *LLMInteraction) llminteractionOption {
	return func(m *LLMInteractionMutation) {
		m.oldValue = func(context.Context) (*LLMInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMInteraction entities.
func (m *LLMInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngagementID sets the "engagement_id" field.
func (m *LLMInteractionMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *LLMInteractionMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *LLMInteractionMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetAgentID sets the "agent_id" field.
func (m *LLMInteractionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *LLMInteractionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *LLMInteractionMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetProvider sets the "provider" field.
func (m *LLMInteractionMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMInteractionMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMInteractionMutation) ResetProvider() {
	m.provider = nil
}

// SetModelName sets the "model_name" field.
func (m *LLMInteractionMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *LLMInteractionMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *LLMInteractionMutation) ResetModelName() {
	m.model_name = nil
}

// SetIteration sets the "iteration" field.
func (m *LLMInteractionMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *LLMInteractionMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldIteration(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *LLMInteractionMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *LLMInteractionMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ClearIteration clears the value of the "iteration" field.
func (m *LLMInteractionMutation) ClearIteration() {
	m.iteration = nil
	m.additeration = nil
	m.clearedFields[llminteraction.FieldIteration] = struct{}{}
}

// IterationCleared returns if the "iteration" field was cleared in this mutation.
func (m *LLMInteractionMutation) IterationCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldIteration]
	return ok
}

// ResetIteration resets all changes to the "iteration" field.
func (m *LLMInteractionMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
	delete(m.clearedFields, llminteraction.FieldIteration)
}

// SetRequestSummary sets the "request_summary" field.
func (m *LLMInteractionMutation) SetRequestSummary(s string) {
	m.request_summary = &s
}

// RequestSummary returns the value of the "request_summary" field in the mutation.
func (m *LLMInteractionMutation) RequestSummary() (r string, exists bool) {
	v := m.request_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestSummary returns the old "request_summary" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldRequestSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestSummary: %w", err)
	}
	return oldValue.RequestSummary, nil
}

// ClearRequestSummary clears the value of the "request_summary" field.
func (m *LLMInteractionMutation) ClearRequestSummary() {
	m.request_summary = nil
	m.clearedFields[llminteraction.FieldRequestSummary] = struct{}{}
}

// RequestSummaryCleared returns if the "request_summary" field was cleared in this mutation.
func (m *LLMInteractionMutation) RequestSummaryCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldRequestSummary]
	return ok
}

// ResetRequestSummary resets all changes to the "request_summary" field.
func (m *LLMInteractionMutation) ResetRequestSummary() {
	m.request_summary = nil
	delete(m.clearedFields, llminteraction.FieldRequestSummary)
}

// SetResponseContent sets the "response_content" field.
func (m *LLMInteractionMutation) SetResponseContent(s string) {
	m.response_content = &s
}

// ResponseContent returns the value of the "response_content" field in the mutation.
func (m *LLMInteractionMutation) ResponseContent() (r string, exists bool) {
	v := m.response_content
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseContent returns the old "response_content" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldResponseContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseContent: %w", err)
	}
	return oldValue.ResponseContent, nil
}

// ClearResponseContent clears the value of the "response_content" field.
func (m *LLMInteractionMutation) ClearResponseContent() {
	m.response_content = nil
	m.clearedFields[llminteraction.FieldResponseContent] = struct{}{}
}

// ResponseContentCleared returns if the "response_content" field was cleared in this mutation.
func (m *LLMInteractionMutation) ResponseContentCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldResponseContent]
	return ok
}

// ResetResponseContent resets all changes to the "response_content" field.
func (m *LLMInteractionMutation) ResetResponseContent() {
	m.response_content = nil
	delete(m.clearedFields, llminteraction.FieldResponseContent)
}

// SetToolCallCount sets the "tool_call_count" field.
func (m *LLMInteractionMutation) SetToolCallCount(i int) {
	m.tool_call_count = &i
	m.addtool_call_count = nil
}

// ToolCallCount returns the value of the "tool_call_count" field in the mutation.
func (m *LLMInteractionMutation) ToolCallCount() (r int, exists bool) {
	v := m.tool_call_count
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCallCount returns the old "tool_call_count" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldToolCallCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCallCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCallCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCallCount: %w", err)
	}
	return oldValue.ToolCallCount, nil
}

// AddToolCallCount adds i to the "tool_call_count" field.
func (m *LLMInteractionMutation) AddToolCallCount(i int) {
	if m.addtool_call_count != nil {
		*m.addtool_call_count += i
	} else {
		m.addtool_call_count = &i
	}
}

// AddedToolCallCount returns the value that was added to the "tool_call_count" field in this mutation.
func (m *LLMInteractionMutation) AddedToolCallCount() (r int, exists bool) {
	v := m.addtool_call_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetToolCallCount resets all changes to the "tool_call_count" field.
func (m *LLMInteractionMutation) ResetToolCallCount() {
	m.tool_call_count = nil
	m.addtool_call_count = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *LLMInteractionMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *LLMInteractionMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldPromptTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *LLMInteractionMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *LLMInteractionMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (m *LLMInteractionMutation) ClearPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	m.clearedFields[llminteraction.FieldPromptTokens] = struct{}{}
}

// PromptTokensCleared returns if the "prompt_tokens" field was cleared in this mutation.
func (m *LLMInteractionMutation) PromptTokensCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldPromptTokens]
	return ok
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *LLMInteractionMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	delete(m.clearedFields, llminteraction.FieldPromptTokens)
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *LLMInteractionMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *LLMInteractionMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldCompletionTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *LLMInteractionMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *LLMInteractionMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (m *LLMInteractionMutation) ClearCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
	m.clearedFields[llminteraction.FieldCompletionTokens] = struct{}{}
}

// CompletionTokensCleared returns if the "completion_tokens" field was cleared in this mutation.
func (m *LLMInteractionMutation) CompletionTokensCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldCompletionTokens]
	return ok
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *LLMInteractionMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
	delete(m.clearedFields, llminteraction.FieldCompletionTokens)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *LLMInteractionMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *LLMInteractionMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldTotalTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *LLMInteractionMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *LLMInteractionMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (m *LLMInteractionMutation) ClearTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	m.clearedFields[llminteraction.FieldTotalTokens] = struct{}{}
}

// TotalTokensCleared returns if the "total_tokens" field was cleared in this mutation.
func (m *LLMInteractionMutation) TotalTokensCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldTotalTokens]
	return ok
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *LLMInteractionMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	delete(m.clearedFields, llminteraction.FieldTotalTokens)
}

// SetDurationMs sets the "duration_ms" field.
func (m *LLMInteractionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LLMInteractionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LLMInteractionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LLMInteractionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LLMInteractionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMInteractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMInteractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMInteractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llminteraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMInteractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMInteractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llminteraction.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMInteractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMInteractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMInteractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *LLMInteractionMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[llminteraction.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *LLMInteractionMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *LLMInteractionMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *LLMInteractionMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the LLMInteractionMutation builder.
func (m *LLMInteractionMutation) Where(ps ...predicate.LLMInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMInteraction).
func (m *LLMInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMInteractionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.engagement != nil {
		fields = append(fields, llminteraction.FieldEngagementID)
	}
	if m.agent_id != nil {
		fields = append(fields, llminteraction.FieldAgentID)
	}
	if m.provider != nil {
		fields = append(fields, llminteraction.FieldProvider)
	}
	if m.model_name != nil {
		fields = append(fields, llminteraction.FieldModelName)
	}
	if m.iteration != nil {
		fields = append(fields, llminteraction.FieldIteration)
	}
	if m.request_summary != nil {
		fields = append(fields, llminteraction.FieldRequestSummary)
	}
	if m.response_content != nil {
		fields = append(fields, llminteraction.FieldResponseContent)
	}
	if m.tool_call_count != nil {
		fields = append(fields, llminteraction.FieldToolCallCount)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, llminteraction.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, llminteraction.FieldCompletionTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, llminteraction.FieldTotalTokens)
	}
	if m.duration_ms != nil {
		fields = append(fields, llminteraction.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, llminteraction.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, llminteraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llminteraction.FieldEngagementID:
		return m.EngagementID()
	case llminteraction.FieldAgentID:
		return m.AgentID()
	case llminteraction.FieldProvider:
		return m.Provider()
	case llminteraction.FieldModelName:
		return m.ModelName()
	case llminteraction.FieldIteration:
		return m.Iteration()
	case llminteraction.FieldRequestSummary:
		return m.RequestSummary()
	case llminteraction.FieldResponseContent:
		return m.ResponseContent()
	case llminteraction.FieldToolCallCount:
		return m.ToolCallCount()
	case llminteraction.FieldPromptTokens:
		return m.PromptTokens()
	case llminteraction.FieldCompletionTokens:
		return m.CompletionTokens()
	case llminteraction.FieldTotalTokens:
		return m.TotalTokens()
	case llminteraction.FieldDurationMs:
		return m.DurationMs()
	case llminteraction.FieldErrorMessage:
		return m.ErrorMessage()
	case llminteraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llminteraction.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case llminteraction.FieldAgentID:
		return m.OldAgentID(ctx)
	case llminteraction.FieldProvider:
		return m.OldProvider(ctx)
	case llminteraction.FieldModelName:
		return m.OldModelName(ctx)
	case llminteraction.FieldIteration:
		return m.OldIteration(ctx)
	case llminteraction.FieldRequestSummary:
		return m.OldRequestSummary(ctx)
	case llminteraction.FieldResponseContent:
		return m.OldResponseContent(ctx)
	case llminteraction.FieldToolCallCount:
		return m.OldToolCallCount(ctx)
	case llminteraction.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case llminteraction.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case llminteraction.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case llminteraction.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case llminteraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llminteraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llminteraction.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case llminteraction.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case llminteraction.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llminteraction.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case llminteraction.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case llminteraction.FieldRequestSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestSummary(v)
		return nil
	case llminteraction.FieldResponseContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseContent(v)
		return nil
	case llminteraction.FieldToolCallCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCallCount(v)
		return nil
	case llminteraction.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case llminteraction.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case llminteraction.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case llminteraction.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case llminteraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llminteraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMInteractionMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, llminteraction.FieldIteration)
	}
	if m.addtool_call_count != nil {
		fields = append(fields, llminteraction.FieldToolCallCount)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, llminteraction.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, llminteraction.FieldCompletionTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, llminteraction.FieldTotalTokens)
	}
	if m.addduration_ms != nil {
		fields = append(fields, llminteraction.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMInteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llminteraction.FieldIteration:
		return m.AddedIteration()
	case llminteraction.FieldToolCallCount:
		return m.AddedToolCallCount()
	case llminteraction.FieldPromptTokens:
		return m.AddedPromptTokens()
	case llminteraction.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case llminteraction.FieldTotalTokens:
		return m.AddedTotalTokens()
	case llminteraction.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llminteraction.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	case llminteraction.FieldToolCallCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToolCallCount(v)
		return nil
	case llminteraction.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case llminteraction.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case llminteraction.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case llminteraction.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llminteraction.FieldIteration) {
		fields = append(fields, llminteraction.FieldIteration)
	}
	if m.FieldCleared(llminteraction.FieldRequestSummary) {
		fields = append(fields, llminteraction.FieldRequestSummary)
	}
	if m.FieldCleared(llminteraction.FieldResponseContent) {
		fields = append(fields, llminteraction.FieldResponseContent)
	}
	if m.FieldCleared(llminteraction.FieldPromptTokens) {
		fields = append(fields, llminteraction.FieldPromptTokens)
	}
	if m.FieldCleared(llminteraction.FieldCompletionTokens) {
		fields = append(fields, llminteraction.FieldCompletionTokens)
	}
	if m.FieldCleared(llminteraction.FieldTotalTokens) {
		fields = append(fields, llminteraction.FieldTotalTokens)
	}
	if m.FieldCleared(llminteraction.FieldErrorMessage) {
		fields = append(fields, llminteraction.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMInteractionMutation) ClearField(name string) error {
	switch name {
	case llminteraction.FieldIteration:
		m.ClearIteration()
		return nil
	case llminteraction.FieldRequestSummary:
		m.ClearRequestSummary()
		return nil
	case llminteraction.FieldResponseContent:
		m.ClearResponseContent()
		return nil
	case llminteraction.FieldPromptTokens:
		m.ClearPromptTokens()
		return nil
	case llminteraction.FieldCompletionTokens:
		m.ClearCompletionTokens()
		return nil
	case llminteraction.FieldTotalTokens:
		m.ClearTotalTokens()
		return nil
	case llminteraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMInteractionMutation) ResetField(name string) error {
	switch name {
	case llminteraction.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case llminteraction.FieldAgentID:
		m.ResetAgentID()
		return nil
	case llminteraction.FieldProvider:
		m.ResetProvider()
		return nil
	case llminteraction.FieldModelName:
		m.ResetModelName()
		return nil
	case llminteraction.FieldIteration:
		m.ResetIteration()
		return nil
	case llminteraction.FieldRequestSummary:
		m.ResetRequestSummary()
		return nil
	case llminteraction.FieldResponseContent:
		m.ResetResponseContent()
		return nil
	case llminteraction.FieldToolCallCount:
		m.ResetToolCallCount()
		return nil
	case llminteraction.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case llminteraction.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case llminteraction.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case llminteraction.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case llminteraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llminteraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, llminteraction.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMInteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case llminteraction.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMInteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, llminteraction.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMInteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case llminteraction.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMInteractionMutation) ClearEdge(name string) error {
	switch name {
	case llminteraction.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMInteractionMutation) ResetEdge(name string) error {
	switch name {
	case llminteraction.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction edge %s", name)
}

// ResourceLockMutation represents an operation that mutates the ResourceLock nodes in the graph.
type ResourceLockMutation struct {
	config
	op                Op
	typ               string
	id                *int
	resource          *string
	owner             *string
	acquired_at       *time.Time
	clearedFields     map[string]struct{}
	engagement        *string
	clearedengagement bool
	done              bool
	oldValue          func(context.Context) (*ResourceLock, error)
	predicates        []predicate.ResourceLock
}

var _ ent.Mutation = (*ResourceLockMutation)(nil)

// resourcelockOption allows management of the mutation configuration using functional options.
type resourcelockOption func(*ResourceLockMutation)

// newResourceLockMutation creates new mutation for the ResourceLock entity.
func newResourceLockMutation(c config, op Op, opts ...resourcelockOption) *ResourceLockMutation {
	m := &ResourceLockMutation{
		config:        c,
		op:            op,
		typ:           TypeResourceLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResourceLockID sets the ID field of the mutation.
func withResourceLockID(id int) resourcelockOption {
	return func(m *ResourceLockMutation) {
		var (
			err   error
			once  sync.Once
			value *ResourceLock
		)
		m.oldValue = func(ctx context.Context) (*ResourceLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResourceLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResourceLock sets the old ResourceLock of the mutation.
func withResourceLock(node *ResourceLock) resourcelockOption {
	return func(m *ResourceLockMutation) {
		m.oldValue = func(context.Context) (*ResourceLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResourceLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResourceLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResourceLockMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResourceLockMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResourceLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResource sets the "resource" field.
func (m *ResourceLockMutation) SetResource(s string) {
	m.resource = &s
}

// Resource returns the value of the "resource" field in the mutation.
func (m *ResourceLockMutation) Resource() (r string, exists bool) {
	v := m.resource
	if v == nil {
		return
	}
	return *v, true
}

// OldResource returns the old "resource" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldResource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResource: %w", err)
	}
	return oldValue.Resource, nil
}

// ResetResource resets all changes to the "resource" field.
func (m *ResourceLockMutation) ResetResource() {
	m.resource = nil
}

// SetEngagementID sets the "engagement_id" field.
func (m *ResourceLockMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *ResourceLockMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *ResourceLockMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetOwner sets the "owner" field.
func (m *ResourceLockMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *ResourceLockMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *ResourceLockMutation) ResetOwner() {
	m.owner = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *ResourceLockMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *ResourceLockMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *ResourceLockMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *ResourceLockMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[resourcelock.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *ResourceLockMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *ResourceLockMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *ResourceLockMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the ResourceLockMutation builder.
func (m *ResourceLockMutation) Where(ps ...predicate.ResourceLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResourceLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResourceLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResourceLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResourceLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResourceLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResourceLock).
func (m *ResourceLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResourceLockMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.resource != nil {
		fields = append(fields, resourcelock.FieldResource)
	}
	if m.engagement != nil {
		fields = append(fields, resourcelock.FieldEngagementID)
	}
	if m.owner != nil {
		fields = append(fields, resourcelock.FieldOwner)
	}
	if m.acquired_at != nil {
		fields = append(fields, resourcelock.FieldAcquiredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResourceLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resourcelock.FieldResource:
		return m.Resource()
	case resourcelock.FieldEngagementID:
		return m.EngagementID()
	case resourcelock.FieldOwner:
		return m.Owner()
	case resourcelock.FieldAcquiredAt:
		return m.AcquiredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResourceLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resourcelock.FieldResource:
		return m.OldResource(ctx)
	case resourcelock.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case resourcelock.FieldOwner:
		return m.OldOwner(ctx)
	case resourcelock.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResourceLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resourcelock.FieldResource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResource(v)
		return nil
	case resourcelock.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case resourcelock.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case resourcelock.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResourceLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResourceLockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResourceLockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResourceLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResourceLockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResourceLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResourceLockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ResourceLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResourceLockMutation) ResetField(name string) error {
	switch name {
	case resourcelock.FieldResource:
		m.ResetResource()
		return nil
	case resourcelock.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case resourcelock.FieldOwner:
		m.ResetOwner()
		return nil
	case resourcelock.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResourceLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, resourcelock.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResourceLockMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case resourcelock.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResourceLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResourceLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResourceLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, resourcelock.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResourceLockMutation) EdgeCleared(name string) bool {
	switch name {
	case resourcelock.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResourceLockMutation) ClearEdge(name string) error {
	switch name {
	case resourcelock.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResourceLockMutation) ResetEdge(name string) error {
	switch name {
	case resourcelock.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	task_key           *string
	description        *string
	task_type          *string
	dependencies       *[]string
	appenddependencies []string
	priority           *int
	addpriority        *int
	status             *task.Status
	assignee           *string
	result             *string
	error              *string
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	engagement         *string
	clearedengagement  bool
	done               bool
	oldValue           func(context.Context) (*Task, error)
	predicates         []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngagementID sets the "engagement_id" field.
func (m *TaskMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *TaskMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *TaskMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetTaskKey sets the "task_key" field.
func (m *TaskMutation) SetTaskKey(s string) {
	m.task_key = &s
}

// TaskKey returns the value of the "task_key" field in the mutation.
func (m *TaskMutation) TaskKey() (r string, exists bool) {
	v := m.task_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskKey returns the old "task_key" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskKey: %w", err)
	}
	return oldValue.TaskKey, nil
}

// ResetTaskKey resets all changes to the "task_key" field.
func (m *TaskMutation) ResetTaskKey() {
	m.task_key = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetTaskType sets the "task_type" field.
func (m *TaskMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TaskMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetDependencies sets the "dependencies" field.
func (m *TaskMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *TaskMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *TaskMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *TaskMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *TaskMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[task.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *TaskMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[task.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *TaskMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, task.FieldDependencies)
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetAssignee sets the "assignee" field.
func (m *TaskMutation) SetAssignee(s string) {
	m.assignee = &s
}

// Assignee returns the value of the "assignee" field in the mutation.
func (m *TaskMutation) Assignee() (r string, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignee returns the old "assignee" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignee(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignee: %w", err)
	}
	return oldValue.Assignee, nil
}

// ClearAssignee clears the value of the "assignee" field.
func (m *TaskMutation) ClearAssignee() {
	m.assignee = nil
	m.clearedFields[task.FieldAssignee] = struct{}{}
}

// AssigneeCleared returns if the "assignee" field was cleared in this mutation.
func (m *TaskMutation) AssigneeCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignee]
	return ok
}

// ResetAssignee resets all changes to the "assignee" field.
func (m *TaskMutation) ResetAssignee() {
	m.assignee = nil
	delete(m.clearedFields, task.FieldAssignee)
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetError sets the "error" field.
func (m *TaskMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TaskMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TaskMutation) ClearError() {
	m.error = nil
	m.clearedFields[task.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TaskMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TaskMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, task.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *TaskMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[task.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *TaskMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *TaskMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.engagement != nil {
		fields = append(fields, task.FieldEngagementID)
	}
	if m.task_key != nil {
		fields = append(fields, task.FieldTaskKey)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.task_type != nil {
		fields = append(fields, task.FieldTaskType)
	}
	if m.dependencies != nil {
		fields = append(fields, task.FieldDependencies)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.assignee != nil {
		fields = append(fields, task.FieldAssignee)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, task.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldEngagementID:
		return m.EngagementID()
	case task.FieldTaskKey:
		return m.TaskKey()
	case task.FieldDescription:
		return m.Description()
	case task.FieldTaskType:
		return m.TaskType()
	case task.FieldDependencies:
		return m.Dependencies()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldStatus:
		return m.Status()
	case task.FieldAssignee:
		return m.Assignee()
	case task.FieldResult:
		return m.Result()
	case task.FieldError:
		return m.Error()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case task.FieldTaskKey:
		return m.OldTaskKey(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldTaskType:
		return m.OldTaskType(ctx)
	case task.FieldDependencies:
		return m.OldDependencies(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldAssignee:
		return m.OldAssignee(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldError:
		return m.OldError(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case task.FieldTaskKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskKey(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case task.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldAssignee:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignee(v)
		return nil
	case task.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, task.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDependencies) {
		fields = append(fields, task.FieldDependencies)
	}
	if m.FieldCleared(task.FieldAssignee) {
		fields = append(fields, task.FieldAssignee)
	}
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldError) {
		fields = append(fields, task.FieldError)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDependencies:
		m.ClearDependencies()
		return nil
	case task.FieldAssignee:
		m.ClearAssignee()
		return nil
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldError:
		m.ClearError()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case task.FieldTaskKey:
		m.ResetTaskKey()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldTaskType:
		m.ResetTaskType()
		return nil
	case task.FieldDependencies:
		m.ResetDependencies()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldAssignee:
		m.ResetAssignee()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldError:
		m.ResetError()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, task.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, task.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// ToolInteractionMutation represents an operation that mutates the ToolInteraction nodes in the graph.
type ToolInteractionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	agent_id          *string
	server_name       *string
	tool_name         *string
	arguments         *map[string]interface{}
	success           *bool
	output            *string
	error_message     *string
	risk              *string
	duration_ms       *int64
	addduration_ms    *int64
	created_at        *time.Time
	clearedFields     map[string]struct{}
	engagement        *string
	clearedengagement bool
	done              bool
	oldValue          func(context.Context) (*ToolInteraction, error)
	predicates        []predicate.ToolInteraction
}

var _ ent.Mutation = (*ToolInteractionMutation)(nil)

// toolinteractionOption allows management of the mutation configuration using functional options.
type toolinteractionOption func(*ToolInteractionMutation)

// newToolInteractionMutation creates new mutation for the ToolInteraction entity.
func newToolInteractionMutation(c config, op Op, opts ...toolinteractionOption) *ToolInteractionMutation {
	m := &ToolInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeToolInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolInteractionID sets the ID field of the mutation.
func withToolInteractionID(id string) toolinteractionOption {
	return func(m *ToolInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolInteraction
		)
		m.oldValue = func(ctx context.Context) (*ToolInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolInteraction sets the old ToolInteraction of the mutation.
func withToolInteraction(node *ToolInteraction) toolinteractionOption {
	return func(m *ToolInteractionMutation) {
		m.oldValue = func(context.Context) (*ToolInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolInteraction entities.
func (m *ToolInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEngagementID sets the "engagement_id" field.
func (m *ToolInteractionMutation) SetEngagementID(s string) {
	m.engagement = &s
}

// EngagementID returns the value of the "engagement_id" field in the mutation.
func (m *ToolInteractionMutation) EngagementID() (r string, exists bool) {
	v := m.engagement
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementID returns the old "engagement_id" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldEngagementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementID: %w", err)
	}
	return oldValue.EngagementID, nil
}

// ResetEngagementID resets all changes to the "engagement_id" field.
func (m *ToolInteractionMutation) ResetEngagementID() {
	m.engagement = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ToolInteractionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ToolInteractionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ToolInteractionMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetServerName sets the "server_name" field.
func (m *ToolInteractionMutation) SetServerName(s string) {
	m.server_name = &s
}

// ServerName returns the value of the "server_name" field in the mutation.
func (m *ToolInteractionMutation) ServerName() (r string, exists bool) {
	v := m.server_name
	if v == nil {
		return
	}
	return *v, true
}

// OldServerName returns the old "server_name" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldServerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerName: %w", err)
	}
	return oldValue.ServerName, nil
}

// ResetServerName resets all changes to the "server_name" field.
func (m *ToolInteractionMutation) ResetServerName() {
	m.server_name = nil
}

// SetToolName sets the "tool_name" field.
func (m *ToolInteractionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolInteractionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolInteractionMutation) ResetToolName() {
	m.tool_name = nil
}

// SetArguments sets the "arguments" field.
func (m *ToolInteractionMutation) SetArguments(value map[string]interface{}) {
	m.arguments = &value
}

// Arguments returns the value of the "arguments" field in the mutation.
func (m *ToolInteractionMutation) Arguments() (r map[string]interface{}, exists bool) {
	v := m.arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldArguments returns the old "arguments" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArguments: %w", err)
	}
	return oldValue.Arguments, nil
}

// ClearArguments clears the value of the "arguments" field.
func (m *ToolInteractionMutation) ClearArguments() {
	m.arguments = nil
	m.clearedFields[toolinteraction.FieldArguments] = struct{}{}
}

// ArgumentsCleared returns if the "arguments" field was cleared in this mutation.
func (m *ToolInteractionMutation) ArgumentsCleared() bool {
	_, ok := m.clearedFields[toolinteraction.FieldArguments]
	return ok
}

// ResetArguments resets all changes to the "arguments" field.
func (m *ToolInteractionMutation) ResetArguments() {
	m.arguments = nil
	delete(m.clearedFields, toolinteraction.FieldArguments)
}

// SetSuccess sets the "success" field.
func (m *ToolInteractionMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ToolInteractionMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ToolInteractionMutation) ResetSuccess() {
	m.success = nil
}

// SetOutput sets the "output" field.
func (m *ToolInteractionMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *ToolInteractionMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *ToolInteractionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[toolinteraction.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ToolInteractionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[toolinteraction.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ToolInteractionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, toolinteraction.FieldOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *ToolInteractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ToolInteractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ToolInteractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[toolinteraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ToolInteractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[toolinteraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ToolInteractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, toolinteraction.FieldErrorMessage)
}

// SetRisk sets the "risk" field.
func (m *ToolInteractionMutation) SetRisk(s string) {
	m.risk = &s
}

// Risk returns the value of the "risk" field in the mutation.
func (m *ToolInteractionMutation) Risk() (r string, exists bool) {
	v := m.risk
	if v == nil {
		return
	}
	return *v, true
}

// OldRisk returns the old "risk" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldRisk(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisk: %w", err)
	}
	return oldValue.Risk, nil
}

// ClearRisk clears the value of the "risk" field.
func (m *ToolInteractionMutation) ClearRisk() {
	m.risk = nil
	m.clearedFields[toolinteraction.FieldRisk] = struct{}{}
}

// RiskCleared returns if the "risk" field was cleared in this mutation.
func (m *ToolInteractionMutation) RiskCleared() bool {
	_, ok := m.clearedFields[toolinteraction.FieldRisk]
	return ok
}

// ResetRisk resets all changes to the "risk" field.
func (m *ToolInteractionMutation) ResetRisk() {
	m.risk = nil
	delete(m.clearedFields, toolinteraction.FieldRisk)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ToolInteractionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ToolInteractionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ToolInteractionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ToolInteractionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ToolInteractionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolInteractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolInteractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolInteraction entity.
// If the ToolInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInteractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolInteractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (m *ToolInteractionMutation) ClearEngagement() {
	m.clearedengagement = true
	m.clearedFields[toolinteraction.FieldEngagementID] = struct{}{}
}

// EngagementCleared reports if the "engagement" edge to the Engagement entity was cleared.
func (m *ToolInteractionMutation) EngagementCleared() bool {
	return m.clearedengagement
}

// EngagementIDs returns the "engagement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EngagementID instead. It exists only for internal usage by the builders.
func (m *ToolInteractionMutation) EngagementIDs() (ids []string) {
	if id := m.engagement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEngagement resets all changes to the "engagement" edge.
func (m *ToolInteractionMutation) ResetEngagement() {
	m.engagement = nil
	m.clearedengagement = false
}

// Where appends a list predicates to the ToolInteractionMutation builder.
func (m *ToolInteractionMutation) Where(ps ...predicate.ToolInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolInteraction).
func (m *ToolInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolInteractionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.engagement != nil {
		fields = append(fields, toolinteraction.FieldEngagementID)
	}
	if m.agent_id != nil {
		fields = append(fields, toolinteraction.FieldAgentID)
	}
	if m.server_name != nil {
		fields = append(fields, toolinteraction.FieldServerName)
	}
	if m.tool_name != nil {
		fields = append(fields, toolinteraction.FieldToolName)
	}
	if m.arguments != nil {
		fields = append(fields, toolinteraction.FieldArguments)
	}
	if m.success != nil {
		fields = append(fields, toolinteraction.FieldSuccess)
	}
	if m.output != nil {
		fields = append(fields, toolinteraction.FieldOutput)
	}
	if m.error_message != nil {
		fields = append(fields, toolinteraction.FieldErrorMessage)
	}
	if m.risk != nil {
		fields = append(fields, toolinteraction.FieldRisk)
	}
	if m.duration_ms != nil {
		fields = append(fields, toolinteraction.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, toolinteraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolinteraction.FieldEngagementID:
		return m.EngagementID()
	case toolinteraction.FieldAgentID:
		return m.AgentID()
	case toolinteraction.FieldServerName:
		return m.ServerName()
	case toolinteraction.FieldToolName:
		return m.ToolName()
	case toolinteraction.FieldArguments:
		return m.Arguments()
	case toolinteraction.FieldSuccess:
		return m.Success()
	case toolinteraction.FieldOutput:
		return m.Output()
	case toolinteraction.FieldErrorMessage:
		return m.ErrorMessage()
	case toolinteraction.FieldRisk:
		return m.Risk()
	case toolinteraction.FieldDurationMs:
		return m.DurationMs()
	case toolinteraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolinteraction.FieldEngagementID:
		return m.OldEngagementID(ctx)
	case toolinteraction.FieldAgentID:
		return m.OldAgentID(ctx)
	case toolinteraction.FieldServerName:
		return m.OldServerName(ctx)
	case toolinteraction.FieldToolName:
		return m.OldToolName(ctx)
	case toolinteraction.FieldArguments:
		return m.OldArguments(ctx)
	case toolinteraction.FieldSuccess:
		return m.OldSuccess(ctx)
	case toolinteraction.FieldOutput:
		return m.OldOutput(ctx)
	case toolinteraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case toolinteraction.FieldRisk:
		return m.OldRisk(ctx)
	case toolinteraction.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case toolinteraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolinteraction.FieldEngagementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementID(v)
		return nil
	case toolinteraction.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case toolinteraction.FieldServerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerName(v)
		return nil
	case toolinteraction.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolinteraction.FieldArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArguments(v)
		return nil
	case toolinteraction.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case toolinteraction.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case toolinteraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case toolinteraction.FieldRisk:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisk(v)
		return nil
	case toolinteraction.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case toolinteraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolInteractionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, toolinteraction.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolInteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolinteraction.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolinteraction.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ToolInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolinteraction.FieldArguments) {
		fields = append(fields, toolinteraction.FieldArguments)
	}
	if m.FieldCleared(toolinteraction.FieldOutput) {
		fields = append(fields, toolinteraction.FieldOutput)
	}
	if m.FieldCleared(toolinteraction.FieldErrorMessage) {
		fields = append(fields, toolinteraction.FieldErrorMessage)
	}
	if m.FieldCleared(toolinteraction.FieldRisk) {
		fields = append(fields, toolinteraction.FieldRisk)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolInteractionMutation) ClearField(name string) error {
	switch name {
	case toolinteraction.FieldArguments:
		m.ClearArguments()
		return nil
	case toolinteraction.FieldOutput:
		m.ClearOutput()
		return nil
	case toolinteraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case toolinteraction.FieldRisk:
		m.ClearRisk()
		return nil
	}
	return fmt.Errorf("unknown ToolInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolInteractionMutation) ResetField(name string) error {
	switch name {
	case toolinteraction.FieldEngagementID:
		m.ResetEngagementID()
		return nil
	case toolinteraction.FieldAgentID:
		m.ResetAgentID()
		return nil
	case toolinteraction.FieldServerName:
		m.ResetServerName()
		return nil
	case toolinteraction.FieldToolName:
		m.ResetToolName()
		return nil
	case toolinteraction.FieldArguments:
		m.ResetArguments()
		return nil
	case toolinteraction.FieldSuccess:
		m.ResetSuccess()
		return nil
	case toolinteraction.FieldOutput:
		m.ResetOutput()
		return nil
	case toolinteraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case toolinteraction.FieldRisk:
		m.ResetRisk()
		return nil
	case toolinteraction.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case toolinteraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagement != nil {
		edges = append(edges, toolinteraction.EdgeEngagement)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolInteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolinteraction.EdgeEngagement:
		if id := m.engagement; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolInteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagement {
		edges = append(edges, toolinteraction.EdgeEngagement)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolInteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case toolinteraction.EdgeEngagement:
		return m.clearedengagement
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolInteractionMutation) ClearEdge(name string) error {
	switch name {
	case toolinteraction.EdgeEngagement:
		m.ClearEngagement()
		return nil
	}
	return fmt.Errorf("unknown ToolInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolInteractionMutation) ResetEdge(name string) error {
	switch name {
	case toolinteraction.EdgeEngagement:
		m.ResetEngagement()
		return nil
	}
	return fmt.Errorf("unknown ToolInteraction edge %s", name)
}
