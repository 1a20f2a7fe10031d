// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/agentmessage"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
)

// AgentMessageCreate is the builder for creating a AgentMessage entity.
type AgentMessageCreate struct {
	config
	mutation *AgentMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEngagementID sets the "engagement_id" field.
func (_c *AgentMessageCreate) SetEngagementID(v string) *AgentMessageCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetFromAgent sets the "from_agent" field.
func (_c *AgentMessageCreate) SetFromAgent(v string) *AgentMessageCreate {
	_c.mutation.SetFromAgent(v)
	return _c
}

// SetToAgent sets the "to_agent" field.
func (_c *AgentMessageCreate) SetToAgent(v string) *AgentMessageCreate {
	_c.mutation.SetToAgent(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AgentMessageCreate) SetKind(v agentmessage.Kind) *AgentMessageCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AgentMessageCreate) SetPayload(v map[string]interface{}) *AgentMessageCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetRead sets the "read" field.
func (_c *AgentMessageCreate) SetRead(v bool) *AgentMessageCreate {
	_c.mutation.SetRead(v)
	return _c
}

// SetNillableRead sets the "read" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableRead(v *bool) *AgentMessageCreate {
	if v != nil {
		_c.SetRead(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *AgentMessageCreate) SetSentAt(v time.Time) *AgentMessageCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableSentAt(v *time.Time) *AgentMessageCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetReadAt sets the "read_at" field.
func (_c *AgentMessageCreate) SetReadAt(v time.Time) *AgentMessageCreate {
	_c.mutation.SetReadAt(v)
	return _c
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_c *AgentMessageCreate) SetNillableReadAt(v *time.Time) *AgentMessageCreate {
	if v != nil {
		_c.SetReadAt(*v)
	}
	return _c
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_c *AgentMessageCreate) SetEngagement(v *Engagement) *AgentMessageCreate {
	return _c.SetEngagementID(v.ID)
}

// Mutation returns the AgentMessageMutation object of the builder.
func (_c *AgentMessageCreate) Mutation() *AgentMessageMutation {
	return _c.mutation
}

// Save creates the AgentMessage in the database.
func (_c *AgentMessageCreate) Save(ctx context.Context) (*AgentMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentMessageCreate) SaveX(ctx context.Context) *AgentMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentMessageCreate) defaults() {
	if _, ok := _c.mutation.Read(); !ok {
		v := agentmessage.DefaultRead
		_c.mutation.SetRead(v)
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		v := agentmessage.DefaultSentAt()
		_c.mutation.SetSentAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentMessageCreate) check() error {
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "AgentMessage.engagement_id"`)}
	}
	if _, ok := _c.mutation.FromAgent(); !ok {
		return &ValidationError{Name: "from_agent", err: errors.New(`ent: missing required field "AgentMessage.from_agent"`)}
	}
	if _, ok := _c.mutation.ToAgent(); !ok {
		return &ValidationError{Name: "to_agent", err: errors.New(`ent: missing required field "AgentMessage.to_agent"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AgentMessage.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := agentmessage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AgentMessage.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Read(); !ok {
		return &ValidationError{Name: "read", err: errors.New(`ent: missing required field "AgentMessage.read"`)}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`ent: missing required field "AgentMessage.sent_at"`)}
	}
	if len(_c.mutation.EngagementIDs()) == 0 {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required edge "AgentMessage.engagement"`)}
	}
	return nil
}

func (_c *AgentMessageCreate) sqlSave(ctx context.Context) (*AgentMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentMessageCreate) createSpec() (*AgentMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentmessage.Table, sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.FromAgent(); ok {
		_spec.SetField(agentmessage.FieldFromAgent, field.TypeString, value)
		_node.FromAgent = value
	}
	if value, ok := _c.mutation.ToAgent(); ok {
		_spec.SetField(agentmessage.FieldToAgent, field.TypeString, value)
		_node.ToAgent = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(agentmessage.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(agentmessage.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Read(); ok {
		_spec.SetField(agentmessage.FieldRead, field.TypeBool, value)
		_node.Read = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(agentmessage.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	if value, ok := _c.mutation.ReadAt(); ok {
		_spec.SetField(agentmessage.FieldReadAt, field.TypeTime, value)
		_node.ReadAt = &value
	}
	if nodes := _c.mutation.EngagementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentmessage.EngagementTable,
			Columns: []string{agentmessage.EngagementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EngagementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentMessage.Create().
//		SetEngagementID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentMessageUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentMessageCreate) OnConflict(opts ...sql.ConflictOption) *AgentMessageUpsertOne {
	_c.conflict = opts
	return &AgentMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentMessageCreate) OnConflictColumns(columns ...string) *AgentMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentMessageUpsertOne{
		create: _c,
	}
}

type (
	// AgentMessageUpsertOne is the builder for "upsert"-ing
	//  one AgentMessage node.
	AgentMessageUpsertOne struct {
		create *AgentMessageCreate
	}

	// AgentMessageUpsert is the "OnConflict" setter.
	AgentMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *AgentMessageUpsert) SetKind(v agentmessage.Kind) *AgentMessageUpsert {
	u.Set(agentmessage.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AgentMessageUpsert) UpdateKind() *AgentMessageUpsert {
	u.SetExcluded(agentmessage.FieldKind)
	return u
}

// SetPayload sets the "payload" field.
func (u *AgentMessageUpsert) SetPayload(v map[string]interface{}) *AgentMessageUpsert {
	u.Set(agentmessage.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *AgentMessageUpsert) UpdatePayload() *AgentMessageUpsert {
	u.SetExcluded(agentmessage.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *AgentMessageUpsert) ClearPayload() *AgentMessageUpsert {
	u.SetNull(agentmessage.FieldPayload)
	return u
}

// SetRead sets the "read" field.
func (u *AgentMessageUpsert) SetRead(v bool) *AgentMessageUpsert {
	u.Set(agentmessage.FieldRead, v)
	return u
}

// UpdateRead sets the "read" field to the value that was provided on create.
func (u *AgentMessageUpsert) UpdateRead() *AgentMessageUpsert {
	u.SetExcluded(agentmessage.FieldRead)
	return u
}

// SetReadAt sets the "read_at" field.
func (u *AgentMessageUpsert) SetReadAt(v time.Time) *AgentMessageUpsert {
	u.Set(agentmessage.FieldReadAt, v)
	return u
}

// UpdateReadAt sets the "read_at" field to the value that was provided on create.
func (u *AgentMessageUpsert) UpdateReadAt() *AgentMessageUpsert {
	u.SetExcluded(agentmessage.FieldReadAt)
	return u
}

// ClearReadAt clears the value of the "read_at" field.
func (u *AgentMessageUpsert) ClearReadAt() *AgentMessageUpsert {
	u.SetNull(agentmessage.FieldReadAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentMessageUpsertOne) UpdateNewValues() *AgentMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.EngagementID(); exists {
			s.SetIgnore(agentmessage.FieldEngagementID)
		}
		if _, exists := u.create.mutation.FromAgent(); exists {
			s.SetIgnore(agentmessage.FieldFromAgent)
		}
		if _, exists := u.create.mutation.ToAgent(); exists {
			s.SetIgnore(agentmessage.FieldToAgent)
		}
		if _, exists := u.create.mutation.SentAt(); exists {
			s.SetIgnore(agentmessage.FieldSentAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentMessageUpsertOne) Ignore() *AgentMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentMessageUpsertOne) DoNothing() *AgentMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentMessageCreate.OnConflict
// documentation for more info.
func (u *AgentMessageUpsertOne) Update(set func(*AgentMessageUpsert)) *AgentMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *AgentMessageUpsertOne) SetKind(v agentmessage.Kind) *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AgentMessageUpsertOne) UpdateKind() *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateKind()
	})
}

// SetPayload sets the "payload" field.
func (u *AgentMessageUpsertOne) SetPayload(v map[string]interface{}) *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *AgentMessageUpsertOne) UpdatePayload() *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *AgentMessageUpsertOne) ClearPayload() *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.ClearPayload()
	})
}

// SetRead sets the "read" field.
func (u *AgentMessageUpsertOne) SetRead(v bool) *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetRead(v)
	})
}

// UpdateRead sets the "read" field to the value that was provided on create.
func (u *AgentMessageUpsertOne) UpdateRead() *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateRead()
	})
}

// SetReadAt sets the "read_at" field.
func (u *AgentMessageUpsertOne) SetReadAt(v time.Time) *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetReadAt(v)
	})
}

// UpdateReadAt sets the "read_at" field to the value that was provided on create.
func (u *AgentMessageUpsertOne) UpdateReadAt() *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateReadAt()
	})
}

// ClearReadAt clears the value of the "read_at" field.
func (u *AgentMessageUpsertOne) ClearReadAt() *AgentMessageUpsertOne {
	return u.Update(func(s *AgentMessageUpsert) {
		s.ClearReadAt()
	})
}

// Exec executes the query.
func (u *AgentMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentMessageUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentMessageUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentMessageCreateBulk is the builder for creating many AgentMessage entities in bulk.
type AgentMessageCreateBulk struct {
	config
	err      error
	builders []*AgentMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentMessage entities in the database.
func (_c *AgentMessageCreateBulk) Save(ctx context.Context) ([]*AgentMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentMessageCreateBulk) SaveX(ctx context.Context) []*AgentMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentMessageUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentMessageUpsertBulk {
	_c.conflict = opts
	return &AgentMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentMessageCreateBulk) OnConflictColumns(columns ...string) *AgentMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentMessageUpsertBulk{
		create: _c,
	}
}

// AgentMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentMessage nodes.
type AgentMessageUpsertBulk struct {
	create *AgentMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentMessageUpsertBulk) UpdateNewValues() *AgentMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.EngagementID(); exists {
				s.SetIgnore(agentmessage.FieldEngagementID)
			}
			if _, exists := b.mutation.FromAgent(); exists {
				s.SetIgnore(agentmessage.FieldFromAgent)
			}
			if _, exists := b.mutation.ToAgent(); exists {
				s.SetIgnore(agentmessage.FieldToAgent)
			}
			if _, exists := b.mutation.SentAt(); exists {
				s.SetIgnore(agentmessage.FieldSentAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentMessageUpsertBulk) Ignore() *AgentMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentMessageUpsertBulk) DoNothing() *AgentMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentMessageCreateBulk.OnConflict
// documentation for more info.
func (u *AgentMessageUpsertBulk) Update(set func(*AgentMessageUpsert)) *AgentMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *AgentMessageUpsertBulk) SetKind(v agentmessage.Kind) *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AgentMessageUpsertBulk) UpdateKind() *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateKind()
	})
}

// SetPayload sets the "payload" field.
func (u *AgentMessageUpsertBulk) SetPayload(v map[string]interface{}) *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *AgentMessageUpsertBulk) UpdatePayload() *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *AgentMessageUpsertBulk) ClearPayload() *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.ClearPayload()
	})
}

// SetRead sets the "read" field.
func (u *AgentMessageUpsertBulk) SetRead(v bool) *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetRead(v)
	})
}

// UpdateRead sets the "read" field to the value that was provided on create.
func (u *AgentMessageUpsertBulk) UpdateRead() *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateRead()
	})
}

// SetReadAt sets the "read_at" field.
func (u *AgentMessageUpsertBulk) SetReadAt(v time.Time) *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.SetReadAt(v)
	})
}

// UpdateReadAt sets the "read_at" field to the value that was provided on create.
func (u *AgentMessageUpsertBulk) UpdateReadAt() *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.UpdateReadAt()
	})
}

// ClearReadAt clears the value of the "read_at" field.
func (u *AgentMessageUpsertBulk) ClearReadAt() *AgentMessageUpsertBulk {
	return u.Update(func(s *AgentMessageUpsert) {
		s.ClearReadAt()
	})
}

// Exec executes the query.
func (u *AgentMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
