// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/toolinteraction"
)

// ToolInteractionCreate is the builder for creating a ToolInteraction entity.
type ToolInteractionCreate struct {
	config
	mutation *ToolInteractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEngagementID sets the "engagement_id" field.
func (_c *ToolInteractionCreate) SetEngagementID(v string) *ToolInteractionCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ToolInteractionCreate) SetAgentID(v string) *ToolInteractionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetServerName sets the "server_name" field.
func (_c *ToolInteractionCreate) SetServerName(v string) *ToolInteractionCreate {
	_c.mutation.SetServerName(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolInteractionCreate) SetToolName(v string) *ToolInteractionCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetArguments sets the "arguments" field.
func (_c *ToolInteractionCreate) SetArguments(v map[string]interface{}) *ToolInteractionCreate {
	_c.mutation.SetArguments(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ToolInteractionCreate) SetSuccess(v bool) *ToolInteractionCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ToolInteractionCreate) SetOutput(v string) *ToolInteractionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *ToolInteractionCreate) SetNillableOutput(v *string) *ToolInteractionCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ToolInteractionCreate) SetErrorMessage(v string) *ToolInteractionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ToolInteractionCreate) SetNillableErrorMessage(v *string) *ToolInteractionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRisk sets the "risk" field.
func (_c *ToolInteractionCreate) SetRisk(v string) *ToolInteractionCreate {
	_c.mutation.SetRisk(v)
	return _c
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_c *ToolInteractionCreate) SetNillableRisk(v *string) *ToolInteractionCreate {
	if v != nil {
		_c.SetRisk(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ToolInteractionCreate) SetDurationMs(v int64) *ToolInteractionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolInteractionCreate) SetCreatedAt(v time.Time) *ToolInteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolInteractionCreate) SetNillableCreatedAt(v *time.Time) *ToolInteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolInteractionCreate) SetID(v string) *ToolInteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_c *ToolInteractionCreate) SetEngagement(v *Engagement) *ToolInteractionCreate {
	return _c.SetEngagementID(v.ID)
}

// Mutation returns the ToolInteractionMutation object of the builder.
func (_c *ToolInteractionCreate) Mutation() *ToolInteractionMutation {
	return _c.mutation
}

// Save creates the ToolInteraction in the database.
func (_c *ToolInteractionCreate) Save(ctx context.Context) (*ToolInteraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolInteractionCreate) SaveX(ctx context.Context) *ToolInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolInteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolInteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolInteractionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolinteraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolInteractionCreate) check() error {
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "ToolInteraction.engagement_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ToolInteraction.agent_id"`)}
	}
	if _, ok := _c.mutation.ServerName(); !ok {
		return &ValidationError{Name: "server_name", err: errors.New(`ent: missing required field "ToolInteraction.server_name"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolInteraction.tool_name"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ToolInteraction.success"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ToolInteraction.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolInteraction.created_at"`)}
	}
	if len(_c.mutation.EngagementIDs()) == 0 {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required edge "ToolInteraction.engagement"`)}
	}
	return nil
}

func (_c *ToolInteractionCreate) sqlSave(ctx context.Context) (*ToolInteraction, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ToolInteraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolInteractionCreate) createSpec() (*ToolInteraction, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolInteraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolinteraction.Table, sqlgraph.NewFieldSpec(toolinteraction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(toolinteraction.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ServerName(); ok {
		_spec.SetField(toolinteraction.FieldServerName, field.TypeString, value)
		_node.ServerName = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolinteraction.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Arguments(); ok {
		_spec.SetField(toolinteraction.FieldArguments, field.TypeJSON, value)
		_node.Arguments = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(toolinteraction.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(toolinteraction.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(toolinteraction.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Risk(); ok {
		_spec.SetField(toolinteraction.FieldRisk, field.TypeString, value)
		_node.Risk = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(toolinteraction.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolinteraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EngagementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolinteraction.EngagementTable,
			Columns: []string{toolinteraction.EngagementColumn},
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
//	client.ToolInteraction.Create().
//		SetEngagementID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolInteractionUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolInteractionCreate) OnConflict(opts ...sql.ConflictOption) *ToolInteractionUpsertOne {
	_c.conflict = opts
	return &ToolInteractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolInteraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolInteractionCreate) OnConflictColumns(columns ...string) *ToolInteractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolInteractionUpsertOne{
		create: _c,
	}
}

type (
	// ToolInteractionUpsertOne is the builder for "upsert"-ing
	//  one ToolInteraction node.
	ToolInteractionUpsertOne struct {
		create *ToolInteractionCreate
	}

	// ToolInteractionUpsert is the "OnConflict" setter.
	ToolInteractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetServerName sets the "server_name" field.
func (u *ToolInteractionUpsert) SetServerName(v string) *ToolInteractionUpsert {
	u.Set(toolinteraction.FieldServerName, v)
	return u
}

// UpdateServerName sets the "server_name" field to the value that was provided on create.
func (u *ToolInteractionUpsert) UpdateServerName() *ToolInteractionUpsert {
	u.SetExcluded(toolinteraction.FieldServerName)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *ToolInteractionUpsert) SetToolName(v string) *ToolInteractionUpsert {
	u.Set(toolinteraction.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolInteractionUpsert) UpdateToolName() *ToolInteractionUpsert {
	u.SetExcluded(toolinteraction.FieldToolName)
	return u
}

// SetArguments sets the "arguments" field.
func (u *ToolInteractionUpsert) SetArguments(v map[string]interface{}) *ToolInteractionUpsert {
	u.Set(toolinteraction.FieldArguments, v)
	return u
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *ToolInteractionUpsert) UpdateArguments() *ToolInteractionUpsert {
	u.SetExcluded(toolinteraction.FieldArguments)
	return u
}

// ClearArguments clears the value of the "arguments" field.
func (u *ToolInteractionUpsert) ClearArguments() *ToolInteractionUpsert {
	u.SetNull(toolinteraction.FieldArguments)
	return u
}

// SetSuccess sets the "success" field.
func (u *ToolInteractionUpsert) SetSuccess(v bool) *ToolInteractionUpsert {
	u.Set(toolinteraction.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ToolInteractionUpsert) UpdateSuccess() *ToolInteractionUpsert {
	u.SetExcluded(toolinteraction.FieldSuccess)
	return u
}

// SetOutput sets the "output" field.
func (u *ToolInteractionUpsert) SetOutput(v string) *ToolInteractionUpsert {
	u.Set(toolinteraction.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ToolInteractionUpsert) UpdateOutput() *ToolInteractionUpsert {
	u.SetExcluded(toolinteraction.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *ToolInteractionUpsert) ClearOutput() *ToolInteractionUpsert {
	u.SetNull(toolinteraction.FieldOutput)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ToolInteractionUpsert) SetErrorMessage(v string) *ToolInteractionUpsert {
	u.Set(toolinteraction.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ToolInteractionUpsert) UpdateErrorMessage() *ToolInteractionUpsert {
	u.SetExcluded(toolinteraction.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ToolInteractionUpsert) ClearErrorMessage() *ToolInteractionUpsert {
	u.SetNull(toolinteraction.FieldErrorMessage)
	return u
}

// SetRisk sets the "risk" field.
func (u *ToolInteractionUpsert) SetRisk(v string) *ToolInteractionUpsert {
	u.Set(toolinteraction.FieldRisk, v)
	return u
}

// UpdateRisk sets the "risk" field to the value that was provided on create.
func (u *ToolInteractionUpsert) UpdateRisk() *ToolInteractionUpsert {
	u.SetExcluded(toolinteraction.FieldRisk)
	return u
}

// ClearRisk clears the value of the "risk" field.
func (u *ToolInteractionUpsert) ClearRisk() *ToolInteractionUpsert {
	u.SetNull(toolinteraction.FieldRisk)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *ToolInteractionUpsert) SetDurationMs(v int64) *ToolInteractionUpsert {
	u.Set(toolinteraction.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ToolInteractionUpsert) UpdateDurationMs() *ToolInteractionUpsert {
	u.SetExcluded(toolinteraction.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ToolInteractionUpsert) AddDurationMs(v int64) *ToolInteractionUpsert {
	u.Add(toolinteraction.FieldDurationMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ToolInteraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolinteraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolInteractionUpsertOne) UpdateNewValues() *ToolInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(toolinteraction.FieldID)
		}
		if _, exists := u.create.mutation.EngagementID(); exists {
			s.SetIgnore(toolinteraction.FieldEngagementID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(toolinteraction.FieldAgentID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(toolinteraction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolInteraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ToolInteractionUpsertOne) Ignore() *ToolInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolInteractionUpsertOne) DoNothing() *ToolInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolInteractionCreate.OnConflict
// documentation for more info.
func (u *ToolInteractionUpsertOne) Update(set func(*ToolInteractionUpsert)) *ToolInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolInteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetServerName sets the "server_name" field.
func (u *ToolInteractionUpsertOne) SetServerName(v string) *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetServerName(v)
	})
}

// UpdateServerName sets the "server_name" field to the value that was provided on create.
func (u *ToolInteractionUpsertOne) UpdateServerName() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateServerName()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ToolInteractionUpsertOne) SetToolName(v string) *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolInteractionUpsertOne) UpdateToolName() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateToolName()
	})
}

// SetArguments sets the "arguments" field.
func (u *ToolInteractionUpsertOne) SetArguments(v map[string]interface{}) *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetArguments(v)
	})
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *ToolInteractionUpsertOne) UpdateArguments() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateArguments()
	})
}

// ClearArguments clears the value of the "arguments" field.
func (u *ToolInteractionUpsertOne) ClearArguments() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.ClearArguments()
	})
}

// SetSuccess sets the "success" field.
func (u *ToolInteractionUpsertOne) SetSuccess(v bool) *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ToolInteractionUpsertOne) UpdateSuccess() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateSuccess()
	})
}

// SetOutput sets the "output" field.
func (u *ToolInteractionUpsertOne) SetOutput(v string) *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ToolInteractionUpsertOne) UpdateOutput() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *ToolInteractionUpsertOne) ClearOutput() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.ClearOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ToolInteractionUpsertOne) SetErrorMessage(v string) *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ToolInteractionUpsertOne) UpdateErrorMessage() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ToolInteractionUpsertOne) ClearErrorMessage() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetRisk sets the "risk" field.
func (u *ToolInteractionUpsertOne) SetRisk(v string) *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetRisk(v)
	})
}

// UpdateRisk sets the "risk" field to the value that was provided on create.
func (u *ToolInteractionUpsertOne) UpdateRisk() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateRisk()
	})
}

// ClearRisk clears the value of the "risk" field.
func (u *ToolInteractionUpsertOne) ClearRisk() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.ClearRisk()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ToolInteractionUpsertOne) SetDurationMs(v int64) *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ToolInteractionUpsertOne) AddDurationMs(v int64) *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ToolInteractionUpsertOne) UpdateDurationMs() *ToolInteractionUpsertOne {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *ToolInteractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolInteractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolInteractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ToolInteractionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ToolInteractionUpsertOne.ID is not supported by MySQL driver. Use ToolInteractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ToolInteractionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ToolInteractionCreateBulk is the builder for creating many ToolInteraction entities in bulk.
type ToolInteractionCreateBulk struct {
	config
	err      error
	builders []*ToolInteractionCreate
	conflict []sql.ConflictOption
}

// Save creates the ToolInteraction entities in the database.
func (_c *ToolInteractionCreateBulk) Save(ctx context.Context) ([]*ToolInteraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolInteraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolInteractionMutation)
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
func (_c *ToolInteractionCreateBulk) SaveX(ctx context.Context) []*ToolInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolInteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolInteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolInteraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolInteractionUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolInteractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ToolInteractionUpsertBulk {
	_c.conflict = opts
	return &ToolInteractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolInteraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolInteractionCreateBulk) OnConflictColumns(columns ...string) *ToolInteractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolInteractionUpsertBulk{
		create: _c,
	}
}

// ToolInteractionUpsertBulk is the builder for "upsert"-ing
// a bulk of ToolInteraction nodes.
type ToolInteractionUpsertBulk struct {
	create *ToolInteractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ToolInteraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolinteraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolInteractionUpsertBulk) UpdateNewValues() *ToolInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(toolinteraction.FieldID)
			}
			if _, exists := b.mutation.EngagementID(); exists {
				s.SetIgnore(toolinteraction.FieldEngagementID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(toolinteraction.FieldAgentID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(toolinteraction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolInteraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ToolInteractionUpsertBulk) Ignore() *ToolInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolInteractionUpsertBulk) DoNothing() *ToolInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolInteractionCreateBulk.OnConflict
// documentation for more info.
func (u *ToolInteractionUpsertBulk) Update(set func(*ToolInteractionUpsert)) *ToolInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolInteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetServerName sets the "server_name" field.
func (u *ToolInteractionUpsertBulk) SetServerName(v string) *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetServerName(v)
	})
}

// UpdateServerName sets the "server_name" field to the value that was provided on create.
func (u *ToolInteractionUpsertBulk) UpdateServerName() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateServerName()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ToolInteractionUpsertBulk) SetToolName(v string) *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolInteractionUpsertBulk) UpdateToolName() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateToolName()
	})
}

// SetArguments sets the "arguments" field.
func (u *ToolInteractionUpsertBulk) SetArguments(v map[string]interface{}) *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetArguments(v)
	})
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *ToolInteractionUpsertBulk) UpdateArguments() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateArguments()
	})
}

// ClearArguments clears the value of the "arguments" field.
func (u *ToolInteractionUpsertBulk) ClearArguments() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.ClearArguments()
	})
}

// SetSuccess sets the "success" field.
func (u *ToolInteractionUpsertBulk) SetSuccess(v bool) *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ToolInteractionUpsertBulk) UpdateSuccess() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateSuccess()
	})
}

// SetOutput sets the "output" field.
func (u *ToolInteractionUpsertBulk) SetOutput(v string) *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *ToolInteractionUpsertBulk) UpdateOutput() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *ToolInteractionUpsertBulk) ClearOutput() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.ClearOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ToolInteractionUpsertBulk) SetErrorMessage(v string) *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ToolInteractionUpsertBulk) UpdateErrorMessage() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ToolInteractionUpsertBulk) ClearErrorMessage() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetRisk sets the "risk" field.
func (u *ToolInteractionUpsertBulk) SetRisk(v string) *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetRisk(v)
	})
}

// UpdateRisk sets the "risk" field to the value that was provided on create.
func (u *ToolInteractionUpsertBulk) UpdateRisk() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateRisk()
	})
}

// ClearRisk clears the value of the "risk" field.
func (u *ToolInteractionUpsertBulk) ClearRisk() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.ClearRisk()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ToolInteractionUpsertBulk) SetDurationMs(v int64) *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ToolInteractionUpsertBulk) AddDurationMs(v int64) *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ToolInteractionUpsertBulk) UpdateDurationMs() *ToolInteractionUpsertBulk {
	return u.Update(func(s *ToolInteractionUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *ToolInteractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ToolInteractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolInteractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolInteractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
