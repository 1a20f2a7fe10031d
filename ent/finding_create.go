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
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/finding"
)

// FindingCreate is the builder for creating a Finding entity.
type FindingCreate struct {
	config
	mutation *FindingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEngagementID sets the "engagement_id" field.
func (_c *FindingCreate) SetEngagementID(v string) *FindingCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *FindingCreate) SetPhase(v string) *FindingCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *FindingCreate) SetNillablePhase(v *string) *FindingCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *FindingCreate) SetTitle(v string) *FindingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *FindingCreate) SetSeverity(v finding.Severity) *FindingCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *FindingCreate) SetDescription(v string) *FindingCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *FindingCreate) SetNillableDescription(v *string) *FindingCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *FindingCreate) SetEvidence(v []string) *FindingCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *FindingCreate) SetMetadata(v map[string]interface{}) *FindingCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *FindingCreate) SetAgentID(v string) *FindingCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *FindingCreate) SetNillableAgentID(v *string) *FindingCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FindingCreate) SetCreatedAt(v time.Time) *FindingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FindingCreate) SetNillableCreatedAt(v *time.Time) *FindingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FindingCreate) SetID(v string) *FindingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_c *FindingCreate) SetEngagement(v *Engagement) *FindingCreate {
	return _c.SetEngagementID(v.ID)
}

// Mutation returns the FindingMutation object of the builder.
func (_c *FindingCreate) Mutation() *FindingMutation {
	return _c.mutation
}

// Save creates the Finding in the database.
func (_c *FindingCreate) Save(ctx context.Context) (*Finding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FindingCreate) SaveX(ctx context.Context) *Finding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FindingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FindingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FindingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := finding.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FindingCreate) check() error {
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "Finding.engagement_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Finding.title"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Finding.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := finding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Finding.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Finding.created_at"`)}
	}
	if len(_c.mutation.EngagementIDs()) == 0 {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required edge "Finding.engagement"`)}
	}
	return nil
}

func (_c *FindingCreate) sqlSave(ctx context.Context) (*Finding, error) {
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
			return nil, fmt.Errorf("unexpected Finding.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FindingCreate) createSpec() (*Finding, *sqlgraph.CreateSpec) {
	var (
		_node = &Finding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(finding.Table, sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(finding.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(finding.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(finding.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(finding.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(finding.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(finding.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(finding.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(finding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EngagementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   finding.EngagementTable,
			Columns: []string{finding.EngagementColumn},
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
//	client.Finding.Create().
//		SetEngagementID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FindingUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *FindingCreate) OnConflict(opts ...sql.ConflictOption) *FindingUpsertOne {
	_c.conflict = opts
	return &FindingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Finding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FindingCreate) OnConflictColumns(columns ...string) *FindingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FindingUpsertOne{
		create: _c,
	}
}

type (
	// FindingUpsertOne is the builder for "upsert"-ing
	//  one Finding node.
	FindingUpsertOne struct {
		create *FindingCreate
	}

	// FindingUpsert is the "OnConflict" setter.
	FindingUpsert struct {
		*sql.UpdateSet
	}
)

// SetPhase sets the "phase" field.
func (u *FindingUpsert) SetPhase(v string) *FindingUpsert {
	u.Set(finding.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *FindingUpsert) UpdatePhase() *FindingUpsert {
	u.SetExcluded(finding.FieldPhase)
	return u
}

// ClearPhase clears the value of the "phase" field.
func (u *FindingUpsert) ClearPhase() *FindingUpsert {
	u.SetNull(finding.FieldPhase)
	return u
}

// SetTitle sets the "title" field.
func (u *FindingUpsert) SetTitle(v string) *FindingUpsert {
	u.Set(finding.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *FindingUpsert) UpdateTitle() *FindingUpsert {
	u.SetExcluded(finding.FieldTitle)
	return u
}

// SetSeverity sets the "severity" field.
func (u *FindingUpsert) SetSeverity(v finding.Severity) *FindingUpsert {
	u.Set(finding.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *FindingUpsert) UpdateSeverity() *FindingUpsert {
	u.SetExcluded(finding.FieldSeverity)
	return u
}

// SetDescription sets the "description" field.
func (u *FindingUpsert) SetDescription(v string) *FindingUpsert {
	u.Set(finding.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *FindingUpsert) UpdateDescription() *FindingUpsert {
	u.SetExcluded(finding.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *FindingUpsert) ClearDescription() *FindingUpsert {
	u.SetNull(finding.FieldDescription)
	return u
}

// SetEvidence sets the "evidence" field.
func (u *FindingUpsert) SetEvidence(v []string) *FindingUpsert {
	u.Set(finding.FieldEvidence, v)
	return u
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *FindingUpsert) UpdateEvidence() *FindingUpsert {
	u.SetExcluded(finding.FieldEvidence)
	return u
}

// ClearEvidence clears the value of the "evidence" field.
func (u *FindingUpsert) ClearEvidence() *FindingUpsert {
	u.SetNull(finding.FieldEvidence)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *FindingUpsert) SetMetadata(v map[string]interface{}) *FindingUpsert {
	u.Set(finding.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *FindingUpsert) UpdateMetadata() *FindingUpsert {
	u.SetExcluded(finding.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *FindingUpsert) ClearMetadata() *FindingUpsert {
	u.SetNull(finding.FieldMetadata)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *FindingUpsert) SetAgentID(v string) *FindingUpsert {
	u.Set(finding.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *FindingUpsert) UpdateAgentID() *FindingUpsert {
	u.SetExcluded(finding.FieldAgentID)
	return u
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *FindingUpsert) ClearAgentID() *FindingUpsert {
	u.SetNull(finding.FieldAgentID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Finding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(finding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FindingUpsertOne) UpdateNewValues() *FindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(finding.FieldID)
		}
		if _, exists := u.create.mutation.EngagementID(); exists {
			s.SetIgnore(finding.FieldEngagementID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(finding.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Finding.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FindingUpsertOne) Ignore() *FindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FindingUpsertOne) DoNothing() *FindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FindingCreate.OnConflict
// documentation for more info.
func (u *FindingUpsertOne) Update(set func(*FindingUpsert)) *FindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FindingUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhase sets the "phase" field.
func (u *FindingUpsertOne) SetPhase(v string) *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *FindingUpsertOne) UpdatePhase() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.UpdatePhase()
	})
}

// ClearPhase clears the value of the "phase" field.
func (u *FindingUpsertOne) ClearPhase() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.ClearPhase()
	})
}

// SetTitle sets the "title" field.
func (u *FindingUpsertOne) SetTitle(v string) *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *FindingUpsertOne) UpdateTitle() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateTitle()
	})
}

// SetSeverity sets the "severity" field.
func (u *FindingUpsertOne) SetSeverity(v finding.Severity) *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *FindingUpsertOne) UpdateSeverity() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateSeverity()
	})
}

// SetDescription sets the "description" field.
func (u *FindingUpsertOne) SetDescription(v string) *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *FindingUpsertOne) UpdateDescription() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *FindingUpsertOne) ClearDescription() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.ClearDescription()
	})
}

// SetEvidence sets the "evidence" field.
func (u *FindingUpsertOne) SetEvidence(v []string) *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.SetEvidence(v)
	})
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *FindingUpsertOne) UpdateEvidence() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateEvidence()
	})
}

// ClearEvidence clears the value of the "evidence" field.
func (u *FindingUpsertOne) ClearEvidence() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.ClearEvidence()
	})
}

// SetMetadata sets the "metadata" field.
func (u *FindingUpsertOne) SetMetadata(v map[string]interface{}) *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *FindingUpsertOne) UpdateMetadata() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *FindingUpsertOne) ClearMetadata() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.ClearMetadata()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *FindingUpsertOne) SetAgentID(v string) *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *FindingUpsertOne) UpdateAgentID() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *FindingUpsertOne) ClearAgentID() *FindingUpsertOne {
	return u.Update(func(s *FindingUpsert) {
		s.ClearAgentID()
	})
}

// Exec executes the query.
func (u *FindingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FindingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FindingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FindingUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FindingUpsertOne.ID is not supported by MySQL driver. Use FindingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FindingUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FindingCreateBulk is the builder for creating many Finding entities in bulk.
type FindingCreateBulk struct {
	config
	err      error
	builders []*FindingCreate
	conflict []sql.ConflictOption
}

// Save creates the Finding entities in the database.
func (_c *FindingCreateBulk) Save(ctx context.Context) ([]*Finding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Finding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FindingMutation)
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
func (_c *FindingCreateBulk) SaveX(ctx context.Context) []*Finding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FindingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FindingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Finding.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FindingUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *FindingCreateBulk) OnConflict(opts ...sql.ConflictOption) *FindingUpsertBulk {
	_c.conflict = opts
	return &FindingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Finding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FindingCreateBulk) OnConflictColumns(columns ...string) *FindingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FindingUpsertBulk{
		create: _c,
	}
}

// FindingUpsertBulk is the builder for "upsert"-ing
// a bulk of Finding nodes.
type FindingUpsertBulk struct {
	create *FindingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Finding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(finding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FindingUpsertBulk) UpdateNewValues() *FindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(finding.FieldID)
			}
			if _, exists := b.mutation.EngagementID(); exists {
				s.SetIgnore(finding.FieldEngagementID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(finding.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Finding.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FindingUpsertBulk) Ignore() *FindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FindingUpsertBulk) DoNothing() *FindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FindingCreateBulk.OnConflict
// documentation for more info.
func (u *FindingUpsertBulk) Update(set func(*FindingUpsert)) *FindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FindingUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhase sets the "phase" field.
func (u *FindingUpsertBulk) SetPhase(v string) *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *FindingUpsertBulk) UpdatePhase() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.UpdatePhase()
	})
}

// ClearPhase clears the value of the "phase" field.
func (u *FindingUpsertBulk) ClearPhase() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.ClearPhase()
	})
}

// SetTitle sets the "title" field.
func (u *FindingUpsertBulk) SetTitle(v string) *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *FindingUpsertBulk) UpdateTitle() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateTitle()
	})
}

// SetSeverity sets the "severity" field.
func (u *FindingUpsertBulk) SetSeverity(v finding.Severity) *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *FindingUpsertBulk) UpdateSeverity() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateSeverity()
	})
}

// SetDescription sets the "description" field.
func (u *FindingUpsertBulk) SetDescription(v string) *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *FindingUpsertBulk) UpdateDescription() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *FindingUpsertBulk) ClearDescription() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.ClearDescription()
	})
}

// SetEvidence sets the "evidence" field.
func (u *FindingUpsertBulk) SetEvidence(v []string) *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.SetEvidence(v)
	})
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *FindingUpsertBulk) UpdateEvidence() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateEvidence()
	})
}

// ClearEvidence clears the value of the "evidence" field.
func (u *FindingUpsertBulk) ClearEvidence() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.ClearEvidence()
	})
}

// SetMetadata sets the "metadata" field.
func (u *FindingUpsertBulk) SetMetadata(v map[string]interface{}) *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *FindingUpsertBulk) UpdateMetadata() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *FindingUpsertBulk) ClearMetadata() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.ClearMetadata()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *FindingUpsertBulk) SetAgentID(v string) *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *FindingUpsertBulk) UpdateAgentID() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *FindingUpsertBulk) ClearAgentID() *FindingUpsertBulk {
	return u.Update(func(s *FindingUpsert) {
		s.ClearAgentID()
	})
}

// Exec executes the query.
func (u *FindingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FindingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FindingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FindingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
