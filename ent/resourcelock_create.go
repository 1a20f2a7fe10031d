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
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/resourcelock"
)

// ResourceLockCreate is the builder for creating a ResourceLock entity.
type ResourceLockCreate struct {
	config
	mutation *ResourceLockMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetResource sets the "resource" field.
func (_c *ResourceLockCreate) SetResource(v string) *ResourceLockCreate {
	_c.mutation.SetResource(v)
	return _c
}

// SetEngagementID sets the "engagement_id" field.
func (_c *ResourceLockCreate) SetEngagementID(v string) *ResourceLockCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetOwner sets the "owner" field.
func (_c *ResourceLockCreate) SetOwner(v string) *ResourceLockCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *ResourceLockCreate) SetAcquiredAt(v time.Time) *ResourceLockCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *ResourceLockCreate) SetNillableAcquiredAt(v *time.Time) *ResourceLockCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_c *ResourceLockCreate) SetEngagement(v *Engagement) *ResourceLockCreate {
	return _c.SetEngagementID(v.ID)
}

// Mutation returns the ResourceLockMutation object of the builder.
func (_c *ResourceLockCreate) Mutation() *ResourceLockMutation {
	return _c.mutation
}

// Save creates the ResourceLock in the database.
func (_c *ResourceLockCreate) Save(ctx context.Context) (*ResourceLock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceLockCreate) SaveX(ctx context.Context) *ResourceLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceLockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceLockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResourceLockCreate) defaults() {
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		v := resourcelock.DefaultAcquiredAt()
		_c.mutation.SetAcquiredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceLockCreate) check() error {
	if _, ok := _c.mutation.Resource(); !ok {
		return &ValidationError{Name: "resource", err: errors.New(`ent: missing required field "ResourceLock.resource"`)}
	}
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "ResourceLock.engagement_id"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "ResourceLock.owner"`)}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "ResourceLock.acquired_at"`)}
	}
	if len(_c.mutation.EngagementIDs()) == 0 {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required edge "ResourceLock.engagement"`)}
	}
	return nil
}

func (_c *ResourceLockCreate) sqlSave(ctx context.Context) (*ResourceLock, error) {
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

func (_c *ResourceLockCreate) createSpec() (*ResourceLock, *sqlgraph.CreateSpec) {
	var (
		_node = &ResourceLock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resourcelock.Table, sqlgraph.NewFieldSpec(resourcelock.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Resource(); ok {
		_spec.SetField(resourcelock.FieldResource, field.TypeString, value)
		_node.Resource = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(resourcelock.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(resourcelock.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if nodes := _c.mutation.EngagementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   resourcelock.EngagementTable,
			Columns: []string{resourcelock.EngagementColumn},
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
//	client.ResourceLock.Create().
//		SetResource(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceLockUpsert) {
//			SetResource(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceLockCreate) OnConflict(opts ...sql.ConflictOption) *ResourceLockUpsertOne {
	_c.conflict = opts
	return &ResourceLockUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceLockCreate) OnConflictColumns(columns ...string) *ResourceLockUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceLockUpsertOne{
		create: _c,
	}
}

type (
	// ResourceLockUpsertOne is the builder for "upsert"-ing
	//  one ResourceLock node.
	ResourceLockUpsertOne struct {
		create *ResourceLockCreate
	}

	// ResourceLockUpsert is the "OnConflict" setter.
	ResourceLockUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwner sets the "owner" field.
func (u *ResourceLockUpsert) SetOwner(v string) *ResourceLockUpsert {
	u.Set(resourcelock.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *ResourceLockUpsert) UpdateOwner() *ResourceLockUpsert {
	u.SetExcluded(resourcelock.FieldOwner)
	return u
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *ResourceLockUpsert) SetAcquiredAt(v time.Time) *ResourceLockUpsert {
	u.Set(resourcelock.FieldAcquiredAt, v)
	return u
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *ResourceLockUpsert) UpdateAcquiredAt() *ResourceLockUpsert {
	u.SetExcluded(resourcelock.FieldAcquiredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ResourceLockUpsertOne) UpdateNewValues() *ResourceLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Resource(); exists {
			s.SetIgnore(resourcelock.FieldResource)
		}
		if _, exists := u.create.mutation.EngagementID(); exists {
			s.SetIgnore(resourcelock.FieldEngagementID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResourceLockUpsertOne) Ignore() *ResourceLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceLockUpsertOne) DoNothing() *ResourceLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceLockCreate.OnConflict
// documentation for more info.
func (u *ResourceLockUpsertOne) Update(set func(*ResourceLockUpsert)) *ResourceLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceLockUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwner sets the "owner" field.
func (u *ResourceLockUpsertOne) SetOwner(v string) *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *ResourceLockUpsertOne) UpdateOwner() *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateOwner()
	})
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *ResourceLockUpsertOne) SetAcquiredAt(v time.Time) *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetAcquiredAt(v)
	})
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *ResourceLockUpsertOne) UpdateAcquiredAt() *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateAcquiredAt()
	})
}

// Exec executes the query.
func (u *ResourceLockUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResourceLockCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceLockUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResourceLockUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResourceLockUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResourceLockCreateBulk is the builder for creating many ResourceLock entities in bulk.
type ResourceLockCreateBulk struct {
	config
	err      error
	builders []*ResourceLockCreate
	conflict []sql.ConflictOption
}

// Save creates the ResourceLock entities in the database.
func (_c *ResourceLockCreateBulk) Save(ctx context.Context) ([]*ResourceLock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResourceLock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceLockMutation)
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
func (_c *ResourceLockCreateBulk) SaveX(ctx context.Context) []*ResourceLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceLockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceLockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResourceLock.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceLockUpsert) {
//			SetResource(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceLockCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResourceLockUpsertBulk {
	_c.conflict = opts
	return &ResourceLockUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceLockCreateBulk) OnConflictColumns(columns ...string) *ResourceLockUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceLockUpsertBulk{
		create: _c,
	}
}

// ResourceLockUpsertBulk is the builder for "upsert"-ing
// a bulk of ResourceLock nodes.
type ResourceLockUpsertBulk struct {
	create *ResourceLockCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ResourceLockUpsertBulk) UpdateNewValues() *ResourceLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Resource(); exists {
				s.SetIgnore(resourcelock.FieldResource)
			}
			if _, exists := b.mutation.EngagementID(); exists {
				s.SetIgnore(resourcelock.FieldEngagementID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResourceLockUpsertBulk) Ignore() *ResourceLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceLockUpsertBulk) DoNothing() *ResourceLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceLockCreateBulk.OnConflict
// documentation for more info.
func (u *ResourceLockUpsertBulk) Update(set func(*ResourceLockUpsert)) *ResourceLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceLockUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwner sets the "owner" field.
func (u *ResourceLockUpsertBulk) SetOwner(v string) *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *ResourceLockUpsertBulk) UpdateOwner() *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateOwner()
	})
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *ResourceLockUpsertBulk) SetAcquiredAt(v time.Time) *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetAcquiredAt(v)
	})
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *ResourceLockUpsertBulk) UpdateAcquiredAt() *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateAcquiredAt()
	})
}

// Exec executes the query.
func (u *ResourceLockUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResourceLockCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResourceLockCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceLockUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
