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
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/agentmessage"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/event"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/finding"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/llminteraction"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/resourcelock"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/toolinteraction"
)

// EngagementCreate is the builder for creating a Engagement entity.
type EngagementCreate struct {
	config
	mutation *EngagementMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetObjective sets the "objective" field.
func (_c *EngagementCreate) SetObjective(v string) *EngagementCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetObjectiveType sets the "objective_type" field.
func (_c *EngagementCreate) SetObjectiveType(v string) *EngagementCreate {
	_c.mutation.SetObjectiveType(v)
	return _c
}

// SetNillableObjectiveType sets the "objective_type" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableObjectiveType(v *string) *EngagementCreate {
	if v != nil {
		_c.SetObjectiveType(*v)
	}
	return _c
}

// SetScope sets the "scope" field.
func (_c *EngagementCreate) SetScope(v map[string]interface{}) *EngagementCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EngagementCreate) SetStatus(v engagement.Status) *EngagementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableStatus(v *engagement.Status) *EngagementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EngagementCreate) SetCreatedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableCreatedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *EngagementCreate) SetStartedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableStartedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *EngagementCreate) SetCompletedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableCompletedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *EngagementCreate) SetErrorMessage(v string) *EngagementCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableErrorMessage(v *string) *EngagementCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFinalReport sets the "final_report" field.
func (_c *EngagementCreate) SetFinalReport(v string) *EngagementCreate {
	_c.mutation.SetFinalReport(v)
	return _c
}

// SetNillableFinalReport sets the "final_report" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableFinalReport(v *string) *EngagementCreate {
	if v != nil {
		_c.SetFinalReport(*v)
	}
	return _c
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_c *EngagementCreate) SetExecutiveSummary(v string) *EngagementCreate {
	_c.mutation.SetExecutiveSummary(v)
	return _c
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableExecutiveSummary(v *string) *EngagementCreate {
	if v != nil {
		_c.SetExecutiveSummary(*v)
	}
	return _c
}

// SetStats sets the "stats" field.
func (_c *EngagementCreate) SetStats(v map[string]interface{}) *EngagementCreate {
	_c.mutation.SetStats(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *EngagementCreate) SetPodID(v string) *EngagementCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *EngagementCreate) SetNillablePodID(v *string) *EngagementCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *EngagementCreate) SetLastInteractionAt(v time.Time) *EngagementCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableLastInteractionAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *EngagementCreate) SetDeletedAt(v time.Time) *EngagementCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableDeletedAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EngagementCreate) SetID(v string) *EngagementCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *EngagementCreate) AddTaskIDs(ids ...string) *EngagementCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *EngagementCreate) AddTasks(v ...*Task) *EngagementCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddAgentMessageIDs adds the "agent_messages" edge to the AgentMessage entity by IDs.
func (_c *EngagementCreate) AddAgentMessageIDs(ids ...int) *EngagementCreate {
	_c.mutation.AddAgentMessageIDs(ids...)
	return _c
}

// AddAgentMessages adds the "agent_messages" edges to the AgentMessage entity.
func (_c *EngagementCreate) AddAgentMessages(v ...*AgentMessage) *EngagementCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentMessageIDs(ids...)
}

// AddLockIDs adds the "locks" edge to the ResourceLock entity by IDs.
func (_c *EngagementCreate) AddLockIDs(ids ...int) *EngagementCreate {
	_c.mutation.AddLockIDs(ids...)
	return _c
}

// AddLocks adds the "locks" edges to the ResourceLock entity.
func (_c *EngagementCreate) AddLocks(v ...*ResourceLock) *EngagementCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLockIDs(ids...)
}

// AddFindingIDs adds the "findings" edge to the Finding entity by IDs.
func (_c *EngagementCreate) AddFindingIDs(ids ...string) *EngagementCreate {
	_c.mutation.AddFindingIDs(ids...)
	return _c
}

// AddFindings adds the "findings" edges to the Finding entity.
func (_c *EngagementCreate) AddFindings(v ...*Finding) *EngagementCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFindingIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_c *EngagementCreate) AddLlmInteractionIDs(ids ...string) *EngagementCreate {
	_c.mutation.AddLlmInteractionIDs(ids...)
	return _c
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_c *EngagementCreate) AddLlmInteractions(v ...*LLMInteraction) *EngagementCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLlmInteractionIDs(ids...)
}

// AddToolInteractionIDs adds the "tool_interactions" edge to the ToolInteraction entity by IDs.
func (_c *EngagementCreate) AddToolInteractionIDs(ids ...string) *EngagementCreate {
	_c.mutation.AddToolInteractionIDs(ids...)
	return _c
}

// AddToolInteractions adds the "tool_interactions" edges to the ToolInteraction entity.
func (_c *EngagementCreate) AddToolInteractions(v ...*ToolInteraction) *EngagementCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToolInteractionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *EngagementCreate) AddEventIDs(ids ...int) *EngagementCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *EngagementCreate) AddEvents(v ...*Event) *EngagementCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the EngagementMutation object of the builder.
func (_c *EngagementCreate) Mutation() *EngagementMutation {
	return _c.mutation
}

// Save creates the Engagement in the database.
func (_c *EngagementCreate) Save(ctx context.Context) (*Engagement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngagementCreate) SaveX(ctx context.Context) *Engagement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngagementCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := engagement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := engagement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngagementCreate) check() error {
	if _, ok := _c.mutation.Objective(); !ok {
		return &ValidationError{Name: "objective", err: errors.New(`ent: missing required field "Engagement.objective"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Engagement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := engagement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Engagement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Engagement.created_at"`)}
	}
	return nil
}

func (_c *EngagementCreate) sqlSave(ctx context.Context) (*Engagement, error) {
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
			return nil, fmt.Errorf("unexpected Engagement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EngagementCreate) createSpec() (*Engagement, *sqlgraph.CreateSpec) {
	var (
		_node = &Engagement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(engagement.Table, sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(engagement.FieldObjective, field.TypeString, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.ObjectiveType(); ok {
		_spec.SetField(engagement.FieldObjectiveType, field.TypeString, value)
		_node.ObjectiveType = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(engagement.FieldScope, field.TypeJSON, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(engagement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(engagement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(engagement.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(engagement.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(engagement.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.FinalReport(); ok {
		_spec.SetField(engagement.FieldFinalReport, field.TypeString, value)
		_node.FinalReport = &value
	}
	if value, ok := _c.mutation.ExecutiveSummary(); ok {
		_spec.SetField(engagement.FieldExecutiveSummary, field.TypeString, value)
		_node.ExecutiveSummary = &value
	}
	if value, ok := _c.mutation.Stats(); ok {
		_spec.SetField(engagement.FieldStats, field.TypeJSON, value)
		_node.Stats = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(engagement.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(engagement.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(engagement.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.TasksTable,
			Columns: []string{engagement.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.AgentMessagesTable,
			Columns: []string{engagement.AgentMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.LocksTable,
			Columns: []string{engagement.LocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resourcelock.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FindingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.FindingsTable,
			Columns: []string{engagement.FindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.LlmInteractionsTable,
			Columns: []string{engagement.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToolInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.ToolInteractionsTable,
			Columns: []string{engagement.ToolInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   engagement.EventsTable,
			Columns: []string{engagement.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Engagement.Create().
//		SetObjective(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EngagementUpsert) {
//			SetObjective(v+v).
//		}).
//		Exec(ctx)
func (_c *EngagementCreate) OnConflict(opts ...sql.ConflictOption) *EngagementUpsertOne {
	_c.conflict = opts
	return &EngagementUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Engagement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EngagementCreate) OnConflictColumns(columns ...string) *EngagementUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EngagementUpsertOne{
		create: _c,
	}
}

type (
	// EngagementUpsertOne is the builder for "upsert"-ing
	//  one Engagement node.
	EngagementUpsertOne struct {
		create *EngagementCreate
	}

	// EngagementUpsert is the "OnConflict" setter.
	EngagementUpsert struct {
		*sql.UpdateSet
	}
)

// SetObjective sets the "objective" field.
func (u *EngagementUpsert) SetObjective(v string) *EngagementUpsert {
	u.Set(engagement.FieldObjective, v)
	return u
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateObjective() *EngagementUpsert {
	u.SetExcluded(engagement.FieldObjective)
	return u
}

// SetObjectiveType sets the "objective_type" field.
func (u *EngagementUpsert) SetObjectiveType(v string) *EngagementUpsert {
	u.Set(engagement.FieldObjectiveType, v)
	return u
}

// UpdateObjectiveType sets the "objective_type" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateObjectiveType() *EngagementUpsert {
	u.SetExcluded(engagement.FieldObjectiveType)
	return u
}

// ClearObjectiveType clears the value of the "objective_type" field.
func (u *EngagementUpsert) ClearObjectiveType() *EngagementUpsert {
	u.SetNull(engagement.FieldObjectiveType)
	return u
}

// SetScope sets the "scope" field.
func (u *EngagementUpsert) SetScope(v map[string]interface{}) *EngagementUpsert {
	u.Set(engagement.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateScope() *EngagementUpsert {
	u.SetExcluded(engagement.FieldScope)
	return u
}

// ClearScope clears the value of the "scope" field.
func (u *EngagementUpsert) ClearScope() *EngagementUpsert {
	u.SetNull(engagement.FieldScope)
	return u
}

// SetStatus sets the "status" field.
func (u *EngagementUpsert) SetStatus(v engagement.Status) *EngagementUpsert {
	u.Set(engagement.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateStatus() *EngagementUpsert {
	u.SetExcluded(engagement.FieldStatus)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *EngagementUpsert) SetCreatedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateCreatedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldCreatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *EngagementUpsert) SetStartedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateStartedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *EngagementUpsert) ClearStartedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *EngagementUpsert) SetCompletedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateCompletedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EngagementUpsert) ClearCompletedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldCompletedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *EngagementUpsert) SetErrorMessage(v string) *EngagementUpsert {
	u.Set(engagement.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateErrorMessage() *EngagementUpsert {
	u.SetExcluded(engagement.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *EngagementUpsert) ClearErrorMessage() *EngagementUpsert {
	u.SetNull(engagement.FieldErrorMessage)
	return u
}

// SetFinalReport sets the "final_report" field.
func (u *EngagementUpsert) SetFinalReport(v string) *EngagementUpsert {
	u.Set(engagement.FieldFinalReport, v)
	return u
}

// UpdateFinalReport sets the "final_report" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateFinalReport() *EngagementUpsert {
	u.SetExcluded(engagement.FieldFinalReport)
	return u
}

// ClearFinalReport clears the value of the "final_report" field.
func (u *EngagementUpsert) ClearFinalReport() *EngagementUpsert {
	u.SetNull(engagement.FieldFinalReport)
	return u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *EngagementUpsert) SetExecutiveSummary(v string) *EngagementUpsert {
	u.Set(engagement.FieldExecutiveSummary, v)
	return u
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateExecutiveSummary() *EngagementUpsert {
	u.SetExcluded(engagement.FieldExecutiveSummary)
	return u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *EngagementUpsert) ClearExecutiveSummary() *EngagementUpsert {
	u.SetNull(engagement.FieldExecutiveSummary)
	return u
}

// SetStats sets the "stats" field.
func (u *EngagementUpsert) SetStats(v map[string]interface{}) *EngagementUpsert {
	u.Set(engagement.FieldStats, v)
	return u
}

// UpdateStats sets the "stats" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateStats() *EngagementUpsert {
	u.SetExcluded(engagement.FieldStats)
	return u
}

// ClearStats clears the value of the "stats" field.
func (u *EngagementUpsert) ClearStats() *EngagementUpsert {
	u.SetNull(engagement.FieldStats)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *EngagementUpsert) SetPodID(v string) *EngagementUpsert {
	u.Set(engagement.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *EngagementUpsert) UpdatePodID() *EngagementUpsert {
	u.SetExcluded(engagement.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *EngagementUpsert) ClearPodID() *EngagementUpsert {
	u.SetNull(engagement.FieldPodID)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *EngagementUpsert) SetLastInteractionAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateLastInteractionAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *EngagementUpsert) ClearLastInteractionAt() *EngagementUpsert {
	u.SetNull(engagement.FieldLastInteractionAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EngagementUpsert) SetDeletedAt(v time.Time) *EngagementUpsert {
	u.Set(engagement.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EngagementUpsert) UpdateDeletedAt() *EngagementUpsert {
	u.SetExcluded(engagement.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EngagementUpsert) ClearDeletedAt() *EngagementUpsert {
	u.SetNull(engagement.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Engagement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(engagement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EngagementUpsertOne) UpdateNewValues() *EngagementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(engagement.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Engagement.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EngagementUpsertOne) Ignore() *EngagementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EngagementUpsertOne) DoNothing() *EngagementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EngagementCreate.OnConflict
// documentation for more info.
func (u *EngagementUpsertOne) Update(set func(*EngagementUpsert)) *EngagementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EngagementUpsert{UpdateSet: update})
	}))
	return u
}

// SetObjective sets the "objective" field.
func (u *EngagementUpsertOne) SetObjective(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetObjective(v)
	})
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateObjective() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateObjective()
	})
}

// SetObjectiveType sets the "objective_type" field.
func (u *EngagementUpsertOne) SetObjectiveType(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetObjectiveType(v)
	})
}

// UpdateObjectiveType sets the "objective_type" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateObjectiveType() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateObjectiveType()
	})
}

// ClearObjectiveType clears the value of the "objective_type" field.
func (u *EngagementUpsertOne) ClearObjectiveType() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearObjectiveType()
	})
}

// SetScope sets the "scope" field.
func (u *EngagementUpsertOne) SetScope(v map[string]interface{}) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateScope() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateScope()
	})
}

// ClearScope clears the value of the "scope" field.
func (u *EngagementUpsertOne) ClearScope() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearScope()
	})
}

// SetStatus sets the "status" field.
func (u *EngagementUpsertOne) SetStatus(v engagement.Status) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateStatus() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EngagementUpsertOne) SetCreatedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateCreatedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *EngagementUpsertOne) SetStartedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateStartedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *EngagementUpsertOne) ClearStartedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *EngagementUpsertOne) SetCompletedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateCompletedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EngagementUpsertOne) ClearCompletedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *EngagementUpsertOne) SetErrorMessage(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateErrorMessage() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *EngagementUpsertOne) ClearErrorMessage() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearErrorMessage()
	})
}

// SetFinalReport sets the "final_report" field.
func (u *EngagementUpsertOne) SetFinalReport(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetFinalReport(v)
	})
}

// UpdateFinalReport sets the "final_report" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateFinalReport() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateFinalReport()
	})
}

// ClearFinalReport clears the value of the "final_report" field.
func (u *EngagementUpsertOne) ClearFinalReport() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearFinalReport()
	})
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *EngagementUpsertOne) SetExecutiveSummary(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetExecutiveSummary(v)
	})
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateExecutiveSummary() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateExecutiveSummary()
	})
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *EngagementUpsertOne) ClearExecutiveSummary() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearExecutiveSummary()
	})
}

// SetStats sets the "stats" field.
func (u *EngagementUpsertOne) SetStats(v map[string]interface{}) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetStats(v)
	})
}

// UpdateStats sets the "stats" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateStats() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateStats()
	})
}

// ClearStats clears the value of the "stats" field.
func (u *EngagementUpsertOne) ClearStats() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearStats()
	})
}

// SetPodID sets the "pod_id" field.
func (u *EngagementUpsertOne) SetPodID(v string) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdatePodID() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *EngagementUpsertOne) ClearPodID() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *EngagementUpsertOne) SetLastInteractionAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateLastInteractionAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *EngagementUpsertOne) ClearLastInteractionAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EngagementUpsertOne) SetDeletedAt(v time.Time) *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EngagementUpsertOne) UpdateDeletedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EngagementUpsertOne) ClearDeletedAt() *EngagementUpsertOne {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *EngagementUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EngagementCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EngagementUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EngagementUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EngagementUpsertOne.ID is not supported by MySQL driver. Use EngagementUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EngagementUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EngagementCreateBulk is the builder for creating many Engagement entities in bulk.
type EngagementCreateBulk struct {
	config
	err      error
	builders []*EngagementCreate
	conflict []sql.ConflictOption
}

// Save creates the Engagement entities in the database.
func (_c *EngagementCreateBulk) Save(ctx context.Context) ([]*Engagement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Engagement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngagementMutation)
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
func (_c *EngagementCreateBulk) SaveX(ctx context.Context) []*Engagement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Engagement.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EngagementUpsert) {
//			SetObjective(v+v).
//		}).
//		Exec(ctx)
func (_c *EngagementCreateBulk) OnConflict(opts ...sql.ConflictOption) *EngagementUpsertBulk {
	_c.conflict = opts
	return &EngagementUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Engagement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EngagementCreateBulk) OnConflictColumns(columns ...string) *EngagementUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EngagementUpsertBulk{
		create: _c,
	}
}

// EngagementUpsertBulk is the builder for "upsert"-ing
// a bulk of Engagement nodes.
type EngagementUpsertBulk struct {
	create *EngagementCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Engagement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(engagement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EngagementUpsertBulk) UpdateNewValues() *EngagementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(engagement.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Engagement.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EngagementUpsertBulk) Ignore() *EngagementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EngagementUpsertBulk) DoNothing() *EngagementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EngagementCreateBulk.OnConflict
// documentation for more info.
func (u *EngagementUpsertBulk) Update(set func(*EngagementUpsert)) *EngagementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EngagementUpsert{UpdateSet: update})
	}))
	return u
}

// SetObjective sets the "objective" field.
func (u *EngagementUpsertBulk) SetObjective(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetObjective(v)
	})
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateObjective() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateObjective()
	})
}

// SetObjectiveType sets the "objective_type" field.
func (u *EngagementUpsertBulk) SetObjectiveType(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetObjectiveType(v)
	})
}

// UpdateObjectiveType sets the "objective_type" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateObjectiveType() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateObjectiveType()
	})
}

// ClearObjectiveType clears the value of the "objective_type" field.
func (u *EngagementUpsertBulk) ClearObjectiveType() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearObjectiveType()
	})
}

// SetScope sets the "scope" field.
func (u *EngagementUpsertBulk) SetScope(v map[string]interface{}) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateScope() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateScope()
	})
}

// ClearScope clears the value of the "scope" field.
func (u *EngagementUpsertBulk) ClearScope() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearScope()
	})
}

// SetStatus sets the "status" field.
func (u *EngagementUpsertBulk) SetStatus(v engagement.Status) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateStatus() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EngagementUpsertBulk) SetCreatedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateCreatedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *EngagementUpsertBulk) SetStartedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateStartedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *EngagementUpsertBulk) ClearStartedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *EngagementUpsertBulk) SetCompletedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateCompletedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EngagementUpsertBulk) ClearCompletedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *EngagementUpsertBulk) SetErrorMessage(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateErrorMessage() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *EngagementUpsertBulk) ClearErrorMessage() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearErrorMessage()
	})
}

// SetFinalReport sets the "final_report" field.
func (u *EngagementUpsertBulk) SetFinalReport(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetFinalReport(v)
	})
}

// UpdateFinalReport sets the "final_report" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateFinalReport() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateFinalReport()
	})
}

// ClearFinalReport clears the value of the "final_report" field.
func (u *EngagementUpsertBulk) ClearFinalReport() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearFinalReport()
	})
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *EngagementUpsertBulk) SetExecutiveSummary(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetExecutiveSummary(v)
	})
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateExecutiveSummary() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateExecutiveSummary()
	})
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *EngagementUpsertBulk) ClearExecutiveSummary() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearExecutiveSummary()
	})
}

// SetStats sets the "stats" field.
func (u *EngagementUpsertBulk) SetStats(v map[string]interface{}) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetStats(v)
	})
}

// UpdateStats sets the "stats" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateStats() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateStats()
	})
}

// ClearStats clears the value of the "stats" field.
func (u *EngagementUpsertBulk) ClearStats() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearStats()
	})
}

// SetPodID sets the "pod_id" field.
func (u *EngagementUpsertBulk) SetPodID(v string) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdatePodID() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *EngagementUpsertBulk) ClearPodID() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *EngagementUpsertBulk) SetLastInteractionAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateLastInteractionAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *EngagementUpsertBulk) ClearLastInteractionAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *EngagementUpsertBulk) SetDeletedAt(v time.Time) *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *EngagementUpsertBulk) UpdateDeletedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *EngagementUpsertBulk) ClearDeletedAt() *EngagementUpsertBulk {
	return u.Update(func(s *EngagementUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *EngagementUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EngagementCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EngagementCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EngagementUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
