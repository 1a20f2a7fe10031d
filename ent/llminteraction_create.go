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
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/llminteraction"
)

// LLMInteractionCreate is the builder for creating a LLMInteraction entity.
type LLMInteractionCreate struct {
	config
	mutation *LLMInteractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEngagementID sets the "engagement_id" field.
func (_c *LLMInteractionCreate) SetEngagementID(v string) *LLMInteractionCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *LLMInteractionCreate) SetAgentID(v string) *LLMInteractionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMInteractionCreate) SetProvider(v string) *LLMInteractionCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *LLMInteractionCreate) SetModelName(v string) *LLMInteractionCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *LLMInteractionCreate) SetIteration(v int) *LLMInteractionCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableIteration(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetIteration(*v)
	}
	return _c
}

// SetRequestSummary sets the "request_summary" field.
func (_c *LLMInteractionCreate) SetRequestSummary(v string) *LLMInteractionCreate {
	_c.mutation.SetRequestSummary(v)
	return _c
}

// SetNillableRequestSummary sets the "request_summary" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableRequestSummary(v *string) *LLMInteractionCreate {
	if v != nil {
		_c.SetRequestSummary(*v)
	}
	return _c
}

// SetResponseContent sets the "response_content" field.
func (_c *LLMInteractionCreate) SetResponseContent(v string) *LLMInteractionCreate {
	_c.mutation.SetResponseContent(v)
	return _c
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableResponseContent(v *string) *LLMInteractionCreate {
	if v != nil {
		_c.SetResponseContent(*v)
	}
	return _c
}

// SetToolCallCount sets the "tool_call_count" field.
func (_c *LLMInteractionCreate) SetToolCallCount(v int) *LLMInteractionCreate {
	_c.mutation.SetToolCallCount(v)
	return _c
}

// SetNillableToolCallCount sets the "tool_call_count" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableToolCallCount(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetToolCallCount(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *LLMInteractionCreate) SetPromptTokens(v int) *LLMInteractionCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillablePromptTokens(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *LLMInteractionCreate) SetCompletionTokens(v int) *LLMInteractionCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableCompletionTokens(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *LLMInteractionCreate) SetTotalTokens(v int) *LLMInteractionCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableTotalTokens(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LLMInteractionCreate) SetDurationMs(v int64) *LLMInteractionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMInteractionCreate) SetErrorMessage(v string) *LLMInteractionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableErrorMessage(v *string) *LLMInteractionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMInteractionCreate) SetCreatedAt(v time.Time) *LLMInteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableCreatedAt(v *time.Time) *LLMInteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMInteractionCreate) SetID(v string) *LLMInteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_c *LLMInteractionCreate) SetEngagement(v *Engagement) *LLMInteractionCreate {
	return _c.SetEngagementID(v.ID)
}

// Mutation returns the LLMInteractionMutation object of the builder.
func (_c *LLMInteractionCreate) Mutation() *LLMInteractionMutation {
	return _c.mutation
}

// Save creates the LLMInteraction in the database.
func (_c *LLMInteractionCreate) Save(ctx context.Context) (*LLMInteraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMInteractionCreate) SaveX(ctx context.Context) *LLMInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMInteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMInteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMInteractionCreate) defaults() {
	if _, ok := _c.mutation.ToolCallCount(); !ok {
		v := llminteraction.DefaultToolCallCount
		_c.mutation.SetToolCallCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llminteraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMInteractionCreate) check() error {
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "LLMInteraction.engagement_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "LLMInteraction.agent_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMInteraction.provider"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "LLMInteraction.model_name"`)}
	}
	if _, ok := _c.mutation.ToolCallCount(); !ok {
		return &ValidationError{Name: "tool_call_count", err: errors.New(`ent: missing required field "LLMInteraction.tool_call_count"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "LLMInteraction.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMInteraction.created_at"`)}
	}
	if len(_c.mutation.EngagementIDs()) == 0 {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required edge "LLMInteraction.engagement"`)}
	}
	return nil
}

func (_c *LLMInteractionCreate) sqlSave(ctx context.Context) (*LLMInteraction, error) {
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
			return nil, fmt.Errorf("unexpected LLMInteraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMInteractionCreate) createSpec() (*LLMInteraction, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMInteraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llminteraction.Table, sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(llminteraction.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llminteraction.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(llminteraction.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(llminteraction.FieldIteration, field.TypeInt, value)
		_node.Iteration = &value
	}
	if value, ok := _c.mutation.RequestSummary(); ok {
		_spec.SetField(llminteraction.FieldRequestSummary, field.TypeString, value)
		_node.RequestSummary = value
	}
	if value, ok := _c.mutation.ResponseContent(); ok {
		_spec.SetField(llminteraction.FieldResponseContent, field.TypeString, value)
		_node.ResponseContent = &value
	}
	if value, ok := _c.mutation.ToolCallCount(); ok {
		_spec.SetField(llminteraction.FieldToolCallCount, field.TypeInt, value)
		_node.ToolCallCount = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(llminteraction.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = &value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(llminteraction.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(llminteraction.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(llminteraction.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llminteraction.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llminteraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EngagementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llminteraction.EngagementTable,
			Columns: []string{llminteraction.EngagementColumn},
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
//	client.LLMInteraction.Create().
//		SetEngagementID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMInteractionUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMInteractionCreate) OnConflict(opts ...sql.ConflictOption) *LLMInteractionUpsertOne {
	_c.conflict = opts
	return &LLMInteractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMInteractionCreate) OnConflictColumns(columns ...string) *LLMInteractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMInteractionUpsertOne{
		create: _c,
	}
}

type (
	// LLMInteractionUpsertOne is the builder for "upsert"-ing
	//  one LLMInteraction node.
	LLMInteractionUpsertOne struct {
		create *LLMInteractionCreate
	}

	// LLMInteractionUpsert is the "OnConflict" setter.
	LLMInteractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *LLMInteractionUpsert) SetProvider(v string) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateProvider() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldProvider)
	return u
}

// SetModelName sets the "model_name" field.
func (u *LLMInteractionUpsert) SetModelName(v string) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldModelName, v)
	return u
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateModelName() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldModelName)
	return u
}

// SetIteration sets the "iteration" field.
func (u *LLMInteractionUpsert) SetIteration(v int) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldIteration, v)
	return u
}

// UpdateIteration sets the "iteration" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateIteration() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldIteration)
	return u
}

// AddIteration adds v to the "iteration" field.
func (u *LLMInteractionUpsert) AddIteration(v int) *LLMInteractionUpsert {
	u.Add(llminteraction.FieldIteration, v)
	return u
}

// ClearIteration clears the value of the "iteration" field.
func (u *LLMInteractionUpsert) ClearIteration() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldIteration)
	return u
}

// SetRequestSummary sets the "request_summary" field.
func (u *LLMInteractionUpsert) SetRequestSummary(v string) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldRequestSummary, v)
	return u
}

// UpdateRequestSummary sets the "request_summary" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateRequestSummary() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldRequestSummary)
	return u
}

// ClearRequestSummary clears the value of the "request_summary" field.
func (u *LLMInteractionUpsert) ClearRequestSummary() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldRequestSummary)
	return u
}

// SetResponseContent sets the "response_content" field.
func (u *LLMInteractionUpsert) SetResponseContent(v string) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldResponseContent, v)
	return u
}

// UpdateResponseContent sets the "response_content" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateResponseContent() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldResponseContent)
	return u
}

// ClearResponseContent clears the value of the "response_content" field.
func (u *LLMInteractionUpsert) ClearResponseContent() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldResponseContent)
	return u
}

// SetToolCallCount sets the "tool_call_count" field.
func (u *LLMInteractionUpsert) SetToolCallCount(v int) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldToolCallCount, v)
	return u
}

// UpdateToolCallCount sets the "tool_call_count" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateToolCallCount() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldToolCallCount)
	return u
}

// AddToolCallCount adds v to the "tool_call_count" field.
func (u *LLMInteractionUpsert) AddToolCallCount(v int) *LLMInteractionUpsert {
	u.Add(llminteraction.FieldToolCallCount, v)
	return u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *LLMInteractionUpsert) SetPromptTokens(v int) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldPromptTokens, v)
	return u
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdatePromptTokens() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldPromptTokens)
	return u
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *LLMInteractionUpsert) AddPromptTokens(v int) *LLMInteractionUpsert {
	u.Add(llminteraction.FieldPromptTokens, v)
	return u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (u *LLMInteractionUpsert) ClearPromptTokens() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldPromptTokens)
	return u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *LLMInteractionUpsert) SetCompletionTokens(v int) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldCompletionTokens, v)
	return u
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateCompletionTokens() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldCompletionTokens)
	return u
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *LLMInteractionUpsert) AddCompletionTokens(v int) *LLMInteractionUpsert {
	u.Add(llminteraction.FieldCompletionTokens, v)
	return u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (u *LLMInteractionUpsert) ClearCompletionTokens() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldCompletionTokens)
	return u
}

// SetTotalTokens sets the "total_tokens" field.
func (u *LLMInteractionUpsert) SetTotalTokens(v int) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldTotalTokens, v)
	return u
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateTotalTokens() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldTotalTokens)
	return u
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *LLMInteractionUpsert) AddTotalTokens(v int) *LLMInteractionUpsert {
	u.Add(llminteraction.FieldTotalTokens, v)
	return u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (u *LLMInteractionUpsert) ClearTotalTokens() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldTotalTokens)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMInteractionUpsert) SetDurationMs(v int64) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateDurationMs() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMInteractionUpsert) AddDurationMs(v int64) *LLMInteractionUpsert {
	u.Add(llminteraction.FieldDurationMs, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMInteractionUpsert) SetErrorMessage(v string) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateErrorMessage() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMInteractionUpsert) ClearErrorMessage() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llminteraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMInteractionUpsertOne) UpdateNewValues() *LLMInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(llminteraction.FieldID)
		}
		if _, exists := u.create.mutation.EngagementID(); exists {
			s.SetIgnore(llminteraction.FieldEngagementID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(llminteraction.FieldAgentID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(llminteraction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMInteractionUpsertOne) Ignore() *LLMInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMInteractionUpsertOne) DoNothing() *LLMInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMInteractionCreate.OnConflict
// documentation for more info.
func (u *LLMInteractionUpsertOne) Update(set func(*LLMInteractionUpsert)) *LLMInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMInteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMInteractionUpsertOne) SetProvider(v string) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateProvider() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateProvider()
	})
}

// SetModelName sets the "model_name" field.
func (u *LLMInteractionUpsertOne) SetModelName(v string) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateModelName() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateModelName()
	})
}

// SetIteration sets the "iteration" field.
func (u *LLMInteractionUpsertOne) SetIteration(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetIteration(v)
	})
}

// AddIteration adds v to the "iteration" field.
func (u *LLMInteractionUpsertOne) AddIteration(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddIteration(v)
	})
}

// UpdateIteration sets the "iteration" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateIteration() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateIteration()
	})
}

// ClearIteration clears the value of the "iteration" field.
func (u *LLMInteractionUpsertOne) ClearIteration() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearIteration()
	})
}

// SetRequestSummary sets the "request_summary" field.
func (u *LLMInteractionUpsertOne) SetRequestSummary(v string) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetRequestSummary(v)
	})
}

// UpdateRequestSummary sets the "request_summary" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateRequestSummary() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateRequestSummary()
	})
}

// ClearRequestSummary clears the value of the "request_summary" field.
func (u *LLMInteractionUpsertOne) ClearRequestSummary() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearRequestSummary()
	})
}

// SetResponseContent sets the "response_content" field.
func (u *LLMInteractionUpsertOne) SetResponseContent(v string) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetResponseContent(v)
	})
}

// UpdateResponseContent sets the "response_content" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateResponseContent() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateResponseContent()
	})
}

// ClearResponseContent clears the value of the "response_content" field.
func (u *LLMInteractionUpsertOne) ClearResponseContent() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearResponseContent()
	})
}

// SetToolCallCount sets the "tool_call_count" field.
func (u *LLMInteractionUpsertOne) SetToolCallCount(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetToolCallCount(v)
	})
}

// AddToolCallCount adds v to the "tool_call_count" field.
func (u *LLMInteractionUpsertOne) AddToolCallCount(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddToolCallCount(v)
	})
}

// UpdateToolCallCount sets the "tool_call_count" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateToolCallCount() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateToolCallCount()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *LLMInteractionUpsertOne) SetPromptTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *LLMInteractionUpsertOne) AddPromptTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdatePromptTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdatePromptTokens()
	})
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (u *LLMInteractionUpsertOne) ClearPromptTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearPromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *LLMInteractionUpsertOne) SetCompletionTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *LLMInteractionUpsertOne) AddCompletionTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateCompletionTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateCompletionTokens()
	})
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (u *LLMInteractionUpsertOne) ClearCompletionTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearCompletionTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *LLMInteractionUpsertOne) SetTotalTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *LLMInteractionUpsertOne) AddTotalTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateTotalTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateTotalTokens()
	})
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (u *LLMInteractionUpsertOne) ClearTotalTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearTotalTokens()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMInteractionUpsertOne) SetDurationMs(v int64) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMInteractionUpsertOne) AddDurationMs(v int64) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateDurationMs() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMInteractionUpsertOne) SetErrorMessage(v string) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateErrorMessage() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMInteractionUpsertOne) ClearErrorMessage() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMInteractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMInteractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMInteractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMInteractionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LLMInteractionUpsertOne.ID is not supported by MySQL driver. Use LLMInteractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMInteractionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMInteractionCreateBulk is the builder for creating many LLMInteraction entities in bulk.
type LLMInteractionCreateBulk struct {
	config
	err      error
	builders []*LLMInteractionCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMInteraction entities in the database.
func (_c *LLMInteractionCreateBulk) Save(ctx context.Context) ([]*LLMInteraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMInteraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMInteractionMutation)
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
func (_c *LLMInteractionCreateBulk) SaveX(ctx context.Context) []*LLMInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMInteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMInteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMInteraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMInteractionUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMInteractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMInteractionUpsertBulk {
	_c.conflict = opts
	return &LLMInteractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMInteractionCreateBulk) OnConflictColumns(columns ...string) *LLMInteractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMInteractionUpsertBulk{
		create: _c,
	}
}

// LLMInteractionUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMInteraction nodes.
type LLMInteractionUpsertBulk struct {
	create *LLMInteractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llminteraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMInteractionUpsertBulk) UpdateNewValues() *LLMInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(llminteraction.FieldID)
			}
			if _, exists := b.mutation.EngagementID(); exists {
				s.SetIgnore(llminteraction.FieldEngagementID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(llminteraction.FieldAgentID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(llminteraction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMInteractionUpsertBulk) Ignore() *LLMInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMInteractionUpsertBulk) DoNothing() *LLMInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMInteractionCreateBulk.OnConflict
// documentation for more info.
func (u *LLMInteractionUpsertBulk) Update(set func(*LLMInteractionUpsert)) *LLMInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMInteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMInteractionUpsertBulk) SetProvider(v string) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateProvider() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateProvider()
	})
}

// SetModelName sets the "model_name" field.
func (u *LLMInteractionUpsertBulk) SetModelName(v string) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateModelName() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateModelName()
	})
}

// SetIteration sets the "iteration" field.
func (u *LLMInteractionUpsertBulk) SetIteration(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetIteration(v)
	})
}

// AddIteration adds v to the "iteration" field.
func (u *LLMInteractionUpsertBulk) AddIteration(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddIteration(v)
	})
}

// UpdateIteration sets the "iteration" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateIteration() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateIteration()
	})
}

// ClearIteration clears the value of the "iteration" field.
func (u *LLMInteractionUpsertBulk) ClearIteration() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearIteration()
	})
}

// SetRequestSummary sets the "request_summary" field.
func (u *LLMInteractionUpsertBulk) SetRequestSummary(v string) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetRequestSummary(v)
	})
}

// UpdateRequestSummary sets the "request_summary" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateRequestSummary() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateRequestSummary()
	})
}

// ClearRequestSummary clears the value of the "request_summary" field.
func (u *LLMInteractionUpsertBulk) ClearRequestSummary() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearRequestSummary()
	})
}

// SetResponseContent sets the "response_content" field.
func (u *LLMInteractionUpsertBulk) SetResponseContent(v string) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetResponseContent(v)
	})
}

// UpdateResponseContent sets the "response_content" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateResponseContent() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateResponseContent()
	})
}

// ClearResponseContent clears the value of the "response_content" field.
func (u *LLMInteractionUpsertBulk) ClearResponseContent() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearResponseContent()
	})
}

// SetToolCallCount sets the "tool_call_count" field.
func (u *LLMInteractionUpsertBulk) SetToolCallCount(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetToolCallCount(v)
	})
}

// AddToolCallCount adds v to the "tool_call_count" field.
func (u *LLMInteractionUpsertBulk) AddToolCallCount(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddToolCallCount(v)
	})
}

// UpdateToolCallCount sets the "tool_call_count" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateToolCallCount() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateToolCallCount()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *LLMInteractionUpsertBulk) SetPromptTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *LLMInteractionUpsertBulk) AddPromptTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdatePromptTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdatePromptTokens()
	})
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (u *LLMInteractionUpsertBulk) ClearPromptTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearPromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *LLMInteractionUpsertBulk) SetCompletionTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *LLMInteractionUpsertBulk) AddCompletionTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateCompletionTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateCompletionTokens()
	})
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (u *LLMInteractionUpsertBulk) ClearCompletionTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearCompletionTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *LLMInteractionUpsertBulk) SetTotalTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *LLMInteractionUpsertBulk) AddTotalTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateTotalTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateTotalTokens()
	})
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (u *LLMInteractionUpsertBulk) ClearTotalTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearTotalTokens()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMInteractionUpsertBulk) SetDurationMs(v int64) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMInteractionUpsertBulk) AddDurationMs(v int64) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateDurationMs() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMInteractionUpsertBulk) SetErrorMessage(v string) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateErrorMessage() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMInteractionUpsertBulk) ClearErrorMessage() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMInteractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMInteractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMInteractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMInteractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
