// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/llminteraction"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/predicate"
)

// LLMInteractionUpdate is the builder for updating LLMInteraction entities.
type LLMInteractionUpdate struct {
	config
	hooks    []Hook
	mutation *LLMInteractionMutation
}

// Where appends a list predicates to the LLMInteractionUpdate builder.
func (_u *LLMInteractionUpdate) Where(ps ...predicate.LLMInteraction) *LLMInteractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMInteractionUpdate) SetProvider(v string) *LLMInteractionUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillableProvider(v *string) *LLMInteractionUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *LLMInteractionUpdate) SetModelName(v string) *LLMInteractionUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillableModelName(v *string) *LLMInteractionUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *LLMInteractionUpdate) SetIteration(v int) *LLMInteractionUpdate {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillableIteration(v *int) *LLMInteractionUpdate {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *LLMInteractionUpdate) AddIteration(v int) *LLMInteractionUpdate {
	_u.mutation.AddIteration(v)
	return _u
}

// ClearIteration clears the value of the "iteration" field.
func (_u *LLMInteractionUpdate) ClearIteration() *LLMInteractionUpdate {
	_u.mutation.ClearIteration()
	return _u
}

// SetRequestSummary sets the "request_summary" field.
func (_u *LLMInteractionUpdate) SetRequestSummary(v string) *LLMInteractionUpdate {
	_u.mutation.SetRequestSummary(v)
	return _u
}

// SetNillableRequestSummary sets the "request_summary" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillableRequestSummary(v *string) *LLMInteractionUpdate {
	if v != nil {
		_u.SetRequestSummary(*v)
	}
	return _u
}

// ClearRequestSummary clears the value of the "request_summary" field.
func (_u *LLMInteractionUpdate) ClearRequestSummary() *LLMInteractionUpdate {
	_u.mutation.ClearRequestSummary()
	return _u
}

// SetResponseContent sets the "response_content" field.
func (_u *LLMInteractionUpdate) SetResponseContent(v string) *LLMInteractionUpdate {
	_u.mutation.SetResponseContent(v)
	return _u
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillableResponseContent(v *string) *LLMInteractionUpdate {
	if v != nil {
		_u.SetResponseContent(*v)
	}
	return _u
}

// ClearResponseContent clears the value of the "response_content" field.
func (_u *LLMInteractionUpdate) ClearResponseContent() *LLMInteractionUpdate {
	_u.mutation.ClearResponseContent()
	return _u
}

// SetToolCallCount sets the "tool_call_count" field.
func (_u *LLMInteractionUpdate) SetToolCallCount(v int) *LLMInteractionUpdate {
	_u.mutation.ResetToolCallCount()
	_u.mutation.SetToolCallCount(v)
	return _u
}

// SetNillableToolCallCount sets the "tool_call_count" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillableToolCallCount(v *int) *LLMInteractionUpdate {
	if v != nil {
		_u.SetToolCallCount(*v)
	}
	return _u
}

// AddToolCallCount adds value to the "tool_call_count" field.
func (_u *LLMInteractionUpdate) AddToolCallCount(v int) *LLMInteractionUpdate {
	_u.mutation.AddToolCallCount(v)
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *LLMInteractionUpdate) SetPromptTokens(v int) *LLMInteractionUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillablePromptTokens(v *int) *LLMInteractionUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *LLMInteractionUpdate) AddPromptTokens(v int) *LLMInteractionUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *LLMInteractionUpdate) ClearPromptTokens() *LLMInteractionUpdate {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *LLMInteractionUpdate) SetCompletionTokens(v int) *LLMInteractionUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillableCompletionTokens(v *int) *LLMInteractionUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *LLMInteractionUpdate) AddCompletionTokens(v int) *LLMInteractionUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *LLMInteractionUpdate) ClearCompletionTokens() *LLMInteractionUpdate {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *LLMInteractionUpdate) SetTotalTokens(v int) *LLMInteractionUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillableTotalTokens(v *int) *LLMInteractionUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *LLMInteractionUpdate) AddTotalTokens(v int) *LLMInteractionUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *LLMInteractionUpdate) ClearTotalTokens() *LLMInteractionUpdate {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LLMInteractionUpdate) SetDurationMs(v int64) *LLMInteractionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillableDurationMs(v *int64) *LLMInteractionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LLMInteractionUpdate) AddDurationMs(v int64) *LLMInteractionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMInteractionUpdate) SetErrorMessage(v string) *LLMInteractionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMInteractionUpdate) SetNillableErrorMessage(v *string) *LLMInteractionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LLMInteractionUpdate) ClearErrorMessage() *LLMInteractionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the LLMInteractionMutation object of the builder.
func (_u *LLMInteractionUpdate) Mutation() *LLMInteractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMInteractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMInteractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMInteractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMInteractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMInteractionUpdate) check() error {
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LLMInteraction.engagement"`)
	}
	return nil
}

func (_u *LLMInteractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llminteraction.Table, llminteraction.Columns, sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llminteraction.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(llminteraction.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(llminteraction.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(llminteraction.FieldIteration, field.TypeInt, value)
	}
	if _u.mutation.IterationCleared() {
		_spec.ClearField(llminteraction.FieldIteration, field.TypeInt)
	}
	if value, ok := _u.mutation.RequestSummary(); ok {
		_spec.SetField(llminteraction.FieldRequestSummary, field.TypeString, value)
	}
	if _u.mutation.RequestSummaryCleared() {
		_spec.ClearField(llminteraction.FieldRequestSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseContent(); ok {
		_spec.SetField(llminteraction.FieldResponseContent, field.TypeString, value)
	}
	if _u.mutation.ResponseContentCleared() {
		_spec.ClearField(llminteraction.FieldResponseContent, field.TypeString)
	}
	if value, ok := _u.mutation.ToolCallCount(); ok {
		_spec.SetField(llminteraction.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCallCount(); ok {
		_spec.AddField(llminteraction.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(llminteraction.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(llminteraction.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(llminteraction.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(llminteraction.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(llminteraction.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(llminteraction.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(llminteraction.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(llminteraction.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(llminteraction.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(llminteraction.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(llminteraction.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llminteraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llminteraction.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llminteraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMInteractionUpdateOne is the builder for updating a single LLMInteraction entity.
type LLMInteractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMInteractionMutation
}

// SetProvider sets the "provider" field.
func (_u *LLMInteractionUpdateOne) SetProvider(v string) *LLMInteractionUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillableProvider(v *string) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *LLMInteractionUpdateOne) SetModelName(v string) *LLMInteractionUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillableModelName(v *string) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *LLMInteractionUpdateOne) SetIteration(v int) *LLMInteractionUpdateOne {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillableIteration(v *int) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *LLMInteractionUpdateOne) AddIteration(v int) *LLMInteractionUpdateOne {
	_u.mutation.AddIteration(v)
	return _u
}

// ClearIteration clears the value of the "iteration" field.
func (_u *LLMInteractionUpdateOne) ClearIteration() *LLMInteractionUpdateOne {
	_u.mutation.ClearIteration()
	return _u
}

// SetRequestSummary sets the "request_summary" field.
func (_u *LLMInteractionUpdateOne) SetRequestSummary(v string) *LLMInteractionUpdateOne {
	_u.mutation.SetRequestSummary(v)
	return _u
}

// SetNillableRequestSummary sets the "request_summary" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillableRequestSummary(v *string) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetRequestSummary(*v)
	}
	return _u
}

// ClearRequestSummary clears the value of the "request_summary" field.
func (_u *LLMInteractionUpdateOne) ClearRequestSummary() *LLMInteractionUpdateOne {
	_u.mutation.ClearRequestSummary()
	return _u
}

// SetResponseContent sets the "response_content" field.
func (_u *LLMInteractionUpdateOne) SetResponseContent(v string) *LLMInteractionUpdateOne {
	_u.mutation.SetResponseContent(v)
	return _u
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillableResponseContent(v *string) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetResponseContent(*v)
	}
	return _u
}

// ClearResponseContent clears the value of the "response_content" field.
func (_u *LLMInteractionUpdateOne) ClearResponseContent() *LLMInteractionUpdateOne {
	_u.mutation.ClearResponseContent()
	return _u
}

// SetToolCallCount sets the "tool_call_count" field.
func (_u *LLMInteractionUpdateOne) SetToolCallCount(v int) *LLMInteractionUpdateOne {
	_u.mutation.ResetToolCallCount()
	_u.mutation.SetToolCallCount(v)
	return _u
}

// SetNillableToolCallCount sets the "tool_call_count" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillableToolCallCount(v *int) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetToolCallCount(*v)
	}
	return _u
}

// AddToolCallCount adds value to the "tool_call_count" field.
func (_u *LLMInteractionUpdateOne) AddToolCallCount(v int) *LLMInteractionUpdateOne {
	_u.mutation.AddToolCallCount(v)
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *LLMInteractionUpdateOne) SetPromptTokens(v int) *LLMInteractionUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillablePromptTokens(v *int) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *LLMInteractionUpdateOne) AddPromptTokens(v int) *LLMInteractionUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *LLMInteractionUpdateOne) ClearPromptTokens() *LLMInteractionUpdateOne {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *LLMInteractionUpdateOne) SetCompletionTokens(v int) *LLMInteractionUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillableCompletionTokens(v *int) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *LLMInteractionUpdateOne) AddCompletionTokens(v int) *LLMInteractionUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *LLMInteractionUpdateOne) ClearCompletionTokens() *LLMInteractionUpdateOne {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *LLMInteractionUpdateOne) SetTotalTokens(v int) *LLMInteractionUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillableTotalTokens(v *int) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *LLMInteractionUpdateOne) AddTotalTokens(v int) *LLMInteractionUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *LLMInteractionUpdateOne) ClearTotalTokens() *LLMInteractionUpdateOne {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LLMInteractionUpdateOne) SetDurationMs(v int64) *LLMInteractionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillableDurationMs(v *int64) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LLMInteractionUpdateOne) AddDurationMs(v int64) *LLMInteractionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMInteractionUpdateOne) SetErrorMessage(v string) *LLMInteractionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMInteractionUpdateOne) SetNillableErrorMessage(v *string) *LLMInteractionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LLMInteractionUpdateOne) ClearErrorMessage() *LLMInteractionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the LLMInteractionMutation object of the builder.
func (_u *LLMInteractionUpdateOne) Mutation() *LLMInteractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMInteractionUpdate builder.
func (_u *LLMInteractionUpdateOne) Where(ps ...predicate.LLMInteraction) *LLMInteractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMInteractionUpdateOne) Select(field string, fields ...string) *LLMInteractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMInteraction entity.
func (_u *LLMInteractionUpdateOne) Save(ctx context.Context) (*LLMInteraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMInteractionUpdateOne) SaveX(ctx context.Context) *LLMInteraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMInteractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMInteractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMInteractionUpdateOne) check() error {
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LLMInteraction.engagement"`)
	}
	return nil
}

func (_u *LLMInteractionUpdateOne) sqlSave(ctx context.Context) (_node *LLMInteraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llminteraction.Table, llminteraction.Columns, sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMInteraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llminteraction.FieldID)
		for _, f := range fields {
			if !llminteraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llminteraction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llminteraction.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(llminteraction.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(llminteraction.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(llminteraction.FieldIteration, field.TypeInt, value)
	}
	if _u.mutation.IterationCleared() {
		_spec.ClearField(llminteraction.FieldIteration, field.TypeInt)
	}
	if value, ok := _u.mutation.RequestSummary(); ok {
		_spec.SetField(llminteraction.FieldRequestSummary, field.TypeString, value)
	}
	if _u.mutation.RequestSummaryCleared() {
		_spec.ClearField(llminteraction.FieldRequestSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseContent(); ok {
		_spec.SetField(llminteraction.FieldResponseContent, field.TypeString, value)
	}
	if _u.mutation.ResponseContentCleared() {
		_spec.ClearField(llminteraction.FieldResponseContent, field.TypeString)
	}
	if value, ok := _u.mutation.ToolCallCount(); ok {
		_spec.SetField(llminteraction.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCallCount(); ok {
		_spec.AddField(llminteraction.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(llminteraction.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(llminteraction.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(llminteraction.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(llminteraction.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(llminteraction.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(llminteraction.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(llminteraction.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(llminteraction.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(llminteraction.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(llminteraction.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(llminteraction.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llminteraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llminteraction.FieldErrorMessage, field.TypeString)
	}
	_node = &LLMInteraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llminteraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
