// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/predicate"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/toolinteraction"
)

// ToolInteractionUpdate is the builder for updating ToolInteraction entities.
type ToolInteractionUpdate struct {
	config
	hooks    []Hook
	mutation *ToolInteractionMutation
}

// Where appends a list predicates to the ToolInteractionUpdate builder.
func (_u *ToolInteractionUpdate) Where(ps ...predicate.ToolInteraction) *ToolInteractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetServerName sets the "server_name" field.
func (_u *ToolInteractionUpdate) SetServerName(v string) *ToolInteractionUpdate {
	_u.mutation.SetServerName(v)
	return _u
}

// SetNillableServerName sets the "server_name" field if the given value is not nil.
func (_u *ToolInteractionUpdate) SetNillableServerName(v *string) *ToolInteractionUpdate {
	if v != nil {
		_u.SetServerName(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolInteractionUpdate) SetToolName(v string) *ToolInteractionUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolInteractionUpdate) SetNillableToolName(v *string) *ToolInteractionUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *ToolInteractionUpdate) SetArguments(v map[string]interface{}) *ToolInteractionUpdate {
	_u.mutation.SetArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *ToolInteractionUpdate) ClearArguments() *ToolInteractionUpdate {
	_u.mutation.ClearArguments()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ToolInteractionUpdate) SetSuccess(v bool) *ToolInteractionUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ToolInteractionUpdate) SetNillableSuccess(v *bool) *ToolInteractionUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *ToolInteractionUpdate) SetOutput(v string) *ToolInteractionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *ToolInteractionUpdate) SetNillableOutput(v *string) *ToolInteractionUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ToolInteractionUpdate) ClearOutput() *ToolInteractionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ToolInteractionUpdate) SetErrorMessage(v string) *ToolInteractionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ToolInteractionUpdate) SetNillableErrorMessage(v *string) *ToolInteractionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ToolInteractionUpdate) ClearErrorMessage() *ToolInteractionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRisk sets the "risk" field.
func (_u *ToolInteractionUpdate) SetRisk(v string) *ToolInteractionUpdate {
	_u.mutation.SetRisk(v)
	return _u
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_u *ToolInteractionUpdate) SetNillableRisk(v *string) *ToolInteractionUpdate {
	if v != nil {
		_u.SetRisk(*v)
	}
	return _u
}

// ClearRisk clears the value of the "risk" field.
func (_u *ToolInteractionUpdate) ClearRisk() *ToolInteractionUpdate {
	_u.mutation.ClearRisk()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ToolInteractionUpdate) SetDurationMs(v int64) *ToolInteractionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ToolInteractionUpdate) SetNillableDurationMs(v *int64) *ToolInteractionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ToolInteractionUpdate) AddDurationMs(v int64) *ToolInteractionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the ToolInteractionMutation object of the builder.
func (_u *ToolInteractionUpdate) Mutation() *ToolInteractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolInteractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolInteractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolInteractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolInteractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolInteractionUpdate) check() error {
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolInteraction.engagement"`)
	}
	return nil
}

func (_u *ToolInteractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolinteraction.Table, toolinteraction.Columns, sqlgraph.NewFieldSpec(toolinteraction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ServerName(); ok {
		_spec.SetField(toolinteraction.FieldServerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolinteraction.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(toolinteraction.FieldArguments, field.TypeJSON, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(toolinteraction.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(toolinteraction.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(toolinteraction.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(toolinteraction.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(toolinteraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolinteraction.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Risk(); ok {
		_spec.SetField(toolinteraction.FieldRisk, field.TypeString, value)
	}
	if _u.mutation.RiskCleared() {
		_spec.ClearField(toolinteraction.FieldRisk, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(toolinteraction.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(toolinteraction.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolinteraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolInteractionUpdateOne is the builder for updating a single ToolInteraction entity.
type ToolInteractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolInteractionMutation
}

// SetServerName sets the "server_name" field.
func (_u *ToolInteractionUpdateOne) SetServerName(v string) *ToolInteractionUpdateOne {
	_u.mutation.SetServerName(v)
	return _u
}

// SetNillableServerName sets the "server_name" field if the given value is not nil.
func (_u *ToolInteractionUpdateOne) SetNillableServerName(v *string) *ToolInteractionUpdateOne {
	if v != nil {
		_u.SetServerName(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolInteractionUpdateOne) SetToolName(v string) *ToolInteractionUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolInteractionUpdateOne) SetNillableToolName(v *string) *ToolInteractionUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *ToolInteractionUpdateOne) SetArguments(v map[string]interface{}) *ToolInteractionUpdateOne {
	_u.mutation.SetArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *ToolInteractionUpdateOne) ClearArguments() *ToolInteractionUpdateOne {
	_u.mutation.ClearArguments()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ToolInteractionUpdateOne) SetSuccess(v bool) *ToolInteractionUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ToolInteractionUpdateOne) SetNillableSuccess(v *bool) *ToolInteractionUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *ToolInteractionUpdateOne) SetOutput(v string) *ToolInteractionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *ToolInteractionUpdateOne) SetNillableOutput(v *string) *ToolInteractionUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ToolInteractionUpdateOne) ClearOutput() *ToolInteractionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ToolInteractionUpdateOne) SetErrorMessage(v string) *ToolInteractionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ToolInteractionUpdateOne) SetNillableErrorMessage(v *string) *ToolInteractionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ToolInteractionUpdateOne) ClearErrorMessage() *ToolInteractionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRisk sets the "risk" field.
func (_u *ToolInteractionUpdateOne) SetRisk(v string) *ToolInteractionUpdateOne {
	_u.mutation.SetRisk(v)
	return _u
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_u *ToolInteractionUpdateOne) SetNillableRisk(v *string) *ToolInteractionUpdateOne {
	if v != nil {
		_u.SetRisk(*v)
	}
	return _u
}

// ClearRisk clears the value of the "risk" field.
func (_u *ToolInteractionUpdateOne) ClearRisk() *ToolInteractionUpdateOne {
	_u.mutation.ClearRisk()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ToolInteractionUpdateOne) SetDurationMs(v int64) *ToolInteractionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ToolInteractionUpdateOne) SetNillableDurationMs(v *int64) *ToolInteractionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ToolInteractionUpdateOne) AddDurationMs(v int64) *ToolInteractionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the ToolInteractionMutation object of the builder.
func (_u *ToolInteractionUpdateOne) Mutation() *ToolInteractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolInteractionUpdate builder.
func (_u *ToolInteractionUpdateOne) Where(ps ...predicate.ToolInteraction) *ToolInteractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolInteractionUpdateOne) Select(field string, fields ...string) *ToolInteractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolInteraction entity.
func (_u *ToolInteractionUpdateOne) Save(ctx context.Context) (*ToolInteraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolInteractionUpdateOne) SaveX(ctx context.Context) *ToolInteraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolInteractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolInteractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolInteractionUpdateOne) check() error {
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolInteraction.engagement"`)
	}
	return nil
}

func (_u *ToolInteractionUpdateOne) sqlSave(ctx context.Context) (_node *ToolInteraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolinteraction.Table, toolinteraction.Columns, sqlgraph.NewFieldSpec(toolinteraction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolInteraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolinteraction.FieldID)
		for _, f := range fields {
			if !toolinteraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolinteraction.FieldID {
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
	if value, ok := _u.mutation.ServerName(); ok {
		_spec.SetField(toolinteraction.FieldServerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolinteraction.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(toolinteraction.FieldArguments, field.TypeJSON, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(toolinteraction.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(toolinteraction.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(toolinteraction.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(toolinteraction.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(toolinteraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolinteraction.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Risk(); ok {
		_spec.SetField(toolinteraction.FieldRisk, field.TypeString, value)
	}
	if _u.mutation.RiskCleared() {
		_spec.ClearField(toolinteraction.FieldRisk, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(toolinteraction.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(toolinteraction.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &ToolInteraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolinteraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
