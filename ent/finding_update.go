// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/finding"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/predicate"
)

// FindingUpdate is the builder for updating Finding entities.
type FindingUpdate struct {
	config
	hooks    []Hook
	mutation *FindingMutation
}

// Where appends a list predicates to the FindingUpdate builder.
func (_u *FindingUpdate) Where(ps ...predicate.Finding) *FindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *FindingUpdate) SetPhase(v string) *FindingUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *FindingUpdate) SetNillablePhase(v *string) *FindingUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// ClearPhase clears the value of the "phase" field.
func (_u *FindingUpdate) ClearPhase() *FindingUpdate {
	_u.mutation.ClearPhase()
	return _u
}

// SetTitle sets the "title" field.
func (_u *FindingUpdate) SetTitle(v string) *FindingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableTitle(v *string) *FindingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *FindingUpdate) SetSeverity(v finding.Severity) *FindingUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableSeverity(v *finding.Severity) *FindingUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FindingUpdate) SetDescription(v string) *FindingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableDescription(v *string) *FindingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FindingUpdate) ClearDescription() *FindingUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *FindingUpdate) SetEvidence(v []string) *FindingUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *FindingUpdate) AppendEvidence(v []string) *FindingUpdate {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *FindingUpdate) ClearEvidence() *FindingUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *FindingUpdate) SetMetadata(v map[string]interface{}) *FindingUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *FindingUpdate) ClearMetadata() *FindingUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *FindingUpdate) SetAgentID(v string) *FindingUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableAgentID(v *string) *FindingUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *FindingUpdate) ClearAgentID() *FindingUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// Mutation returns the FindingMutation object of the builder.
func (_u *FindingUpdate) Mutation() *FindingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FindingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FindingUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := finding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Finding.severity": %w`, err)}
		}
	}
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Finding.engagement"`)
	}
	return nil
}

func (_u *FindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finding.Table, finding.Columns, sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(finding.FieldPhase, field.TypeString, value)
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(finding.FieldPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(finding.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(finding.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(finding.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(finding.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(finding.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, finding.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(finding.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(finding.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(finding.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(finding.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(finding.FieldAgentID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FindingUpdateOne is the builder for updating a single Finding entity.
type FindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FindingMutation
}

// SetPhase sets the "phase" field.
func (_u *FindingUpdateOne) SetPhase(v string) *FindingUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillablePhase(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// ClearPhase clears the value of the "phase" field.
func (_u *FindingUpdateOne) ClearPhase() *FindingUpdateOne {
	_u.mutation.ClearPhase()
	return _u
}

// SetTitle sets the "title" field.
func (_u *FindingUpdateOne) SetTitle(v string) *FindingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableTitle(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *FindingUpdateOne) SetSeverity(v finding.Severity) *FindingUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableSeverity(v *finding.Severity) *FindingUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FindingUpdateOne) SetDescription(v string) *FindingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableDescription(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FindingUpdateOne) ClearDescription() *FindingUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *FindingUpdateOne) SetEvidence(v []string) *FindingUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *FindingUpdateOne) AppendEvidence(v []string) *FindingUpdateOne {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *FindingUpdateOne) ClearEvidence() *FindingUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *FindingUpdateOne) SetMetadata(v map[string]interface{}) *FindingUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *FindingUpdateOne) ClearMetadata() *FindingUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *FindingUpdateOne) SetAgentID(v string) *FindingUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableAgentID(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *FindingUpdateOne) ClearAgentID() *FindingUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// Mutation returns the FindingMutation object of the builder.
func (_u *FindingUpdateOne) Mutation() *FindingMutation {
	return _u.mutation
}

// Where appends a list predicates to the FindingUpdate builder.
func (_u *FindingUpdateOne) Where(ps ...predicate.Finding) *FindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FindingUpdateOne) Select(field string, fields ...string) *FindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Finding entity.
func (_u *FindingUpdateOne) Save(ctx context.Context) (*Finding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FindingUpdateOne) SaveX(ctx context.Context) *Finding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FindingUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := finding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Finding.severity": %w`, err)}
		}
	}
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Finding.engagement"`)
	}
	return nil
}

func (_u *FindingUpdateOne) sqlSave(ctx context.Context) (_node *Finding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finding.Table, finding.Columns, sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Finding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, finding.FieldID)
		for _, f := range fields {
			if !finding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != finding.FieldID {
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
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(finding.FieldPhase, field.TypeString, value)
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(finding.FieldPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(finding.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(finding.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(finding.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(finding.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(finding.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, finding.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(finding.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(finding.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(finding.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(finding.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(finding.FieldAgentID, field.TypeString)
	}
	_node = &Finding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
