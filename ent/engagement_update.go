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
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/event"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/finding"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/llminteraction"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/predicate"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/resourcelock"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/toolinteraction"
)

// EngagementUpdate is the builder for updating Engagement entities.
type EngagementUpdate struct {
	config
	hooks    []Hook
	mutation *EngagementMutation
}

// Where appends a list predicates to the EngagementUpdate builder.
func (_u *EngagementUpdate) Where(ps ...predicate.Engagement) *EngagementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjective sets the "objective" field.
func (_u *EngagementUpdate) SetObjective(v string) *EngagementUpdate {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableObjective(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetObjectiveType sets the "objective_type" field.
func (_u *EngagementUpdate) SetObjectiveType(v string) *EngagementUpdate {
	_u.mutation.SetObjectiveType(v)
	return _u
}

// SetNillableObjectiveType sets the "objective_type" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableObjectiveType(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetObjectiveType(*v)
	}
	return _u
}

// ClearObjectiveType clears the value of the "objective_type" field.
func (_u *EngagementUpdate) ClearObjectiveType() *EngagementUpdate {
	_u.mutation.ClearObjectiveType()
	return _u
}

// SetScope sets the "scope" field.
func (_u *EngagementUpdate) SetScope(v map[string]interface{}) *EngagementUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// ClearScope clears the value of the "scope" field.
func (_u *EngagementUpdate) ClearScope() *EngagementUpdate {
	_u.mutation.ClearScope()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EngagementUpdate) SetStatus(v engagement.Status) *EngagementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableStatus(v *engagement.Status) *EngagementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EngagementUpdate) SetCreatedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableCreatedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *EngagementUpdate) SetStartedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableStartedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *EngagementUpdate) ClearStartedAt() *EngagementUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EngagementUpdate) SetCompletedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableCompletedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EngagementUpdate) ClearCompletedAt() *EngagementUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EngagementUpdate) SetErrorMessage(v string) *EngagementUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableErrorMessage(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EngagementUpdate) ClearErrorMessage() *EngagementUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinalReport sets the "final_report" field.
func (_u *EngagementUpdate) SetFinalReport(v string) *EngagementUpdate {
	_u.mutation.SetFinalReport(v)
	return _u
}

// SetNillableFinalReport sets the "final_report" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableFinalReport(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetFinalReport(*v)
	}
	return _u
}

// ClearFinalReport clears the value of the "final_report" field.
func (_u *EngagementUpdate) ClearFinalReport() *EngagementUpdate {
	_u.mutation.ClearFinalReport()
	return _u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_u *EngagementUpdate) SetExecutiveSummary(v string) *EngagementUpdate {
	_u.mutation.SetExecutiveSummary(v)
	return _u
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableExecutiveSummary(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetExecutiveSummary(*v)
	}
	return _u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (_u *EngagementUpdate) ClearExecutiveSummary() *EngagementUpdate {
	_u.mutation.ClearExecutiveSummary()
	return _u
}

// SetStats sets the "stats" field.
func (_u *EngagementUpdate) SetStats(v map[string]interface{}) *EngagementUpdate {
	_u.mutation.SetStats(v)
	return _u
}

// ClearStats clears the value of the "stats" field.
func (_u *EngagementUpdate) ClearStats() *EngagementUpdate {
	_u.mutation.ClearStats()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *EngagementUpdate) SetPodID(v string) *EngagementUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillablePodID(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *EngagementUpdate) ClearPodID() *EngagementUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *EngagementUpdate) SetLastInteractionAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableLastInteractionAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *EngagementUpdate) ClearLastInteractionAt() *EngagementUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EngagementUpdate) SetDeletedAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableDeletedAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EngagementUpdate) ClearDeletedAt() *EngagementUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *EngagementUpdate) AddTaskIDs(ids ...string) *EngagementUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *EngagementUpdate) AddTasks(v ...*Task) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddAgentMessageIDs adds the "agent_messages" edge to the AgentMessage entity by IDs.
func (_u *EngagementUpdate) AddAgentMessageIDs(ids ...int) *EngagementUpdate {
	_u.mutation.AddAgentMessageIDs(ids...)
	return _u
}

// AddAgentMessages adds the "agent_messages" edges to the AgentMessage entity.
func (_u *EngagementUpdate) AddAgentMessages(v ...*AgentMessage) *EngagementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentMessageIDs(ids...)
}

// AddLockIDs adds the "locks" edge to the ResourceLock entity by IDs.
func (_u *EngagementUpdate) AddLockIDs(ids ...int) *EngagementUpdate {
	_u.mutation.AddLockIDs(ids...)
	return _u
}

// AddLocks adds the "locks" edges to the ResourceLock entity.
func (_u *EngagementUpdate) AddLocks(v ...*ResourceLock) *EngagementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLockIDs(ids...)
}

// AddFindingIDs adds the "findings" edge to the Finding entity by IDs.
func (_u *EngagementUpdate) AddFindingIDs(ids ...string) *EngagementUpdate {
	_u.mutation.AddFindingIDs(ids...)
	return _u
}

// AddFindings adds the "findings" edges to the Finding entity.
func (_u *EngagementUpdate) AddFindings(v ...*Finding) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFindingIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *EngagementUpdate) AddLlmInteractionIDs(ids ...string) *EngagementUpdate {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *EngagementUpdate) AddLlmInteractions(v ...*LLMInteraction) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddToolInteractionIDs adds the "tool_interactions" edge to the ToolInteraction entity by IDs.
func (_u *EngagementUpdate) AddToolInteractionIDs(ids ...string) *EngagementUpdate {
	_u.mutation.AddToolInteractionIDs(ids...)
	return _u
}

// AddToolInteractions adds the "tool_interactions" edges to the ToolInteraction entity.
func (_u *EngagementUpdate) AddToolInteractions(v ...*ToolInteraction) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolInteractionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *EngagementUpdate) AddEventIDs(ids ...int) *EngagementUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *EngagementUpdate) AddEvents(v ...*Event) *EngagementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the EngagementMutation object of the builder.
func (_u *EngagementUpdate) Mutation() *EngagementMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *EngagementUpdate) ClearTasks() *EngagementUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *EngagementUpdate) RemoveTaskIDs(ids ...string) *EngagementUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *EngagementUpdate) RemoveTasks(v ...*Task) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearAgentMessages clears all "agent_messages" edges to the AgentMessage entity.
func (_u *EngagementUpdate) ClearAgentMessages() *EngagementUpdate {
	_u.mutation.ClearAgentMessages()
	return _u
}

// RemoveAgentMessageIDs removes the "agent_messages" edge to AgentMessage entities by IDs.
func (_u *EngagementUpdate) RemoveAgentMessageIDs(ids ...int) *EngagementUpdate {
	_u.mutation.RemoveAgentMessageIDs(ids...)
	return _u
}

// RemoveAgentMessages removes "agent_messages" edges to AgentMessage entities.
func (_u *EngagementUpdate) RemoveAgentMessages(v ...*AgentMessage) *EngagementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentMessageIDs(ids...)
}

// ClearLocks clears all "locks" edges to the ResourceLock entity.
func (_u *EngagementUpdate) ClearLocks() *EngagementUpdate {
	_u.mutation.ClearLocks()
	return _u
}

// RemoveLockIDs removes the "locks" edge to ResourceLock entities by IDs.
func (_u *EngagementUpdate) RemoveLockIDs(ids ...int) *EngagementUpdate {
	_u.mutation.RemoveLockIDs(ids...)
	return _u
}

// RemoveLocks removes "locks" edges to ResourceLock entities.
func (_u *EngagementUpdate) RemoveLocks(v ...*ResourceLock) *EngagementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLockIDs(ids...)
}

// ClearFindings clears all "findings" edges to the Finding entity.
func (_u *EngagementUpdate) ClearFindings() *EngagementUpdate {
	_u.mutation.ClearFindings()
	return _u
}

// RemoveFindingIDs removes the "findings" edge to Finding entities by IDs.
func (_u *EngagementUpdate) RemoveFindingIDs(ids ...string) *EngagementUpdate {
	_u.mutation.RemoveFindingIDs(ids...)
	return _u
}

// RemoveFindings removes "findings" edges to Finding entities.
func (_u *EngagementUpdate) RemoveFindings(v ...*Finding) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFindingIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *EngagementUpdate) ClearLlmInteractions() *EngagementUpdate {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *EngagementUpdate) RemoveLlmInteractionIDs(ids ...string) *EngagementUpdate {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *EngagementUpdate) RemoveLlmInteractions(v ...*LLMInteraction) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearToolInteractions clears all "tool_interactions" edges to the ToolInteraction entity.
func (_u *EngagementUpdate) ClearToolInteractions() *EngagementUpdate {
	_u.mutation.ClearToolInteractions()
	return _u
}

// RemoveToolInteractionIDs removes the "tool_interactions" edge to ToolInteraction entities by IDs.
func (_u *EngagementUpdate) RemoveToolInteractionIDs(ids ...string) *EngagementUpdate {
	_u.mutation.RemoveToolInteractionIDs(ids...)
	return _u
}

// RemoveToolInteractions removes "tool_interactions" edges to ToolInteraction entities.
func (_u *EngagementUpdate) RemoveToolInteractions(v ...*ToolInteraction) *EngagementUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolInteractionIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *EngagementUpdate) ClearEvents() *EngagementUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *EngagementUpdate) RemoveEventIDs(ids ...int) *EngagementUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *EngagementUpdate) RemoveEvents(v ...*Event) *EngagementUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngagementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngagementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := engagement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Engagement.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EngagementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagement.Table, engagement.Columns, sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(engagement.FieldObjective, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveType(); ok {
		_spec.SetField(engagement.FieldObjectiveType, field.TypeString, value)
	}
	if _u.mutation.ObjectiveTypeCleared() {
		_spec.ClearField(engagement.FieldObjectiveType, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(engagement.FieldScope, field.TypeJSON, value)
	}
	if _u.mutation.ScopeCleared() {
		_spec.ClearField(engagement.FieldScope, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(engagement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(engagement.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(engagement.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(engagement.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(engagement.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(engagement.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(engagement.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(engagement.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinalReport(); ok {
		_spec.SetField(engagement.FieldFinalReport, field.TypeString, value)
	}
	if _u.mutation.FinalReportCleared() {
		_spec.ClearField(engagement.FieldFinalReport, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutiveSummary(); ok {
		_spec.SetField(engagement.FieldExecutiveSummary, field.TypeString, value)
	}
	if _u.mutation.ExecutiveSummaryCleared() {
		_spec.ClearField(engagement.FieldExecutiveSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(engagement.FieldStats, field.TypeJSON, value)
	}
	if _u.mutation.StatsCleared() {
		_spec.ClearField(engagement.FieldStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(engagement.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(engagement.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(engagement.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(engagement.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(engagement.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(engagement.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentMessagesIDs(); len(nodes) > 0 && !_u.mutation.AgentMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LocksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLocksIDs(); len(nodes) > 0 && !_u.mutation.LocksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFindingsIDs(); len(nodes) > 0 && !_u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmInteractionsIDs(); len(nodes) > 0 && !_u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolInteractionsIDs(); len(nodes) > 0 && !_u.mutation.ToolInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngagementUpdateOne is the builder for updating a single Engagement entity.
type EngagementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngagementMutation
}

// SetObjective sets the "objective" field.
func (_u *EngagementUpdateOne) SetObjective(v string) *EngagementUpdateOne {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableObjective(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetObjectiveType sets the "objective_type" field.
func (_u *EngagementUpdateOne) SetObjectiveType(v string) *EngagementUpdateOne {
	_u.mutation.SetObjectiveType(v)
	return _u
}

// SetNillableObjectiveType sets the "objective_type" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableObjectiveType(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetObjectiveType(*v)
	}
	return _u
}

// ClearObjectiveType clears the value of the "objective_type" field.
func (_u *EngagementUpdateOne) ClearObjectiveType() *EngagementUpdateOne {
	_u.mutation.ClearObjectiveType()
	return _u
}

// SetScope sets the "scope" field.
func (_u *EngagementUpdateOne) SetScope(v map[string]interface{}) *EngagementUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// ClearScope clears the value of the "scope" field.
func (_u *EngagementUpdateOne) ClearScope() *EngagementUpdateOne {
	_u.mutation.ClearScope()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EngagementUpdateOne) SetStatus(v engagement.Status) *EngagementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableStatus(v *engagement.Status) *EngagementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EngagementUpdateOne) SetCreatedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableCreatedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *EngagementUpdateOne) SetStartedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableStartedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *EngagementUpdateOne) ClearStartedAt() *EngagementUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EngagementUpdateOne) SetCompletedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableCompletedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EngagementUpdateOne) ClearCompletedAt() *EngagementUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EngagementUpdateOne) SetErrorMessage(v string) *EngagementUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableErrorMessage(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EngagementUpdateOne) ClearErrorMessage() *EngagementUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinalReport sets the "final_report" field.
func (_u *EngagementUpdateOne) SetFinalReport(v string) *EngagementUpdateOne {
	_u.mutation.SetFinalReport(v)
	return _u
}

// SetNillableFinalReport sets the "final_report" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableFinalReport(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetFinalReport(*v)
	}
	return _u
}

// ClearFinalReport clears the value of the "final_report" field.
func (_u *EngagementUpdateOne) ClearFinalReport() *EngagementUpdateOne {
	_u.mutation.ClearFinalReport()
	return _u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_u *EngagementUpdateOne) SetExecutiveSummary(v string) *EngagementUpdateOne {
	_u.mutation.SetExecutiveSummary(v)
	return _u
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableExecutiveSummary(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetExecutiveSummary(*v)
	}
	return _u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (_u *EngagementUpdateOne) ClearExecutiveSummary() *EngagementUpdateOne {
	_u.mutation.ClearExecutiveSummary()
	return _u
}

// SetStats sets the "stats" field.
func (_u *EngagementUpdateOne) SetStats(v map[string]interface{}) *EngagementUpdateOne {
	_u.mutation.SetStats(v)
	return _u
}

// ClearStats clears the value of the "stats" field.
func (_u *EngagementUpdateOne) ClearStats() *EngagementUpdateOne {
	_u.mutation.ClearStats()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *EngagementUpdateOne) SetPodID(v string) *EngagementUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillablePodID(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *EngagementUpdateOne) ClearPodID() *EngagementUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *EngagementUpdateOne) SetLastInteractionAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableLastInteractionAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *EngagementUpdateOne) ClearLastInteractionAt() *EngagementUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EngagementUpdateOne) SetDeletedAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableDeletedAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EngagementUpdateOne) ClearDeletedAt() *EngagementUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *EngagementUpdateOne) AddTaskIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *EngagementUpdateOne) AddTasks(v ...*Task) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddAgentMessageIDs adds the "agent_messages" edge to the AgentMessage entity by IDs.
func (_u *EngagementUpdateOne) AddAgentMessageIDs(ids ...int) *EngagementUpdateOne {
	_u.mutation.AddAgentMessageIDs(ids...)
	return _u
}

// AddAgentMessages adds the "agent_messages" edges to the AgentMessage entity.
func (_u *EngagementUpdateOne) AddAgentMessages(v ...*AgentMessage) *EngagementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentMessageIDs(ids...)
}

// AddLockIDs adds the "locks" edge to the ResourceLock entity by IDs.
func (_u *EngagementUpdateOne) AddLockIDs(ids ...int) *EngagementUpdateOne {
	_u.mutation.AddLockIDs(ids...)
	return _u
}

// AddLocks adds the "locks" edges to the ResourceLock entity.
func (_u *EngagementUpdateOne) AddLocks(v ...*ResourceLock) *EngagementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLockIDs(ids...)
}

// AddFindingIDs adds the "findings" edge to the Finding entity by IDs.
func (_u *EngagementUpdateOne) AddFindingIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.AddFindingIDs(ids...)
	return _u
}

// AddFindings adds the "findings" edges to the Finding entity.
func (_u *EngagementUpdateOne) AddFindings(v ...*Finding) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFindingIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *EngagementUpdateOne) AddLlmInteractionIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *EngagementUpdateOne) AddLlmInteractions(v ...*LLMInteraction) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddToolInteractionIDs adds the "tool_interactions" edge to the ToolInteraction entity by IDs.
func (_u *EngagementUpdateOne) AddToolInteractionIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.AddToolInteractionIDs(ids...)
	return _u
}

// AddToolInteractions adds the "tool_interactions" edges to the ToolInteraction entity.
func (_u *EngagementUpdateOne) AddToolInteractions(v ...*ToolInteraction) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolInteractionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *EngagementUpdateOne) AddEventIDs(ids ...int) *EngagementUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *EngagementUpdateOne) AddEvents(v ...*Event) *EngagementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the EngagementMutation object of the builder.
func (_u *EngagementUpdateOne) Mutation() *EngagementMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *EngagementUpdateOne) ClearTasks() *EngagementUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *EngagementUpdateOne) RemoveTaskIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *EngagementUpdateOne) RemoveTasks(v ...*Task) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearAgentMessages clears all "agent_messages" edges to the AgentMessage entity.
func (_u *EngagementUpdateOne) ClearAgentMessages() *EngagementUpdateOne {
	_u.mutation.ClearAgentMessages()
	return _u
}

// RemoveAgentMessageIDs removes the "agent_messages" edge to AgentMessage entities by IDs.
func (_u *EngagementUpdateOne) RemoveAgentMessageIDs(ids ...int) *EngagementUpdateOne {
	_u.mutation.RemoveAgentMessageIDs(ids...)
	return _u
}

// RemoveAgentMessages removes "agent_messages" edges to AgentMessage entities.
func (_u *EngagementUpdateOne) RemoveAgentMessages(v ...*AgentMessage) *EngagementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentMessageIDs(ids...)
}

// ClearLocks clears all "locks" edges to the ResourceLock entity.
func (_u *EngagementUpdateOne) ClearLocks() *EngagementUpdateOne {
	_u.mutation.ClearLocks()
	return _u
}

// RemoveLockIDs removes the "locks" edge to ResourceLock entities by IDs.
func (_u *EngagementUpdateOne) RemoveLockIDs(ids ...int) *EngagementUpdateOne {
	_u.mutation.RemoveLockIDs(ids...)
	return _u
}

// RemoveLocks removes "locks" edges to ResourceLock entities.
func (_u *EngagementUpdateOne) RemoveLocks(v ...*ResourceLock) *EngagementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLockIDs(ids...)
}

// ClearFindings clears all "findings" edges to the Finding entity.
func (_u *EngagementUpdateOne) ClearFindings() *EngagementUpdateOne {
	_u.mutation.ClearFindings()
	return _u
}

// RemoveFindingIDs removes the "findings" edge to Finding entities by IDs.
func (_u *EngagementUpdateOne) RemoveFindingIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.RemoveFindingIDs(ids...)
	return _u
}

// RemoveFindings removes "findings" edges to Finding entities.
func (_u *EngagementUpdateOne) RemoveFindings(v ...*Finding) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFindingIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *EngagementUpdateOne) ClearLlmInteractions() *EngagementUpdateOne {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *EngagementUpdateOne) RemoveLlmInteractionIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *EngagementUpdateOne) RemoveLlmInteractions(v ...*LLMInteraction) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearToolInteractions clears all "tool_interactions" edges to the ToolInteraction entity.
func (_u *EngagementUpdateOne) ClearToolInteractions() *EngagementUpdateOne {
	_u.mutation.ClearToolInteractions()
	return _u
}

// RemoveToolInteractionIDs removes the "tool_interactions" edge to ToolInteraction entities by IDs.
func (_u *EngagementUpdateOne) RemoveToolInteractionIDs(ids ...string) *EngagementUpdateOne {
	_u.mutation.RemoveToolInteractionIDs(ids...)
	return _u
}

// RemoveToolInteractions removes "tool_interactions" edges to ToolInteraction entities.
func (_u *EngagementUpdateOne) RemoveToolInteractions(v ...*ToolInteraction) *EngagementUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolInteractionIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *EngagementUpdateOne) ClearEvents() *EngagementUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *EngagementUpdateOne) RemoveEventIDs(ids ...int) *EngagementUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *EngagementUpdateOne) RemoveEvents(v ...*Event) *EngagementUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the EngagementUpdate builder.
func (_u *EngagementUpdateOne) Where(ps ...predicate.Engagement) *EngagementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngagementUpdateOne) Select(field string, fields ...string) *EngagementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Engagement entity.
func (_u *EngagementUpdateOne) Save(ctx context.Context) (*Engagement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementUpdateOne) SaveX(ctx context.Context) *Engagement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngagementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := engagement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Engagement.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EngagementUpdateOne) sqlSave(ctx context.Context) (_node *Engagement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagement.Table, engagement.Columns, sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Engagement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagement.FieldID)
		for _, f := range fields {
			if !engagement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != engagement.FieldID {
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
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(engagement.FieldObjective, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveType(); ok {
		_spec.SetField(engagement.FieldObjectiveType, field.TypeString, value)
	}
	if _u.mutation.ObjectiveTypeCleared() {
		_spec.ClearField(engagement.FieldObjectiveType, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(engagement.FieldScope, field.TypeJSON, value)
	}
	if _u.mutation.ScopeCleared() {
		_spec.ClearField(engagement.FieldScope, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(engagement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(engagement.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(engagement.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(engagement.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(engagement.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(engagement.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(engagement.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(engagement.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinalReport(); ok {
		_spec.SetField(engagement.FieldFinalReport, field.TypeString, value)
	}
	if _u.mutation.FinalReportCleared() {
		_spec.ClearField(engagement.FieldFinalReport, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutiveSummary(); ok {
		_spec.SetField(engagement.FieldExecutiveSummary, field.TypeString, value)
	}
	if _u.mutation.ExecutiveSummaryCleared() {
		_spec.ClearField(engagement.FieldExecutiveSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(engagement.FieldStats, field.TypeJSON, value)
	}
	if _u.mutation.StatsCleared() {
		_spec.ClearField(engagement.FieldStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(engagement.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(engagement.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(engagement.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(engagement.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(engagement.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(engagement.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentMessagesIDs(); len(nodes) > 0 && !_u.mutation.AgentMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LocksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLocksIDs(); len(nodes) > 0 && !_u.mutation.LocksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFindingsIDs(); len(nodes) > 0 && !_u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmInteractionsIDs(); len(nodes) > 0 && !_u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolInteractionsIDs(); len(nodes) > 0 && !_u.mutation.ToolInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Engagement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
