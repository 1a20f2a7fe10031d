// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
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

// EngagementQuery is the builder for querying Engagement entities.
type EngagementQuery struct {
	config
	ctx                  *QueryContext
	order                []engagement.OrderOption
	inters               []Interceptor
	predicates           []predicate.Engagement
	withTasks            *TaskQuery
	withAgentMessages    *AgentMessageQuery
	withLocks            *ResourceLockQuery
	withFindings         *FindingQuery
	withLlmInteractions  *LLMInteractionQuery
	withToolInteractions *ToolInteractionQuery
	withEvents           *EventQuery
	modifiers            []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EngagementQuery builder.
func (_q *EngagementQuery) Where(ps ...predicate.Engagement) *EngagementQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EngagementQuery) Limit(limit int) *EngagementQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EngagementQuery) Offset(offset int) *EngagementQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EngagementQuery) Unique(unique bool) *EngagementQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EngagementQuery) Order(o ...engagement.OrderOption) *EngagementQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTasks chains the current query on the "tasks" edge.
func (_q *EngagementQuery) QueryTasks() *TaskQuery {
	query := (&TaskClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.TasksTable, engagement.TasksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgentMessages chains the current query on the "agent_messages" edge.
func (_q *EngagementQuery) QueryAgentMessages() *AgentMessageQuery {
	query := (&AgentMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, selector),
			sqlgraph.To(agentmessage.Table, agentmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.AgentMessagesTable, engagement.AgentMessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLocks chains the current query on the "locks" edge.
func (_q *EngagementQuery) QueryLocks() *ResourceLockQuery {
	query := (&ResourceLockClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, selector),
			sqlgraph.To(resourcelock.Table, resourcelock.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.LocksTable, engagement.LocksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFindings chains the current query on the "findings" edge.
func (_q *EngagementQuery) QueryFindings() *FindingQuery {
	query := (&FindingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, selector),
			sqlgraph.To(finding.Table, finding.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.FindingsTable, engagement.FindingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLlmInteractions chains the current query on the "llm_interactions" edge.
func (_q *EngagementQuery) QueryLlmInteractions() *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, selector),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.LlmInteractionsTable, engagement.LlmInteractionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryToolInteractions chains the current query on the "tool_interactions" edge.
func (_q *EngagementQuery) QueryToolInteractions() *ToolInteractionQuery {
	query := (&ToolInteractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, selector),
			sqlgraph.To(toolinteraction.Table, toolinteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.ToolInteractionsTable, engagement.ToolInteractionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *EngagementQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, engagement.EventsTable, engagement.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Engagement entity from the query.
// Returns a *NotFoundError when no Engagement was found.
func (_q *EngagementQuery) First(ctx context.Context) (*Engagement, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{engagement.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EngagementQuery) FirstX(ctx context.Context) *Engagement {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Engagement ID from the query.
// Returns a *NotFoundError when no Engagement ID was found.
func (_q *EngagementQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{engagement.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EngagementQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Engagement entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Engagement entity is found.
// Returns a *NotFoundError when no Engagement entities are found.
func (_q *EngagementQuery) Only(ctx context.Context) (*Engagement, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{engagement.Label}
	default:
		return nil, &NotSingularError{engagement.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EngagementQuery) OnlyX(ctx context.Context) *Engagement {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Engagement ID in the query.
// Returns a *NotSingularError when more than one Engagement ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EngagementQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{engagement.Label}
	default:
		err = &NotSingularError{engagement.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EngagementQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Engagements.
func (_q *EngagementQuery) All(ctx context.Context) ([]*Engagement, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Engagement, *EngagementQuery]()
	return withInterceptors[[]*Engagement](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EngagementQuery) AllX(ctx context.Context) []*Engagement {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Engagement IDs.
func (_q *EngagementQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(engagement.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EngagementQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EngagementQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EngagementQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EngagementQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EngagementQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *EngagementQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EngagementQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EngagementQuery) Clone() *EngagementQuery {
	if _q == nil {
		return nil
	}
	return &EngagementQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]engagement.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.Engagement{}, _q.predicates...),
		withTasks:            _q.withTasks.Clone(),
		withAgentMessages:    _q.withAgentMessages.Clone(),
		withLocks:            _q.withLocks.Clone(),
		withFindings:         _q.withFindings.Clone(),
		withLlmInteractions:  _q.withLlmInteractions.Clone(),
		withToolInteractions: _q.withToolInteractions.Clone(),
		withEvents:           _q.withEvents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTasks tells the query-builder to eager-load the nodes that are connected to
// the "tasks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EngagementQuery) WithTasks(opts ...func(*TaskQuery)) *EngagementQuery {
	query := (&TaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTasks = query
	return _q
}

// WithAgentMessages tells the query-builder to eager-load the nodes that are connected to
// the "agent_messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EngagementQuery) WithAgentMessages(opts ...func(*AgentMessageQuery)) *EngagementQuery {
	query := (&AgentMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgentMessages = query
	return _q
}

// WithLocks tells the query-builder to eager-load the nodes that are connected to
// the "locks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EngagementQuery) WithLocks(opts ...func(*ResourceLockQuery)) *EngagementQuery {
	query := (&ResourceLockClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLocks = query
	return _q
}

// WithFindings tells the query-builder to eager-load the nodes that are connected to
// the "findings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EngagementQuery) WithFindings(opts ...func(*FindingQuery)) *EngagementQuery {
	query := (&FindingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFindings = query
	return _q
}

// WithLlmInteractions tells the query-builder to eager-load the nodes that are connected to
// the "llm_interactions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EngagementQuery) WithLlmInteractions(opts ...func(*LLMInteractionQuery)) *EngagementQuery {
	query := (&LLMInteractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLlmInteractions = query
	return _q
}

// WithToolInteractions tells the query-builder to eager-load the nodes that are connected to
// the "tool_interactions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EngagementQuery) WithToolInteractions(opts ...func(*ToolInteractionQuery)) *EngagementQuery {
	query := (&ToolInteractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withToolInteractions = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EngagementQuery) WithEvents(opts ...func(*EventQuery)) *EngagementQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Objective string `json:"objective,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Engagement.Query().
//		GroupBy(engagement.FieldObjective).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EngagementQuery) GroupBy(field string, fields ...string) *EngagementGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EngagementGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = engagement.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Objective string `json:"objective,omitempty"`
//	}
//
//	client.Engagement.Query().
//		Select(engagement.FieldObjective).
//		Scan(ctx, &v)
func (_q *EngagementQuery) Select(fields ...string) *EngagementSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EngagementSelect{EngagementQuery: _q}
	sbuild.label = engagement.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EngagementSelect configured with the given aggregations.
func (_q *EngagementQuery) Aggregate(fns ...AggregateFunc) *EngagementSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EngagementQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !engagement.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *EngagementQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Engagement, error) {
	var (
		nodes       = []*Engagement{}
		_spec       = _q.querySpec()
		loadedTypes = [7]bool{
			_q.withTasks != nil,
			_q.withAgentMessages != nil,
			_q.withLocks != nil,
			_q.withFindings != nil,
			_q.withLlmInteractions != nil,
			_q.withToolInteractions != nil,
			_q.withEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Engagement).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Engagement{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withTasks; query != nil {
		if err := _q.loadTasks(ctx, query, nodes,
			func(n *Engagement) { n.Edges.Tasks = []*Task{} },
			func(n *Engagement, e *Task) { n.Edges.Tasks = append(n.Edges.Tasks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAgentMessages; query != nil {
		if err := _q.loadAgentMessages(ctx, query, nodes,
			func(n *Engagement) { n.Edges.AgentMessages = []*AgentMessage{} },
			func(n *Engagement, e *AgentMessage) { n.Edges.AgentMessages = append(n.Edges.AgentMessages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLocks; query != nil {
		if err := _q.loadLocks(ctx, query, nodes,
			func(n *Engagement) { n.Edges.Locks = []*ResourceLock{} },
			func(n *Engagement, e *ResourceLock) { n.Edges.Locks = append(n.Edges.Locks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFindings; query != nil {
		if err := _q.loadFindings(ctx, query, nodes,
			func(n *Engagement) { n.Edges.Findings = []*Finding{} },
			func(n *Engagement, e *Finding) { n.Edges.Findings = append(n.Edges.Findings, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLlmInteractions; query != nil {
		if err := _q.loadLlmInteractions(ctx, query, nodes,
			func(n *Engagement) { n.Edges.LlmInteractions = []*LLMInteraction{} },
			func(n *Engagement, e *LLMInteraction) { n.Edges.LlmInteractions = append(n.Edges.LlmInteractions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withToolInteractions; query != nil {
		if err := _q.loadToolInteractions(ctx, query, nodes,
			func(n *Engagement) { n.Edges.ToolInteractions = []*ToolInteraction{} },
			func(n *Engagement, e *ToolInteraction) {
				n.Edges.ToolInteractions = append(n.Edges.ToolInteractions, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Engagement) { n.Edges.Events = []*Event{} },
			func(n *Engagement, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EngagementQuery) loadTasks(ctx context.Context, query *TaskQuery, nodes []*Engagement, init func(*Engagement), assign func(*Engagement, *Task)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Engagement)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(task.FieldEngagementID)
	}
	query.Where(predicate.Task(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(engagement.TasksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EngagementID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "engagement_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EngagementQuery) loadAgentMessages(ctx context.Context, query *AgentMessageQuery, nodes []*Engagement, init func(*Engagement), assign func(*Engagement, *AgentMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Engagement)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentmessage.FieldEngagementID)
	}
	query.Where(predicate.AgentMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(engagement.AgentMessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EngagementID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "engagement_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EngagementQuery) loadLocks(ctx context.Context, query *ResourceLockQuery, nodes []*Engagement, init func(*Engagement), assign func(*Engagement, *ResourceLock)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Engagement)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(resourcelock.FieldEngagementID)
	}
	query.Where(predicate.ResourceLock(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(engagement.LocksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EngagementID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "engagement_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EngagementQuery) loadFindings(ctx context.Context, query *FindingQuery, nodes []*Engagement, init func(*Engagement), assign func(*Engagement, *Finding)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Engagement)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(finding.FieldEngagementID)
	}
	query.Where(predicate.Finding(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(engagement.FindingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EngagementID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "engagement_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EngagementQuery) loadLlmInteractions(ctx context.Context, query *LLMInteractionQuery, nodes []*Engagement, init func(*Engagement), assign func(*Engagement, *LLMInteraction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Engagement)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(llminteraction.FieldEngagementID)
	}
	query.Where(predicate.LLMInteraction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(engagement.LlmInteractionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EngagementID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "engagement_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EngagementQuery) loadToolInteractions(ctx context.Context, query *ToolInteractionQuery, nodes []*Engagement, init func(*Engagement), assign func(*Engagement, *ToolInteraction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Engagement)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(toolinteraction.FieldEngagementID)
	}
	query.Where(predicate.ToolInteraction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(engagement.ToolInteractionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EngagementID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "engagement_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EngagementQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*Engagement, init func(*Engagement), assign func(*Engagement, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Engagement)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldEngagementID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(engagement.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EngagementID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "engagement_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EngagementQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EngagementQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(engagement.Table, engagement.Columns, sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagement.FieldID)
		for i := range fields {
			if fields[i] != engagement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *EngagementQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(engagement.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = engagement.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *EngagementQuery) ForUpdate(opts ...sql.LockOption) *EngagementQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *EngagementQuery) ForShare(opts ...sql.LockOption) *EngagementQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// EngagementGroupBy is the group-by builder for Engagement entities.
type EngagementGroupBy struct {
	selector
	build *EngagementQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EngagementGroupBy) Aggregate(fns ...AggregateFunc) *EngagementGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EngagementGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EngagementQuery, *EngagementGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EngagementGroupBy) sqlScan(ctx context.Context, root *EngagementQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// EngagementSelect is the builder for selecting fields of Engagement entities.
type EngagementSelect struct {
	*EngagementQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EngagementSelect) Aggregate(fns ...AggregateFunc) *EngagementSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EngagementSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EngagementQuery, *EngagementSelect](ctx, _s.EngagementQuery, _s, _s.inters, v)
}

func (_s *EngagementSelect) sqlScan(ctx context.Context, root *EngagementQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
