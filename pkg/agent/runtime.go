// Package agent implements the ReAct runtime: the observe-think-act loop
// that drives one LLM reasoner through a task, dispatching its tool calls
// through the tool bridge and streaming progress events to the caller.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/tools"
)

const (
	defaultMaxIterations  = 30
	defaultTaskTimeout    = 10 * time.Minute
	defaultOutputMaxChars = 3000
	defaultContextLimit   = 128000

	// Tool output shown in events is capped independently of the copy that
	// enters the conversation.
	displayMaxChars = 2000

	// Conversations are trimmed once the token estimate crosses this share
	// of the context limit. The router compacts again at 85% per request;
	// this bound limits growth across iterations.
	trimThresholdPct = 60

	eventBuffer = 64
)

// EventKind classifies runtime events.
type EventKind string

const (
	EventSystem    EventKind = "system"
	EventThinking  EventKind = "thinking"
	EventTool      EventKind = "tool"
	EventAssistant EventKind = "assistant"
)

// Event is one record in a task's progress stream. Exactly one event per
// task carries IsFinal; the channel closes after it.
type Event struct {
	Kind     EventKind      `json:"kind"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	IsFinal  bool           `json:"is_final"`
}

// HealthStatus is the runtime's initialization state.
type HealthStatus string

const (
	HealthNotInitialized HealthStatus = "not_initialized"
	HealthReady          HealthStatus = "ready"
	HealthDegraded       HealthStatus = "degraded"
)

// TaskContext enriches a task with engagement identity, scope, task-type
// hints, and findings reported by peer agents so far. All fields are
// optional; a nil TaskContext runs the objective bare.
type TaskContext struct {
	EngagementID string
	AgentID      string
	Scope        *models.Scope
	TaskType     models.TaskType
	PeerFindings []string
}

// Options tunes a Runtime. Zero values fall back to defaults.
type Options struct {
	// Hard cap on reasoning iterations per task (default 30).
	MaxIterations int

	// Wall-clock budget for one task (default 10m).
	TaskTimeout time.Duration

	// Tool output is compressed to this many characters before it enters
	// the conversation (default 3000).
	OutputMaxChars int

	// Token budget used for conversation trimming, normally the serving
	// provider's context window (default 128000).
	ContextLimit int

	// Optional timeline persistence. Recording is best-effort: failures
	// are logged and never interrupt the task.
	Recorder Recorder

	Logger *slog.Logger
}

// Stats is a snapshot of the runtime's observable state.
type Stats struct {
	Initialized     bool            `json:"initialized"`
	Health          HealthStatus    `json:"health"`
	ProviderHealth  map[string]bool `json:"provider_health,omitempty"`
	TotalTasks      int             `json:"total_tasks"`
	LastIterations  int             `json:"last_iterations"`
	ConversationLen int             `json:"conversation_len"`
}

// healthProber is the optional client upgrade the router implements; test
// doubles that do not probe are treated as ready.
type healthProber interface {
	CheckProviders(ctx context.Context) map[string]bool
}

// Runtime drives the ReAct loop for one agent. It owns its conversation;
// a Runtime runs one task at a time and must not be shared by concurrent
// RunTask callers.
type Runtime struct {
	client llm.Client
	bridge *tools.Bridge
	opts   Options
	logger *slog.Logger

	mu             sync.Mutex
	initialized    bool
	health         HealthStatus
	providerHealth map[string]bool
	totalTasks     int
	lastIterations int
	conversation   []llm.Message
}

// NewRuntime creates a runtime over an LLM client and a tool bridge. The
// bridge may be nil, in which case the model is offered no tools.
func NewRuntime(client llm.Client, bridge *tools.Bridge, opts Options) *Runtime {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = defaultMaxIterations
	}
	if opts.TaskTimeout <= 0 {
		opts.TaskTimeout = defaultTaskTimeout
	}
	if opts.OutputMaxChars <= 0 {
		opts.OutputMaxChars = defaultOutputMaxChars
	}
	if opts.ContextLimit <= 0 {
		opts.ContextLimit = defaultContextLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runtime{
		client: client,
		bridge: bridge,
		opts:   opts,
		logger: logger.With("component", "react_runtime"),
		health: HealthNotInitialized,
	}
}

// Initialize probes provider health once and records the result. A degraded
// router is not an error: a task may still succeed once a provider recovers.
func (r *Runtime) Initialize(ctx context.Context) error {
	if r.client == nil {
		return errors.New("llm client is required")
	}

	r.mu.Lock()
	if r.initialized {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	health := HealthReady
	var perProvider map[string]bool
	if prober, ok := r.client.(healthProber); ok {
		perProvider = prober.CheckProviders(ctx)
		health = HealthDegraded
		for _, reachable := range perProvider {
			if reachable {
				health = HealthReady
				break
			}
		}
	}

	r.mu.Lock()
	r.initialized = true
	r.health = health
	r.providerHealth = perProvider
	r.mu.Unlock()

	r.logger.Info("Runtime initialized", "health", health)
	return nil
}

// Health reports the runtime's current health status.
func (r *Runtime) Health() HealthStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.health
}

// Stats returns a snapshot of the runtime's observable state.
func (r *Runtime) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	var health map[string]bool
	if r.providerHealth != nil {
		health = make(map[string]bool, len(r.providerHealth))
		for name, ok := range r.providerHealth {
			health[name] = ok
		}
	}
	return Stats{
		Initialized:     r.initialized,
		Health:          r.health,
		ProviderHealth:  health,
		TotalTasks:      r.totalTasks,
		LastIterations:  r.lastIterations,
		ConversationLen: len(r.conversation),
	}
}

// ResetConversation discards the retained conversation of the last task.
func (r *Runtime) ResetConversation() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversation = nil
}

// Shutdown returns the runtime to its uninitialized state.
func (r *Runtime) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initialized = false
	r.health = HealthNotInitialized
	r.providerHealth = nil
	r.conversation = nil
	r.logger.Info("Runtime shut down")
}

// RunTask executes one task and streams its events. The caller must drain
// the channel until it closes; the stream ends with exactly one final event
// unless the caller's context dies first.
func (r *Runtime) RunTask(ctx context.Context, objective string, taskCtx *TaskContext) <-chan Event {
	events := make(chan Event, eventBuffer)
	go func() {
		defer close(events)
		r.runTask(ctx, objective, taskCtx, events)
	}()
	return events
}

func (r *Runtime) runTask(ctx context.Context, objective string, taskCtx *TaskContext, events chan<- Event) {
	if err := r.Initialize(ctx); err != nil {
		r.emit(ctx, events, Event{
			Kind:     EventSystem,
			Content:  fmt.Sprintf("Task failed: %v", err),
			Metadata: map[string]any{"reason": "not_initialized"},
			IsFinal:  true,
		})
		return
	}

	var engagementID, agentID string
	if taskCtx != nil {
		engagementID = taskCtx.EngagementID
		agentID = taskCtx.AgentID
	}
	logger := r.logger.With("agent_id", agentID)

	runCtx, cancel := context.WithTimeout(ctx, r.opts.TaskTimeout)
	defer cancel()

	conversation := []llm.Message{
		{Role: llm.RoleSystem, Content: buildSystemPrompt(taskCtx)},
		{Role: llm.RoleUser, Content: objective},
	}
	var schemas []llm.ToolSchema
	if r.bridge != nil {
		schemas = r.bridge.GetTools()
	}

	r.mu.Lock()
	r.totalTasks++
	r.lastIterations = 0
	r.conversation = conversation
	r.mu.Unlock()

	logger.Info("Task started", "objective_chars", len(objective), "tools", len(schemas))

	iteration := 0
	defer func() {
		r.mu.Lock()
		r.lastIterations = iteration
		r.conversation = conversation
		r.mu.Unlock()
	}()

	for iteration = 1; iteration <= r.opts.MaxIterations; iteration++ {
		if runCtx.Err() != nil {
			r.emitDeadline(ctx, runCtx, events, iteration)
			return
		}

		conversation = r.trimConversation(conversation, iteration)

		started := time.Now()
		resp, err := r.client.Chat(runCtx, &llm.ChatRequest{
			EngagementID: engagementID,
			AgentID:      agentID,
			Messages:     conversation,
			Tools:        schemas,
		})
		if err != nil {
			r.recordLLM(ctx, engagementID, agentID, iteration, conversation, nil, time.Since(started), err)
			r.emitChatFailure(ctx, runCtx, events, iteration, err)
			return
		}
		r.recordLLM(ctx, engagementID, agentID, iteration, conversation, resp, time.Since(started), nil)

		meta := map[string]any{
			"iteration": iteration,
			"provider":  resp.Provider,
			"model":     resp.Model,
		}
		r.emit(ctx, events, Event{Kind: EventAssistant, Content: resp.Content, Metadata: meta})

		if len(resp.ToolCalls) == 0 {
			conversation = append(conversation, llm.Message{Role: llm.RoleAssistant, Content: resp.Content})
			logger.Info("Task completed", "iterations", iteration)
			r.emit(ctx, events, Event{
				Kind:    EventAssistant,
				Content: resp.Content,
				Metadata: map[string]any{
					"reason":     "completed",
					"iterations": iteration,
				},
				IsFinal: true,
			})
			return
		}

		conversation = append(conversation, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			r.emit(ctx, events, Event{
				Kind:    EventThinking,
				Content: fmt.Sprintf("Calling tool %s", call.Name),
				Metadata: map[string]any{
					"iteration": iteration,
					"tool":      call.Name,
					"arguments": call.Arguments,
				},
			})

			result := r.dispatch(runCtx, call)
			r.recordTool(ctx, engagementID, agentID, call, result)

			raw := result.Output
			if !result.Success {
				raw = result.Error
				if result.Output != "" {
					raw += "\n" + result.Output
				}
			}

			r.emit(ctx, events, Event{
				Kind:    EventTool,
				Content: truncateForDisplay(raw, displayMaxChars),
				Metadata: map[string]any{
					"iteration":   iteration,
					"tool":        call.Name,
					"success":     result.Success,
					"duration_ms": result.Duration.Milliseconds(),
				},
			})

			conversation = append(conversation, llm.Message{
				Role:       llm.RoleTool,
				Content:    CompressToolOutput(raw, r.opts.OutputMaxChars),
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
		}

		r.mu.Lock()
		r.lastIterations = iteration
		r.conversation = conversation
		r.mu.Unlock()
	}

	iteration = r.opts.MaxIterations
	logger.Warn("Task hit iteration cap", "max_iterations", r.opts.MaxIterations)
	r.emit(ctx, events, Event{
		Kind:    EventSystem,
		Content: fmt.Sprintf("Reached maximum iterations (%d) without completing the task.", r.opts.MaxIterations),
		Metadata: map[string]any{
			"reason":     "max_iterations",
			"iterations": r.opts.MaxIterations,
		},
		IsFinal: true,
	})
}

// dispatch routes one tool call through the bridge, tolerating a missing one.
func (r *Runtime) dispatch(ctx context.Context, call llm.ToolCall) *tools.Result {
	if r.bridge == nil {
		return &tools.Result{
			Tool:    call.Name,
			Success: false,
			Error:   "no tool bridge configured",
		}
	}
	return r.bridge.Dispatch(ctx, call)
}

// emitChatFailure converts a router error into the task's final system event.
func (r *Runtime) emitChatFailure(ctx, runCtx context.Context, events chan<- Event, iteration int, err error) {
	var exhausted *llm.ExhaustedError
	switch {
	case errors.As(err, &exhausted):
		r.logger.Warn("All providers exhausted", "iteration", iteration, "error", err)
		r.emit(ctx, events, Event{
			Kind:    EventSystem,
			Content: fmt.Sprintf("Task failed: %v", err),
			Metadata: map[string]any{
				"reason":     "provider_exhaustion",
				"iterations": iteration,
			},
			IsFinal: true,
		})
	case runCtx.Err() != nil:
		r.emitDeadline(ctx, runCtx, events, iteration)
	default:
		r.logger.Warn("LLM call failed", "iteration", iteration, "error", err)
		r.emit(ctx, events, Event{
			Kind:    EventSystem,
			Content: fmt.Sprintf("Task failed: %v", err),
			Metadata: map[string]any{
				"reason":     "llm_error",
				"iterations": iteration,
			},
			IsFinal: true,
		})
	}
}

// emitDeadline distinguishes the task's wall-clock budget from caller
// cancellation when the run context dies.
func (r *Runtime) emitDeadline(ctx, runCtx context.Context, events chan<- Event, iteration int) {
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		r.logger.Warn("Task timed out", "timeout", r.opts.TaskTimeout, "iteration", iteration)
		r.emit(ctx, events, Event{
			Kind:    EventSystem,
			Content: fmt.Sprintf("Task timed out after %s.", r.opts.TaskTimeout),
			Metadata: map[string]any{
				"reason":     "timeout",
				"iterations": iteration,
			},
			IsFinal: true,
		})
		return
	}
	r.logger.Info("Task canceled", "iteration", iteration)
	r.emit(ctx, events, Event{
		Kind:    EventSystem,
		Content: "Task canceled.",
		Metadata: map[string]any{
			"reason":     "canceled",
			"iterations": iteration,
		},
		IsFinal: true,
	})
}

// emit delivers an event. Buffered room is used even when the caller's
// context is dead so terminal events still reach a draining consumer; the
// context guard only prevents a leaked goroutine once the buffer is full
// and nobody reads.
func (r *Runtime) emit(ctx context.Context, events chan<- Event, ev Event) {
	select {
	case events <- ev:
		return
	default:
	}
	select {
	case events <- ev:
	case <-ctx.Done():
	}
}

// trimConversation bounds cross-iteration growth. Once the token estimate
// crosses 60% of the context limit it keeps the first two messages (system
// prompt + objective) and the last two, replacing the middle with a
// synthetic system note. Orphaned tool results left at the boundary are
// repaired by the router before the request goes out.
func (r *Runtime) trimConversation(conversation []llm.Message, iteration int) []llm.Message {
	if len(conversation) <= 5 {
		return conversation
	}
	if llm.EstimateTokens(conversation) <= r.opts.ContextLimit*trimThresholdPct/100 {
		return conversation
	}

	trimmed := len(conversation) - 4
	note := fmt.Sprintf("[%d messages trimmed. Iteration: %d. Continue task.]", trimmed, iteration)

	out := make([]llm.Message, 0, 5)
	out = append(out, conversation[0], conversation[1])
	out = append(out, llm.Message{Role: llm.RoleSystem, Content: note})
	out = append(out, conversation[len(conversation)-2:]...)

	r.logger.Info("Conversation trimmed",
		"removed", trimmed, "iteration", iteration, "kept", len(out))
	return out
}
