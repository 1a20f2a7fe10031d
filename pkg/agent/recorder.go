package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/tools"
)

// LLMRecord captures one router call for the engagement timeline. The
// request is summarized (roles and sizes), never stored raw.
type LLMRecord struct {
	EngagementID    string
	AgentID         string
	Provider        string
	Model           string
	Iteration       int
	RequestSummary  string
	ResponseContent string
	ToolCallCount   int
	Usage           llm.Usage
	Duration        time.Duration
	Error           string
}

// ToolRecord captures one dispatched tool call for the engagement timeline.
type ToolRecord struct {
	EngagementID string
	AgentID      string
	ServerName   string
	ToolName     string
	Arguments    map[string]any
	Success      bool
	Output       string
	Error        string
	Risk         string
	Duration     time.Duration
}

// Recorder persists interaction records. Implementations must tolerate
// concurrent calls; the runtime logs failures and keeps going.
type Recorder interface {
	RecordLLMInteraction(ctx context.Context, rec *LLMRecord) error
	RecordToolInteraction(ctx context.Context, rec *ToolRecord) error
}

func (r *Runtime) recordLLM(ctx context.Context, engagementID, agentID string, iteration int,
	request []llm.Message, resp *llm.ChatResponse, duration time.Duration, callErr error) {
	if r.opts.Recorder == nil || engagementID == "" {
		return
	}

	rec := &LLMRecord{
		EngagementID:   engagementID,
		AgentID:        agentID,
		Iteration:      iteration,
		RequestSummary: requestSummary(request),
		Duration:       duration,
	}
	if resp != nil {
		rec.Provider = resp.Provider
		rec.Model = resp.Model
		rec.ResponseContent = resp.Content
		rec.ToolCallCount = len(resp.ToolCalls)
		rec.Usage = resp.Usage
	}
	if callErr != nil {
		rec.Error = callErr.Error()
	}

	if err := r.opts.Recorder.RecordLLMInteraction(ctx, rec); err != nil {
		r.logger.Warn("Failed to record LLM interaction",
			"engagement_id", engagementID, "iteration", iteration, "error", err)
	}
}

func (r *Runtime) recordTool(ctx context.Context, engagementID, agentID string,
	call llm.ToolCall, result *tools.Result) {
	if r.opts.Recorder == nil || engagementID == "" {
		return
	}

	rec := &ToolRecord{
		EngagementID: engagementID,
		AgentID:      agentID,
		ToolName:     call.Name,
		Arguments:    call.Arguments,
		Success:      result.Success,
		Output:       CompressToolOutput(result.Output, r.opts.OutputMaxChars),
		Error:        result.Error,
		Duration:     result.Duration,
	}
	if server, ok := result.Metadata["server"].(string); ok {
		rec.ServerName = server
	}
	if risk, ok := result.Metadata["risk_level"].(string); ok {
		rec.Risk = risk
	}

	if err := r.opts.Recorder.RecordToolInteraction(ctx, rec); err != nil {
		r.logger.Warn("Failed to record tool interaction",
			"engagement_id", engagementID, "tool", call.Name, "error", err)
	}
}

// requestSummary renders a conversation as roles and sizes, e.g.
// "4 messages: system(1845), user(96), assistant(210, 2 tool calls), tool(3000)".
func requestSummary(messages []llm.Message) string {
	parts := make([]string, len(messages))
	for i, m := range messages {
		if len(m.ToolCalls) > 0 {
			parts[i] = fmt.Sprintf("%s(%d, %d tool calls)", m.Role, len(m.Content), len(m.ToolCalls))
		} else {
			parts[i] = fmt.Sprintf("%s(%d)", m.Role, len(m.Content))
		}
	}
	return fmt.Sprintf("%d messages: %s", len(messages), strings.Join(parts, ", "))
}
