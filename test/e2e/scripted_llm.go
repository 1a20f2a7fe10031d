package e2e

import (
	"context"
	"strings"
	"sync"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
)

// ScriptedLLMClient is the deterministic LLM stand-in for e2e runs. Rules
// are evaluated in registration order; the first match answers the request.
// Requests nothing matches fall back to role-based defaults: a two-task
// decomposition, a canned report and summary, and a bare worker completion.
type ScriptedLLMClient struct {
	mu    sync.Mutex
	rules []ScriptRule
	calls []*llm.ChatRequest
}

// ScriptRule pairs a request predicate with its scripted response.
type ScriptRule struct {
	Match   func(req *llm.ChatRequest) bool
	Respond func(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)
}

// NewScriptedLLMClient creates a client with no rules; defaults apply.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{}
}

// AddRule appends a rule. Later rules only see requests earlier ones reject.
func (c *ScriptedLLMClient) AddRule(rule ScriptRule) *ScriptedLLMClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rules = append(c.rules, rule)
	return c
}

// Calls returns a snapshot of every request received so far.
func (c *ScriptedLLMClient) Calls() []*llm.ChatRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*llm.ChatRequest, len(c.calls))
	copy(out, c.calls)
	return out
}

// CallCount returns how many requests the client has answered.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *ScriptedLLMClient) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	c.mu.Lock()
	c.calls = append(c.calls, req)
	rules := make([]ScriptRule, len(c.rules))
	copy(rules, c.rules)
	c.mu.Unlock()

	for _, rule := range rules {
		if rule.Match(req) {
			return rule.Respond(ctx, req)
		}
	}
	return c.defaultResponse(req), nil
}

func (c *ScriptedLLMClient) defaultResponse(req *llm.ChatRequest) *llm.ChatResponse {
	system := SystemPrompt(req)
	switch {
	case IsDecomposition(req):
		return TextResponse(`[
			{"id": "recon-1", "description": "Enumerate services on the scoped network", "type": "recon"},
			{"id": "exploit-1", "description": "Exploit the most promising service", "dependencies": ["recon-1"], "type": "exploit"}
		]`)
	case strings.Contains(system, "final engagement report"):
		return TextResponse("# Engagement Report\n\nNarrative over the task results.")
	case strings.Contains(system, "executive summary"):
		return TextResponse("Executive summary for leadership.")
	default:
		return TextResponse("Task finished. Nothing further to report.")
	}
}

// SystemPrompt returns the request's first system message.
func SystemPrompt(req *llm.ChatRequest) string {
	for _, msg := range req.Messages {
		if msg.Role == llm.RoleSystem {
			return msg.Content
		}
	}
	return ""
}

// LastUserMessage returns the request's most recent user message.
func LastUserMessage(req *llm.ChatRequest) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == llm.RoleUser {
			return req.Messages[i].Content
		}
	}
	return ""
}

// IsDecomposition reports whether the request is the team lead's planning
// call.
func IsDecomposition(req *llm.ChatRequest) bool {
	return strings.Contains(SystemPrompt(req), "Split the engagement objective")
}

// IsWorkerTask reports whether the request belongs to a worker whose task
// description contains the given fragment.
func IsWorkerTask(req *llm.ChatRequest, descFragment string) bool {
	if IsDecomposition(req) {
		return false
	}
	system := SystemPrompt(req)
	if strings.Contains(system, "final engagement report") || strings.Contains(system, "executive summary") {
		return false
	}
	for _, msg := range req.Messages {
		if msg.Role == llm.RoleUser && strings.Contains(msg.Content, descFragment) {
			return true
		}
	}
	return false
}

// HasToolResponse reports whether the conversation already carries a tool
// result, i.e. the worker is past its first turn.
func HasToolResponse(req *llm.ChatRequest) bool {
	for _, msg := range req.Messages {
		if msg.Role == llm.RoleTool {
			return true
		}
	}
	return false
}

// TextResponse builds a plain completion.
func TextResponse(content string) *llm.ChatResponse {
	return &llm.ChatResponse{
		Content:      content,
		FinishReason: "stop",
		Usage:        llm.Usage{PromptTokens: 40, CompletionTokens: 20, TotalTokens: 60},
		Provider:     "scripted",
		Model:        "scripted-1",
	}
}

// ToolCallResponse builds a completion requesting one tool invocation.
func ToolCallResponse(callID, tool string, args map[string]any) *llm.ChatResponse {
	return &llm.ChatResponse{
		Content:      "",
		FinishReason: "tool_calls",
		ToolCalls: []llm.ToolCall{
			{ID: callID, Name: tool, Arguments: args},
		},
		Usage:    llm.Usage{PromptTokens: 40, CompletionTokens: 10, TotalTokens: 50},
		Provider: "scripted",
		Model:    "scripted-1",
	}
}
