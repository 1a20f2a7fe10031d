package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
)

// provider wraps one configured endpoint with its HTTP client and token
// bucket. All requests go to {endpoint}/chat/completions in the
// OpenAI-compatible schema.
type provider struct {
	cfg    *config.LLMProviderConfig
	bucket *tokenBucket
	client *http.Client
}

func newProvider(cfg *config.LLMProviderConfig) *provider {
	return &provider{
		cfg:    cfg,
		bucket: newTokenBucket(cfg.RPMLimit),
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout()) * time.Second,
		},
	}
}

func (p *provider) apiKey() string {
	if p.cfg.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(p.cfg.APIKeyEnv)
}

// Wire structures for the OpenAI chat-completions schema. Tool call
// arguments travel as a JSON-encoded string on the wire.

type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	Name       string         `json:"name,omitempty"`
}

type wireToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function wireFunction `json:"function"`
}

type wireFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type wireTool struct {
	Type     string `json:"type"`
	Function struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Parameters  map[string]any `json:"parameters"`
	} `json:"function"`
}

type wireResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content   string         `json:"content"`
			ToolCalls []wireToolCall `json:"tool_calls"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// chatOnce performs a single HTTP round trip. In prompt mode the tool
// catalog is folded into the system message and tool traffic is rewritten
// to plain user text, since servers in this mode reject the tool role.
func (p *provider) chatOnce(ctx context.Context, messages []Message, tools []ToolSchema, maxTokens int, promptMode bool) (*ChatResponse, error) {
	usePromptTools := promptMode && len(tools) > 0
	if usePromptTools {
		messages = withPromptToolInstructions(messages, tools)
	}

	body := map[string]any{
		"model":    p.cfg.Model,
		"messages": toWireMessages(messages, promptMode),
		"stream":   false,
	}
	if maxTokens > 0 {
		body["max_tokens"] = maxTokens
	}
	if p.cfg.Temperature > 0 {
		body["temperature"] = p.cfg.Temperature
	}
	if len(tools) > 0 && !promptMode {
		body["tools"] = toWireTools(tools)
		body["tool_choice"] = "auto"
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	url := strings.TrimRight(p.cfg.Endpoint, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if key := p.apiKey(); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		perr := &providerError{StatusCode: resp.StatusCode, Body: string(raw)}
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			perr.Body = "retry-after: " + ra + "\n" + perr.Body
		}
		return nil, perr
	}

	return p.parseResponse(raw, usePromptTools)
}

func (p *provider) parseResponse(raw []byte, promptTools bool) (*ChatResponse, error) {
	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse chat response: %w", err)
	}
	if len(wire.Choices) == 0 {
		return nil, fmt.Errorf("chat response contained no choices")
	}

	choice := wire.Choices[0]
	out := &ChatResponse{
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
		Provider:     p.cfg.Name,
		Model:        wire.Model,
		Usage: Usage{
			PromptTokens:     wire.Usage.PromptTokens,
			CompletionTokens: wire.Usage.CompletionTokens,
			TotalTokens:      wire.Usage.TotalTokens,
		},
	}
	if out.Model == "" {
		out.Model = p.cfg.Model
	}

	for _, tc := range choice.Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: decodeArguments(tc.Function.Arguments),
		})
	}

	if promptTools && len(out.ToolCalls) == 0 {
		content, calls := ParsePromptToolCalls(out.Content)
		out.Content = content
		out.ToolCalls = calls
	}

	return out, nil
}

// decodeArguments parses the wire's JSON-string arguments, preserving the
// raw text when it does not parse so nothing is silently lost.
func decodeArguments(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil || args == nil {
		return map[string]any{"_raw": raw}
	}
	return args
}

func toWireMessages(messages []Message, promptMode bool) []wireMessage {
	out := make([]wireMessage, 0, len(messages))
	for _, m := range messages {
		if promptMode {
			// Prompt-mode servers know nothing of the tool role or
			// tool_calls; rewrite both directions as plain text.
			switch m.Role {
			case RoleTool:
				out = append(out, wireMessage{
					Role:    string(RoleUser),
					Content: fmt.Sprintf("<tool_response>\nTool %s returned:\n%s\n</tool_response>", m.ToolName, m.Content),
				})
				continue
			case RoleAssistant:
				content := m.Content
				for _, call := range m.ToolCalls {
					args, _ := json.Marshal(call.Arguments)
					content += fmt.Sprintf("\n{\"tool_call\": {\"name\": %q, \"arguments\": %s}}", call.Name, string(args))
				}
				out = append(out, wireMessage{Role: string(RoleAssistant), Content: content})
				continue
			}
		}

		wm := wireMessage{
			Role:       string(m.Role),
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		if m.Role == RoleTool {
			wm.Name = m.ToolName
		}
		for _, call := range m.ToolCalls {
			args, err := json.Marshal(call.Arguments)
			if err != nil {
				args = []byte("{}")
			}
			wm.ToolCalls = append(wm.ToolCalls, wireToolCall{
				ID:       call.ID,
				Type:     "function",
				Function: wireFunction{Name: call.Name, Arguments: string(args)},
			})
		}
		out = append(out, wm)
	}
	return out
}

func toWireTools(tools []ToolSchema) []wireTool {
	out := make([]wireTool, 0, len(tools))
	for _, t := range tools {
		var wt wireTool
		wt.Type = "function"
		wt.Function.Name = t.Name
		wt.Function.Description = t.Description
		wt.Function.Parameters = t.Parameters
		if wt.Function.Parameters == nil {
			wt.Function.Parameters = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		out = append(out, wt)
	}
	return out
}
