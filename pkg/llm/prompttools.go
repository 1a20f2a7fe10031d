package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Prompt-based tool calling: some OpenAI-compatible servers reject the
// native tools field. For those the router renders the schemas into the
// system prompt, asks the model to answer with a JSON object, and parses
// tool calls back out of plain text.

// renderToolsPrompt produces the textual tool catalog appended to the
// system message in prompt mode.
func renderToolsPrompt(tools []ToolSchema) string {
	var b strings.Builder
	b.WriteString("\n\n## Available tools\n")
	for _, t := range tools {
		fmt.Fprintf(&b, "- %s: %s", t.Name, t.Description)
		if params := renderParameters(t.Parameters); params != "" {
			fmt.Fprintf(&b, "; params: %s", params)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nTo call a tool, reply with a single JSON object of the form\n" +
		"{\"tool_call\": {\"name\": \"<tool name>\", \"arguments\": {...}}}\n" +
		"Emit one JSON object per tool call and no other JSON objects. " +
		"When no tool is needed, reply with plain text only.")
	return b.String()
}

// renderParameters flattens a JSON-schema parameters object into
// "name: type (REQUIRED|optional) — description" clauses.
func renderParameters(schema map[string]any) string {
	props, _ := schema["properties"].(map[string]any)
	if len(props) == 0 {
		return ""
	}

	required := make(map[string]bool)
	if reqs, ok := schema["required"].([]any); ok {
		for _, r := range reqs {
			if name, ok := r.(string); ok {
				required[name] = true
			}
		}
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	clauses := make([]string, 0, len(names))
	for _, name := range names {
		prop, _ := props[name].(map[string]any)
		typ, _ := prop["type"].(string)
		if typ == "" {
			typ = "any"
		}
		level := "optional"
		if required[name] {
			level = "REQUIRED"
		}
		clause := fmt.Sprintf("%s: %s (%s)", name, typ, level)
		if desc, ok := prop["description"].(string); ok && desc != "" {
			clause += " — " + desc
		}
		clauses = append(clauses, clause)
	}
	return strings.Join(clauses, ", ")
}

// withPromptToolInstructions returns a copy of the conversation with the
// tool catalog appended to the first system message (or prepended as a new
// one when the conversation has none).
func withPromptToolInstructions(messages []Message, tools []ToolSchema) []Message {
	instructions := renderToolsPrompt(tools)

	out := make([]Message, len(messages))
	copy(out, messages)
	for i := range out {
		if out[i].Role == RoleSystem {
			out[i].Content += instructions
			return out
		}
	}
	return append([]Message{{Role: RoleSystem, Content: strings.TrimSpace(instructions)}}, out...)
}

var (
	fencedJSONPattern   = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	toolResponsePattern = regexp.MustCompile(`(?s)<tool_response>.*?</tool_response>`)
)

// ParsePromptToolCalls extracts tool calls a model emitted as JSON text.
// Fenced ```json blocks are preferred; if none yields a call, every
// balanced top-level JSON object in the text is considered. Matched spans
// and hallucinated <tool_response> blocks are stripped so the remaining
// content reads clean. Parsed calls receive fresh uuid identifiers.
func ParsePromptToolCalls(content string) (string, []ToolCall) {
	cleaned := toolResponsePattern.ReplaceAllString(content, "")

	var calls []ToolCall
	var spans [][2]int

	for _, m := range fencedJSONPattern.FindAllStringSubmatchIndex(cleaned, -1) {
		candidate := cleaned[m[2]:m[3]]
		if call, ok := decodeToolCall(candidate); ok {
			calls = append(calls, call)
			spans = append(spans, [2]int{m[0], m[1]})
		}
	}

	if len(calls) == 0 {
		for _, span := range scanJSONObjects(cleaned) {
			candidate := cleaned[span[0]:span[1]]
			if call, ok := decodeToolCall(candidate); ok {
				calls = append(calls, call)
				spans = append(spans, span)
			}
		}
	}

	if len(spans) > 0 {
		var b strings.Builder
		prev := 0
		for _, span := range spans {
			b.WriteString(cleaned[prev:span[0]])
			prev = span[1]
		}
		b.WriteString(cleaned[prev:])
		cleaned = b.String()
	}

	return strings.TrimSpace(cleaned), calls
}

// decodeToolCall accepts both the wrapped {"tool_call": {...}} shape the
// instructions request and a bare {"name": ..., "arguments": {...}}.
func decodeToolCall(candidate string) (ToolCall, bool) {
	var wrapper struct {
		ToolCall *struct {
			Name      string         `json:"name"`
			Arguments map[string]any `json:"arguments"`
		} `json:"tool_call"`
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.Unmarshal([]byte(candidate), &wrapper); err != nil {
		return ToolCall{}, false
	}

	name := wrapper.Name
	args := wrapper.Arguments
	if wrapper.ToolCall != nil {
		name = wrapper.ToolCall.Name
		args = wrapper.ToolCall.Arguments
	} else if args == nil {
		// A bare object without an arguments key is ordinary JSON text,
		// not a tool call.
		return ToolCall{}, false
	}
	if name == "" {
		return ToolCall{}, false
	}
	if args == nil {
		args = map[string]any{}
	}

	return ToolCall{ID: "call_" + uuid.NewString(), Name: name, Arguments: args}, true
}

// scanJSONObjects finds the byte spans of balanced top-level {...} objects,
// honoring string quoting and backslash escapes.
func scanJSONObjects(s string) [][2]int {
	var spans [][2]int
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					spans = append(spans, [2]int{start, i + 1})
					start = -1
				}
			}
		}
	}
	return spans
}
