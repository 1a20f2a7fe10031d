package llm

import "fmt"

// FixMessageList restores conversation consistency before a request is
// sent. It drops messages with an empty role, demotes orphan tool results
// (no matching tool_call) to system notes, and pairs every tool_call that
// never received a response with a synthetic tool message at the next
// assistant boundary. The function is pure and idempotent: repairing an
// already-consistent conversation returns it unchanged.
func FixMessageList(messages []Message) []Message {
	out := make([]Message, 0, len(messages))

	pending := make(map[string]ToolCall)
	var pendingOrder []string

	flushPending := func() {
		for _, id := range pendingOrder {
			call := pending[id]
			out = append(out, Message{
				Role:       RoleTool,
				Content:    fmt.Sprintf("execution interrupted — no response for %s", call.Name),
				ToolCallID: id,
				ToolName:   call.Name,
			})
		}
		pending = make(map[string]ToolCall)
		pendingOrder = nil
	}

	for _, msg := range messages {
		switch msg.Role {
		case "":
			continue

		case RoleAssistant:
			// Unanswered calls from the previous assistant turn must be
			// resolved before a new assistant message appears.
			flushPending()
			out = append(out, msg)
			for _, call := range msg.ToolCalls {
				if _, dup := pending[call.ID]; dup {
					continue
				}
				pending[call.ID] = call
				pendingOrder = append(pendingOrder, call.ID)
			}

		case RoleTool:
			if _, ok := pending[msg.ToolCallID]; ok {
				delete(pending, msg.ToolCallID)
				for i, id := range pendingOrder {
					if id == msg.ToolCallID {
						pendingOrder = append(pendingOrder[:i], pendingOrder[i+1:]...)
						break
					}
				}
				out = append(out, msg)
				continue
			}
			name := msg.ToolName
			if name == "" {
				name = "unknown"
			}
			out = append(out, Message{
				Role:    RoleSystem,
				Content: fmt.Sprintf("[orphan tool result %s]: %s", name, msg.Content),
			})

		default:
			out = append(out, msg)
		}
	}

	flushPending()
	return out
}
