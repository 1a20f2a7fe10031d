// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentMessage is the predicate function for agentmessage builders.
type AgentMessage func(*sql.Selector)

// Engagement is the predicate function for engagement builders.
type Engagement func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Finding is the predicate function for finding builders.
type Finding func(*sql.Selector)

// LLMInteraction is the predicate function for llminteraction builders.
type LLMInteraction func(*sql.Selector)

// ResourceLock is the predicate function for resourcelock builders.
type ResourceLock func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// ToolInteraction is the predicate function for toolinteraction builders.
type ToolInteraction func(*sql.Selector)
