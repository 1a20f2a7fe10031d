// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/agentmessage"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/event"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/finding"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/llminteraction"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/resourcelock"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/schema"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/toolinteraction"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentmessageFields := schema.AgentMessage{}.Fields()
	_ = agentmessageFields
	// agentmessageDescRead is the schema descriptor for read field.
	agentmessageDescRead := agentmessageFields[5].Descriptor()
	// agentmessage.DefaultRead holds the default value on creation for the read field.
	agentmessage.DefaultRead = agentmessageDescRead.Default.(bool)
	// agentmessageDescSentAt is the schema descriptor for sent_at field.
	agentmessageDescSentAt := agentmessageFields[6].Descriptor()
	// agentmessage.DefaultSentAt holds the default value on creation for the sent_at field.
	agentmessage.DefaultSentAt = agentmessageDescSentAt.Default.(func() time.Time)
	engagementFields := schema.Engagement{}.Fields()
	_ = engagementFields
	// engagementDescCreatedAt is the schema descriptor for created_at field.
	engagementDescCreatedAt := engagementFields[5].Descriptor()
	// engagement.DefaultCreatedAt holds the default value on creation for the created_at field.
	engagement.DefaultCreatedAt = engagementDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	findingFields := schema.Finding{}.Fields()
	_ = findingFields
	// findingDescCreatedAt is the schema descriptor for created_at field.
	findingDescCreatedAt := findingFields[9].Descriptor()
	// finding.DefaultCreatedAt holds the default value on creation for the created_at field.
	finding.DefaultCreatedAt = findingDescCreatedAt.Default.(func() time.Time)
	llminteractionFields := schema.LLMInteraction{}.Fields()
	_ = llminteractionFields
	// llminteractionDescToolCallCount is the schema descriptor for tool_call_count field.
	llminteractionDescToolCallCount := llminteractionFields[8].Descriptor()
	// llminteraction.DefaultToolCallCount holds the default value on creation for the tool_call_count field.
	llminteraction.DefaultToolCallCount = llminteractionDescToolCallCount.Default.(int)
	// llminteractionDescCreatedAt is the schema descriptor for created_at field.
	llminteractionDescCreatedAt := llminteractionFields[14].Descriptor()
	// llminteraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	llminteraction.DefaultCreatedAt = llminteractionDescCreatedAt.Default.(func() time.Time)
	resourcelockFields := schema.ResourceLock{}.Fields()
	_ = resourcelockFields
	// resourcelockDescAcquiredAt is the schema descriptor for acquired_at field.
	resourcelockDescAcquiredAt := resourcelockFields[3].Descriptor()
	// resourcelock.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	resourcelock.DefaultAcquiredAt = resourcelockDescAcquiredAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTaskType is the schema descriptor for task_type field.
	taskDescTaskType := taskFields[4].Descriptor()
	// task.DefaultTaskType holds the default value on creation for the task_type field.
	task.DefaultTaskType = taskDescTaskType.Default.(string)
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[6].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[11].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	toolinteractionFields := schema.ToolInteraction{}.Fields()
	_ = toolinteractionFields
	// toolinteractionDescCreatedAt is the schema descriptor for created_at field.
	toolinteractionDescCreatedAt := toolinteractionFields[11].Descriptor()
	// toolinteraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolinteraction.DefaultCreatedAt = toolinteractionDescCreatedAt.Default.(func() time.Time)
}
