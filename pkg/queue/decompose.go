package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/agent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

// maxDecomposedTasks caps LLM decompositions; larger plans are rejected in
// favor of the fixed defaults.
const maxDecomposedTasks = 10

const decompositionSystemPrompt = `You are the team lead of an autonomous penetration-testing team. Split the engagement objective into a small set of tasks for worker agents.

Respond with ONLY a JSON array. Each element:
{"id": "<short key like recon-1>", "description": "<self-contained instruction for one worker>", "dependencies": ["<ids that must complete first>"], "type": "<recon|scan|exploit|analysis|validation>"}

Guidelines:
- 3 to 6 tasks. Run tasks in parallel where possible; chain them with dependencies where order matters.
- Every description must restate the relevant targets. Workers do not see this conversation.
- Exploitation tasks must depend on the analysis or scanning that justifies them.`

// decompose turns the engagement objective into a task plan. The router is
// asked first; any failure (transport, parse, invalid graph) falls back to
// the fixed default decomposition for the objective type.
func (e *TeamLeadExecutor) decompose(ctx context.Context, run *engagementRun) []coordination.TaskSpec {
	specs, err := e.decomposeWithRouter(ctx, run)
	if err != nil {
		run.logger.Warn("Objective decomposition via LLM failed, using default plan",
			"objective_type", run.eng.ObjectiveType,
			"error", err)
		return defaultDecomposition(run.eng.ObjectiveType, run.eng.Objective)
	}
	run.logger.Info("Objective decomposed", "tasks", len(specs))
	return specs
}

func (e *TeamLeadExecutor) decomposeWithRouter(ctx context.Context, run *engagementRun) ([]coordination.TaskSpec, error) {
	var user strings.Builder
	fmt.Fprintf(&user, "Objective: %s\n", run.eng.Objective)
	if run.eng.ObjectiveType != "" {
		fmt.Fprintf(&user, "Objective type: %s\n", run.eng.ObjectiveType)
	}
	if run.scope != nil {
		if len(run.scope.IncludeCIDRs) > 0 {
			fmt.Fprintf(&user, "In-scope networks: %s\n", strings.Join(run.scope.IncludeCIDRs, ", "))
		}
		if len(run.scope.IncludeDomains) > 0 {
			fmt.Fprintf(&user, "In-scope domains: %s\n", strings.Join(run.scope.IncludeDomains, ", "))
		}
	}

	started := time.Now()
	resp, err := e.llmClient.Chat(ctx, &llm.ChatRequest{
		EngagementID: run.eng.ID,
		AgentID:      teamLeadAgentID,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: decompositionSystemPrompt},
			{Role: llm.RoleUser, Content: user.String()},
		},
	})
	e.recordLeadCall(ctx, run, "decomposition", resp, err, time.Since(started))
	if err != nil {
		return nil, fmt.Errorf("decomposition call failed: %w", err)
	}

	return parseDecomposition(resp.Content)
}

// parseDecomposition extracts the outermost JSON array from the model's
// response and validates it into a task plan.
func parseDecomposition(content string) ([]coordination.TaskSpec, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array in decomposition response")
	}

	var raw []struct {
		ID           string   `json:"id"`
		Description  string   `json:"description"`
		Dependencies []string `json:"dependencies"`
		Type         string   `json:"type"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("decomposition is not valid JSON: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("decomposition is empty")
	}
	if len(raw) > maxDecomposedTasks {
		return nil, fmt.Errorf("decomposition has %d tasks, limit is %d", len(raw), maxDecomposedTasks)
	}

	seen := make(map[string]struct{}, len(raw))
	for _, t := range raw {
		if t.ID == "" {
			return nil, fmt.Errorf("decomposition contains a task without an id")
		}
		if t.Description == "" {
			return nil, fmt.Errorf("task %s has no description", t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task id %s", t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	// Dependencies must reference declared tasks; a dangling edge would make
	// the task unclaimable forever.
	specs := make([]coordination.TaskSpec, 0, len(raw))
	for _, t := range raw {
		for _, dep := range t.Dependencies {
			if dep == t.ID {
				return nil, fmt.Errorf("task %s depends on itself", t.ID)
			}
			if _, ok := seen[dep]; !ok {
				return nil, fmt.Errorf("task %s depends on unknown task %s", t.ID, dep)
			}
		}
		specs = append(specs, coordination.TaskSpec{
			Key:          t.ID,
			Description:  t.Description,
			Type:         models.TaskType(t.Type),
			Dependencies: t.Dependencies,
		})
	}
	return specs, nil
}

// defaultDecomposition is the fixed fallback plan per objective type:
// parallel reconnaissance feeding analysis, then exploitation, then
// validation.
func defaultDecomposition(objectiveType, objective string) []coordination.TaskSpec {
	switch objectiveType {
	case "web":
		return []coordination.TaskSpec{
			{
				Key:         "recon-1",
				Description: fmt.Sprintf("Map the web attack surface for: %s. Enumerate hostnames, endpoints, technologies, and authentication entry points.", objective),
				Type:        models.TaskTypeRecon,
				Priority:    2,
			},
			{
				Key:         "scan-1",
				Description: fmt.Sprintf("Probe the discovered web services for: %s. Identify reachable paths, parameter handling, and known-vulnerable components.", objective),
				Type:        models.TaskTypeScan,
				Priority:    2,
			},
			{
				Key:          "analysis-1",
				Description:  fmt.Sprintf("Correlate reconnaissance and scanning results for: %s. Rank candidate vulnerabilities by exploitability and impact.", objective),
				Type:         models.TaskTypeAnalysis,
				Dependencies: []string{"recon-1", "scan-1"},
				Priority:     1,
			},
			{
				Key:          "exploit-1",
				Description:  fmt.Sprintf("Attempt minimal-impact exploitation of the top-ranked web vulnerabilities for: %s. Capture concrete evidence for every success.", objective),
				Type:         models.TaskTypeExploit,
				Dependencies: []string{"analysis-1"},
			},
			{
				Key:          "validate-1",
				Description:  fmt.Sprintf("Re-verify all reported findings for: %s. Eliminate false positives and confirm severity ratings.", objective),
				Type:         models.TaskTypeValidation,
				Dependencies: []string{"exploit-1"},
			},
		}
	case "network", "full", "":
		fallthrough
	default:
		return []coordination.TaskSpec{
			{
				Key:         "recon-1",
				Description: fmt.Sprintf("Passive reconnaissance for: %s. Enumerate DNS records, exposed services, and publicly known infrastructure without touching targets.", objective),
				Type:        models.TaskTypeRecon,
				Priority:    2,
			},
			{
				Key:         "recon-2",
				Description: fmt.Sprintf("Active enumeration for: %s. Discover live hosts, open ports, and service versions inside the declared scope.", objective),
				Type:        models.TaskTypeScan,
				Priority:    2,
			},
			{
				Key:          "analysis-1",
				Description:  fmt.Sprintf("Correlate reconnaissance results for: %s. Rank the most promising attack paths with justification from recorded evidence.", objective),
				Type:         models.TaskTypeAnalysis,
				Dependencies: []string{"recon-1", "recon-2"},
				Priority:     1,
			},
			{
				Key:          "exploit-1",
				Description:  fmt.Sprintf("Attempt minimal-impact exploitation of the top-ranked attack paths for: %s. Capture concrete evidence for every success.", objective),
				Type:         models.TaskTypeExploit,
				Dependencies: []string{"analysis-1"},
			},
			{
				Key:          "validate-1",
				Description:  fmt.Sprintf("Re-verify all reported findings for: %s. Eliminate false positives and confirm severity ratings.", objective),
				Type:         models.TaskTypeValidation,
				Dependencies: []string{"exploit-1"},
			},
		}
	}
}

// recordLeadCall persists a timeline record for a lead-level LLM call
// (decomposition, synthesis). Best-effort: failures are logged only.
func (e *TeamLeadExecutor) recordLeadCall(ctx context.Context, run *engagementRun, phase string, resp *llm.ChatResponse, callErr error, duration time.Duration) {
	if e.recorder == nil {
		return
	}
	rec := &agent.LLMRecord{
		EngagementID:   run.eng.ID,
		AgentID:        teamLeadAgentID,
		RequestSummary: fmt.Sprintf("team lead %s call", phase),
		Duration:       duration,
	}
	if resp != nil {
		rec.Provider = resp.Provider
		rec.Model = resp.Model
		rec.ResponseContent = resp.Content
		rec.Usage = resp.Usage
	}
	if callErr != nil {
		rec.Error = callErr.Error()
	}
	if err := e.recorder.RecordLLMInteraction(ctx, rec); err != nil {
		slog.Warn("Failed to record team lead LLM call",
			"engagement_id", run.eng.ID, "phase", phase, "error", err)
	}
}
