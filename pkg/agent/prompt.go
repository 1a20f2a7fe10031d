package agent

import (
	"fmt"
	"strings"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

const basePrompt = `You are RedClaw, an autonomous penetration-testing agent working inside an authorized engagement.

Rules:
- Only interact with targets inside the declared scope. Treat everything else as off limits.
- Use the provided tools for every action against a target; never invent tool output.
- Prefer the least intrusive technique that answers the question. Never destroy data or disrupt service.
- Report each confirmed finding on its own line as
  FINDING: <severity> | <title> | <description>
  with severity one of critical, high, medium, low, info.
- When the objective is met, or clearly cannot be met, state your conclusion and stop calling tools.`

// taskTypeHints maps a task type to guidance appended to the system prompt.
var taskTypeHints = map[models.TaskType]string{
	models.TaskTypeRecon:      "Reconnaissance task: favor passive sources first (DNS, certificate transparency, archived content), then light active enumeration. Map the attack surface before touching services.",
	models.TaskTypeScan:       "Scanning task: enumerate open ports and service versions. Start broad and shallow, then go deep on responsive services. Stay inside the engagement rate limit.",
	models.TaskTypeExploit:    "Exploitation task: validate the vulnerability with the least destructive proof available and capture evidence of access.",
	models.TaskTypeAnalysis:   "Analysis task: correlate prior results, rank the most promising attack paths, and justify every conclusion from recorded evidence.",
	models.TaskTypeValidation: "Validation task: re-verify reported findings, eliminate false positives, and confirm severity ratings with fresh evidence.",
}

// buildSystemPrompt composes the system message for a task from the base
// rules, the engagement scope, a task-type hint, and peer findings.
func buildSystemPrompt(taskCtx *TaskContext) string {
	var b strings.Builder
	b.WriteString(basePrompt)

	if taskCtx == nil {
		return b.String()
	}

	if taskCtx.Scope != nil {
		b.WriteString("\n\n")
		b.WriteString(formatScope(taskCtx.Scope))
	}

	if hint, ok := taskTypeHints[taskCtx.TaskType]; ok {
		b.WriteString("\n\n")
		b.WriteString(hint)
	}

	if len(taskCtx.PeerFindings) > 0 {
		b.WriteString("\n\nFindings reported by teammates so far:")
		for _, finding := range taskCtx.PeerFindings {
			b.WriteString("\n- ")
			b.WriteString(finding)
		}
	}

	return b.String()
}

func formatScope(scope *models.Scope) string {
	var b strings.Builder
	b.WriteString("Engagement scope:")
	if len(scope.IncludeCIDRs) > 0 {
		fmt.Fprintf(&b, "\n- In-scope networks: %s", strings.Join(scope.IncludeCIDRs, ", "))
	}
	if len(scope.IncludeDomains) > 0 {
		fmt.Fprintf(&b, "\n- In-scope domains: %s", strings.Join(scope.IncludeDomains, ", "))
	}
	if len(scope.ExcludeCIDRs) > 0 {
		fmt.Fprintf(&b, "\n- Excluded networks (never touch): %s", strings.Join(scope.ExcludeCIDRs, ", "))
	}
	if len(scope.ExcludeDomains) > 0 {
		fmt.Fprintf(&b, "\n- Excluded domains (never touch): %s", strings.Join(scope.ExcludeDomains, ", "))
	}
	if scope.RateLimit > 0 {
		fmt.Fprintf(&b, "\n- Rate limit: at most %d commands per minute", scope.RateLimit)
	}
	return b.String()
}
