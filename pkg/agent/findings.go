package agent

import (
	"strings"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

// findingPrefix marks a structured finding line in agent output. The system
// prompt instructs agents to report findings in this form:
//
//	FINDING: <severity> | <title> | <description>
const findingPrefix = "FINDING:"

// Finding is one structured finding extracted from an agent's answer.
type Finding struct {
	Severity    models.Severity
	Title       string
	Description string
}

// ParseFindings extracts FINDING lines from agent output. Lines that carry
// the prefix but no title are dropped; unknown severities degrade to info
// rather than losing the finding.
func ParseFindings(content string) []Finding {
	var findings []Finding
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, findingPrefix) {
			continue
		}

		parts := strings.SplitN(strings.TrimPrefix(line, findingPrefix), "|", 3)
		severity := models.Severity(strings.ToLower(strings.TrimSpace(parts[0])))
		if !severity.IsValid() {
			severity = models.SeverityInfo
		}

		var title, description string
		if len(parts) > 1 {
			title = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			description = strings.TrimSpace(parts[2])
		}
		if title == "" {
			continue
		}

		findings = append(findings, Finding{
			Severity:    severity,
			Title:       title,
			Description: description,
		})
	}
	return findings
}
