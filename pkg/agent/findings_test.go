package agent

import (
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFindings(t *testing.T) {
	t.Run("extracts findings from mixed output", func(t *testing.T) {
		content := "Scan complete. Two issues stand out.\n" +
			"FINDING: critical | SQL injection in /login | The username field concatenates raw input into a query.\n" +
			"Some narrative in between.\n" +
			"  FINDING: medium | Verbose server banner | Apache version disclosed in headers.\n" +
			"Done."

		findings := ParseFindings(content)
		require.Len(t, findings, 2)

		assert.Equal(t, models.SeverityCritical, findings[0].Severity)
		assert.Equal(t, "SQL injection in /login", findings[0].Title)
		assert.Equal(t, "The username field concatenates raw input into a query.", findings[0].Description)

		assert.Equal(t, models.SeverityMedium, findings[1].Severity)
		assert.Equal(t, "Verbose server banner", findings[1].Title)
	})

	t.Run("unknown severity degrades to info", func(t *testing.T) {
		findings := ParseFindings("FINDING: severe | Weak TLS config | Supports TLS 1.0.")
		require.Len(t, findings, 1)
		assert.Equal(t, models.SeverityInfo, findings[0].Severity)
		assert.Equal(t, "Weak TLS config", findings[0].Title)
	})

	t.Run("severity is case-insensitive", func(t *testing.T) {
		findings := ParseFindings("FINDING: HIGH | Default credentials | admin/admin accepted.")
		require.Len(t, findings, 1)
		assert.Equal(t, models.SeverityHigh, findings[0].Severity)
	})

	t.Run("missing title drops the line", func(t *testing.T) {
		assert.Empty(t, ParseFindings("FINDING: critical"))
		assert.Empty(t, ParseFindings("FINDING: critical |   | no title here"))
	})

	t.Run("missing description is allowed", func(t *testing.T) {
		findings := ParseFindings("FINDING: low | Directory listing enabled")
		require.Len(t, findings, 1)
		assert.Equal(t, "Directory listing enabled", findings[0].Title)
		assert.Empty(t, findings[0].Description)
	})

	t.Run("no findings in plain output", func(t *testing.T) {
		assert.Empty(t, ParseFindings("All services patched. Nothing to report."))
		assert.Empty(t, ParseFindings(""))
	})
}
