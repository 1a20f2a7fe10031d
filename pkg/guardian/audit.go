package guardian

import (
	"encoding/json"
	"time"
)

// AuditRecord captures one guardian decision for the engagement audit
// trail. Records are kept in memory and exported via the API.
type AuditRecord struct {
	Timestamp   time.Time   `json:"timestamp"`
	Command     string      `json:"command"`
	SessionKind SessionKind `json:"session_kind"`
	Risk        RiskLevel   `json:"risk"`
	Allowed     bool        `json:"allowed"`
	Reasons     []string    `json:"reasons,omitempty"`
}

func (g *Guardian) record(command string, kind SessionKind, v Validation) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.audit = append(g.audit, AuditRecord{
		Timestamp:   g.now(),
		Command:     command,
		SessionKind: kind,
		Risk:        v.Risk,
		Allowed:     v.Allowed,
		Reasons:     v.Reasons,
	})
}

// AuditLog returns a copy of all decisions made so far, oldest first.
func (g *Guardian) AuditLog() []AuditRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]AuditRecord, len(g.audit))
	copy(out, g.audit)
	return out
}

// ExportAuditJSON serializes the audit log for the export endpoint.
func (g *Guardian) ExportAuditJSON() ([]byte, error) {
	return json.MarshalIndent(g.AuditLog(), "", "  ")
}
