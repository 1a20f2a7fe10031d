package models

import "encoding/json"

// Scope is the engagement's authorization boundary: which targets are in
// play, how fast commands may run, and which phases need operator approval.
// A snapshot is stored on the engagement row and consumed by the guardian.
type Scope struct {
	IncludeCIDRs    []string `json:"include_cidrs,omitempty" yaml:"include_cidrs"`
	ExcludeCIDRs    []string `json:"exclude_cidrs,omitempty" yaml:"exclude_cidrs"`
	IncludeDomains  []string `json:"include_domains,omitempty" yaml:"include_domains"`
	ExcludeDomains  []string `json:"exclude_domains,omitempty" yaml:"exclude_domains"`
	RateLimit       int      `json:"rate_limit,omitempty" yaml:"rate_limit"`
	BlockedCommands []string `json:"blocked_commands,omitempty" yaml:"blocked_commands"`
	ApprovalPhases  []string `json:"approval_phases,omitempty" yaml:"approval_phases"`
}

// ToMap converts the scope to the generic map stored in the engagement row.
func (s *Scope) ToMap() (map[string]interface{}, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// ScopeFromMap reconstructs a scope from the stored engagement snapshot.
func ScopeFromMap(m map[string]interface{}) (*Scope, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var s Scope
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
