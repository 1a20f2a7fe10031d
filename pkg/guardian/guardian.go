// Package guardian implements the safety policy engine that sits between
// agents and command execution. Every command routed through the tool
// bridge is evaluated against the blocklist, suspicious-pattern regexes,
// the engagement scope, a sliding rate window, and risk keyword classes
// before it is allowed to run.
package guardian

import (
	"fmt"
	"log/slog"
	"net"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

// RiskLevel classifies how dangerous a command is. Levels only ever rise
// during evaluation; a later check never lowers an earlier one.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
	RiskBlocked  RiskLevel = "blocked"
)

// rank orders risk levels so evaluation can take the maximum.
var rank = map[RiskLevel]int{
	RiskSafe:     0,
	RiskLow:      1,
	RiskMedium:   2,
	RiskHigh:     3,
	RiskCritical: 4,
	RiskBlocked:  5,
}

// SessionKind distinguishes where a command will run. Local commands
// execute on the operator host (builtin terminal); remote commands run
// against in-scope targets through MCP tool servers.
type SessionKind string

const (
	SessionLocal  SessionKind = "local"
	SessionRemote SessionKind = "remote"
)

// Validation is the outcome of evaluating one command.
type Validation struct {
	Allowed          bool      `json:"allowed"`
	Risk             RiskLevel `json:"risk"`
	Reasons          []string  `json:"reasons,omitempty"`
	RequiresApproval bool      `json:"requires_approval"`
}

// ApprovalFunc is invoked synchronously when a high-risk command needs
// operator sign-off. Returning false denies the command.
type ApprovalFunc func(command string, v Validation) bool

// Config assembles everything the guardian needs: the engagement scope,
// merged blocklists and patterns, and the rate window size.
type Config struct {
	Scope              *models.Scope
	BlockedCommands    []string
	SuspiciousPatterns []string
	HighRiskKeywords   []string
	MediumRiskKeywords []string
	LowRiskKeywords    []string
	WindowLimit        int
	ApprovalPhases     []string
}

// ConfigFrom merges the builtin rule sets with the operator's guardian
// section and the engagement scope. Scope-level blocked commands stack on
// top of both.
func ConfigFrom(gc *config.GuardianConfig, scope *models.Scope) Config {
	builtin := config.GetBuiltinConfig()

	cfg := Config{
		Scope:              scope,
		BlockedCommands:    append([]string{}, builtin.BlockedCommands...),
		SuspiciousPatterns: append([]string{}, builtin.SuspiciousPatterns...),
		HighRiskKeywords:   builtin.HighRiskKeywords,
		MediumRiskKeywords: builtin.MediumRiskKeywords,
		LowRiskKeywords:    builtin.LowRiskKeywords,
		WindowLimit:        10,
	}
	if gc != nil {
		cfg.BlockedCommands = append(cfg.BlockedCommands, gc.BlockedCommands...)
		cfg.SuspiciousPatterns = append(cfg.SuspiciousPatterns, gc.SuspiciousPatterns...)
		cfg.WindowLimit = gc.WindowLimit()
		cfg.ApprovalPhases = gc.ApprovalPhases
	}
	if scope != nil {
		cfg.BlockedCommands = append(cfg.BlockedCommands, scope.BlockedCommands...)
		if scope.RateLimit > 0 {
			cfg.WindowLimit = scope.RateLimit
		}
		if len(scope.ApprovalPhases) > 0 {
			cfg.ApprovalPhases = scope.ApprovalPhases
		}
	}
	return cfg
}

// Guardian evaluates commands against the engagement's safety policy.
// Safe for concurrent use by multiple agent goroutines.
type Guardian struct {
	cfg        Config
	suspicious []*regexp.Regexp
	includes   []*net.IPNet
	excludes   []*net.IPNet

	mu       sync.Mutex
	window   []time.Time // timestamps of recently allowed commands
	audit    []AuditRecord
	approval ApprovalFunc

	now    func() time.Time
	logger *slog.Logger
}

// New compiles the configured patterns and parses the scope CIDRs.
// Invalid user-supplied regexes or CIDRs are skipped with a warning;
// config validation should have rejected them earlier.
func New(cfg Config) *Guardian {
	g := &Guardian{
		cfg:    cfg,
		now:    time.Now,
		logger: slog.With("component", "guardian"),
	}
	if g.cfg.WindowLimit <= 0 {
		g.cfg.WindowLimit = 10
	}

	for _, src := range cfg.SuspiciousPatterns {
		re, err := regexp.Compile("(?i)" + src)
		if err != nil {
			g.logger.Warn("Skipping invalid suspicious pattern", "pattern", src, "error", err)
			continue
		}
		g.suspicious = append(g.suspicious, re)
	}

	if cfg.Scope != nil {
		g.includes = parseCIDRs(cfg.Scope.IncludeCIDRs, g.logger)
		g.excludes = parseCIDRs(cfg.Scope.ExcludeCIDRs, g.logger)
	}
	return g
}

func parseCIDRs(specs []string, logger *slog.Logger) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(specs))
	for _, spec := range specs {
		s := strings.TrimSpace(spec)
		if s == "" {
			continue
		}
		if !strings.Contains(s, "/") {
			s += "/32"
		}
		_, ipnet, err := net.ParseCIDR(s)
		if err != nil {
			logger.Warn("Skipping invalid scope CIDR", "cidr", spec, "error", err)
			continue
		}
		nets = append(nets, ipnet)
	}
	return nets
}

// SetApprovalFunc registers the operator approval callback. High-risk
// commands are held until it returns; nil means auto-approve.
func (g *Guardian) SetApprovalFunc(fn ApprovalFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.approval = fn
}

// Evaluate runs the full check pipeline for one command. It never panics
// outward: any internal failure converts to a blocked verdict.
func (g *Guardian) Evaluate(command string, kind SessionKind) (v Validation) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("Guardian evaluation panicked, failing closed",
				"command", truncateForLog(command), "panic", r)
			v = Validation{
				Allowed: false,
				Risk:    RiskBlocked,
				Reasons: []string{fmt.Sprintf("internal evaluation error: %v", r)},
			}
			g.record(command, kind, v)
		}
	}()

	v = g.evaluate(command, kind)
	g.record(command, kind, v)
	return v
}

func (g *Guardian) evaluate(command string, kind SessionKind) Validation {
	v := Validation{Risk: RiskSafe}
	lower := strings.ToLower(command)

	// 1. Literal blocklist: destructive commands are never allowed.
	for _, blocked := range g.cfg.BlockedCommands {
		if blocked == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(blocked)) {
			v.raise(RiskBlocked, fmt.Sprintf("blocked command pattern: %q", blocked))
			break
		}
	}

	// 2. Suspicious regexes: raw device writes, pipe-to-shell and friends.
	if rank[v.Risk] < rank[RiskBlocked] {
		for _, re := range g.suspicious {
			if re.MatchString(command) {
				v.raise(RiskCritical, fmt.Sprintf("suspicious pattern: %s", re.String()))
				break
			}
		}
	}

	// 3. Scope: every target the command references must be authorized.
	if reasons := g.checkScope(command, kind); len(reasons) > 0 {
		v.raise(RiskHigh, reasons...)
	}

	// 4. Sliding rate window over previously allowed commands.
	if g.windowExceeded() {
		v.raise(RiskMedium, fmt.Sprintf("rate window exceeded: more than %d commands in 60s", g.cfg.WindowLimit))
	}

	// 5. Keyword classification, only when nothing above fired.
	if len(v.Reasons) == 0 {
		v.raise(g.classifyKeywords(lower))
	}

	v.Allowed = v.Risk != RiskBlocked && v.Risk != RiskCritical
	v.RequiresApproval = v.Risk == RiskHigh

	if v.Allowed && v.RequiresApproval {
		g.mu.Lock()
		fn := g.approval
		g.mu.Unlock()
		if fn != nil && !fn(command, v) {
			v.Allowed = false
			v.Reasons = append(v.Reasons, "operator denied")
		}
	}

	if v.Allowed {
		g.recordAllowed()
	}
	return v
}

// raise lifts the risk level if the new one outranks the current, and
// appends the non-empty reasons.
func (v *Validation) raise(risk RiskLevel, reasons ...string) {
	if rank[risk] > rank[v.Risk] {
		v.Risk = risk
	}
	for _, r := range reasons {
		if r != "" {
			v.Reasons = append(v.Reasons, r)
		}
	}
}

// ipv4Pattern matches dotted-quad addresses with an optional CIDR suffix.
var ipv4Pattern = regexp.MustCompile(`\b(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})(/\d{1,2})?\b`)

// hostnamePattern matches dotted hostnames ending in an alphabetic label,
// which keeps bare IPv4 addresses out of the domain checks.
var hostnamePattern = regexp.MustCompile(`\b(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}\b`)

// checkScope extracts IPv4 targets and configured domains from the command
// and verifies them against the engagement scope. Commands with no network
// targets pass untouched.
func (g *Guardian) checkScope(command string, _ SessionKind) []string {
	scope := g.cfg.Scope
	if scope == nil {
		return nil
	}

	var reasons []string
	for _, m := range ipv4Pattern.FindAllStringSubmatch(command, -1) {
		if m[2] != "" {
			if rs, ok := g.checkPrefix(m[1] + m[2]); ok {
				reasons = append(reasons, rs...)
				continue
			}
		}
		ip := net.ParseIP(m[1])
		if ip == nil {
			continue
		}
		if contains(g.excludes, ip) {
			reasons = append(reasons, fmt.Sprintf("target %s is explicitly excluded from scope", m[1]))
			continue
		}
		if len(g.includes) > 0 && !contains(g.includes, ip) {
			reasons = append(reasons, fmt.Sprintf("target %s is outside the authorized scope", m[1]))
		}
	}

	lower := strings.ToLower(command)
	for _, domain := range scope.ExcludeDomains {
		if domain != "" && strings.Contains(lower, strings.ToLower(domain)) {
			reasons = append(reasons, fmt.Sprintf("domain %s is explicitly excluded from scope", domain))
		}
	}
	if len(scope.IncludeDomains) > 0 {
		for _, host := range hostnamePattern.FindAllString(lower, -1) {
			if !underAnyDomain(host, scope.IncludeDomains) {
				reasons = append(reasons, fmt.Sprintf("domain %s is outside the authorized scope", host))
			}
		}
	}
	return reasons
}

// checkPrefix validates a CIDR-suffixed target. The whole prefix must sit
// inside one include net; touching an exclude net at all is a violation.
// A /8 sweep is out of scope even when its base address lands in a /24
// include. Returns ok=false on an unparseable suffix so the caller falls
// back to the bare-address check.
func (g *Guardian) checkPrefix(target string) ([]string, bool) {
	_, prefix, err := net.ParseCIDR(target)
	if err != nil {
		return nil, false
	}
	for _, ex := range g.excludes {
		if ex.Contains(prefix.IP) || prefix.Contains(ex.IP) {
			return []string{fmt.Sprintf("target %s overlaps the excluded scope", target)}, true
		}
	}
	if len(g.includes) == 0 {
		return nil, true
	}
	ones, _ := prefix.Mask.Size()
	for _, in := range g.includes {
		inOnes, _ := in.Mask.Size()
		if in.Contains(prefix.IP) && inOnes <= ones {
			return nil, true
		}
	}
	return []string{fmt.Sprintf("target %s is broader than the authorized scope", target)}, true
}

func underAnyDomain(host string, domains []string) bool {
	for _, d := range domains {
		d = strings.ToLower(d)
		if d != "" && (host == d || strings.HasSuffix(host, "."+d)) {
			return true
		}
	}
	return false
}

func contains(nets []*net.IPNet, ip net.IP) bool {
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// windowExceeded reports whether the sliding 60s window is already full.
// Only commands that were ultimately allowed count against the window.
func (g *Guardian) windowExceeded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	cutoff := g.now().Add(-60 * time.Second)
	kept := g.window[:0]
	for _, ts := range g.window {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	g.window = kept
	return len(g.window) >= g.cfg.WindowLimit
}

func (g *Guardian) recordAllowed() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.window = append(g.window, g.now())
}

// classifyKeywords maps tool names to baseline risk: exploit frameworks
// are high, active scanners medium, passive probes low.
func (g *Guardian) classifyKeywords(lower string) (RiskLevel, string) {
	for _, kw := range g.cfg.HighRiskKeywords {
		if strings.Contains(lower, kw) {
			return RiskHigh, fmt.Sprintf("high-risk tooling: %q", strings.TrimSpace(kw))
		}
	}
	for _, kw := range g.cfg.MediumRiskKeywords {
		if strings.Contains(lower, kw) {
			return RiskMedium, fmt.Sprintf("active scanning tooling: %q", strings.TrimSpace(kw))
		}
	}
	for _, kw := range g.cfg.LowRiskKeywords {
		if strings.Contains(lower, kw) {
			return RiskLow, fmt.Sprintf("passive reconnaissance tooling: %q", strings.TrimSpace(kw))
		}
	}
	return RiskSafe, ""
}

func truncateForLog(s string) string {
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
