package llm

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
)

const (
	defaultMaxTokens  = 4096
	defaultRetryCount = 3

	// Completion budget never drops below this during adaptation.
	tokenFloor = 256

	// Reserved when deriving max_tokens from a reported input size.
	tokenSafetyMargin = 512

	// Bounded max_tokens adaptations per provider per request.
	maxTokenRetries = 2

	// Ceiling for rate-limit sleeps, in seconds.
	maxRateLimitDelay = 300
)

// RouterStats is the router's observable state snapshot.
type RouterStats struct {
	ActiveProvider string          `json:"active_provider"`
	RequestCount   int64           `json:"request_count"`
	TokenCount     int64           `json:"token_count"`
	ProviderHealth map[string]bool `json:"provider_health"`
}

// Router walks providers in priority order, exhausting each provider's
// retry budget before failing over to the next. It owns per-provider rate
// limiting, conversation compaction and repair, and the prompt-based tool
// fallback. Safe for concurrent use.
type Router struct {
	providers []*provider
	logger    *slog.Logger

	mu           sync.Mutex
	active       string
	requestCount int64
	tokenCount   int64
	health       map[string]bool
	promptMode   map[string]bool // providers that rejected native tools

	// Injection points for deterministic tests.
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func(max float64) float64
}

// NewRouter builds a router over the configured providers, ascending by
// priority with name as the tiebreaker.
func NewRouter(configs []*config.LLMProviderConfig) *Router {
	sorted := make([]*config.LLMProviderConfig, len(configs))
	copy(sorted, configs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].Name < sorted[j].Name
	})

	r := &Router{
		logger:     slog.With("component", "llm_router"),
		health:     make(map[string]bool),
		promptMode: make(map[string]bool),
		sleep:      sleepCtx,
		jitter:     func(max float64) float64 { return rand.Float64() * max },
	}
	for _, cfg := range sorted {
		r.providers = append(r.providers, newProvider(cfg))
		if !cfg.SupportsNativeTools() {
			r.promptMode[cfg.Name] = true
		}
	}
	return r
}

// Chat sends the request to the first provider that can answer it.
// Providers are tried in priority order; a provider is abandoned only
// after its retry budget is spent or it fails in a non-retryable way.
// When every provider fails the returned error is an *ExhaustedError.
func (r *Router) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if len(r.providers) == 0 {
		return nil, &ExhaustedError{}
	}

	lastErrors := make(map[string]error, len(r.providers))
	for _, p := range r.providers {
		resp, err := r.chatProvider(ctx, p, req)
		if err == nil {
			r.recordSuccess(p.cfg.Name, resp)
			return resp, nil
		}
		lastErrors[p.cfg.Name] = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Warn("Provider exhausted, failing over",
			"provider", p.cfg.Name, "error", err)
	}

	return nil, &ExhaustedError{LastErrors: lastErrors}
}

// chatProvider runs the full retry ladder for one provider.
func (r *Router) chatProvider(ctx context.Context, p *provider, req *ChatRequest) (*ChatResponse, error) {
	promptMode := r.inPromptMode(p.cfg.Name)
	maxTokens := p.cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	retries := p.cfg.RetryCount
	if retries <= 0 {
		retries = defaultRetryCount
	}

	var lastErr error
	attempt := 0      // transient failures so far (429 / 5xx / timeout)
	tokenRetries := 0 // max_tokens adaptations so far

	for {
		if err := p.bucket.take(ctx); err != nil {
			return nil, err
		}

		messages := FixMessageList(CompactMessages(req.Messages, p.cfg.ContextLimit))
		resp, err := p.chatOnce(ctx, messages, req.Tools, maxTokens, promptMode)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, lastErr
		}

		var pe *providerError
		if errors.As(err, &pe) {
			body := strings.ToLower(pe.Body)
			switch {
			case pe.StatusCode == http.StatusBadRequest && !promptMode && len(req.Tools) > 0 &&
				(strings.Contains(body, "tool") || strings.Contains(body, "auto")):
				r.logger.Warn("Provider rejected native tool calling, switching to prompt mode",
					"provider", p.cfg.Name)
				promptMode = true
				r.rememberPromptMode(p.cfg.Name)
				continue

			case pe.StatusCode == http.StatusNotFound &&
				(strings.Contains(body, "tool use") || strings.Contains(body, "endpoint")):
				if promptMode || len(req.Tools) == 0 {
					return nil, lastErr
				}
				promptMode = true
				r.rememberPromptMode(p.cfg.Name)
				continue

			case pe.StatusCode == http.StatusBadRequest && strings.Contains(body, "max_tokens"):
				if tokenRetries >= maxTokenRetries {
					return nil, lastErr
				}
				tokenRetries++
				if inputTokens, ok := parseInputTokens(pe.Body); ok && p.cfg.ContextLimit > 0 {
					maxTokens = maxInt(tokenFloor, p.cfg.ContextLimit-inputTokens-tokenSafetyMargin)
				} else {
					maxTokens = maxInt(tokenFloor, maxTokens/2)
				}
				r.logger.Info("Adapting completion budget",
					"provider", p.cfg.Name, "max_tokens", maxTokens)
				continue

			case pe.StatusCode == http.StatusTooManyRequests || mentionsRateLimit(body):
				attempt++
				if attempt > retries {
					return nil, lastErr
				}
				delay := parseRetryDelay(pe.Body)
				wait := math.Min(maxRateLimitDelay, delay*float64(attempt)) + r.jitter(10)
				r.logger.Info("Provider rate limited, backing off",
					"provider", p.cfg.Name, "attempt", attempt, "wait_seconds", wait)
				if err := r.sleep(ctx, secondsDuration(wait)); err != nil {
					return nil, lastErr
				}
				continue

			case pe.StatusCode >= 500:
				attempt++
				if attempt > retries {
					return nil, lastErr
				}
				wait := math.Pow(2, float64(attempt)) + r.jitter(1)
				if err := r.sleep(ctx, secondsDuration(wait)); err != nil {
					return nil, lastErr
				}
				continue

			default:
				return nil, lastErr
			}
		}

		// Transport-level timeout: retry like a 5xx. Other transport
		// failures (refused connections, DNS) fail over immediately.
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			attempt++
			if attempt > retries {
				return nil, lastErr
			}
			wait := math.Pow(2, float64(attempt)) + r.jitter(1)
			if err := r.sleep(ctx, secondsDuration(wait)); err != nil {
				return nil, lastErr
			}
			continue
		}

		return nil, lastErr
	}
}

// ActiveProvider returns the name of the provider that served the most
// recent successful request.
func (r *Router) ActiveProvider() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Stats returns a snapshot of the router's counters and provider health.
func (r *Router) Stats() RouterStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	health := make(map[string]bool, len(r.health))
	for name, ok := range r.health {
		health[name] = ok
	}
	return RouterStats{
		ActiveProvider: r.active,
		RequestCount:   r.requestCount,
		TokenCount:     r.tokenCount,
		ProviderHealth: health,
	}
}

func (r *Router) recordSuccess(name string, resp *ChatResponse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = name
	r.requestCount++
	r.tokenCount += int64(resp.Usage.TotalTokens)
}

func (r *Router) inPromptMode(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.promptMode[name]
}

func (r *Router) rememberPromptMode(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.promptMode[name] = true
}

// ────────────────────────────────────────────────────────────
// Error-body parsing helpers
// ────────────────────────────────────────────────────────────

var (
	retryAfterPattern   = regexp.MustCompile(`(?i)retry-after:\s*(\d+(?:\.\d+)?)`)
	waitSecondsPattern  = regexp.MustCompile(`(?i)wait\s+(\d+(?:\.\d+)?)\s*seconds?`)
	bareSecondsPattern  = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*s\b`)
	millisecondsPattern = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*milliseconds?\b`)
	inputTokensPattern  = regexp.MustCompile(`(?i)(\d+)\s+input\s+tokens`)
)

// parseRetryDelay extracts a retry delay in seconds from a rate-limit
// response: Retry-After header first, then textual hints, defaulting to 60.
func parseRetryDelay(body string) float64 {
	for _, pattern := range []*regexp.Regexp{retryAfterPattern, waitSecondsPattern, bareSecondsPattern} {
		if m := pattern.FindStringSubmatch(body); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v
			}
		}
	}
	if m := millisecondsPattern.FindStringSubmatch(body); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v / 1000
		}
	}
	return 60
}

func parseInputTokens(body string) (int, bool) {
	m := inputTokensPattern.FindStringSubmatch(body)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func mentionsRateLimit(lowerBody string) bool {
	return strings.Contains(lowerBody, "rate limit") ||
		strings.Contains(lowerBody, "rate_limit") ||
		strings.Contains(lowerBody, "too many requests") ||
		strings.Contains(lowerBody, "quota exceeded")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func secondsDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
