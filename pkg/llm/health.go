package llm

import (
	"context"
	"net/http"
	"strings"
	"time"
)

const healthCheckTimeout = 5 * time.Second

// CheckProviders probes every provider's GET /models endpoint and returns
// a reachability map. Results are cached on the router for Stats().
func (r *Router) CheckProviders(ctx context.Context) map[string]bool {
	results := make(map[string]bool, len(r.providers))
	for _, p := range r.providers {
		results[p.cfg.Name] = r.checkProvider(ctx, p)
	}

	r.mu.Lock()
	for name, ok := range results {
		r.health[name] = ok
	}
	r.mu.Unlock()

	return results
}

func (r *Router) checkProvider(ctx context.Context, p *provider) bool {
	probeCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	url := strings.TrimRight(p.cfg.Endpoint, "/") + "/models"
	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	if key := p.apiKey(); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
