package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/queue"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                    `json:"status"`
	Version    string                    `json:"version"`
	Database   *database.HealthStatus    `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth         `json:"worker_pool,omitempty"`
	Providers  map[string]bool           `json:"providers,omitempty"`
	Warnings   []*services.SystemWarning `json:"warnings,omitempty"`
}

// healthHandler handles GET /health. Unauthenticated; only this process's
// own components gate the status code. Provider reachability is reported
// but never flips the response to 503 — an LLM outage must not make the
// orchestrator restart this pod.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
	}

	if s.dbClient != nil {
		dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
		resp.Database = dbHealth
		if err != nil {
			resp.Status = healthStatusUnhealthy
		}
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health()
		resp.WorkerPool = poolHealth
		if poolHealth != nil && !poolHealth.IsHealthy && resp.Status == healthStatusHealthy {
			resp.Status = healthStatusDegraded
		}
	}

	if s.router != nil {
		resp.Providers = s.router.CheckProviders(reqCtx)
	}

	if s.warningsService != nil {
		resp.Warnings = s.warningsService.GetWarnings()
		if len(resp.Warnings) > 0 && resp.Status == healthStatusHealthy {
			resp.Status = healthStatusDegraded
		}
	}

	httpStatus := http.StatusOK
	if resp.Status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, resp)
}

// systemWarningsHandler handles GET /api/v1/system/warnings.
func (s *Server) systemWarningsHandler(c *gin.Context) {
	warnings := []*services.SystemWarning{}
	if s.warningsService != nil {
		warnings = s.warningsService.GetWarnings()
	}
	c.JSON(http.StatusOK, gin.H{"warnings": warnings})
}
