package controllers

import (
	"context"
	"net/http"
	"time"

	"estatehub/app/repositories"

	"github.com/rs/zerolog"
)

// HealthCheckTimeout bounds each dependency ping.
const HealthCheckTimeout = 5 * time.Second

// HealthController reports whether the service's dependencies respond
type HealthController struct {
	checks map[string]repositories.Pinger
	env    string
}

// NewHealthController checks each named dependency on every request
func NewHealthController(env string, checks map[string]repositories.Pinger) *HealthController {
	return &HealthController{checks: checks, env: env}
}

// Check answers 200 when every dependency responds and 503 otherwise
func (hc *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context()).With().Str("operation", "health_check").Logger()

	healthy := true
	results := make(map[string]interface{}, len(hc.checks))
	for name, pinger := range hc.checks {
		ctx, cancel := context.WithTimeout(r.Context(), HealthCheckTimeout)
		start := time.Now()
		err := pinger.Ping(ctx)
		cancel()

		result := map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(start).String(),
		}
		if err != nil {
			healthy = false
			result["status"] = "unhealthy"
			result["error"] = err.Error()
			log.Error().Err(err).Str("check", name).Msg("health check failed")
		}
		results[name] = result
	}

	status, label := http.StatusOK, "healthy"
	if !healthy {
		status, label = http.StatusServiceUnavailable, "unhealthy"
	}
	sendJSON(w, status, map[string]interface{}{
		"status":      label,
		"timestamp":   time.Now().UTC(),
		"environment": hc.env,
		"checks":      results,
	})
}
