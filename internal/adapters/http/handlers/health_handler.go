package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// Probe outcomes as they appear in HealthResponse.
const (
	probeOK       = "ok"
	probeReady    = "ready"
	probeNotReady = "not_ready"
)

// HealthHandler serves the orchestrator probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness answers GET /health/live without touching any dependency.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: probeOK})
}

// Readiness answers GET /health/ready with one entry per registered check.
// Any failing check makes the whole probe 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	checks := make(map[string]string)
	code := http.StatusOK
	for name, err := range h.registry.CheckAll(ctx) {
		if err != nil {
			checks[name] = err.Error()
			code = http.StatusServiceUnavailable
			logger.WarnContext(ctx, "readiness check failed", slog.String("check", name), slog.Any("error", err))
			continue
		}
		checks[name] = probeOK
	}

	status := probeReady
	if code != http.StatusOK {
		status = probeNotReady
	}
	writeJSON(w, code, dto.HealthResponse{Status: status, Checks: checks})
}
