package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/go-service-errors/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-service-errors/internal/ports"
)

// Readiness states. A check that wraps ports.ErrDegraded is reported as
// degraded without taking the service out of rotation.
const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves the probe endpoints. Probe results are operational
// reports and are never rendered as problems.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Any hard failure answers 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := summarize(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if resp.Status == statusNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}

func summarize(results map[string]error) dto.HealthResponse {
	resp := dto.HealthResponse{Status: statusReady, Checks: make(map[string]string, len(results))}

	for name, err := range results {
		switch {
		case err == nil:
			resp.Checks[name] = statusOK
		case errors.Is(err, ports.ErrDegraded):
			resp.Checks[name] = err.Error()
			if resp.Status == statusReady {
				resp.Status = statusDegraded
			}
		default:
			resp.Checks[name] = err.Error()
			resp.Status = statusNotReady
		}
	}
	return resp
}
