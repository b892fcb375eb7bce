package api

import (
	"net/http"
	"sync/atomic"

	"github.com/celestial/celestial-chronicles/internal/api/respond"
)

// HealthHandler reports aggregate service health. The service keeps serving
// cached and curated data while degraded, so an unhealthy report is
// informational rather than a readiness gate.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

var (
	serviceHealth    atomic.Value // func() bool
	componentsHealth atomic.Value // func() map[string]bool
)

// BindServiceHealth wires the aggregate health probe into the handler.
func BindServiceHealth(fn func() bool) { serviceHealth.Store(fn) }

// BindComponentHealth wires the per-component state report into the handler.
func BindComponentHealth(fn func() map[string]bool) { componentsHealth.Store(fn) }

type healthResponse struct {
	Status     string          `json:"status"`
	Components map[string]bool `json:"components,omitempty"`
}

// CheckHealth serves GET /api/health.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	out := healthResponse{Status: "healthy"}
	if fn, ok := serviceHealth.Load().(func() bool); ok && !fn() {
		out.Status = "degraded"
	}
	if fn, ok := componentsHealth.Load().(func() map[string]bool); ok {
		out.Components = fn()
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
