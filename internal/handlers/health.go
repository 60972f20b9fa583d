package handlers

import (
	"net/http"
	"time"

	"github.com/paradise-realestate/relay/internal"
	"github.com/paradise-realestate/relay/pkg/health"
)

// HealthPath is the public status endpoint.
const HealthPath = "/api/health"

// HealthHandler serves HealthPath. It reports the process is up and
// checks no dependencies; readiness probes live under /health/ready.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a HealthHandler. now defaults to time.Now.
func NewHealthHandler(now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{now: now}
}

// Routes implements internal.Handler.
func (h *HealthHandler) Routes(r internal.Router) {
	r.GET(HealthPath, h.status)
}

func (h *HealthHandler) status(c internal.Context) error {
	return c.JSON(http.StatusOK, health.NewReport(h.now()))
}
