package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"salespulse/internal/services"
)

// HealthHandler handles health-related HTTP requests
type HealthHandler struct {
	service *services.ReportService
	logger  *slog.Logger
	version string
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service *services.ReportService, logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "health")),
		version: version,
		started: time.Now(),
	}
}

// HealthCheck handles GET /api/health
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	sizes := h.service.DatasetSizes()
	datasets := make(map[string]int, len(sizes))
	for kind, count := range sizes {
		datasets[string(kind)] = count
	}

	render.JSON(w, r, map[string]interface{}{
		"status":   "healthy",
		"version":  h.version,
		"uptime":   time.Since(h.started).String(),
		"datasets": datasets,
	})
}

// LivenessCheck handles GET /api/health/live
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "alive",
	})
}
