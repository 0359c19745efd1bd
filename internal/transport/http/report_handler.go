package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "salespulse/internal/errors"
	"salespulse/internal/exporter"
	"salespulse/internal/infrastructure"
	"salespulse/internal/middleware"
	"salespulse/internal/report"
	"salespulse/internal/services"
)

// ReportHandler handles report computation and retrieval with RFC 7807
// compliance
type ReportHandler struct {
	service      *services.ReportService
	csv          *exporter.CSVWriter
	metrics      *infrastructure.Metrics
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	service *services.ReportService,
	csv *exporter.CSVWriter,
	metrics *infrastructure.Metrics,
	logger *slog.Logger,
	errorHandler *apierrors.ErrorHandler,
) *ReportHandler {
	return &ReportHandler{
		service:      service,
		csv:          csv,
		metrics:      metrics,
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the report routes
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/compute", h.Compute)
	r.Get("/", h.Get)
	r.Get("/filters", h.Filters)
	r.Get("/export", h.Export)

	return r
}

// Compute handles POST /api/report/compute. The optional "filter" query
// parameter selects the leaderboard filter; unknown names fall back to
// the unfiltered leaderboard.
func (h *ReportHandler) Compute(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())
	filter := report.ParseFilter(r.URL.Query().Get("filter"))

	h.logger.InfoContext(r.Context(), "computing report",
		slog.String("request_id", reqID),
		slog.String("filter", filter.String()),
	)

	start := time.Now()
	result, err := h.service.Compute(r.Context(), filter)
	h.metrics.RecordComputation(time.Since(start).Seconds(), err)

	if err != nil {
		if errors.Is(err, report.ErrNoSales) {
			h.errorHandler.HandleError(w, r, apierrors.ErrSalesMissing(err.Error()))
			return
		}

		h.logger.ErrorContext(r.Context(), "computation failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"filter": filter.String(),
		"data":   result,
	})
}

// Get handles GET /api/report and returns the last computed snapshot
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	result := h.service.Result()
	if result == nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrResultNotFound)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   result,
	})
}

// Filters handles GET /api/report/filters and lists the known
// leaderboard filter names
func (h *ReportHandler) Filters(w http.ResponseWriter, r *http.Request) {
	names := report.FilterNames()
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   names,
		"count":  len(names),
	})
}

// Export handles GET /api/report/export and streams the last computed
// snapshot as a CSV download
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	result := h.service.Result()
	if result == nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrResultNotFound)
		return
	}

	filename := fmt.Sprintf("sales_report_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.csv.WriteReport(w, result); err != nil {
		// Headers are already sent; log and abandon the response.
		h.logger.ErrorContext(r.Context(), "failed to stream report export",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
	}
}
