package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"salespulse/internal/dataprocessing"
	apierrors "salespulse/internal/errors"
	"salespulse/internal/infrastructure"
	"salespulse/internal/middleware"
	"salespulse/internal/services"
	"salespulse/pkg/contracts/domain"
)

// DatasetHandler handles dataset upload requests with RFC 7807 compliance
type DatasetHandler struct {
	service        *services.ReportService
	decoder        *dataprocessing.Decoder
	metrics        *infrastructure.Metrics
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
	maxUploadBytes int64
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(
	service *services.ReportService,
	decoder *dataprocessing.Decoder,
	metrics *infrastructure.Metrics,
	logger *slog.Logger,
	errorHandler *apierrors.ErrorHandler,
	maxUploadBytes int64,
) *DatasetHandler {
	return &DatasetHandler{
		service:        service,
		decoder:        decoder,
		metrics:        metrics,
		logger:         logger.With(slog.String("component", "dataset_handler")),
		errorHandler:   errorHandler,
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes returns the dataset routes
func (h *DatasetHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/{kind}", func(r chi.Router) {
		r.Use(h.KindCtx)
		r.Post("/", h.Upload)
	})
	r.Get("/", h.List)

	return r
}

// KindCtx middleware validates the dataset kind parameter
func (h *DatasetHandler) KindCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := domain.DatasetKind(chi.URLParam(r, "kind"))
		if !kind.IsValid() {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("kind",
				fmt.Sprintf("Unknown dataset kind '%s'. Must be one of: sales, receiving, timesheets", kind)))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Upload handles POST /api/datasets/{kind}. The body is a multipart form
// with a single "file" field holding a spreadsheet or CSV.
func (h *DatasetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())
	kind := domain.DatasetKind(chi.URLParam(r, "kind"))

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.WarnContext(r.Context(), "upload rejected",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
			slog.String("kind", string(kind)),
		)
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest,
			"INVALID_UPLOAD",
			"Request must be a multipart form with a 'file' field",
			map[string]interface{}{
				"error": err.Error(),
			},
		))
		return
	}
	defer file.Close()

	records, err := h.decoder.Decode(file, header.Filename)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to decode dataset",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
			slog.String("kind", string(kind)),
			slog.String("filename", header.Filename),
		)
		h.errorHandler.HandleError(w, r, apierrors.ErrDatasetDecode(err))
		return
	}

	if err := h.service.SetDataset(r.Context(), kind, records); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	h.metrics.RecordDatasetUpload(string(kind), len(records))

	h.logger.InfoContext(r.Context(), "dataset uploaded",
		slog.String("request_id", reqID),
		slog.String("kind", string(kind)),
		slog.String("filename", header.Filename),
		slog.Int("records", len(records)),
	)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"kind":     kind,
			"filename": header.Filename,
			"records":  len(records),
		},
	})
}

// List handles GET /api/datasets and reports the loaded record counts
func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	sizes := h.service.DatasetSizes()

	data := make(map[string]int, len(sizes))
	for kind, count := range sizes {
		data[string(kind)] = count
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   data,
		"count":  len(data),
	})
}
