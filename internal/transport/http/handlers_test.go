package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespulse/internal/dataprocessing"
	apierrors "salespulse/internal/errors"
	"salespulse/internal/exporter"
	"salespulse/internal/infrastructure"
	"salespulse/internal/services"
	"salespulse/pkg/contracts/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testServer struct {
	router  chi.Router
	service *services.ReportService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := testLogger()
	service := services.NewReportService(logger)
	decoder := dataprocessing.NewDecoder(logger)
	metrics := infrastructure.NewMetrics()
	errorHandler := apierrors.NewErrorHandler(logger, false)
	csv := exporter.NewCSVWriter(t.TempDir(), logger)

	datasetHandler := NewDatasetHandler(service, decoder, metrics, logger, errorHandler, 10<<20)
	reportHandler := NewReportHandler(service, csv, metrics, logger, errorHandler)
	healthHandler := NewHealthHandler(service, logger, "test")

	r := chi.NewRouter()
	r.Mount("/api/datasets", datasetHandler.Routes())
	r.Mount("/api/report", reportHandler.Routes())
	r.Get("/api/health", healthHandler.HealthCheck)

	return &testServer{router: r, service: service}
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func (ts *testServer) uploadCSV(t *testing.T, kind, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/api/datasets/"+kind, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

const salesCSV = `helped_by,Product Name,Total Inventory Sold,Net Sales,Category,Vendor Name,Package ID
Alice,FOY Gummies 10pk,10,500,Gummies,MFNY,PKG-1
Bob,Ruby Drops,5,250,Tincture,Ruby Farms,PKG-2
`

const receiveCSV = `Package Id,Quantity
PKG-1,20
PKG-2,10
`

const timesCSV = `rep,Hours
Alice,5
Bob,2.5
`

func TestDatasetUpload(t *testing.T) {
	t.Run("accepts CSV upload", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.uploadCSV(t, "sales", "sales_transactions.csv", salesCSV)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp struct {
			Status string `json:"status"`
			Data   struct {
				Kind    string `json:"kind"`
				Records int    `json:"records"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "sales", resp.Data.Kind)
		assert.Equal(t, 2, resp.Data.Records)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.uploadCSV(t, "inventory", "inventory.csv", salesCSV)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "inventory")
	})

	t.Run("rejects missing file field", func(t *testing.T) {
		ts := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/datasets/sales", strings.NewReader("not a form"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects undecodable spreadsheet", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.uploadCSV(t, "sales", "sales.xlsx", "this is not a spreadsheet")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "decode")
	})

	t.Run("lists dataset sizes", func(t *testing.T) {
		ts := newTestServer(t)
		ts.uploadCSV(t, "sales", "sales.csv", salesCSV)
		ts.uploadCSV(t, "timesheets", "times.csv", timesCSV)

		req := httptest.NewRequest(http.MethodGet, "/api/datasets", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Data map[string]int `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, map[string]int{"sales": 2, "timesheets": 2}, resp.Data)
	})
}

func TestReportCompute(t *testing.T) {
	t.Run("refuses compute without sales", func(t *testing.T) {
		ts := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/report/compute", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Upload sales_transactions.xlsx first.")
		assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	})

	t.Run("computes full report", func(t *testing.T) {
		ts := newTestServer(t)
		ts.uploadCSV(t, "sales", "sales.csv", salesCSV)
		ts.uploadCSV(t, "receiving", "receive.csv", receiveCSV)
		ts.uploadCSV(t, "timesheets", "times.csv", timesCSV)

		req := httptest.NewRequest(http.MethodPost, "/api/report/compute", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Status string                   `json:"status"`
			Filter string                   `json:"filter"`
			Data   domain.ComputationResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ALL", resp.Filter)
		assert.Equal(t, float64(750), resp.Data.TotalRevenue)
		require.Len(t, resp.Data.RepMetrics, 2)
		assert.Equal(t, "Alice", resp.Data.RepMetrics[0].Representative)
		assert.Equal(t, float64(5), resp.Data.RepMetrics[0].HoursWorked)
	})

	t.Run("applies filter from query", func(t *testing.T) {
		ts := newTestServer(t)
		ts.uploadCSV(t, "sales", "sales.csv", salesCSV)

		req := httptest.NewRequest(http.MethodPost, "/api/report/compute?filter=Brand%3A+MFNY", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Filter string                   `json:"filter"`
			Data   domain.ComputationResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Brand: MFNY", resp.Filter)
		require.Len(t, resp.Data.Leaderboard, 1)
		assert.Equal(t, "Alice", resp.Data.Leaderboard[0].Representative)
	})

	t.Run("unknown filter falls back to ALL", func(t *testing.T) {
		ts := newTestServer(t)
		ts.uploadCSV(t, "sales", "sales.csv", salesCSV)

		req := httptest.NewRequest(http.MethodPost, "/api/report/compute?filter=bogus", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Filter string `json:"filter"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ALL", resp.Filter)
	})
}

func TestReportGet(t *testing.T) {
	t.Run("not found before compute", func(t *testing.T) {
		ts := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns stored snapshot", func(t *testing.T) {
		ts := newTestServer(t)
		ts.uploadCSV(t, "sales", "sales.csv", salesCSV)

		compute := httptest.NewRequest(http.MethodPost, "/api/report/compute", nil)
		ts.router.ServeHTTP(httptest.NewRecorder(), compute)

		req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Alice")
	})

	t.Run("upload invalidates snapshot", func(t *testing.T) {
		ts := newTestServer(t)
		ts.uploadCSV(t, "sales", "sales.csv", salesCSV)

		compute := httptest.NewRequest(http.MethodPost, "/api/report/compute", nil)
		ts.router.ServeHTTP(httptest.NewRecorder(), compute)

		ts.uploadCSV(t, "sales", "sales.csv", salesCSV)

		req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReportFilters(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report/filters", nil)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"ALL", "FOY Gummies", "Brand: Ruby", "Brand: MFNY", "Category: Gummies"}, resp.Data)
}

func TestReportExport(t *testing.T) {
	t.Run("not found before compute", func(t *testing.T) {
		ts := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/report/export", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("streams CSV download", func(t *testing.T) {
		ts := newTestServer(t)
		ts.uploadCSV(t, "sales", "sales.csv", salesCSV)

		compute := httptest.NewRequest(http.MethodPost, "/api/report/compute", nil)
		ts.router.ServeHTTP(httptest.NewRecorder(), compute)

		req := httptest.NewRequest(http.MethodGet, "/api/report/export", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
		assert.Contains(t, rec.Body.String(), "Alice")
	})
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.service.SetDataset(context.Background(), domain.DatasetSales, []domain.RawRecord{{}}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status   string         `json:"status"`
		Version  string         `json:"version"`
		Datasets map[string]int `json:"datasets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "test", resp.Version)
	assert.Equal(t, 1, resp.Datasets["sales"])
}
