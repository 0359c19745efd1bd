package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"salespulse/internal/report"
	"salespulse/pkg/contracts/domain"
)

// ReportService owns the uploaded datasets and the last computed result.
//
// The aggregation engine itself is pure; this service supplies the stateful
// boundary around it: datasets replace wholesale per upload, computations run
// to completion under a single lock so no two requests ever interleave, and a
// refused computation leaves the previously computed snapshot untouched.
type ReportService struct {
	mu       sync.Mutex
	logger   *slog.Logger
	datasets map[domain.DatasetKind][]domain.RawRecord
	result   *domain.ComputationResult
}

// NewReportService creates a report service with empty datasets.
func NewReportService(logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		logger:   logger.With(slog.String("component", "report_service")),
		datasets: make(map[domain.DatasetKind][]domain.RawRecord),
	}
}

// SetDataset replaces one dataset with freshly decoded records. The cached
// result snapshot is invalidated: it was computed from data that is no longer
// current. A decode failure upstream never reaches this method, so a failed
// upload leaves the previous dataset in effect.
func (s *ReportService) SetDataset(ctx context.Context, kind domain.DatasetKind, records []domain.RawRecord) error {
	if !kind.IsValid() {
		return fmt.Errorf("unknown dataset kind: %s", kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.datasets[kind] = records
	s.result = nil

	s.logger.InfoContext(ctx, "dataset replaced",
		slog.String("kind", string(kind)),
		slog.Int("records", len(records)))
	return nil
}

// DatasetSizes reports the current record count per dataset.
func (s *ReportService) DatasetSizes() map[domain.DatasetKind]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	sizes := make(map[domain.DatasetKind]int, len(s.datasets))
	for kind, records := range s.datasets {
		sizes[kind] = len(records)
	}
	return sizes
}

// Compute runs the engine over the current dataset snapshots and stores the
// fresh result. The lock spans the entire computation, so each request is
// fully drained before the next is accepted. On report.ErrNoSales the stored
// result is left as it was.
func (s *ReportService) Compute(ctx context.Context, filter report.Filter) (*domain.ComputationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := report.Compute(report.Input{
		Sales:      s.datasets[domain.DatasetSales],
		Receiving:  s.datasets[domain.DatasetReceiving],
		Timesheets: s.datasets[domain.DatasetTimesheets],
		Filter:     filter,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "computation refused",
			slog.String("filter", filter.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.result = result
	s.logger.InfoContext(ctx, "computation completed",
		slog.String("filter", filter.String()),
		slog.Int("rep_metrics", len(result.RepMetrics)),
		slog.Int("leaderboard", len(result.Leaderboard)),
		slog.Float64("total_revenue", result.TotalRevenue))
	return result, nil
}

// Result returns the last computed snapshot, or nil when nothing has been
// computed since the last dataset change.
func (s *ReportService) Result() *domain.ComputationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}
