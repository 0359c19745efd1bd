package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"salespulse/internal/format"
	"salespulse/pkg/contracts/domain"
)

// CSVWriter renders computed reports as CSV, either to a stream for HTTP
// download or to a file under the configured export directory.
type CSVWriter struct {
	dir    string
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer rooted at dir.
func NewCSVWriter(dir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{dir: dir, logger: logger}
}

// WriteReport writes the full report to w as a single CSV document with
// one section per table. A UTF-8 BOM is prepended so Excel recognizes
// the encoding.
func (c *CSVWriter) WriteReport(w io.Writer, result *domain.ComputationResult) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)

	sections := []func(*csv.Writer, *domain.ComputationResult) error{
		writeSummary,
		writeRepMetrics,
		writeLeaderboard,
		writeSellThrough,
	}

	for i, section := range sections {
		if i > 0 {
			if err := cw.Write([]string{}); err != nil {
				return fmt.Errorf("failed to write section separator: %w", err)
			}
		}
		if err := section(cw, result); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveReport writes the report to a timestamped file under the export
// directory and returns the file path.
func (c *CSVWriter) SaveReport(result *domain.ComputationResult) (string, error) {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("sales_report_%s.csv", time.Now().Format("20060102_150405"))
	path := filepath.Join(c.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := c.WriteReport(file, result); err != nil {
		return "", err
	}

	c.logger.Info("report exported",
		slog.String("path", path),
		slog.Int("reps", len(result.RepMetrics)))

	return path, nil
}

func writeSummary(cw *csv.Writer, result *domain.ComputationResult) error {
	rows := [][]string{
		{"Metric", "Value"},
		{"Total Revenue", format.Money(result.TotalRevenue)},
		{"Total Units Sold", format.Number(result.TotalUnits)},
		{"Representatives", format.Number(float64(len(result.RepMetrics)))},
	}
	return writeAll(cw, rows)
}

func writeRepMetrics(cw *csv.Writer, result *domain.ComputationResult) error {
	rows := [][]string{
		{"Representative", "Revenue", "Units", "Tickets", "Revenue / Ticket", "Share of Revenue", "Hours", "Efficiency"},
	}
	for _, m := range result.RepMetrics {
		hours := format.Absent
		if m.HoursWorked > 0 {
			hours = format.Number(m.HoursWorked)
		}
		rows = append(rows, []string{
			m.Representative,
			format.Money(m.Revenue),
			format.Number(m.Units),
			format.Number(float64(m.TicketCount)),
			format.Money(m.RevenuePerTicket),
			format.Percent(m.ShareOfRevenue),
			hours,
			format.Efficiency(m.TimeWeightedEfficiency),
		})
	}
	return writeAll(cw, rows)
}

func writeLeaderboard(cw *csv.Writer, result *domain.ComputationResult) error {
	rows := [][]string{
		{"Representative", "Units Sold"},
	}
	for _, e := range result.Leaderboard {
		rows = append(rows, []string{
			e.Representative,
			format.Number(e.Units),
		})
	}
	return writeAll(cw, rows)
}

func writeSellThrough(cw *csv.Writer, result *domain.ComputationResult) error {
	rows := [][]string{
		{"Package ID", "Sold", "Received", "Sell-Through"},
	}
	for _, e := range append(append([]domain.SellThroughEntry{}, result.TopSellThrough...), result.BottomSellThrough...) {
		rows = append(rows, []string{
			e.PackageID,
			format.Number(e.QuantitySold),
			format.Number(e.QuantityReceived),
			format.Ratio(e.Ratio),
		})
	}
	return writeAll(cw, rows)
}

func writeAll(cw *csv.Writer, rows [][]string) error {
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return nil
}
