package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"salespulse/pkg/contracts/domain"
)

// Decoder turns uploaded spreadsheet content into ordered raw records. The
// first row of the first sheet provides the column labels; every following
// row becomes one record with the empty string as the default for unset
// cells. Row order is preserved; downstream grouping and leaderboard ties
// rely on first-seen order.
type Decoder struct {
	logger *slog.Logger
}

// NewDecoder creates a new spreadsheet decoder.
func NewDecoder(logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{
		logger: logger.With(slog.String("component", "decoder")),
	}
}

// Decode reads a workbook or CSV file into raw records. The filename only
// selects the format by extension; .csv goes through the CSV reader,
// everything else is treated as an Excel workbook.
func (d *Decoder) Decode(r io.Reader, filename string) ([]domain.RawRecord, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return d.decodeCSV(r, filename)
	}
	return d.decodeWorkbook(r, filename)
}

func (d *Decoder) decodeWorkbook(r io.Reader, filename string) ([]domain.RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", filename)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	records := tabulate(rows)
	d.logger.Info("decoded workbook",
		slog.String("filename", filename),
		slog.String("sheet", sheets[0]),
		slog.Int("records", len(records)))
	return records, nil
}

func (d *Decoder) decodeCSV(r io.Reader, filename string) ([]domain.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", filename, err)
	}

	records := tabulate(rows)
	d.logger.Info("decoded CSV",
		slog.String("filename", filename),
		slog.Int("records", len(records)))
	return records, nil
}

// tabulate maps header-labelled rows into raw records. Headers are trimmed of
// surrounding whitespace; columns with an empty header and rows with no data
// at all are skipped.
func tabulate(rows [][]string) []domain.RawRecord {
	if len(rows) == 0 {
		return []domain.RawRecord{}
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]domain.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rec := make(domain.RawRecord, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				rec[header] = row[i]
			} else {
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
