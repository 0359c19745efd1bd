package report

import (
	"strconv"
	"strings"

	"salespulse/pkg/contracts/domain"
)

// Column alias lists, in resolution priority order. The first alias that is
// present in the record wins; presence means the key exists at all, so an
// empty cell still resolves (spreadsheet decoders emit empty strings for
// unset cells under a known header).
var (
	salesRepAliases    = []string{"helped_by", "Budtender", "Associate", "Rep"}
	hoursRepAliases    = []string{"rep", "Name", "Employee"}
	hoursAliases       = []string{"Hours", "Hours Worked"}
	receivePkgAliases  = []string{"Package Id", "Package ID", "Package"}
	receiveQtyAliases  = []string{"Quantity", "Units"}
	salesPkgAliases    = []string{"Package ID", "Package Id"}
	productNameAliases = []string{"Product Name"}
	unitsSoldAliases   = []string{"Total Inventory Sold"}
	netSalesAliases    = []string{"Net Sales"}
	categoryAliases    = []string{"Category"}
	vendorNameAliases  = []string{"Vendor Name"}
)

// UnassignedRep is the fallback representative for sales rows that carry none
// of the representative column aliases.
const UnassignedRep = "Unassigned"

// resolve returns the value of the first alias present in the record.
func resolve(rec domain.RawRecord, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, ok := rec[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// resolveString resolves the first present alias and converts it to a string.
// A missing key yields the fallback, not an empty string.
func resolveString(rec domain.RawRecord, aliases []string, fallback string) string {
	v, ok := resolve(rec, aliases)
	if !ok {
		return fallback
	}
	return toString(v)
}

// resolveNumber resolves the first present alias and coerces it to a number.
// Missing keys and non-coercible values both yield zero; coercion is never an
// error condition.
func resolveNumber(rec domain.RawRecord, aliases []string) float64 {
	v, ok := resolve(rec, aliases)
	if !ok {
		return 0
	}
	return toNumber(v)
}

// toString renders a raw cell value as a string. Floats drop insignificant
// trailing zeros so numeric package ids round-trip the way the spreadsheet
// shows them.
func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		return ""
	}
}

// toNumber coerces a raw cell value to a float64, defaulting to zero for
// anything non-numeric (including empty strings).
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// NormalizeSales resolves one raw sales record into a SalesRow.
func NormalizeSales(rec domain.RawRecord) domain.SalesRow {
	return domain.SalesRow{
		ProductName:    resolveString(rec, productNameAliases, ""),
		UnitsSold:      resolveNumber(rec, unitsSoldAliases),
		NetSales:       resolveNumber(rec, netSalesAliases),
		Representative: strings.TrimSpace(resolveString(rec, salesRepAliases, UnassignedRep)),
		Category:       resolveString(rec, categoryAliases, ""),
		VendorName:     resolveString(rec, vendorNameAliases, ""),
		PackageID:      strings.TrimSpace(resolveString(rec, salesPkgAliases, "")),
	}
}

// NormalizeReceiving resolves one raw receiving record into a ReceiveRow.
func NormalizeReceiving(rec domain.RawRecord) domain.ReceiveRow {
	return domain.ReceiveRow{
		PackageID:        strings.TrimSpace(resolveString(rec, receivePkgAliases, "")),
		QuantityReceived: resolveNumber(rec, receiveQtyAliases),
	}
}

// NormalizeTimesheet resolves one raw timesheet record into a TimeRow. The
// representative is deliberately not trimmed: hour totals are keyed by the
// exact timesheet spelling, matching the sales-side key only when the
// spreadsheets agree.
func NormalizeTimesheet(rec domain.RawRecord) domain.TimeRow {
	return domain.TimeRow{
		Representative: resolveString(rec, hoursRepAliases, ""),
		Hours:          resolveNumber(rec, hoursAliases),
	}
}
