package domain

// RawRecord is one decoded spreadsheet row: a mapping from column label to a
// scalar of unknown representation (string or number). Arbitrary extra keys
// are tolerated; records are never mutated after decoding.
type RawRecord map[string]any

// SalesRow is a sales transaction after column-alias resolution and coercion.
type SalesRow struct {
	ProductName    string  `json:"product_name"`
	UnitsSold      float64 `json:"units_sold"`
	NetSales       float64 `json:"net_sales"`
	Representative string  `json:"representative"`
	Category       string  `json:"category"`
	VendorName     string  `json:"vendor_name"`
	PackageID      string  `json:"package_id"`
}

// ReceiveRow is an inventory receiving record after normalization.
type ReceiveRow struct {
	PackageID        string  `json:"package_id"`
	QuantityReceived float64 `json:"quantity_received"`
}

// TimeRow is a timesheet entry after normalization.
type TimeRow struct {
	Representative string  `json:"representative"`
	Hours          float64 `json:"hours"`
}

// DatasetKind identifies one of the three uploadable datasets.
type DatasetKind string

const (
	DatasetSales      DatasetKind = "sales"
	DatasetReceiving  DatasetKind = "receiving"
	DatasetTimesheets DatasetKind = "timesheets"
)

// IsValid reports whether the kind names a known dataset.
func (k DatasetKind) IsValid() bool {
	switch k {
	case DatasetSales, DatasetReceiving, DatasetTimesheets:
		return true
	default:
		return false
	}
}
