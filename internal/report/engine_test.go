package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespulse/pkg/contracts/domain"
)

func salesRecord(rep, product string, netSales, units float64) domain.RawRecord {
	return domain.RawRecord{
		"helped_by":            rep,
		"Product Name":         product,
		"Net Sales":            netSales,
		"Total Inventory Sold": units,
	}
}

func TestCompute_EmptySalesRefused(t *testing.T) {
	result, err := Compute(Input{})

	require.ErrorIs(t, err, ErrNoSales)
	assert.Nil(t, result, "no partial result on refusal")
	assert.Equal(t, "Upload sales_transactions.xlsx first.", err.Error())
}

func TestCompute_Scenario(t *testing.T) {
	// End-to-end scenario: one real sale, one sample row, one receiving
	// record and one timesheet entry.
	input := Input{
		Sales: []domain.RawRecord{
			{
				"Product Name":         "Gummy A",
				"helped_by":            "Alice",
				"Net Sales":            100.0,
				"Total Inventory Sold": 10.0,
				"Package ID":           "P1",
			},
			{
				"Product Name":         "Sample",
				"helped_by":            "Bob",
				"Net Sales":            50.0,
				"Total Inventory Sold": 5.0,
				"Package ID":           "P2",
			},
		},
		Receiving: []domain.RawRecord{
			{"Package Id": "P1", "Quantity": 20.0},
		},
		Timesheets: []domain.RawRecord{
			{"rep": "Alice", "Hours": 2.0},
		},
	}

	result, err := Compute(input)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.TotalRevenue)
	assert.Equal(t, 10.0, result.TotalUnits)

	require.Len(t, result.RepMetrics, 1, "Bob's sample row produces no metric")
	alice := result.RepMetrics[0]
	assert.Equal(t, "Alice", alice.Representative)
	assert.Equal(t, 100.0, alice.Revenue)
	assert.Equal(t, 10.0, alice.Units)
	assert.Equal(t, 1, alice.TicketCount)
	assert.Equal(t, 100.0, alice.RevenuePerTicket)
	assert.Equal(t, 1.0, alice.ShareOfRevenue)
	assert.Equal(t, 2.0, alice.HoursWorked)
	assert.Equal(t, 50.0, alice.TimeWeightedEfficiency)

	require.Len(t, result.TopSellThrough, 1)
	assert.Equal(t, domain.SellThroughEntry{
		PackageID:        "P1",
		QuantityReceived: 20,
		QuantitySold:     10,
		Ratio:            0.5,
	}, result.TopSellThrough[0])
}

func TestCompute_TotalsMatchMetricSums(t *testing.T) {
	input := Input{
		Sales: []domain.RawRecord{
			salesRecord("Alice", "Gummy A", 100.10, 3),
			salesRecord("Bob", "Gummy B", 55.55, 2),
			salesRecord("Alice", "Tincture", 20.20, 1),
			salesRecord("Carol", "Flower", 0, 0),
			salesRecord("Bob", "Sample Jar", 999, 999), // excluded
		},
	}

	result, err := Compute(input)
	require.NoError(t, err)

	var revenue, units float64
	for _, m := range result.RepMetrics {
		revenue += m.Revenue
		units += m.Units
	}
	assert.InDelta(t, result.TotalRevenue, revenue, 1e-9)
	assert.InDelta(t, result.TotalUnits, units, 1e-9)
	assert.InDelta(t, 175.85, result.TotalRevenue, 1e-9)
	assert.InDelta(t, 6, result.TotalUnits, 1e-9)
}

func TestCompute_MetricsSortedByRevenueDescending(t *testing.T) {
	input := Input{
		Sales: []domain.RawRecord{
			salesRecord("Alice", "Gummy A", 10, 1),
			salesRecord("Bob", "Gummy B", 30, 1),
			salesRecord("Carol", "Gummy C", 20, 1),
		},
	}

	result, err := Compute(input)
	require.NoError(t, err)

	require.Len(t, result.RepMetrics, 3)
	assert.Equal(t, "Bob", result.RepMetrics[0].Representative)
	assert.Equal(t, "Carol", result.RepMetrics[1].Representative)
	assert.Equal(t, "Alice", result.RepMetrics[2].Representative)
}

func TestCompute_EqualRevenueKeepsGroupingOrder(t *testing.T) {
	// Stability check: run with the same revenues in two different original
	// orders, output order must follow input grouping order each time.
	orders := [][]string{
		{"Alice", "Bob", "Carol"},
		{"Carol", "Alice", "Bob"},
	}

	for _, reps := range orders {
		t.Run(fmt.Sprintf("%v", reps), func(t *testing.T) {
			var sales []domain.RawRecord
			for _, rep := range reps {
				sales = append(sales, salesRecord(rep, "Gummy", 50, 1))
			}

			result, err := Compute(Input{Sales: sales})
			require.NoError(t, err)

			require.Len(t, result.RepMetrics, len(reps))
			for i, rep := range reps {
				assert.Equal(t, rep, result.RepMetrics[i].Representative)
			}
		})
	}
}

func TestCompute_MissingTimesheetYieldsZeroHours(t *testing.T) {
	input := Input{
		Sales: []domain.RawRecord{
			salesRecord("Alice", "Gummy A", 100, 10),
		},
		Timesheets: []domain.RawRecord{
			{"rep": "Bob", "Hours": 40.0}, // no sales for Bob: hours unused
			{"Hours": 8.0},                // empty representative: dropped
		},
	}

	result, err := Compute(input)
	require.NoError(t, err)

	require.Len(t, result.RepMetrics, 1)
	assert.Zero(t, result.RepMetrics[0].HoursWorked)
	assert.Zero(t, result.RepMetrics[0].TimeWeightedEfficiency)
}

func TestCompute_UnassignedBucket(t *testing.T) {
	input := Input{
		Sales: []domain.RawRecord{
			{"Product Name": "Gummy A", "Net Sales": 10.0, "Total Inventory Sold": 1.0},
			{"Product Name": "Gummy B", "Net Sales": 15.0, "Total Inventory Sold": 2.0},
		},
	}

	result, err := Compute(input)
	require.NoError(t, err)

	require.Len(t, result.RepMetrics, 1)
	assert.Equal(t, UnassignedRep, result.RepMetrics[0].Representative)
	assert.Equal(t, 25.0, result.RepMetrics[0].Revenue)
	assert.Equal(t, 2, result.RepMetrics[0].TicketCount)
}

func TestCompute_LeaderboardFilterNoMatches(t *testing.T) {
	input := Input{
		Sales: []domain.RawRecord{
			{
				"Product Name":         "Gummy A",
				"helped_by":            "Alice",
				"Vendor Name":          "MFNY",
				"Net Sales":            10.0,
				"Total Inventory Sold": 1.0,
			},
		},
		Filter: FilterBrandRuby,
	}

	result, err := Compute(input)
	require.NoError(t, err)

	assert.Empty(t, result.Leaderboard)
	assert.Len(t, result.RepMetrics, 1, "team metrics unaffected by the leaderboard filter")
}

func TestCompute_DegenerateInputsDoNotError(t *testing.T) {
	input := Input{
		Sales: []domain.RawRecord{
			{},
			{"unexpected": "column"},
			{"Net Sales": "not a number", "Total Inventory Sold": nil},
		},
		Receiving:  []domain.RawRecord{{}, {"Quantity": "x"}},
		Timesheets: []domain.RawRecord{{}, {"Hours": true}},
	}

	result, err := Compute(input)
	require.NoError(t, err)

	assert.Zero(t, result.TotalRevenue)
	assert.Zero(t, result.TotalUnits)
	assert.Empty(t, result.TopSellThrough)
	require.Len(t, result.RepMetrics, 1)
	assert.Equal(t, UnassignedRep, result.RepMetrics[0].Representative)
	assert.Zero(t, result.RepMetrics[0].RevenuePerTicket)
	assert.Zero(t, result.RepMetrics[0].ShareOfRevenue)
}

func TestCompute_Idempotent(t *testing.T) {
	input := Input{
		Sales: []domain.RawRecord{
			salesRecord("Alice", "Gummy A", 100.33, 10),
			salesRecord("Bob", "Gummy B", 77.77, 7),
		},
		Receiving: []domain.RawRecord{
			{"Package Id": "P1", "Quantity": 20.0},
		},
		Timesheets: []domain.RawRecord{
			{"rep": "Alice", "Hours": 2.0},
		},
		Filter: FilterCategoryGummies,
	}

	first, err := Compute(input)
	require.NoError(t, err)
	second, err := Compute(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second, "each invocation allocates a fresh snapshot")
}
