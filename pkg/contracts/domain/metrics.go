package domain

// RepMetric holds the derived performance metrics for one sales
// representative. One metric exists per distinct representative appearing in
// the filtered sales rows; representatives seen only in timesheets produce no
// metric.
type RepMetric struct {
	Representative         string  `json:"representative"`
	Revenue                float64 `json:"revenue"`
	Units                  float64 `json:"units"`
	TicketCount            int     `json:"ticket_count"`
	RevenuePerTicket       float64 `json:"revenue_per_ticket"`
	ShareOfRevenue         float64 `json:"share_of_revenue"`
	HoursWorked            float64 `json:"hours_worked"`
	TimeWeightedEfficiency float64 `json:"time_weighted_efficiency"`
}

// LeaderboardEntry ranks one representative by units sold under the active
// product filter.
type LeaderboardEntry struct {
	Representative string  `json:"representative"`
	Units          float64 `json:"units"`
}

// SellThroughEntry joins received and sold quantities for one package.
type SellThroughEntry struct {
	PackageID        string  `json:"package_id"`
	QuantityReceived float64 `json:"quantity_received"`
	QuantitySold     float64 `json:"quantity_sold"`
	Ratio            float64 `json:"ratio"`
}

// ComputationResult is the immutable snapshot produced by one computation
// request. It is freshly allocated per invocation and never mutated after
// construction.
type ComputationResult struct {
	TotalRevenue      float64            `json:"total_revenue"`
	TotalUnits        float64            `json:"total_units"`
	RepMetrics        []RepMetric        `json:"rep_metrics"`
	Leaderboard       []LeaderboardEntry `json:"leaderboard"`
	TopSellThrough    []SellThroughEntry `json:"top_sell_through"`
	BottomSellThrough []SellThroughEntry `json:"bottom_sell_through"`
}
