package model

// DailySales is one bucket of the per-day sales aggregation.
type DailySales struct {
	Date        string  `json:"date"`
	TotalSales  float64 `json:"totalSales"`
	NumOfOrders int     `json:"numOfOrders"`
}
