package model

// NameValue is a single slice of a distribution chart.
type NameValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Dashboard is the derived summary over products and transactions.
// Distributions are ordered by descending value.
type Dashboard struct {
	TotalProducts      int           `json:"totalProducts"`
	LowStockCount      int           `json:"lowStockCount"`
	TotalValue         float64       `json:"totalValue"`
	CategoryCounts     []NameValue   `json:"categoryCounts"`
	RecentTransactions []Transaction `json:"recentTransactions"`
	StockDistribution  []NameValue   `json:"stockDistribution"`
}

// RecentTransactionLimit is the size of the dashboard's recent feed.
const RecentTransactionLimit = 5
