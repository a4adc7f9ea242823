package dashboard

// DashboardData is the derived aggregate view; it is computed per request
// and never persisted.
type DashboardData struct {
	Stats              DashboardStats `json:"stats"`
	TopMerchants       []MerchantStat `json:"top_merchants"`
	SpendingByCategory []CategoryStat `json:"spending_by_category"`
	TopIncomeSources   []MerchantStat `json:"top_income_sources"`
	IncomeByCategory   []CategoryStat `json:"income_by_category"`
}

type DashboardStats struct {
	TotalReceipts   int64   `json:"total_receipts"`
	ThisMonth       int64   `json:"this_month"`
	TotalSpent      float64 `json:"total_spent"`
	TotalIncome     float64 `json:"total_income"`
	AvgReceipt      float64 `json:"avg_receipt"`
	MostExpensive   float64 `json:"most_expensive"`
	ReceiptsPerWeek float64 `json:"receipts_per_week"`
}

// MerchantStat is one ranked row; it is reused for income sources, where
// MerchantName carries the source.
type MerchantStat struct {
	MerchantName string  `json:"merchant_name"`
	Amount       float64 `json:"amount"`
	Percentage   float64 `json:"percentage"`
	Count        int64   `json:"count"`
}

type CategoryStat struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Count      int64   `json:"count"`
}
