package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals is an income/expense balance. It is derived on every request and
// never persisted.
type Totals struct {
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	Savings           decimal.Decimal `json:"savings"`
	SavingsPercentage int64           `json:"savings_percentage"`
}

// CategoryAmount is the amount spent in one category during a month.
type CategoryAmount struct {
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
}

// TrendPoint is one month of a yearly trend.
type TrendPoint struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
}

// SummaryRequest selects the month the summary focuses on.
type SummaryRequest struct {
	Month time.Month `validate:"min=1,max=12"`
	Year  int        `validate:"min=1900,max=9999"`
}

// Summary is the dashboard view of a user's finances.
type Summary struct {
	Month string `json:"month"`
	Year  int    `json:"year"`

	// Total covers every record of the user regardless of date.
	Total Totals `json:"total"`

	// Monthly covers the selected month only.
	Monthly Totals `json:"monthly"`

	// Categories breaks the selected month's expenses down by category.
	Categories []CategoryAmount `json:"categories"`

	// Trend holds January..December of the selected year.
	Trend []TrendPoint `json:"trend"`
}
