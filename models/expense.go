package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record owned by a user and filed under one of
// that user's categories.
type Expense struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"-"`
	CategoryID int64 `json:"category_id"`

	// CategoryName is filled from the categories table on reads.
	CategoryName string `json:"category"`

	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}

// AddExpenseRequest carries the fields of a new expense record.
type AddExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"gt=0,cents,maxamount"`
	CategoryID  int64           `json:"category_id" validate:"gt=0"`
	Date        Date            `json:"date" validate:"required"`
	Description string          `json:"description" validate:"max=500"`
}
