// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a monthly income record owned by a single user.
//
// An income starts unlocked. Locking is a one-way transition: once IsLocked
// is true, Amount, Month and Year can no longer be changed.
type Income struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	// Amount is always positive.
	Amount decimal.Decimal `json:"amount"`

	// Month is the canonical English month name (e.g. "March").
	Month string `json:"month"`
	Year  int    `json:"year"`

	IsLocked  bool      `json:"is_locked"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Income model.
func (i Income) TableName() string {
	return "incomes"
}

// Matches reports whether the income belongs to the given month and year.
func (i Income) Matches(month time.Month, year int) bool {
	return i.Month == month.String() && i.Year == year
}

// AddIncomeRequest carries the fields of a new income record.
type AddIncomeRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0,cents,maxamount"`
	Month  string          `json:"month" validate:"month"`
	Year   int             `json:"year" validate:"min=1900,max=9999"`
}

// UpdateIncomeRequest replaces the amount, month and year of an unlocked
// income record.
type UpdateIncomeRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0,cents,maxamount"`
	Month  string          `json:"month" validate:"month"`
	Year   int             `json:"year" validate:"min=1900,max=9999"`
}
