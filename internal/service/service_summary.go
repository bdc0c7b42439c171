// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/models"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// summaryService aggregates a user's incomes and expenses. Nothing it
// computes is persisted.
type summaryService struct {
	incomeRepository  store.IncomeRepository
	expenseRepository store.ExpenseRepository
	logger            *logger.Logger
}

func NewSummaryService(incomeRepository store.IncomeRepository, expenseRepository store.ExpenseRepository, logger *logger.Logger) SummaryService {
	return &summaryService{
		incomeRepository:  incomeRepository,
		expenseRepository: expenseRepository,
		logger:            logger,
	}
}

func (s *summaryService) Summary(ctx context.Context, userID int64, req models.SummaryRequest) (models.Summary, error) {
	log := logger.FromContext(ctx)

	incomes, err := s.incomeRepository.ListIncomes(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*summaryService.Summary").Int64("user_id", userID).Msg("error listing incomes")
		return models.Summary{}, fmt.Errorf("error building summary: %w", err)
	}

	expenses, err := s.expenseRepository.ListExpenses(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*summaryService.Summary").Int64("user_id", userID).Msg("error listing expenses")
		return models.Summary{}, fmt.Errorf("error building summary: %w", err)
	}

	return buildSummary(incomes, expenses, req.Month, req.Year), nil
}

func buildSummary(incomes []models.Income, expenses []models.Expense, month time.Month, year int) models.Summary {
	summary := models.Summary{
		Month: month.String(),
		Year:  year,
		Total: newTotals(
			sumIncomes(incomes, func(models.Income) bool { return true }),
			sumExpenses(expenses, func(models.Expense) bool { return true }),
		),
		Monthly:    monthTotals(incomes, expenses, month, year),
		Categories: categoryBreakdown(expenses, month, year),
		Trend:      make([]models.TrendPoint, 0, 12),
	}

	for m := time.January; m <= time.December; m++ {
		totals := monthTotals(incomes, expenses, m, year)
		summary.Trend = append(summary.Trend, models.TrendPoint{
			Month:    m.String(),
			Income:   totals.Income,
			Expenses: totals.Expenses,
			Savings:  totals.Savings,
		})
	}

	return summary
}

func monthTotals(incomes []models.Income, expenses []models.Expense, month time.Month, year int) models.Totals {
	return newTotals(
		sumIncomes(incomes, func(i models.Income) bool { return i.Matches(month, year) }),
		sumExpenses(expenses, func(e models.Expense) bool { return e.Date.InMonth(month, year) }),
	)
}

// newTotals derives savings and the savings percentage. The percentage is
// rounded half up and is 0 whenever there is no income.
func newTotals(income, expenses decimal.Decimal) models.Totals {
	savings := income.Sub(expenses)

	var percentage int64
	if income.IsPositive() {
		percentage = savings.Div(income).Mul(hundred).Add(half).Floor().IntPart()
	}

	return models.Totals{
		Income:            income,
		Expenses:          expenses,
		Savings:           savings,
		SavingsPercentage: percentage,
	}
}

func sumIncomes(incomes []models.Income, match func(models.Income) bool) decimal.Decimal {
	total := decimal.Zero
	for _, income := range incomes {
		if match(income) {
			total = total.Add(income.Amount)
		}
	}
	return total
}

func sumExpenses(expenses []models.Expense, match func(models.Expense) bool) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		if match(expense) {
			total = total.Add(expense.Amount)
		}
	}
	return total
}

// categoryBreakdown sums the month's expenses per category, largest first.
func categoryBreakdown(expenses []models.Expense, month time.Month, year int) []models.CategoryAmount {
	byCategory := make(map[int64]*models.CategoryAmount)
	for _, expense := range expenses {
		if !expense.Date.InMonth(month, year) {
			continue
		}

		entry, ok := byCategory[expense.CategoryID]
		if !ok {
			entry = &models.CategoryAmount{CategoryID: expense.CategoryID, Name: expense.CategoryName, Amount: decimal.Zero}
			byCategory[expense.CategoryID] = entry
		}
		entry.Amount = entry.Amount.Add(expense.Amount)
	}

	breakdown := make([]models.CategoryAmount, 0, len(byCategory))
	for _, entry := range byCategory {
		breakdown = append(breakdown, *entry)
	}

	slices.SortFunc(breakdown, func(a, b models.CategoryAmount) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.CategoryID, b.CategoryID)
	})

	return breakdown
}
