// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-finance-keeper/models"
)

// AuthService owns the account and session lifecycle.
type AuthService interface {
	// Register creates an account and opens a session for it.
	Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	// Logout destroys the session of token. It never fails for a bad token.
	Logout(ctx context.Context, token string) error
	// Authenticate resolves token to a live session or ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (models.Session, error)
	CurrentUser(ctx context.Context, token string) (models.PublicUser, error)
	BackfillMissingEmails(ctx context.Context) (int64, error)
}

type IncomeService interface {
	AddIncome(ctx context.Context, userID int64, req models.AddIncomeRequest) (models.Income, error)
	UpdateIncome(ctx context.Context, userID, incomeID int64, req models.UpdateIncomeRequest) (models.Income, error)
	LockIncome(ctx context.Context, userID, incomeID int64) (models.Income, error)
	ListIncomes(ctx context.Context, userID int64) ([]models.Income, error)
}

type ExpenseService interface {
	AddExpense(ctx context.Context, userID int64, req models.AddExpenseRequest) (models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID int64) error
	ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error)
}

type CategoryService interface {
	AddCategory(ctx context.Context, userID int64, req models.AddCategoryRequest) (models.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
}

// SummaryService derives dashboard figures from the stored records.
type SummaryService interface {
	Summary(ctx context.Context, userID int64, req models.SummaryRequest) (models.Summary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IncomeServiceWrapper defines middleware composition for IncomeService.
// Implementations wrap an existing IncomeService to add behavior such as
// validating.
type IncomeServiceWrapper interface {
	Wrap(IncomeService) IncomeService
}

// ExpenseServiceWrapper defines middleware composition for ExpenseService.
type ExpenseServiceWrapper interface {
	Wrap(ExpenseService) ExpenseService
}

// CategoryServiceWrapper defines middleware composition for CategoryService.
type CategoryServiceWrapper interface {
	Wrap(CategoryService) CategoryService
}

// SummaryServiceWrapper defines middleware composition for SummaryService.
type SummaryServiceWrapper interface {
	Wrap(SummaryService) SummaryService
}
