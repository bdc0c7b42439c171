// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client of the go-finance-keeper REST API.
//
// [APIAdapter] mirrors the server routes one to one. Non-2xx responses are
// mapped to the sentinel errors of this package so that callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401); the
// server's {"message": ...} text is kept in the error string.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-finance-keeper/models"
)

// APIAdapter talks to a running server. Implementations hold the session
// token returned by Register or Login and attach it to every later request.
type APIAdapter interface {
	// SetToken replaces the stored session token.
	SetToken(token string)

	// Token returns the stored session token, or "" before login.
	Token() string

	// Register creates an account. On success the session token is stored.
	Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)

	// Login opens a session. On success the session token is stored.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// Logout destroys the session on the server and forgets the token.
	Logout(ctx context.Context) error

	Me(ctx context.Context) (models.PublicUser, error)

	ListIncomes(ctx context.Context) ([]models.Income, error)
	AddIncome(ctx context.Context, req models.AddIncomeRequest) (models.Income, error)
	UpdateIncome(ctx context.Context, incomeID int64, req models.UpdateIncomeRequest) (models.Income, error)
	// LockIncome returns ErrConflict (wrapped) for an income that is
	// already locked.
	LockIncome(ctx context.Context, incomeID int64) (models.Income, error)

	ListExpenses(ctx context.Context) ([]models.Expense, error)
	AddExpense(ctx context.Context, req models.AddExpenseRequest) (models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID int64) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	AddCategory(ctx context.Context, req models.AddCategoryRequest) (models.Category, error)

	// Summary fetches the dashboard figures of month/year.
	Summary(ctx context.Context, month string, year int) (models.Summary, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
