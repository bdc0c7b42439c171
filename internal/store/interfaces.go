// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-finance-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with UserID and CreatedAt
	// set. Returns ErrUsernameAlreadyExists or ErrEmailAlreadyExists on a
	// uniqueness conflict.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// BackfillMissingEmails assigns "<username><suffix>" to every user
	// without an email and returns the number of updated users.
	BackfillMissingEmails(ctx context.Context, suffix string) (int64, error)
}

// SessionRepository persists server-side login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	// FindSession returns ErrSessionNotFound for unknown ids.
	FindSession(ctx context.Context, sessionID string) (models.Session, error)
	// DeleteSession is idempotent: deleting a missing session is not an error.
	DeleteSession(ctx context.Context, sessionID string) error
}

// IncomeRepository persists incomes. Every method is scoped to the owning user.
type IncomeRepository interface {
	CreateIncome(ctx context.Context, income models.Income) (models.Income, error)
	// UpdateIncome changes amount, month and year of an unlocked income in a
	// single conditional statement. Returns ErrIncomeNotFound or
	// ErrIncomeAlreadyLocked when no row qualifies.
	UpdateIncome(ctx context.Context, income models.Income) (models.Income, error)
	// LockIncome switches IsLocked to true exactly once. Concurrent callers
	// race on the same conditional update, and all but one get
	// ErrIncomeAlreadyLocked.
	LockIncome(ctx context.Context, userID, incomeID int64) (models.Income, error)
	GetIncome(ctx context.Context, userID, incomeID int64) (models.Income, error)
	ListIncomes(ctx context.Context, userID int64) ([]models.Income, error)
}

// ExpenseRepository persists expenses. Every method is scoped to the owning user.
type ExpenseRepository interface {
	// CreateExpense checks that the category belongs to the expense owner and
	// inserts the expense in one transaction. Returns ErrCategoryNotFound when
	// the category is missing or foreign.
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID int64) error
}

// CategoryRepository persists expense categories. Every method is scoped to
// the owning user.
type CategoryRepository interface {
	// CreateCategory returns ErrCategoryAlreadyExists when the user already
	// has a category with the same name.
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategory(ctx context.Context, userID, categoryID int64) (models.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
}
