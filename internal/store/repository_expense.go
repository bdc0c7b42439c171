package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/models"
)

type expenseRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewExpenseRepository constructs an [ExpenseRepository] over the "expenses"
// table.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateExpense verifies category ownership and inserts the expense inside a
// single transaction, so the category cannot be checked against one owner and
// used by another.
func (r *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	categoryQuery, categoryArgs, err := r.db.queries.getCategory(expense.UserID, expense.CategoryID)
	if err != nil {
		return models.Expense{}, err
	}
	expense.CreatedAt = now()
	insertQuery, insertArgs, err := r.db.queries.createExpense(expense)
	if err != nil {
		return models.Expense{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.CreateExpense").Msg("error during opening transaction")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.classify(err))
	}
	defer tx.Rollback()

	category, err := scanCategory(tx.QueryRowContext(ctx, categoryQuery, categoryArgs...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Expense{}, ErrCategoryNotFound
	case err != nil:
		log.Err(err).Str("func", "*expenseRepository.CreateExpense").Int64("category_id", expense.CategoryID).Msg("error reading category")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	if err = tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&expense.ID); err != nil {
		log.Err(err).Str("func", "*expenseRepository.CreateExpense").Int64("user_id", expense.UserID).Msg("error inserting expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*expenseRepository.CreateExpense").Msg("error committing transaction")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, r.db.classify(err))
	}

	expense.CategoryName = category.Name
	return expense, nil
}

// ListExpenses returns the user's expenses with their category names, ordered
// by creation time.
func (r *expenseRepository) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := r.db.queries.listExpenses(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.ListExpenses").Int64("user_id", userID).Msg("error listing expenses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var expense models.Expense
		scanErr := rows.Scan(
			&expense.ID,
			&expense.UserID,
			&expense.CategoryID,
			&expense.CategoryName,
			&expense.Amount,
			&expense.Date,
			&expense.Description,
			&expense.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*expenseRepository.ListExpenses").Int64("user_id", userID).Msg("failed to scan expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		expenses = append(expenses, expense)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*expenseRepository.ListExpenses").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(rowsErr))
	}

	return expenses, nil
}

// DeleteExpense returns [ErrExpenseNotFound] when nothing owned by userID was
// deleted.
func (r *expenseRepository) DeleteExpense(ctx context.Context, userID, expenseID int64) error {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := r.db.queries.deleteExpense(userID, expenseID)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.DeleteExpense").Int64("expense_id", expenseID).Msg("error deleting expense")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
