// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// incomeRepository is the SQL implementation of [IncomeRepository] over the
// "incomes" table.
//
// The lock and update paths never read-then-write: the conditional UPDATE is
// the only thing that decides whether a row changes, and a follow-up read
// merely explains why nothing changed.
type incomeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewIncomeRepository constructs an [IncomeRepository].
func NewIncomeRepository(db *DB, logger *logger.Logger) IncomeRepository {
	logger.Debug().Msg("creating income repository")
	return &incomeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *incomeRepository) CreateIncome(ctx context.Context, income models.Income) (models.Income, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	income.IsLocked = false
	income.CreatedAt = now()
	query, args, err := r.db.queries.createIncome(income)
	if err != nil {
		return models.Income{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&income.ID); err != nil {
		log.Err(err).Str("func", "*incomeRepository.CreateIncome").Int64("user_id", income.UserID).Msg("error inserting income")
		return models.Income{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	return income, nil
}

// UpdateIncome replaces amount, month and year of an unlocked income.
//
// Error handling:
//   - income missing or owned by another user → [ErrIncomeNotFound].
//   - income locked → [ErrIncomeAlreadyLocked]; the row is left untouched.
func (r *incomeRepository) UpdateIncome(ctx context.Context, income models.Income) (models.Income, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.updateIncome(income)
	if err != nil {
		return models.Income{}, err
	}

	if err = r.execConditional(ctx, income.UserID, income.ID, query, args); err != nil {
		log.Debug().Err(err).Str("func", "*incomeRepository.UpdateIncome").Int64("income_id", income.ID).Msg("income was not updated")
		return models.Income{}, err
	}

	return r.GetIncome(ctx, income.UserID, income.ID)
}

// LockIncome makes an income immutable. Of several concurrent calls for the
// same income exactly one succeeds; the rest get [ErrIncomeAlreadyLocked].
func (r *incomeRepository) LockIncome(ctx context.Context, userID, incomeID int64) (models.Income, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.lockIncome(userID, incomeID)
	if err != nil {
		return models.Income{}, err
	}

	if err = r.execConditional(ctx, userID, incomeID, query, args); err != nil {
		log.Debug().Err(err).Str("func", "*incomeRepository.LockIncome").Int64("income_id", incomeID).Msg("income was not locked")
		return models.Income{}, err
	}

	return r.GetIncome(ctx, userID, incomeID)
}

// execConditional runs an UPDATE guarded by "is_locked = false" and, when no
// row was affected, tells a missing income from a locked one.
func (r *incomeRepository) execConditional(ctx context.Context, userID, incomeID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	execCtx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(execCtx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*incomeRepository.execConditional").Int64("income_id", incomeID).Msg("error updating income")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	current, err := r.GetIncome(ctx, userID, incomeID)
	if err != nil {
		return err
	}
	if current.IsLocked {
		return ErrIncomeAlreadyLocked
	}

	// the row exists, is unlocked and still did not match: nothing but a
	// concurrent writer can cause that
	return fmt.Errorf("%w: income %d changed concurrently", ErrExecutingStatement, incomeID)
}

// GetIncome returns [ErrIncomeNotFound] when the income does not exist or is
// owned by another user.
func (r *incomeRepository) GetIncome(ctx context.Context, userID, incomeID int64) (models.Income, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := r.db.queries.getIncome(userID, incomeID)
	if err != nil {
		return models.Income{}, err
	}

	income, err := scanIncome(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Income{}, ErrIncomeNotFound
	case err != nil:
		log.Err(err).Str("func", "*incomeRepository.GetIncome").Int64("income_id", incomeID).Msg("error reading income")
		return models.Income{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return income, nil
}

// ListIncomes returns the user's incomes ordered by creation time. An empty
// slice is returned when the user has none.
func (r *incomeRepository) ListIncomes(ctx context.Context, userID int64) ([]models.Income, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := r.db.queries.listIncomes(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*incomeRepository.ListIncomes").Int64("user_id", userID).Msg("error listing incomes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	incomes := make([]models.Income, 0)
	for rows.Next() {
		income, scanErr := scanIncome(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*incomeRepository.ListIncomes").Int64("user_id", userID).Msg("failed to scan income row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		incomes = append(incomes, income)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*incomeRepository.ListIncomes").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(rowsErr))
	}

	return incomes, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncome(row rowScanner) (models.Income, error) {
	var income models.Income
	err := row.Scan(
		&income.ID,
		&income.UserID,
		&income.Amount,
		&income.Month,
		&income.Year,
		&income.IsLocked,
		&income.CreatedAt,
	)
	return income, err
}
