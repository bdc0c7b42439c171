package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/models"
)

type expenseService struct {
	expenseRepository store.ExpenseRepository
	logger            *logger.Logger
}

func NewExpenseService(expenseRepository store.ExpenseRepository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		logger:            logger,
	}
}

// AddExpense files an expense under one of the user's own categories;
// store.ErrCategoryNotFound is returned for anybody else's.
func (s *expenseService) AddExpense(ctx context.Context, userID int64, req models.AddExpenseRequest) (models.Expense, error) {
	log := logger.FromContext(ctx)

	expense, err := s.expenseRepository.CreateExpense(ctx, models.Expense{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		log.Err(err).Str("func", "*expenseService.AddExpense").Int64("user_id", userID).Msg("error adding expense")
		return models.Expense{}, fmt.Errorf("error adding expense: %w", err)
	}

	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID int64) error {
	if err := s.expenseRepository.DeleteExpense(ctx, userID, expenseID); err != nil {
		return fmt.Errorf("error deleting expense: %w", err)
	}

	return nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	expenses, err := s.expenseRepository.ListExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing expenses: %w", err)
	}

	return expenses, nil
}
