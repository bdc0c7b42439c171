package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// incomeService stores incomes and enforces the one-way lock. The lock
// itself is decided by the repository's conditional update.
type incomeService struct {
	incomeRepository store.IncomeRepository
	logger           *logger.Logger
}

func NewIncomeService(incomeRepository store.IncomeRepository, logger *logger.Logger) IncomeService {
	return &incomeService{
		incomeRepository: incomeRepository,
		logger:           logger,
	}
}

func (s *incomeService) AddIncome(ctx context.Context, userID int64, req models.AddIncomeRequest) (models.Income, error) {
	log := logger.FromContext(ctx)

	income, err := s.incomeRepository.CreateIncome(ctx, models.Income{
		UserID: userID,
		Amount: req.Amount,
		Month:  models.CanonicalMonth(req.Month),
		Year:   req.Year,
	})
	if err != nil {
		log.Err(err).Str("func", "*incomeService.AddIncome").Int64("user_id", userID).Msg("error adding income")
		return models.Income{}, fmt.Errorf("error adding income: %w", err)
	}

	return income, nil
}

// UpdateIncome fails with store.ErrIncomeAlreadyLocked once the income is
// locked.
func (s *incomeService) UpdateIncome(ctx context.Context, userID, incomeID int64, req models.UpdateIncomeRequest) (models.Income, error) {
	log := logger.FromContext(ctx)

	income, err := s.incomeRepository.UpdateIncome(ctx, models.Income{
		ID:     incomeID,
		UserID: userID,
		Amount: req.Amount,
		Month:  models.CanonicalMonth(req.Month),
		Year:   req.Year,
	})
	if err != nil {
		log.Debug().Err(err).Str("func", "*incomeService.UpdateIncome").Int64("income_id", incomeID).Msg("income was not updated")
		return models.Income{}, fmt.Errorf("error updating income: %w", err)
	}

	return income, nil
}

// LockIncome locks an unlocked income. Locking a locked income is a
// conflict, not a no-op.
func (s *incomeService) LockIncome(ctx context.Context, userID, incomeID int64) (models.Income, error) {
	log := logger.FromContext(ctx)

	income, err := s.incomeRepository.LockIncome(ctx, userID, incomeID)
	if err != nil {
		log.Debug().Err(err).Str("func", "*incomeService.LockIncome").Int64("income_id", incomeID).Msg("income was not locked")
		return models.Income{}, fmt.Errorf("error locking income: %w", err)
	}

	log.Info().Int64("user_id", userID).Int64("income_id", incomeID).Msg("income locked")
	return income, nil
}

func (s *incomeService) ListIncomes(ctx context.Context, userID int64) ([]models.Income, error) {
	incomes, err := s.incomeRepository.ListIncomes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing incomes: %w", err)
	}

	return incomes, nil
}
