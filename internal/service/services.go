package service

import (
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/validators"
)

type Services struct {
	AuthService     AuthService
	IncomeService   IncomeService
	ExpenseService  ExpenseService
	CategoryService CategoryService
	SummaryService  SummaryService
	AppInfoService  AppInfoService
}

// NewServices builds every service on top of storages. Finance services are
// returned already wrapped by their validation layer.
func NewServices(storages *store.Storages, validator validators.Validator, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthService(storages, validator, cfg, logger),
		IncomeService: NewIncomeValidationService(validator).
			Wrap(NewIncomeService(storages.IncomeRepository, logger)),
		ExpenseService: NewExpenseValidationService(validator).
			Wrap(NewExpenseService(storages.ExpenseRepository, logger)),
		CategoryService: NewCategoryValidationService(validator).
			Wrap(NewCategoryService(storages.CategoryRepository, logger)),
		SummaryService: NewSummaryValidationService(validator).
			Wrap(NewSummaryService(storages.IncomeRepository, storages.ExpenseRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
