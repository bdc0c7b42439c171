package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-finance-keeper/internal/validators"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// IncomeValidationService rejects malformed income requests before they
// reach the wrapped IncomeService.
type IncomeValidationService struct {
	inner     IncomeService
	validator validators.Validator
}

func NewIncomeValidationService(validator validators.Validator) IncomeServiceWrapper {
	return &IncomeValidationService{validator: validator}
}

func (v *IncomeValidationService) AddIncome(ctx context.Context, userID int64, req models.AddIncomeRequest) (models.Income, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Income{}, newValidationError(err)
	}

	return v.inner.AddIncome(ctx, userID, req)
}

func (v *IncomeValidationService) UpdateIncome(ctx context.Context, userID, incomeID int64, req models.UpdateIncomeRequest) (models.Income, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Income{}, newValidationError(err)
	}

	return v.inner.UpdateIncome(ctx, userID, incomeID, req)
}

func (v *IncomeValidationService) LockIncome(ctx context.Context, userID, incomeID int64) (models.Income, error) {
	return v.inner.LockIncome(ctx, userID, incomeID)
}

func (v *IncomeValidationService) ListIncomes(ctx context.Context, userID int64) ([]models.Income, error) {
	return v.inner.ListIncomes(ctx, userID)
}

func (v *IncomeValidationService) Wrap(inner IncomeService) IncomeService {
	v.inner = inner
	return v
}

// ExpenseValidationService rejects malformed expense requests.
type ExpenseValidationService struct {
	inner     ExpenseService
	validator validators.Validator
}

func NewExpenseValidationService(validator validators.Validator) ExpenseServiceWrapper {
	return &ExpenseValidationService{validator: validator}
}

func (v *ExpenseValidationService) AddExpense(ctx context.Context, userID int64, req models.AddExpenseRequest) (models.Expense, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Expense{}, newValidationError(err)
	}

	return v.inner.AddExpense(ctx, userID, req)
}

func (v *ExpenseValidationService) DeleteExpense(ctx context.Context, userID, expenseID int64) error {
	return v.inner.DeleteExpense(ctx, userID, expenseID)
}

func (v *ExpenseValidationService) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	return v.inner.ListExpenses(ctx, userID)
}

func (v *ExpenseValidationService) Wrap(inner ExpenseService) ExpenseService {
	v.inner = inner
	return v
}

// CategoryValidationService trims and checks category names.
type CategoryValidationService struct {
	inner     CategoryService
	validator validators.Validator
}

func NewCategoryValidationService(validator validators.Validator) CategoryServiceWrapper {
	return &CategoryValidationService{validator: validator}
}

func (v *CategoryValidationService) AddCategory(ctx context.Context, userID int64, req models.AddCategoryRequest) (models.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Category{}, newValidationError(err)
	}

	return v.inner.AddCategory(ctx, userID, req)
}

func (v *CategoryValidationService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	return v.inner.ListCategories(ctx, userID)
}

func (v *CategoryValidationService) Wrap(inner CategoryService) CategoryService {
	v.inner = inner
	return v
}

type SummaryValidationService struct {
	inner     SummaryService
	validator validators.Validator
}

func NewSummaryValidationService(validator validators.Validator) SummaryServiceWrapper {
	return &SummaryValidationService{validator: validator}
}

func (v *SummaryValidationService) Summary(ctx context.Context, userID int64, req models.SummaryRequest) (models.Summary, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Summary{}, newValidationError(err)
	}

	return v.inner.Summary(ctx, userID, req)
}

func (v *SummaryValidationService) Wrap(inner SummaryService) SummaryService {
	v.inner = inner
	return v
}
