package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incomeHandler(incomes *mockIncomeService) *Handler {
	return newTestHandler(&service.Services{AuthService: liveSession(), IncomeService: incomes})
}

func TestListIncomes(t *testing.T) {
	incomes := &mockIncomeService{
		listFn: func(_ context.Context, userID int64) ([]models.Income, error) {
			assert.Equal(t, testUserID, userID)
			return []models.Income{}, nil
		},
	}

	rec := serve(t, incomeHandler(incomes), authorized(newRequest(http.MethodGet, "/api/income/", "")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAddIncome_Success(t *testing.T) {
	incomes := &mockIncomeService{
		addFn: func(_ context.Context, userID int64, req models.AddIncomeRequest) (models.Income, error) {
			assert.Equal(t, testUserID, userID)
			assert.True(t, decimal.RequireFromString("1000.50").Equal(req.Amount))
			return models.Income{ID: 7, Amount: req.Amount, Month: "March", Year: req.Year}, nil
		},
	}

	rec := serve(t, incomeHandler(incomes), authorized(newRequest(http.MethodPost, "/api/income/",
		`{"amount":"1000.50","month":"march","year":2024}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
	assert.Contains(t, rec.Body.String(), `"month":"March"`)
	assert.Contains(t, rec.Body.String(), `"is_locked":false`)
}

func TestAddIncome_ValidationError(t *testing.T) {
	incomes := &mockIncomeService{
		addFn: func(context.Context, int64, models.AddIncomeRequest) (models.Income, error) {
			return models.Income{}, &service.ValidationError{Field: "month", Message: "Invalid month"}
		},
	}

	rec := serve(t, incomeHandler(incomes), authorized(newRequest(http.MethodPost, "/api/income/",
		`{"amount":10,"month":"Smarch","year":2024}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid month"}`, rec.Body.String())
}

func TestUpdateIncome(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{name: "updated", path: "/api/income/5", wantStatus: http.StatusOK},
		{name: "locked", path: "/api/income/5", serviceErr: store.ErrIncomeAlreadyLocked, wantStatus: http.StatusConflict},
		{name: "foreign or missing", path: "/api/income/5", serviceErr: store.ErrIncomeNotFound, wantStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/api/income/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/income/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incomes := &mockIncomeService{
				updateFn: func(_ context.Context, userID, incomeID int64, req models.UpdateIncomeRequest) (models.Income, error) {
					assert.Equal(t, testUserID, userID)
					assert.Equal(t, int64(5), incomeID)
					if tt.serviceErr != nil {
						return models.Income{}, tt.serviceErr
					}
					return models.Income{ID: incomeID, Amount: req.Amount, Month: req.Month, Year: req.Year}, nil
				},
			}

			rec := serve(t, incomeHandler(incomes), authorized(newRequest(http.MethodPut, tt.path,
				`{"amount":"200","month":"April","year":2024}`)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLockIncome(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "locked now", wantStatus: http.StatusOK},
		{
			name:        "already locked",
			serviceErr:  fmt.Errorf("lock income: %w", store.ErrIncomeAlreadyLocked),
			wantStatus:  http.StatusConflict,
			wantMessage: "income is already locked",
		},
		{
			name:        "not found",
			serviceErr:  store.ErrIncomeNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "income not found",
		},
		{
			name:        "timeout wins over wrapped lock error",
			serviceErr:  fmt.Errorf("%w: %w", store.ErrExecutingStatement, store.ErrStoreTimeout),
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: "request timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incomes := &mockIncomeService{
				lockFn: func(_ context.Context, _, incomeID int64) (models.Income, error) {
					if tt.serviceErr != nil {
						return models.Income{}, tt.serviceErr
					}
					return models.Income{ID: incomeID, IsLocked: true}, nil
				},
			}

			rec := serve(t, incomeHandler(incomes), authorized(newRequest(http.MethodPatch, "/api/income/9/lock", "")))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tt.wantMessage), rec.Body.String())
				return
			}
			assert.Contains(t, rec.Body.String(), `"is_locked":true`)
		})
	}
}

func TestIncomeHandlers_WithoutPrincipal(t *testing.T) {
	h := newTestHandler(&service.Services{IncomeService: &mockIncomeService{}})

	rec := httptest.NewRecorder()
	h.listIncomes(rec, newRequest(http.MethodGet, "/api/income/", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
