package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/config"
	httphandler "github.com/MKhiriev/go-finance-keeper/internal/handler/http"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/validators"
	"github.com/MKhiriev/go-finance-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestAdapter_AgainstServer drives the adapter against the real router and
// services over an in-memory SQLite database.
func TestAdapter_AgainstServer(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	db, err := store.NewConnect(ctx, config.DB{DSN: ":memory:", Driver: config.DriverSQLite}, log)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))
	defer db.Close()

	services, err := service.NewServices(store.NewStorages(db, log), validators.NewRequestValidator(), config.App{
		TokenSignKey:  "adapter-secret",
		TokenIssuer:   "go-finance-keeper",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
		Version:       "v0.0.1-test",
	}, log)
	require.NoError(t, err)

	srv := httptest.NewServer(httphandler.NewHandler(services, config.Server{}, log).Init())
	defer srv.Close()

	api, err := NewHTTPAPIAdapter(srv.URL, 5*time.Second, log)
	require.NoError(t, err)

	version, err := api.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v0.0.1-test", version)

	_, err = api.Register(ctx, models.RegisterRequest{Username: "carol", Email: "carol@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = api.Register(ctx, models.RegisterRequest{Username: "carol", Email: "c2@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrConflict)

	me, err := api.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "carol", me.Username)

	income, err := api.AddIncome(ctx, models.AddIncomeRequest{Amount: decimal.NewFromInt(2000), Month: "January", Year: 2025})
	require.NoError(t, err)

	_, err = api.LockIncome(ctx, income.ID)
	require.NoError(t, err)
	_, err = api.LockIncome(ctx, income.ID)
	assert.ErrorIs(t, err, ErrConflict)

	category, err := api.AddCategory(ctx, models.AddCategoryRequest{Name: "Rent"})
	require.NoError(t, err)

	_, err = api.AddExpense(ctx, models.AddExpenseRequest{
		Amount:     decimal.NewFromInt(500),
		CategoryID: category.ID,
		Date:       models.NewDate(2025, time.January, 3),
	})
	require.NoError(t, err)

	_, err = api.AddExpense(ctx, models.AddExpenseRequest{Amount: decimal.NewFromInt(1), CategoryID: category.ID})
	assert.ErrorIs(t, err, ErrBadRequest)

	expenses, err := api.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)

	summary, err := api.Summary(ctx, "January", 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(75), summary.Monthly.SavingsPercentage)

	require.NoError(t, api.DeleteExpense(ctx, expenses[0].ID))
	assert.ErrorIs(t, api.DeleteExpense(ctx, expenses[0].ID), ErrNotFound)

	require.NoError(t, api.Logout(ctx))
	_, err = api.ListIncomes(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
