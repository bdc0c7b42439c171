package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each method field can be overridden per test case; an unset field panics,
// which flags an unexpected call.

type mockAuthService struct {
	registerFn      func(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error)
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	logoutFn        func(ctx context.Context, token string) error
	authenticateFn  func(ctx context.Context, token string) (models.Session, error)
	currentUserFn   func(ctx context.Context, token string) (models.PublicUser, error)
	backfillEmailFn func(ctx context.Context) (int64, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (models.Session, error) {
	return m.authenticateFn(ctx, token)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, token string) (models.PublicUser, error) {
	return m.currentUserFn(ctx, token)
}

func (m *mockAuthService) BackfillMissingEmails(ctx context.Context) (int64, error) {
	return m.backfillEmailFn(ctx)
}

type mockIncomeService struct {
	addFn    func(ctx context.Context, userID int64, req models.AddIncomeRequest) (models.Income, error)
	updateFn func(ctx context.Context, userID, incomeID int64, req models.UpdateIncomeRequest) (models.Income, error)
	lockFn   func(ctx context.Context, userID, incomeID int64) (models.Income, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Income, error)
}

func (m *mockIncomeService) AddIncome(ctx context.Context, userID int64, req models.AddIncomeRequest) (models.Income, error) {
	return m.addFn(ctx, userID, req)
}

func (m *mockIncomeService) UpdateIncome(ctx context.Context, userID, incomeID int64, req models.UpdateIncomeRequest) (models.Income, error) {
	return m.updateFn(ctx, userID, incomeID, req)
}

func (m *mockIncomeService) LockIncome(ctx context.Context, userID, incomeID int64) (models.Income, error) {
	return m.lockFn(ctx, userID, incomeID)
}

func (m *mockIncomeService) ListIncomes(ctx context.Context, userID int64) ([]models.Income, error) {
	return m.listFn(ctx, userID)
}

type mockExpenseService struct {
	addFn    func(ctx context.Context, userID int64, req models.AddExpenseRequest) (models.Expense, error)
	deleteFn func(ctx context.Context, userID, expenseID int64) error
	listFn   func(ctx context.Context, userID int64) ([]models.Expense, error)
}

func (m *mockExpenseService) AddExpense(ctx context.Context, userID int64, req models.AddExpenseRequest) (models.Expense, error) {
	return m.addFn(ctx, userID, req)
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, userID, expenseID int64) error {
	return m.deleteFn(ctx, userID, expenseID)
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	return m.listFn(ctx, userID)
}

type mockCategoryService struct {
	addFn  func(ctx context.Context, userID int64, req models.AddCategoryRequest) (models.Category, error)
	listFn func(ctx context.Context, userID int64) ([]models.Category, error)
}

func (m *mockCategoryService) AddCategory(ctx context.Context, userID int64, req models.AddCategoryRequest) (models.Category, error) {
	return m.addFn(ctx, userID, req)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	return m.listFn(ctx, userID)
}

type mockSummaryService struct {
	summaryFn func(ctx context.Context, userID int64, req models.SummaryRequest) (models.Summary, error)
}

func (m *mockSummaryService) Summary(ctx context.Context, userID int64, req models.SummaryRequest) (models.Summary, error) {
	return m.summaryFn(ctx, userID, req)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID int64 = 42

func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// newRequest builds a request with an optional JSON body.
func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// asUser attaches testUserID to the request the way the auth middleware does.
func asUser(r *http.Request) *http.Request {
	return r.WithContext(utils.WithPrincipal(r.Context(), testUserID, "session-1"))
}

// serve dispatches req through the full router so that path parameters and
// middleware behave as in production.
func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// liveSession makes every token resolve to testUserID.
func liveSession() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, token string) (models.Session, error) {
			if token == "" {
				return models.Session{}, service.ErrUnauthenticated
			}
			return models.Session{ID: "session-1", UserID: testUserID}, nil
		},
	}
}

// authorized adds a bearer token accepted by liveSession.
func authorized(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer valid-token")
	return r
}
