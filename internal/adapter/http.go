package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

type httpAPIAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIAdapter returns an [APIAdapter] for the server at address
// ("host:port" or a full URL). A non-positive timeout selects the default.
func NewHTTPAPIAdapter(address string, timeout time.Duration, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpAPIAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/api/auth/register")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	if err = h.storeToken(resp); err != nil {
		return models.PublicUser{}, fmt.Errorf("register: %w", err)
	}

	return user, nil
}

func (h *httpAPIAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	if err = h.storeToken(resp); err != nil {
		return models.LoginResult{}, fmt.Errorf("login: %w", err)
	}

	result.Token = h.Token()
	return result, nil
}

func (h *httpAPIAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAPIAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser
	err := h.do("me", h.authedRequest(ctx).SetResult(&user), resty.MethodGet, "/api/auth/me")
	return user, err
}

func (h *httpAPIAdapter) ListIncomes(ctx context.Context) ([]models.Income, error) {
	incomes := []models.Income{}
	err := h.do("list incomes", h.authedRequest(ctx).SetResult(&incomes), resty.MethodGet, "/api/income/")
	return incomes, err
}

func (h *httpAPIAdapter) AddIncome(ctx context.Context, req models.AddIncomeRequest) (models.Income, error) {
	var income models.Income
	err := h.do("add income", h.authedRequest(ctx).SetBody(req).SetResult(&income), resty.MethodPost, "/api/income/")
	return income, err
}

func (h *httpAPIAdapter) UpdateIncome(ctx context.Context, incomeID int64, req models.UpdateIncomeRequest) (models.Income, error) {
	var income models.Income
	err := h.do("update income", h.authedRequest(ctx).SetBody(req).SetResult(&income),
		resty.MethodPut, "/api/income/"+strconv.FormatInt(incomeID, 10))
	return income, err
}

func (h *httpAPIAdapter) LockIncome(ctx context.Context, incomeID int64) (models.Income, error) {
	var income models.Income
	err := h.do("lock income", h.authedRequest(ctx).SetResult(&income),
		resty.MethodPatch, "/api/income/"+strconv.FormatInt(incomeID, 10)+"/lock")
	return income, err
}

func (h *httpAPIAdapter) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses := []models.Expense{}
	err := h.do("list expenses", h.authedRequest(ctx).SetResult(&expenses), resty.MethodGet, "/api/expense/")
	return expenses, err
}

func (h *httpAPIAdapter) AddExpense(ctx context.Context, req models.AddExpenseRequest) (models.Expense, error) {
	var expense models.Expense
	err := h.do("add expense", h.authedRequest(ctx).SetBody(req).SetResult(&expense), resty.MethodPost, "/api/expense/")
	return expense, err
}

func (h *httpAPIAdapter) DeleteExpense(ctx context.Context, expenseID int64) error {
	return h.do("delete expense", h.authedRequest(ctx),
		resty.MethodDelete, "/api/expense/"+strconv.FormatInt(expenseID, 10))
}

func (h *httpAPIAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := h.do("list categories", h.authedRequest(ctx).SetResult(&categories), resty.MethodGet, "/api/category/")
	return categories, err
}

func (h *httpAPIAdapter) AddCategory(ctx context.Context, req models.AddCategoryRequest) (models.Category, error) {
	var category models.Category
	err := h.do("add category", h.authedRequest(ctx).SetBody(req).SetResult(&category), resty.MethodPost, "/api/category/")
	return category, err
}

func (h *httpAPIAdapter) Summary(ctx context.Context, month string, year int) (models.Summary, error) {
	var summary models.Summary

	req := h.authedRequest(ctx).SetResult(&summary)
	if month != "" {
		req.SetQueryParam("month", month)
	}
	if year != 0 {
		req.SetQueryParam("year", strconv.Itoa(year))
	}

	err := h.do("summary", req, resty.MethodGet, "/api/summary")
	return summary, err
}

func (h *httpAPIAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// do sends req and maps a non-2xx status to an error.
func (h *httpAPIAdapter) do(op string, req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "*httpAPIAdapter.do").Str("op", op).Msg("request failed")
		return fmt.Errorf("%s request: %w", op, err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// storeToken keeps the bearer token the server returned with a new session.
func (h *httpAPIAdapter) storeToken(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoToken, err)
	}

	h.SetToken(token)
	return nil
}
