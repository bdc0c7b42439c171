package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/income/",
			status: http.StatusOK,
			body:   "[]",
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/api/income/"`,
				`"status":200`,
				`"size":2`,
				`"duration":`,
			},
		},
		{
			name:         "POST 201",
			method:       http.MethodPost,
			path:         "/api/expense/",
			status:       http.StatusCreated,
			body:         `{"id":1}`,
			wantContains: []string{`"method":"POST"`, `"status":201`, `"size":8`},
		},
		{
			name:         "DELETE 204",
			method:       http.MethodDelete,
			path:         "/api/expense/3",
			status:       http.StatusNoContent,
			wantContains: []string{`"status":204`, `"size":0`},
		},
		{
			name:         "implicit 200",
			method:       http.MethodGet,
			path:         "/api/version",
			body:         "v1",
			wantContains: []string{`"status":200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.New(&buf, "test")

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(log.WithContext(req.Context()))
			rec := httptest.NewRecorder()

			(&Handler{logger: log}).withLogging(next).ServeHTTP(rec, req)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
