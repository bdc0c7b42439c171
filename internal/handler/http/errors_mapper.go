package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
)

type errorStatus struct {
	target error
	status int
	// message overrides target.Error() in the response body.
	message string
}

// errorStatuses is checked in order. Infrastructure failures come first: a
// store error is often wrapped together with the operation that failed.
var errorStatuses = []errorStatus{
	{target: store.ErrStoreTimeout, status: http.StatusGatewayTimeout, message: "request timed out"},
	{target: store.ErrStoreUnavailable, status: http.StatusServiceUnavailable, message: "service temporarily unavailable"},

	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: ErrInvalidJSON, status: http.StatusBadRequest},
	{target: utils.ErrEmptyBody, status: http.StatusBadRequest},
	{target: ErrInvalidID, status: http.StatusBadRequest},
	{target: ErrInvalidQuery, status: http.StatusBadRequest},

	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{target: service.ErrUnauthenticated, status: http.StatusUnauthorized},

	{target: store.ErrIncomeNotFound, status: http.StatusNotFound},
	{target: store.ErrExpenseNotFound, status: http.StatusNotFound},
	{target: store.ErrCategoryNotFound, status: http.StatusNotFound},

	{target: store.ErrUsernameAlreadyExists, status: http.StatusConflict},
	{target: store.ErrEmailAlreadyExists, status: http.StatusConflict},
	{target: store.ErrCategoryAlreadyExists, status: http.StatusConflict},
	{target: store.ErrIncomeAlreadyLocked, status: http.StatusConflict},
}

// statusFromError returns the HTTP status and the client-facing message
// for err. Unknown errors are 500 with a generic message.
func statusFromError(err error) (int, string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	for _, e := range errorStatuses {
		if !errors.Is(err, e.target) {
			continue
		}
		if e.message != "" {
			return e.status, e.message
		}
		return e.status, e.target.Error()
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err with the request logger and writes the mapped status
// with a {"message": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
