package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// summary serves GET /api/summary?month=March&year=2024. Missing parameters
// default to the current month and year; month may also be given as 1..12.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, r, "*Handler.summary", service.ErrUnauthenticated)
		return
	}

	req, err := summaryRequest(r, time.Now())
	if err != nil {
		writeError(w, r, "*Handler.summary", err)
		return
	}

	summary, err := h.services.SummaryService.Summary(r.Context(), uid, req)
	if err != nil {
		writeError(w, r, "*Handler.summary", err)
		return
	}

	_, _ = utils.WriteJSON(w, summary, http.StatusOK)
}

func summaryRequest(r *http.Request, now time.Time) (models.SummaryRequest, error) {
	req := models.SummaryRequest{Month: now.Month(), Year: now.Year()}
	query := r.URL.Query()

	if raw := query.Get("month"); raw != "" {
		month, ok := models.ParseMonth(raw)
		if !ok {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return models.SummaryRequest{}, &service.ValidationError{Field: "month", Message: "Invalid month"}
			}
			month = time.Month(n)
		}
		req.Month = month
	}

	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return models.SummaryRequest{}, fmt.Errorf("%w: year %q", ErrInvalidQuery, raw)
		}
		req.Year = year
	}

	return req, nil
}
