package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/models"
)

func (h *Handler) listIncomes(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, r, "*Handler.listIncomes", service.ErrUnauthenticated)
		return
	}

	incomes, err := h.services.IncomeService.ListIncomes(r.Context(), uid)
	if err != nil {
		writeError(w, r, "*Handler.listIncomes", err)
		return
	}

	_, _ = utils.WriteJSON(w, incomes, http.StatusOK)
}

func (h *Handler) addIncome(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, r, "*Handler.addIncome", service.ErrUnauthenticated)
		return
	}

	var req models.AddIncomeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.addIncome", err)
		return
	}

	income, err := h.services.IncomeService.AddIncome(r.Context(), uid, req)
	if err != nil {
		writeError(w, r, "*Handler.addIncome", err)
		return
	}

	_, _ = utils.WriteJSON(w, income, http.StatusCreated)
}

func (h *Handler) updateIncome(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, r, "*Handler.updateIncome", service.ErrUnauthenticated)
		return
	}

	incomeID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateIncome", err)
		return
	}

	var req models.UpdateIncomeRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.updateIncome", err)
		return
	}

	income, err := h.services.IncomeService.UpdateIncome(r.Context(), uid, incomeID, req)
	if err != nil {
		writeError(w, r, "*Handler.updateIncome", err)
		return
	}

	_, _ = utils.WriteJSON(w, income, http.StatusOK)
}

// lockIncome answers 409 when the income is already locked.
func (h *Handler) lockIncome(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, r, "*Handler.lockIncome", service.ErrUnauthenticated)
		return
	}

	incomeID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.lockIncome", err)
		return
	}

	income, err := h.services.IncomeService.LockIncome(r.Context(), uid, incomeID)
	if err != nil {
		writeError(w, r, "*Handler.lockIncome", err)
		return
	}

	_, _ = utils.WriteJSON(w, income, http.StatusOK)
}
