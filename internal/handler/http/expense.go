package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/models"
)

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, r, "*Handler.listExpenses", service.ErrUnauthenticated)
		return
	}

	expenses, err := h.services.ExpenseService.ListExpenses(r.Context(), uid)
	if err != nil {
		writeError(w, r, "*Handler.listExpenses", err)
		return
	}

	_, _ = utils.WriteJSON(w, expenses, http.StatusOK)
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, r, "*Handler.addExpense", service.ErrUnauthenticated)
		return
	}

	var req models.AddExpenseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.addExpense", err)
		return
	}

	expense, err := h.services.ExpenseService.AddExpense(r.Context(), uid, req)
	if err != nil {
		writeError(w, r, "*Handler.addExpense", err)
		return
	}

	_, _ = utils.WriteJSON(w, expense, http.StatusCreated)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, r, "*Handler.deleteExpense", service.ErrUnauthenticated)
		return
	}

	expenseID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteExpense", err)
		return
	}

	if err = h.services.ExpenseService.DeleteExpense(r.Context(), uid, expenseID); err != nil {
		writeError(w, r, "*Handler.deleteExpense", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
