package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, r, "*Handler.listCategories", service.ErrUnauthenticated)
		return
	}

	categories, err := h.services.CategoryService.ListCategories(r.Context(), uid)
	if err != nil {
		writeError(w, r, "*Handler.listCategories", err)
		return
	}

	_, _ = utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, r, "*Handler.addCategory", service.ErrUnauthenticated)
		return
	}

	var req models.AddCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.addCategory", err)
		return
	}

	category, err := h.services.CategoryService.AddCategory(r.Context(), uid, req)
	if err != nil {
		writeError(w, r, "*Handler.addCategory", err)
		return
	}

	_, _ = utils.WriteJSON(w, category, http.StatusCreated)
}
