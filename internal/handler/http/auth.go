package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// register creates an account, opens its session and answers 201 with the
// public user.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", result.User.ID).Msg("user registered")

	h.setSessionCookie(w, result.Token, result.ExpiresAt)
	_, _ = utils.WriteJSON(w, result.User, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", result.User.ID).Msg("user successfully logged in")

	h.setSessionCookie(w, result.Token, result.ExpiresAt)
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

// logout always clears the cookie, whether or not the request still named a
// live session.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, err := tokenFromRequest(r)
	if err != nil {
		token = ""
	}

	if err = h.services.AuthService.Logout(r.Context(), token); err != nil {
		writeError(w, r, "*Handler.logout", err)
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	token, err := tokenFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.me", service.ErrUnauthenticated)
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), token)
	if err != nil {
		writeError(w, r, "*Handler.me", err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
