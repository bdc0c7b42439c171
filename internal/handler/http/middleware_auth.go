package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
)

// auth is an HTTP middleware that admits only requests carrying a live
// session.
//
// The token is read from the "token" cookie or the "Authorization: Bearer"
// header and resolved with [service.AuthService.Authenticate]. On success the
// user and session ids are stored in the request context (see
// [utils.WithPrincipal]). Missing, malformed, expired or destroyed tokens
// are rejected with 401; a failing store surfaces as 503/504.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := tokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Msg("malformed authorization header")
			writeError(w, r, "*Handler.auth", service.ErrUnauthenticated)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		ctx = utils.WithPrincipal(ctx, session.UserID, session.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID returns the authenticated user of r. It must only be called from
// handlers behind [Handler.auth].
func userID(r *http.Request) (int64, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
