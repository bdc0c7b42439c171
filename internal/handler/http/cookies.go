package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/utils"
)

const tokenCookieName = "token"

// setSessionCookie hands the session token to the browser. The cookie
// lives exactly as long as the session.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, h.sessionCookie(token, expiresAt))
	w.Header().Set("Authorization", "Bearer "+token)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (h *Handler) sessionCookie(value string, expiresAt time.Time) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.cookieSecure {
		// cross-site dashboards only receive the cookie with SameSite=None
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     tokenCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: sameSite,
	}
}

// tokenFromRequest returns the session token of r: the "token" cookie
// first, then an "Authorization: Bearer" header. It returns an empty string
// when neither is present and ErrInvalidAuthorizationHeader for a malformed
// header.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", nil
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
