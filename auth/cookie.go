package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// CookieManager attaches the session token to responses and clears it again.
// The cookie is httpOnly (invisible to client-side scripts), SameSite=Lax and
// scoped to the whole site so it is replayed on every request; Secure is
// enabled via configuration in production.
type CookieManager struct {
	secure bool
	ttl    time.Duration
}

// NewCookieManager creates a CookieManager.
func NewCookieManager(secure bool, ttl time.Duration) *CookieManager {
	return &CookieManager{secure: secure, ttl: ttl}
}

// Attach sets the session cookie on the response.
func (m *CookieManager) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the session cookie. It is unconditional and idempotent:
// clearing an absent cookie is fine.
func (m *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest extracts the session token from the request cookie.
// Returns "" and false when the cookie is absent or empty.
func TokenFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
