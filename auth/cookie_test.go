package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCookieFromRecorder(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestCookieManagerAttach(t *testing.T) {
	m := NewCookieManager(false, 168*time.Hour)
	rec := httptest.NewRecorder()

	m.Attach(rec, "the-token")

	cookie := setCookieFromRecorder(t, rec)
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "the-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((168 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly, "session cookie must be invisible to client-side scripts")
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestCookieManagerSecureFlag(t *testing.T) {
	m := NewCookieManager(true, time.Hour)
	rec := httptest.NewRecorder()

	m.Attach(rec, "the-token")

	cookie := setCookieFromRecorder(t, rec)
	assert.True(t, cookie.Secure)
}

func TestCookieManagerClearIsIdempotent(t *testing.T) {
	m := NewCookieManager(false, time.Hour)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		m.Clear(rec)

		cookie := setCookieFromRecorder(t, rec)
		assert.Equal(t, SessionCookieName, cookie.Name)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

	_, ok := TokenFromRequest(r)
	assert.False(t, ok)

	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "the-token"})
	token, ok := TokenFromRequest(r)
	assert.True(t, ok)
	assert.Equal(t, "the-token", token)

	empty := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	empty.AddCookie(&http.Cookie{Name: SessionCookieName, Value: ""})
	_, ok = TokenFromRequest(empty)
	assert.False(t, ok)
}
