package auth

import (
	"net/http"

	"github.com/user/chatbox-auth/apperror"
)

// SessionMiddleware authenticates requests from the session cookie. On
// success the resolved account is placed in the request context; on any
// failure the dead cookie is cleared before the 401 goes out, so clients do
// not keep replaying a credential that will never work again.
func SessionMiddleware(service *AuthService, cookies *CookieManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := TokenFromRequest(r)
			if !ok {
				cookies.Clear(w)
				WriteError(w, r, apperror.NewAuthError(sessionInvalidMessage, nil))
				return
			}

			user, err := service.Authenticate(r.Context(), token)
			if err != nil {
				if apperror.IsAuthError(err) {
					cookies.Clear(w)
				}
				WriteError(w, r, err)
				return
			}

			ctx := NewContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
