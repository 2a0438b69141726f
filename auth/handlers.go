package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/chatbox-auth/apperror"
)

// Handlers exposes the auth service over HTTP. It owns the session cookie
// transport; the service itself never touches the response writer.
type Handlers struct {
	service *AuthService
	cookies *CookieManager
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService, cookies *CookieManager) *Handlers {
	return &Handlers{service: service, cookies: cookies}
}

// HandleRegister godoc
// @Summary Register a new account
// @Description Creates an account and starts a session for it. The session token is set as an httpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Registration details"
// @Success 201 {object} auth.UserEnvelope "Account created"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 409 {object} apperror.ErrorResponse "Email already registered"
// @Failure 500 {object} apperror.ErrorResponse "Internal error"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		user, token, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		h.cookies.Attach(w, token)
		writeJSON(w, http.StatusCreated, UserEnvelope{User: NewUserResponse(user)})
	}
}

// HandleLogin godoc
// @Summary Log in
// @Description Verifies credentials and starts a session. The session token is set as an httpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 200 {object} auth.UserEnvelope "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Invalid email or password"
// @Failure 500 {object} apperror.ErrorResponse "Internal error"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		user, token, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		h.cookies.Attach(w, token)
		writeJSON(w, http.StatusOK, UserEnvelope{User: NewUserResponse(user)})
	}
}

// HandleLogout godoc
// @Summary Log out
// @Description Clears the session cookie. Always succeeds, whether or not a valid session existed. The token itself stays cryptographically valid until its expiry; there is no server-side revocation.
// @Tags auth
// @Produce json
// @Success 200 {object} auth.MessageResponse "Session cleared"
// @Router /auth/logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.cookies.Clear(w)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
	}
}

// HandleMe godoc
// @Summary Current account
// @Description Returns the account for the current session, read fresh from storage. Mounted behind SessionMiddleware, which handles the 401 path and clears a dead cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} auth.UserEnvelope "Current account"
// @Failure 401 {object} apperror.ErrorResponse "No valid session"
// @Router /auth/me [get]
func (h *Handlers) HandleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			// Only reachable if the route was mounted without SessionMiddleware.
			h.cookies.Clear(w)
			WriteError(w, r, apperror.NewAuthError(sessionInvalidMessage, nil))
			return
		}
		writeJSON(w, http.StatusOK, UserEnvelope{User: NewUserResponse(user)})
	}
}

// HandleHealth godoc
// @Summary Health check
// @Description Liveness probe for the service.
// @Tags health
// @Produce json
// @Success 200 {object} auth.HealthResponse "Service is up"
// @Router /health [get]
func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// writeJSON serializes data to the response with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
	}
}

// WriteError converts any error into a standardized JSON error response.
// Non-AppError values are treated as internal errors; their detail is logged
// server-side and never sent to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, appErr)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
