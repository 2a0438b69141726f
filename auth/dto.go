// Data transfer objects for the auth HTTP API.
package auth

import "time"

// RegisterRequest is the payload for account registration.
// Nickname is optional and defaults to the local part of the email.
type RegisterRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"secret1"`
	Nickname string `json:"nickname,omitempty" example:"user"`
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"secret1"`
}

// UserResponse is the public view of an account. It deliberately carries no
// credential material.
type UserResponse struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserEnvelope wraps a UserResponse the way the API returns it.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// NewUserResponse maps a stored User to its public view.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		CreatedAt: u.CreatedAt,
	}
}
