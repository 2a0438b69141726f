// Package auth implements the credential and session core of the chatbox
// API: account registration, login, stateless signed session tokens carried
// in an httpOnly cookie, and session resolution.
package auth

import "time"

// User represents a registered account as stored in the database.
// PasswordHash is the only durable form of the credential and is excluded
// from JSON marshalling so it can never appear in an API response.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
