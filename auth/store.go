package auth

import (
	"context"
	"errors"
)

// Store-level sentinel errors. The service layer translates these into the
// apperror taxonomy; nothing above the service ever sees them.
var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when an insert collides with an existing
	// email. A race between concurrent registrations surfaces as this error,
	// backed by the unique index on the users table.
	ErrEmailTaken = errors.New("email already taken")
)

// UserStore is the only gateway to durable account data. Callers pass emails
// already normalized to lowercase.
type UserStore interface {
	// FindByEmail returns the account with the given normalized email,
	// or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the account with the given primary key,
	// or ErrUserNotFound.
	FindByID(ctx context.Context, id int) (*User, error)

	// Insert creates a new account and returns it with its assigned ID and
	// timestamps. Returns ErrEmailTaken if the email is already registered.
	Insert(ctx context.Context, email, passwordHash, nickname string) (*User, error)
}
