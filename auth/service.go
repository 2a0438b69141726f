package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/user/chatbox-auth/apperror"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// loginFailedMessage is returned for both an unknown email and a wrong
// password. The two cases must stay indistinguishable to a client, otherwise
// the endpoint becomes an account enumeration oracle.
const loginFailedMessage = "invalid email or password"

// sessionInvalidMessage is returned for every failed session resolution:
// missing, malformed, expired or tampered token, or a vanished account.
const sessionInvalidMessage = "invalid or expired session"

// AuthService orchestrates registration, login and session resolution over
// the credential store, the password hasher and the token codec. It keeps no
// per-request state, so any number of calls may run concurrently.
type AuthService struct {
	store  UserStore
	hasher PasswordHasher
	codec  *TokenCodec
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, hasher PasswordHasher, codec *TokenCodec) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		codec:  codec,
	}
}

// Register validates the request, creates the account and issues a session
// token for it. Validation happens before any store or hashing call, so a
// rejected request writes nothing.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", apperror.NewValidationError("email and password are required", nil)
	}
	// Count characters, not bytes: a two-rune multibyte password is not
	// six characters long.
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		return nil, "", apperror.NewValidationError("password must be at least 6 characters", nil)
	}

	email := NormalizeEmail(req.Email)
	if !validEmail(email) {
		return nil, "", apperror.NewValidationError("invalid email format", nil)
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = localPart(email)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", apperror.NewInternalError("failed to hash password", err)
	}

	user, err := s.store.Insert(ctx, email, passwordHash, nickname)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, "", apperror.NewConflictError("email already registered", nil)
		}
		return nil, "", apperror.NewDatabaseError("failed to create user", err)
	}

	token, _, err := s.codec.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", apperror.NewInternalError("failed to issue session token", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a fresh session token. An unknown
// email and a wrong password produce the identical error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", apperror.NewValidationError("email and password are required", nil)
	}

	email := NormalizeEmail(req.Email)
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", apperror.NewAuthError(loginFailedMessage, nil)
		}
		log.Printf("login: store lookup failed: %v", err)
		return nil, "", apperror.NewDatabaseError("failed to look up user", err)
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Printf("login: stored hash for user %d is unreadable: %v", user.ID, err)
		return nil, "", apperror.NewInternalError("failed to verify credentials", err)
	}
	if !ok {
		return nil, "", apperror.NewAuthError(loginFailedMessage, nil)
	}

	token, _, err := s.codec.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", apperror.NewInternalError("failed to issue session token", err)
	}

	return user, token, nil
}

// Authenticate resolves a session token to its account. The account is read
// fresh from the store rather than trusted from the token claims, so a
// changed nickname or a deleted account is reflected immediately. Every
// failure maps to the same AuthError.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*User, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, apperror.NewAuthError(sessionInvalidMessage, nil)
	}

	user, err := s.store.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.NewAuthError(sessionInvalidMessage, nil)
		}
		return nil, apperror.NewDatabaseError("failed to look up user", err)
	}

	return user, nil
}

// NormalizeEmail lowercases an email for storage and lookup. Uniqueness is
// case-insensitive, so every path into the store goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail requires exactly one "@" with non-empty local and domain parts
// and no whitespace of any kind.
func validEmail(email string) bool {
	if strings.ContainsFunc(email, unicode.IsSpace) {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	return at < len(email)-1
}

// localPart returns everything before the "@"; used as the default nickname.
func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
