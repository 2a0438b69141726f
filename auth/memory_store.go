package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryUserStore is an in-memory UserStore with the same uniqueness
// semantics as the Postgres implementation. It backs the test suite and
// local development without a database.
type MemoryUserStore struct {
	mu      sync.Mutex
	byEmail map[string]*User
	byID    map[int]*User
	nextID  int
}

// NewMemoryUserStore creates an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byEmail: make(map[string]*User),
		byID:    make(map[int]*User),
		nextID:  1,
	}
}

// FindByEmail returns the account with the given normalized email.
func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(user), nil
}

// FindByID returns the account with the given ID.
func (s *MemoryUserStore) FindByID(ctx context.Context, id int) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(user), nil
}

// Insert creates a new account. The duplicate check and the write happen
// under one lock, so concurrent inserts for the same email cannot both
// succeed.
func (s *MemoryUserStore) Insert(ctx context.Context, email, passwordHash, nickname string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[email]; exists {
		return nil, ErrEmailTaken
	}
	now := time.Now().UTC()
	user := &User{
		ID:           s.nextID,
		Email:        email,
		Nickname:     nickname,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.nextID++
	s.byEmail[email] = user
	s.byID[user.ID] = user
	return copyUser(user), nil
}

// Delete removes an account. Not part of UserStore; it exists so tests can
// exercise session resolution for an account that vanished after token issue.
func (s *MemoryUserStore) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.byID[id]; ok {
		delete(s.byEmail, user.Email)
		delete(s.byID, id)
	}
}

func copyUser(u *User) *User {
	c := *u
	return &c
}
