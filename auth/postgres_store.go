package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgresUserStore implements UserStore on a pgx connection pool.
type PostgresUserStore struct {
	db *pgxpool.Pool
}

// NewPostgresUserStore creates a new PostgresUserStore.
func NewPostgresUserStore(db *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// FindByEmail returns the account with the given normalized email.
func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, email, password_hash, nickname, created_at, updated_at
              FROM users WHERE email = $1`
	return s.scanUser(s.db.QueryRow(ctx, query, email))
}

// FindByID returns the account with the given primary key.
func (s *PostgresUserStore) FindByID(ctx context.Context, id int) (*User, error) {
	query := `SELECT id, email, password_hash, nickname, created_at, updated_at
              FROM users WHERE id = $1`
	return s.scanUser(s.db.QueryRow(ctx, query, id))
}

// Insert creates a new account row. The unique index on lower(email) is the
// authority on duplicates, so a concurrent registration race loses cleanly
// with ErrEmailTaken instead of producing a second row.
func (s *PostgresUserStore) Insert(ctx context.Context, email, passwordHash, nickname string) (*User, error) {
	query := `INSERT INTO users (email, password_hash, nickname)
              VALUES ($1, $2, $3)
              RETURNING id, email, password_hash, nickname, created_at, updated_at`
	user, err := s.scanUser(s.db.QueryRow(ctx, query, email, passwordHash, nickname))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "email") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *PostgresUserStore) scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Nickname,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user row: %w", err)
	}
	return &user, nil
}
