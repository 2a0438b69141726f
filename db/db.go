// Package db provides database connectivity and migration support. It builds
// the pgx connection pool used by the rest of the application and applies
// schema migrations on startup so the users table always matches the code.
package db

import (
	"context"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	// File source driver for golang-migrate, registered via side effect.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	// database/sql driver used by migrate's postgres backend.
	_ "github.com/lib/pq"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/chatbox-auth/apperror"
	"github.com/user/chatbox-auth/config"
)

// NewPool establishes a pgxpool connection pool for the configured database
// and verifies connectivity with a ping before returning it.
func NewPool(cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to parse database DSN", err)
	}

	poolConfig.MaxConns = int32(cfg.PoolSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create connection pool", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperror.NewDatabaseError("failed to connect to the database", err)
	}

	return pool, nil
}

// RunMigrations applies any pending migrations from migrationsPath.
// golang-migrate manages its own database/sql connection from the DSN, so the
// pgx pool is not involved here.
func RunMigrations(cfg *config.DatabaseConfig, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, cfg.DSN())
	if err != nil {
		return apperror.NewDatabaseError("failed to create migrator", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			if srcErr != nil {
				log.Printf("warning: error closing migration source: %v", srcErr)
			}
			if dbErr != nil {
				log.Printf("warning: error closing migration database: %v", dbErr)
			}
		}
	}()

	// ErrNoChange just means the schema is already current.
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return apperror.NewDatabaseError("failed to run migrations", err)
	}

	return nil
}
