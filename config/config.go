// Package config loads and validates application configuration from
// environment variables. Required variables and parse failures are collected
// and reported together, so a misconfigured deployment fails fast with a
// single message listing everything that needs fixing.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds settings for the PostgreSQL connection pool.
// If URL is set it is used verbatim; otherwise a DSN is assembled from the
// discrete fields.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	PoolSize int
}

// DSN returns the connection string for this database.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name,
	)
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	// JWTSecret signs session tokens. It is required at startup and never
	// has a built-in default; rotating it invalidates all outstanding tokens.
	JWTSecret string
	// TokenTTL is how long an issued session token stays valid.
	TokenTTL time.Duration
	// CookieSecure marks the session cookie Secure so it is only sent over
	// TLS. Enabled in production deployments.
	CookieSecure bool
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Database *DatabaseConfig
	Auth     *AuthConfig
	Server   *ServerConfig
	// MigrationsPath points at the SQL migration files applied on startup.
	MigrationsPath string
}

// getRequiredEnv reads a required variable, collecting an error when absent.
func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an optional variable with a default value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt reads an optional integer variable. The default is used
// when the variable is unset; a parse failure is collected as an error.
func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvBool reads an optional boolean variable.
func getOptionalEnvBool(key string, defaultValue bool, errs *[]string) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected boolean, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueBool
}

// getOptionalEnvDuration reads an optional duration variable, e.g. "15m" or "168h".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size within sane bounds.
func clampPoolSize(size int) int {
	if size < 1 {
		return 1
	}
	if size > 100 {
		return 100
	}
	return size
}

// LoadConfig builds an AppConfig from environment variables. All errors
// encountered while loading are aggregated into a single returned error.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	// Database: DATABASE_URL wins; otherwise the discrete DB_* variables
	// are required.
	dbURL := getOptionalEnv("DATABASE_URL", "")
	dbCfg := &DatabaseConfig{
		URL:      dbURL,
		PoolSize: clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errs)),
	}
	if dbURL == "" {
		dbCfg.User = getRequiredEnv("DB_USER", &errs)
		dbCfg.Password = getRequiredEnv("DB_PASSWORD", &errs)
		dbCfg.Name = getRequiredEnv("DB_NAME", &errs)
		dbCfg.Host = getOptionalEnv("DB_HOST", "localhost")
		dbCfg.Port = getOptionalEnvInt("DB_PORT", 5432, &errs)
	}

	// Session tokens live for 7 days unless overridden.
	authCfg := &AuthConfig{
		JWTSecret:    getRequiredEnv("JWT_SECRET", &errs),
		TokenTTL:     getOptionalEnvDuration("JWT_TOKEN_DURATION", 168*time.Hour, &errs),
		CookieSecure: getOptionalEnvBool("COOKIE_SECURE", false, &errs),
	}
	if authCfg.TokenTTL <= 0 {
		errs = append(errs, fmt.Sprintf("invalid value for JWT_TOKEN_DURATION: must be positive, got %s", authCfg.TokenTTL))
	}

	serverCfg := &ServerConfig{
		Port: getOptionalEnv("PORT", "5001"),
	}

	migrationsPath := getOptionalEnv("MIGRATIONS_PATH", "./migrations")

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		Database:       dbCfg,
		Auth:           authCfg,
		Server:         serverCfg,
		MigrationsPath: migrationsPath,
	}, nil
}
