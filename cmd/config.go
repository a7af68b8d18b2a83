package cmd

import (
	"errors"
	"fmt"
)

// Default values applied when the corresponding variable is unset.
const (
	DefaultHTTPPort        = "8080"
	DefaultDBSslMode       = "disable"
	DefaultTokenTTLMinutes = 1440
	DefaultRatePerKg       = 50.0
)

// Config carries everything the application needs at startup. Missing
// required settings are a startup failure, never a runtime surprise.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret       string
	TokenTTLMinutes int
	RatePerKg       float64
}

// Validate fails fast on settings the application cannot run without.
func (c Config) Validate() error {
	var missing []error

	for _, required := range []struct {
		name  string
		value string
	}{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_PASSWORD", c.DBPassword},
		{"DB_NAME", c.DBName},
		{"JWT_SECRET", c.JWTSecret},
	} {
		if required.value == "" {
			missing = append(missing, fmt.Errorf("%s is not set", required.name))
		}
	}

	if c.TokenTTLMinutes <= 0 {
		missing = append(missing, fmt.Errorf("TOKEN_TTL_MINUTES must be positive, got %d", c.TokenTTLMinutes))
	}
	if c.RatePerKg <= 0 {
		missing = append(missing, fmt.Errorf("RATE_PER_KG must be positive, got %v", c.RatePerKg))
	}

	return errors.Join(missing...)
}

// DSN builds the postgres connection string for GORM.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
