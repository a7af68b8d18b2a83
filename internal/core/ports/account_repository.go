// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the auth primitives
// (password hashing, token signing). These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// Returns an error wrapping errs.ErrAlreadyExists when the email is taken;
	// the insert attempt is the race-safe uniqueness check.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves the account registered under the given email.
	// Email matching is exact and case-sensitive.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
