package ports

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/account"
)

var (
	// ErrTokenExpired is returned when a token's expiry moment has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned when a token fails signature or claims validation.
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenClaims is the identity a valid access token carries.
type TokenClaims struct {
	// Subject is the email of the authenticated account.
	Subject string

	// Role is the account's role at issue time.
	Role account.Role

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time
}

// TokenSigner issues and validates access tokens for authenticated sessions.
type TokenSigner interface {
	// Issue signs a token carrying the given subject and role.
	Issue(subject string, role account.Role) (string, error)

	// Validate parses and verifies a token, returning its claims.
	// Returns ErrTokenExpired or ErrTokenInvalid on failure.
	Validate(token string) (TokenClaims, error)
}
