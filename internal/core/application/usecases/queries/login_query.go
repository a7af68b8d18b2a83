// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
	ErrLoginEmailIsRequired    = errors.New("email is required")
	ErrLoginPasswordIsRequired = errors.New("password is required")
)

// LoginQuery represents an authentication attempt with email and password.
type LoginQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login query. Both email and password are required.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	if email == "" {
		return LoginQuery{}, ErrLoginEmailIsRequired
	}
	if password == "" {
		return LoginQuery{}, ErrLoginPasswordIsRequired
	}

	return LoginQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the login email.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q LoginQuery) Password() string {
	return q.password
}

// AccountResponse represents an account in the read model, without
// credential material.
type AccountResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
	Role  account.Role
}

// LoginQueryResponse carries the signed access token and the
// authenticated account's view.
type LoginQueryResponse struct {
	Token   string
	Account AccountResponse
}
