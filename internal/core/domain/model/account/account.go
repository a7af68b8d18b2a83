package account

import (
	"errors"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not created
	// through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Account represents a registered identity in the system: a customer who books
// parcels, a staff member who manages them, or a rider who delivers them.
//
// Account follows these invariants:
//   - Must have a valid unique identifier
//   - Name and email must be non-blank; email is unique system-wide
//   - Role is one of the three valid roles and never changes after creation
//   - Stores only the one-way credential hash, never a raw password
//   - Can only be created through NewAccount or RestoreAccount
type Account struct {
	// id is the unique identifier for the account
	id kernel.UUID

	// name is the display name shown to other actors
	name string

	// email is the login identifier, unique across all accounts
	email string

	// phone is an optional contact number
	phone string

	// passwordHash is the one-way credential digest
	passwordHash string

	// role determines which operations the account may perform
	role Role

	// createdAt is the registration timestamp
	createdAt time.Time

	// isConstructed ensures the account was created via a factory method
	isConstructed bool
}

// NewAccount creates a new Account with validation. Phone is optional; every
// other field is required. The registration timestamp is taken at creation.
func NewAccount(
	id kernel.UUID,
	name, email, phone, passwordHash string,
	role Role,
) (*Account, error) {
	acc := &Account{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		acc.setID(id),
		acc.setName(name),
		acc.setEmail(email),
		acc.setPhone(phone),
		acc.setPasswordHash(passwordHash),
		acc.setRole(role),
	); err != nil {
		return nil, err
	}

	return acc, nil
}

// RestoreAccount reconstructs an Account from persistence, including its
// original registration timestamp. Used by repository implementations only.
func RestoreAccount(
	id kernel.UUID,
	name, email, phone, passwordHash string,
	role Role,
	createdAt time.Time,
) (*Account, error) {
	acc, err := NewAccount(id, name, email, phone, passwordHash, role)
	if err != nil {
		return nil, err
	}

	acc.createdAt = createdAt
	return acc, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the unique login email.
func (a *Account) Email() string {
	return a.email
}

// Phone returns the optional contact number. Empty when not provided.
func (a *Account) Phone() string {
	return a.phone
}

// PasswordHash returns the stored credential digest.
// It is never included in any outward-facing view of the account.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account's role. Roles are immutable after registration.
func (a *Account) Role() Role {
	return a.role
}

// CreatedAt returns the registration timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setPhone(phone string) error {
	a.phone = phone
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
