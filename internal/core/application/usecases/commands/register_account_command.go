package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

const minPasswordLength = 6

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrNameIsRequired    = errors.New("name is required")
	ErrEmailIsRequired   = errors.New("email is required")
	ErrPasswordIsTooWeak = errors.New("password must be at least 6 characters")
	ErrRoleIsInvalid     = errors.New("role is invalid")
)

// RegisterAccountCommand represents a request to create a new account.
// The role is chosen at registration and never changes afterwards.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	name      string
	email     string
	phone     string
	password  string
	role      account.Role

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Validates that name and email are not blank, the password is long enough,
// and the role is one of customer, staff, or rider.
func NewRegisterAccountCommand(
	accountID kernel.UUID, name, email, phone, password string, role account.Role,
) (RegisterAccountCommand, error) {
	registerCommand := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setAccountID(accountID),
		registerCommand.setName(name),
		registerCommand.setEmail(email),
		registerCommand.setPassword(password),
		registerCommand.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	registerCommand.phone = strings.TrimSpace(phone)
	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the account holder's display name.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Email returns the unique login email.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Phone returns the optional contact phone.
func (c RegisterAccountCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// Role returns the account's role.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = strings.TrimSpace(name)
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}

	c.email = strings.TrimSpace(email)
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrPasswordIsTooWeak
	}

	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return ErrRoleIsInvalid
	}

	c.role = role
	return nil
}
