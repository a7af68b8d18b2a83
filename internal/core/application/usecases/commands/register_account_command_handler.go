package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// ErrEmailAlreadyTaken is returned when the registration email is already in use.
var ErrEmailAlreadyTaken = errors.New("email already taken")

// RegisterAccountCommandHandler handles account registration.
// Hashes the password and persists the account; the email unique constraint
// is the only duplicate check, so concurrent registrations cannot both win.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(
	uowFactory AccountUoWFactory, hasher ports.PasswordHasher,
) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command and returns the created account.
// Returns ErrEmailAlreadyTaken when the email is already registered.
func (h RegisterAccountCommandHandler) Handle(
	ctx context.Context, command RegisterAccountCommand,
) (*account.Account, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return nil, err
	}

	newAccount, err := account.NewAccount(
		command.AccountID(),
		command.Name(),
		command.Email(),
		command.Phone(),
		passwordHash,
		command.Role(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, newAccount); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, ErrEmailAlreadyTaken
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAccount, nil
}
