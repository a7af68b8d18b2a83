package commands

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
)

// trackingCodeAttempts bounds retries on tracking code collisions.
const trackingCodeAttempts = 5

var (
	// ErrSenderNotFound is returned when the booking customer's account does not exist.
	ErrSenderNotFound = errors.New("sender not found")

	// ErrSenderIsNotCustomer is returned when the sender account holds a non-customer role.
	ErrSenderIsNotCustomer = errors.New("sender is not a customer")
)

// CreateParcelCommandHandler handles parcel booking.
// Computes the delivery charge from the tariff, generates a tracking code,
// and atomically persists the parcel together with its first "booked"
// ledger entry.
type CreateParcelCommandHandler struct {
	uowFactory    ParcelUoWFactory
	codeGenerator services.TrackingCodeGenerator
	tariff        services.Tariff
}

// NewCreateParcelCommandHandler creates a handler for parcel booking operations.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	codeGenerator services.TrackingCodeGenerator,
	tariff services.Tariff,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory:    uowFactory,
		codeGenerator: codeGenerator,
		tariff:        tariff,
	}
}

// Handle processes the booking command and returns the created parcel.
//
// A tracking code collision surfaces as a unique constraint violation, which
// poisons the transaction it happened in. Each attempt therefore runs in its
// own unit of work, with a fresh code generated before the next try.
func (h CreateParcelCommandHandler) Handle(
	ctx context.Context, command CreateParcelCommand,
) (*parcel.Parcel, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for range trackingCodeAttempts {
		trackingCode, err := h.codeGenerator.Generate()
		if err != nil {
			return nil, err
		}

		created, err := h.tryCreate(ctx, command, trackingCode)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, errs.ErrAlreadyExists) {
			return nil, err
		}

		lastErr = err
	}

	return nil, fmt.Errorf("tracking code generation exhausted retries: %w", lastErr)
}

func (h CreateParcelCommandHandler) tryCreate(
	ctx context.Context, command CreateParcelCommand, trackingCode string,
) (*parcel.Parcel, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sender, err := uow.AccountRepository().Get(ctx, command.SenderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrSenderNotFound
	}
	if err != nil {
		return nil, err
	}

	if sender.Role() != account.Customer {
		return nil, ErrSenderIsNotCustomer
	}

	newParcel, err := parcel.NewParcel(
		command.ParcelID(),
		trackingCode,
		sender.ID(),
		command.ReceiverName(),
		command.ReceiverPhone(),
		command.ReceiverAddress(),
		command.WeightKg(),
		h.tariff.Charge(command.WeightKg()),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return nil, err
	}

	entry, err := parcel.NewHistoryEntry(kernel.NewUUID(), newParcel.ID(), newParcel.Status())
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}
