package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
)

// ErrParcelNotFound is returned when the referenced parcel does not exist.
var ErrParcelNotFound = errors.New("parcel not found")

// EditParcelCommandHandler handles staff corrections to parcel details.
// Recomputes the delivery charge when the weight changes and appends a
// ledger entry with the unchanged status, so the edit moment is auditable.
type EditParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	tariff     services.Tariff
}

// NewEditParcelCommandHandler creates a handler for parcel edit operations.
func NewEditParcelCommandHandler(
	uowFactory ParcelUoWFactory, tariff services.Tariff,
) EditParcelCommandHandler {
	return EditParcelCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
	}
}

// Handle processes the edit command and returns the updated parcel.
// Returns ErrParcelNotFound when the parcel does not exist.
func (h EditParcelCommandHandler) Handle(
	ctx context.Context, command EditParcelCommand,
) (*parcel.Parcel, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	existing, err := parcelRepo.Get(ctx, command.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrParcelNotFound
	}
	if err != nil {
		return nil, err
	}

	err = existing.UpdateDetails(
		command.ReceiverName(),
		command.ReceiverPhone(),
		command.ReceiverAddress(),
		command.WeightKg(),
		h.tariff.Charge(command.WeightKg()),
	)
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	entry, err := parcel.NewHistoryEntry(kernel.NewUUID(), existing.ID(), existing.Status())
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
