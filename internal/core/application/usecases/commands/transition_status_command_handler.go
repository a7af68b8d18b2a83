package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// ErrRiderNotAssigned is returned when the acting rider does not hold the
// parcel's assignment.
var ErrRiderNotAssigned = errors.New("rider not assigned to parcel")

// TransitionStatusCommandHandler handles parcel status transitions by riders.
// Only the assigned rider may move a parcel, and every transition appends an
// entry to the status history ledger in the same transaction.
type TransitionStatusCommandHandler struct {
	uowFactory TransitionUoWFactory
}

// NewTransitionStatusCommandHandler creates a handler for status transition operations.
func NewTransitionStatusCommandHandler(uowFactory TransitionUoWFactory) TransitionStatusCommandHandler {
	return TransitionStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command and returns the updated parcel.
// Returns ErrParcelNotFound when the parcel does not exist and
// ErrRiderNotAssigned when the acting rider is not the parcel's assignee.
func (h TransitionStatusCommandHandler) Handle(
	ctx context.Context, command TransitionStatusCommand,
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

	held, err := uow.AssignmentRepository().GetByParcel(ctx, command.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrRiderNotAssigned
	}
	if err != nil {
		return nil, err
	}

	if !held.RiderID().IsEqual(command.RiderID()) {
		return nil, ErrRiderNotAssigned
	}

	if err = existing.ChangeStatus(command.NewStatus()); err != nil {
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
