package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/assignment"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrRiderNotFound is returned when the rider account does not exist.
	ErrRiderNotFound = errors.New("rider not found")

	// ErrAssigneeIsNotRider is returned when the assignee account holds a non-rider role.
	ErrAssigneeIsNotRider = errors.New("assignee is not a rider")

	// ErrParcelAlreadyAssigned is returned when the parcel already has a rider.
	ErrParcelAlreadyAssigned = errors.New("parcel already assigned")
)

// AssignRiderCommandHandler handles rider assignment.
//
// The one-rider-per-parcel rule is not checked with a prior read; the
// assignment insert itself is the gate, and a unique violation on the parcel
// id means another assignment won the race.
type AssignRiderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment operations.
func NewAssignRiderCommandHandler(uowFactory AssignmentUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the created assignment.
// Returns ErrParcelNotFound, ErrRiderNotFound, ErrAssigneeIsNotRider, or
// ErrParcelAlreadyAssigned on the corresponding failures.
func (h AssignRiderCommandHandler) Handle(
	ctx context.Context, command AssignRiderCommand,
) (*assignment.Assignment, error) {
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

	if _, err := uow.ParcelRepository().Get(ctx, command.ParcelID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrParcelNotFound
		}
		return nil, err
	}

	rider, err := uow.AccountRepository().Get(ctx, command.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrRiderNotFound
	}
	if err != nil {
		return nil, err
	}

	if rider.Role() != account.Rider {
		return nil, ErrAssigneeIsNotRider
	}

	newAssignment, err := assignment.NewAssignment(
		command.AssignmentID(), command.ParcelID(), command.RiderID())
	if err != nil {
		return nil, err
	}

	if err = uow.AssignmentRepository().Add(ctx, newAssignment); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, ErrParcelAlreadyAssigned
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAssignment, nil
}
