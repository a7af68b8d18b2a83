package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrTransitionStatusCommandIsNotConstructed = errors.New(
		"TransitionStatusCommand must be created via NewTransitionStatusCommand constructor",
	)
	ErrStatusIsInvalid = errors.New("status is invalid")
)

// TransitionStatusCommand represents a rider's request to move a parcel to a
// new delivery status. The rider identifier comes from the authenticated
// session, never from the request body.
type TransitionStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	riderID   kernel.UUID
	newStatus parcel.Status

	guard guard.ConstructorGuard
}

// NewTransitionStatusCommand creates a command to transition a parcel's status.
func NewTransitionStatusCommand(
	parcelID, riderID kernel.UUID, newStatus parcel.Status,
) (TransitionStatusCommand, error) {
	transitionCommand := TransitionStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setParcelID(parcelID),
		transitionCommand.setRiderID(riderID),
		transitionCommand.setNewStatus(newStatus),
	); err != nil {
		return TransitionStatusCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel whose status changes.
func (c TransitionStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderID returns the authenticated rider performing the transition.
func (c TransitionStatusCommand) RiderID() kernel.UUID {
	return c.riderID
}

// NewStatus returns the target delivery status.
func (c TransitionStatusCommand) NewStatus() parcel.Status {
	return c.newStatus
}

func (c *TransitionStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *TransitionStatusCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *TransitionStatusCommand) setNewStatus(newStatus parcel.Status) error {
	if err := newStatus.Validate(); err != nil {
		return ErrStatusIsInvalid
	}

	c.newStatus = newStatus
	return nil
}
