package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents a staff request to hand a parcel to a rider.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	parcelID     kernel.UUID
	riderID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign a rider to a parcel.
func NewAssignRiderCommand(assignmentID, parcelID, riderID kernel.UUID) (AssignRiderCommand, error) {
	assignCommand := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setAssignmentID(assignmentID),
		assignCommand.setParcelID(parcelID),
		assignCommand.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier for the new assignment.
func (c AssignRiderCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// ParcelID returns the parcel to be assigned.
func (c AssignRiderCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderID returns the rider account taking the parcel.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *AssignRiderCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *AssignRiderCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
