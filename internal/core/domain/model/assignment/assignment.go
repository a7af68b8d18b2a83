package assignment

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not created
	// through the NewAssignment or RestoreAssignment factory methods.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

// Assignment binds exactly one rider to exactly one parcel.
//
// A parcel has at most one assignment for its lifetime: there is no unassign
// or reassign operation. The one-per-parcel rule is enforced by a unique
// storage constraint on the parcel id, with the insert attempt itself acting
// as the race-safe gate, so two concurrent assigns can never both succeed.
// A rider, on the other hand, may hold many assignments.
type Assignment struct {
	// id is the unique identifier for the assignment
	id kernel.UUID

	// parcelID references the assigned parcel (unique per assignment table)
	parcelID kernel.UUID

	// riderID references the rider account carrying the parcel
	riderID kernel.UUID

	// assignedAt is the moment staff created the assignment
	assignedAt time.Time

	// isConstructed ensures the assignment was created via a factory method
	isConstructed bool
}

// NewAssignment creates an assignment of a rider to a parcel, timestamped at creation.
func NewAssignment(id, parcelID, riderID kernel.UUID) (*Assignment, error) {
	a := &Assignment{
		assignedAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setParcelID(parcelID),
		a.setRiderID(riderID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistence.
// Used by repository implementations only.
func RestoreAssignment(id, parcelID, riderID kernel.UUID, assignedAt time.Time) (*Assignment, error) {
	a, err := NewAssignment(id, parcelID, riderID)
	if err != nil {
		return nil, err
	}

	a.assignedAt = assignedAt
	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two assignments by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// ParcelID returns the assigned parcel's identifier.
func (a *Assignment) ParcelID() kernel.UUID {
	return a.parcelID
}

// RiderID returns the carrying rider's account identifier.
func (a *Assignment) RiderID() kernel.UUID {
	return a.riderID
}

// AssignedAt returns the moment the assignment was created.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	a.parcelID = parcelID
	return nil
}

func (a *Assignment) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	a.riderID = riderID
	return nil
}
