package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/assignment"
	"parceltrack/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for rider assignments.
type AssignmentRepository interface {
	// Add persists a new assignment to storage.
	// Returns an error wrapping errs.ErrAlreadyExists when the parcel already
	// has an assignment; the insert attempt is the race-safe gate that keeps
	// a parcel bound to at most one rider.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// GetByParcel retrieves the assignment for the given parcel, if any.
	GetByParcel(ctx context.Context, parcelID kernel.UUID) (*assignment.Assignment, error)
}
