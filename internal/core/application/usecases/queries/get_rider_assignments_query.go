package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetRiderAssignmentsQueryIsNotConstructed = errors.New(
	"GetRiderAssignmentsQuery must be created via NewGetRiderAssignmentsQuery constructor",
)

// GetRiderAssignmentsQuery retrieves a rider's assignments together with
// the assigned parcels, newest first.
type GetRiderAssignmentsQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderAssignmentsQuery creates a query for a rider's assignments.
func NewGetRiderAssignmentsQuery(riderID kernel.UUID) (GetRiderAssignmentsQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderAssignmentsQuery{}, err
	}

	return GetRiderAssignmentsQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderAssignmentsQueryIsNotConstructed)
}

// RiderID returns the rider whose assignments are listed.
func (q GetRiderAssignmentsQuery) RiderID() kernel.UUID {
	return q.riderID
}

// RiderAssignmentResponse pairs an assignment with its parcel in the read model.
type RiderAssignmentResponse struct {
	AssignmentID kernel.UUID
	AssignedAt   time.Time
	Parcel       ParcelResponse
}
