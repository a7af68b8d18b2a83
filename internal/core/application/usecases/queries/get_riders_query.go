package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrGetRidersQueryIsNotConstructed = errors.New(
	"GetRidersQuery must be created via NewGetRidersQuery constructor",
)

// GetRidersQuery retrieves all rider accounts. Staff use the list to pick
// an assignee for a parcel.
type GetRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRidersQuery creates a query to retrieve all riders.
func NewGetRidersQuery() GetRidersQuery {
	return GetRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersQueryIsNotConstructed)
}
