package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrGetAllParcelsQueryIsNotConstructed = errors.New(
	"GetAllParcelsQuery must be created via NewGetAllParcelsQuery constructor",
)

// GetAllParcelsQuery retrieves every parcel in the system, newest first.
// Staff-only view for operational oversight.
type GetAllParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllParcelsQuery creates a query to retrieve all parcels.
func NewGetAllParcelsQuery() GetAllParcelsQuery {
	return GetAllParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllParcelsQueryIsNotConstructed)
}
