package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetCustomerParcelsQueryIsNotConstructed = errors.New(
	"GetCustomerParcelsQuery must be created via NewGetCustomerParcelsQuery constructor",
)

// GetCustomerParcelsQuery retrieves all parcels booked by one customer,
// newest first.
type GetCustomerParcelsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerParcelsQuery creates a query for a customer's parcels.
func NewGetCustomerParcelsQuery(customerID kernel.UUID) (GetCustomerParcelsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerParcelsQuery{}, err
	}

	return GetCustomerParcelsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerParcelsQueryIsNotConstructed)
}

// CustomerID returns the booking customer's account identifier.
func (q GetCustomerParcelsQuery) CustomerID() kernel.UUID {
	return q.customerID
}
