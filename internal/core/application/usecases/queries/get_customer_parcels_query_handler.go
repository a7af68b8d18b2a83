package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerParcelsQueryHandler retrieves all parcels a customer has booked.
type GetCustomerParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerParcelsQueryHandler creates a handler for customer parcel queries.
func NewGetCustomerParcelsQueryHandler(db *gorm.DB) GetCustomerParcelsQueryHandler {
	return GetCustomerParcelsQueryHandler{db: db}
}

// Handle executes the query, returning the customer's parcels newest first.
func (h GetCustomerParcelsQueryHandler) Handle(
	ctx context.Context, query GetCustomerParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			sender_id,
			receiver_name,
			receiver_phone,
			receiver_address,
			weight_kg,
			charge,
			status,
			booked_at
		FROM parcels
		WHERE sender_id = ?
		ORDER BY booked_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ParcelResponse, 0)
	for rows.Next() {
		response, scanErr := scanParcelResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
