package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllParcelsQueryHandler retrieves every parcel for the staff overview.
type GetAllParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllParcelsQueryHandler creates a handler for the all-parcels query.
func NewGetAllParcelsQueryHandler(db *gorm.DB) GetAllParcelsQueryHandler {
	return GetAllParcelsQueryHandler{db: db}
}

// Handle executes the query, returning all parcels newest first.
func (h GetAllParcelsQueryHandler) Handle(
	ctx context.Context, query GetAllParcelsQuery,
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
		ORDER BY booked_at DESC
	`).Rows()
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
