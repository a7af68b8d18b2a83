package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// GetRiderAssignmentsQueryHandler retrieves a rider's assignments joined
// with the assigned parcels.
type GetRiderAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderAssignmentsQueryHandler creates a handler for rider assignment queries.
func NewGetRiderAssignmentsQueryHandler(db *gorm.DB) GetRiderAssignmentsQueryHandler {
	return GetRiderAssignmentsQueryHandler{db: db}
}

// Handle executes the query, returning assignments newest first.
func (h GetRiderAssignmentsQueryHandler) Handle(
	ctx context.Context, query GetRiderAssignmentsQuery,
) ([]RiderAssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.assigned_at,
			p.id,
			p.tracking_code,
			p.sender_id,
			p.receiver_name,
			p.receiver_phone,
			p.receiver_address,
			p.weight_kg,
			p.charge,
			p.status,
			p.booked_at
		FROM assignments a
		JOIN parcels p ON p.id = a.parcel_id
		WHERE a.rider_id = ?
		ORDER BY a.assigned_at DESC
	`, query.RiderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]RiderAssignmentResponse, 0)
	for rows.Next() {
		var (
			response   RiderAssignmentResponse
			aID        uuid.UUID
			pID        uuid.UUID
			senderID   uuid.UUID
			statusName string
		)

		err = rows.Scan(
			&aID,
			&response.AssignedAt,
			&pID,
			&response.Parcel.TrackingCode,
			&senderID,
			&response.Parcel.ReceiverName,
			&response.Parcel.ReceiverPhone,
			&response.Parcel.ReceiverAddress,
			&response.Parcel.WeightKg,
			&response.Parcel.Charge,
			&statusName,
			&response.Parcel.BookedAt,
		)
		if err != nil {
			return nil, err
		}

		if response.AssignmentID, err = kernel.UUIDFromBytes(aID[:]); err != nil {
			return nil, err
		}
		if response.Parcel.ID, err = kernel.UUIDFromBytes(pID[:]); err != nil {
			return nil, err
		}
		if response.Parcel.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
			return nil, err
		}
		if response.Parcel.Status, err = parcel.StatusFromString(statusName); err != nil {
			return nil, err
		}

		assignments = append(assignments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
