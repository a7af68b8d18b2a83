package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// TrackParcelQueryHandler retrieves a parcel and its full status history
// by tracking code, using direct SQL for the read path.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for tracking queries.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns an error wrapping errs.ErrObjectNotFound when no parcel carries
// the given code.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context, query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	tracked, err := h.findParcel(ctx, query.TrackingCode())
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	history, err := h.findHistory(ctx, tracked.ID)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	return TrackParcelQueryResponse{
		Parcel:  tracked,
		History: history,
	}, nil
}

func (h TrackParcelQueryHandler) findParcel(
	ctx context.Context, trackingCode string,
) (ParcelResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
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
		WHERE tracking_code = ?
	`, trackingCode).Row()

	tracked, err := scanParcelResponse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ParcelResponse{}, errs.NewObjectNotFoundError("trackingCode", trackingCode)
	}
	if err != nil {
		return ParcelResponse{}, err
	}

	return tracked, nil
}

func (h TrackParcelQueryHandler) findHistory(
	ctx context.Context, parcelID kernel.UUID,
) ([]HistoryEntryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			recorded_at
		FROM parcel_history
		WHERE parcel_id = ?
		ORDER BY recorded_at
	`, parcelID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]HistoryEntryResponse, 0)
	for rows.Next() {
		var (
			statusName string
			recordedAt time.Time
		)

		if err = rows.Scan(&statusName, &recordedAt); err != nil {
			return nil, err
		}

		status, statusErr := parcel.StatusFromString(statusName)
		if statusErr != nil {
			return nil, statusErr
		}

		history = append(history, HistoryEntryResponse{
			Status:     status,
			RecordedAt: recordedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanParcelResponse(row rowScanner) (ParcelResponse, error) {
	var (
		response   ParcelResponse
		id         uuid.UUID
		senderID   uuid.UUID
		statusName string
	)

	err := row.Scan(
		&id,
		&response.TrackingCode,
		&senderID,
		&response.ReceiverName,
		&response.ReceiverPhone,
		&response.ReceiverAddress,
		&response.WeightKg,
		&response.Charge,
		&statusName,
		&response.BookedAt,
	)
	if err != nil {
		return ParcelResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ParcelResponse{}, err
	}
	if response.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if response.Status, err = parcel.StatusFromString(statusName); err != nil {
		return ParcelResponse{}, err
	}

	return response, nil
}
