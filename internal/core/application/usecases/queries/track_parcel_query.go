package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)
	ErrTrackingCodeIsRequired = errors.New("tracking code is required")
)

// TrackParcelQuery looks up a parcel by its public tracking code.
// This is the unauthenticated tracking path: anyone holding the code
// can see the parcel's progress.
type TrackParcelQuery struct {
	trackingCode string

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking query for the given code.
func NewTrackParcelQuery(trackingCode string) (TrackParcelQuery, error) {
	if trackingCode == "" {
		return TrackParcelQuery{}, ErrTrackingCodeIsRequired
	}

	return TrackParcelQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingCode returns the code to look up.
func (q TrackParcelQuery) TrackingCode() string {
	return q.trackingCode
}

// HistoryEntryResponse represents one ledger entry in the read model.
type HistoryEntryResponse struct {
	Status     parcel.Status
	RecordedAt time.Time
}

// ParcelResponse represents a parcel in the read model.
type ParcelResponse struct {
	ID              kernel.UUID
	TrackingCode    string
	SenderID        kernel.UUID
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	WeightKg        float64
	Charge          float64
	Status          parcel.Status
	BookedAt        time.Time
}

// TrackParcelQueryResponse carries the tracked parcel together with its
// status history in chronological order.
type TrackParcelQueryResponse struct {
	Parcel  ParcelResponse
	History []HistoryEntryResponse
}
