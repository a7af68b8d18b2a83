package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// Returns an error wrapping errs.ErrAlreadyExists when the tracking code
	// collides with an existing parcel; callers regenerate and retry.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
}

// HistoryRepository defines the persistence contract for the status history
// ledger. The ledger is append-only: entries are never updated or deleted,
// and reads go through the query side.
type HistoryRepository interface {
	// Add appends a history entry to the ledger.
	Add(ctx context.Context, entry *parcel.HistoryEntry) error
}
