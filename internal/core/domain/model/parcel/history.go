package parcel

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
	// created through the NewHistoryEntry or RestoreHistoryEntry factory methods.
	ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry constructor")
)

// HistoryEntry is one record in a parcel's append-only audit trail.
// One entry is written at booking and one at every subsequent mutation,
// including staff edits that leave the status unchanged. Entries are never
// updated or deleted, and are retrievable in chronological order per parcel.
type HistoryEntry struct {
	// id is the unique identifier for the entry
	id kernel.UUID

	// parcelID references the parcel this entry belongs to
	parcelID kernel.UUID

	// status is the parcel status at the moment the entry was recorded
	status Status

	// recordedAt is the moment the entry was written
	recordedAt time.Time

	// isConstructed ensures the entry was created via a factory method
	isConstructed bool
}

// NewHistoryEntry creates a history entry for the given parcel and status,
// timestamped at creation.
func NewHistoryEntry(id, parcelID kernel.UUID, status Status) (*HistoryEntry, error) {
	e := &HistoryEntry{
		recordedAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setParcelID(parcelID),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreHistoryEntry reconstructs a HistoryEntry from persistence.
// Used by repository implementations only.
func RestoreHistoryEntry(id, parcelID kernel.UUID, status Status, recordedAt time.Time) (*HistoryEntry, error) {
	e, err := NewHistoryEntry(id, parcelID, status)
	if err != nil {
		return nil, err
	}

	e.recordedAt = recordedAt
	return e, nil
}

// Validate ensures the HistoryEntry instance was properly constructed.
func (e *HistoryEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *HistoryEntry) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identifier of the parcel this entry belongs to.
func (e *HistoryEntry) ParcelID() kernel.UUID {
	return e.parcelID
}

// Status returns the recorded parcel status.
func (e *HistoryEntry) Status() Status {
	return e.status
}

// RecordedAt returns the moment the entry was written.
func (e *HistoryEntry) RecordedAt() time.Time {
	return e.recordedAt
}

func (e *HistoryEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *HistoryEntry) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	e.parcelID = parcelID
	return nil
}

func (e *HistoryEntry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
