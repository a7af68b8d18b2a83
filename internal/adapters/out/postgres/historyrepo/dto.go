// Package historyrepo persists the append-only status history ledger.
package historyrepo

import (
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// HistoryEntryDTO represents one row of the status history ledger.
// Rows are only ever inserted; there is no update path.
type HistoryEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(32);not null"`
	RecordedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "parcel_history".
func (HistoryEntryDTO) TableName() string {
	return "parcel_history"
}

func fromDomain(entry *parcel.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:         entry.ID().Bytes(),
		ParcelID:   entry.ParcelID().Bytes(),
		Status:     entry.Status().String(),
		RecordedAt: entry.RecordedAt(),
	}
}

func toDomain(dto HistoryEntryDTO) (*parcel.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreHistoryEntry(id, parcelID, status, dto.RecordedAt)
}
