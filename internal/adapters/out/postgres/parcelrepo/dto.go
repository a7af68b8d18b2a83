// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. Implements the repository pattern for the parcel
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The unique index on tracking_code backs the collision-and-retry scheme in
// parcel creation; status is stored under its wire name.
type ParcelDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode    string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	SenderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverName    string    `gorm:"type:varchar(255);not null"`
	ReceiverPhone   string    `gorm:"type:varchar(32);not null"`
	ReceiverAddress string    `gorm:"type:varchar(512);not null"`
	WeightKg        float64   `gorm:"type:numeric;not null"`
	Charge          float64   `gorm:"type:numeric;not null"`
	Status          string    `gorm:"type:varchar(32);not null;index"`
	BookedAt        time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:              aggregate.ID().Bytes(),
		TrackingCode:    aggregate.TrackingCode(),
		SenderID:        aggregate.SenderID().Bytes(),
		ReceiverName:    aggregate.ReceiverName(),
		ReceiverPhone:   aggregate.ReceiverPhone(),
		ReceiverAddress: aggregate.ReceiverAddress(),
		WeightKg:        aggregate.WeightKg(),
		Charge:          aggregate.Charge(),
		Status:          aggregate.Status().String(),
		BookedAt:        aggregate.BookedAt(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingCode,
		senderID,
		dto.ReceiverName,
		dto.ReceiverPhone,
		dto.ReceiverAddress,
		dto.WeightKg,
		dto.Charge,
		status,
		dto.BookedAt,
	)
}
