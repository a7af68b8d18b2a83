// Package assignmentrepo persists rider assignments.
package assignmentrepo

import (
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/assignment"
	"parceltrack/internal/core/domain/model/kernel"
)

// AssignmentDTO represents the database structure for persisting assignments.
// The unique index on parcel_id enforces the one-rider-per-parcel rule at the
// storage level, making the insert attempt a race-safe gate.
type AssignmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	RiderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         aggregate.ID().Bytes(),
		ParcelID:   aggregate.ParcelID().Bytes(),
		RiderID:    aggregate.RiderID().Bytes(),
		AssignedAt: aggregate.AssignedAt(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(id, parcelID, riderID, dto.AssignedAt)
}
