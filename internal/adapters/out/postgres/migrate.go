package postgres

import (
	"gorm.io/gorm"

	"parceltrack/internal/adapters/out/postgres/accountrepo"
	"parceltrack/internal/adapters/out/postgres/assignmentrepo"
	"parceltrack/internal/adapters/out/postgres/historyrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
)

// Migrate creates or updates the schema for every persisted aggregate,
// including the unique indexes on account email, parcel tracking code, and
// assignment parcel id that back the duplicate checks.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&parcelrepo.ParcelDTO{},
		&historyrepo.HistoryEntryDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
}
