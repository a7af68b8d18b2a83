package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
)

// GetRidersQueryHandler retrieves all rider accounts from the database.
type GetRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetRidersQueryHandler creates a handler for rider list queries.
func NewGetRidersQueryHandler(db *gorm.DB) GetRidersQueryHandler {
	return GetRidersQueryHandler{db: db}
}

// Handle executes the query, returning riders sorted by name.
func (h GetRidersQueryHandler) Handle(
	ctx context.Context, query GetRidersQuery,
) ([]AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone
		FROM accounts
		WHERE role = ?
		ORDER BY name
	`, account.Rider.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]AccountResponse, 0)
	for rows.Next() {
		var (
			rider AccountResponse
			id    uuid.UUID
		)

		if err = rows.Scan(&id, &rider.Name, &rider.Email, &rider.Phone); err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rider.ID = riderID
		rider.Role = account.Rider

		riders = append(riders, rider)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
