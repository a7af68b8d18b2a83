package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
)

// ErrInvalidCredentials is returned for any login failure, whether the email
// is unknown or the password is wrong. A single error keeps responses
// indistinguishable so accounts cannot be enumerated.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginQueryHandler authenticates an account and issues an access token.
type LoginQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
	signer ports.TokenSigner
}

// NewLoginQueryHandler creates a handler for login queries.
func NewLoginQueryHandler(db *gorm.DB, hasher ports.PasswordHasher, signer ports.TokenSigner) LoginQueryHandler {
	return LoginQueryHandler{db: db, hasher: hasher, signer: signer}
}

// Handle executes the login query.
// Returns ErrInvalidCredentials on unknown email or password mismatch.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	var (
		id           uuid.UUID
		name         string
		email        string
		phone        string
		passwordHash string
		roleName     string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			password_hash,
			role
		FROM accounts
		WHERE email = ?
	`, query.Email()).Row()

	err := row.Scan(&id, &name, &email, &phone, &passwordHash, &roleName)
	if errors.Is(err, sql.ErrNoRows) {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginQueryResponse{}, err
	}

	matches, err := h.hasher.Verify(query.Password(), passwordHash)
	if err != nil {
		return LoginQueryResponse{}, err
	}
	if !matches {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}

	role, err := account.RoleFromString(roleName)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	token, err := h.signer.Issue(email, role)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LoginQueryResponse{}, err
	}

	return LoginQueryResponse{
		Token: token,
		Account: AccountResponse{
			ID:    accountID,
			Name:  name,
			Email: email,
			Phone: phone,
			Role:  role,
		},
	}, nil
}
