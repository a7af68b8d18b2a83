package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/ports"
)

// tokenClaims is the JWT payload for access tokens. The subject carries the
// account email; the role travels as a custom claim so middleware can gate
// routes without a database read.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWTSigner implements ports.TokenSigner using HMAC-SHA256 signed JWTs.
type JWTSigner struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewJWTSigner creates a signer with the given secret and token lifetime.
func NewJWTSigner(secret []byte, tokenTTL time.Duration) *JWTSigner {
	return &JWTSigner{
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Issue signs a token for the given subject and role, expiring after the
// configured lifetime.
func (s *JWTSigner) Issue(subject string, role account.Role) (string, error) {
	now := time.Now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		Role: role.String(),
	})

	return token.SignedString(s.secret)
}

// Validate parses and verifies a token, mapping parse failures to the
// port-level sentinel errors.
func (s *JWTSigner) Validate(tokenString string) (ports.TokenClaims, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ports.TokenClaims{}, ports.ErrTokenExpired
	}
	if err != nil || !token.Valid {
		return ports.TokenClaims{}, ports.ErrTokenInvalid
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return ports.TokenClaims{}, ports.ErrTokenInvalid
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return ports.TokenClaims{
		Subject:   claims.Subject,
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}
