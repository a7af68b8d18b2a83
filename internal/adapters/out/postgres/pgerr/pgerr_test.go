package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"parceltrack/internal/adapters/out/postgres/pgerr"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, pgerr.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, pgerr.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, pgerr.IsUniqueViolation(
		fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"})))

	assert.False(t, pgerr.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, pgerr.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, pgerr.IsUniqueViolation(errors.New("plain error")))
	assert.False(t, pgerr.IsUniqueViolation(nil))
}
