package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/adapters/out/crypto"
	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

type fakeAccountResolver struct {
	account *account.Account
	err     error
}

func (f fakeAccountResolver) GetByEmail(_ context.Context, _ string) (*account.Account, error) {
	return f.account, f.err
}

func newStoredAccount(t *testing.T, name, email string, role account.Role) *account.Account {
	t.Helper()

	stored, err := account.NewAccount(kernel.NewUUID(), name, email, "", "hash", role)
	require.NoError(t, err)
	return stored
}

func newMiddlewareServer(t *testing.T, resolver accountResolver) (*Server, *crypto.JWTSigner, *bytes.Buffer) {
	t.Helper()

	var logged bytes.Buffer
	signer := crypto.NewJWTSigner([]byte("test-secret"), time.Hour)
	server := &Server{
		signer:   signer,
		accounts: resolver,
		logger:   slog.New(slog.NewTextHandler(&logged, nil)),
	}
	return server, signer, &logged
}

func callWithRole(t *testing.T, server *Server, role account.Role, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	var seen *account.Account
	e.GET("/guarded", func(ctx echo.Context) error {
		seen = authedAccount(ctx)
		return ctx.NoContent(http.StatusNoContent)
	}, server.requireRole(role))

	request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		request.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	if recorder.Code == http.StatusNoContent {
		require.NotNil(t, seen)
		assert.NotEmpty(t, seen.Email())
	}
	return recorder
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	resolver := fakeAccountResolver{
		account: newStoredAccount(t, "Sam Staff", "sam@example.com", account.Staff),
	}
	server, signer, _ := newMiddlewareServer(t, resolver)

	token, err := signer.Issue("sam@example.com", account.Staff)
	require.NoError(t, err)

	recorder := callWithRole(t, server, account.Staff, "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestRequireRole_MissingToken(t *testing.T) {
	server, _, _ := newMiddlewareServer(t, fakeAccountResolver{})

	recorder := callWithRole(t, server, account.Staff, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireRole_MalformedHeader(t *testing.T) {
	server, signer, _ := newMiddlewareServer(t, fakeAccountResolver{})

	token, err := signer.Issue("sam@example.com", account.Staff)
	require.NoError(t, err)

	recorder := callWithRole(t, server, account.Staff, token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireRole_InvalidToken(t *testing.T) {
	server, _, _ := newMiddlewareServer(t, fakeAccountResolver{})

	recorder := callWithRole(t, server, account.Staff, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireRole_ExpiredToken(t *testing.T) {
	server, _, _ := newMiddlewareServer(t, fakeAccountResolver{})

	expired := crypto.NewJWTSigner([]byte("test-secret"), -time.Minute)
	token, err := expired.Issue("sam@example.com", account.Staff)
	require.NoError(t, err)

	recorder := callWithRole(t, server, account.Staff, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "token expired")
}

func TestRequireRole_WrongRoleInToken(t *testing.T) {
	server, signer, _ := newMiddlewareServer(t, fakeAccountResolver{})

	token, err := signer.Issue("carl@example.com", account.Customer)
	require.NoError(t, err)

	recorder := callWithRole(t, server, account.Staff, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireRole_AccountNoLongerExists(t *testing.T) {
	resolver := fakeAccountResolver{err: errs.NewObjectNotFoundError("email", "gone@example.com")}
	server, signer, _ := newMiddlewareServer(t, resolver)

	token, err := signer.Issue("gone@example.com", account.Staff)
	require.NoError(t, err)

	recorder := callWithRole(t, server, account.Staff, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireRole_StoredRoleDisagreesWithToken(t *testing.T) {
	// The stored account was registered as a customer, but the token claims
	// staff. The stored role wins.
	resolver := fakeAccountResolver{
		account: newStoredAccount(t, "Carl Customer", "carl@example.com", account.Customer),
	}
	server, signer, _ := newMiddlewareServer(t, resolver)

	token, err := signer.Issue("carl@example.com", account.Staff)
	require.NoError(t, err)

	recorder := callWithRole(t, server, account.Staff, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireRole_ResolverFaultIsLoggedAndMasked(t *testing.T) {
	resolver := fakeAccountResolver{err: errors.New("connection refused")}
	server, signer, logged := newMiddlewareServer(t, resolver)

	token, err := signer.Issue("sam@example.com", account.Staff)
	require.NoError(t, err)

	recorder := callWithRole(t, server, account.Staff, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "internal error")
	assert.NotContains(t, recorder.Body.String(), "connection refused")

	assert.Contains(t, logged.String(), "connection refused")
	assert.Contains(t, logged.String(), "/guarded")
}
