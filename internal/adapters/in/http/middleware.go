package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// accountContextKey is where requireRole stores the resolved account
// for downstream handlers.
const accountContextKey = "authAccount"

const bearerPrefix = "Bearer "

// accountResolver looks up the account behind a token subject.
// Satisfied by ports.AccountRepository.
type accountResolver interface {
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

// requireRole authenticates the request with a bearer token and gates it on
// the given role. The token only names the subject; the role check runs
// against the stored account, so a stale token cannot outlive a deleted
// account.
func (s *Server) requireRole(role account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, bearerPrefix)
			if !found || token == "" {
				return errorJSON(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := s.signer.Validate(token)
			if errors.Is(err, ports.ErrTokenExpired) {
				return errorJSON(ctx, http.StatusUnauthorized, "token expired")
			}
			if err != nil {
				return errorJSON(ctx, http.StatusUnauthorized, "invalid token")
			}

			if claims.Role != role {
				return errorJSON(ctx, http.StatusForbidden, "insufficient role")
			}

			authed, err := s.accounts.GetByEmail(ctx.Request().Context(), claims.Subject)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errorJSON(ctx, http.StatusUnauthorized, "account no longer exists")
			}
			if err != nil {
				s.logger.Error("account resolution failed",
					"error", err,
					"method", ctx.Request().Method,
					"path", ctx.Request().URL.Path,
				)
				return errorJSON(ctx, http.StatusInternalServerError, "internal error")
			}

			if authed.Role() != role {
				return errorJSON(ctx, http.StatusForbidden, "insufficient role")
			}

			ctx.Set(accountContextKey, authed)
			return next(ctx)
		}
	}
}

// authedAccount returns the account stored by requireRole. A nil result is
// only possible on routes that skipped the middleware.
func authedAccount(ctx echo.Context) *account.Account {
	authed, _ := ctx.Get(accountContextKey).(*account.Account)
	return authed
}
