package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/pkg/errs"
)

// statusFromError translates use case failures into HTTP status codes.
// Unrecognized errors fall through to 500 so internals never leak a
// misleading client-side code.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, commands.ErrRiderNotAssigned):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrParcelNotFound),
		errors.Is(err, commands.ErrSenderNotFound),
		errors.Is(err, commands.ErrRiderNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrEmailAlreadyTaken),
		errors.Is(err, commands.ErrParcelAlreadyAssigned),
		errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, commands.ErrSenderIsNotCustomer),
		errors.Is(err, commands.ErrAssigneeIsNotRider),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

// handleFailure maps a use case error to its HTTP response. Unexpected
// faults are logged with request context and masked behind a generic
// message so internal details stay out of the payload.
func (s *Server) handleFailure(ctx echo.Context, err error) error {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("unhandled failure",
			"error", err,
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
		)
		return errorJSON(ctx, status, "internal error")
	}
	return errorJSON(ctx, status, err.Error())
}

// handleBadRequest reports a request that failed binding or command
// construction. These never reach a handler, so the status is always 400.
func handleBadRequest(ctx echo.Context, err error) error {
	return errorJSON(ctx, http.StatusBadRequest, err.Error())
}
