package http

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/pkg/errs"
)

func TestStatusFromError(t *testing.T) {
	cases := map[string]struct {
		err    error
		status int
	}{
		"invalid credentials": {queries.ErrInvalidCredentials, http.StatusUnauthorized},
		"rider not assigned":  {commands.ErrRiderNotAssigned, http.StatusForbidden},
		"parcel not found":    {commands.ErrParcelNotFound, http.StatusNotFound},
		"sender not found":    {commands.ErrSenderNotFound, http.StatusNotFound},
		"rider not found":     {commands.ErrRiderNotFound, http.StatusNotFound},
		"object not found":    {errs.NewObjectNotFoundError("id", "x"), http.StatusNotFound},
		"email taken":         {commands.ErrEmailAlreadyTaken, http.StatusConflict},
		"already assigned":    {commands.ErrParcelAlreadyAssigned, http.StatusConflict},
		"already exists":      {errs.NewAlreadyExistsError("email", "x"), http.StatusConflict},
		"sender not customer": {commands.ErrSenderIsNotCustomer, http.StatusBadRequest},
		"assignee not rider":  {commands.ErrAssigneeIsNotRider, http.StatusBadRequest},
		"value required":      {errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		"value invalid":       {errs.NewValueIsInvalidError("weight"), http.StatusBadRequest},
		"unknown":             {errors.New("boom"), http.StatusInternalServerError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.status, statusFromError(tc.err))
		})
	}
}

func TestStatusFromError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", commands.ErrEmailAlreadyTaken)
	assert.Equal(t, http.StatusConflict, statusFromError(wrapped))
}

func newFailureContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/staff/assignments", nil)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestHandleFailure_LogsUnexpectedFaults(t *testing.T) {
	var logged bytes.Buffer
	server := &Server{logger: slog.New(slog.NewTextHandler(&logged, nil))}
	ctx, recorder := newFailureContext(t)

	require.NoError(t, server.handleFailure(ctx, errors.New("disk full")))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "internal error")
	assert.NotContains(t, recorder.Body.String(), "disk full")

	assert.Contains(t, logged.String(), "disk full")
	assert.Contains(t, logged.String(), "/api/v1/staff/assignments")
	assert.Contains(t, logged.String(), http.MethodPost)
}

func TestHandleFailure_ExpectedErrorsAreNotLogged(t *testing.T) {
	var logged bytes.Buffer
	server := &Server{logger: slog.New(slog.NewTextHandler(&logged, nil))}
	ctx, recorder := newFailureContext(t)

	require.NoError(t, server.handleFailure(ctx, commands.ErrParcelAlreadyAssigned))

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), commands.ErrParcelAlreadyAssigned.Error())
	assert.Empty(t, logged.String())
}
