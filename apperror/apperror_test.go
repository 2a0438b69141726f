package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("bad input", nil), http.StatusBadRequest},
		{NewBadRequestError("bad request", nil), http.StatusBadRequest},
		{NewAuthError("no", nil), http.StatusUnauthorized},
		{NewNotFoundError("missing", nil), http.StatusNotFound},
		{NewConflictError("taken", nil), http.StatusConflict},
		{NewDatabaseError("db down", nil), http.StatusInternalServerError},
		{NewConfigError("bad config", nil), http.StatusInternalServerError},
		{NewInternalError("boom", nil), http.StatusInternalServerError},
		{NewAppError(UnknownError, "???", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.StatusCode(), tc.err.Message)
	}
}

func TestErrorStringAndUnwrap(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NewDatabaseError("failed to query", underlying)

	assert.Equal(t, "failed to query: connection refused", err.Error())
	assert.ErrorIs(t, err, underlying)

	bare := NewAuthError("invalid email or password", nil)
	assert.Equal(t, "invalid email or password", bare.Error())
}

func TestToResponseHidesUnderlyingError(t *testing.T) {
	err := NewDatabaseError("failed to query", errors.New("dsn=postgres://user:pw@host"))

	resp := err.ToResponse()
	assert.Equal(t, "failed to query", resp.Error)
	assert.NotContains(t, resp.Error, "pw")
}

func TestFromError(t *testing.T) {
	appErr, ok := FromError(NewConflictError("taken", nil))
	require.True(t, ok)
	assert.Equal(t, ConflictError, appErr.Type)

	// Wrapped AppErrors are still recognized.
	wrapped := fmt.Errorf("handler: %w", NewAuthError("no", nil))
	appErr, ok = FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, AuthError, appErr.Type)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsAuthError(NewAuthError("no", nil)))
	assert.True(t, IsNotFound(NewNotFoundError("missing", nil)))
	assert.True(t, IsValidationError(NewValidationError("bad", nil)))
	assert.True(t, IsConflictError(NewConflictError("taken", nil)))

	assert.False(t, IsAuthError(NewConflictError("taken", nil)))
	assert.False(t, IsConflictError(errors.New("plain")))
}
