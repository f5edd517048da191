package errors

import (
	"net/http"
	"testing"

	"morrison/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestWithDetails_KeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("username is required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrInvalidImage))
	assert.Equal(t, "username is required", detailed.Details())
	assert.Equal(t, "", ErrValidationFailed.Details(), "predefined error must not be mutated")

	again := detailed.WithDetails("password is required")
	assert.True(t, errors.Is(again, ErrValidationFailed))
}

func TestWrapMessage_PreservesAppError(t *testing.T) {
	err := ErrUsernameTaken.WrapMessage("create account")

	assert.True(t, errors.Is(err, ErrUsernameTaken))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "USERNAME_TAKEN", appErr.ErrorCode())
}

func TestTokenErrorsAreForbidden(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, ErrTokenInvalid.HTTPCode())
	assert.Equal(t, http.StatusForbidden, ErrTokenExpired.HTTPCode())
	assert.Equal(t, http.StatusUnauthorized, ErrTokenMissing.HTTPCode())
}
