package validator

import (
	"testing"

	domainerrors "morrison/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `json:"username" validate:"required"`
	Flag     string `json:"flag" validate:"oneof=banned disabled"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Username: "ana", Flag: "banned"}))

	err := v.Validate(&sample{Flag: "admin"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "username is required")
	assert.Contains(t, appErr.Details(), "flag must be one of: banned, disabled")
}
