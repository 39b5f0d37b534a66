package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/sneaker-inventory/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *appErrors.AppError
		code   string
		status int
	}{
		{"Validation", appErrors.ValidationError("bad"), appErrors.ErrCodeValidation, http.StatusBadRequest},
		{"NotFound", appErrors.NotFoundError("missing"), appErrors.ErrCodeNotFound, http.StatusNotFound},
		{"Conflict", appErrors.ConflictError("dup"), appErrors.ErrCodeConflict, http.StatusConflict},
		{"Unauthorized", appErrors.UnauthorizedError("nope"), appErrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"Storage", appErrors.StorageError("disk"), appErrors.ErrCodeStorage, http.StatusInternalServerError},
		{"RateLimit", appErrors.TooManyRequestsError("slow down"), appErrors.ErrCodeRateLimit, http.StatusTooManyRequests},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.status, tc.err.StatusCode)
		})
	}
}

func TestIsAppError(t *testing.T) {
	t.Run("Wrapped AppError", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := fmt.Errorf("outer: %w", appErrors.StorageError("Failed to save").WithError(cause))

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStorage, appErr.Code)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Plain error", func(t *testing.T) {
		appErr, ok := appErrors.IsAppError(errors.New("plain"))
		assert.False(t, ok)
		assert.Nil(t, appErr)
	})

	t.Run("Detail", func(t *testing.T) {
		err := appErrors.AddValidationError("price", "must be greater than 0").WithDetail("price=0")
		assert.Equal(t, "Invalid field 'price': must be greater than 0", err.Error())
		assert.Equal(t, "price=0", err.Detail)
	})
}
