package apperror

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and status", func(t *testing.T) {
		err := New(CodeInvalidState, "already checked in today", http.StatusConflict)
		got := ToHTTP(err)
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, CodeInvalidState, got.Code)
		assert.Equal(t, "already checked in today", got.Message)
	})

	t.Run("wrapped app error is found", func(t *testing.T) {
		err := Persistence(errors.New("connection reset"))
		got := ToHTTP(errors.Join(errors.New("outer"), err))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "connection reset")
	})

	t.Run("unknown error hides its text", func(t *testing.T) {
		got := ToHTTP(errors.New("pq: password authentication failed"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestIs(t *testing.T) {
	assert.True(t, Is(ErrNotFound, CodeNotFound))
	assert.False(t, Is(ErrNotFound, CodeConflict))
	assert.False(t, Is(errors.New("x"), CodeNotFound))
}

func TestMapValidationError(t *testing.T) {
	type req struct {
		EmployeeID string `json:"employee_id" validate:"required"`
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string { return fld.Tag.Get("json") })

	err := MapValidationError(v.Struct(req{}))
	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, CodeInvalidInput, appErr.Code)
	assert.Equal(t, "Employee Id is required", appErr.Message)

	err = MapValidationError(errors.New("unexpected EOF"))
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid input", appErr.Message)
}

func TestAppError_WithCauseStillMatchesSentinel(t *testing.T) {
	sentinel := New(CodeInvalidState, "no active pause", http.StatusConflict)
	err := sentinel.WithCause(errors.New("0 rows"))

	assert.True(t, errors.Is(err, sentinel))
	assert.Contains(t, err.Error(), "0 rows")
	assert.Nil(t, sentinel.Err)
}
