package apperror_test

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-leaveai/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type policyForm struct {
	WeeklyOffType string `json:"weekly_off_type" validate:"required,oneof=SUNDAY_ONLY SAT_SUN"`
	Comments      string `json:"comments" validate:"max=5"`
}

func validate(t *testing.T, in policyForm) error {
	t.Helper()
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	err := v.Struct(in)
	require.Error(t, err)
	return err
}

func TestMapValidationError(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := apperror.MapValidationError(validate(t, policyForm{}))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Weekly Off Type is required", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})

	t.Run("oneof", func(t *testing.T) {
		err := apperror.MapValidationError(validate(t, policyForm{WeeklyOffType: "FRIDAY"}))
		assert.Equal(t, "Weekly Off Type must be one of: SUNDAY_ONLY, SAT_SUN", err.Error())
	})

	t.Run("max", func(t *testing.T) {
		err := apperror.MapValidationError(validate(t, policyForm{WeeklyOffType: "SAT_SUN", Comments: "too long"}))
		assert.Equal(t, "Comments must be at most 5 characters", err.Error())
	})

	t.Run("non validation error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("unexpected EOF"))
		assert.Equal(t, "Invalid input", err.Error())
	})
}
