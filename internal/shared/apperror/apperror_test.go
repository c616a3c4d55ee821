package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"job-portal/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", apperror.ErrForbidden)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusForbidden, httpErr.Status)
		assert.Equal(t, apperror.CodeForbidden, httpErr.Code)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})
}

func TestWithDetails_StillMatchesSentinel(t *testing.T) {
	err := apperror.ErrInvalidInput.WithDetails(map[string]string{"email": "bad"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Nil(t, apperror.ErrInvalidInput.Details)
}

type coverLetterInput struct {
	CoverLetter string `json:"cover_letter" validate:"max=5"`
	Job         string `json:"job" validate:"required"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	err := v.Struct(coverLetterInput{CoverLetter: "too long text"})
	mapped := apperror.MapValidationError(err)

	httpErr := apperror.ToHTTP(mapped)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	details, ok := httpErr.Details.(map[string]string)
	assert.True(t, ok)
	assert.Equal(t, "Cover Letter must be at most 5 characters", details["cover_letter"])
	assert.Equal(t, "Job is required", details["job"])
}

type salaryInput struct {
	Salary float64 `json:"salary" validate:"lte=99999999.99"`
	Site   string  `json:"site" validate:"hostname"`
}

func TestMapValidationError_BoundsAndFallback(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	err := v.Struct(salaryInput{Salary: 123456789012.34, Site: "not a host!"})
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Salary must be less than or equal to 99999999.99", httpErr.Message)

	details := httpErr.Details.(map[string]string)
	assert.Equal(t, apperror.InvalidField("Site").Message, details["site"])
	assert.Equal(t, "Site is invalid", details["site"])
}
