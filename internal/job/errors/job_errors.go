package joberrors

import (
	"job-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found.",
		http.StatusNotFound,
	)
	ErrRecruiterProfileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Recruiter profile not found.",
		http.StatusBadRequest,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must be a non-negative decimal value.",
		http.StatusBadRequest,
	)
	ErrSalaryTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Ensure that there are no more than 10 digits in total.",
		http.StatusBadRequest,
	)
	ErrSalaryPrecision = apperror.New(
		apperror.CodeInvalidInput,
		"Ensure that there are no more than 2 decimal places.",
		http.StatusBadRequest,
	)
	ErrInvalidDeadline = apperror.New(
		apperror.CodeInvalidInput,
		"Application deadline must be a date in YYYY-MM-DD format.",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to perform this action.",
		http.StatusForbidden,
	)
)
