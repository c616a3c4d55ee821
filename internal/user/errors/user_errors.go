package usererrors

import (
	"net/http"

	"job-portal/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found.",
		http.StatusNotFound,
	)

	ErrCannotDeactivateSelf = apperror.New(
		apperror.CodeInvalidInput,
		"You cannot deactivate your own account.",
		http.StatusBadRequest,
	)

	ErrWeakPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Password must contain at least eight characters with a digit, an uppercase letter, and a lowercase letter.",
		http.StatusBadRequest,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to perform this action.",
		http.StatusForbidden,
	)
)
