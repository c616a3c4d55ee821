package applicationerrors

import (
	"job-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found.",
		http.StatusNotFound,
	)
	ErrEmployeeProfileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"User does not have an associated employee.",
		http.StatusBadRequest,
	)
	ErrJobNotActive = apperror.New(
		apperror.CodeInvalidInput,
		"The selected job is not active.",
		http.StatusBadRequest,
	)
	ErrJobDoesNotExist = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job - object does not exist.",
		http.StatusBadRequest,
	)
	ErrCoverLetterTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Cover letter must be under 1000 characters.",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to perform this action.",
		http.StatusForbidden,
	)
)
