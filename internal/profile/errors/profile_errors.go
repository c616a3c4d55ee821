package profileerrors

import (
	"job-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Profile not found.",
		http.StatusNotFound,
	)
	ErrRecruiterNotFound = apperror.New(
		apperror.CodeNotFound,
		"Recruiter profile not found.",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee profile not found.",
		http.StatusNotFound,
	)
	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A profile already exists for this user.",
		http.StatusConflict,
	)
)
