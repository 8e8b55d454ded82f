package usererrors

import (
	"net/http"

	"go-orgadmin/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrEmailExists = apperror.New(
		apperror.CodeConflict,
		"The user with this email already exists in the system",
		http.StatusBadRequest,
	)
	ErrNotSuperuser = apperror.New(
		apperror.CodeForbidden,
		"The user doesn't have enough privileges",
		http.StatusForbidden,
	)
	ErrDeleteSelf = apperror.New(
		apperror.CodeForbidden,
		"Super users are not allowed to delete themselves",
		http.StatusForbidden,
	)
	ErrIncorrectPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Incorrect password",
		http.StatusBadRequest,
	)
	ErrSamePassword = apperror.New(
		apperror.CodeInvalidInput,
		"New password cannot be the same as the current one",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusUnprocessableEntity,
	)
)
