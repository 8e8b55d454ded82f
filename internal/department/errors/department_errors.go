package departmenterrors

import (
	"net/http"

	"go-orgadmin/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	// The original API surfaces uniqueness conflicts as 400.
	ErrDepartmentCodeExists = apperror.New(
		apperror.CodeConflict,
		"Department with this code already exists",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusUnprocessableEntity,
	)
)
