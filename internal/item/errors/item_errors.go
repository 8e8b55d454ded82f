package itemerrors

import (
	"net/http"

	"go-orgadmin/internal/shared/apperror"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found",
		http.StatusNotFound,
	)
	ErrInvalidItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid item ID",
		http.StatusUnprocessableEntity,
	)
)
