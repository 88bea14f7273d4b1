package grouperrors

import (
	"net/http"

	"go-farmbook/internal/shared/apperror"
)

var (
	ErrGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Group not found",
		http.StatusNotFound,
	)
	ErrInvalidGroupID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid group ID",
		http.StatusBadRequest,
	)
	ErrNegativeWage = apperror.New(
		apperror.CodeInvalidInput,
		"Group wage cannot be negative",
		http.StatusBadRequest,
	)
)
