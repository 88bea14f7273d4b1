package debterrors

import (
	"net/http"

	"go-farmbook/internal/shared/apperror"
)

var (
	ErrDebtNotFound = apperror.New(
		apperror.CodeNotFound,
		"Debt not found",
		http.StatusNotFound,
	)
	ErrInvalidDebtID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid debt ID",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Debt amount must be greater than zero",
		http.StatusBadRequest,
	)
)
