package loanerrors

import (
	"net/http"

	"go-farmbook/internal/shared/apperror"
)

var (
	ErrLoanNotFound = apperror.New(
		apperror.CodeNotFound,
		"Loan not found",
		http.StatusNotFound,
	)
	ErrInvalidLoanID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid loan ID",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidRenewalPayment = apperror.New(
		apperror.CodeInvalidInput,
		"Renewal payment cannot be negative",
		http.StatusBadRequest,
	)
)
