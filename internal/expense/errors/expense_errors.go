package expenseerrors

import (
	"net/http"

	"go-farmbook/internal/shared/apperror"
)

var (
	ErrExpenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Expense not found",
		http.StatusNotFound,
	)
	ErrInvalidExpenseID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid expense ID",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Expense amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrLoanManaged = apperror.New(
		apperror.CodeInvalidState,
		"Expense is managed by its loan",
		http.StatusConflict,
	)
)
