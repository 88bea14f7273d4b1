package calculatorerrors

import (
	"net/http"

	"go-farmbook/internal/shared/apperror"
)

var (
	ErrComputationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Computation not found",
		http.StatusNotFound,
	)
	ErrInvalidComputationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid computation ID",
		http.StatusBadRequest,
	)
	ErrNegativeEntry = apperror.New(
		apperror.CodeInvalidInput,
		"Entry quantities and prices cannot be negative",
		http.StatusBadRequest,
	)
	ErrEmptyComputation = apperror.New(
		apperror.CodeInvalidInput,
		"At least one sugarcane or molasses entry is required",
		http.StatusBadRequest,
	)
)
