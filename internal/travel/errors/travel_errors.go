package travelerrors

import (
	"net/http"

	"go-farmbook/internal/shared/apperror"
)

var (
	ErrTravelNotFound = apperror.New(
		apperror.CodeNotFound,
		"Travel not found",
		http.StatusNotFound,
	)
	ErrInvalidTravelID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid travel ID",
		http.StatusBadRequest,
	)
	ErrNegativeTons = apperror.New(
		apperror.CodeInvalidInput,
		"Tons cannot be negative",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Travel amounts cannot be negative",
		http.StatusBadRequest,
	)
)
