package drivererrors

import (
	"net/http"

	"go-farmbook/internal/shared/apperror"
)

var (
	ErrDriverNotFound = apperror.New(
		apperror.CodeNotFound,
		"Driver not found",
		http.StatusNotFound,
	)
	ErrDriverAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"This employee already has a driver wage",
		http.StatusConflict,
	)
	ErrInvalidDriverID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid driver ID",
		http.StatusBadRequest,
	)
	ErrNegativeWage = apperror.New(
		apperror.CodeInvalidInput,
		"Driver wage cannot be negative",
		http.StatusBadRequest,
	)
)
