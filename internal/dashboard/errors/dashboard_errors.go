package dashboarderrors

import (
	"net/http"

	"go-farmbook/internal/shared/apperror"
)

var (
	ErrInvalidDistribution = apperror.New(
		apperror.CodeInvalidInput,
		"Distribution must be one of land, destination, group",
		http.StatusBadRequest,
	)
	ErrGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Group not found",
		http.StatusNotFound,
	)
)
