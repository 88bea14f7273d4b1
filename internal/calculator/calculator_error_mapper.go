package calculator

import (
	"errors"

	calculatorerrors "go-farmbook/internal/calculator/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return calculatorerrors.ErrComputationNotFound
	}
	return err
}
