package debt

import (
	"errors"

	debterrors "go-farmbook/internal/debt/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return debterrors.ErrDebtNotFound
	}
	return err
}
