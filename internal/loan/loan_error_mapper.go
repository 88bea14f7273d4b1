package loan

import (
	"errors"

	loanerrors "go-farmbook/internal/loan/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loanerrors.ErrLoanNotFound
	}
	return err
}
