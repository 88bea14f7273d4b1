package travel

import (
	"errors"

	travelerrors "go-farmbook/internal/travel/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return travelerrors.ErrTravelNotFound
	}
	return err
}
