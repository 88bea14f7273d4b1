package group

import (
	"errors"

	grouperrors "go-farmbook/internal/group/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return grouperrors.ErrGroupNotFound
	}
	return err
}
