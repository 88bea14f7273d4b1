package driver

import (
	"errors"
	"strings"

	drivererrors "go-farmbook/internal/driver/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueDriverConstraint = "uq_driver_employee"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return drivererrors.ErrDriverNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == uniqueDriverConstraint {
			return drivererrors.ErrDriverAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueDriverConstraint) {
		return drivererrors.ErrDriverAlreadyExists
	}

	return err
}
