package driver

import (
	"context"
	"database/sql"
	"errors"
	"time"

	drivererrors "go-farmbook/internal/driver/errors"
	"go-farmbook/internal/events"
	"go-farmbook/internal/messaging/kafka"
	"go-farmbook/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=driver_service.go -destination=mock/driver_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, farmID string, req CreateDriverRequest) (DriverResponse, error)
	GetAll(ctx context.Context, farmID string) ([]DriverResponse, error)
	GetByID(ctx context.Context, farmID, id string) (DriverResponse, error)
	GetByEmployee(ctx context.Context, farmID, employeeID string) (DriverResponse, error)
	Update(ctx context.Context, farmID, id string, req UpdateDriverRequest) (DriverResponse, error)
	Delete(ctx context.Context, farmID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("driver.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("driver.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	farmID string,
	req CreateDriverRequest,
) (DriverResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create driver requested",
		zap.String("request_id", rid),
		zap.String("farm_id", farmID),
		zap.String("employee_id", req.EmployeeID),
	)
	if req.Wage < 0 {
		return DriverResponse{}, drivererrors.ErrNegativeWage
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DriverResponse{}, err
	}
	defer tx.Rollback()

	d := &Driver{
		ID:         uuid.New(),
		FarmID:     farmID,
		EmployeeID: req.EmployeeID,
		Wage:       req.Wage,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, d); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, drivererrors.ErrDriverAlreadyExists) {
			s.logger.Warn("create driver duplicate employee", zap.String("employee_id", req.EmployeeID))
		} else {
			s.logger.Error("create driver persist failed", zap.Error(err))
		}
		return DriverResponse{}, mapped
	}

	created, err := qtx.FindByIDAndFarm(ctx, farmID, d.ID.String())
	if err != nil {
		return DriverResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, d.ID.String(), events.ActionCreated); err != nil {
		return DriverResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create driver commit failed", zap.String("request_id", rid), zap.Error(err))
		return DriverResponse{}, err
	}

	s.logger.Info("create driver success", zap.String("driver_id", d.ID.String()))
	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context, farmID string) ([]DriverResponse, error) {
	drivers, err := s.repo.FindAllByFarm(ctx, farmID)
	if err != nil {
		s.logger.Error("get all drivers failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		res[i] = mapToResponse(d)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, farmID, id string) (DriverResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DriverResponse{}, drivererrors.ErrInvalidDriverID
	}

	d, err := s.repo.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return DriverResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*d), nil
}

// GetByEmployee returns the employee's driver wage. An employee without a
// driver record gets an implicit zero wage rather than an error.
func (s *service) GetByEmployee(ctx context.Context, farmID, employeeID string) (DriverResponse, error) {
	d, err := s.repo.FindByEmployee(ctx, farmID, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DriverResponse{EmployeeID: employeeID}, nil
	}
	if err != nil {
		s.logger.Error("get driver by employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return DriverResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*d), nil
}

func (s *service) Update(
	ctx context.Context,
	farmID, id string,
	req UpdateDriverRequest,
) (DriverResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DriverResponse{}, drivererrors.ErrInvalidDriverID
	}
	if req.Wage < 0 {
		return DriverResponse{}, drivererrors.ErrNegativeWage
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DriverResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	d, err := qtx.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return DriverResponse{}, mapRepositoryError(err)
	}

	d.Wage = req.Wage
	if err := qtx.Update(ctx, d); err != nil {
		s.logger.Error("update driver persist failed", zap.Error(err))
		return DriverResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionUpdated); err != nil {
		return DriverResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DriverResponse{}, err
	}

	s.logger.Info("update driver success", zap.String("driver_id", id), zap.Float64("wage", d.Wage))
	return mapToResponse(*d), nil
}

func (s *service) Delete(ctx context.Context, farmID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return drivererrors.ErrInvalidDriverID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, farmID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionDeleted); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete driver success", zap.String("driver_id", id))
	return nil
}

func (s *service) recordChanged(ctx context.Context, tx *sql.Tx, farmID, id, action string) error {
	ev := events.NewRecordsChanged(farmID, events.CollectionDrivers, id, action, contextutil.GetRequestID(ctx))
	if err := kafka.EnqueueRecordsChanged(ctx, s.outbox, tx, ev); err != nil {
		s.logger.Error("driver outbox persist failed",
			zap.String("driver_id", id),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(d Driver) DriverResponse {
	res := DriverResponse{
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,
		Wage:         d.Wage,
	}
	if d.ID != uuid.Nil {
		res.ID = d.ID.String()
		res.CreatedAt = d.CreatedAt.Format(time.RFC3339)
	}
	return res
}
