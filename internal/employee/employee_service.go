package employee

import (
	"context"
	"database/sql"
	"time"

	employeeerrors "go-farmbook/internal/employee/errors"
	"go-farmbook/internal/events"
	"go-farmbook/internal/finance"
	"go-farmbook/internal/messaging/kafka"
	"go-farmbook/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, farmID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, farmID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, farmID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, farmID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, farmID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
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
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("farm_id", farmID),
		zap.String("type", req.Type),
	)

	empType := finance.EmployeeType(req.Type)
	if !empType.Valid() {
		s.logger.Warn("create employee invalid type", zap.String("type", req.Type))
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeType
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	empl := &Employee{
		ID:     uuid.New(),
		FarmID: farmID,
		Name:   req.Name,
		Type:   empType,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, empl.ID.String(), events.ActionCreated); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, farmID string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("farm_id", farmID))
	empls, err := s.repo.FindAllByFarm(ctx, farmID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, farmID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	farmID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("farm_id", farmID),
		zap.String("employee_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empType := finance.EmployeeType(req.Type)
	if !empType.Valid() {
		s.logger.Warn("update employee invalid type", zap.String("type", req.Type))
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeType
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = req.Name
	empl.Type = empType

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionUpdated); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, farmID, id string) error {
	s.logger.Debug("delete employee requested",
		zap.String("farm_id", farmID),
		zap.String("employee_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, farmID, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionDeleted); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) recordChanged(ctx context.Context, tx *sql.Tx, farmID, id, action string) error {
	ev := events.NewRecordsChanged(farmID, events.CollectionEmployees, id, action, contextutil.GetRequestID(ctx))
	if err := kafka.EnqueueRecordsChanged(ctx, s.outbox, tx, ev); err != nil {
		s.logger.Error("employee outbox persist failed",
			zap.String("employee_id", id),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        empl.ID.String(),
		FarmID:    empl.FarmID,
		Name:      empl.Name,
		Type:      string(empl.Type),
		CreatedAt: empl.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
