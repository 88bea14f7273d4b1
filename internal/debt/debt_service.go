package debt

import (
	"context"
	"database/sql"
	"time"

	debterrors "go-farmbook/internal/debt/errors"
	"go-farmbook/internal/events"
	"go-farmbook/internal/finance"
	"go-farmbook/internal/messaging/kafka"
	"go-farmbook/internal/shared/apperror"
	"go-farmbook/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=debt_service.go -destination=mock/debt_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, farmID string, req CreateDebtRequest) (DebtResponse, error)
	GetAll(ctx context.Context, farmID string) ([]DebtResponse, error)
	GetByID(ctx context.Context, farmID, id string) (DebtResponse, error)
	SetPaid(ctx context.Context, farmID, id string, paid bool) (DebtResponse, error)
	Delete(ctx context.Context, farmID, id string) error
	UnpaidTotal(ctx context.Context, farmID, employeeID string) (UnpaidTotalResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("debt.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("debt.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, farmID string, req CreateDebtRequest) (DebtResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create debt requested",
		zap.String("request_id", rid),
		zap.String("farm_id", farmID),
		zap.String("employee_id", req.EmployeeID),
	)
	if req.Amount <= 0 {
		return DebtResponse{}, debterrors.ErrInvalidAmount
	}
	if req.Date != "" {
		if _, ok := finance.ParseDate(req.Date); !ok {
			return DebtResponse{}, apperror.ErrInvalidDate
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DebtResponse{}, err
	}
	defer tx.Rollback()

	d := &Debt{
		ID:          uuid.New(),
		FarmID:      farmID,
		EmployeeID:  req.EmployeeID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	}

	if err := s.repo.WithTx(tx).Create(ctx, d); err != nil {
		s.logger.Error("create debt persist failed", zap.Error(err))
		return DebtResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, d.ID.String(), events.ActionCreated); err != nil {
		return DebtResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create debt commit failed", zap.String("request_id", rid), zap.Error(err))
		return DebtResponse{}, err
	}

	s.logger.Info("create debt success", zap.String("debt_id", d.ID.String()), zap.Float64("amount", d.Amount))
	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context, farmID string) ([]DebtResponse, error) {
	debts, err := s.repo.FindAllByFarm(ctx, farmID)
	if err != nil {
		s.logger.Error("get all debts failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]DebtResponse, len(debts))
	for i, d := range debts {
		res[i] = mapToResponse(d)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, farmID, id string) (DebtResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DebtResponse{}, debterrors.ErrInvalidDebtID
	}

	d, err := s.repo.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return DebtResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*d), nil
}

func (s *service) SetPaid(ctx context.Context, farmID, id string, paid bool) (DebtResponse, error) {
	s.logger.Debug("set debt paid requested", zap.String("debt_id", id), zap.Bool("paid", paid))
	if _, err := uuid.Parse(id); err != nil {
		return DebtResponse{}, debterrors.ErrInvalidDebtID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DebtResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.SetPaid(ctx, farmID, id, paid); err != nil {
		s.logger.Error("set debt paid failed", zap.String("debt_id", id), zap.Error(err))
		return DebtResponse{}, mapRepositoryError(err)
	}

	d, err := qtx.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return DebtResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionUpdated); err != nil {
		return DebtResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DebtResponse{}, err
	}

	s.logger.Info("set debt paid success", zap.String("debt_id", id), zap.Bool("paid", paid))
	return mapToResponse(*d), nil
}

func (s *service) Delete(ctx context.Context, farmID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return debterrors.ErrInvalidDebtID
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

	s.logger.Info("delete debt success", zap.String("debt_id", id))
	return nil
}

// UnpaidTotal is derived on read; it is never stored.
func (s *service) UnpaidTotal(ctx context.Context, farmID, employeeID string) (UnpaidTotalResponse, error) {
	debts, err := s.repo.FindByEmployee(ctx, farmID, employeeID)
	if err != nil {
		s.logger.Error("unpaid debt total failed", zap.String("employee_id", employeeID), zap.Error(err))
		return UnpaidTotalResponse{}, mapRepositoryError(err)
	}

	return UnpaidTotalResponse{
		EmployeeID: employeeID,
		Total:      finance.UnpaidDebtTotal(Records(debts), employeeID),
	}, nil
}

func (s *service) recordChanged(ctx context.Context, tx *sql.Tx, farmID, id, action string) error {
	ev := events.NewRecordsChanged(farmID, events.CollectionDebts, id, action, contextutil.GetRequestID(ctx))
	if err := kafka.EnqueueRecordsChanged(ctx, s.outbox, tx, ev); err != nil {
		s.logger.Error("debt outbox persist failed",
			zap.String("debt_id", id),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(d Debt) DebtResponse {
	return DebtResponse{
		ID:          d.ID.String(),
		EmployeeID:  d.EmployeeID,
		Amount:      d.Amount,
		Description: d.Description,
		Date:        d.Date,
		Paid:        d.Paid,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}
