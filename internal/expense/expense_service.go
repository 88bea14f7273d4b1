package expense

import (
	"context"
	"database/sql"
	"time"

	"go-farmbook/internal/events"
	expenseerrors "go-farmbook/internal/expense/errors"
	"go-farmbook/internal/finance"
	"go-farmbook/internal/messaging/kafka"
	"go-farmbook/internal/shared/apperror"
	"go-farmbook/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, farmID string, req CreateExpenseRequest) (ExpenseResponse, error)
	GetAll(ctx context.Context, farmID string) ([]ExpenseResponse, error)
	GetByID(ctx context.Context, farmID, id string) (ExpenseResponse, error)
	Update(ctx context.Context, farmID, id string, req UpdateExpenseRequest) (ExpenseResponse, error)
	Delete(ctx context.Context, farmID, id string) error
	CreateForLoan(ctx context.Context, farmID string, in LoanExpense) (string, error)
	DeleteByLoan(ctx context.Context, farmID, loanID string) (int64, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, farmID string, req CreateExpenseRequest) (ExpenseResponse, error) {
	s.logger.Debug("create expense requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("farm_id", farmID),
	)
	if err := validateAmountAndDate(req.Amount, req.Date); err != nil {
		return ExpenseResponse{}, err
	}

	e := &OtherExpense{
		ID:          uuid.New(),
		FarmID:      farmID,
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	}
	if err := s.create(ctx, e); err != nil {
		return ExpenseResponse{}, err
	}

	s.logger.Info("create expense success", zap.String("expense_id", e.ID.String()))
	return mapToResponse(*e), nil
}

// CreateForLoan writes an expense tagged with in.LoanID and returns its id.
func (s *service) CreateForLoan(ctx context.Context, farmID string, in LoanExpense) (string, error) {
	loanID := in.LoanID
	e := &OtherExpense{
		ID:            uuid.New(),
		FarmID:        farmID,
		Name:          in.Name,
		Description:   in.Description,
		Amount:        in.Amount,
		Date:          in.Date,
		RelatedLoanID: &loanID,
	}
	if err := s.create(ctx, e); err != nil {
		return "", err
	}

	s.logger.Info("loan expense created",
		zap.String("expense_id", e.ID.String()),
		zap.String("loan_id", loanID),
		zap.Float64("amount", in.Amount),
	)
	return e.ID.String(), nil
}

func (s *service) create(ctx context.Context, e *OtherExpense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, e); err != nil {
		s.logger.Error("create expense persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, e.FarmID, e.ID.String(), events.ActionCreated); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetAll(ctx context.Context, farmID string) ([]ExpenseResponse, error) {
	expenses, err := s.repo.FindAllByFarm(ctx, farmID)
	if err != nil {
		s.logger.Error("get all expenses failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, farmID, id string) (ExpenseResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExpenseResponse{}, expenseerrors.ErrInvalidExpenseID
	}

	e, err := s.repo.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return ExpenseResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, farmID, id string, req UpdateExpenseRequest) (ExpenseResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExpenseResponse{}, expenseerrors.ErrInvalidExpenseID
	}
	if err := validateAmountAndDate(req.Amount, req.Date); err != nil {
		return ExpenseResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	e, err := qtx.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return ExpenseResponse{}, mapRepositoryError(err)
	}
	if e.RelatedLoanID != nil {
		s.logger.Warn("update expense rejected, loan managed",
			zap.String("expense_id", id),
			zap.String("loan_id", *e.RelatedLoanID),
		)
		return ExpenseResponse{}, expenseerrors.ErrLoanManaged
	}

	e.Name = req.Name
	e.Description = req.Description
	e.Amount = req.Amount
	e.Date = req.Date

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update expense persist failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionUpdated); err != nil {
		return ExpenseResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ExpenseResponse{}, err
	}

	s.logger.Info("update expense success", zap.String("expense_id", id))
	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, farmID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return expenseerrors.ErrInvalidExpenseID
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

	s.logger.Info("delete expense success", zap.String("expense_id", id))
	return nil
}

func (s *service) DeleteByLoan(ctx context.Context, farmID, loanID string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	n, err := s.repo.WithTx(tx).DeleteByLoan(ctx, farmID, loanID)
	if err != nil {
		s.logger.Error("delete loan expenses failed", zap.String("loan_id", loanID), zap.Error(err))
		return 0, err
	}

	if n > 0 {
		if err := s.recordChanged(ctx, tx, farmID, loanID, events.ActionDeleted); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Info("delete loan expenses success", zap.String("loan_id", loanID), zap.Int64("deleted", n))
	return n, nil
}

func (s *service) recordChanged(ctx context.Context, tx *sql.Tx, farmID, id, action string) error {
	ev := events.NewRecordsChanged(farmID, events.CollectionExpenses, id, action, contextutil.GetRequestID(ctx))
	if err := kafka.EnqueueRecordsChanged(ctx, s.outbox, tx, ev); err != nil {
		s.logger.Error("expense outbox persist failed",
			zap.String("record_id", id),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func validateAmountAndDate(amount float64, date string) error {
	if amount <= 0 {
		return expenseerrors.ErrInvalidAmount
	}
	if date != "" {
		if _, ok := finance.ParseDate(date); !ok {
			return apperror.ErrInvalidDate
		}
	}
	return nil
}

func mapToResponse(e OtherExpense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID.String(),
		Name:          e.Name,
		Description:   e.Description,
		Amount:        e.Amount,
		Date:          e.Date,
		RelatedLoanID: e.RelatedLoanID,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}
