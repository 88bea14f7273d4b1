package loan

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-farmbook/internal/events"
	"go-farmbook/internal/expense"
	"go-farmbook/internal/finance"
	loanerrors "go-farmbook/internal/loan/errors"
	"go-farmbook/internal/messaging/kafka"
	"go-farmbook/internal/shared/apperror"
	"go-farmbook/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExpenseLinker mirrors loan cash movements into other expenses.
//
//go:generate mockgen -source=loan_service.go -destination=mock/loan_service_mock.go -package=mock
type ExpenseLinker interface {
	CreateForLoan(ctx context.Context, farmID string, in expense.LoanExpense) (string, error)
	Delete(ctx context.Context, farmID, id string) error
	DeleteByLoan(ctx context.Context, farmID, loanID string) (int64, error)
}

type Service interface {
	Create(ctx context.Context, farmID string, req CreateLoanRequest) (LoanResponse, error)
	GetAll(ctx context.Context, farmID string) ([]LoanResponse, error)
	GetByID(ctx context.Context, farmID, id string) (LoanResponse, error)
	AddPayment(ctx context.Context, farmID, id string, req AddPaymentRequest) (LoanResponse, error)
	AddUsage(ctx context.Context, farmID, id string, req AddUsageRequest) (LoanResponse, error)
	Renew(ctx context.Context, farmID, id string, req RenewLoanRequest) (LoanResponse, error)
	Delete(ctx context.Context, farmID, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	expenses ExpenseLinker
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	expenses ExpenseLinker,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("loan.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("loan.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		expenses: expenses,
		outbox:   outbox,
		logger:   l,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, farmID string, req CreateLoanRequest) (LoanResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create loan requested",
		zap.String("request_id", rid),
		zap.String("farm_id", farmID),
		zap.Float64("total_amount", req.TotalAmount),
	)
	if !Money(req.TotalAmount).IsPositive() {
		return LoanResponse{}, loanerrors.ErrInvalidAmount
	}
	if err := validateDates(req.LoanDate, req.DueDate); err != nil {
		return LoanResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LoanResponse{}, err
	}
	defer tx.Rollback()

	l := NewLoan(farmID, req.Description, req.LoanDate, req.DueDate, req.TotalAmount, s.now())
	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		s.logger.Error("create loan persist failed", zap.Error(err))
		return LoanResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, l.ID.String(), events.ActionCreated); err != nil {
		return LoanResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create loan commit failed", zap.String("request_id", rid), zap.Error(err))
		return LoanResponse{}, err
	}

	s.logger.Info("create loan success", zap.String("loan_id", l.ID.String()))
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, farmID string) ([]LoanResponse, error) {
	loans, err := s.repo.FindAllByFarm(ctx, farmID)
	if err != nil {
		s.logger.Error("get all loans failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]LoanResponse, len(loans))
	for i, l := range loans {
		res[i] = mapToResponse(l)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, farmID, id string) (LoanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidLoanID
	}

	l, err := s.repo.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return LoanResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

// AddPayment mirrors the payment into an other expense first, then applies
// it under the loan's row lock. A failed mirror does not stop the payment;
// a failed payment removes the mirror again.
func (s *service) AddPayment(ctx context.Context, farmID, id string, req AddPaymentRequest) (LoanResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("add loan payment requested",
		zap.String("request_id", rid),
		zap.String("loan_id", id),
		zap.Float64("amount", req.Amount),
	)
	if _, err := uuid.Parse(id); err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidLoanID
	}
	if !Money(req.Amount).IsPositive() {
		return LoanResponse{}, loanerrors.ErrInvalidAmount
	}
	if err := validateDates(req.PaymentDate); err != nil {
		return LoanResponse{}, err
	}

	current, err := s.repo.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return LoanResponse{}, mapRepositoryError(err)
	}

	date := s.dateOrToday(req.PaymentDate)
	expenseID := s.linkExpense(ctx, farmID, expense.LoanExpense{
		LoanID:      id,
		Name:        "Loan payment",
		Description: fmt.Sprintf("Payment for loan: %s", current.Description),
		Amount:      req.Amount,
		Date:        date,
	})

	l, err := s.mutate(ctx, farmID, id, func(l *Loan) {
		l.ApplyPayment(req.Amount, date, expenseID, s.now())
	})
	if err != nil {
		s.unlinkExpense(ctx, farmID, expenseID)
		return LoanResponse{}, err
	}

	s.logger.Info("add loan payment success",
		zap.String("request_id", rid),
		zap.String("loan_id", id),
		zap.String("remaining_balance", l.RemainingBalance.StringFixed(2)),
		zap.String("status", string(l.Status())),
	)
	return mapToResponse(*l), nil
}

func (s *service) AddUsage(ctx context.Context, farmID, id string, req AddUsageRequest) (LoanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidLoanID
	}
	if !Money(req.Amount).IsPositive() {
		return LoanResponse{}, loanerrors.ErrInvalidAmount
	}
	if err := validateDates(req.UsageDate); err != nil {
		return LoanResponse{}, err
	}

	date := s.dateOrToday(req.UsageDate)
	l, err := s.mutate(ctx, farmID, id, func(l *Loan) {
		l.AddUsage(req.Description, req.Amount, date, s.now())
	})
	if err != nil {
		return LoanResponse{}, err
	}

	s.logger.Info("add loan usage success", zap.String("loan_id", id), zap.Float64("amount", req.Amount))
	return mapToResponse(*l), nil
}

func (s *service) Renew(ctx context.Context, farmID, id string, req RenewLoanRequest) (LoanResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("renew loan requested",
		zap.String("request_id", rid),
		zap.String("loan_id", id),
		zap.Float64("renewal_payment", req.RenewalPayment),
	)
	if _, err := uuid.Parse(id); err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidLoanID
	}
	if req.RenewalPayment < 0 {
		return LoanResponse{}, loanerrors.ErrInvalidRenewalPayment
	}
	if err := validateDates(req.NewDueDate); err != nil {
		return LoanResponse{}, err
	}

	current, err := s.repo.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return LoanResponse{}, mapRepositoryError(err)
	}

	var expenseID string
	if req.RenewalPayment > 0 {
		expenseID = s.linkExpense(ctx, farmID, expense.LoanExpense{
			LoanID:      id,
			Name:        "Loan renewal payment",
			Description: fmt.Sprintf("Renewal payment for loan: %s", current.Description),
			Amount:      req.RenewalPayment,
			Date:        s.dateOrToday(""),
		})
	}

	l, err := s.mutate(ctx, farmID, id, func(l *Loan) {
		l.Renew(req.NewDueDate, req.RenewalPayment, s.now())
	})
	if err != nil {
		s.unlinkExpense(ctx, farmID, expenseID)
		return LoanResponse{}, err
	}

	s.logger.Info("renew loan success",
		zap.String("request_id", rid),
		zap.String("loan_id", id),
		zap.String("due_date", l.DueDate),
		zap.String("remaining_balance", l.RemainingBalance.StringFixed(2)),
	)
	return mapToResponse(*l), nil
}

// Delete removes the loan's mirrored expenses first. Cleanup failures are
// logged and the loan is deleted anyway.
func (s *service) Delete(ctx context.Context, farmID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return loanerrors.ErrInvalidLoanID
	}

	if s.expenses != nil {
		if n, err := s.expenses.DeleteByLoan(ctx, farmID, id); err != nil {
			s.logger.Warn("delete loan expense cleanup failed",
				zap.String("loan_id", id),
				zap.Error(err),
			)
		} else {
			s.logger.Debug("delete loan expense cleanup", zap.String("loan_id", id), zap.Int64("deleted", n))
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, farmID, id); err != nil {
		s.logger.Error("delete loan failed", zap.String("loan_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionDeleted); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete loan success", zap.String("loan_id", id))
	return nil
}

// mutate runs one read-modify-write of the loan inside a transaction that
// holds its row lock.
func (s *service) mutate(ctx context.Context, farmID, id string, apply func(*Loan)) (*Loan, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("loan begin tx failed", zap.String("loan_id", id), zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindForUpdate(ctx, farmID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	apply(l)

	if err := qtx.Save(ctx, l); err != nil {
		s.logger.Error("loan persist failed", zap.String("loan_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionUpdated); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("loan commit failed", zap.String("loan_id", id), zap.Error(err))
		return nil, err
	}
	return l, nil
}

// linkExpense returns the new expense id, or "" when the mirror could not
// be written.
func (s *service) linkExpense(ctx context.Context, farmID string, in expense.LoanExpense) string {
	if s.expenses == nil {
		return ""
	}
	id, err := s.expenses.CreateForLoan(ctx, farmID, in)
	if err != nil {
		s.logger.Warn("linked expense create failed, continuing without it",
			zap.String("loan_id", in.LoanID),
			zap.Float64("amount", in.Amount),
			zap.Error(err),
		)
		return ""
	}
	return id
}

func (s *service) unlinkExpense(ctx context.Context, farmID, expenseID string) {
	if s.expenses == nil || expenseID == "" {
		return
	}
	if err := s.expenses.Delete(ctx, farmID, expenseID); err != nil {
		s.logger.Error("linked expense rollback failed",
			zap.String("expense_id", expenseID),
			zap.Error(err),
		)
	}
}

func (s *service) recordChanged(ctx context.Context, tx *sql.Tx, farmID, id, action string) error {
	ev := events.NewRecordsChanged(farmID, events.CollectionLoans, id, action, contextutil.GetRequestID(ctx))
	if err := kafka.EnqueueRecordsChanged(ctx, s.outbox, tx, ev); err != nil {
		s.logger.Error("loan outbox persist failed",
			zap.String("loan_id", id),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) dateOrToday(date string) string {
	if date != "" {
		return date
	}
	return s.now().Format(finance.DateLayout)
}

func validateDates(dates ...string) error {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, ok := finance.ParseDate(d); !ok {
			return apperror.ErrInvalidDate
		}
	}
	return nil
}

func mapToResponse(l Loan) LoanResponse {
	payments := l.Payments
	if payments == nil {
		payments = []Payment{}
	}
	usages := l.Usages
	if usages == nil {
		usages = []Usage{}
	}

	return LoanResponse{
		ID:                l.ID.String(),
		Description:       l.Description,
		LoanDate:          l.LoanDate,
		DueDate:           l.DueDate,
		TotalAmount:       l.TotalAmount.InexactFloat64(),
		RemainingBalance:  l.RemainingBalance.InexactFloat64(),
		TotalPaidCurrent:  l.TotalPaidCurrent.InexactFloat64(),
		TotalPaidLifetime: l.TotalPaidLifetime.InexactFloat64(),
		TotalUsed:         l.TotalUsed().InexactFloat64(),
		Paid:              l.Paid,
		Status:            l.Status(),
		Payments:          payments,
		Usages:            usages,
		CreatedAt:         l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         l.UpdatedAt.Format(time.RFC3339),
	}
}
