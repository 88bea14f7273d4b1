package loan_test

import (
	"context"
	"errors"
	"testing"

	"go-farmbook/internal/expense"
	"go-farmbook/internal/loan"
	loanerrors "go-farmbook/internal/loan/errors"
	loanMock "go-farmbook/internal/loan/mock"
	kafkaMock "go-farmbook/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	repo     *loanMock.MockRepository
	expenses *loanMock.MockExpenseLinker
	outbox   *kafkaMock.MockOutboxRepository
	service  loan.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		sqlMock:  sqlMock,
		repo:     loanMock.NewMockRepository(ctrl),
		expenses: loanMock.NewMockExpenseLinker(ctrl),
		outbox:   kafkaMock.NewMockOutboxRepository(ctrl),
	}
	deps.service = loan.NewService(db, deps.repo, deps.expenses, deps.outbox)
	return deps
}

// expectLockedWrite sets up one successful read-modify-write of l and
// captures what gets saved.
func (d *serviceDeps) expectLockedWrite(l *loan.Loan, saved **loan.Loan) {
	d.sqlMock.ExpectBegin()
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().FindForUpdate(gomock.Any(), "farm-1", l.ID.String()).Return(l, nil)
	d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, got *loan.Loan) error {
			*saved = got
			return nil
		})
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	d.sqlMock.ExpectCommit()
}

func loanCopy(l *loan.Loan) *loan.Loan {
	cp := *l
	return &cp
}

func TestLoanService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(context.Background(), "farm-1", loan.CreateLoanRequest{
			Description: "tractor", LoanDate: "2026-01-01", DueDate: "2026-12-31", TotalAmount: 5000,
		})

		require.NoError(t, err)
		assert.Equal(t, 5000.0, resp.RemainingBalance)
		assert.Equal(t, loan.StatusActive, resp.Status)
		assert.NotNil(t, resp.Payments)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("bad due date", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(context.Background(), "farm-1", loan.CreateLoanRequest{TotalAmount: 10, DueDate: "31-12-2026"})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLoanService_AddPayment(t *testing.T) {
	t.Run("links the mirror expense to the payment", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := newLoan(5000)
		deps.repo.EXPECT().FindByIDAndFarm(gomock.Any(), "farm-1", l.ID.String()).Return(loanCopy(l), nil)
		deps.expenses.EXPECT().
			CreateForLoan(gomock.Any(), "farm-1", gomock.Any()).
			DoAndReturn(func(ctx context.Context, farmID string, in expense.LoanExpense) (string, error) {
				assert.Equal(t, l.ID.String(), in.LoanID)
				assert.Equal(t, 1000.0, in.Amount)
				assert.Equal(t, "2026-02-01", in.Date)
				return "exp-1", nil
			})
		var saved *loan.Loan
		deps.expectLockedWrite(l, &saved)

		resp, err := deps.service.AddPayment(context.Background(), "farm-1", l.ID.String(), loan.AddPaymentRequest{
			Amount: 1000, PaymentDate: "2026-02-01",
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, 4000.0, resp.RemainingBalance)
		require.Len(t, resp.Payments, 1)
		assert.Equal(t, "exp-1", resp.Payments[0].OtherExpenseID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("final centavo payment settles the loan", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := newLoan(1000.07)
		l.ApplyPayment(1000.01, "2026-02-01", "", now)
		deps.repo.EXPECT().FindByIDAndFarm(gomock.Any(), "farm-1", l.ID.String()).Return(loanCopy(l), nil)
		deps.expenses.EXPECT().CreateForLoan(gomock.Any(), "farm-1", gomock.Any()).Return("exp-2", nil)
		var saved *loan.Loan
		deps.expectLockedWrite(l, &saved)

		resp, err := deps.service.AddPayment(context.Background(), "farm-1", l.ID.String(), loan.AddPaymentRequest{
			Amount: 0.06, PaymentDate: "2026-02-02",
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.True(t, saved.RemainingBalance.IsZero())
		assert.True(t, saved.Paid)
		assert.Equal(t, 0.0, resp.RemainingBalance)
		assert.Equal(t, 1000.07, resp.TotalPaidCurrent)
		assert.Equal(t, loan.StatusPaid, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("mirror failure does not block the payment", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := newLoan(5000)
		deps.repo.EXPECT().FindByIDAndFarm(gomock.Any(), "farm-1", l.ID.String()).Return(loanCopy(l), nil)
		deps.expenses.EXPECT().CreateForLoan(gomock.Any(), "farm-1", gomock.Any()).Return("", errors.New("expenses down"))
		var saved *loan.Loan
		deps.expectLockedWrite(l, &saved)

		resp, err := deps.service.AddPayment(context.Background(), "farm-1", l.ID.String(), loan.AddPaymentRequest{Amount: 5000})

		require.NoError(t, err)
		assert.True(t, resp.Paid)
		assert.Equal(t, loan.StatusPaid, resp.Status)
		require.Len(t, resp.Payments, 1)
		assert.Empty(t, resp.Payments[0].OtherExpenseID)
		assert.NotEmpty(t, resp.Payments[0].PaymentDate)
	})

	t.Run("failed write removes the mirror expense", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := newLoan(5000)
		deps.repo.EXPECT().FindByIDAndFarm(gomock.Any(), "farm-1", l.ID.String()).Return(loanCopy(l), nil)
		deps.expenses.EXPECT().CreateForLoan(gomock.Any(), "farm-1", gomock.Any()).Return("exp-9", nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindForUpdate(gomock.Any(), "farm-1", l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("serialization failure"))
		deps.sqlMock.ExpectRollback()
		deps.expenses.EXPECT().Delete(gomock.Any(), "farm-1", "exp-9").Return(nil)

		_, err := deps.service.AddPayment(context.Background(), "farm-1", l.ID.String(), loan.AddPaymentRequest{Amount: 100})

		assert.EqualError(t, err, "serialization failure")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown loan creates no expense", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := newLoan(5000)
		deps.repo.EXPECT().FindByIDAndFarm(gomock.Any(), "farm-1", l.ID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.AddPayment(context.Background(), "farm-1", l.ID.String(), loan.AddPaymentRequest{Amount: 100})

		assert.ErrorIs(t, err, loanerrors.ErrLoanNotFound)
	})

	t.Run("non positive amount", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := newLoan(5000)

		_, err := deps.service.AddPayment(context.Background(), "farm-1", l.ID.String(), loan.AddPaymentRequest{Amount: -3})

		assert.ErrorIs(t, err, loanerrors.ErrInvalidAmount)
	})
}

func TestLoanService_AddUsage(t *testing.T) {
	deps := setupServiceTest(t)
	l := newLoan(5000)
	l.ApplyPayment(1000, "", "", now)
	var saved *loan.Loan
	deps.expectLockedWrite(l, &saved)

	resp, err := deps.service.AddUsage(context.Background(), "farm-1", l.ID.String(), loan.AddUsageRequest{
		Description: "diesel", Amount: 7000, UsageDate: "2026-03-03",
	})

	require.NoError(t, err)
	assert.Equal(t, 4000.0, resp.RemainingBalance)
	assert.Equal(t, 1000.0, resp.TotalPaidCurrent)
	assert.Equal(t, 7000.0, resp.TotalUsed)
	require.Len(t, resp.Usages, 1)
}

func TestLoanService_Renew(t *testing.T) {
	t.Run("zero renewal payment writes no expense", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := newLoan(5000)
		l.ApplyPayment(3000, "", "", now)
		deps.repo.EXPECT().FindByIDAndFarm(gomock.Any(), "farm-1", l.ID.String()).Return(loanCopy(l), nil)
		var saved *loan.Loan
		deps.expectLockedWrite(l, &saved)

		resp, err := deps.service.Renew(context.Background(), "farm-1", l.ID.String(), loan.RenewLoanRequest{NewDueDate: "2027-06-30"})

		require.NoError(t, err)
		assert.Equal(t, 5000.0, resp.RemainingBalance)
		assert.Equal(t, 3000.0, resp.TotalPaidLifetime)
		assert.Empty(t, resp.Payments)
	})

	t.Run("renewal payment is mirrored", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := newLoan(5000)
		deps.repo.EXPECT().FindByIDAndFarm(gomock.Any(), "farm-1", l.ID.String()).Return(loanCopy(l), nil)
		deps.expenses.EXPECT().
			CreateForLoan(gomock.Any(), "farm-1", gomock.Any()).
			DoAndReturn(func(ctx context.Context, farmID string, in expense.LoanExpense) (string, error) {
				assert.Equal(t, 1500.0, in.Amount)
				return "exp-r", nil
			})
		var saved *loan.Loan
		deps.expectLockedWrite(l, &saved)

		resp, err := deps.service.Renew(context.Background(), "farm-1", l.ID.String(), loan.RenewLoanRequest{NewDueDate: "2027-06-30", RenewalPayment: 1500})

		require.NoError(t, err)
		assert.Equal(t, 3500.0, resp.RemainingBalance)
		assert.Equal(t, "2027-06-30", resp.DueDate)
	})
}

func TestLoanService_Delete(t *testing.T) {
	t.Run("cleanup failure does not block the delete", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := newLoan(5000)
		id := l.ID.String()
		deps.expenses.EXPECT().DeleteByLoan(gomock.Any(), "farm-1", id).Return(int64(0), errors.New("expenses down"))
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(gomock.Any(), "farm-1", id).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		err := deps.service.Delete(context.Background(), "farm-1", id)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("loan delete failure propagates", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := newLoan(5000)
		id := l.ID.String()
		deps.expenses.EXPECT().DeleteByLoan(gomock.Any(), "farm-1", id).Return(int64(2), nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(gomock.Any(), "farm-1", id).Return(gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(context.Background(), "farm-1", id)

		assert.ErrorIs(t, err, loanerrors.ErrLoanNotFound)
	})
}
