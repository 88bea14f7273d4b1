package calculator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-farmbook/internal/calculator"
	calculatorerrors "go-farmbook/internal/calculator/errors"
	calculatorMock "go-farmbook/internal/calculator/mock"
	kafkaMock "go-farmbook/internal/messaging/kafka/mock"
	"go-farmbook/internal/shared/counter"
	counterMock "go-farmbook/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	repo     *calculatorMock.MockRepository
	counters *counterMock.MockRepository
	outbox   *kafkaMock.MockOutboxRepository
	service  calculator.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		sqlMock:  sqlMock,
		repo:     calculatorMock.NewMockRepository(ctrl),
		counters: counterMock.NewMockRepository(ctrl),
		outbox:   kafkaMock.NewMockOutboxRepository(ctrl),
	}
	deps.service = calculator.NewService(db, deps.repo, deps.counters, deps.outbox)
	return deps
}

func TestCalculatorService_Create(t *testing.T) {
	t.Run("numbers the receipt and stores totals", func(t *testing.T) {
		deps := setupServiceTest(t)
		var saved *calculator.Computation

		deps.sqlMock.ExpectBegin()
		deps.counters.EXPECT().WithTx(gomock.Any()).Return(deps.counters)
		deps.counters.EXPECT().GetNextValue(gomock.Any(), "farm-1", counter.ReceiptNumber).Return(int64(42), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *calculator.Computation) error {
				saved = c
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(context.Background(), "farm-1", calculator.CreateComputationRequest{
			ReceiptTitle:     "Mill delivery",
			SugarcaneEntries: []calculator.SugarcaneEntry{{Bags: 10, Price: 1.1}},
			MolassesEntries:  []calculator.MolassesEntry{{Kilos: 100, Price: 2.5}},
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "farm-1", saved.FarmID)
		assert.Equal(t, "RCPT-000042", resp.ReceiptNumber)
		assert.Equal(t, 11.0, resp.TotalSugarcane)
		assert.Equal(t, 250.0, resp.TotalMolasses)
		assert.Equal(t, 261.0, resp.GrandTotal)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects an empty receipt", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(context.Background(), "farm-1", calculator.CreateComputationRequest{})

		assert.ErrorIs(t, err, calculatorerrors.ErrEmptyComputation)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects negative entries", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(context.Background(), "farm-1", calculator.CreateComputationRequest{
			MolassesEntries: []calculator.MolassesEntry{{Kilos: -1, Price: 2}},
		})

		assert.ErrorIs(t, err, calculatorerrors.ErrNegativeEntry)
	})

	t.Run("counter failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.counters.EXPECT().WithTx(gomock.Any()).Return(deps.counters)
		deps.counters.EXPECT().GetNextValue(gomock.Any(), "farm-1", counter.ReceiptNumber).Return(int64(0), errors.New("db down"))
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(context.Background(), "farm-1", calculator.CreateComputationRequest{
			SugarcaneEntries: []calculator.SugarcaneEntry{{Bags: 1, Price: 1}},
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestCalculatorService_GetByID(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetByID(context.Background(), "farm-1", "x")

		assert.ErrorIs(t, err, calculatorerrors.ErrInvalidComputationID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.repo.EXPECT().FindByIDAndFarm(gomock.Any(), "farm-1", id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(context.Background(), "farm-1", id)

		assert.ErrorIs(t, err, calculatorerrors.ErrComputationNotFound)
	})
}

func TestCalculatorService_RenderPDF(t *testing.T) {
	deps := setupServiceTest(t)
	id := uuid.New()
	deps.repo.EXPECT().FindByIDAndFarm(gomock.Any(), "farm-1", id.String()).Return(&calculator.Computation{
		ID:               id,
		ReceiptNumber:    "RCPT-000003",
		SugarcaneEntries: []calculator.SugarcaneEntry{{Bags: 2, Price: 100}},
		TotalSugarcane:   200,
		GrandTotal:       200,
		CreatedAt:        time.Now(),
	}, nil)

	file, err := deps.service.RenderPDF(context.Background(), "farm-1", id.String())

	require.NoError(t, err)
	assert.Equal(t, "RCPT-000003.pdf", file.Filename)
	assert.Contains(t, string(file.Content), "RCPT-000003")
}

func TestCalculatorService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(gomock.Any(), "farm-1", id).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		assert.NoError(t, deps.service.Delete(context.Background(), "farm-1", id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(gomock.Any(), "farm-1", id).Return(gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(context.Background(), "farm-1", id)

		assert.ErrorIs(t, err, calculatorerrors.ErrComputationNotFound)
	})
}
