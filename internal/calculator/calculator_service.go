package calculator

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	calculatorerrors "go-farmbook/internal/calculator/errors"
	"go-farmbook/internal/events"
	"go-farmbook/internal/messaging/kafka"
	"go-farmbook/internal/shared/contextutil"
	"go-farmbook/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=calculator_service.go -destination=mock/calculator_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, farmID string, req CreateComputationRequest) (ComputationResponse, error)
	GetAll(ctx context.Context, farmID string) ([]ComputationResponse, error)
	GetByID(ctx context.Context, farmID, id string) (ComputationResponse, error)
	Delete(ctx context.Context, farmID, id string) error
	RenderPDF(ctx context.Context, farmID, id string) (ReceiptFile, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	counters counter.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counters counter.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("calculator.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calculator.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counters: counters,
		outbox:   outbox,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, farmID string, req CreateComputationRequest) (ComputationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create computation requested",
		zap.String("request_id", rid),
		zap.String("farm_id", farmID),
		zap.Int("sugarcane_entries", len(req.SugarcaneEntries)),
		zap.Int("molasses_entries", len(req.MolassesEntries)),
	)
	if err := validateEntries(req); err != nil {
		s.logger.Warn("create computation rejected", zap.Error(err))
		return ComputationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ComputationResponse{}, err
	}
	defer tx.Rollback()

	seq, err := s.counters.WithTx(tx).GetNextValue(ctx, farmID, counter.ReceiptNumber)
	if err != nil {
		s.logger.Error("receipt number allocation failed", zap.String("farm_id", farmID), zap.Error(err))
		return ComputationResponse{}, err
	}

	totals := ComputeTotals(req.SugarcaneEntries, req.MolassesEntries)
	c := &Computation{
		ID:               uuid.New(),
		FarmID:           farmID,
		ReceiptNumber:    ReceiptNumber(seq),
		ReceiptTitle:     req.ReceiptTitle,
		SignatureName:    req.SignatureName,
		SugarcaneEntries: nonNil(req.SugarcaneEntries),
		MolassesEntries:  nonNil(req.MolassesEntries),
		TotalSugarcane:   totals.TotalSugarcane,
		TotalMolasses:    totals.TotalMolasses,
		GrandTotal:       totals.GrandTotal,
	}

	if err := s.repo.WithTx(tx).Create(ctx, c); err != nil {
		s.logger.Error("create computation persist failed", zap.Error(err))
		return ComputationResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, c.ID.String(), events.ActionCreated); err != nil {
		return ComputationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create computation commit failed", zap.String("request_id", rid), zap.Error(err))
		return ComputationResponse{}, err
	}

	s.logger.Info("create computation success",
		zap.String("computation_id", c.ID.String()),
		zap.String("receipt_number", c.ReceiptNumber),
		zap.Float64("grand_total", c.GrandTotal),
	)
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, farmID string) ([]ComputationResponse, error) {
	items, err := s.repo.FindAllByFarm(ctx, farmID)
	if err != nil {
		s.logger.Error("get all computations failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ComputationResponse, 0, len(items))
	for _, c := range items {
		res = append(res, mapToResponse(c))
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, farmID, id string) (ComputationResponse, error) {
	c, err := s.find(ctx, farmID, id)
	if err != nil {
		return ComputationResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, farmID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return calculatorerrors.ErrInvalidComputationID
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

	s.logger.Info("delete computation success", zap.String("computation_id", id))
	return nil
}

func (s *service) RenderPDF(ctx context.Context, farmID, id string) (ReceiptFile, error) {
	c, err := s.find(ctx, farmID, id)
	if err != nil {
		return ReceiptFile{}, err
	}

	content, err := buildReceiptPDF(receiptLines(*c))
	if err != nil {
		s.logger.Error("render receipt failed", zap.String("computation_id", id), zap.Error(err))
		return ReceiptFile{}, err
	}
	return ReceiptFile{
		Filename: c.ReceiptNumber + ".pdf",
		Content:  content,
	}, nil
}

func (s *service) find(ctx context.Context, farmID, id string) (*Computation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, calculatorerrors.ErrInvalidComputationID
	}
	c, err := s.repo.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return c, nil
}

func (s *service) recordChanged(ctx context.Context, tx *sql.Tx, farmID, id, action string) error {
	ev := events.NewRecordsChanged(farmID, events.CollectionComputations, id, action, contextutil.GetRequestID(ctx))
	if err := kafka.EnqueueRecordsChanged(ctx, s.outbox, tx, ev); err != nil {
		s.logger.Error("computation outbox persist failed",
			zap.String("computation_id", id),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ReceiptNumber formats a farm counter value, e.g. 1 -> RCPT-000001.
func ReceiptNumber(seq int64) string {
	return fmt.Sprintf("RCPT-%06d", seq)
}

func validateEntries(req CreateComputationRequest) error {
	if len(req.SugarcaneEntries) == 0 && len(req.MolassesEntries) == 0 {
		return calculatorerrors.ErrEmptyComputation
	}
	for _, e := range req.SugarcaneEntries {
		if e.Bags < 0 || e.Price < 0 {
			return calculatorerrors.ErrNegativeEntry
		}
	}
	for _, e := range req.MolassesEntries {
		if e.Kilos < 0 || e.Price < 0 {
			return calculatorerrors.ErrNegativeEntry
		}
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func mapToResponse(c Computation) ComputationResponse {
	return ComputationResponse{
		ID:               c.ID.String(),
		ReceiptNumber:    c.ReceiptNumber,
		ReceiptTitle:     c.ReceiptTitle,
		SignatureName:    c.SignatureName,
		SugarcaneEntries: nonNil(c.SugarcaneEntries),
		MolassesEntries:  nonNil(c.MolassesEntries),
		TotalSugarcane:   c.TotalSugarcane,
		TotalMolasses:    c.TotalMolasses,
		GrandTotal:       c.GrandTotal,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
	}
}
