package travel

import (
	"context"
	"database/sql"
	"time"

	"go-farmbook/internal/events"
	"go-farmbook/internal/finance"
	"go-farmbook/internal/messaging/kafka"
	"go-farmbook/internal/shared/apperror"
	"go-farmbook/internal/shared/contextutil"
	travelerrors "go-farmbook/internal/travel/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=travel_service.go -destination=mock/travel_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, farmID string, req TravelRequest) (TravelResponse, error)
	GetAll(ctx context.Context, farmID string, filter finance.TravelFilter) ([]TravelResponse, error)
	GetByID(ctx context.Context, farmID, id string) (TravelResponse, error)
	Update(ctx context.Context, farmID, id string, req TravelRequest) (TravelResponse, error)
	Delete(ctx context.Context, farmID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	refs   References
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	refs References,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("travel.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("travel.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		refs:   refs,
		outbox: outbox,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, farmID string, req TravelRequest) (TravelResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create travel requested",
		zap.String("request_id", rid),
		zap.String("farm_id", farmID),
		zap.String("group_id", req.GroupID),
		zap.Float64("tons", req.Tons),
	)
	if err := validateRequest(req); err != nil {
		s.logger.Warn("create travel rejected", zap.Error(err))
		return TravelResponse{}, err
	}

	attendance := req.Attendance
	if attendance == nil {
		snapshot, err := s.snapshotAttendance(ctx, farmID, req.GroupID)
		if err != nil {
			return TravelResponse{}, err
		}
		attendance = snapshot
	}

	t := &Travel{
		ID:         uuid.New(),
		FarmID:     farmID,
		Attendance: attendance,
	}
	applyRequest(t, req)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TravelResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, t); err != nil {
		s.logger.Error("create travel persist failed", zap.Error(err))
		return TravelResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, t.ID.String(), events.ActionCreated); err != nil {
		return TravelResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create travel commit failed", zap.String("request_id", rid), zap.Error(err))
		return TravelResponse{}, err
	}

	s.logger.Info("create travel success",
		zap.String("travel_id", t.ID.String()),
		zap.Int("attendance", len(t.Attendance)),
	)
	return mapToResponse(*t), nil
}

// snapshotAttendance marks every current member of the group present. The
// result is stored with the travel and never re-derived.
func (s *service) snapshotAttendance(ctx context.Context, farmID, groupID string) ([]finance.AttendanceEntry, error) {
	out := []finance.AttendanceEntry{}
	if groupID == "" {
		return out, nil
	}

	g, err := s.refs.Group(ctx, farmID, groupID)
	if err != nil {
		s.logger.Error("attendance snapshot group lookup failed", zap.String("group_id", groupID), zap.Error(err))
		return nil, err
	}
	if g == nil {
		return out, nil
	}

	for _, id := range g.EmployeeIDs {
		out = append(out, finance.AttendanceEntry{EmployeeID: id, Present: true})
	}
	return out, nil
}

func (s *service) GetAll(ctx context.Context, farmID string, filter finance.TravelFilter) ([]TravelResponse, error) {
	for _, d := range []string{filter.From, filter.To} {
		if d == "" {
			continue
		}
		if _, ok := finance.ParseDate(d); !ok {
			return nil, apperror.ErrInvalidDate
		}
	}

	travels, err := s.repo.FindAllByFarm(ctx, farmID)
	if err != nil {
		s.logger.Error("get all travels failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]TravelResponse, 0, len(travels))
	for _, t := range travels {
		if !filter.IsZero() && !filter.Match(t.Record()) {
			continue
		}
		res = append(res, mapToResponse(t))
	}
	return res, nil
}

// GetByID returns the travel with its resolved financials. Group, driver
// and employees that no longer exist resolve to zero contributions.
func (s *service) GetByID(ctx context.Context, farmID, id string) (TravelResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TravelResponse{}, travelerrors.ErrInvalidTravelID
	}

	t, err := s.repo.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return TravelResponse{}, mapRepositoryError(err)
	}

	g, err := s.refs.Group(ctx, farmID, t.GroupID)
	if err != nil {
		return TravelResponse{}, err
	}
	d, err := s.refs.Driver(ctx, farmID, t.DriverID)
	if err != nil {
		return TravelResponse{}, err
	}
	employees, err := s.refs.Employees(ctx, farmID)
	if err != nil {
		return TravelResponse{}, err
	}

	fin := finance.ResolveTravel(t.Record(), g, d, employees)
	resp := mapToResponse(*t)
	resp.Financials = &fin
	return resp, nil
}

func (s *service) Update(ctx context.Context, farmID, id string, req TravelRequest) (TravelResponse, error) {
	s.logger.Debug("update travel requested", zap.String("farm_id", farmID), zap.String("travel_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return TravelResponse{}, travelerrors.ErrInvalidTravelID
	}
	if err := validateRequest(req); err != nil {
		return TravelResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TravelResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	t, err := qtx.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return TravelResponse{}, mapRepositoryError(err)
	}

	applyRequest(t, req)
	if req.Attendance != nil {
		t.Attendance = req.Attendance
	}

	if err := qtx.Update(ctx, t); err != nil {
		s.logger.Error("update travel persist failed", zap.Error(err))
		return TravelResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionUpdated); err != nil {
		return TravelResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TravelResponse{}, err
	}

	s.logger.Info("update travel success", zap.String("travel_id", id))
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, farmID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return travelerrors.ErrInvalidTravelID
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

	s.logger.Info("delete travel success", zap.String("travel_id", id))
	return nil
}

func (s *service) recordChanged(ctx context.Context, tx *sql.Tx, farmID, id, action string) error {
	ev := events.NewRecordsChanged(farmID, events.CollectionTravels, id, action, contextutil.GetRequestID(ctx))
	if err := kafka.EnqueueRecordsChanged(ctx, s.outbox, tx, ev); err != nil {
		s.logger.Error("travel outbox persist failed",
			zap.String("travel_id", id),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func validateRequest(req TravelRequest) error {
	if req.Tons < 0 {
		return travelerrors.ErrNegativeTons
	}
	for _, p := range []*float64{req.DriverTip, req.Bags, req.SugarcanePrice, req.Molasses, req.MolassesPrice} {
		if p != nil && *p < 0 {
			return travelerrors.ErrNegativeAmount
		}
	}
	for _, e := range req.Expenses {
		if e.Amount < 0 {
			return travelerrors.ErrNegativeAmount
		}
	}
	if req.Date != "" {
		if _, ok := finance.ParseDate(req.Date); !ok {
			return apperror.ErrInvalidDate
		}
	}
	return nil
}

// applyRequest copies every field except attendance, which has its own
// snapshot rules.
func applyRequest(t *Travel, req TravelRequest) {
	t.Name = req.Name
	t.Date = req.Date
	t.Land = req.Land
	t.DriverID = req.DriverID
	t.DriverTip = req.DriverTip
	t.PlateNumber = req.PlateNumber
	t.Destination = req.Destination
	t.Ticket = req.Ticket
	t.Tons = req.Tons
	t.Bags = req.Bags
	t.SugarcanePrice = req.SugarcanePrice
	t.Molasses = req.Molasses
	t.MolassesPrice = req.MolassesPrice
	t.GroupID = req.GroupID
	t.Expenses = req.Expenses
	if t.Expenses == nil {
		t.Expenses = []finance.TravelExpense{}
	}
}

func mapToResponse(t Travel) TravelResponse {
	attendance := t.Attendance
	if attendance == nil {
		attendance = []finance.AttendanceEntry{}
	}
	expenses := t.Expenses
	if expenses == nil {
		expenses = []finance.TravelExpense{}
	}
	return TravelResponse{
		ID:             t.ID.String(),
		Name:           t.Name,
		Date:           t.Date,
		Land:           t.Land,
		DriverID:       t.DriverID,
		DriverTip:      t.DriverTip,
		PlateNumber:    t.PlateNumber,
		Destination:    t.Destination,
		Ticket:         t.Ticket,
		Tons:           t.Tons,
		Bags:           t.Bags,
		SugarcanePrice: t.SugarcanePrice,
		Molasses:       t.Molasses,
		MolassesPrice:  t.MolassesPrice,
		GroupID:        t.GroupID,
		Attendance:     attendance,
		Expenses:       expenses,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
}
