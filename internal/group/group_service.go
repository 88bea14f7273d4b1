package group

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-farmbook/internal/events"
	grouperrors "go-farmbook/internal/group/errors"
	"go-farmbook/internal/messaging/kafka"
	"go-farmbook/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=group_service.go -destination=mock/group_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, farmID string, req CreateGroupRequest) (GroupResponse, error)
	GetAll(ctx context.Context, farmID string) ([]GroupResponse, error)
	GetByID(ctx context.Context, farmID, id string) (GroupResponse, error)
	Update(ctx context.Context, farmID, id string, req UpdateGroupRequest) (GroupResponse, error)
	Delete(ctx context.Context, farmID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("group.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("group.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, farmID string, req CreateGroupRequest) (GroupResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create group requested",
		zap.String("request_id", rid),
		zap.String("farm_id", farmID),
		zap.Int("members", len(req.Employees)),
	)
	if req.Wage < 0 {
		return GroupResponse{}, grouperrors.ErrNegativeWage
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create group begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return GroupResponse{}, err
	}
	defer tx.Rollback()

	g := &Group{
		ID:        uuid.New(),
		FarmID:    farmID,
		Name:      req.Name,
		Wage:      req.Wage,
		Employees: normalizeMembers(req.Employees),
	}

	if err := s.repo.WithTx(tx).Create(ctx, g); err != nil {
		s.logger.Error("create group persist failed", zap.Error(err))
		return GroupResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, g.ID.String(), events.ActionCreated); err != nil {
		return GroupResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create group commit failed", zap.String("request_id", rid), zap.Error(err))
		return GroupResponse{}, err
	}

	s.logger.Info("create group success", zap.String("group_id", g.ID.String()))
	return mapToResponse(*g), nil
}

func (s *service) GetAll(ctx context.Context, farmID string) ([]GroupResponse, error) {
	groups, err := s.repo.FindAllByFarm(ctx, farmID)
	if err != nil {
		s.logger.Error("get all groups failed", zap.String("farm_id", farmID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]GroupResponse, len(groups))
	for i, g := range groups {
		res[i] = mapToResponse(g)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, farmID, id string) (GroupResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return GroupResponse{}, grouperrors.ErrInvalidGroupID
	}

	g, err := s.repo.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return GroupResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*g), nil
}

func (s *service) Update(ctx context.Context, farmID, id string, req UpdateGroupRequest) (GroupResponse, error) {
	s.logger.Debug("update group requested", zap.String("farm_id", farmID), zap.String("group_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return GroupResponse{}, grouperrors.ErrInvalidGroupID
	}
	if req.Wage < 0 {
		return GroupResponse{}, grouperrors.ErrNegativeWage
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update group begin tx failed", zap.Error(err))
		return GroupResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	g, err := qtx.FindByIDAndFarm(ctx, farmID, id)
	if err != nil {
		return GroupResponse{}, mapRepositoryError(err)
	}

	// Membership edits never touch attendance already recorded on travels.
	g.Name = req.Name
	g.Wage = req.Wage
	g.Employees = normalizeMembers(req.Employees)

	if err := qtx.Update(ctx, g); err != nil {
		s.logger.Error("update group persist failed", zap.Error(err))
		return GroupResponse{}, mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionUpdated); err != nil {
		return GroupResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update group commit failed", zap.Error(err))
		return GroupResponse{}, err
	}

	s.logger.Info("update group success", zap.String("group_id", id))
	return mapToResponse(*g), nil
}

func (s *service) Delete(ctx context.Context, farmID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return grouperrors.ErrInvalidGroupID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete group begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, farmID, id); err != nil {
		s.logger.Error("delete group failed", zap.String("group_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.recordChanged(ctx, tx, farmID, id, events.ActionDeleted); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete group commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete group success", zap.String("group_id", id))
	return nil
}

func (s *service) recordChanged(ctx context.Context, tx *sql.Tx, farmID, id, action string) error {
	ev := events.NewRecordsChanged(farmID, events.CollectionGroups, id, action, contextutil.GetRequestID(ctx))
	if err := kafka.EnqueueRecordsChanged(ctx, s.outbox, tx, ev); err != nil {
		s.logger.Error("group outbox persist failed",
			zap.String("group_id", id),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// normalizeMembers drops blank and repeated ids, keeping first-seen order.
// Ids are not checked against the employee table.
func normalizeMembers(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func mapToResponse(g Group) GroupResponse {
	members := g.Employees
	if members == nil {
		members = []string{}
	}
	return GroupResponse{
		ID:        g.ID.String(),
		FarmID:    g.FarmID,
		Name:      g.Name,
		Wage:      g.Wage,
		Employees: members,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
}
