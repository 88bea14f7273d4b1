package dashboard

import (
	"context"
	"time"

	dashboarderrors "go-farmbook/internal/dashboard/errors"
	"go-farmbook/internal/finance"
	"go-farmbook/internal/shared/apperror"
	"go-farmbook/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultCacheTTL = 10 * time.Minute

type Service interface {
	Stats(ctx context.Context, farmID string) (finance.GlobalStats, error)
	Weekly(ctx context.Context, farmID string) ([]finance.TimeSeriesPoint, error)
	Daily(ctx context.Context, farmID string) ([]finance.TimeSeriesPoint, error)
	Distribution(ctx context.Context, farmID, by string) ([]finance.CategoryDistribution, error)
	Earnings(ctx context.Context, farmID string, q EarningsQuery) ([]finance.EmployeeEarningsRow, error)
	GroupEarnings(ctx context.Context, farmID, groupID string) (GroupEarningsResponse, error)
	ExportEarnings(ctx context.Context, farmID string, q EarningsQuery) ([]byte, error)
	Invalidate(ctx context.Context, farmID string) error
}

type service struct {
	source SnapshotSource
	rdb    *redis.Client
	sf     *singleflight.Group
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewService builds the dashboard. rdb may be nil, in which case every
// view is computed on demand.
func NewService(source SnapshotSource, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &service{
		source: source,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		ttl:    ttl,
		now:    time.Now,
		logger: l,
	}
}

func (s *service) snapshot(ctx context.Context, farmID string) (finance.Dataset, error) {
	ds, err := s.source.Snapshot(ctx, farmID)
	if err != nil {
		s.logger.Error("dashboard snapshot failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("farm_id", farmID),
			zap.Error(err),
		)
		return finance.Dataset{}, err
	}
	return ds, nil
}

func (s *service) Stats(ctx context.Context, farmID string) (finance.GlobalStats, error) {
	return cached(ctx, s, farmID, viewStats, func(ctx context.Context) (finance.GlobalStats, error) {
		ds, err := s.snapshot(ctx, farmID)
		if err != nil {
			return finance.GlobalStats{}, err
		}
		return finance.ComputeStats(ds.Ledger(), ds.Travels, ds.Debts), nil
	})
}

func (s *service) Weekly(ctx context.Context, farmID string) ([]finance.TimeSeriesPoint, error) {
	return cached(ctx, s, farmID, viewWeekly, func(ctx context.Context) ([]finance.TimeSeriesPoint, error) {
		ds, err := s.snapshot(ctx, farmID)
		if err != nil {
			return nil, err
		}
		return nonNil(finance.WeeklySeries(ds.Ledger(), ds.Travels, s.now())), nil
	})
}

func (s *service) Daily(ctx context.Context, farmID string) ([]finance.TimeSeriesPoint, error) {
	ds, err := s.snapshot(ctx, farmID)
	if err != nil {
		return nil, err
	}
	return nonNil(finance.DailySeries(ds.Ledger(), ds.Travels)), nil
}

func (s *service) Distribution(ctx context.Context, farmID, by string) ([]finance.CategoryDistribution, error) {
	switch by {
	case DistributionLand, DistributionDestination, DistributionGroup:
	default:
		return nil, dashboarderrors.ErrInvalidDistribution
	}

	ds, err := s.snapshot(ctx, farmID)
	if err != nil {
		return nil, err
	}

	var out []finance.CategoryDistribution
	switch by {
	case DistributionLand:
		out = finance.DistributionByLand(ds.Travels)
	case DistributionDestination:
		out = finance.DistributionByDestination(ds.Travels)
	default:
		out = finance.DistributionByGroup(ds.Ledger(), ds.Travels)
	}
	return nonNil(out), nil
}

func (s *service) Earnings(ctx context.Context, farmID string, q EarningsQuery) ([]finance.EmployeeEarningsRow, error) {
	if err := validateFilter(q.TravelFilter); err != nil {
		return nil, err
	}

	ds, err := s.snapshot(ctx, farmID)
	if err != nil {
		return nil, err
	}

	travels := finance.FilterTravels(ds.Travels, q.TravelFilter)
	rows := finance.EarningsReport(ds.Ledger(), ds.Employees, travels, ds.Debts, finance.EarningsOptions{
		IncludeIdle: q.IncludeIdle,
	})
	s.logger.Debug("earnings report computed",
		zap.String("farm_id", farmID),
		zap.Int("travels", len(travels)),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}

func (s *service) GroupEarnings(ctx context.Context, farmID, groupID string) (GroupEarningsResponse, error) {
	ds, err := s.snapshot(ctx, farmID)
	if err != nil {
		return GroupEarningsResponse{}, err
	}

	l := ds.Ledger()
	g, ok := l.Group(groupID)
	if !ok {
		return GroupEarningsResponse{}, dashboarderrors.ErrGroupNotFound
	}

	return GroupEarningsResponse{
		GroupID:   g.ID,
		GroupName: g.Name,
		Wage:      g.Wage,
		Rows:      finance.GroupEarningsReport(l, g, ds.Travels, ds.Debts),
	}, nil
}

func (s *service) ExportEarnings(ctx context.Context, farmID string, q EarningsQuery) ([]byte, error) {
	rows, err := s.Earnings(ctx, farmID, q)
	if err != nil {
		return nil, err
	}

	data, err := earningsWorkbook(rows)
	if err != nil {
		s.logger.Error("earnings export failed", zap.String("farm_id", farmID), zap.Error(err))
		return nil, err
	}
	return data, nil
}

func validateFilter(f finance.TravelFilter) error {
	for _, d := range []string{f.From, f.To} {
		if d == "" {
			continue
		}
		if _, ok := finance.ParseDate(d); !ok {
			return apperror.ErrInvalidDate
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
