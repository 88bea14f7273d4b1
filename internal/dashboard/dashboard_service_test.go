package dashboard_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-farmbook/internal/dashboard"
	dashboarderrors "go-farmbook/internal/dashboard/errors"
	"go-farmbook/internal/finance"
	"go-farmbook/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeSource struct {
	snapshotFn func(ctx context.Context, farmID string) (finance.Dataset, error)
	calls      int
}

func (f *fakeSource) Snapshot(ctx context.Context, farmID string) (finance.Dataset, error) {
	f.calls++
	return f.snapshotFn(ctx, farmID)
}

func farmDataset() finance.Dataset {
	return finance.Dataset{
		Employees: []finance.Employee{
			{ID: "s1", Name: "Ana", Type: finance.EmployeeTypeStaff},
			{ID: "s2", Name: "Ben", Type: finance.EmployeeTypeStaff},
			{ID: "d1", Name: "Carl", Type: finance.EmployeeTypeDriver},
			{ID: "h1", Name: "Dina", Type: finance.EmployeeTypeHelper},
		},
		Groups:  []finance.Group{{ID: "g1", Name: "North crew", Wage: 300, EmployeeIDs: []string{"s1", "s2", "ghost"}}},
		Drivers: []finance.Driver{{ID: "dr1", EmployeeID: "d1", Wage: 500}},
		Travels: []finance.Travel{
			{
				ID: "t1", Date: "2026-03-04", Land: "North", Destination: "Mill A",
				DriverID: "d1", DriverTip: 50, Tons: 10, Bags: 100, SugarcanePrice: 50, GroupID: "g1",
				Attendance: []finance.AttendanceEntry{{EmployeeID: "s1", Present: true}, {EmployeeID: "s2", Present: true}},
			},
			{
				ID: "t2", Date: "2026-03-20", Land: "South", Destination: "Mill A",
				Tons: 5, Bags: 40, SugarcanePrice: 50, GroupID: "g1",
				Attendance: []finance.AttendanceEntry{{EmployeeID: "s1", Present: true}},
			},
		},
		Debts: []finance.Debt{{ID: "db1", EmployeeID: "s2", Amount: 200}},
	}
}

func newService(t *testing.T, withRedis bool) (dashboard.Service, *fakeSource, redismock.ClientMock) {
	src := &fakeSource{snapshotFn: func(ctx context.Context, farmID string) (finance.Dataset, error) {
		return farmDataset(), nil
	}}
	if !withRedis {
		return dashboard.NewService(src, nil, 0), src, nil
	}
	rdb, mock := redismock.NewClientMock()
	t.Cleanup(func() { rdb.Close() })
	return dashboard.NewService(src, rdb, 10*time.Minute), src, mock
}

func TestDashboardService_Stats(t *testing.T) {
	key := dashboard.CacheKey("farm-1", "stats")
	ds := farmDataset()
	want := finance.ComputeStats(ds.Ledger(), ds.Travels, ds.Debts)
	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)

	t.Run("cache miss computes and stores", func(t *testing.T) {
		svc, src, mock := newService(t, true)
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, wantJSON, 10*time.Minute).SetVal("OK")

		got, err := svc.Stats(context.Background(), "farm-1")

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, 2, got.TravelCount)
		assert.Equal(t, 200.0, got.UnpaidDebts)
		assert.Equal(t, 1, src.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the snapshot", func(t *testing.T) {
		svc, src, mock := newService(t, true)
		mock.ExpectGet(key).SetVal(string(wantJSON))

		got, err := svc.Stats(context.Background(), "farm-1")

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, 0, src.calls)
	})

	t.Run("redis error falls through", func(t *testing.T) {
		svc, src, mock := newService(t, true)
		mock.ExpectGet(key).SetErr(errors.New("connection refused"))
		mock.ExpectSet(key, wantJSON, 10*time.Minute).SetErr(errors.New("connection refused"))

		got, err := svc.Stats(context.Background(), "farm-1")

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, 1, src.calls)
	})

	t.Run("snapshot error propagates", func(t *testing.T) {
		src := &fakeSource{snapshotFn: func(ctx context.Context, farmID string) (finance.Dataset, error) {
			return finance.Dataset{}, errors.New("db down")
		}}
		svc := dashboard.NewService(src, nil, 0)

		_, err := svc.Stats(context.Background(), "farm-1")

		assert.EqualError(t, err, "db down")
	})
}

func TestDashboardService_Invalidate(t *testing.T) {
	t.Run("deletes every cached view", func(t *testing.T) {
		svc, _, mock := newService(t, true)
		mock.ExpectDel(dashboard.CacheKey("farm-1", "stats"), dashboard.CacheKey("farm-1", "weekly")).SetVal(2)

		assert.NoError(t, svc.Invalidate(context.Background(), "farm-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no redis is a no-op", func(t *testing.T) {
		svc, _, _ := newService(t, false)

		assert.NoError(t, svc.Invalidate(context.Background(), "farm-1"))
	})
}

func TestDashboardService_Daily(t *testing.T) {
	svc, _, _ := newService(t, false)

	points, err := svc.Daily(context.Background(), "farm-1")

	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2026-03-04", points[0].Label)
	assert.Equal(t, "2026-03-20", points[1].Label)
}

func TestDashboardService_Distribution(t *testing.T) {
	svc, _, _ := newService(t, false)

	t.Run("by destination", func(t *testing.T) {
		got, err := svc.Distribution(context.Background(), "farm-1", dashboard.DistributionDestination)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Mill A", got[0].Label)
		assert.Equal(t, 2, got[0].Count)
	})

	t.Run("by group", func(t *testing.T) {
		got, err := svc.Distribution(context.Background(), "farm-1", dashboard.DistributionGroup)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "North crew", got[0].Label)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := svc.Distribution(context.Background(), "farm-1", "plate")

		assert.ErrorIs(t, err, dashboarderrors.ErrInvalidDistribution)
	})
}

func TestDashboardService_Earnings(t *testing.T) {
	svc, _, _ := newService(t, false)

	t.Run("filtered by land", func(t *testing.T) {
		rows, err := svc.Earnings(context.Background(), "farm-1", dashboard.EarningsQuery{
			TravelFilter: finance.TravelFilter{Land: "South"},
		})

		require.NoError(t, err)
		byID := map[string]finance.EmployeeEarningsRow{}
		for _, r := range rows {
			byID[r.EmployeeID] = r
		}
		assert.Equal(t, 1500.0, byID["s1"].TotalWage)
		assert.Equal(t, 1, byID["s1"].DaysWorked)
		assert.Equal(t, 200.0, byID["s2"].UnpaidDebt)
		assert.NotContains(t, byID, "d1")
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := svc.Earnings(context.Background(), "farm-1", dashboard.EarningsQuery{
			TravelFilter: finance.TravelFilter{To: "yesterday"},
		})

		assert.ErrorIs(t, err, apperror.ErrInvalidDate)
	})
}

func TestDashboardService_GroupEarnings(t *testing.T) {
	svc, _, _ := newService(t, false)

	t.Run("reports every member", func(t *testing.T) {
		resp, err := svc.GroupEarnings(context.Background(), "farm-1", "g1")

		require.NoError(t, err)
		assert.Equal(t, "North crew", resp.GroupName)
		assert.Len(t, resp.Rows, 3)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := svc.GroupEarnings(context.Background(), "farm-1", "g404")

		assert.ErrorIs(t, err, dashboarderrors.ErrGroupNotFound)
	})
}

func TestDashboardService_ExportEarnings(t *testing.T) {
	svc, _, _ := newService(t, false)

	data, err := svc.ExportEarnings(context.Background(), "farm-1", dashboard.EarningsQuery{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Earnings")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Employee", "Type", "Days Worked", "Total Wage", "Unpaid Debt"}, rows[0])

	var names []string
	for _, r := range rows[1:] {
		names = append(names, r[0])
	}
	assert.Contains(t, names, "Ana")
	assert.Contains(t, names, "Carl")
}
