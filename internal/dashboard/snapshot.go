package dashboard

import (
	"context"

	"go-farmbook/internal/debt"
	"go-farmbook/internal/driver"
	"go-farmbook/internal/employee"
	"go-farmbook/internal/finance"
	"go-farmbook/internal/group"
	"go-farmbook/internal/travel"

	"golang.org/x/sync/errgroup"
)

// SnapshotSource materializes everything the engine needs for one farm.
type SnapshotSource interface {
	Snapshot(ctx context.Context, farmID string) (finance.Dataset, error)
}

type repoSnapshot struct {
	employees employee.Repository
	groups    group.Repository
	drivers   driver.Repository
	travels   travel.Repository
	debts     debt.Repository
}

func NewSnapshotSource(
	employees employee.Repository,
	groups group.Repository,
	drivers driver.Repository,
	travels travel.Repository,
	debts debt.Repository,
) SnapshotSource {
	return &repoSnapshot{
		employees: employees,
		groups:    groups,
		drivers:   drivers,
		travels:   travels,
		debts:     debts,
	}
}

// Snapshot loads the five collections concurrently. Each goroutine writes
// only its own field of ds.
func (r *repoSnapshot) Snapshot(ctx context.Context, farmID string) (finance.Dataset, error) {
	var ds finance.Dataset
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := r.employees.FindAllByFarm(gctx, farmID)
		ds.Employees = employee.Records(rows)
		return err
	})
	g.Go(func() error {
		rows, err := r.groups.FindAllByFarm(gctx, farmID)
		ds.Groups = group.Records(rows)
		return err
	})
	g.Go(func() error {
		rows, err := r.drivers.FindAllByFarm(gctx, farmID)
		ds.Drivers = driver.Records(rows)
		return err
	})
	g.Go(func() error {
		rows, err := r.travels.FindAllByFarm(gctx, farmID)
		ds.Travels = travel.Records(rows)
		return err
	})
	g.Go(func() error {
		rows, err := r.debts.FindAllByFarm(gctx, farmID)
		ds.Debts = debt.Records(rows)
		return err
	})

	if err := g.Wait(); err != nil {
		return finance.Dataset{}, err
	}
	return ds, nil
}
