package travel

import (
	"context"
	"errors"

	"go-farmbook/internal/driver"
	"go-farmbook/internal/employee"
	"go-farmbook/internal/finance"
	"go-farmbook/internal/group"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// References resolves the records a travel points at. Missing records come
// back as nil, not as errors.
//
//go:generate mockgen -source=travel_references.go -destination=mock/travel_references_mock.go -package=mock
type References interface {
	Group(ctx context.Context, farmID, id string) (*finance.Group, error)
	Driver(ctx context.Context, farmID, employeeID string) (*finance.Driver, error)
	Employees(ctx context.Context, farmID string) (map[string]finance.Employee, error)
}

type repoReferences struct {
	groups    group.Repository
	drivers   driver.Repository
	employees employee.Repository
}

func NewReferences(groups group.Repository, drivers driver.Repository, employees employee.Repository) References {
	return &repoReferences{
		groups:    groups,
		drivers:   drivers,
		employees: employees,
	}
}

func (r *repoReferences) Group(ctx context.Context, farmID, id string) (*finance.Group, error) {
	// group ids are uuids; anything else cannot match a row
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	g, err := r.groups.FindByIDAndFarm(ctx, farmID, id)
	if isMissing(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec := g.Record()
	return &rec, nil
}

func (r *repoReferences) Driver(ctx context.Context, farmID, employeeID string) (*finance.Driver, error) {
	if employeeID == "" {
		return nil, nil
	}
	d, err := r.drivers.FindByEmployee(ctx, farmID, employeeID)
	if isMissing(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec := d.Record()
	return &rec, nil
}

func (r *repoReferences) Employees(ctx context.Context, farmID string) (map[string]finance.Employee, error) {
	emps, err := r.employees.FindAllByFarm(ctx, farmID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]finance.Employee, len(emps))
	for _, e := range emps {
		rec := e.Record()
		out[rec.ID] = rec
	}
	return out, nil
}

func isMissing(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
