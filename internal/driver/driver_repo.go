package driver

import (
	"context"
	"database/sql"

	"go-farmbook/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=driver_repo.go -destination=mock/driver_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Driver) error
	FindAllByFarm(ctx context.Context, farmID string) ([]Driver, error)
	FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Driver, error)
	FindByEmployee(ctx context.Context, farmID string, employeeID string) (*Driver, error)
	Update(ctx context.Context, d *Driver) error
	Delete(ctx context.Context, farmID string, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

// withEmployeeName left-joins employees so a driver whose employee was
// deleted still lists, with an empty name.
func (r *repository) withEmployeeName(ctx context.Context, farmID string) *gorm.DB {
	return r.conn(ctx).
		Table("drivers").
		Select("drivers.*, COALESCE(employees.name, '') AS employee_name").
		Joins("LEFT JOIN employees ON employees.id::text = drivers.employee_id AND employees.farm_id = drivers.farm_id").
		Where("drivers.farm_id = ?", farmID)
}

func (r *repository) Create(ctx context.Context, d *Driver) error {
	return r.conn(ctx).Create(d).Error
}

func (r *repository) FindAllByFarm(ctx context.Context, farmID string) ([]Driver, error) {
	var drivers []Driver
	err := r.withEmployeeName(ctx, farmID).
		Order("employee_name ASC, drivers.created_at ASC").
		Scan(&drivers).Error
	return drivers, err
}

func (r *repository) FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Driver, error) {
	var d Driver
	err := r.withEmployeeName(ctx, farmID).
		Where("drivers.id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByEmployee(ctx context.Context, farmID string, employeeID string) (*Driver, error) {
	var d Driver
	err := r.withEmployeeName(ctx, farmID).
		Where("drivers.employee_id = ?", employeeID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Update(ctx context.Context, d *Driver) error {
	return r.conn(ctx).
		Model(&Driver{}).
		Where("id = ? AND farm_id = ?", d.ID, d.FarmID).
		Update("wage", d.Wage).Error
}

func (r *repository) Delete(ctx context.Context, farmID string, id string) error {
	res := r.conn(ctx).
		Where("farm_id = ?", farmID).
		Delete(&Driver{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
