package debt

import (
	"context"
	"database/sql"

	"go-farmbook/internal/shared/dbtx"
	"go-farmbook/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=debt_repo.go -destination=mock/debt_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Debt) error
	FindAllByFarm(ctx context.Context, farmID string) ([]Debt, error)
	FindByEmployee(ctx context.Context, farmID string, employeeID string) ([]Debt, error)
	FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Debt, error)
	SetPaid(ctx context.Context, farmID string, id string, paid bool) error
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

func (r *repository) Create(ctx context.Context, d *Debt) error {
	return r.conn(ctx).Create(d).Error
}

func (r *repository) FindAllByFarm(ctx context.Context, farmID string) ([]Debt, error) {
	var debts []Debt
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Order("date DESC, created_at DESC").
		Find(&debts).Error
	return debts, err
}

func (r *repository) FindByEmployee(ctx context.Context, farmID string, employeeID string) ([]Debt, error) {
	var debts []Debt
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&debts).Error
	return debts, err
}

func (r *repository) FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Debt, error) {
	var d Debt
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SetPaid is the only write a debt accepts after creation.
func (r *repository) SetPaid(ctx context.Context, farmID string, id string, paid bool) error {
	res := r.conn(ctx).
		Model(&Debt{}).
		Scopes(tenant.Scope(farmID)).
		Where("id = ?", id).
		Update("paid", paid)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, farmID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Delete(&Debt{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
