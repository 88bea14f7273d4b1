package calculator

import (
	"context"
	"database/sql"

	"go-farmbook/internal/shared/dbtx"
	"go-farmbook/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=calculator_repo.go -destination=mock/calculator_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Computation) error
	FindAllByFarm(ctx context.Context, farmID string) ([]Computation, error)
	FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Computation, error)
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

func (r *repository) Create(ctx context.Context, c *Computation) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) FindAllByFarm(ctx context.Context, farmID string) ([]Computation, error) {
	var out []Computation
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Computation, error) {
	var c Computation
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Delete(ctx context.Context, farmID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Delete(&Computation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
