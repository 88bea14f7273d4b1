package travel

import (
	"context"
	"database/sql"

	"go-farmbook/internal/shared/dbtx"
	"go-farmbook/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=travel_repo.go -destination=mock/travel_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Travel) error
	FindAllByFarm(ctx context.Context, farmID string) ([]Travel, error)
	FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Travel, error)
	Update(ctx context.Context, t *Travel) error
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

func (r *repository) Create(ctx context.Context, t *Travel) error {
	return r.conn(ctx).Create(t).Error
}

// FindAllByFarm returns travels newest first; undated travels sort last.
func (r *repository) FindAllByFarm(ctx context.Context, farmID string) ([]Travel, error) {
	var travels []Travel
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Order("NULLIF(date, '') DESC NULLS LAST, created_at DESC").
		Find(&travels).Error
	return travels, err
}

func (r *repository) FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Travel, error) {
	var t Travel
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Travel) error {
	return r.conn(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, farmID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Delete(&Travel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
