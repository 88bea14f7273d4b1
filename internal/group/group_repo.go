package group

import (
	"context"
	"database/sql"

	"go-farmbook/internal/shared/dbtx"
	"go-farmbook/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=group_repo.go -destination=mock/group_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, g *Group) error
	FindAllByFarm(ctx context.Context, farmID string) ([]Group, error)
	FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Group, error)
	Update(ctx context.Context, g *Group) error
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

func (r *repository) Create(ctx context.Context, g *Group) error {
	return r.conn(ctx).Create(g).Error
}

func (r *repository) FindAllByFarm(ctx context.Context, farmID string) ([]Group, error) {
	var groups []Group
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Order("created_at ASC").
		Find(&groups).Error
	return groups, err
}

func (r *repository) FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Group, error) {
	var g Group
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		First(&g, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) Update(ctx context.Context, g *Group) error {
	return r.conn(ctx).Save(g).Error
}

func (r *repository) Delete(ctx context.Context, farmID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Delete(&Group{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
