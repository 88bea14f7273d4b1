package loan

import (
	"context"
	"database/sql"

	"go-farmbook/internal/shared/dbtx"
	"go-farmbook/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=loan_repo.go -destination=mock/loan_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Loan) error
	FindAllByFarm(ctx context.Context, farmID string) ([]Loan, error)
	FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Loan, error)
	// FindForUpdate locks the loan row until the surrounding transaction ends.
	FindForUpdate(ctx context.Context, farmID string, id string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
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

func (r *repository) Create(ctx context.Context, l *Loan) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindAllByFarm(ctx context.Context, farmID string) ([]Loan, error) {
	var loans []Loan
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Order("created_at DESC").
		Find(&loans).Error
	return loans, err
}

func (r *repository) FindByIDAndFarm(ctx context.Context, farmID string, id string) (*Loan, error) {
	var l Loan
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindForUpdate(ctx context.Context, farmID string, id string) (*Loan, error) {
	var l Loan
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(farmID)).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Save(ctx context.Context, l *Loan) error {
	return r.conn(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, farmID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Delete(&Loan{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
