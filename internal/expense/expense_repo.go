package expense

import (
	"context"
	"database/sql"

	"go-farmbook/internal/shared/dbtx"
	"go-farmbook/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *OtherExpense) error
	FindAllByFarm(ctx context.Context, farmID string) ([]OtherExpense, error)
	FindByIDAndFarm(ctx context.Context, farmID string, id string) (*OtherExpense, error)
	Update(ctx context.Context, e *OtherExpense) error
	Delete(ctx context.Context, farmID string, id string) error
	DeleteByLoan(ctx context.Context, farmID string, loanID string) (int64, error)
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

func (r *repository) Create(ctx context.Context, e *OtherExpense) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindAllByFarm(ctx context.Context, farmID string) ([]OtherExpense, error) {
	var expenses []OtherExpense
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *repository) FindByIDAndFarm(ctx context.Context, farmID string, id string) (*OtherExpense, error) {
	var e OtherExpense
	err := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Update(ctx context.Context, e *OtherExpense) error {
	return r.conn(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, farmID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Delete(&OtherExpense{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByLoan removes every expense tagged with loanID and reports how many
// went. Zero is not an error.
func (r *repository) DeleteByLoan(ctx context.Context, farmID string, loanID string) (int64, error) {
	res := r.conn(ctx).
		Scopes(tenant.Scope(farmID)).
		Where("related_loan_id = ?", loanID).
		Delete(&OtherExpense{})
	return res.RowsAffected, res.Error
}
