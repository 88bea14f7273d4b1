package counter

import (
	"context"
	"database/sql"

	"go-farmbook/internal/shared/dbtx"

	"gorm.io/gorm"
)

const ReceiptNumber = "receipt_number"

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, farmID string, counterType string) (int64, error)
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

// GetNextValue bumps the per farm counter in a single UPSERT, so concurrent
// callers never observe the same value.
func (r *repository) GetNextValue(ctx context.Context, farmID string, counterType string) (int64, error) {
	var nextValue int64

	err := dbtx.Conn(ctx, r.db, r.tx).Raw(`
		INSERT INTO farm_counters (farm_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (farm_id, counter_type) DO UPDATE
		SET last_value = farm_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, farmID, counterType).Scan(&nextValue).Error
	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
