package repository

import (
	"context"
	"errors"

	"order-fulfillment/internal/domain/inventory"
	"order-fulfillment/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InventoryStore struct {
	db *pgxpool.Pool
}

func NewInventoryStore(db *pgxpool.Pool) *InventoryStore {
	return &InventoryStore{db: db}
}

func (s *InventoryStore) Get(ctx context.Context, skuCode string) (*inventory.Stock, error) {
	const query = `SELECT sku_code, quantity FROM inventory WHERE sku_code = $1`

	var stock inventory.Stock
	err := s.db.QueryRow(ctx, query, skuCode).Scan(&stock.SkuCode, &stock.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "stock record not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read stock record", err)
	}

	return &stock, nil
}

// CompareAndSet writes next only if the stored quantity still equals
// expected. A zero row count means another writer won the race (or the row
// vanished); callers re-read and retry, so both cases report a conflict.
func (s *InventoryStore) CompareAndSet(ctx context.Context, skuCode string, expected, next int) error {
	const query = `UPDATE inventory SET quantity = $3 WHERE sku_code = $1 AND quantity = $2`

	tag, err := s.db.Exec(ctx, query, skuCode, expected, next)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update stock record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "stock record changed concurrently", nil)
	}

	return nil
}
