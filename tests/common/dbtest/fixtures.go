//go:build integration

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func SeedStock(t *testing.T, pool *pgxpool.Pool, skuCode string, quantity int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		"INSERT INTO inventory (sku_code, quantity) VALUES ($1, $2) ON CONFLICT (sku_code) DO UPDATE SET quantity = $2",
		skuCode, quantity)
	require.NoError(t, err)
}

func SeedProduct(t *testing.T, pool *pgxpool.Pool, skuCode, name, category, price, vendor string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		"INSERT INTO products (sku_code, product_name, category, price, vendor) VALUES ($1, $2, $3, $4, $5)",
		skuCode, name, category, price, vendor)
	require.NoError(t, err)
}

func StockQuantity(t *testing.T, pool *pgxpool.Pool, skuCode string) int {
	t.Helper()

	var quantity int
	err := pool.QueryRow(context.Background(),
		"SELECT quantity FROM inventory WHERE sku_code = $1", skuCode).Scan(&quantity)
	require.NoError(t, err)
	return quantity
}
