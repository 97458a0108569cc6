package repository

import (
	"context"

	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	const query = `
		INSERT INTO orders (
			id, sku_code, product_name, quantity,
			customer_name, customer_email, customer_phone, shipping_address,
			order_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		o.ID(),
		o.SkuCode().String(),
		o.ProductName(),
		o.Quantity().Value(),
		o.Customer().Name(),
		o.Customer().Email(),
		o.Customer().Phone(),
		o.Customer().ShippingAddress(),
		o.OrderDate(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to save order", err)
	}

	return id, nil
}
