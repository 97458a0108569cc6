package commands

import (
	"context"

	"order-fulfillment/internal/domain/inventory"
	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/domain/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSnapshot is the catalog view the orchestrator needs to enrich an
// order; it comes back from the product service, not from local storage.
type ProductSnapshot struct {
	SkuCode     string
	ProductName string
	Category    string
	Price       decimal.Decimal
	Vendor      string
}

// ProductGateway looks up a product on the remote catalog service.
type ProductGateway interface {
	GetBySku(ctx context.Context, skuCode string) (*ProductSnapshot, error)
	Exists(ctx context.Context, skuCode string) (bool, error)
}

// InventoryGateway reserves stock on the remote inventory service. The
// returned quantity is the stock remaining after the reservation.
type InventoryGateway interface {
	Reserve(ctx context.Context, skuCode string, quantity int) (int, error)
}

type OrderRepository interface {
	Save(ctx context.Context, o *order.Order) (uuid.UUID, error)
}

// InventoryStore gives the reservation engine conditional write access to
// stock records. CompareAndSet must fail with a conflict kind when the
// stored quantity no longer equals expected.
type InventoryStore interface {
	Get(ctx context.Context, skuCode string) (*inventory.Stock, error)
	CompareAndSet(ctx context.Context, skuCode string, expected, next int) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, skuCode string) error
}

// EventPublisher announces a created order to downstream consumers.
// Publishing is best effort; the orchestrator never fails an order on it.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, evt order.CreatedEvent) error
}
