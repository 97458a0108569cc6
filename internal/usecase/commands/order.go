package commands

import (
	"context"
	"log/slog"
	"time"

	"order-fulfillment/internal/domain/order"
	reqdto "order-fulfillment/internal/handler/dto/request"
	"order-fulfillment/internal/pkg/clock"
	"order-fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderResult struct {
	ID              uuid.UUID
	SkuCode         string
	ProductName     string
	Quantity        int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	OrderDate       time.Time
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest) (*OrderResult, error)
}

type orderUseCaseImpl struct {
	products  ProductGateway
	inventory InventoryGateway
	orders    OrderRepository
	events    EventPublisher
	clock     clock.Clock
}

func NewOrderCommands(
	products ProductGateway,
	inventory InventoryGateway,
	orders OrderRepository,
	events EventPublisher,
	clock clock.Clock,
) OrderCommands {
	return &orderUseCaseImpl{
		products:  products,
		inventory: inventory,
		orders:    orders,
		events:    events,
		clock:     clock,
	}
}

// CreateOrder runs the fulfillment saga: product lookup, stock reservation,
// persistence, event publish. Each step's failure short-circuits the rest
// and is surfaced unwrapped so the caller sees which step failed. Once the
// reservation has committed there is no compensation: a persistence failure
// after that point leaves the decrement in place.
func (u *orderUseCaseImpl) CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest) (*OrderResult, error) {
	slog.Info("creating order", "sku_code", req.SkuCode, "quantity", req.Quantity)

	prod, err := u.products.GetBySku(ctx, req.SkuCode)
	if err != nil {
		return nil, err
	}

	// Entity construction happens before the reservation: a request that
	// fails validation must not commit a stock decrement it cannot use.
	customer, err := order.NewCustomer(req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.ShippingAddress)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBadRequest)
	}

	entity, err := order.NewOrder(uuid.Nil, req.SkuCode, prod.ProductName, req.Quantity, customer, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBadRequest)
	}

	// The returned quantity is the remaining stock, informational only;
	// the requested quantity is what the order carries.
	if _, err := u.inventory.Reserve(ctx, req.SkuCode, req.Quantity); err != nil {
		return nil, err
	}

	if _, err := u.orders.Save(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	evt := order.NewCreatedEvent(entity)
	if err := u.events.PublishOrderCreated(ctx, evt); err != nil {
		// Fire and forget: the order exists even if the announcement is lost.
		slog.Warn("failed to publish order-created event",
			"order_id", entity.ID(),
			"sku_code", req.SkuCode,
			"error", err,
		)
	}

	slog.Info("order created", "order_id", entity.ID(), "sku_code", req.SkuCode, "product_name", prod.ProductName)

	return &OrderResult{
		ID:              entity.ID(),
		SkuCode:         entity.SkuCode().String(),
		ProductName:     entity.ProductName(),
		Quantity:        entity.Quantity().Value(),
		CustomerName:    customer.Name(),
		CustomerEmail:   customer.Email(),
		CustomerPhone:   customer.Phone(),
		ShippingAddress: customer.ShippingAddress(),
		OrderDate:       entity.OrderDate(),
	}, nil
}
