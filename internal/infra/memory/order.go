package memory

import (
	"context"
	"sync"

	"order-fulfillment/internal/domain/order"

	"github.com/google/uuid"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*order.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[uuid.UUID]*order.Order)}
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[o.ID()] = o
	return o.ID(), nil
}

func (r *OrderRepository) FindByID(id uuid.UUID) (*order.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	return o, ok
}

func (r *OrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
