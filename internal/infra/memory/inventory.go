package memory

import (
	"context"
	"sync"

	"order-fulfillment/internal/domain/inventory"
	"order-fulfillment/internal/infra"
)

// InventoryStore is a map-backed stock store for tests and broker-less local
// runs. CompareAndSet holds the lock across compare and write, so it gives
// the same linearization guarantee as the conditional SQL update.
type InventoryStore struct {
	mu     sync.RWMutex
	stocks map[string]int
}

func NewInventoryStore() *InventoryStore {
	return &InventoryStore{stocks: make(map[string]int)}
}

// Seed installs a stock record, creating it if absent. Administrative setup,
// not part of the reservation protocol.
func (s *InventoryStore) Seed(skuCode string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stocks[skuCode] = quantity
}

func (s *InventoryStore) Get(ctx context.Context, skuCode string) (*inventory.Stock, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	quantity, ok := s.stocks[skuCode]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "stock record not found", nil)
	}

	return &inventory.Stock{SkuCode: skuCode, Quantity: quantity}, nil
}

func (s *InventoryStore) CompareAndSet(ctx context.Context, skuCode string, expected, next int) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.stocks[skuCode]
	if !ok || current != expected {
		return infra.WrapRepoErr(infra.KindConflict, "stock record changed concurrently", nil)
	}

	s.stocks[skuCode] = next
	return nil
}
