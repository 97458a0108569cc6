//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"order-fulfillment/internal/domain/inventory"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/memory"
	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(seed map[string]int) (commands.InventoryCommands, *memory.InventoryStore) {
	store := memory.NewInventoryStore()
	for sku, qty := range seed {
		store.Seed(sku, qty)
	}
	return commands.NewInventoryCommands(store), store
}

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements stock and returns remaining quantity", func(t *testing.T) {
		engine, store := newEngine(map[string]int{"PROD-001": 100})

		remaining, err := engine.Reserve(ctx, "PROD-001", 10)
		require.NoError(t, err)
		assert.Equal(t, 90, remaining)

		stock, err := store.Get(ctx, "PROD-001")
		require.NoError(t, err)
		assert.Equal(t, 90, stock.Quantity)
	})

	t.Run("can drain stock to exactly zero", func(t *testing.T) {
		engine, _ := newEngine(map[string]int{"PROD-001": 5})

		remaining, err := engine.Reserve(ctx, "PROD-001", 5)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("insufficient stock fails without mutation", func(t *testing.T) {
		engine, store := newEngine(map[string]int{"PROD-003": 5})

		_, err := engine.Reserve(ctx, "PROD-003", 10)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		stock, getErr := store.Get(ctx, "PROD-003")
		require.NoError(t, getErr)
		assert.Equal(t, 5, stock.Quantity)
	})

	t.Run("unknown sku fails with not found", func(t *testing.T) {
		engine, _ := newEngine(nil)

		_, err := engine.Reserve(ctx, "MISSING", 1)
		require.ErrorIs(t, err, errs.ErrStockNotFound)
	})

	t.Run("non-positive quantity is an input error", func(t *testing.T) {
		engine, store := newEngine(map[string]int{"PROD-001": 10})

		for _, qty := range []int{0, -1, -100} {
			_, err := engine.Reserve(ctx, "PROD-001", qty)
			require.ErrorIs(t, err, errs.ErrInvalidQuantity)
		}

		stock, err := store.Get(ctx, "PROD-001")
		require.NoError(t, err)
		assert.Equal(t, 10, stock.Quantity)
	})

	t.Run("retries a conflicting conditional write", func(t *testing.T) {
		store := memory.NewInventoryStore()
		store.Seed("PROD-001", 10)
		conflicting := &conflictOnceStore{InventoryStore: store}
		engine := commands.NewInventoryCommands(conflicting)

		remaining, err := engine.Reserve(ctx, "PROD-001", 3)
		require.NoError(t, err)
		assert.Equal(t, 7, remaining)
		assert.Equal(t, 2, conflicting.casCalls)
	})

	t.Run("storage failure surfaces as store unavailable", func(t *testing.T) {
		engine := commands.NewInventoryCommands(&failingStore{})

		_, err := engine.Reserve(ctx, "PROD-001", 1)
		require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestReserveConcurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("never oversells a single sku", func(t *testing.T) {
		const initialStock = 50
		const workers = 100

		engine, store := newEngine(map[string]int{"PROD-001": initialStock})

		var wg sync.WaitGroup
		results := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := engine.Reserve(ctx, "PROD-001", 1)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for err := range results {
			if err == nil {
				succeeded++
				continue
			}
			require.True(t,
				errors.Is(err, errs.ErrInsufficientStock) || errors.Is(err, errs.ErrStoreUnavailable),
				"unexpected error: %v", err)
		}

		stock, err := store.Get(ctx, "PROD-001")
		require.NoError(t, err)
		assert.Equal(t, initialStock-succeeded, stock.Quantity)
		assert.LessOrEqual(t, succeeded, initialStock)
		assert.GreaterOrEqual(t, stock.Quantity, 0)
	})

	t.Run("different skus do not interfere", func(t *testing.T) {
		engine, store := newEngine(map[string]int{"PROD-001": 30, "PROD-002": 30})

		var wg sync.WaitGroup
		for i := 0; i < 30; i++ {
			for _, sku := range []string{"PROD-001", "PROD-002"} {
				wg.Add(1)
				go func(sku string) {
					defer wg.Done()
					_, _ = engine.Reserve(ctx, sku, 1)
				}(sku)
			}
		}
		wg.Wait()

		for _, sku := range []string{"PROD-001", "PROD-002"} {
			stock, err := store.Get(ctx, sku)
			require.NoError(t, err)
			assert.Equal(t, 0, stock.Quantity)
		}
	})
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites the stored quantity", func(t *testing.T) {
		engine, store := newEngine(map[string]int{"PROD-001": 10})

		quantity, err := engine.SetQuantity(ctx, "PROD-001", 250)
		require.NoError(t, err)
		assert.Equal(t, 250, quantity)

		stock, err := store.Get(ctx, "PROD-001")
		require.NoError(t, err)
		assert.Equal(t, 250, stock.Quantity)
	})

	t.Run("zero is a valid absolute quantity", func(t *testing.T) {
		engine, _ := newEngine(map[string]int{"PROD-001": 10})

		quantity, err := engine.SetQuantity(ctx, "PROD-001", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, quantity)
	})

	t.Run("negative quantity always fails and never mutates", func(t *testing.T) {
		engine, store := newEngine(map[string]int{"PROD-001": 10})

		_, err := engine.SetQuantity(ctx, "PROD-001", -1)
		// Preserved from the legacy service: negative updates share the
		// insufficient-stock error rather than getting their own.
		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		stock, getErr := store.Get(ctx, "PROD-001")
		require.NoError(t, getErr)
		assert.Equal(t, 10, stock.Quantity)
	})

	t.Run("unknown sku fails with not found", func(t *testing.T) {
		engine, _ := newEngine(nil)

		_, err := engine.SetQuantity(ctx, "MISSING", 10)
		require.ErrorIs(t, err, errs.ErrStockNotFound)
	})
}

// conflictOnceStore fails the first conditional write with a conflict to
// exercise the engine's retry path.
type conflictOnceStore struct {
	*memory.InventoryStore
	casCalls int
}

func (s *conflictOnceStore) CompareAndSet(ctx context.Context, skuCode string, expected, next int) error {
	s.casCalls++
	if s.casCalls == 1 {
		return infra.WrapRepoErr(infra.KindConflict, "stock record changed concurrently", nil)
	}
	return s.InventoryStore.CompareAndSet(ctx, skuCode, expected, next)
}

type failingStore struct{}

func (s *failingStore) Get(ctx context.Context, skuCode string) (*inventory.Stock, error) {
	return nil, infra.WrapRepoErr(infra.KindDBFailure, "connection refused", errors.New("dial tcp: connection refused"))
}

func (s *failingStore) CompareAndSet(ctx context.Context, skuCode string, expected, next int) error {
	return infra.WrapRepoErr(infra.KindDBFailure, "connection refused", errors.New("dial tcp: connection refused"))
}
