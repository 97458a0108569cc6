package commands

import (
	"context"
	"log/slog"

	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/errs"
)

// casMaxAttempts bounds the conditional-write retry loop. A conflict means
// another writer got through, so hitting the bound implies sustained
// contention on one SKU that the caller should see as a store problem.
const casMaxAttempts = 10

type InventoryCommands interface {
	Reserve(ctx context.Context, skuCode string, quantity int) (int, error)
	SetQuantity(ctx context.Context, skuCode string, quantity int) (int, error)
}

type inventoryUseCaseImpl struct {
	store InventoryStore
}

func NewInventoryCommands(store InventoryStore) InventoryCommands {
	return &inventoryUseCaseImpl{store: store}
}

// Reserve decrements stock for one SKU with a check-then-decrement protocol.
// The sufficiency check and the write are linearized per SKU by the
// compare-and-set: a stale read loses the write and is retried against the
// fresh quantity, so concurrent reservations can never oversell.
func (u *inventoryUseCaseImpl) Reserve(ctx context.Context, skuCode string, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, errs.ErrInvalidQuantity
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		stock, err := u.store.Get(ctx, skuCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, errs.ErrStockNotFound
			}
			return 0, errs.Mark(err, errs.ErrStoreUnavailable)
		}

		if !stock.CanFulfill(quantity) {
			return 0, errs.ErrInsufficientStock
		}

		next := stock.Quantity - quantity
		err = u.store.CompareAndSet(ctx, skuCode, stock.Quantity, next)
		if err == nil {
			slog.Info("reserved inventory",
				"sku_code", skuCode,
				"previous_quantity", stock.Quantity,
				"new_quantity", next,
			)
			return next, nil
		}
		if infra.IsKind(err, infra.KindConflict) {
			continue
		}
		return 0, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	return 0, errs.Mark(errs.Newf("reservation retry budget exhausted for sku %s", skuCode), errs.ErrStoreUnavailable)
}

// SetQuantity overwrites the stored quantity for an existing SKU. A negative
// quantity is rejected with the insufficient-stock error; the legacy
// inventory service overloaded one exception for both cases and callers
// depend on that mapping.
func (u *inventoryUseCaseImpl) SetQuantity(ctx context.Context, skuCode string, quantity int) (int, error) {
	if quantity < 0 {
		return 0, errs.ErrInsufficientStock
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		stock, err := u.store.Get(ctx, skuCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, errs.ErrStockNotFound
			}
			return 0, errs.Mark(err, errs.ErrStoreUnavailable)
		}

		err = u.store.CompareAndSet(ctx, skuCode, stock.Quantity, quantity)
		if err == nil {
			slog.Info("updated inventory",
				"sku_code", skuCode,
				"previous_quantity", stock.Quantity,
				"new_quantity", quantity,
			)
			return quantity, nil
		}
		if infra.IsKind(err, infra.KindConflict) {
			continue
		}
		return 0, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	return 0, errs.Mark(errs.Newf("inventory update retry budget exhausted for sku %s", skuCode), errs.ErrStoreUnavailable)
}
