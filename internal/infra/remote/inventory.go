package remote

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"order-fulfillment/internal/pkg/errs"
)

type reservationPayload struct {
	SkuCode  string `json:"skuCode"`
	Quantity int    `json:"quantity"`
}

// InventoryClient talks to the inventory service. When the service is
// unreachable a reservation fails closed as insufficient stock rather than
// assuming the decrement happened.
type InventoryClient struct {
	client *Client
}

func NewInventoryClient(baseURL string, timeout time.Duration) *InventoryClient {
	status := StatusMapper{
		http.StatusNotFound: errs.ErrInsufficientStock,
		http.StatusConflict: errs.ErrInsufficientStock,
	}
	return &InventoryClient{
		client: NewClient("inventory-service", baseURL, timeout, status),
	}
}

func (i *InventoryClient) Reserve(ctx context.Context, skuCode string, quantity int) (int, error) {
	body := reservationPayload{SkuCode: skuCode, Quantity: quantity}

	var result reservationPayload
	err := i.client.Do(ctx, http.MethodPost, "/reserve", body, &result)
	if err != nil {
		if errors.Is(err, ErrUnreachable) {
			slog.Warn("inventory service unreachable, failing closed", "sku_code", skuCode, "error", err)
			return 0, errs.Mark(errs.New("inventory service down or insufficient quantity"), errs.ErrInsufficientStock)
		}
		return 0, err
	}

	return result.Quantity, nil
}
