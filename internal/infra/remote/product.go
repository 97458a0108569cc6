package remote

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type productPayload struct {
	SkuCode     string          `json:"skuCode"`
	ProductName string          `json:"productName"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Vendor      string          `json:"vendor"`
}

// ProductClient talks to the product catalog service. When the catalog is
// unreachable the lookup falls back to "not found": an order must never be
// accepted for a product the catalog could not confirm.
type ProductClient struct {
	client *Client
}

func NewProductClient(baseURL string, timeout time.Duration) *ProductClient {
	status := StatusMapper{
		http.StatusNotFound:   errs.ErrProductNotFound,
		http.StatusBadRequest: errs.ErrBadRequest,
	}
	return &ProductClient{
		client: NewClient("product-service", baseURL, timeout, status),
	}
}

func (p *ProductClient) GetBySku(ctx context.Context, skuCode string) (*commands.ProductSnapshot, error) {
	var payload productPayload
	err := p.client.Do(ctx, http.MethodGet, "/"+skuCode, nil, &payload)
	if err != nil {
		if errors.Is(err, ErrUnreachable) {
			slog.Warn("product service unreachable, falling back to not found", "sku_code", skuCode, "error", err)
			return nil, errs.Mark(errs.New("product service is down or product not found"), errs.ErrProductNotFound)
		}
		return nil, err
	}

	return &commands.ProductSnapshot{
		SkuCode:     payload.SkuCode,
		ProductName: payload.ProductName,
		Category:    payload.Category,
		Price:       payload.Price,
		Vendor:      payload.Vendor,
	}, nil
}

func (p *ProductClient) Exists(ctx context.Context, skuCode string) (bool, error) {
	var exists bool
	err := p.client.Do(ctx, http.MethodGet, "/exists/"+skuCode, nil, &exists)
	if err != nil {
		if errors.Is(err, ErrUnreachable) {
			// Same fail-closed posture: an unreachable catalog reports absence.
			return false, nil
		}
		return false, err
	}
	return exists, nil
}
