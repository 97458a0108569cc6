package response

import (
	"log/slog"
	"time"

	"order-fulfillment/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID              string    `json:"id"`
	SkuCode         string    `json:"skuCode"`
	ProductName     string    `json:"productName"`
	Quantity        int       `json:"quantity"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	ShippingAddress string    `json:"shippingAddress"`
	OrderDate       time.Time `json:"orderDate"`
}

func FromOrderResult(result *commands.OrderResult) *OrderResponse {
	resp := &OrderResponse{}
	if err := copier.Copy(resp, result); err != nil {
		slog.Error("failed to convert order result", "error", err)
	}
	resp.ID = result.ID.String()
	return resp
}
