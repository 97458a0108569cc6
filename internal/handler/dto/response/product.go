package response

import (
	"log/slog"

	"order-fulfillment/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	SkuCode     string          `json:"skuCode"`
	ProductName string          `json:"productName"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Vendor      string          `json:"vendor"`
}

func FromProductView(view *queries.ProductView) *ProductResponse {
	resp := &ProductResponse{}
	if err := copier.Copy(resp, view); err != nil {
		slog.Error("failed to convert product view", "error", err)
	}
	return resp
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	resps := make([]*ProductResponse, len(views))
	for i, v := range views {
		resps[i] = FromProductView(v)
	}
	return resps
}
