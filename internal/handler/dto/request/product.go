package request

import "github.com/shopspring/decimal"

type ProductRequest struct {
	SkuCode     string          `json:"skuCode" binding:"required"`
	ProductName string          `json:"productName" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Vendor      string          `json:"vendor" binding:"required"`
}
