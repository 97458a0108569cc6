package product

import (
	"strings"

	"order-fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptySkuCode  = errs.New("product sku code must not be blank")
	ErrEmptyName     = errs.New("product name must not be empty")
	ErrEmptyCategory = errs.New("product category must not be empty")
	ErrEmptyVendor   = errs.New("product vendor must not be empty")
	ErrNegativePrice = errs.New("product price must not be negative")
)

type Product struct {
	skuCode  string
	name     string
	category string
	price    decimal.Decimal
	vendor   string
}

func NewProduct(skuCode, name, category string, price decimal.Decimal, vendor string) (*Product, error) {
	skuCode = strings.TrimSpace(skuCode)
	if skuCode == "" {
		return nil, ErrEmptySkuCode
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(category) == "" {
		return nil, ErrEmptyCategory
	}
	if strings.TrimSpace(vendor) == "" {
		return nil, ErrEmptyVendor
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Product{
		skuCode:  skuCode,
		name:     name,
		category: category,
		price:    price,
		vendor:   vendor,
	}, nil
}

func (p *Product) SkuCode() string        { return p.skuCode }
func (p *Product) Name() string           { return p.name }
func (p *Product) Category() string       { return p.category }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Vendor() string         { return p.vendor }
