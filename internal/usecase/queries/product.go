package queries

import (
	"context"

	"order-fulfillment/internal/domain/product"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type ProductView struct {
	SkuCode     string
	ProductName string
	Category    string
	Price       decimal.Decimal
	Vendor      string
}

type ProductReadStore interface {
	FindBySku(ctx context.Context, skuCode string) (*product.Product, error)
	FindAll(ctx context.Context) ([]*product.Product, error)
}

type ProductQueries interface {
	GetBySku(ctx context.Context, skuCode string) (*ProductView, error)
	GetAll(ctx context.Context) ([]*ProductView, error)
	Exists(ctx context.Context, skuCode string) (bool, error)
}

type productQueriesImpl struct {
	reads ProductReadStore
}

func NewProductQueries(reads ProductReadStore) ProductQueries {
	return &productQueriesImpl{reads: reads}
}

func (q *productQueriesImpl) GetBySku(ctx context.Context, skuCode string) (*ProductView, error) {
	entity, err := q.reads.FindBySku(ctx, skuCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return toView(entity), nil
}

func (q *productQueriesImpl) GetAll(ctx context.Context) ([]*ProductView, error) {
	entities, err := q.reads.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	views := make([]*ProductView, len(entities))
	for i, e := range entities {
		views[i] = toView(e)
	}
	return views, nil
}

func (q *productQueriesImpl) Exists(ctx context.Context, skuCode string) (bool, error) {
	_, err := q.reads.FindBySku(ctx, skuCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return true, nil
}

func toView(p *product.Product) *ProductView {
	return &ProductView{
		SkuCode:     p.SkuCode(),
		ProductName: p.Name(),
		Category:    p.Category(),
		Price:       p.Price(),
		Vendor:      p.Vendor(),
	}
}
