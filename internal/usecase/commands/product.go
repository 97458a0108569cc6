package commands

import (
	"context"
	"log/slog"

	"order-fulfillment/internal/domain/product"
	reqdto "order-fulfillment/internal/handler/dto/request"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/errs"
)

type ProductCommands interface {
	CreateProduct(ctx context.Context, req reqdto.ProductRequest) error
	UpdateProduct(ctx context.Context, skuCode string, req reqdto.ProductRequest) error
	DeleteProduct(ctx context.Context, skuCode string) error
}

type productUseCaseImpl struct {
	repo  ProductRepository
	reads ProductReadStore
}

// ProductReadStore is the lookup side shared with queries; commands use it
// to check existence before update and delete.
type ProductReadStore interface {
	FindBySku(ctx context.Context, skuCode string) (*product.Product, error)
}

func NewProductCommands(repo ProductRepository, reads ProductReadStore) ProductCommands {
	return &productUseCaseImpl{repo: repo, reads: reads}
}

func (u *productUseCaseImpl) CreateProduct(ctx context.Context, req reqdto.ProductRequest) error {
	entity, err := product.NewProduct(req.SkuCode, req.ProductName, req.Category, req.Price, req.Vendor)
	if err != nil {
		return errs.Mark(err, errs.ErrBadRequest)
	}

	if err := u.repo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrBadRequest)
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	slog.Info("product created", "sku_code", entity.SkuCode(), "product_name", entity.Name())
	return nil
}

func (u *productUseCaseImpl) UpdateProduct(ctx context.Context, skuCode string, req reqdto.ProductRequest) error {
	if _, err := u.findExisting(ctx, skuCode); err != nil {
		return err
	}

	entity, err := product.NewProduct(skuCode, req.ProductName, req.Category, req.Price, req.Vendor)
	if err != nil {
		return errs.Mark(err, errs.ErrBadRequest)
	}

	if err := u.repo.Update(ctx, entity); err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	slog.Info("product updated", "sku_code", skuCode)
	return nil
}

func (u *productUseCaseImpl) DeleteProduct(ctx context.Context, skuCode string) error {
	if _, err := u.findExisting(ctx, skuCode); err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, skuCode); err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	slog.Info("product deleted", "sku_code", skuCode)
	return nil
}

func (u *productUseCaseImpl) findExisting(ctx context.Context, skuCode string) (*product.Product, error) {
	entity, err := u.reads.FindBySku(ctx, skuCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return entity, nil
}
