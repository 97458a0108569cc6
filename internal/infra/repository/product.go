package repository

import (
	"context"
	"errors"

	"order-fulfillment/internal/domain/product"
	"order-fulfillment/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	const query = `
		INSERT INTO products (sku_code, product_name, category, price, vendor)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, p.SkuCode(), p.Name(), p.Category(), p.Price().String(), p.Vendor())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "product sku already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	const query = `
		UPDATE products
		SET product_name = $2, category = $3, price = $4, vendor = $5
		WHERE sku_code = $1`

	tag, err := r.db.Exec(ctx, query, p.SkuCode(), p.Name(), p.Category(), p.Price().String(), p.Vendor())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "product not found", nil)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, skuCode string) error {
	const query = `DELETE FROM products WHERE sku_code = $1`

	tag, err := r.db.Exec(ctx, query, skuCode)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "product not found", nil)
	}
	return nil
}

func (r *ProductRepository) FindBySku(ctx context.Context, skuCode string) (*product.Product, error) {
	const query = `
		SELECT sku_code, product_name, category, price::text, vendor
		FROM products WHERE sku_code = $1`

	row := r.db.QueryRow(ctx, query, skuCode)
	entity, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "product not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read product", err)
	}
	return entity, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	const query = `
		SELECT sku_code, product_name, category, price::text, vendor
		FROM products ORDER BY sku_code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list products", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		entity, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan product", err)
		}
		products = append(products, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate products", err)
	}

	return products, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		skuCode, name, category, vendor, price string
	)
	if err := row.Scan(&skuCode, &name, &category, &price, &vendor); err != nil {
		return nil, err
	}

	priceDec, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(skuCode, name, category, priceDec, vendor)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
