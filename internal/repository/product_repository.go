package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/pharmacy/internal/domain"
	"github.com/nikolayk812/pharmacy/internal/port"
	"golang.org/x/text/currency"
)

type productRepository struct {
	db DBTX
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{db: pool}
}

func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{db: tx}
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var p domain.Product

	if err := product.Price.Validate(); err != nil {
		return p, fmt.Errorf("price.Validate: %w", err)
	}

	if product.Stock < 0 {
		return p, fmt.Errorf("stock[%d] is negative", product.Stock)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO products (name, description, price_amount, price_currency, stock)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		product.Name, product.Description, product.Price.Amount, product.Price.Currency.String(), product.Stock)

	if err := row.Scan(&product.ID, &product.CreatedAt); err != nil {
		return p, fmt.Errorf("row.Scan: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	return r.getProduct(ctx, productID, false)
}

func (r *productRepository) GetProductForUpdate(ctx context.Context, productID int64) (domain.Product, error) {
	if _, ok := r.db.(pgx.Tx); !ok {
		return domain.Product{}, errors.New("row lock requires a transaction")
	}

	return r.getProduct(ctx, productID, true)
}

func (r *productRepository) getProduct(ctx context.Context, productID int64, forUpdate bool) (domain.Product, error) {
	var p domain.Product

	query := `SELECT id, name, description, price_amount, price_currency, stock, created_at
		 FROM products WHERE id = $1`
	if forUpdate {
		// Blocks concurrent placements for the same product until commit or rollback.
		query += " FOR UPDATE"
	}

	row := r.db.QueryRow(ctx, query, productID)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, fmt.Errorf("scanProduct: %w", domain.ErrProductNotFound)
		}
		return p, fmt.Errorf("scanProduct: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, price_amount, price_currency, stock, created_at
		 FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db.Query: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanProduct: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return products, nil
}

func (r *productRepository) UpdateProductStock(ctx context.Context, productID int64, stock int32) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE products SET stock = $2 WHERE id = $1`, productID, stock)
	if err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("db.Exec: %w", domain.ErrProductNotFound)
	}

	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p            domain.Product
		currencyCode string
	)

	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price.Amount, &currencyCode, &p.Stock, &p.CreatedAt); err != nil {
		return p, err
	}

	parsedCurrency, err := currency.ParseISO(currencyCode)
	if err != nil {
		return p, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}
	p.Price.Currency = parsedCurrency

	return p, nil
}
