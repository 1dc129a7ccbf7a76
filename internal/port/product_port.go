package port

import (
	"context"

	"github.com/nikolayk812/pharmacy/internal/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProductForUpdate locks the product row until the surrounding
	// transaction finishes. Only meaningful on a tx-bound repository.
	GetProductForUpdate(ctx context.Context, productID int64) (domain.Product, error)

	UpdateProductStock(ctx context.Context, productID int64, stock int32) error
}
