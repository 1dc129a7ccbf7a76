package dto

import (
	"time"

	"github.com/nikolayk812/pharmacy/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int32           `json:"stock"`
}

type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int32           `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ProductToDTO(product domain.Product) ProductDTO {
	return ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.Amount,
		Currency:    product.Price.Currency.String(),
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
	}
}

func ProductsToDTO(products []domain.Product) []ProductDTO {
	return lo.Map(products, func(p domain.Product, _ int) ProductDTO {
		return ProductToDTO(p)
	})
}
