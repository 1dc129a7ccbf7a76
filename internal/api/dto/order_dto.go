package dto

import (
	"time"

	"github.com/nikolayk812/pharmacy/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type PlaceOrderRequest struct {
	ProductID       int64  `json:"product_id"`
	Quantity        int32  `json:"quantity"`
	ShippingAddress string `json:"shipping_address"`
}

type OrderDTO struct {
	ID              int64           `json:"id"`
	User            *UserDTO        `json:"user,omitempty"`
	Product         *ProductDTO     `json:"product,omitempty"`
	Quantity        int32           `json:"quantity"`
	ShippingAddress string          `json:"shipping_address"`
	ShippingPrice   decimal.Decimal `json:"shipping_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Currency        string          `json:"currency"`
	CreatedAt       time.Time       `json:"created_at"`
}

func OrderToDTO(order domain.Order) OrderDTO {
	result := OrderDTO{
		ID:              order.ID,
		Quantity:        order.Quantity,
		ShippingAddress: order.ShippingAddress,
		ShippingPrice:   order.ShippingPrice.Amount,
		TotalPrice:      order.TotalPrice.Amount,
		Currency:        order.TotalPrice.Currency.String(),
		CreatedAt:       order.CreatedAt,
	}

	if order.User != nil {
		result.User = lo.ToPtr(UserToDTO(*order.User))
	}

	if order.Product != nil {
		result.Product = lo.ToPtr(ProductToDTO(*order.Product))
	}

	return result
}

func OrdersToDTO(orders []domain.Order) []OrderDTO {
	return lo.Map(orders, func(o domain.Order, _ int) OrderDTO {
		return OrderToDTO(o)
	})
}
