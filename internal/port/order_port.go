package port

import (
	"context"

	"github.com/nikolayk812/pharmacy/internal/domain"
)

type OrderRepository interface {
	InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

type PlaceOrderRequest struct {
	ProductID       int64
	Quantity        int32
	ShippingAddress string
}

// OrderService executes a purchase as one unit of work:
// stock check, decrement, price snapshot and order creation
// commit together or not at all.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64, req PlaceOrderRequest) (domain.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
}
