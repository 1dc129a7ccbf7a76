package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/pharmacy/internal/domain"
	"github.com/nikolayk812/pharmacy/internal/port"
	"github.com/nikolayk812/pharmacy/internal/repository"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// shippingPriceAmount is a policy constant, never taken from the request.
var shippingPriceAmount = decimal.NewFromInt(300)

type orderService struct {
	pool   *pgxpool.Pool
	orders port.OrderRepository
}

func NewOrder(pool *pgxpool.Pool) (port.OrderService, error) {
	if pool == nil {
		return nil, errors.New("pool is nil")
	}

	return &orderService{
		pool:   pool,
		orders: repository.NewOrder(pool),
	}, nil
}

// PlaceOrder runs the whole purchase as a single transaction.
//
// The product row is locked for the duration of the transaction, so
// concurrent placements for the same product serialize on it: stock can
// never go negative, and the price snapshot matches the stock state the
// decision was made on. Placements for different products do not block
// each other. Any failure rolls the transaction back, leaving stock
// untouched and no order row behind.
func (s *orderService) PlaceOrder(ctx context.Context, userID int64, req port.PlaceOrderRequest) (domain.Order, error) {
	var o domain.Order

	if req.Quantity < 1 {
		return o, fmt.Errorf("quantity[%d] is not positive", req.Quantity)
	}

	if req.ShippingAddress == "" {
		return o, errors.New("shipping address is empty")
	}

	order, err := repository.WithTx(ctx, s.pool, func(tx pgx.Tx) (domain.Order, error) {
		products := repository.NewProductWithTx(tx)

		product, err := products.GetProductForUpdate(ctx, req.ProductID)
		if err != nil {
			return o, fmt.Errorf("products.GetProductForUpdate: %w", err)
		}

		// The sufficiency check must happen under the row lock,
		// a pre-check outside the transaction cannot prevent overselling.
		if product.Stock < req.Quantity {
			return o, domain.InsufficientStockError{
				ProductID: product.ID,
				Requested: req.Quantity,
				Available: product.Stock,
			}
		}

		if err := products.UpdateProductStock(ctx, product.ID, product.Stock-req.Quantity); err != nil {
			return o, fmt.Errorf("products.UpdateProductStock: %w", err)
		}

		user, err := repository.NewUserWithTx(tx).GetUser(ctx, userID)
		if err != nil {
			return o, fmt.Errorf("users.GetUser: %w", err)
		}

		totalPrice := product.Price.Mul(req.Quantity)

		order, err := repository.NewOrderWithTx(tx).InsertOrder(ctx, domain.Order{
			UserID:          user.ID,
			ProductID:       product.ID,
			Quantity:        req.Quantity,
			ShippingAddress: req.ShippingAddress,
			ShippingPrice:   domain.Money{Amount: shippingPriceAmount, Currency: product.Price.Currency},
			TotalPrice:      totalPrice,
		})
		if err != nil {
			return o, fmt.Errorf("orders.InsertOrder: %w", err)
		}

		product.Stock -= req.Quantity
		order.Product = lo.ToPtr(product)
		order.User = lo.ToPtr(user)

		return order, nil
	})
	if err != nil {
		return o, fmt.Errorf("repository.WithTx: %w", err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.orders.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrdersByUser: %w", err)
	}

	return orders, nil
}
