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

type orderRepository struct {
	db DBTX
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{db: pool}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	var o domain.Order

	if order.Quantity < 1 {
		return o, fmt.Errorf("quantity[%d] is not positive", order.Quantity)
	}

	if order.ShippingAddress == "" {
		return o, errors.New("shipping address is empty")
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO orders (user_id, product_id, quantity, shipping_address,
		                     shipping_price_amount, total_price_amount, price_currency)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		order.UserID, order.ProductID, order.Quantity, order.ShippingAddress,
		order.ShippingPrice.Amount, order.TotalPrice.Amount, order.TotalPrice.Currency.String())

	if err := row.Scan(&order.ID, &order.CreatedAt); err != nil {
		return o, fmt.Errorf("row.Scan: %w", err)
	}

	return order, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	var o domain.Order

	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, product_id, quantity, shipping_address,
		        shipping_price_amount, total_price_amount, price_currency, created_at
		 FROM orders WHERE id = $1`, orderID)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return o, fmt.Errorf("scanOrder: %w", domain.ErrOrderNotFound)
		}
		return o, fmt.Errorf("scanOrder: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, product_id, quantity, shipping_address,
		        shipping_price_amount, total_price_amount, price_currency, created_at
		 FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("db.Query: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanOrder: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		o            domain.Order
		currencyCode string
	)

	err := row.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.ShippingAddress,
		&o.ShippingPrice.Amount, &o.TotalPrice.Amount, &currencyCode, &o.CreatedAt)
	if err != nil {
		return o, err
	}

	parsedCurrency, err := currency.ParseISO(currencyCode)
	if err != nil {
		return o, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}

	o.ShippingPrice.Currency = parsedCurrency
	o.TotalPrice.Currency = parsedCurrency

	return o, nil
}
