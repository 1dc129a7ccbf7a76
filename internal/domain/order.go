package domain

import "time"

// Order is created exactly once by the placement transaction
// and never mutated afterwards. TotalPrice and ShippingPrice are
// snapshots taken at creation time.
type Order struct {
	ID              int64
	UserID          int64
	ProductID       int64
	Quantity        int32
	ShippingAddress string
	ShippingPrice   Money
	TotalPrice      Money

	CreatedAt time.Time

	// Loaded for presentation, nil when not requested.
	Product *Product
	User    *User
}
