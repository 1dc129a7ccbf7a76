package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func (m Money) Validate() error {
	if m.Amount.IsNegative() {
		return fmt.Errorf("amount[%s] is negative", m.Amount)
	}

	if m.Currency == (currency.Unit{}) {
		return fmt.Errorf("currency is empty")
	}

	return nil
}

// Mul returns the money multiplied by a quantity, keeping the
// currency. Callers validate the quantity before pricing with it.
func (m Money) Mul(quantity int32) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt32(quantity)),
		Currency: m.Currency,
	}
}
