package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/pharmacy/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func randomProduct() domain.Product {
	return domain.Product{
		Name:        gofakeit.ProductName(),
		Description: gofakeit.Sentence(8),
		Price: domain.Money{
			Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
			Currency: randomCurrency(),
		},
		Stock: int32(gofakeit.Number(1, 100)),
	}
}

func randomUser() domain.User {
	return domain.User{
		Name:         gofakeit.Name(),
		Email:        gofakeit.Email(),
		Phone:        "+2547" + gofakeit.DigitN(8),
		PasswordHash: gofakeit.UUID(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func moneyComparers() cmp.Options {
	return cmp.Options{
		cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		}),
		cmp.Comparer(func(x, y currency.Unit) bool {
			return x.String() == y.String()
		}),
	}
}

func assertProduct(t *testing.T, expected, actual domain.Product) {
	t.Helper()

	opts := append(moneyComparers(),
		cmpopts.IgnoreFields(domain.Product{}, "ID", "CreatedAt"))

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.NotZero(t, actual.ID)
	assert.False(t, actual.CreatedAt.IsZero())
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	opts := append(moneyComparers(),
		cmpopts.IgnoreFields(domain.Order{}, "ID", "CreatedAt", "Product", "User"))

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.NotZero(t, actual.ID)
	assert.False(t, actual.CreatedAt.IsZero())
}
