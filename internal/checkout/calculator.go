// Package checkout prices a single cart line.
package checkout

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidLine = errors.New("invalid cart line")

type Calculator struct {
	ShippingFlat decimal.Decimal
	TaxRate      decimal.Decimal
}

type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func NewCalculator(shippingFlat, taxRate decimal.Decimal) Calculator {
	return Calculator{ShippingFlat: shippingFlat, TaxRate: taxRate}
}

// Compute applies the flat shipping fee and tax rate to unitPrice*quantity.
// Nothing is rounded; rounding is a display concern.
func (c Calculator) Compute(unitPrice decimal.Decimal, quantity int) (Breakdown, error) {
	if quantity < 1 {
		return Breakdown{}, fmt.Errorf("%w: quantity must be >= 1, got %d", ErrInvalidLine, quantity)
	}
	if unitPrice.IsNegative() {
		return Breakdown{}, fmt.Errorf("%w: unit price must be >= 0, got %s", ErrInvalidLine, unitPrice)
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	tax := subtotal.Mul(c.TaxRate)

	return Breakdown{
		Subtotal: subtotal,
		Shipping: c.ShippingFlat,
		Tax:      tax,
		Total:    subtotal.Add(c.ShippingFlat).Add(tax),
	}, nil
}
