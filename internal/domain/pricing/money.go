// Package pricing prices repair items: money helpers, line totals and the
// item/group/quote aggregation used by the quote screens and the customer view.
//
// Every function here is pure. Callers load a snapshot, compute, and discard;
// nothing is cached between calls.
package pricing

import (
	"vhc_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Round2 rounds half away from zero to two decimal places.
func Round2(x decimal.Decimal) decimal.Decimal {
	return x.Round(2)
}

// SellFromCostAndMargin converts a cost price and a target margin into a sell price:
// cost / (1 - margin/100).
func SellFromCostAndMargin(cost, marginPercent decimal.Decimal) (decimal.Decimal, error) {
	if cost.IsNegative() {
		return decimal.Zero, entities.NewValidationError("", "cost_price", entities.ErrNegativePrice, cost.String())
	}
	if marginPercent.IsNegative() || marginPercent.GreaterThanOrEqual(hundred) {
		return decimal.Zero, entities.NewValidationError("", "margin_percent", entities.ErrInvalidMargin, marginPercent.String())
	}
	divisor := one.Sub(marginPercent.Div(hundred))
	return Round2(cost.Div(divisor)), nil
}

// MarginFromCostAndSell returns the margin percentage a sell price yields over cost.
// A zero sell price yields a zero margin.
func MarginFromCostAndSell(cost, sell decimal.Decimal) decimal.Decimal {
	if !sell.IsPositive() {
		return decimal.Zero
	}
	return Round2(sell.Sub(cost).Div(sell).Mul(hundred))
}

// VATAmount is subtotal × rate/100, or zero when exempt.
func VATAmount(subtotal, vatRatePercent decimal.Decimal, isExempt bool) decimal.Decimal {
	if isExempt {
		return decimal.Zero
	}
	return subtotal.Mul(vatRatePercent).Div(hundred)
}
