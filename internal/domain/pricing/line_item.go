package pricing

import (
	"vhc_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LineTotal prices a single line, rounded to pence.
//
//	part:   quantity × unitSellPrice
//	labour: hours × hourlyRate × (1 - discount/100)
func LineTotal(l entities.LineItem) decimal.Decimal {
	total := l.Quantity.Mul(l.UnitSellPrice)
	if l.IsLabour() && l.DiscountPercent.IsPositive() {
		total = total.Mul(one.Sub(l.DiscountPercent.Div(hundred)))
	}
	return Round2(total)
}

// ValidateLineItem checks the invariants every stored line must hold.
// itemID is the owning repair item and is echoed back in the error.
func ValidateLineItem(itemID string, l entities.LineItem) error {
	fail := func(field string, err error, details string) error {
		v := entities.NewValidationError(itemID, field, err, details)
		v.LineItemID = l.ID
		return v
	}

	switch l.Kind {
	case entities.LineItemKindLabour, entities.LineItemKindPart:
	default:
		return fail("kind", entities.ErrValidation, "unknown line item kind "+string(l.Kind))
	}
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"quantity", l.Quantity},
		{"unit_sell_price", l.UnitSellPrice},
		{"unit_cost_price", l.UnitCostPrice.Decimal},
		{"discount_percent", l.DiscountPercent},
	} {
		if !entities.DecimalInRange(f.value) {
			return fail(f.name, entities.ErrValueOutOfRange, "")
		}
	}
	if !l.Quantity.IsPositive() {
		return fail("quantity", entities.ErrNonPositiveQuantity, l.Quantity.String())
	}
	if l.UnitSellPrice.IsNegative() {
		return fail("unit_sell_price", entities.ErrNegativePrice, l.UnitSellPrice.String())
	}
	if l.UnitCostPrice.Valid && l.UnitCostPrice.Decimal.IsNegative() {
		return fail("unit_cost_price", entities.ErrNegativePrice, l.UnitCostPrice.Decimal.String())
	}
	if !l.DiscountPercent.IsZero() {
		if !l.IsLabour() {
			return fail("discount_percent", entities.ErrDiscountNotAllowed, "")
		}
		if l.DiscountPercent.IsNegative() || l.DiscountPercent.GreaterThan(hundred) {
			return fail("discount_percent", entities.ErrInvalidDiscount, l.DiscountPercent.String())
		}
	}
	if !l.AllocationType.IsValid() {
		return fail("allocation_type", entities.ErrInvalidAllocation, string(l.AllocationType))
	}
	return nil
}

// ValidateLineItems validates a batch and stops at the first failure.
func ValidateLineItems(itemID string, lines ...[]entities.LineItem) error {
	for _, batch := range lines {
		for _, l := range batch {
			if err := ValidateLineItem(itemID, l); err != nil {
				return err
			}
		}
	}
	return nil
}
