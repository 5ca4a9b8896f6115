package entities

import "github.com/shopspring/decimal"

type LineItemKind string

const (
	LineItemKindLabour LineItemKind = "labour"
	LineItemKindPart   LineItemKind = "part"
)

// AllocationType tells whether a part attached to a group is shared by the
// whole group or belongs to one specific child.
type AllocationType string

const (
	AllocationShared AllocationType = "shared"
	AllocationDirect AllocationType = "direct"
)

// Amounts are bounded before any arithmetic: decimal keeps the exponent apart
// from the coefficient, so "1e50000000" parses cheaply but rescaling it for a
// comparison or rounding allocates a number with fifty million digits.
const (
	MaxDecimalScale    = 10
	MaxDecimalExponent = 9
)

// MaxDecimalMagnitude is the exclusive upper bound for any quantity or amount.
var MaxDecimalMagnitude = decimal.New(1, 9)

// DecimalInRange reports whether d is safe to price with. The exponent is
// checked first so out-of-range values are rejected without being rescaled.
func DecimalInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < -MaxDecimalScale || exp > MaxDecimalExponent {
		return false
	}
	return d.Abs().LessThan(MaxDecimalMagnitude)
}

func (a AllocationType) IsValid() bool {
	switch a {
	case AllocationShared, AllocationDirect, "":
		return true
	}
	return false
}

// LineItem is a labour or parts entry owned by a repair item or a repair option.
//
// For labour, Quantity is hours and UnitSellPrice the hourly rate.
type LineItem struct {
	ID                string              `json:"id"`
	Kind              LineItemKind        `json:"kind"`
	Description       string              `json:"description"`
	Quantity          decimal.Decimal     `json:"quantity"`
	UnitCostPrice     decimal.NullDecimal `json:"unit_cost_price"`
	UnitSellPrice     decimal.Decimal     `json:"unit_sell_price"`
	DiscountPercent   decimal.Decimal     `json:"discount_percent"`
	IsVATExempt       bool                `json:"is_vat_exempt"`
	AllocationType    AllocationType      `json:"allocation_type,omitempty"`
	ChildRepairItemID string              `json:"child_repair_item_id,omitempty"`
}

func (l LineItem) IsLabour() bool { return l.Kind == LineItemKindLabour }
