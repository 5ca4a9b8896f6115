package pricing

import (
	"fmt"
	"strings"

	"vhc_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Shape classifies how a repair item is priced. Every aggregation switches over
// it exhaustively so a new shape cannot slip past the totals logic.
type Shape int

const (
	// ShapeStandalone is priced from its own labour and parts lines.
	ShapeStandalone Shape = iota
	// ShapeOptionBased is priced from exactly one of its options.
	ShapeOptionBased
	// ShapeGrouped adds its active children to its own totals.
	ShapeGrouped
)

func (s Shape) String() string {
	switch s {
	case ShapeStandalone:
		return "standalone"
	case ShapeOptionBased:
		return "option_based"
	case ShapeGrouped:
		return "grouped"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ShapeOf returns the pricing shape of an item. A group without active
// children prices like any other item.
func ShapeOf(item entities.RepairItem) Shape {
	if item.IsGroup && len(item.ActiveChildren()) > 0 {
		return ShapeGrouped
	}
	if len(item.Options) > 0 {
		return ShapeOptionBased
	}
	return ShapeStandalone
}

// QuoteTotals is the priced breakdown of one repair item.
type QuoteTotals struct {
	LabourTotal      decimal.Decimal `json:"labour_total"`
	PartsTotal       decimal.Decimal `json:"parts_total"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	VATAmount        decimal.Decimal `json:"vat_amount"`
	TotalIncVAT      decimal.Decimal `json:"total_inc_vat"`
	IsOverridden     bool            `json:"is_overridden"`
	SelectedOptionID string          `json:"selected_option_id,omitempty"`
}

// Calculator holds the VAT rate applied to every non-exempt line.
type Calculator struct {
	vatRate decimal.Decimal
}

func NewCalculator(vatRatePercent decimal.Decimal) *Calculator {
	return &Calculator{vatRate: vatRatePercent}
}

func (c *Calculator) VATRate() decimal.Decimal { return c.vatRate }

// SelectOption picks the option an item is priced from: the selected one,
// otherwise the first recommended one, otherwise the first. "First" follows
// SortOrder, not the order options were stored in.
func SelectOption(item entities.RepairItem) (entities.RepairOption, error) {
	if len(item.Options) == 0 {
		return entities.RepairOption{}, entities.NewNotFoundError("repair option", item.SelectedOptionID)
	}
	if item.SelectedOptionID != "" {
		opt, ok := item.FindOption(item.SelectedOptionID)
		if !ok {
			return entities.RepairOption{}, entities.NewNotFoundError("repair option", item.SelectedOptionID)
		}
		return opt, nil
	}
	opts := item.SortedOptions()
	for _, o := range opts {
		if o.IsRecommended {
			return o, nil
		}
	}
	return opts[0], nil
}

// PricedLines returns the labour and parts lines an item's own totals come from.
func PricedLines(item entities.RepairItem) (labour, parts []entities.LineItem, optionID string, err error) {
	if len(item.Options) > 0 {
		opt, err := SelectOption(item)
		if err != nil {
			return nil, nil, "", err
		}
		return opt.Labour, opt.Parts, opt.ID, nil
	}
	return item.Labour, item.Parts, "", nil
}

// ComputeItemTotals prices an item on its own, ignoring any children.
// Items with options are priced from a single option, never a sum across options.
func (c *Calculator) ComputeItemTotals(item entities.RepairItem) (QuoteTotals, error) {
	labour, parts, optionID, err := PricedLines(item)
	if err != nil {
		return QuoteTotals{}, err
	}
	if err := ValidateLineItems(item.ID, labour, parts); err != nil {
		return QuoteTotals{}, err
	}

	t := QuoteTotals{SelectedOptionID: optionID}
	vatable := decimal.Zero
	for _, l := range labour {
		lt := LineTotal(l)
		t.LabourTotal = t.LabourTotal.Add(lt)
		if !l.IsVATExempt {
			vatable = vatable.Add(lt)
		}
	}
	for _, p := range parts {
		lt := LineTotal(p)
		t.PartsTotal = t.PartsTotal.Add(lt)
		if !p.IsVATExempt {
			vatable = vatable.Add(lt)
		}
	}

	t.Subtotal = t.LabourTotal.Add(t.PartsTotal)
	t.VATAmount = Round2(VATAmount(vatable, c.vatRate, false))
	t.TotalIncVAT = t.Subtotal.Add(t.VATAmount)

	if item.PriceOverride.Valid {
		if err := ValidatePriceOverride(item.ID, item.PriceOverride, item.PriceOverrideReason); err != nil {
			return QuoteTotals{}, err
		}
		t.TotalIncVAT = Round2(item.PriceOverride.Decimal)
		t.IsOverridden = true
	}
	return t, nil
}

// ValidatePriceOverride enforces that an override is in range, non-negative and explained.
func ValidatePriceOverride(itemID string, override decimal.NullDecimal, reason string) error {
	if !override.Valid {
		return nil
	}
	if !entities.DecimalInRange(override.Decimal) {
		return entities.NewValidationError(itemID, "price_override", entities.ErrValueOutOfRange, "")
	}
	if override.Decimal.IsNegative() {
		return entities.NewValidationError(itemID, "price_override", entities.ErrNegativeOverride, override.Decimal.String())
	}
	if strings.TrimSpace(reason) == "" {
		return entities.NewValidationError(itemID, "price_override_reason", entities.ErrOverrideReasonRequired, "")
	}
	return nil
}

// ComputeGroupTotal returns the inc-VAT total of an item plus its non-deleted
// children. Non-group items return their own total.
func (c *Calculator) ComputeGroupTotal(group entities.RepairItem) (decimal.Decimal, error) {
	own, err := c.ComputeItemTotals(group)
	if err != nil {
		return decimal.Zero, err
	}

	switch s := ShapeOf(group); s {
	case ShapeStandalone, ShapeOptionBased:
		return own.TotalIncVAT, nil
	case ShapeGrouped:
		total := own.TotalIncVAT
		for _, child := range group.ActiveChildren() {
			ct, err := c.ComputeItemTotals(child)
			if err != nil {
				return decimal.Zero, err
			}
			total = total.Add(ct.TotalIncVAT)
		}
		return total, nil
	default:
		panic(fmt.Sprintf("pricing: unhandled item shape %s", s))
	}
}
