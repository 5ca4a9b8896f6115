package pricing

import "vhc_service/internal/domain/entities"

type WarningCode string

const (
	WarningMissingLabour WarningCode = "missing_labour"
	WarningMissingParts  WarningCode = "missing_parts"
	WarningOverridden    WarningCode = "price_overridden"
)

// Warning flags an item the advisor should look at before sending the quote.
type Warning struct {
	RepairItemID string      `json:"repair_item_id"`
	Code         WarningCode `json:"code"`
	Message      string      `json:"message"`
}

// PricingWarnings lists missing labour/parts on an item. The noLabourRequired and
// noPartsRequired flags silence the corresponding warning. A group counts lines on
// its active children as well as its own.
func PricingWarnings(item entities.RepairItem) []Warning {
	var out []Warning
	if item.IsDeleted() {
		return out
	}

	hasLabour, hasParts := hasLines(item)
	if item.IsGroup {
		for _, c := range item.ActiveChildren() {
			l, p := hasLines(c)
			hasLabour = hasLabour || l
			hasParts = hasParts || p
		}
	}

	if !hasLabour && !item.NoLabourRequired {
		out = append(out, Warning{RepairItemID: item.ID, Code: WarningMissingLabour, Message: "no labour has been added"})
	}
	if !hasParts && !item.NoPartsRequired {
		out = append(out, Warning{RepairItemID: item.ID, Code: WarningMissingParts, Message: "no parts have been added"})
	}
	if item.PriceOverride.Valid {
		out = append(out, Warning{RepairItemID: item.ID, Code: WarningOverridden, Message: "price overridden: " + item.PriceOverrideReason})
	}
	return out
}

func hasLines(item entities.RepairItem) (labour, parts bool) {
	l, p, _, err := PricedLines(item)
	if err != nil {
		return false, false
	}
	return len(l) > 0, len(p) > 0
}
