package request

import "github.com/shopspring/decimal"

// SellPriceRequest asks for the sell price that yields a margin on a cost.
type SellPriceRequest struct {
	CostPrice     string `json:"cost_price" binding:"required,decimal"`
	MarginPercent string `json:"margin_percent" binding:"required,decimal"`
}

func (r SellPriceRequest) Decimals() (cost, margin decimal.Decimal, err error) {
	if cost, err = parseDecimal(r.CostPrice); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if margin, err = parseDecimal(r.MarginPercent); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return cost, margin, nil
}
