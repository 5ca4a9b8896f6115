package response

import "github.com/shopspring/decimal"

type SellPriceResponse struct {
	CostPrice       string `json:"cost_price"`
	MarginPercent   string `json:"margin_percent"`
	SellPrice       string `json:"sell_price"`
	SellPriceIncVAT string `json:"sell_price_inc_vat"`
}

func FromSellPrice(cost, margin, sell, sellIncVAT decimal.Decimal) SellPriceResponse {
	return SellPriceResponse{
		CostPrice:       money(cost),
		MarginPercent:   margin.String(),
		SellPrice:       money(sell),
		SellPriceIncVAT: money(sellIncVAT),
	}
}
