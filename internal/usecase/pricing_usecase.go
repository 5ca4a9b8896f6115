package usecase

import (
	"vhc_service/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// SellPriceQuote is the answer to a cost/margin pricing question.
type SellPriceQuote struct {
	CostPrice     decimal.Decimal
	MarginPercent decimal.Decimal
	SellPrice     decimal.Decimal
	// SellPriceIncVAT is the sell price with the configured VAT added.
	SellPriceIncVAT decimal.Decimal
}

type IPricingUseCase interface {
	SellPrice(cost, marginPercent decimal.Decimal) (SellPriceQuote, error)
}

type PricingUseCase struct {
	calc *pricing.Calculator
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(calc *pricing.Calculator) *PricingUseCase {
	return &PricingUseCase{calc: calc}
}

func (u *PricingUseCase) SellPrice(cost, marginPercent decimal.Decimal) (SellPriceQuote, error) {
	sell, err := pricing.SellFromCostAndMargin(cost, marginPercent)
	if err != nil {
		return SellPriceQuote{}, err
	}
	vat := pricing.Round2(pricing.VATAmount(sell, u.calc.VATRate(), false))
	return SellPriceQuote{
		CostPrice:       cost,
		MarginPercent:   marginPercent,
		SellPrice:       sell,
		SellPriceIncVAT: sell.Add(vat),
	}, nil
}
