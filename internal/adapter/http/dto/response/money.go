package response

import "github.com/shopspring/decimal"

// money renders amounts with two decimals so clients never see float noise.
func money(d decimal.Decimal) string { return d.StringFixed(2) }

func nullMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := money(d.Decimal)
	return &s
}
