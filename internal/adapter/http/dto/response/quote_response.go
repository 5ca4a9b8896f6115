package response

import "vhc_service/internal/domain/pricing"

type QuoteTotalsResponse struct {
	LabourTotal      string `json:"labour_total"`
	PartsTotal       string `json:"parts_total"`
	Subtotal         string `json:"subtotal"`
	VATAmount        string `json:"vat_amount"`
	TotalIncVAT      string `json:"total_inc_vat"`
	IsOverridden     bool   `json:"is_overridden"`
	SelectedOptionID string `json:"selected_option_id,omitempty"`
}

type QuoteItemResponse struct {
	RepairItemID string              `json:"repair_item_id"`
	Name         string              `json:"name"`
	IsGroup      bool                `json:"is_group"`
	Outcome      string              `json:"outcome,omitempty"`
	Totals       QuoteTotalsResponse `json:"totals"`
	GroupTotal   *string             `json:"group_total,omitempty"`
	Children     []QuoteItemResponse `json:"children,omitempty"`
	Warnings     []pricing.Warning   `json:"warnings,omitempty"`
}

type QuoteResponse struct {
	HealthCheckID   string              `json:"health_check_id"`
	Items           []QuoteItemResponse `json:"items"`
	VATRate         string              `json:"vat_rate"`
	LabourTotal     string              `json:"labour_total"`
	PartsTotal      string              `json:"parts_total"`
	Subtotal        string              `json:"subtotal"`
	VATAmount       string              `json:"vat_amount"`
	TotalIncVAT     string              `json:"total_inc_vat"`
	AuthorisedTotal string              `json:"authorised_total"`
	DeclinedTotal   string              `json:"declined_total"`
	DeferredTotal   string              `json:"deferred_total"`
	PendingTotal    string              `json:"pending_total"`
}

func fromQuoteTotals(t pricing.QuoteTotals) QuoteTotalsResponse {
	return QuoteTotalsResponse{
		LabourTotal:      money(t.LabourTotal),
		PartsTotal:       money(t.PartsTotal),
		Subtotal:         money(t.Subtotal),
		VATAmount:        money(t.VATAmount),
		TotalIncVAT:      money(t.TotalIncVAT),
		IsOverridden:     t.IsOverridden,
		SelectedOptionID: t.SelectedOptionID,
	}
}

func fromQuoteItem(q pricing.ItemQuote) QuoteItemResponse {
	res := QuoteItemResponse{
		RepairItemID: q.RepairItemID,
		Name:         q.Name,
		IsGroup:      q.IsGroup,
		Outcome:      string(q.Outcome),
		Totals:       fromQuoteTotals(q.Totals),
		Warnings:     q.Warnings,
	}
	if q.IsGroup {
		gt := money(q.GroupTotal)
		res.GroupTotal = &gt
	}
	for _, c := range q.Children {
		res.Children = append(res.Children, fromQuoteItem(c))
	}
	return res
}

func FromQuote(healthCheckID string, q pricing.QuoteSummary) QuoteResponse {
	res := QuoteResponse{
		HealthCheckID:   healthCheckID,
		Items:           make([]QuoteItemResponse, 0, len(q.Items)),
		VATRate:         q.VATRate.String(),
		LabourTotal:     money(q.LabourTotal),
		PartsTotal:      money(q.PartsTotal),
		Subtotal:        money(q.Subtotal),
		VATAmount:       money(q.VATAmount),
		TotalIncVAT:     money(q.TotalIncVAT),
		AuthorisedTotal: money(q.AuthorisedTotal),
		DeclinedTotal:   money(q.DeclinedTotal),
		DeferredTotal:   money(q.DeferredTotal),
		PendingTotal:    money(q.PendingTotal),
	}
	for _, it := range q.Items {
		res.Items = append(res.Items, fromQuoteItem(it))
	}
	return res
}
