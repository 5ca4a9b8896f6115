package pricing

import (
	"vhc_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ItemQuote is one priced line of a quote. For groups, Totals covers the group's
// own lines and GroupTotal adds the active children.
type ItemQuote struct {
	RepairItemID string                 `json:"repair_item_id"`
	Name         string                 `json:"name"`
	IsGroup      bool                   `json:"is_group"`
	Outcome      entities.OutcomeStatus `json:"outcome,omitempty"`
	Totals       QuoteTotals            `json:"totals"`
	GroupTotal   decimal.Decimal        `json:"group_total"`
	Children     []ItemQuote            `json:"children,omitempty"`
	Warnings     []Warning              `json:"warnings,omitempty"`
}

// QuoteSummary is the priced quote of a whole health check. The four outcome
// buckets always add up to TotalIncVAT.
type QuoteSummary struct {
	Items       []ItemQuote     `json:"items"`
	VATRate     decimal.Decimal `json:"vat_rate"`
	LabourTotal decimal.Decimal `json:"labour_total"`
	PartsTotal  decimal.Decimal `json:"parts_total"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	VATAmount   decimal.Decimal `json:"vat_amount"`
	TotalIncVAT decimal.Decimal `json:"total_inc_vat"`

	AuthorisedTotal decimal.Decimal `json:"authorised_total"`
	DeclinedTotal   decimal.Decimal `json:"declined_total"`
	DeferredTotal   decimal.Decimal `json:"deferred_total"`
	PendingTotal    decimal.Decimal `json:"pending_total"`
}

// SummarizeQuote prices every top-level item of a snapshot. Deleted items and
// deleted children are left out of every figure.
func (c *Calculator) SummarizeQuote(items []entities.RepairItem) (QuoteSummary, error) {
	s := QuoteSummary{Items: make([]ItemQuote, 0, len(items)), VATRate: c.vatRate}

	for _, item := range items {
		if item.IsDeleted() {
			continue
		}
		q, err := c.quoteItem(item)
		if err != nil {
			return QuoteSummary{}, err
		}
		s.addLine(item.OutcomeStatus, q.Totals)
		for i, child := range item.ActiveChildren() {
			s.addLine(child.OutcomeStatus, q.Children[i].Totals)
		}
		s.Items = append(s.Items, q)
	}
	return s, nil
}

func (c *Calculator) quoteItem(item entities.RepairItem) (ItemQuote, error) {
	totals, err := c.ComputeItemTotals(item)
	if err != nil {
		return ItemQuote{}, err
	}
	groupTotal, err := c.ComputeGroupTotal(item)
	if err != nil {
		return ItemQuote{}, err
	}

	q := ItemQuote{
		RepairItemID: item.ID,
		Name:         item.Name,
		IsGroup:      item.IsGroup,
		Outcome:      item.OutcomeStatus,
		Totals:       totals,
		GroupTotal:   groupTotal,
		Warnings:     PricingWarnings(item),
	}
	for _, child := range item.ActiveChildren() {
		cq, err := c.quoteItem(child)
		if err != nil {
			return ItemQuote{}, err
		}
		q.Children = append(q.Children, cq)
	}
	return q, nil
}

func (s *QuoteSummary) addLine(outcome entities.OutcomeStatus, t QuoteTotals) {
	s.LabourTotal = s.LabourTotal.Add(t.LabourTotal)
	s.PartsTotal = s.PartsTotal.Add(t.PartsTotal)
	s.Subtotal = s.Subtotal.Add(t.Subtotal)
	s.VATAmount = s.VATAmount.Add(t.VATAmount)
	s.TotalIncVAT = s.TotalIncVAT.Add(t.TotalIncVAT)

	switch outcome {
	case entities.OutcomeAuthorised:
		s.AuthorisedTotal = s.AuthorisedTotal.Add(t.TotalIncVAT)
	case entities.OutcomeDeclined:
		s.DeclinedTotal = s.DeclinedTotal.Add(t.TotalIncVAT)
	case entities.OutcomeDeferred:
		s.DeferredTotal = s.DeferredTotal.Add(t.TotalIncVAT)
	case entities.OutcomeNone, entities.OutcomeDeleted:
		s.PendingTotal = s.PendingTotal.Add(t.TotalIncVAT)
	default:
		panic("pricing: unhandled outcome status " + string(outcome))
	}
}
