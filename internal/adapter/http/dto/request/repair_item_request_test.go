package request

import (
	"testing"

	"vhc_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestLineItemRequest_ToLineItem(t *testing.T) {
	cost := "32.10"
	r := LineItemRequest{
		Description:     "Pad set",
		Quantity:        " 2 ",
		UnitCostPrice:   &cost,
		UnitSellPrice:   "53.50",
		AllocationType:  "direct",
		IsVATExempt:     true,
		DiscountPercent: "",
	}

	l, err := r.ToLineItem(entities.LineItemKindPart)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if l.Kind != entities.LineItemKindPart || !l.Quantity.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("unexpected line: %+v", l)
	}
	if !l.UnitCostPrice.Valid || l.UnitCostPrice.Decimal.String() != "32.1" {
		t.Fatalf("unexpected cost: %+v", l.UnitCostPrice)
	}
	if !l.DiscountPercent.IsZero() {
		t.Fatalf("expected zero discount, got %s", l.DiscountPercent)
	}
	if l.AllocationType != entities.AllocationDirect || !l.IsVATExempt {
		t.Fatalf("unexpected flags: %+v", l)
	}
}

func TestLineItemRequest_NoCostStaysNull(t *testing.T) {
	l, err := LineItemRequest{Quantity: "1", UnitSellPrice: "10"}.ToLineItem(entities.LineItemKindLabour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if l.UnitCostPrice.Valid {
		t.Fatalf("expected null cost price")
	}
}

func TestRepairOptionRequest_ToRepairOption(t *testing.T) {
	r := RepairOptionRequest{
		Name:   "Premium",
		Labour: []LineItemRequest{{Quantity: "1", UnitSellPrice: "80"}},
		Parts:  []LineItemRequest{{Quantity: "2", UnitSellPrice: "40"}},
	}

	opt, err := r.ToRepairOption()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(opt.Labour) != 1 || opt.Labour[0].Kind != entities.LineItemKindLabour {
		t.Fatalf("unexpected labour: %+v", opt.Labour)
	}
	if len(opt.Parts) != 1 || opt.Parts[0].Kind != entities.LineItemKindPart {
		t.Fatalf("unexpected parts: %+v", opt.Parts)
	}

	r.Parts[0].Quantity = "x"
	if _, err := r.ToRepairOption(); err == nil {
		t.Fatalf("expected error for bad quantity")
	}
}

func TestAuthorizationRequest_DecisionEntities(t *testing.T) {
	r := AuthorizationRequest{Method: "phone", Decisions: []DecisionRequest{
		{RepairItemID: " ri-1 ", Decision: "decline", DeclinedReasonID: "dr-1", DeclinedNotes: "price"},
		{RepairItemID: "ri-2", Decision: "defer", DeferredUntil: "2024-06-01"},
	}}

	got, err := r.DecisionEntities()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got[0].RepairItemID != "ri-1" || got[0].Decision != entities.DecisionDecline || got[0].DeclinedReasonID != "dr-1" {
		t.Fatalf("unexpected decline: %+v", got[0])
	}
	if got[1].DeferredUntil == nil || got[1].DeferredUntil.Format("2006-01-02") != "2024-06-01" {
		t.Fatalf("unexpected deferred until: %v", got[1].DeferredUntil)
	}
	if got[0].DeferredUntil != nil {
		t.Fatalf("expected no deferred date on decline")
	}
}
