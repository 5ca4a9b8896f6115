package pricing

import (
	"errors"
	"testing"

	"vhc_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func newCalc() *Calculator { return NewCalculator(d("20")) }

func TestComputeItemTotals(t *testing.T) {
	t.Run("labour and parts with vat", func(t *testing.T) {
		item := entities.RepairItem{
			ID:     "brakes",
			Labour: []entities.LineItem{labour("l1", "1", "100")},
			Parts:  []entities.LineItem{part("p1", "1", "50")},
		}
		got, err := newCalc().ComputeItemTotals(item)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.LabourTotal.Equal(d("100")) || !got.PartsTotal.Equal(d("50")) {
			t.Fatalf("unexpected breakdown: %+v", got)
		}
		if !got.Subtotal.Equal(d("150")) || !got.VATAmount.Equal(d("30")) || !got.TotalIncVAT.Equal(d("180")) {
			t.Fatalf("expected 150/30/180, got %s/%s/%s", got.Subtotal, got.VATAmount, got.TotalIncVAT)
		}
		if got.IsOverridden {
			t.Fatalf("expected not overridden")
		}
	})

	t.Run("vat exempt line", func(t *testing.T) {
		exempt := part("p2", "1", "50")
		exempt.IsVATExempt = true
		item := entities.RepairItem{
			ID:     "mot",
			Labour: []entities.LineItem{labour("l1", "1", "100")},
			Parts:  []entities.LineItem{exempt},
		}
		got, err := newCalc().ComputeItemTotals(item)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.VATAmount.Equal(d("20")) || !got.TotalIncVAT.Equal(d("170")) {
			t.Fatalf("expected vat 20 total 170, got %s/%s", got.VATAmount, got.TotalIncVAT)
		}
	})

	t.Run("empty item", func(t *testing.T) {
		got, err := newCalc().ComputeItemTotals(entities.RepairItem{ID: "x"})
		if err != nil || !got.TotalIncVAT.IsZero() {
			t.Fatalf("expected zero total, got %+v err=%v", got, err)
		}
	})

	t.Run("override replaces total only", func(t *testing.T) {
		item := entities.RepairItem{
			ID:                  "brakes",
			Labour:              []entities.LineItem{labour("l1", "1", "100")},
			Parts:               []entities.LineItem{part("p1", "1", "50")},
			PriceOverride:       decimal.NewNullDecimal(d("99.999")),
			PriceOverrideReason: "loyalty",
		}
		got, err := newCalc().ComputeItemTotals(item)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.IsOverridden || !got.TotalIncVAT.Equal(d("100")) {
			t.Fatalf("expected overridden total 100, got %+v", got)
		}
		if !got.Subtotal.Equal(d("150")) || !got.VATAmount.Equal(d("30")) {
			t.Fatalf("expected breakdown kept, got %+v", got)
		}
	})

	t.Run("zero override is honoured", func(t *testing.T) {
		item := entities.RepairItem{
			ID:                  "goodwill",
			Parts:               []entities.LineItem{part("p1", "1", "50")},
			PriceOverride:       decimal.NewNullDecimal(decimal.Zero),
			PriceOverrideReason: "goodwill",
		}
		got, err := newCalc().ComputeItemTotals(item)
		if err != nil || !got.TotalIncVAT.IsZero() || !got.IsOverridden {
			t.Fatalf("expected zero overridden total, got %+v err=%v", got, err)
		}
	})

	t.Run("override without reason", func(t *testing.T) {
		item := entities.RepairItem{ID: "x", PriceOverride: decimal.NewNullDecimal(d("10")), PriceOverrideReason: "  "}
		_, err := newCalc().ComputeItemTotals(item)
		if !errors.Is(err, entities.ErrOverrideReasonRequired) {
			t.Fatalf("expected ErrOverrideReasonRequired, got %v", err)
		}
	})

	t.Run("negative override", func(t *testing.T) {
		item := entities.RepairItem{ID: "x", PriceOverride: decimal.NewNullDecimal(d("-1")), PriceOverrideReason: "r"}
		_, err := newCalc().ComputeItemTotals(item)
		if !errors.Is(err, entities.ErrNegativeOverride) {
			t.Fatalf("expected ErrNegativeOverride, got %v", err)
		}
	})

	t.Run("override out of range", func(t *testing.T) {
		for _, amount := range []string{"1e50000000", "1e-50000000", "1000000000"} {
			item := entities.RepairItem{ID: "x", PriceOverride: decimal.NewNullDecimal(d(amount)), PriceOverrideReason: "r"}
			_, err := newCalc().ComputeItemTotals(item)
			if !errors.Is(err, entities.ErrValueOutOfRange) {
				t.Fatalf("%s: expected ErrValueOutOfRange, got %v", amount, err)
			}
		}
	})

	t.Run("invalid line names the item", func(t *testing.T) {
		item := entities.RepairItem{ID: "tyres", Parts: []entities.LineItem{part("p9", "0", "80")}}
		_, err := newCalc().ComputeItemTotals(item)
		var ve *entities.ValidationError
		if !errors.As(err, &ve) || ve.ItemID != "tyres" || ve.LineItemID != "p9" {
			t.Fatalf("expected validation error on tyres/p9, got %v", err)
		}
	})
}

func TestComputeItemTotals_Options(t *testing.T) {
	item := entities.RepairItem{
		ID: "tyres",
		Options: []entities.RepairOption{
			{ID: "budget", Parts: []entities.LineItem{part("p1", "1", "50")}},
			{ID: "premium", IsRecommended: true, Parts: []entities.LineItem{part("p2", "1", "100")}},
		},
		// direct lines are ignored once options exist
		Parts: []entities.LineItem{part("p3", "1", "1000")},
	}

	t.Run("recommended when nothing selected", func(t *testing.T) {
		got, err := newCalc().ComputeItemTotals(item)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.SelectedOptionID != "premium" || !got.TotalIncVAT.Equal(d("120")) {
			t.Fatalf("expected premium at 120, got %+v", got)
		}
	})

	t.Run("selected option only", func(t *testing.T) {
		sel := item
		sel.SelectedOptionID = "budget"
		got, err := newCalc().ComputeItemTotals(sel)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.SelectedOptionID != "budget" || !got.TotalIncVAT.Equal(d("60")) {
			t.Fatalf("expected budget at 60, got %+v", got)
		}
	})

	t.Run("first when none recommended", func(t *testing.T) {
		plain := item
		plain.Options = []entities.RepairOption{
			{ID: "a", Parts: []entities.LineItem{part("p1", "1", "10")}},
			{ID: "b", Parts: []entities.LineItem{part("p2", "1", "20")}},
		}
		got, err := newCalc().ComputeItemTotals(plain)
		if err != nil || got.SelectedOptionID != "a" {
			t.Fatalf("expected option a, got %+v err=%v", got, err)
		}
	})

	t.Run("fallback follows sort order", func(t *testing.T) {
		plain := item
		plain.Options = []entities.RepairOption{
			{ID: "late", SortOrder: 2, Parts: []entities.LineItem{part("p1", "1", "10")}},
			{ID: "early", SortOrder: 1, Parts: []entities.LineItem{part("p2", "1", "20")}},
		}
		got, err := newCalc().ComputeItemTotals(plain)
		if err != nil || got.SelectedOptionID != "early" {
			t.Fatalf("expected option early, got %+v err=%v", got, err)
		}
		if plain.Options[0].ID != "late" {
			t.Fatalf("stored option order was modified")
		}
	})

	t.Run("recommended follows sort order", func(t *testing.T) {
		rec := item
		rec.Options = []entities.RepairOption{
			{ID: "b", SortOrder: 5, IsRecommended: true, Parts: []entities.LineItem{part("p1", "1", "10")}},
			{ID: "c", SortOrder: 9},
			{ID: "a", SortOrder: 3, IsRecommended: true, Parts: []entities.LineItem{part("p2", "1", "20")}},
		}
		got, err := SelectOption(rec)
		if err != nil || got.ID != "a" {
			t.Fatalf("expected option a, got %+v err=%v", got, err)
		}
	})

	t.Run("unknown selected option", func(t *testing.T) {
		bad := item
		bad.SelectedOptionID = "missing"
		_, err := newCalc().ComputeItemTotals(bad)
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestComputeGroupTotal(t *testing.T) {
	group := entities.RepairItem{
		ID:      "service",
		IsGroup: true,
		Children: []entities.RepairItem{
			{ID: "a", ParentRepairItemID: "service", Parts: []entities.LineItem{part("p1", "1", "100")}},
			{ID: "b", ParentRepairItemID: "service", Parts: []entities.LineItem{part("p2", "1", "66.666")}},
			{ID: "c", ParentRepairItemID: "service", OutcomeStatus: entities.OutcomeDeleted, Parts: []entities.LineItem{part("p3", "1", "500")}},
		},
	}

	t.Run("sums active children", func(t *testing.T) {
		got, err := newCalc().ComputeGroupTotal(group)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		// 0 own + 120 + 80.00 (66.67 + 13.33)
		if !got.Equal(d("200")) {
			t.Fatalf("expected 200, got %s", got)
		}
	})

	t.Run("own lines add to children", func(t *testing.T) {
		g := group
		g.Labour = []entities.LineItem{labour("l1", "1", "10")}
		got, err := newCalc().ComputeGroupTotal(g)
		if err != nil || !got.Equal(d("212")) {
			t.Fatalf("expected 212, got %s err=%v", got, err)
		}
	})

	t.Run("non group returns own total", func(t *testing.T) {
		got, err := newCalc().ComputeGroupTotal(group.Children[0])
		if err != nil || !got.Equal(d("120")) {
			t.Fatalf("expected 120, got %s err=%v", got, err)
		}
	})

	t.Run("group with only deleted children", func(t *testing.T) {
		g := entities.RepairItem{ID: "g", IsGroup: true, Children: group.Children[2:]}
		if ShapeOf(g) != ShapeStandalone {
			t.Fatalf("expected standalone shape, got %s", ShapeOf(g))
		}
		got, err := newCalc().ComputeGroupTotal(g)
		if err != nil || !got.IsZero() {
			t.Fatalf("expected zero, got %s err=%v", got, err)
		}
	})
}

func TestCalculatorDeterministicAndReconciled(t *testing.T) {
	discounted := labour("l2", "0.75", "66.67")
	discounted.DiscountPercent = d("12.5")
	exempt := part("p9", "3", "4.99")
	exempt.IsVATExempt = true

	fixtures := []struct {
		name string
		item entities.RepairItem
	}{
		{"standalone", entities.RepairItem{
			ID:     "brakes",
			Labour: []entities.LineItem{labour("l1", "1.3", "72.5"), discounted},
			Parts:  []entities.LineItem{part("p1", "2", "33.333"), exempt},
		}},
		{"option based", entities.RepairItem{
			ID: "tyres",
			Options: []entities.RepairOption{
				{ID: "budget", SortOrder: 1, Parts: []entities.LineItem{part("p1", "4", "49.99")}},
				{ID: "premium", SortOrder: 2, IsRecommended: true, Parts: []entities.LineItem{part("p2", "4", "119.49")}, Labour: []entities.LineItem{discounted}},
			},
		}},
		{"override", entities.RepairItem{
			ID:                  "wipers",
			Parts:               []entities.LineItem{part("p1", "2", "12.5")},
			PriceOverride:       decimal.NewNullDecimal(d("19.995")),
			PriceOverrideReason: "price match",
		}},
		{"group with deleted child", entities.RepairItem{
			ID:      "service",
			IsGroup: true,
			Labour:  []entities.LineItem{labour("l1", "0.5", "80")},
			Children: []entities.RepairItem{
				{ID: "a", ParentRepairItemID: "service", Parts: []entities.LineItem{part("p1", "1", "66.666"), exempt}},
				{ID: "b", ParentRepairItemID: "service", Labour: []entities.LineItem{discounted},
					PriceOverride: decimal.NewNullDecimal(d("45")), PriceOverrideReason: "goodwill"},
				{ID: "c", ParentRepairItemID: "service", OutcomeStatus: entities.OutcomeDeleted, Parts: []entities.LineItem{part("p3", "1", "500")}},
			},
		}},
	}

	calc := newCalc()
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			first, err := calc.ComputeItemTotals(fx.item)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			second, err := calc.ComputeItemTotals(fx.item)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !totalsEqual(first, second) {
				t.Fatalf("item totals changed between calls: %+v vs %+v", first, second)
			}

			groupFirst, err := calc.ComputeGroupTotal(fx.item)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			groupSecond, err := calc.ComputeGroupTotal(fx.item)
			if err != nil || !groupFirst.Equal(groupSecond) {
				t.Fatalf("group total changed between calls: %s vs %s err=%v", groupFirst, groupSecond, err)
			}

			want := first.TotalIncVAT
			if ShapeOf(fx.item) == ShapeGrouped {
				for _, child := range fx.item.Children {
					if child.IsDeleted() {
						continue
					}
					ct, err := calc.ComputeItemTotals(child)
					if err != nil {
						t.Fatalf("child %s: %v", child.ID, err)
					}
					want = want.Add(ct.TotalIncVAT)
				}
			}
			if !groupFirst.Equal(want) {
				t.Fatalf("expected group total %s, got %s", want, groupFirst)
			}
		})
	}
}

func totalsEqual(a, b QuoteTotals) bool {
	return a.LabourTotal.Equal(b.LabourTotal) &&
		a.PartsTotal.Equal(b.PartsTotal) &&
		a.Subtotal.Equal(b.Subtotal) &&
		a.VATAmount.Equal(b.VATAmount) &&
		a.TotalIncVAT.Equal(b.TotalIncVAT) &&
		a.IsOverridden == b.IsOverridden &&
		a.SelectedOptionID == b.SelectedOptionID
}

func TestPricingWarnings(t *testing.T) {
	item := entities.RepairItem{ID: "x", PriceOverride: decimal.NewNullDecimal(d("10")), PriceOverrideReason: "r"}
	ws := PricingWarnings(item)
	codes := map[WarningCode]bool{}
	for _, w := range ws {
		codes[w.Code] = true
	}
	if !codes[WarningMissingLabour] || !codes[WarningMissingParts] || !codes[WarningOverridden] {
		t.Fatalf("expected all three warnings, got %+v", ws)
	}

	item.NoLabourRequired = true
	item.NoPartsRequired = true
	item.PriceOverride = decimal.NullDecimal{}
	if ws := PricingWarnings(item); len(ws) != 0 {
		t.Fatalf("expected no warnings, got %+v", ws)
	}
}
