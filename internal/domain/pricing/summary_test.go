package pricing

import (
	"testing"

	"vhc_service/internal/domain/entities"
)

func TestSummarizeQuote(t *testing.T) {
	items := []entities.RepairItem{
		{ID: "a", OutcomeStatus: entities.OutcomeAuthorised, Parts: []entities.LineItem{part("p1", "1", "100")}},
		{ID: "b", OutcomeStatus: entities.OutcomeDeclined, Parts: []entities.LineItem{part("p2", "1", "50")}},
		{ID: "c", Labour: []entities.LineItem{labour("l1", "2", "25")}},
		{ID: "gone", OutcomeStatus: entities.OutcomeDeleted, Parts: []entities.LineItem{part("p3", "1", "999")}},
		{
			ID:      "g",
			IsGroup: true,
			Children: []entities.RepairItem{
				{ID: "g1", ParentRepairItemID: "g", OutcomeStatus: entities.OutcomeDeferred, Parts: []entities.LineItem{part("p4", "1", "10")}},
				{ID: "g2", ParentRepairItemID: "g", OutcomeStatus: entities.OutcomeAuthorised, Parts: []entities.LineItem{part("p5", "1", "20")}},
			},
		},
	}

	s, err := newCalc().SummarizeQuote(items)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.Items) != 4 {
		t.Fatalf("expected deleted item skipped, got %d items", len(s.Items))
	}
	if len(s.Items[3].Children) != 2 || !s.Items[3].GroupTotal.Equal(d("36")) {
		t.Fatalf("unexpected group quote: %+v", s.Items[3])
	}

	// 120 + 60 + 60 + 12 + 24
	if !s.TotalIncVAT.Equal(d("276")) {
		t.Fatalf("expected total 276, got %s", s.TotalIncVAT)
	}
	if !s.AuthorisedTotal.Equal(d("144")) || !s.DeclinedTotal.Equal(d("60")) ||
		!s.DeferredTotal.Equal(d("12")) || !s.PendingTotal.Equal(d("60")) {
		t.Fatalf("unexpected buckets: auth=%s dec=%s def=%s pend=%s",
			s.AuthorisedTotal, s.DeclinedTotal, s.DeferredTotal, s.PendingTotal)
	}
	sum := s.AuthorisedTotal.Add(s.DeclinedTotal).Add(s.DeferredTotal).Add(s.PendingTotal)
	if !sum.Equal(s.TotalIncVAT) {
		t.Fatalf("buckets %s do not add up to total %s", sum, s.TotalIncVAT)
	}
	if !s.Subtotal.Add(s.VATAmount).Equal(s.TotalIncVAT) {
		t.Fatalf("subtotal + vat != total")
	}
}
