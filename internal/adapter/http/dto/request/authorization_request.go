package request

import (
	"fmt"
	"strings"
	"time"

	"vhc_service/internal/domain/entities"
)

// DecisionRequest is one customer decision. deferred_until is a calendar date.
type DecisionRequest struct {
	RepairItemID     string `json:"repair_item_id" binding:"required"`
	Decision         string `json:"decision" binding:"required,vhc_decision"`
	DeclinedReasonID string `json:"declined_reason_id"`
	DeclinedNotes    string `json:"declined_notes"`
	DeferredUntil    string `json:"deferred_until" binding:"omitempty,datetime=2006-01-02"`
	DeferredNotes    string `json:"deferred_notes"`
}

type AuthorizationRequest struct {
	Decisions []DecisionRequest `json:"decisions" binding:"dive"`
	Method    string            `json:"method" binding:"required,auth_method"`
	Notes     string            `json:"notes"`
}

func (r AuthorizationRequest) DecisionEntities() ([]entities.AuthorizationDecision, error) {
	out := make([]entities.AuthorizationDecision, 0, len(r.Decisions))
	for _, d := range r.Decisions {
		dec := entities.AuthorizationDecision{
			RepairItemID:     strings.TrimSpace(d.RepairItemID),
			Decision:         entities.Decision(d.Decision),
			DeclinedReasonID: strings.TrimSpace(d.DeclinedReasonID),
			DeclinedNotes:    d.DeclinedNotes,
			DeferredNotes:    d.DeferredNotes,
		}
		if d.DeferredUntil != "" {
			until, err := time.Parse(time.DateOnly, d.DeferredUntil)
			if err != nil {
				return nil, fmt.Errorf("deferred_until %q: %w", d.DeferredUntil, err)
			}
			dec.DeferredUntil = &until
		}
		out = append(out, dec)
	}
	return out, nil
}
