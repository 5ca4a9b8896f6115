package authorization

import (
	"strings"
	"time"

	"vhc_service/internal/domain/entities"
)

// DecisionContext carries the lookups and clock a submission is validated against.
type DecisionContext struct {
	Reasons map[string]entities.DeclineReason
	At      time.Time
}

// Result is the outcome of a successful authorization submission.
type Result struct {
	Success   bool
	NewStatus entities.HealthCheckStatus
	// Items is the updated snapshot tree.
	Items []entities.RepairItem
	// Changed holds every item, flat, whose decision was written by this submission.
	Changed []entities.RepairItem
	Tally   Tally
	Method  entities.AuthorizationMethod
	Notes   string
}

// ValidateDecision checks a single decision against the item it targets.
func ValidateDecision(item entities.RepairItem, d entities.AuthorizationDecision, dc DecisionContext) error {
	if !d.Decision.IsValid() {
		return entities.NewValidationError(item.ID, "decision", entities.ErrUnknownDecision, string(d.Decision))
	}
	if item.IsDeleted() {
		return entities.NewValidationError(item.ID, "decision", entities.ErrDecisionOnDeletedItem, "")
	}

	switch d.Decision {
	case entities.DecisionAuthorise:
		return nil
	case entities.DecisionDecline:
		notes := strings.TrimSpace(d.DeclinedNotes)
		if d.DeclinedReasonID == "" && notes == "" {
			return entities.NewValidationError(item.ID, "declined_reason_id", entities.ErrDeclineReasonRequired, "")
		}
		if d.DeclinedReasonID != "" {
			reason, ok := dc.Reasons[d.DeclinedReasonID]
			if !ok {
				return entities.NewNotFoundError("decline reason", d.DeclinedReasonID)
			}
			if reason.NotesRequired() && notes == "" {
				return entities.NewValidationError(item.ID, "declined_notes", entities.ErrDeclineNotesRequired, reason.Reason)
			}
		}
		return nil
	case entities.DecisionDefer:
		if d.DeferredUntil != nil && !dc.At.IsZero() {
			today := dc.At.UTC().Truncate(24 * time.Hour)
			if d.DeferredUntil.UTC().Before(today) {
				return entities.NewValidationError(item.ID, "deferred_until", entities.ErrDeferredUntilInPast, d.DeferredUntil.Format(time.DateOnly))
			}
		}
		return nil
	}
	return entities.NewValidationError(item.ID, "decision", entities.ErrUnknownDecision, string(d.Decision))
}

// applyDecision writes a decision onto an item, clearing fields that belong to
// other decisions.
func applyDecision(item *entities.RepairItem, d entities.AuthorizationDecision, method entities.AuthorizationMethod, at time.Time) {
	setAt := at
	item.OutcomeStatus = d.Decision.Outcome()
	item.OutcomeSetAt = &setAt
	item.OutcomeMethod = method
	item.DeclinedReasonID, item.DeclinedNotes = "", ""
	item.DeferredUntil, item.DeferredNotes = nil, ""

	switch d.Decision {
	case entities.DecisionDecline:
		item.DeclinedReasonID = d.DeclinedReasonID
		item.DeclinedNotes = strings.TrimSpace(d.DeclinedNotes)
	case entities.DecisionDefer:
		item.DeferredUntil = d.DeferredUntil
		item.DeferredNotes = strings.TrimSpace(d.DeferredNotes)
	case entities.DecisionAuthorise:
	}
	item.UpdatedAt = at
}

// RecordAuthorization applies a customer's decisions to a snapshot and returns the
// resulting health check status. It fails with IncompleteDecisionError unless every
// item in the authorization flow ends up decided. A decision on a group also
// applies to its active children that are still undecided and have no decision of
// their own in the submission. The input snapshot is not modified.
func RecordAuthorization(
	items []entities.RepairItem,
	decisions []entities.AuthorizationDecision,
	method entities.AuthorizationMethod,
	notes string,
	dc DecisionContext,
) (Result, error) {
	if !method.IsValid() {
		return Result{}, entities.NewValidationError("", "method", entities.ErrUnknownMethod, string(method))
	}
	if dc.At.IsZero() {
		dc.At = time.Now().UTC()
	}

	working := cloneTree(items)
	explicit := make(map[string]bool, len(decisions))
	for _, d := range decisions {
		explicit[d.RepairItemID] = true
	}

	changed := make(map[string]bool)
	for _, d := range decisions {
		target, ok := locate(working, d.RepairItemID)
		if !ok {
			return Result{}, entities.NewNotFoundError("repair item", d.RepairItemID)
		}
		if err := ValidateDecision(*target, d, dc); err != nil {
			return Result{}, err
		}
		applyDecision(target, d, method, dc.At)
		changed[target.ID] = true

		if !target.IsGroup {
			continue
		}
		for i := range target.Children {
			child := &target.Children[i]
			if child.IsDeleted() || explicit[child.ID] || child.OutcomeStatus != entities.OutcomeNone {
				continue
			}
			cascaded := d
			cascaded.RepairItemID = child.ID
			applyDecision(child, cascaded, method, dc.At)
			changed[child.ID] = true
		}
	}

	if undecided := UndecidedItemIDs(working); len(undecided) > 0 {
		return Result{}, &entities.IncompleteDecisionError{UndecidedItemIDs: undecided}
	}

	res := Result{
		Success:   true,
		NewStatus: StatusFromOutcomes(working),
		Items:     working,
		Tally:     CountOutcomes(working),
		Method:    method,
		Notes:     strings.TrimSpace(notes),
	}
	for _, it := range entities.FlattenRepairItems(working) {
		if changed[it.ID] {
			res.Changed = append(res.Changed, it)
		}
	}
	return res, nil
}

func locate(items []entities.RepairItem, id string) (*entities.RepairItem, bool) {
	for i := range items {
		if items[i].ID == id {
			return &items[i], true
		}
		for j := range items[i].Children {
			if items[i].Children[j].ID == id {
				return &items[i].Children[j], true
			}
		}
	}
	return nil, false
}

func cloneTree(items []entities.RepairItem) []entities.RepairItem {
	out := make([]entities.RepairItem, len(items))
	copy(out, items)
	for i := range out {
		if len(out[i].Children) > 0 {
			kids := make([]entities.RepairItem, len(out[i].Children))
			copy(kids, out[i].Children)
			out[i].Children = kids
		}
	}
	return out
}
