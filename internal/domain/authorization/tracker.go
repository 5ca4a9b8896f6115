// Package authorization tracks customer decisions on repair items and decides
// when a health check's authorization is complete.
package authorization

import (
	"fmt"

	"vhc_service/internal/domain/entities"
)

// State is the decision state of an item as seen by the tracker.
type State string

const (
	// StateNotRequired marks items with no red/amber findings; they are implicitly OK.
	StateNotRequired State = "not_required"
	StateUndecided   State = "undecided"
	StateAuthorised  State = "authorised"
	StateDeclined    State = "declined"
	StateDeferred    State = "deferred"
)

func (s State) IsDecided() bool {
	switch s {
	case StateAuthorised, StateDeclined, StateDeferred:
		return true
	case StateNotRequired, StateUndecided:
		return false
	}
	panic(fmt.Sprintf("authorization: unhandled state %q", string(s)))
}

// ownState reads the persisted outcome of a single item, ignoring children.
func ownState(item entities.RepairItem) State {
	switch item.OutcomeStatus {
	case entities.OutcomeNone:
		return StateUndecided
	case entities.OutcomeAuthorised:
		return StateAuthorised
	case entities.OutcomeDeclined:
		return StateDeclined
	case entities.OutcomeDeferred:
		return StateDeferred
	case entities.OutcomeDeleted:
		return StateNotRequired
	}
	panic(fmt.Sprintf("authorization: unhandled outcome %q", string(item.OutcomeStatus)))
}

// IsInAuthFlow reports whether an item needs a customer decision. A plain item
// needs one when it has red or amber findings. A group also needs one when any
// of its children is in the flow or already carries a decision.
func IsInAuthFlow(item entities.RepairItem) bool {
	if item.IsDeleted() {
		return false
	}
	if item.HasRedOrAmber() {
		return true
	}
	if !item.IsGroup {
		return false
	}
	return len(flowChildren(item)) > 0
}

// flowChildren returns the active children that take part in the decision.
func flowChildren(group entities.RepairItem) []entities.RepairItem {
	var out []entities.RepairItem
	for _, c := range group.ActiveChildren() {
		if c.HasRedOrAmber() || c.OutcomeStatus != entities.OutcomeNone {
			out = append(out, c)
		}
	}
	return out
}

// EffectiveOutcome returns the decision state of an item. A group whose active
// children are all decided derives its outcome from them: authorised if any child
// is authorised, else deferred if any is deferred, else declined. While some child
// is undecided, a decision recorded on the group itself stands in for them.
func EffectiveOutcome(item entities.RepairItem) State {
	if !IsInAuthFlow(item) {
		return StateNotRequired
	}
	children := flowChildren(item)
	if !item.IsGroup || len(children) == 0 {
		return ownState(item)
	}

	allDecided, anyAuthorised, anyDeferred := true, false, false
	for _, c := range children {
		switch ownState(c) {
		case StateAuthorised:
			anyAuthorised = true
		case StateDeferred:
			anyDeferred = true
		case StateDeclined:
		case StateUndecided, StateNotRequired:
			allDecided = false
		}
	}
	if allDecided {
		switch {
		case anyAuthorised:
			return StateAuthorised
		case anyDeferred:
			return StateDeferred
		default:
			return StateDeclined
		}
	}
	if own := ownState(item); own.IsDecided() {
		return own
	}
	return StateUndecided
}

// AllDecided is true when no top-level item in the authorization flow is undecided.
func AllDecided(items []entities.RepairItem) bool {
	return len(UndecidedItemIDs(items)) == 0
}

// UndecidedItemIDs lists what still needs a decision. For a group decided
// through its children the undecided children are listed instead of the group.
func UndecidedItemIDs(items []entities.RepairItem) []string {
	var ids []string
	for _, item := range items {
		if EffectiveOutcome(item) != StateUndecided {
			continue
		}
		children := flowChildren(item)
		if !item.IsGroup || len(children) == 0 {
			ids = append(ids, item.ID)
			continue
		}
		for _, c := range children {
			if ownState(c) == StateUndecided {
				ids = append(ids, c.ID)
			}
		}
	}
	return ids
}

// Tally counts decided leaves. Groups decided through their children
// contribute one count per child.
type Tally struct {
	Authorised int
	Declined   int
	Deferred   int
	Undecided  int
}

func (t Tally) Decided() int { return t.Authorised + t.Declined + t.Deferred }

func CountOutcomes(items []entities.RepairItem) Tally {
	var t Tally
	add := func(s State) {
		switch s {
		case StateAuthorised:
			t.Authorised++
		case StateDeclined:
			t.Declined++
		case StateDeferred:
			t.Deferred++
		case StateUndecided:
			t.Undecided++
		case StateNotRequired:
		}
	}
	for _, item := range items {
		if !IsInAuthFlow(item) {
			continue
		}
		children := flowChildren(item)
		if item.IsGroup && len(children) > 0 {
			for _, c := range children {
				add(ownState(c))
			}
			continue
		}
		add(ownState(item))
	}
	return t
}

// StatusFromOutcomes maps a fully decided snapshot onto the health check status.
// Nothing to decide counts as authorised.
func StatusFromOutcomes(items []entities.RepairItem) entities.HealthCheckStatus {
	t := CountOutcomes(items)
	switch {
	case t.Decided() == 0 || t.Authorised == t.Decided():
		return entities.HealthCheckStatusAuthorized
	case t.Authorised == 0:
		return entities.HealthCheckStatusDeclined
	default:
		return entities.HealthCheckStatusPartiallyAuthorized
	}
}
