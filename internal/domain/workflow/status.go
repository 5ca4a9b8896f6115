// Package workflow derives the health check workflow badges and guards status moves.
//
// Badges are recomputed from the repair items on every read and never stored,
// so they cannot drift from the items they describe.
package workflow

import (
	"fmt"
	"time"

	"vhc_service/internal/domain/authorization"
	"vhc_service/internal/domain/entities"
)

type BadgeState string

const (
	BadgePending    BadgeState = "pending"
	BadgeInProgress BadgeState = "in_progress"
	BadgeComplete   BadgeState = "complete"
)

// WorkflowStatus is the badge set shown on a health check.
type WorkflowStatus struct {
	Labour        BadgeState `json:"labour"`
	Parts         BadgeState `json:"parts"`
	Authorization BadgeState `json:"authorization"`
	Sent          BadgeState `json:"sent"`
}

// DeriveWorkflowStatus computes the badges for a snapshot tree. Labour and parts
// look at every active item, group children included. An empty (or fully
// deleted) item set leaves them pending.
func DeriveWorkflowStatus(items []entities.RepairItem, sentAt *time.Time) WorkflowStatus {
	active := make([]entities.RepairItem, 0, len(items))
	for _, it := range items {
		if !it.IsDeleted() {
			active = append(active, it)
		}
	}
	var working []entities.RepairItem
	for _, it := range entities.FlattenRepairItems(active) {
		if !it.IsDeleted() {
			working = append(working, it)
		}
	}

	ws := WorkflowStatus{
		Labour: workBadge(working,
			func(it entities.RepairItem) entities.WorkStatus { return it.LabourStatus },
			func(it entities.RepairItem) bool { return it.NoLabourRequired }),
		Parts: workBadge(working,
			func(it entities.RepairItem) entities.WorkStatus { return it.PartsStatus },
			func(it entities.RepairItem) bool { return it.NoPartsRequired }),
		Authorization: authorizationBadge(active),
		Sent:          BadgePending,
	}
	if sentAt != nil {
		ws.Sent = BadgeComplete
	}
	return ws
}

func workBadge(items []entities.RepairItem, status func(entities.RepairItem) entities.WorkStatus, notRequired func(entities.RepairItem) bool) BadgeState {
	if len(items) == 0 {
		return BadgePending
	}

	complete, started := true, false
	for _, it := range items {
		if notRequired(it) {
			continue
		}
		switch s := status(it); s {
		case entities.WorkStatusComplete:
			started = true
		case entities.WorkStatusInProgress:
			started = true
			complete = false
		case entities.WorkStatusPending, "":
			complete = false
		default:
			panic(fmt.Sprintf("workflow: unhandled work status %q", string(s)))
		}
	}

	switch {
	case complete:
		return BadgeComplete
	case started:
		return BadgeInProgress
	default:
		return BadgePending
	}
}

// authorizationBadge is complete when every item in the flow is decided and every
// decided item, children included, carries the time the decision was recorded.
func authorizationBadge(items []entities.RepairItem) BadgeState {
	if !authorization.AllDecided(items) {
		return BadgePending
	}
	for _, it := range entities.FlattenRepairItems(items) {
		if it.IsDeleted() {
			continue
		}
		switch it.OutcomeStatus {
		case entities.OutcomeAuthorised, entities.OutcomeDeclined, entities.OutcomeDeferred:
			if it.OutcomeSetAt == nil {
				return BadgePending
			}
		case entities.OutcomeNone, entities.OutcomeDeleted:
		default:
			panic(fmt.Sprintf("workflow: unhandled outcome %q", string(it.OutcomeStatus)))
		}
	}
	return BadgeComplete
}
