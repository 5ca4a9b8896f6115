package workflow

import (
	"fmt"

	"vhc_service/internal/domain/entities"
)

var transitions = map[entities.HealthCheckStatus][]entities.HealthCheckStatus{
	entities.HealthCheckStatusCreated: {
		entities.HealthCheckStatusAssigned,
		entities.HealthCheckStatusInProgress,
	},
	entities.HealthCheckStatusAssigned: {
		entities.HealthCheckStatusInProgress,
	},
	entities.HealthCheckStatusInProgress: {
		entities.HealthCheckStatusTechCompleted,
	},
	entities.HealthCheckStatusTechCompleted: {
		entities.HealthCheckStatusAwaitingPricing,
		entities.HealthCheckStatusReadyToSend,
	},
	entities.HealthCheckStatusAwaitingPricing: {
		entities.HealthCheckStatusReadyToSend,
	},
	entities.HealthCheckStatusReadyToSend: {
		entities.HealthCheckStatusSent,
		entities.HealthCheckStatusAuthorized,
		entities.HealthCheckStatusDeclined,
		entities.HealthCheckStatusPartiallyAuthorized,
	},
	entities.HealthCheckStatusSent: {
		entities.HealthCheckStatusSent,
		entities.HealthCheckStatusAuthorized,
		entities.HealthCheckStatusDeclined,
		entities.HealthCheckStatusPartiallyAuthorized,
	},
	entities.HealthCheckStatusPartiallyAuthorized: {
		entities.HealthCheckStatusAuthorized,
		entities.HealthCheckStatusDeclined,
		entities.HealthCheckStatusPartiallyAuthorized,
		entities.HealthCheckStatusCompleted,
	},
	entities.HealthCheckStatusAuthorized: {
		entities.HealthCheckStatusCompleted,
	},
	entities.HealthCheckStatusDeclined: {
		entities.HealthCheckStatusCompleted,
	},
}

// terminal statuses accept no further moves, not even cancellation.
var terminal = map[entities.HealthCheckStatus]bool{
	entities.HealthCheckStatusCompleted: true,
	entities.HealthCheckStatusCancelled: true,
}

// CanTransition reports whether a health check may move from one status to another.
// Any open health check may be cancelled.
func CanTransition(from, to entities.HealthCheckStatus) bool {
	if terminal[from] {
		return false
	}
	if to == entities.HealthCheckStatusCancelled {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidateTransition(from, to entities.HealthCheckStatus) error {
	if CanTransition(from, to) {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidStatusTransition, from, to)
}

// IsAuthorizable reports whether customer decisions may be recorded in this status.
func IsAuthorizable(s entities.HealthCheckStatus) bool {
	return CanTransition(s, entities.HealthCheckStatusAuthorized) ||
		CanTransition(s, entities.HealthCheckStatusPartiallyAuthorized)
}
