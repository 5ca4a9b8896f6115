package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/usecase/interfaces"
)

var (
	ErrInvalidHealthCheckID = errors.New("invalid health_check_id")
	ErrHealthCheckNotFound  = errors.New("health check not found")
	ErrHealthCheckLocked    = errors.New("health check is being updated by another request")
)

// snapshotLoader reads a health check and its repair item tree in one go. Every
// pricing and authorization computation runs on a snapshot loaded this way.
type snapshotLoader struct {
	healthChecks interfaces.IHealthCheckRepository
	repairItems  interfaces.IRepairItemRepository
}

func (l snapshotLoader) healthCheck(ctx context.Context, id string) (entities.HealthCheck, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.HealthCheck{}, ErrInvalidHealthCheckID
	}
	hc, err := l.healthChecks.GetByID(ctx, id)
	if err != nil {
		return entities.HealthCheck{}, err
	}
	if hc.ID == "" {
		return entities.HealthCheck{}, ErrHealthCheckNotFound
	}
	return hc, nil
}

func (l snapshotLoader) load(ctx context.Context, id string) (entities.HealthCheck, []entities.RepairItem, error) {
	hc, err := l.healthCheck(ctx, id)
	if err != nil {
		return entities.HealthCheck{}, nil, err
	}
	rows, err := l.repairItems.ListByHealthCheckID(ctx, hc.ID)
	if err != nil {
		return entities.HealthCheck{}, nil, err
	}
	items, err := entities.BuildRepairItemTree(rows)
	if err != nil {
		return entities.HealthCheck{}, nil, err
	}
	return hc, items, nil
}

// withLock runs fn while holding the health check lock. A nil locker runs fn directly.
func withLock(ctx context.Context, locker interfaces.ILocker, healthCheckID string, fn func() error) error {
	if locker == nil {
		return fn()
	}
	release, err := locker.Obtain(ctx, healthCheckID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHealthCheckLocked, err)
	}
	defer release()
	return fn()
}
