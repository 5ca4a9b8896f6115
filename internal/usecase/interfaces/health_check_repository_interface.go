package interfaces

import (
	"context"
	"time"

	"vhc_service/internal/domain/entities"
)

// IHealthCheckRepository abstracts DynamoDB persistence for HealthCheck.
//
// Lookups return a zero HealthCheck (empty ID) when the row does not exist.
type IHealthCheckRepository interface {
	Create(ctx context.Context, hc entities.HealthCheck) (entities.HealthCheck, error)
	GetByID(ctx context.Context, id string) (entities.HealthCheck, error)
	UpdateStatus(ctx context.Context, id string, status entities.HealthCheckStatus) (entities.HealthCheck, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time, customerMobile string) (entities.HealthCheck, error)
	MarkAuthorized(ctx context.Context, id string, status entities.HealthCheckStatus, at time.Time, method entities.AuthorizationMethod, notes string) (entities.HealthCheck, error)
}
