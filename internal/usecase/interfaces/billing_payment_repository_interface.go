package interfaces

import (
	"context"

	"vhc_service/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByHealthCheckID(ctx context.Context, healthCheckID string) ([]entities.BillingPayment, error)
}
