package interfaces

import (
	"context"

	"vhc_service/internal/domain/entities"
)

type IDeclineReasonRepository interface {
	List(ctx context.Context) ([]entities.DeclineReason, error)
	Create(ctx context.Context, r entities.DeclineReason) (entities.DeclineReason, error)
}
