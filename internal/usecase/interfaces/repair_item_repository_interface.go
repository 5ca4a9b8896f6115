package interfaces

import (
	"context"

	"vhc_service/internal/domain/entities"
)

// IRepairItemRepository stores repair items as flat rows. Line items and options
// are nested in the row; children point at their group through ParentRepairItemID.
type IRepairItemRepository interface {
	Create(ctx context.Context, item entities.RepairItem) (entities.RepairItem, error)
	GetByID(ctx context.Context, id string) (entities.RepairItem, error)
	ListByHealthCheckID(ctx context.Context, healthCheckID string) ([]entities.RepairItem, error)
	// Save overwrites an existing row.
	Save(ctx context.Context, item entities.RepairItem) (entities.RepairItem, error)
	// SaveAll overwrites several rows atomically.
	SaveAll(ctx context.Context, items []entities.RepairItem) error
}
