package usecase

import (
	"time"

	"vhc_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func healthCheck(id string, status entities.HealthCheckStatus) entities.HealthCheck {
	return entities.HealthCheck{ID: id, VehicleRegistration: "AB12CDE", CustomerName: "Sam Driver", Status: status}
}

// redItem returns a red-flagged item priced at one labour hour of the given rate.
func redItem(id, rate string) entities.RepairItem {
	return entities.RepairItem{
		ID:            id,
		HealthCheckID: "hc-1",
		Name:          "Item " + id,
		CheckResults:  []entities.CheckResult{{ID: "cr-" + id, RAGStatus: entities.RAGRed}},
		Labour: []entities.LineItem{
			{ID: "l-" + id, Kind: entities.LineItemKindLabour, Quantity: dec("1"), UnitSellPrice: dec(rate)},
		},
		Parts:        []entities.LineItem{},
		LabourStatus: entities.WorkStatusPending,
		PartsStatus:  entities.WorkStatusPending,
	}
}

func decided(it entities.RepairItem, outcome entities.OutcomeStatus) entities.RepairItem {
	at := fixedNow
	it.OutcomeStatus = outcome
	it.OutcomeSetAt = &at
	return it
}

func noopRelease() {}
