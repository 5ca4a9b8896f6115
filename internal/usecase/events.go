package usecase

import (
	"context"
	"time"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/infrastructure/logging"
	"vhc_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	SubjectHealthCheckSent       = "vhc.health_check.sent"
	SubjectHealthCheckAuthorized = "vhc.health_check.authorized"
)

// HealthCheckSentEvent asks the notifier to deliver the quote link to the customer.
type HealthCheckSentEvent struct {
	HealthCheckID       string          `json:"health_check_id"`
	VehicleRegistration string          `json:"vehicle_registration"`
	CustomerName        string          `json:"customer_name"`
	CustomerMobile      string          `json:"customer_mobile,omitempty"`
	CustomerEmail       string          `json:"customer_email,omitempty"`
	TotalIncVAT         decimal.Decimal `json:"total_inc_vat"`
	SentAt              time.Time       `json:"sent_at"`
}

type HealthCheckAuthorizedEvent struct {
	HealthCheckID   string                       `json:"health_check_id"`
	Status          entities.HealthCheckStatus   `json:"status"`
	Method          entities.AuthorizationMethod `json:"method"`
	Authorised      int                          `json:"authorised"`
	Declined        int                          `json:"declined"`
	Deferred        int                          `json:"deferred"`
	AuthorisedTotal decimal.Decimal              `json:"authorised_total"`
	AuthorizedAt    time.Time                    `json:"authorized_at"`
}

// publish is best effort: the write it reports on has already been committed.
func publish(ctx context.Context, p interfaces.IEventPublisher, subject string, v any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, subject, v); err != nil {
		logging.LogError(logging.GetLogger(), "events", "publish", "publish failed", logrus.Fields{"subject": subject}, err)
	}
}
