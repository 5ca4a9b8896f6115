package interfaces

import (
	"context"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/domain/pricing"
)

// ILocker serialises writes to one health check. release must always be called.
type ILocker interface {
	Obtain(ctx context.Context, healthCheckID string) (release func(), err error)
}

// IEventPublisher emits health check events to downstream notifiers.
type IEventPublisher interface {
	Publish(ctx context.Context, subject string, v any) error
}

type IQuoteExporter interface {
	Export(hc entities.HealthCheck, q pricing.QuoteSummary) ([]byte, error)
	ContentType() string
}

// IPhoneNormalizer formats a customer mobile as E.164.
type IPhoneNormalizer interface {
	Normalize(raw string) (string, error)
}
