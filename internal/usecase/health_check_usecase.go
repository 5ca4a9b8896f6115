package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/domain/pricing"
	"vhc_service/internal/domain/workflow"
	"vhc_service/internal/infrastructure/logging"
	"vhc_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidHealthCheckData = errors.New("invalid health check data")
	ErrInvalidCustomerMobile  = errors.New("invalid customer mobile")
	// ErrStatusNeedsAction is returned for statuses that only Send or an
	// authorization submission may set.
	ErrStatusNeedsAction = errors.New("status can only be set by its dedicated action")
)

type CreateHealthCheckInput struct {
	VehicleRegistration string
	CustomerName        string
	CustomerMobile      string
	CustomerEmail       string
}

// IHealthCheckUseCase covers the health check document and everything derived
// from its repair items: quote, workflow badges and export.
type IHealthCheckUseCase interface {
	Create(ctx context.Context, in CreateHealthCheckInput) (entities.HealthCheck, error)
	GetByID(ctx context.Context, id string) (entities.HealthCheck, error)
	GetQuote(ctx context.Context, id string) (pricing.QuoteSummary, error)
	GetWorkflowStatus(ctx context.Context, id string) (workflow.WorkflowStatus, error)
	ExportQuote(ctx context.Context, id string) (data []byte, contentType string, err error)
	Send(ctx context.Context, id string) (entities.HealthCheck, error)
	UpdateStatus(ctx context.Context, id string, status entities.HealthCheckStatus) (entities.HealthCheck, error)
}

type HealthCheckUseCase struct {
	snapshots snapshotLoader
	repo      interfaces.IHealthCheckRepository
	calc      *pricing.Calculator
	exporter  interfaces.IQuoteExporter
	phones    interfaces.IPhoneNormalizer
	publisher interfaces.IEventPublisher
	now       func() time.Time
}

var _ IHealthCheckUseCase = (*HealthCheckUseCase)(nil)

func NewHealthCheckUseCase(
	repo interfaces.IHealthCheckRepository,
	items interfaces.IRepairItemRepository,
	calc *pricing.Calculator,
	exporter interfaces.IQuoteExporter,
	phones interfaces.IPhoneNormalizer,
	publisher interfaces.IEventPublisher,
) *HealthCheckUseCase {
	return &HealthCheckUseCase{
		snapshots: snapshotLoader{healthChecks: repo, repairItems: items},
		repo:      repo,
		calc:      calc,
		exporter:  exporter,
		phones:    phones,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *HealthCheckUseCase) Create(ctx context.Context, in CreateHealthCheckInput) (entities.HealthCheck, error) {
	reg := strings.ToUpper(strings.TrimSpace(in.VehicleRegistration))
	if reg == "" {
		return entities.HealthCheck{}, ErrInvalidHealthCheckData
	}

	now := u.now()
	hc := entities.HealthCheck{
		ID:                  uuid.NewString(),
		VehicleRegistration: reg,
		CustomerName:        strings.TrimSpace(in.CustomerName),
		CustomerMobile:      strings.TrimSpace(in.CustomerMobile),
		CustomerEmail:       strings.TrimSpace(in.CustomerEmail),
		Status:              entities.HealthCheckStatusCreated,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return u.repo.Create(ctx, hc)
}

func (u *HealthCheckUseCase) GetByID(ctx context.Context, id string) (entities.HealthCheck, error) {
	return u.snapshots.healthCheck(ctx, id)
}

func (u *HealthCheckUseCase) GetQuote(ctx context.Context, id string) (pricing.QuoteSummary, error) {
	_, items, err := u.snapshots.load(ctx, id)
	if err != nil {
		return pricing.QuoteSummary{}, err
	}
	return u.calc.SummarizeQuote(items)
}

func (u *HealthCheckUseCase) GetWorkflowStatus(ctx context.Context, id string) (workflow.WorkflowStatus, error) {
	hc, items, err := u.snapshots.load(ctx, id)
	if err != nil {
		return workflow.WorkflowStatus{}, err
	}
	return workflow.DeriveWorkflowStatus(items, hc.SentAt), nil
}

func (u *HealthCheckUseCase) ExportQuote(ctx context.Context, id string) ([]byte, string, error) {
	hc, items, err := u.snapshots.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	q, err := u.calc.SummarizeQuote(items)
	if err != nil {
		return nil, "", err
	}
	data, err := u.exporter.Export(hc, q)
	if err != nil {
		return nil, "", err
	}
	return data, u.exporter.ContentType(), nil
}

// Send publishes the quote to the customer. The quote must price cleanly and
// the customer mobile, when present, must be a valid number.
func (u *HealthCheckUseCase) Send(ctx context.Context, id string) (entities.HealthCheck, error) {
	logger := logging.GetLogger().WithFields(logrus.Fields{"module": "health_check", "layer": "usecase", "health_check_id": id})

	hc, items, err := u.snapshots.load(ctx, id)
	if err != nil {
		return entities.HealthCheck{}, err
	}
	if err := workflow.ValidateTransition(hc.Status, entities.HealthCheckStatusSent); err != nil {
		return entities.HealthCheck{}, err
	}
	q, err := u.calc.SummarizeQuote(items)
	if err != nil {
		return entities.HealthCheck{}, err
	}

	mobile := hc.CustomerMobile
	if mobile != "" && u.phones != nil {
		if mobile, err = u.phones.Normalize(mobile); err != nil {
			logger.WithError(err).Warn("customer mobile rejected")
			return entities.HealthCheck{}, ErrInvalidCustomerMobile
		}
	}

	sentAt := u.now()
	updated, err := u.repo.MarkSent(ctx, hc.ID, sentAt, mobile)
	if err != nil {
		return entities.HealthCheck{}, err
	}
	if updated.ID == "" {
		return entities.HealthCheck{}, ErrHealthCheckNotFound
	}
	logger.WithField("total_inc_vat", q.TotalIncVAT.StringFixed(2)).Info("health check sent")

	publish(ctx, u.publisher, SubjectHealthCheckSent, HealthCheckSentEvent{
		HealthCheckID:       updated.ID,
		VehicleRegistration: updated.VehicleRegistration,
		CustomerName:        updated.CustomerName,
		CustomerMobile:      updated.CustomerMobile,
		CustomerEmail:       updated.CustomerEmail,
		TotalIncVAT:         q.TotalIncVAT,
		SentAt:              sentAt,
	})
	return updated, nil
}

func (u *HealthCheckUseCase) UpdateStatus(ctx context.Context, id string, status entities.HealthCheckStatus) (entities.HealthCheck, error) {
	if _, err := entities.ParseHealthCheckStatus(string(status)); err != nil {
		return entities.HealthCheck{}, err
	}
	switch status {
	case entities.HealthCheckStatusSent,
		entities.HealthCheckStatusAuthorized,
		entities.HealthCheckStatusDeclined,
		entities.HealthCheckStatusPartiallyAuthorized:
		return entities.HealthCheck{}, ErrStatusNeedsAction
	}

	hc, err := u.snapshots.healthCheck(ctx, id)
	if err != nil {
		return entities.HealthCheck{}, err
	}
	if err := workflow.ValidateTransition(hc.Status, status); err != nil {
		return entities.HealthCheck{}, err
	}
	updated, err := u.repo.UpdateStatus(ctx, hc.ID, status)
	if err != nil {
		return entities.HealthCheck{}, err
	}
	if updated.ID == "" {
		return entities.HealthCheck{}, ErrHealthCheckNotFound
	}
	return updated, nil
}
