package usecase

import (
	"context"
	"errors"
	"time"

	"vhc_service/internal/domain/authorization"
	"vhc_service/internal/domain/entities"
	"vhc_service/internal/domain/pricing"
	"vhc_service/internal/domain/workflow"
	"vhc_service/internal/infrastructure/logging"
	"vhc_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var ErrHealthCheckNotAuthorizable = errors.New("health check is not awaiting customer authorization")

type SubmitAuthorizationInput struct {
	Decisions []entities.AuthorizationDecision
	Method    entities.AuthorizationMethod
	Notes     string
}

// AuthorizationOutcome is what a successful submission returns to the caller.
type AuthorizationOutcome struct {
	HealthCheck entities.HealthCheck
	Result      authorization.Result
	Quote       pricing.QuoteSummary
}

type IAuthorizationUseCase interface {
	Submit(ctx context.Context, healthCheckID string, in SubmitAuthorizationInput) (AuthorizationOutcome, error)
}

type AuthorizationUseCase struct {
	snapshots    snapshotLoader
	healthChecks interfaces.IHealthCheckRepository
	items        interfaces.IRepairItemRepository
	reasons      interfaces.IDeclineReasonRepository
	calc         *pricing.Calculator
	locker       interfaces.ILocker
	publisher    interfaces.IEventPublisher
	now          func() time.Time
}

var _ IAuthorizationUseCase = (*AuthorizationUseCase)(nil)

func NewAuthorizationUseCase(
	healthChecks interfaces.IHealthCheckRepository,
	items interfaces.IRepairItemRepository,
	reasons interfaces.IDeclineReasonRepository,
	calc *pricing.Calculator,
	locker interfaces.ILocker,
	publisher interfaces.IEventPublisher,
) *AuthorizationUseCase {
	return &AuthorizationUseCase{
		snapshots:    snapshotLoader{healthChecks: healthChecks, repairItems: items},
		healthChecks: healthChecks,
		items:        items,
		reasons:      reasons,
		calc:         calc,
		locker:       locker,
		publisher:    publisher,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Submit records a customer's decisions. Nothing is written unless every item
// in the authorization flow ends up decided.
func (u *AuthorizationUseCase) Submit(ctx context.Context, healthCheckID string, in SubmitAuthorizationInput) (AuthorizationOutcome, error) {
	logger := logging.GetLogger().WithFields(logrus.Fields{"module": "authorization", "layer": "usecase", "health_check_id": healthCheckID})

	var out AuthorizationOutcome
	hc, err := u.snapshots.healthCheck(ctx, healthCheckID)
	if err != nil {
		return AuthorizationOutcome{}, err
	}

	err = withLock(ctx, u.locker, hc.ID, func() error {
		hc, items, err := u.snapshots.load(ctx, hc.ID)
		if err != nil {
			return err
		}
		if !workflow.IsAuthorizable(hc.Status) {
			return ErrHealthCheckNotAuthorizable
		}

		reasons, err := u.reasonIndex(ctx)
		if err != nil {
			return err
		}
		at := u.now()
		res, err := authorization.RecordAuthorization(items, in.Decisions, in.Method, in.Notes, authorization.DecisionContext{
			Reasons: reasons,
			At:      at,
		})
		if err != nil {
			return err
		}
		if err := workflow.ValidateTransition(hc.Status, res.NewStatus); err != nil {
			return err
		}
		quote, err := u.calc.SummarizeQuote(res.Items)
		if err != nil {
			return err
		}

		if err := u.items.SaveAll(ctx, res.Changed); err != nil {
			return err
		}
		updated, err := u.healthChecks.MarkAuthorized(ctx, hc.ID, res.NewStatus, at, res.Method, res.Notes)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return ErrHealthCheckNotFound
		}

		out = AuthorizationOutcome{HealthCheck: updated, Result: res, Quote: quote}
		return nil
	})
	if err != nil {
		logger.WithError(err).Warn("authorization rejected")
		return AuthorizationOutcome{}, err
	}

	logger.WithFields(logrus.Fields{
		"status":     out.Result.NewStatus,
		"authorised": out.Result.Tally.Authorised,
		"declined":   out.Result.Tally.Declined,
		"deferred":   out.Result.Tally.Deferred,
	}).Info("authorization recorded")

	publish(ctx, u.publisher, SubjectHealthCheckAuthorized, HealthCheckAuthorizedEvent{
		HealthCheckID:   out.HealthCheck.ID,
		Status:          out.Result.NewStatus,
		Method:          out.Result.Method,
		Authorised:      out.Result.Tally.Authorised,
		Declined:        out.Result.Tally.Declined,
		Deferred:        out.Result.Tally.Deferred,
		AuthorisedTotal: out.Quote.AuthorisedTotal,
		AuthorizedAt:    u.authorizedAt(out.HealthCheck),
	})
	return out, nil
}

func (u *AuthorizationUseCase) reasonIndex(ctx context.Context) (map[string]entities.DeclineReason, error) {
	list, err := u.reasons.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]entities.DeclineReason, len(list))
	for _, r := range list {
		idx[r.ID] = r
	}
	return idx, nil
}

func (u *AuthorizationUseCase) authorizedAt(hc entities.HealthCheck) time.Time {
	if hc.AuthorizedAt != nil {
		return *hc.AuthorizedAt
	}
	return u.now()
}
