package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/domain/pricing"
	"vhc_service/internal/infrastructure/logging"
	"vhc_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrHealthCheckNotPayable          = errors.New("health check has no authorised work to pay")
	ErrNothingToPay                   = errors.New("authorised total is zero")
	ErrPaymentAlreadyExists           = errors.New("health check already has an approved payment")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PayerSettings carries the Mercado Pago account details the payload is enriched with.
type PayerSettings struct {
	AccessToken   string
	SandboxEmail  string
	SandboxUserID string
	// MockMode relaxes payload checks; the gateway approves locally.
	MockMode bool
}

func (p PayerSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(p.AccessToken), "TEST-")
}

// IBillingPaymentUseCase takes payment for the authorised part of a quote.
//
// Requested behavior:
//   - The amount charged is always the authorised total of the current quote.
//   - A health check is paid at most once.
type IBillingPaymentUseCase interface {
	CreateForHealthCheck(ctx context.Context, healthCheckID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByHealthCheckID(ctx context.Context, healthCheckID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo      interfaces.IBillingPaymentRepository
	snapshots snapshotLoader
	calc      *pricing.Calculator
	gateway   interfaces.IPaymentGateway
	locker    interfaces.ILocker
	payer     PayerSettings
	now       func() time.Time
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(
	repo interfaces.IBillingPaymentRepository,
	healthChecks interfaces.IHealthCheckRepository,
	items interfaces.IRepairItemRepository,
	calc *pricing.Calculator,
	gateway interfaces.IPaymentGateway,
	locker interfaces.ILocker,
	payer PayerSettings,
) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		repo:      repo,
		snapshots: snapshotLoader{healthChecks: healthChecks, repairItems: items},
		calc:      calc,
		gateway:   gateway,
		locker:    locker,
		payer:     payer,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func payable(s entities.HealthCheckStatus) bool {
	switch s {
	case entities.HealthCheckStatusAuthorized,
		entities.HealthCheckStatusPartiallyAuthorized,
		entities.HealthCheckStatusCompleted:
		return true
	}
	return false
}

func (u *BillingPaymentUseCase) CreateForHealthCheck(ctx context.Context, healthCheckID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	logger := logging.GetLogger().WithFields(logrus.Fields{"module": "payment", "layer": "usecase", "health_check_id": healthCheckID})
	logger.WithField("payload_len", len(mpPayload)).Info("create payment start")

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.payer.MockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	hc, err := u.snapshots.healthCheck(ctx, healthCheckID)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	var created entities.BillingPayment
	err = withLock(ctx, u.locker, hc.ID, func() error {
		hc, items, err := u.snapshots.load(ctx, hc.ID)
		if err != nil {
			return err
		}
		if !payable(hc.Status) {
			return ErrHealthCheckNotPayable
		}
		existing, err := u.repo.ListByHealthCheckID(ctx, hc.ID)
		if err != nil {
			return err
		}
		for _, p := range existing {
			if p.Status == entities.PaymentStatusApproved {
				return ErrPaymentAlreadyExists
			}
		}

		q, err := u.calc.SummarizeQuote(items)
		if err != nil {
			return err
		}
		amount := q.AuthorisedTotal
		if !amount.IsPositive() {
			return ErrNothingToPay
		}

		payload, err := u.enrichPayload(hc, amount.InexactFloat64(), mpPayload)
		if err != nil {
			return err
		}

		providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			logging.LogError(logging.GetLogger(), "payment", "CreateForHealthCheck", "payment gateway failed", logrus.Fields{"health_check_id": hc.ID}, err)
			return classifyGatewayError(err)
		}

		var parsed map[string]interface{}
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			logger.WithError(err).Warn("provider response unmarshal failed")
		}

		created, err = u.repo.Create(ctx, entities.BillingPayment{
			ID:            providerPaymentID,
			HealthCheckID: hc.ID,
			Amount:        amount,
			Date:          u.now(),
			Status:        paymentStatusFromProvider(providerStatus),
			MPPayloadRaw:  providerResp,
			MPPayload:     parsed,
		})
		return err
	})
	if err != nil {
		logger.WithError(err).Warn("create payment rejected")
		return entities.BillingPayment{}, err
	}

	logger.WithFields(logrus.Fields{
		"payment_id": created.ID,
		"status":     created.Status,
		"amount":     created.Amount.StringFixed(2),
	}).Info("create payment success")
	return created, nil
}

// enrichPayload links the request to the health check and forces the amount.
func (u *BillingPaymentUseCase) enrichPayload(hc entities.HealthCheck, amount float64, mpPayload json.RawMessage) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.payer.MockMode {
			return nil, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}

	if !u.payer.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return nil, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			return nil, ErrInvalidMPPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = hc.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Vehicle health check %s", hc.VehicleRegistration)
	}
	reqMap["transaction_amount"] = amount

	return json.Marshal(reqMap)
}

func paymentStatusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; email is filled only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.payer.SandboxEmail != "" {
			payer["email"] = u.payer.SandboxEmail
		} else if u.payer.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *BillingPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.payer.sandbox() || u.payer.SandboxUserID == "" || u.payer.SandboxEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != u.payer.SandboxUserID {
		return
	}
	payer["email"] = u.payer.SandboxEmail
	delete(payer, "id")
	logging.GetLogger().WithField("module", "payment").Debug("mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByHealthCheckID(ctx context.Context, healthCheckID string) ([]entities.BillingPayment, error) {
	healthCheckID = strings.TrimSpace(healthCheckID)
	if healthCheckID == "" {
		return nil, ErrInvalidHealthCheckID
	}
	return u.repo.ListByHealthCheckID(ctx, healthCheckID)
}
