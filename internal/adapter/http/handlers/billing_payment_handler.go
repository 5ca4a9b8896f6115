package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "vhc_service/internal/adapter/http/dto/response"
	"vhc_service/internal/infrastructure/logging"
	"vhc_service/internal/usecase"
	"vhc_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BillingPaymentHandler takes payment for the authorised work of a health check.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment godoc
// @Summary      Charge the authorised total of a health check
// @Description  Body is the Mercado Pago payment payload, optionally wrapped as {"mp_payload": {...}}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        health_check_id  path      string  true  "Health check ID"
// @Success      200              {object}  response.BillingPaymentResponse
// @Failure      400              {object}  pkg.HTTPError
// @Failure      409              {object}  pkg.HTTPError
// @Router       /payments/{health_check_id} [post]
func (h *BillingPaymentHandler) CreatePayment(c *gin.Context) {
	healthCheckID := c.Param("health_check_id")
	log := logging.GetLogger().WithField("health_check_id", healthCheckID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.WithError(err).Warn("invalid payment payload")
			respondError(c, errInvalidPayload)
			return
		}
		log.WithError(err).Info("invalid payment payload in mock mode, using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateForHealthCheck(c.Request.Context(), healthCheckID, mpPayload)
	if err != nil {
		log.WithError(err).Warn("payment failed")
		respondError(c, mapBillingPaymentError(err))
		return
	}
	log.WithFields(logrus.Fields{
		"payment_id": created.ID,
		"status":     created.Status,
	}).Info("payment created")

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPayment godoc
// @Summary      Latest payment of a health check
// @Tags         payments
// @Produce      json
// @Param        health_check_id  path      string  true  "Health check ID"
// @Success      200              {object}  response.BillingPaymentResponse
// @Failure      404              {object}  pkg.HTTPError
// @Router       /payments/{health_check_id} [get]
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	healthCheckID := c.Param("health_check_id")

	payments, err := h.usecase.ListByHealthCheckID(c.Request.Context(), healthCheckID)
	if err != nil {
		respondError(c, mapBillingPaymentError(err))
		return
	}
	if len(payments) == 0 {
		respondError(c, mapBillingPaymentError(usecase.ErrBillingPaymentNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// GetPaymentByID godoc
// @Summary      A single payment of a health check
// @Tags         payments
// @Produce      json
// @Param        health_check_id  path      string  true  "Health check ID"
// @Param        payment_id       path      string  true  "Payment ID"
// @Success      200              {object}  response.BillingPaymentResponse
// @Failure      404              {object}  pkg.HTTPError
// @Router       /payments/{health_check_id}/{payment_id} [get]
func (h *BillingPaymentHandler) GetPaymentByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respondError(c, mapBillingPaymentError(err))
		return
	}
	if p.HealthCheckID != c.Param("health_check_id") {
		respondError(c, mapBillingPaymentError(usecase.ErrBillingPaymentNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			w := strings.TrimSpace(string(wrapped))
			if w == "" || w == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrHealthCheckNotPayable):
		return pkg.NewDomainErrorSimple("HEALTH_CHECK_NOT_PAYABLE", "Health check has no authorised work", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToPay):
		return pkg.NewDomainErrorSimple("NOTHING_TO_PAY", "Authorised total is zero", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAlreadyExists):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_EXISTS", "Health check has already been paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapDomainError(err)
	}
}
