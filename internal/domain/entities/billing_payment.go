package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment records a customer payment for the authorised work of a health check.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (health_check_id-index): health_check_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response body for audit.
//   - MPPayload is the parsed form of the same body.
type BillingPayment struct {
	ID            string          `json:"id"`
	HealthCheckID string          `json:"health_check_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Status        PaymentStatus   `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
