package entities

import "time"

// HealthCheckStatus represents the lifecycle of a vehicle health check.
//
// Domain notes:
//   - Status is advanced by route actions; the allowed moves live in the workflow package.
//   - The labour/parts/authorization/sent badges are derived on read and never stored here.
type HealthCheckStatus string

const (
	HealthCheckStatusCreated             HealthCheckStatus = "created"
	HealthCheckStatusAssigned            HealthCheckStatus = "assigned"
	HealthCheckStatusInProgress          HealthCheckStatus = "in_progress"
	HealthCheckStatusTechCompleted       HealthCheckStatus = "tech_completed"
	HealthCheckStatusAwaitingPricing     HealthCheckStatus = "awaiting_pricing"
	HealthCheckStatusReadyToSend         HealthCheckStatus = "ready_to_send"
	HealthCheckStatusSent                HealthCheckStatus = "sent"
	HealthCheckStatusAuthorized          HealthCheckStatus = "authorized"
	HealthCheckStatusDeclined            HealthCheckStatus = "declined"
	HealthCheckStatusPartiallyAuthorized HealthCheckStatus = "partially_authorized"
	HealthCheckStatusCompleted           HealthCheckStatus = "completed"
	HealthCheckStatusCancelled           HealthCheckStatus = "cancelled"
)

// ParseHealthCheckStatus rejects values outside the closed status set.
func ParseHealthCheckStatus(s string) (HealthCheckStatus, error) {
	switch st := HealthCheckStatus(s); st {
	case HealthCheckStatusCreated, HealthCheckStatusAssigned, HealthCheckStatusInProgress,
		HealthCheckStatusTechCompleted, HealthCheckStatusAwaitingPricing, HealthCheckStatusReadyToSend,
		HealthCheckStatusSent, HealthCheckStatusAuthorized, HealthCheckStatusDeclined,
		HealthCheckStatusPartiallyAuthorized, HealthCheckStatusCompleted, HealthCheckStatusCancelled:
		return st, nil
	}
	return "", NewValidationError("", "status", ErrValidation, "unknown health check status "+s)
}

// HealthCheck is the inspection document that repair items hang off.
//
// Storage model (DynamoDB):
//   - PK: id
type HealthCheck struct {
	ID                  string              `json:"id"`
	VehicleRegistration string              `json:"vehicle_registration"`
	CustomerName        string              `json:"customer_name"`
	CustomerMobile      string              `json:"customer_mobile"`
	CustomerEmail       string              `json:"customer_email"`
	Status              HealthCheckStatus   `json:"status"`
	SentAt              *time.Time          `json:"sent_at,omitempty"`
	AuthorizedAt        *time.Time          `json:"authorized_at,omitempty"`
	AuthorizationMethod AuthorizationMethod `json:"authorization_method,omitempty"`
	AuthorizationNotes  string              `json:"authorization_notes,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}
