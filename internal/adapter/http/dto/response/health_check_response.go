package response

import (
	"time"

	"vhc_service/internal/domain/entities"
	"vhc_service/internal/domain/workflow"
)

type HealthCheckResponse struct {
	ID                  string     `json:"id"`
	VehicleRegistration string     `json:"vehicle_registration"`
	CustomerName        string     `json:"customer_name,omitempty"`
	CustomerMobile      string     `json:"customer_mobile,omitempty"`
	CustomerEmail       string     `json:"customer_email,omitempty"`
	Status              string     `json:"status"`
	SentAt              *time.Time `json:"sent_at,omitempty"`
	AuthorizedAt        *time.Time `json:"authorized_at,omitempty"`
	AuthorizationMethod string     `json:"authorization_method,omitempty"`
	AuthorizationNotes  string     `json:"authorization_notes,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func FromHealthCheck(hc entities.HealthCheck) HealthCheckResponse {
	return HealthCheckResponse{
		ID:                  hc.ID,
		VehicleRegistration: hc.VehicleRegistration,
		CustomerName:        hc.CustomerName,
		CustomerMobile:      hc.CustomerMobile,
		CustomerEmail:       hc.CustomerEmail,
		Status:              string(hc.Status),
		SentAt:              hc.SentAt,
		AuthorizedAt:        hc.AuthorizedAt,
		AuthorizationMethod: string(hc.AuthorizationMethod),
		AuthorizationNotes:  hc.AuthorizationNotes,
		CreatedAt:           hc.CreatedAt,
		UpdatedAt:           hc.UpdatedAt,
	}
}

type WorkflowStatusResponse struct {
	HealthCheckID string `json:"health_check_id"`
	Labour        string `json:"labour"`
	Parts         string `json:"parts"`
	Authorization string `json:"authorization"`
	Sent          string `json:"sent"`
}

func FromWorkflowStatus(healthCheckID string, ws workflow.WorkflowStatus) WorkflowStatusResponse {
	return WorkflowStatusResponse{
		HealthCheckID: healthCheckID,
		Labour:        string(ws.Labour),
		Parts:         string(ws.Parts),
		Authorization: string(ws.Authorization),
		Sent:          string(ws.Sent),
	}
}
