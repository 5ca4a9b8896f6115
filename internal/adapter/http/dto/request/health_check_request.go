package request

// CreateHealthCheckRequest opens a health check for a vehicle.
type CreateHealthCheckRequest struct {
	VehicleRegistration string `json:"vehicle_registration" binding:"required"`
	CustomerName        string `json:"customer_name"`
	CustomerMobile      string `json:"customer_mobile"`
	CustomerEmail       string `json:"customer_email" binding:"omitempty,email"`
}

// UpdateHealthCheckStatusRequest moves a health check along its workflow.
type UpdateHealthCheckStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
