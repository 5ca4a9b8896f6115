package response

import (
	"vhc_service/internal/domain/authorization"
	"vhc_service/internal/domain/pricing"
)

type TallyResponse struct {
	Authorised int `json:"authorised"`
	Declined   int `json:"declined"`
	Deferred   int `json:"deferred"`
}

// AuthorizationResponse reports the recorded decisions and the resulting quote split.
type AuthorizationResponse struct {
	Success       bool                 `json:"success"`
	HealthCheck   HealthCheckResponse  `json:"health_check"`
	NewStatus     string               `json:"new_status"`
	Tally         TallyResponse        `json:"tally"`
	Changed       []RepairItemResponse `json:"changed_items"`
	AuthorisedSum string               `json:"authorised_total"`
	DeclinedSum   string               `json:"declined_total"`
	DeferredSum   string               `json:"deferred_total"`
}

func FromAuthorization(hc HealthCheckResponse, res authorization.Result, q pricing.QuoteSummary) AuthorizationResponse {
	return AuthorizationResponse{
		Success:     res.Success,
		HealthCheck: hc,
		NewStatus:   string(res.NewStatus),
		Tally: TallyResponse{
			Authorised: res.Tally.Authorised,
			Declined:   res.Tally.Declined,
			Deferred:   res.Tally.Deferred,
		},
		Changed:       FromRepairItems(res.Changed),
		AuthorisedSum: money(q.AuthorisedTotal),
		DeclinedSum:   money(q.DeclinedTotal),
		DeferredSum:   money(q.DeferredTotal),
	}
}
