package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathHealthChecks = "/health-checks"
)

func addHealthCheckRoutes(rg *gin.RouterGroup, h Handlers, authLimiter *ipRateLimiter) {
	healthChecks := rg.Group(PathHealthChecks)
	{
		healthChecks.POST("", h.HealthChecks.CreateHealthCheck)
		healthChecks.GET("/:id", h.HealthChecks.GetHealthCheck)
		healthChecks.PATCH("/:id/status", h.HealthChecks.UpdateStatus)
		healthChecks.GET("/:id/quote", h.HealthChecks.GetQuote)
		healthChecks.GET("/:id/quote/export", h.HealthChecks.ExportQuote)
		healthChecks.GET("/:id/workflow-status", h.HealthChecks.GetWorkflowStatus)
		healthChecks.POST("/:id/send", h.HealthChecks.SendHealthCheck)

		// customer facing, so submissions are throttled per client
		healthChecks.POST("/:id/authorization", authLimiter.Middleware(), h.Authorization.SubmitAuthorization)

		healthChecks.POST("/:id/repair-items", h.RepairItems.CreateRepairItem)
		healthChecks.GET("/:id/repair-items", h.RepairItems.ListRepairItems)
		healthChecks.POST("/:id/repair-groups", h.RepairItems.CreateGroup)
	}
}
