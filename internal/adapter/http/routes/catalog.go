package routes

import (
	"vhc_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDeclineReasons = "/decline-reasons"
	PathPricing        = "/pricing"
	PathPayments       = "/payments"
)

func addDeclineReasonRoutes(rg *gin.RouterGroup, h *handlers.DeclineReasonHandler) {
	reasons := rg.Group(PathDeclineReasons)
	{
		reasons.GET("", h.ListDeclineReasons)
		reasons.POST("", h.CreateDeclineReason)
	}
}

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	rg.Group(PathPricing).POST("/sell-price", h.CalculateSellPrice)
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:health_check_id", h.CreatePayment)
		payments.GET("/:health_check_id", h.GetPayment)
		payments.GET("/:health_check_id/:payment_id", h.GetPaymentByID)
	}
}
