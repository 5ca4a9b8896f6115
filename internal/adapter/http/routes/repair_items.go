package routes

import (
	"vhc_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRepairItems  = "/repair-items"
	PathRepairGroups = "/repair-groups"
)

func addRepairItemRoutes(rg *gin.RouterGroup, h *handlers.RepairItemHandler) {
	items := rg.Group(PathRepairItems)
	{
		items.DELETE("/:id", h.DeleteRepairItem)
		items.POST("/:id/labour", h.AddLabour)
		items.POST("/:id/parts", h.AddPart)
		items.PUT("/:id/line-items/:line_id", h.UpdateLineItem)
		items.DELETE("/:id/line-items/:line_id", h.RemoveLineItem)
		items.POST("/:id/options", h.AddOption)
		items.PUT("/:id/selected-option", h.SelectOption)
		items.PUT("/:id/price-override", h.SetPriceOverride)
		items.DELETE("/:id/price-override", h.ClearPriceOverride)
		items.PATCH("/:id/work-status", h.UpdateWorkStatus)
	}

	groups := rg.Group(PathRepairGroups)
	{
		groups.DELETE("/:id", h.Ungroup)
	}
}
