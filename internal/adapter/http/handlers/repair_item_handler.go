package handlers

import (
	"errors"
	"net/http"

	request "vhc_service/internal/adapter/http/dto/request"
	response "vhc_service/internal/adapter/http/dto/response"
	"vhc_service/internal/domain/entities"
	"vhc_service/internal/usecase"
	"vhc_service/pkg"

	"github.com/gin-gonic/gin"
)

// RepairItemHandler edits the repair items of a health check: lines, options,
// overrides, work status and grouping.
type RepairItemHandler struct {
	usecase usecase.IRepairItemUseCase
}

func NewRepairItemHandler(uc usecase.IRepairItemUseCase) *RepairItemHandler {
	return &RepairItemHandler{usecase: uc}
}

// CreateRepairItem godoc
// @Summary      Add a repair item to a health check
// @Tags         repair-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Health check ID"
// @Param        body  body      request.CreateRepairItemRequest  true  "Repair item"
// @Success      201   {object}  response.RepairItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /health-checks/{id}/repair-items [post]
func (h *RepairItemHandler) CreateRepairItem(c *gin.Context) {
	var payload request.CreateRepairItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), c.Param("id"), usecase.CreateRepairItemInput{
		Name:             payload.Name,
		Description:      payload.Description,
		SortOrder:        payload.SortOrder,
		CheckResults:     payload.CheckResultEntities(),
		NoLabourRequired: payload.NoLabourRequired,
		NoPartsRequired:  payload.NoPartsRequired,
	})
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRepairItem(item))
}

// ListRepairItems godoc
// @Summary      Repair items of a health check, groups with their children
// @Tags         repair-items
// @Produce      json
// @Param        id   path      string  true  "Health check ID"
// @Success      200  {array}   response.RepairItemResponse
// @Router       /health-checks/{id}/repair-items [get]
func (h *RepairItemHandler) ListRepairItems(c *gin.Context) {
	items, err := h.usecase.ListByHealthCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairItems(items))
}

// AddLabour godoc
// @Summary      Add a labour line
// @Tags         repair-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Repair item ID"
// @Param        body  body      request.LineItemRequest  true  "Labour line"
// @Success      201   {object}  response.RepairItemResponse
// @Router       /repair-items/{id}/labour [post]
func (h *RepairItemHandler) AddLabour(c *gin.Context) {
	h.addLine(c, entities.LineItemKindLabour)
}

// AddPart godoc
// @Summary      Add a parts line
// @Tags         repair-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Repair item ID"
// @Param        body  body      request.LineItemRequest  true  "Parts line"
// @Success      201   {object}  response.RepairItemResponse
// @Router       /repair-items/{id}/parts [post]
func (h *RepairItemHandler) AddPart(c *gin.Context) {
	h.addLine(c, entities.LineItemKindPart)
}

func (h *RepairItemHandler) addLine(c *gin.Context, kind entities.LineItemKind) {
	line, ok := bindLineItem(c, kind)
	if !ok {
		return
	}
	item, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("id"), line)
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRepairItem(item))
}

// UpdateLineItem godoc
// @Summary      Replace a labour or parts line
// @Tags         repair-items
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Repair item ID"
// @Param        line_id  path      string                   true  "Line item ID"
// @Param        body     body      request.LineItemRequest  true  "Line"
// @Success      200      {object}  response.RepairItemResponse
// @Router       /repair-items/{id}/line-items/{line_id} [put]
func (h *RepairItemHandler) UpdateLineItem(c *gin.Context) {
	// kind is kept from the stored line
	line, ok := bindLineItem(c, "")
	if !ok {
		return
	}
	item, err := h.usecase.UpdateLineItem(c.Request.Context(), c.Param("id"), c.Param("line_id"), line)
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairItem(item))
}

// RemoveLineItem godoc
// @Summary      Remove a labour or parts line
// @Tags         repair-items
// @Produce      json
// @Param        id       path      string  true  "Repair item ID"
// @Param        line_id  path      string  true  "Line item ID"
// @Success      200      {object}  response.RepairItemResponse
// @Router       /repair-items/{id}/line-items/{line_id} [delete]
func (h *RepairItemHandler) RemoveLineItem(c *gin.Context) {
	item, err := h.usecase.RemoveLineItem(c.Request.Context(), c.Param("id"), c.Param("line_id"))
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairItem(item))
}

func bindLineItem(c *gin.Context, kind entities.LineItemKind) (entities.LineItem, bool) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return entities.LineItem{}, false
	}
	line, err := payload.ToLineItem(kind)
	if err != nil {
		respondError(c, errInvalidPayload)
		return entities.LineItem{}, false
	}
	return line, true
}

// AddOption godoc
// @Summary      Add a pricing option
// @Tags         repair-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Repair item ID"
// @Param        body  body      request.RepairOptionRequest  true  "Option"
// @Success      201   {object}  response.RepairItemResponse
// @Router       /repair-items/{id}/options [post]
func (h *RepairItemHandler) AddOption(c *gin.Context) {
	var payload request.RepairOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}
	opt, err := payload.ToRepairOption()
	if err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.AddOption(c.Request.Context(), c.Param("id"), opt)
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRepairItem(item))
}

// SelectOption godoc
// @Summary      Select the option the quote is priced from
// @Tags         repair-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Repair item ID"
// @Param        body  body      request.SelectOptionRequest  true  "Option"
// @Success      200   {object}  response.RepairItemResponse
// @Router       /repair-items/{id}/selected-option [put]
func (h *RepairItemHandler) SelectOption(c *gin.Context) {
	var payload request.SelectOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}
	item, err := h.usecase.SelectOption(c.Request.Context(), c.Param("id"), payload.OptionID)
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairItem(item))
}

// SetPriceOverride godoc
// @Summary      Override the VAT-inclusive total of an item
// @Tags         repair-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Repair item ID"
// @Param        body  body      request.PriceOverrideRequest  true  "Override"
// @Success      200   {object}  response.RepairItemResponse
// @Router       /repair-items/{id}/price-override [put]
func (h *RepairItemHandler) SetPriceOverride(c *gin.Context) {
	var payload request.PriceOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}
	amount, err := payload.AmountDecimal()
	if err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.SetPriceOverride(c.Request.Context(), c.Param("id"), amount, payload.Reason)
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairItem(item))
}

// ClearPriceOverride godoc
// @Summary      Remove a price override
// @Tags         repair-items
// @Produce      json
// @Param        id   path      string  true  "Repair item ID"
// @Success      200  {object}  response.RepairItemResponse
// @Router       /repair-items/{id}/price-override [delete]
func (h *RepairItemHandler) ClearPriceOverride(c *gin.Context) {
	item, err := h.usecase.ClearPriceOverride(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairItem(item))
}

// UpdateWorkStatus godoc
// @Summary      Update labour/parts pricing progress
// @Tags         repair-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Repair item ID"
// @Param        body  body      request.WorkStatusRequest  true  "Work status"
// @Success      200   {object}  response.RepairItemResponse
// @Router       /repair-items/{id}/work-status [patch]
func (h *RepairItemHandler) UpdateWorkStatus(c *gin.Context) {
	var payload request.WorkStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}

	in := usecase.WorkStatusInput{
		NoLabourRequired: payload.NoLabourRequired,
		NoPartsRequired:  payload.NoPartsRequired,
	}
	if payload.LabourStatus != nil {
		s := entities.WorkStatus(*payload.LabourStatus)
		in.LabourStatus = &s
	}
	if payload.PartsStatus != nil {
		s := entities.WorkStatus(*payload.PartsStatus)
		in.PartsStatus = &s
	}

	item, err := h.usecase.UpdateWorkStatus(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairItem(item))
}

// DeleteRepairItem godoc
// @Summary      Soft-delete a repair item
// @Tags         repair-items
// @Produce      json
// @Param        id   path      string  true  "Repair item ID"
// @Success      200  {object}  response.RepairItemResponse
// @Router       /repair-items/{id} [delete]
func (h *RepairItemHandler) DeleteRepairItem(c *gin.Context) {
	item, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairItem(item))
}

// CreateGroup godoc
// @Summary      Group top-level repair items
// @Tags         repair-groups
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Health check ID"
// @Param        body  body      request.CreateGroupRequest  true  "Group"
// @Success      201   {object}  response.RepairItemResponse
// @Router       /health-checks/{id}/repair-groups [post]
func (h *RepairItemHandler) CreateGroup(c *gin.Context) {
	var payload request.CreateGroupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}

	group, err := h.usecase.CreateGroup(c.Request.Context(), c.Param("id"), usecase.CreateGroupInput{
		Name:        payload.Name,
		Description: payload.Description,
		ItemIDs:     payload.RepairItemIDs,
	})
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRepairItem(group))
}

// Ungroup godoc
// @Summary      Dissolve a group, keeping its items
// @Tags         repair-groups
// @Produce      json
// @Param        id   path      string  true  "Group ID"
// @Success      200  {array}   response.RepairItemResponse
// @Router       /repair-groups/{id} [delete]
func (h *RepairItemHandler) Ungroup(c *gin.Context) {
	items, err := h.usecase.Ungroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapRepairItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairItems(items))
}

func mapRepairItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRepairItemID), errors.Is(err, usecase.ErrInvalidRepairItemData):
		return pkg.NewDomainErrorSimple("INVALID_REPAIR_ITEM_INPUT", "Invalid repair item payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRepairItemNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_ITEM_NOT_FOUND", "Repair item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRepairOptionNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_OPTION_NOT_FOUND", "Repair option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRepairItemDeleted):
		return pkg.NewDomainErrorSimple("REPAIR_ITEM_DELETED", "Repair item has been deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAGroup):
		return pkg.NewDomainErrorSimple("NOT_A_GROUP", "Repair item is not a group", http.StatusConflict)
	case errors.Is(err, usecase.ErrMixedPricing):
		return pkg.NewDomainErrorSimple("MIXED_PRICING", "Use either options or direct lines on a repair item", http.StatusConflict)
	default:
		return mapDomainError(err)
	}
}
