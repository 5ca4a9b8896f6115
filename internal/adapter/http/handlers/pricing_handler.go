package handlers

import (
	"net/http"

	request "vhc_service/internal/adapter/http/dto/request"
	response "vhc_service/internal/adapter/http/dto/response"
	"vhc_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// CalculateSellPrice godoc
// @Summary      Sell price from cost and margin
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      request.SellPriceRequest  true  "Cost and margin"
// @Success      200   {object}  response.SellPriceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /pricing/sell-price [post]
func (h *PricingHandler) CalculateSellPrice(c *gin.Context) {
	var payload request.SellPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}
	cost, margin, err := payload.Decimals()
	if err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	q, err := h.usecase.SellPrice(cost, margin)
	if err != nil {
		respondError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSellPrice(q.CostPrice, q.MarginPercent, q.SellPrice, q.SellPriceIncVAT))
}
