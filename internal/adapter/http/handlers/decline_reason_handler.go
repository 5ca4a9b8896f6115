package handlers

import (
	"errors"
	"net/http"

	request "vhc_service/internal/adapter/http/dto/request"
	response "vhc_service/internal/adapter/http/dto/response"
	"vhc_service/internal/usecase"
	"vhc_service/pkg"

	"github.com/gin-gonic/gin"
)

type DeclineReasonHandler struct {
	usecase usecase.IDeclineReasonUseCase
}

func NewDeclineReasonHandler(uc usecase.IDeclineReasonUseCase) *DeclineReasonHandler {
	return &DeclineReasonHandler{usecase: uc}
}

// ListDeclineReasons godoc
// @Summary      Decline reasons offered to the customer
// @Tags         decline-reasons
// @Produce      json
// @Success      200  {array}  response.DeclineReasonResponse
// @Router       /decline-reasons [get]
func (h *DeclineReasonHandler) ListDeclineReasons(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapDeclineReasonError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDeclineReasons(list))
}

// CreateDeclineReason godoc
// @Summary      Add a garage decline reason
// @Tags         decline-reasons
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateDeclineReasonRequest  true  "Reason"
// @Success      201   {object}  response.DeclineReasonResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /decline-reasons [post]
func (h *DeclineReasonHandler) CreateDeclineReason(c *gin.Context) {
	var payload request.CreateDeclineReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}

	reason, err := h.usecase.Create(c.Request.Context(), usecase.CreateDeclineReasonInput{
		Reason:        payload.Reason,
		RequiresNotes: payload.RequiresNotes,
		SortOrder:     payload.SortOrder,
	})
	if err != nil {
		respondError(c, mapDeclineReasonError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDeclineReason(reason))
}

func mapDeclineReasonError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidDeclineReason) {
		return pkg.NewDomainErrorSimple("INVALID_DECLINE_REASON", "Invalid decline reason", http.StatusBadRequest)
	}
	return mapDomainError(err)
}
