package handlers

import (
	"errors"
	"net/http"

	request "vhc_service/internal/adapter/http/dto/request"
	response "vhc_service/internal/adapter/http/dto/response"
	"vhc_service/internal/domain/entities"
	"vhc_service/internal/infrastructure/logging"
	"vhc_service/internal/usecase"
	"vhc_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthCheckHandler serves the health check document and what is derived from
// its repair items.
type HealthCheckHandler struct {
	usecase usecase.IHealthCheckUseCase
}

func NewHealthCheckHandler(uc usecase.IHealthCheckUseCase) *HealthCheckHandler {
	return &HealthCheckHandler{usecase: uc}
}

// CreateHealthCheck godoc
// @Summary      Create health check
// @Tags         health-checks
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateHealthCheckRequest  true  "Health check"
// @Success      201   {object}  response.HealthCheckResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /health-checks [post]
func (h *HealthCheckHandler) CreateHealthCheck(c *gin.Context) {
	var payload request.CreateHealthCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}

	hc, err := h.usecase.Create(c.Request.Context(), usecase.CreateHealthCheckInput{
		VehicleRegistration: payload.VehicleRegistration,
		CustomerName:        payload.CustomerName,
		CustomerMobile:      payload.CustomerMobile,
		CustomerEmail:       payload.CustomerEmail,
	})
	if err != nil {
		respondError(c, mapHealthCheckError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromHealthCheck(hc))
}

// GetHealthCheck godoc
// @Summary      Get health check
// @Tags         health-checks
// @Produce      json
// @Param        id   path      string  true  "Health check ID"
// @Success      200  {object}  response.HealthCheckResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /health-checks/{id} [get]
func (h *HealthCheckHandler) GetHealthCheck(c *gin.Context) {
	hc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapHealthCheckError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHealthCheck(hc))
}

// GetQuote godoc
// @Summary      Priced quote of a health check
// @Tags         health-checks
// @Produce      json
// @Param        id   path      string  true  "Health check ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /health-checks/{id}/quote [get]
func (h *HealthCheckHandler) GetQuote(c *gin.Context) {
	id := c.Param("id")
	q, err := h.usecase.GetQuote(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapHealthCheckError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(id, q))
}

// ExportQuote godoc
// @Summary      Download the quote as a spreadsheet
// @Tags         health-checks
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "Health check ID"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /health-checks/{id}/quote/export [get]
func (h *HealthCheckHandler) ExportQuote(c *gin.Context) {
	id := c.Param("id")
	data, contentType, err := h.usecase.ExportQuote(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapHealthCheckError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="quote-`+id+`.xlsx"`)
	c.Data(http.StatusOK, contentType, data)
}

// GetWorkflowStatus godoc
// @Summary      Labour, parts, authorization and sent badges
// @Tags         health-checks
// @Produce      json
// @Param        id   path      string  true  "Health check ID"
// @Success      200  {object}  response.WorkflowStatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /health-checks/{id}/workflow-status [get]
func (h *HealthCheckHandler) GetWorkflowStatus(c *gin.Context) {
	id := c.Param("id")
	ws, err := h.usecase.GetWorkflowStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapHealthCheckError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflowStatus(id, ws))
}

// SendHealthCheck godoc
// @Summary      Send the quote to the customer
// @Tags         health-checks
// @Produce      json
// @Param        id   path      string  true  "Health check ID"
// @Success      200  {object}  response.HealthCheckResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /health-checks/{id}/send [post]
func (h *HealthCheckHandler) SendHealthCheck(c *gin.Context) {
	id := c.Param("id")
	hc, err := h.usecase.Send(c.Request.Context(), id)
	if err != nil {
		logging.GetLogger().WithFields(logrus.Fields{"health_check_id": id, "error": err.Error()}).Warn("send rejected")
		respondError(c, mapHealthCheckError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHealthCheck(hc))
}

// UpdateStatus godoc
// @Summary      Move a health check to another status
// @Tags         health-checks
// @Accept       json
// @Produce      json
// @Param        id    path      string                                  true  "Health check ID"
// @Param        body  body      request.UpdateHealthCheckStatusRequest  true  "Status"
// @Success      200   {object}  response.HealthCheckResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /health-checks/{id}/status [patch]
func (h *HealthCheckHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateHealthCheckStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}

	hc, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.HealthCheckStatus(payload.Status))
	if err != nil {
		respondError(c, mapHealthCheckError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHealthCheck(hc))
}

func mapHealthCheckError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHealthCheckData):
		return pkg.NewDomainErrorSimple("INVALID_HEALTH_CHECK_INPUT", "Invalid health check payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerMobile):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_MOBILE", "Customer mobile is not a valid phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatusNeedsAction):
		return pkg.NewDomainErrorSimple("STATUS_NEEDS_ACTION", "Use the send or authorization routes for this status", http.StatusConflict)
	default:
		return mapDomainError(err)
	}
}
