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

// AuthorizationHandler records customer decisions on a sent quote.
type AuthorizationHandler struct {
	usecase usecase.IAuthorizationUseCase
}

func NewAuthorizationHandler(uc usecase.IAuthorizationUseCase) *AuthorizationHandler {
	return &AuthorizationHandler{usecase: uc}
}

// SubmitAuthorization godoc
// @Summary      Record the customer's decisions
// @Description  Every item with red or amber findings must end up authorised, declined or deferred.
// @Tags         authorization
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Health check ID"
// @Param        body  body      request.AuthorizationRequest  true  "Decisions"
// @Success      200   {object}  response.AuthorizationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      429   {object}  pkg.HTTPError
// @Router       /health-checks/{id}/authorization [post]
func (h *AuthorizationHandler) SubmitAuthorization(c *gin.Context) {
	id := c.Param("id")
	var payload request.AuthorizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, bindError(err))
		return
	}
	decisions, err := payload.DecisionEntities()
	if err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	out, err := h.usecase.Submit(c.Request.Context(), id, usecase.SubmitAuthorizationInput{
		Decisions: decisions,
		Method:    entities.AuthorizationMethod(payload.Method),
		Notes:     payload.Notes,
	})
	if err != nil {
		logging.GetLogger().WithFields(logrus.Fields{
			"health_check_id": id,
			"decisions":       len(decisions),
			"error":           err.Error(),
		}).Warn("authorization rejected")
		respondError(c, mapAuthorizationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromAuthorization(response.FromHealthCheck(out.HealthCheck), out.Result, out.Quote))
}

func mapAuthorizationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrHealthCheckNotAuthorizable):
		return pkg.NewDomainErrorSimple("HEALTH_CHECK_NOT_AUTHORIZABLE", "Health check is not awaiting authorization", http.StatusConflict)
	default:
		return mapDomainError(err)
	}
}
