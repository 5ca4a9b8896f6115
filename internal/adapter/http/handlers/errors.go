package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "vhc_service/internal/adapter/http/dto/request"
	"vhc_service/internal/domain/entities"
	"vhc_service/internal/usecase"
	"vhc_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindError reports which fields failed binding validation, when known.
func bindError(err error) *pkg.AppError {
	appErr := errInvalidPayload
	for field, tag := range request.ValidationDetails(err) {
		appErr = appErr.WithDetail(field, tag)
	}
	return appErr
}

// mapDomainError handles the typed errors shared by every route. Handler
// specific sentinels are matched by the callers first.
func mapDomainError(err error) *pkg.AppError {
	var (
		ve  *entities.ValidationError
		ide *entities.IncompleteDecisionError
		nfe *entities.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_ERROR", validationMessage(ve), err, http.StatusBadRequest).
			WithDetail("field", ve.Field).
			WithDetail("item_id", ve.ItemID).
			WithDetail("line_item_id", ve.LineItemID).
			WithDetail("reason", ve.Details)
	case errors.As(err, &ide):
		return pkg.NewDomainError("AUTHORIZATION_INCOMPLETE", "Every item needs a decision", err, http.StatusConflict).
			WithDetail("undecided_item_ids", strings.Join(ide.UndecidedItemIDs, ","))
	case errors.As(err, &nfe):
		return pkg.NewDomainError("NOT_FOUND", nfe.Kind+" not found", err, http.StatusNotFound).
			WithDetail("id", nfe.ID)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Status change not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidHealthCheckID):
		return pkg.NewDomainErrorSimple("INVALID_HEALTH_CHECK_ID", "Invalid health check id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHealthCheckNotFound):
		return pkg.NewDomainErrorSimple("HEALTH_CHECK_NOT_FOUND", "Health check not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHealthCheckLocked):
		return pkg.NewDomainError("HEALTH_CHECK_LOCKED", "Health check is being updated, try again", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// validationMessage drops the location suffix Error() adds; the location is
// sent in the details instead.
func validationMessage(ve *entities.ValidationError) string {
	if ve.Err == nil {
		return entities.ErrValidation.Error()
	}
	return ve.Err.Error()
}
