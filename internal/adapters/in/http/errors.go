package http

import (
	"errors"
	"net/http"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/core/domain/model/request"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application and domain errors to HTTP responses.
//
// Not-found lookups become 404, configuration conflicts 409, business rule
// violations 422, and malformed input 400. Anything unclassified is a 500
// with a generic message so internals do not leak to clients.
func writeError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, Error{
			Code:    httpErr.Code,
			Message: http.StatusText(httpErr.Code),
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, commands.ErrEffectiveDateIsTaken),
		errors.Is(err, commands.ErrRuleRangeOverlaps):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})

	case errors.Is(err, request.ErrWeightIsNotConfirmed),
		errors.Is(err, request.ErrCategoryIsNotConfirmed),
		errors.Is(err, request.ErrWeightIsNotPositive),
		errors.Is(err, request.ErrRequestIsResolved),
		errors.Is(err, parcel.ErrNotAtFinalCheckpoint),
		errors.Is(err, parcel.ErrArrivalRequiresTransit),
		errors.Is(err, services.ErrWeightIsRequiredForPricing),
		errors.Is(err, pricing.ErrScheduleNotYetEffective):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})

	case errors.Is(err, queries.ErrTrackingNumberIsRequired),
		errors.Is(err, queries.ErrQuoteWeightIsNegative),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, parcel.ErrOverrideReasonIsRequired),
		errors.Is(err, pricing.ErrModelRangeIsInverted),
		isCommandValidationError(err):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// isCommandValidationError classifies failures raised while constructing a
// command from request input. They all stem from bad client data.
func isCommandValidationError(err error) bool {
	for _, target := range []error{
		commands.ErrCarrierReferenceIsRequired,
		commands.ErrDescriptionIsRequired,
		commands.ErrRecipientNameIsRequired,
		commands.ErrEstimatedWeightIsInvalid,
		commands.ErrReviewWeightIsNegative,
		commands.ErrReviewCategoryIsRequired,
		commands.ErrReceivingLocationIsRequired,
		commands.ErrTransitLocationIsRequired,
		commands.ErrArrivalLocationIsRequired,
		commands.ErrReceivedByIsRequired,
		commands.ErrEffectiveFromIsRequired,
		commands.ErrFixedFeeIsNegative,
		commands.ErrEvidenceReferenceIsRequired,
		commands.ErrCorrectedWeightIsInvalid,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
