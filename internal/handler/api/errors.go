package api

import (
	"errors"
	"fmt"
	"net/http"

	"gym-reserve/internal/domain/booking"
	"gym-reserve/internal/domain/venue"
	"gym-reserve/internal/handler/httperr"
	"gym-reserve/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// checked in order; the first match wins
var errorMappings = []errorMapping{
	{errs.ErrVenueNotFound, http.StatusNotFound, "VENUE_NOT_FOUND", "Venue not found"},
	{errs.ErrNoVenuesLoaded, http.StatusServiceUnavailable, "NO_VENUES", "No venue schedule available"},
	{errs.ErrCoordinatorStopped, http.StatusServiceUnavailable, "SHUTTING_DOWN", "Service is shutting down"},
	{errs.ErrDateOutOfWindow, http.StatusBadRequest, "DATE_OUT_OF_WINDOW", "Date is not bookable"},
	{errs.ErrInvalidSortKey, http.StatusBadRequest, "INVALID_SORT", "Invalid sort key"},
	{errs.ErrInvalidFilterKey, http.StatusBadRequest, "INVALID_FILTER", "Invalid filter key"},
	{errs.ErrBookingRejected, http.StatusConflict, "BOOKING_REJECTED", "Booking rejected by venue"},
	{errs.ErrBackendUnavailable, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "Venue backend unavailable"},
	{venue.ErrDataShape, http.StatusBadGateway, "BACKEND_DATA_SHAPE", "Venue backend returned malformed data"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	var slotErr *booking.SlotError
	if errors.As(err, &slotErr) {
		httperr.Abort(c, slotErrorStatus(slotErr.Kind), err, httperr.ErrorBody{
			Message:  slotErr.Error(),
			Code:     string(slotErr.Kind),
			Field:    slotErr.Field,
			Expected: slotErr.Expected,
		}, nil)
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			httperr.Abort(c, m.status, err, httperr.ErrorBody{Message: m.message, Code: m.code}, nil)
			return
		}
	}

	if ctxErr := c.Request.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		httperr.Abort(c, http.StatusServiceUnavailable, err, httperr.ErrorBody{Message: "Request cancelled", Code: "CANCELLED"}, nil)
		return
	}

	httperr.Abort(c, http.StatusInternalServerError, err, httperr.ErrorBody{Message: "Internal error", Code: "INTERNAL"}, nil)
}

func slotErrorStatus(kind booking.SlotErrorKind) int {
	switch kind {
	case booking.KindBadTime, booking.KindBadDate:
		return http.StatusBadRequest
	case booking.KindSlotReserved:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func abortWithBindError(c *gin.Context, err error) {
	body := httperr.ErrorBody{Message: "Invalid request", Code: "INVALID_REQUEST"}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		body.Field = fe.Field()
		body.Expected = expectedFor(fe)
		body.Message = fmt.Sprintf("Invalid request: %s failed %q", fe.Field(), fe.Tag())
	}
	httperr.Abort(c, http.StatusBadRequest, err, body, nil)
}

func expectedFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "ymd":
		return "YYYY-MM-DD"
	case "slotlabel":
		return "HH:MM-HH:MM"
	case "required":
		return "non-empty value"
	case "gt":
		return "greater than " + fe.Param()
	default:
		return fe.Tag()
	}
}
