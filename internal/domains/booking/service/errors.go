package service

import (
	"net/http"

	"horizon/shared/failure"
)

// Admission and transition failure modes. Sentinels so handlers and tests can
// match them with errors.Is while failure.GetCode still maps the HTTP code.
var (
	ErrInvalidDate          = &failure.Failure{Code: http.StatusBadRequest, Message: "check-in and check-out must be valid YYYY-MM-DD dates"}
	ErrInvalidDateRange     = &failure.Failure{Code: http.StatusBadRequest, Message: "check-out date must be after check-in date"}
	ErrPastCheckIn          = &failure.Failure{Code: http.StatusBadRequest, Message: "check-in date cannot be in the past"}
	ErrUnknownRoomType      = &failure.Failure{Code: http.StatusBadRequest, Message: "unknown room type"}
	ErrCapacityExceeded     = &failure.Failure{Code: http.StatusBadRequest, Message: "guest count exceeds the room capacity"}
	ErrInvalidStatus        = &failure.Failure{Code: http.StatusBadRequest, Message: "invalid booking status"}
	ErrRoomUnavailable      = &failure.Failure{Code: http.StatusConflict, Message: "room is not available for booking"}
	ErrRoomTypeUnavailable  = &failure.Failure{Code: http.StatusConflict, Message: "no room of the requested type is available"}
	ErrDateRangeConflict    = &failure.Failure{Code: http.StatusConflict, Message: "room is already booked for the requested dates"}
	ErrTransitionNotAllowed = &failure.Failure{Code: http.StatusConflict, Message: "status transition is not allowed"}
	ErrBookingNotFound      = &failure.Failure{Code: http.StatusNotFound, Message: "booking not found"}
)
