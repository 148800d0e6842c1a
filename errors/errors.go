package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var (
	ErrConflict       = fmt.Errorf("record already exists")
	ErrNotFound       = fmt.Errorf("record not found")
	ErrForbidden      = fmt.Errorf("requester does not own this record")
	ErrInvalidMessage = fmt.Errorf("invalid message")
	ErrTransport      = fmt.Errorf("transport error")
	ErrInvalidPayload = fmt.Errorf("invalid payload")
	ErrHubStopped     = fmt.Errorf("hub is not running")
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrEmptyWords     = fmt.Errorf("no words have been found")
)

// HTTPStatus maps a store or hub error to the status code returned by the REST surface.
// A duplicate is reported as 400 because existing clients only distinguish success from failure.
func HTTPStatus(err error) int {
	var validationErrors validator.ValidationErrors
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidPayload),
		errors.Is(err, ErrInvalidMessage),
		errors.As(err, &validationErrors):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrHubStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
