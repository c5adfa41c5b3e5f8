package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmptyVideoID indicates a call that needs a video id was given none
	ErrEmptyVideoID = errors.New("no video id")
)

// ServiceError is a non-2xx response from the remote service
type ServiceError struct {
	Status int
	// Detail is the service-provided message, empty if the body had none
	Detail string
}

func (e *ServiceError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status code %d (%s)", e.Status, http.StatusText(e.Status))
}

// ErrorDetail returns the text shown to the user for a failed call:
// the service detail if there is one, otherwise the transport error.
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Error()
	}
	return err.Error()
}
