package apiclient

import (
	"errors"
	"fmt"
)

// ErrTransport indicates the request never produced an HTTP response.
var ErrTransport = errors.New("transport failure")

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}
