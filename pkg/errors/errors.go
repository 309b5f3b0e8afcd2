package errors

import "fmt"

// HTTPError is an error carrying an HTTP status code, produced by the
// delivery layer's mapError functions and consumed by pkg/response.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
