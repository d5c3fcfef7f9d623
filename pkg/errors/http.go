package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and an end-user-safe message.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common errors.
var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.")
)
