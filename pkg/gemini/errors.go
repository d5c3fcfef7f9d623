package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ErrorKind classifies a failed generation call.
type ErrorKind string

const (
	KindAuth             ErrorKind = "auth"
	KindQuota            ErrorKind = "quota"
	KindTimeout          ErrorKind = "timeout"
	KindNetwork          ErrorKind = "network"
	KindModel            ErrorKind = "model"
	KindMalformedRequest ErrorKind = "malformed_request"
)

// Error is returned by every failed call. Match it with errors.Is against the Err* sentinels.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gemini: %s (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("gemini: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrAuth             = &Error{Kind: KindAuth}
	ErrQuota            = &Error{Kind: KindQuota}
	ErrTimeout          = &Error{Kind: KindTimeout}
	ErrNetwork          = &Error{Kind: KindNetwork}
	ErrModel            = &Error{Kind: KindModel}
	ErrMalformedRequest = &Error{Kind: KindMalformedRequest}

	// ErrMissingAPIKey is returned before any network call when no key is configured.
	ErrMissingAPIKey = errors.New("gemini: api key is not configured")
)

// KindOf returns the kind of err, or "" when err is not a gateway error.
func KindOf(err error) ErrorKind {
	var gErr *Error
	if errors.As(err, &gErr) {
		return gErr.Kind
	}
	return ""
}

func newError(kind ErrorKind, status int, err error) *Error {
	return &Error{Kind: kind, StatusCode: status, Err: err}
}

// classifyTransportError maps an http.Client.Do failure.
func classifyTransportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(KindTimeout, 0, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(KindTimeout, 0, err)
	}
	return newError(KindNetwork, 0, err)
}

// classifyStatus maps a non-200 API response.
func classifyStatus(status int, body []byte) ErrorKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	case http.StatusTooManyRequests:
		return KindQuota
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return KindTimeout
	case http.StatusBadRequest:
		raw := string(body)
		if strings.Contains(raw, "API_KEY_INVALID") || strings.Contains(raw, "API key not valid") {
			return KindAuth
		}
		return KindMalformedRequest
	default:
		return KindModel
	}
}
