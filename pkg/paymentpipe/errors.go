package paymentpipe

import (
	"errors"
	"fmt"
)

const (
	ErrCodeInvalidConfig   = "INVALID_CONFIG"
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeInvalidURL      = "INVALID_URL"
	ErrCodeBadResponse     = "BAD_RESPONSE"
	ErrCodeTransport       = "TRANSPORT_ERROR"
)

var (
	ErrInvalidConfig   = errors.New(ErrCodeInvalidConfig)
	ErrInvalidArgument = errors.New(ErrCodeInvalidArgument)
	ErrInvalidURL      = errors.New(ErrCodeInvalidURL)
	ErrBadResponse     = errors.New(ErrCodeBadResponse)
	ErrTransport       = errors.New(ErrCodeTransport)
)

// BadResponseError is returned when the gateway answers with an error marker,
// an empty body or a body that cannot be parsed.
type BadResponseError struct {
	Response        string
	AttemptedURL    string
	AttemptedParams string
}

func (e *BadResponseError) Error() string {
	if e.Response == "" {
		return fmt.Sprintf("bad response from %s: empty body", e.AttemptedURL)
	}

	return fmt.Sprintf("bad response from %s: %s", e.AttemptedURL, e.Response)
}

func (e *BadResponseError) Is(target error) bool {
	return target == ErrBadResponse
}

// TransportError wraps a failure to reach the gateway or to read its answer.
type TransportError struct {
	AttemptedURL string
	StatusCode   int
	Err          error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error calling %s: status %d", e.AttemptedURL, e.StatusCode)
	}

	return fmt.Sprintf("transport error calling %s: %v", e.AttemptedURL, e.Err)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
