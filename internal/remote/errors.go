package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidResponse means the server answered but the body could not be
	// decoded into the expected shape.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrConnectionFailed means the request never reached the server.
	ErrConnectionFailed = errors.New("connection failed")
	// ErrServerError means the server answered 500.
	ErrServerError = errors.New("server error")
	// ErrTimeout means the request or response exceeded the configured
	// deadline.
	ErrTimeout = errors.New("request timed out")
	// ErrUnknown covers transport failures with no more specific class.
	ErrUnknown = errors.New("unknown transport error")
)

// StatusError is returned for any non-2xx response that has no dedicated
// sentinel (everything except 500).
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}

// IsRetryable classifies errors for the sync engine's retry policy:
// connection failures, timeouts, generic server errors and any HTTP status
// of 500 or above are worth retrying. Everything else (notably 4xx) fails
// immediately.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrConnectionFailed) || errors.Is(err, ErrServerError) || errors.Is(err, ErrTimeout) {
		return true
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= 500
	}

	return false
}
