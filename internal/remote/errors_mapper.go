package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// wrapTransportError classifies an error returned by resty before any
// response arrived: deadline overruns become ErrTimeout, unreachable hosts
// become ErrConnectionFailed, the rest is ErrUnknown. The original error is
// always kept in the chain.
func wrapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	return fmt.Errorf("%w: %w", ErrUnknown, err)
}

// mapHTTPError converts a non-2xx response into the package error taxonomy.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() == http.StatusInternalServerError {
		return fmt.Errorf("%w: %s", ErrServerError, body)
	}

	return &StatusError{Code: resp.StatusCode(), Body: body}
}
