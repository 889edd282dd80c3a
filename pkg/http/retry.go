package http

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryableTransport retries idempotent round trips on transport errors and
// on 502, 503 and 504 responses with exponential backoff.
type RetryableTransport struct {
	Transport  http.RoundTripper
	RetryCount int
	// BaseDelay is the first backoff interval, doubled on every retry.
	BaseDelay time.Duration
}

func (t *RetryableTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading body: %w", err)
		}
		req.Body.Close()
	}

	var (
		resp *http.Response
		err  error
	)
	for retries := 0; ; retries++ {
		if bodyBytes != nil {
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
		resp, err = transport.RoundTrip(req)
		if !isIdempotent(req.Method) || !shouldRetry(err, resp) || retries >= t.RetryCount {
			return resp, err
		}

		// consume any response to reuse the connection.
		drainBody(resp)
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(t.backoff(retries)):
		}
	}
}

func (t *RetryableTransport) backoff(retries int) time.Duration {
	base := t.BaseDelay
	if base <= 0 {
		base = time.Second
	}
	return time.Duration(math.Pow(2, float64(retries))) * base
}

func shouldRetry(err error, resp *http.Response) bool {
	if err != nil {
		return true
	}

	return resp.StatusCode == http.StatusBadGateway ||
		resp.StatusCode == http.StatusServiceUnavailable ||
		resp.StatusCode == http.StatusGatewayTimeout
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

func drainBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		resp.Body.Close()
	}
}
