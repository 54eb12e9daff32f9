// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultMaxAttempts = 5
	defaultBackoff     = 3 * time.Second
)

// retryableStatus reports whether an HTTP status is worth retrying:
// rate limiting and the common transient gateway errors.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// DoWithRetry executes an HTTP request with a bounded attempt budget.
// Rate-limited (429) and transient gateway (502/503/504) responses are
// retried after a wait of backoff times the attempt number just made:
// backoff, 2x backoff, 3x backoff, and so on.
//
// When maxAttempts or backoff are zero or negative the defaults (5
// attempts, 3 s) are used. Before each retry the response body is drained
// and closed. If the context is cancelled during a backoff wait the
// function returns ctx.Err(). Any other status is returned as-is for the
// caller to inspect; exhausting the budget returns an error naming the
// attempt count and the last status seen.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxAttempts int, backoff time.Duration) (*http.Response, error) {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}

	for attempt := 1; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		// Drain and close the body before sleeping or giving up.
		status := resp.StatusCode
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if attempt >= maxAttempts {
			return nil, fmt.Errorf("no success after %d attempts (last status HTTP %d)", maxAttempts, status)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff * time.Duration(attempt)):
		}
	}
}
