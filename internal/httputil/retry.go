// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the retrying HTTP GET used by remote corpus sources.
package httputil

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay is the first backoff delay; it doubles on every retry.
// Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// MaxRetryAfter caps a server-supplied Retry-After delay.
var MaxRetryAfter = time.Minute

const defaultMaxRetries = 5

// Retryable reports whether a response status is worth retrying.
func Retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

// DoWithRetry executes req and retries on 429 and 503 responses. The wait
// is the Retry-After header when it carries a number of seconds, and
// otherwise RetryBaseDelay doubled per attempt.
//
// When maxRetries is 0 the default (5) is used. The body of each retried
// response is drained and closed. A cancelled context during a wait returns
// ctx.Err(). After the last retry the final response is returned as-is so
// the caller can inspect its status.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if !Retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		wait := backoff(attempt, resp.Header.Get("Retry-After"))
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func backoff(attempt int, retryAfter string) time.Duration {
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
		d := time.Duration(secs) * time.Second
		if d > MaxRetryAfter {
			d = MaxRetryAfter
		}
		return d
	}
	return RetryBaseDelay << attempt
}
