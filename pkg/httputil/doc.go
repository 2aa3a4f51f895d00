// Package httputil provides HTTP utilities for webhook delivery clients.
//
// # Overview
//
// This package provides infrastructure shared by all delivery targets:
//
//   - [Retry]: Automatic retry with exponential backoff
//   - [RetryableStatus]: Classification of transient HTTP status codes
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Only errors wrapped in [RetryableError] are retried, so callers decide
// what counts as transient:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Post(url, body)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    if httputil.RetryableStatus(resp.StatusCode) {
//	        return &httputil.RetryableError{Err: fmt.Errorf("status %d", resp.StatusCode)}
//	    }
//	    return nil
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Max retries: 3
//   - Base backoff: 1 second, doubling each attempt
package httputil
