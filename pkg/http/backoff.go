package http

import (
	"time"
)

// BackoffConfig controls retry behaviour for a request. The zero value (and a
// nil config) performs a single attempt, which is the client-wide default.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	Multiplier      float64
	MaxInterval     time.Duration
}

// doRequestWithBackoff runs doRequest, retrying transport failures and 5xx
// responses according to the backoff config. 4xx responses are never retried.
func (hc *Client) doRequestWithBackoff(method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (int, error) {
	if backoff == nil {
		backoff = hc.defaultBackoff
	}

	maxRetries := 0
	if backoff != nil {
		maxRetries = backoff.MaxRetries
	}

	var status int
	var err error
	interval := time.Duration(0)
	if backoff != nil {
		interval = backoff.InitialInterval
	}

	for attempt := 0; ; attempt++ {
		start := time.Now()
		hc.logRequest(method, path, headers)
		status, err = hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
		latency := time.Since(start).Milliseconds()

		if err == nil {
			hc.logResponseSuccess(method, path, status, latency)
			return status, nil
		}

		if attempt >= maxRetries || !isRetryable(status) {
			hc.logResponseError(method, path, status, latency, err)
			return status, err
		}

		hc.logRetry(method, path, status, err, attempt+1, maxRetries)
		time.Sleep(interval)
		if backoff.Multiplier > 1 {
			interval = time.Duration(float64(interval) * backoff.Multiplier)
			if backoff.MaxInterval > 0 && interval > backoff.MaxInterval {
				interval = backoff.MaxInterval
			}
		}
	}
}

// isRetryable reports whether a failed attempt may be repeated. A zero status
// means the request never reached the server.
func isRetryable(status int) bool {
	return status == 0 || status >= 500
}
