package http

import (
	"todo-api/pkg/log"
)

// HTTPLogger receives request lifecycle events from the client.
type HTTPLogger interface {
	// LogRequest is called before the request is sent.
	LogRequest(method, path string, headers map[string]string)

	// LogResponseSuccess is called after a response with a non-error HTTP status.
	LogResponseSuccess(method, path string, httpStatus int, latencyMillis int64)

	// LogResponseError is called after a transport failure or an error HTTP status.
	LogResponseError(method, path string, httpStatus int, latencyMillis int64, err error)

	// LogRequestRetry is called when a retry attempt is about to be made.
	LogRequestRetry(method, path string, httpStatus int, err error, retryCount, maxRetries int)
}

// ZapHTTPLogger logs client traffic through the application logger.
type ZapHTTPLogger struct{}

func (ZapHTTPLogger) LogRequest(method, path string, headers map[string]string) {
	log.Debugw("http request", "method", method, "path", path)
}

func (ZapHTTPLogger) LogResponseSuccess(method, path string, httpStatus int, latencyMillis int64) {
	log.Debugw("http response", "method", method, "path", path, "status", httpStatus, "latency_ms", latencyMillis)
}

func (ZapHTTPLogger) LogResponseError(method, path string, httpStatus int, latencyMillis int64, err error) {
	log.Errorw("http response error", "method", method, "path", path, "status", httpStatus, "latency_ms", latencyMillis, "error", err)
}

func (ZapHTTPLogger) LogRequestRetry(method, path string, httpStatus int, err error, retryCount, maxRetries int) {
	log.Warnw("http retry", "method", method, "path", path, "status", httpStatus, "error", err, "retry", retryCount, "max_retries", maxRetries)
}

func (hc *Client) logRequest(method, path string, headers map[string]string) {
	if hc.logger != nil {
		hc.logger.LogRequest(method, path, headers)
	}
}

func (hc *Client) logResponseSuccess(method, path string, status int, latency int64) {
	if hc.logger != nil {
		hc.logger.LogResponseSuccess(method, path, status, latency)
	}
}

func (hc *Client) logResponseError(method, path string, status int, latency int64, err error) {
	if hc.logger != nil {
		hc.logger.LogResponseError(method, path, status, latency, err)
	}
}

func (hc *Client) logRetry(method, path string, status int, err error, retryCount, maxRetries int) {
	if hc.logger != nil {
		hc.logger.LogRequestRetry(method, path, status, err, retryCount, maxRetries)
	}
}
