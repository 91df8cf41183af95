package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	followRedirect     bool
	defaultHeaders     map[string]string
	defaultContentType string
	defaultBackoff     *BackoffConfig
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// Backoff applies to every request unless overridden per request.
	// Nil means a single attempt with no retries.
	Backoff *BackoffConfig
	Logger  HTTPLogger
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		followRedirect:     opts.FollowRedirect,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		defaultBackoff:     opts.Backoff,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Get sends a GET request to the specified path with optional query parameters and headers.
// It returns the status code and an error if any; a non-2xx status is reported as an error.
func (hc *Client) Get(path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any) (int, error) {
	return hc.doRequestWithBackoff(http.MethodGet, path, queryParams, headers, nil, successResp, errorResp, nil)
}

// Post sends a POST request to the specified path with the given body.
func (hc *Client) Post(path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (int, error) {
	return hc.doRequestWithBackoff(http.MethodPost, path, queryParams, headers, body, successResp, errorResp, nil)
}

// Put sends a PUT request to the specified path with the given body.
func (hc *Client) Put(path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (int, error) {
	return hc.doRequestWithBackoff(http.MethodPut, path, queryParams, headers, body, successResp, errorResp, nil)
}

// Patch sends a PATCH request to the specified path with the given body.
func (hc *Client) Patch(path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (int, error) {
	return hc.doRequestWithBackoff(http.MethodPatch, path, queryParams, headers, body, successResp, errorResp, nil)
}

// Delete sends a DELETE request to the specified path.
func (hc *Client) Delete(path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (int, error) {
	return hc.doRequestWithBackoff(http.MethodDelete, path, queryParams, headers, body, successResp, errorResp, nil)
}

// doRequest performs a single attempt. It builds the URL, prepares the body,
// sets headers, executes the request and decodes the response into successResp
// or errorResp depending on the status class.
func (hc *Client) doRequest(method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (int, error) {
	reqURL := hc.buildURL(path)
	if len(queryParams) > 0 {
		reqURL += "?" + buildQueryString(queryParams)
	}

	bodyReader, contentType, err := hc.encodeBody(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(method, reqURL, bodyReader)
	if err != nil {
		return 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if successResp != nil && len(bodyBytes) > 0 {
			if err := decodeResponse(bodyBytes, respContentType, successResp); err != nil {
				return resp.StatusCode, err
			}
		}
		return resp.StatusCode, nil
	}

	if errorResp != nil && len(bodyBytes) > 0 {
		// Best effort: an undecodable error body still reports the status.
		_ = decodeResponse(bodyBytes, respContentType, errorResp)
	}

	return resp.StatusCode, fmt.Errorf("http error: status %d", resp.StatusCode)
}

// encodeBody prepares the request body reader and its content type.
func (hc *Client) encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch b := body.(type) {
	case string:
		return bytes.NewBufferString(b), "text/plain", nil
	case []byte:
		return bytes.NewBuffer(b), "application/octet-stream", nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return bytes.NewBuffer(jsonBody), hc.defaultContentType, nil
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds a query string from parameters
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
