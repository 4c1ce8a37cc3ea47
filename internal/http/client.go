// Package http implements the request dispatcher shared by the Admin and
// Control clients: it composes URLs, injects the admin key, sends exactly
// one HTTP request per call, and classifies the response into the error
// taxonomy of pkg/apisix.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/s1nju/apisix-client/internal/auth"
	"github.com/s1nju/apisix-client/internal/constants"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an HTTP request to the gateway.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response from the gateway. Body is nil for an
// empty-body success (e.g. 204).
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client dispatches requests against one base URL with one credential. All
// fields are fixed at construction; every call allocates its own state, so a
// single Client is safe for concurrent use.
type Client struct {
	baseURL      string
	keys         auth.KeyProvider
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
	interceptors *apisix.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug request/response logging.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-call HTTP timeout. A call that exceeds it fails
// with a TransportError.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig opts in to transport-level retries of connection failures,
// 429s, and 5xx responses. Without this option every call is at-most-once.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithTLSConfig sets the TLS configuration of the underlying transport.
func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Transport = &http.Transport{
			TLSClientConfig: tlsConfig,
		}
	}
}

// WithInterceptors installs an interceptor chain executed around every call.
func WithInterceptors(chain *apisix.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new dispatcher for the given base URL. keys may be nil
// to send unauthenticated requests.
func NewClient(baseURL string, keys auth.KeyProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	// At-most-once by default; WithRetryConfig opts back in.
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Surface the final response instead of a synthetic "giving up" error so
	// 5xx statuses classify as ServerError even when retries are exhausted.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		keys:       keys,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do sends one request and classifies the response. On a non-2xx status it
// returns both the raw response and the classified error, mirroring the
// gateway faithfully; transport failures return a TransportError and no
// response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	headers, err := c.buildHeaders(ctx, req, bodyBytes)
	if err != nil {
		return nil, err
	}

	intercepted := &apisix.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: headers,
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, err
		}

		headers = intercepted.Headers
		bodyBytes = intercepted.Body
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = headers

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		transportErr := &apisix.TransportError{Err: err}

		c.runResponseInterceptors(ctx, intercepted, &apisix.Response{Error: transportErr})

		return nil, transportErr
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if len(respBody) == 0 {
		respBody = nil
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		})
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	var classified error
	if httpResp.StatusCode >= 400 {
		classified = apisix.ErrorFromResponse(httpResp.StatusCode, respBody)
	}

	c.runResponseInterceptors(ctx, intercepted, &apisix.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		Error:      classified,
	})

	if classified != nil {
		return response, classified
	}

	return response, nil
}

// buildHeaders assembles the fixed header set: admin key, accept,
// content-type only when a body is present, user agent, then any per-request
// headers.
func (c *Client) buildHeaders(ctx context.Context, req *Request, bodyBytes []byte) (http.Header, error) {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.userAgent)

	if bodyBytes != nil {
		headers.Set("Content-Type", "application/json")
	}

	if c.keys != nil {
		key, err := c.keys.Key(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting admin key: %w", err)
		}

		headers.Set(constants.HeaderAPIKey, key)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *apisix.Request, resp *apisix.Response) {
	if c.interceptors == nil {
		return
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
