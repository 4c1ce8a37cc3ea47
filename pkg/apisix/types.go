package apisix

import "time"

// Object is a resource payload: an unordered mapping of string keys to
// JSON-compatible values. The client treats it as opaque: it is serialized
// verbatim, never defaulted or mutated, and the gateway owns validation.
type Object map[string]interface{}

// Resource is the Admin API envelope wrapping a single configuration object.
type Resource struct {
	Key           string `json:"key"           yaml:"key"`
	Value         Object `json:"value"         yaml:"value"`
	CreatedIndex  int64  `json:"createdIndex,omitempty"  yaml:"createdIndex,omitempty"`
	ModifiedIndex int64  `json:"modifiedIndex,omitempty" yaml:"modifiedIndex,omitempty"`
}

// ListResponse is the Admin API envelope for collection reads.
type ListResponse struct {
	Total int        `json:"total" yaml:"total"`
	List  []Resource `json:"list"  yaml:"list"`
}

// DeleteResponse is the Admin API envelope acknowledging a deletion.
type DeleteResponse struct {
	Key     string `json:"key"     yaml:"key"`
	Deleted string `json:"deleted" yaml:"deleted"`
}

// HealthCheckStatus is one entry in the Control API healthcheck report,
// covering a single upstream's probe targets.
type HealthCheckStatus struct {
	Name  string            `json:"name"  yaml:"name"`
	Type  string            `json:"type"  yaml:"type"`
	Nodes []HealthCheckNode `json:"nodes" yaml:"nodes"`
}

// HealthCheckNode is the probe state of one backend node.
type HealthCheckNode struct {
	IP     string `json:"ip"     yaml:"ip"`
	Port   int    `json:"port"   yaml:"port"`
	Status string `json:"status" yaml:"status"`
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an AdminClient or
// ControlClient. It is captured once at construction and treated as
// immutable thereafter; a client built from it holds no mutable shared
// state, which is what makes concurrent calls on one client safe.
//
// # Authentication
//
// APIKey is sent on every request in the X-API-KEY header. There is no
// per-call credential override. Leave it empty to send unauthenticated
// requests (useful against gateways with admin-key checking disabled).
//
// # Timeouts and retries
//
// Timeout bounds each call; a call that exceeds it fails with a
// TransportError and the client makes no inference about server-side effect.
// Retries are disabled by default, so each call is at-most-once from the
// client's perspective. Setting RetryMax > 0 opts in to transport-level
// retries of connection failures, 429s, and 5xx responses.
type Config struct {
	// Endpoint is the base URL of the target API, e.g.
	// "http://127.0.0.1:9180/apisix/admin" for the Admin API or
	// "http://127.0.0.1:9090/v1" for the Control API. A missing scheme
	// defaults to https; a trailing slash is trimmed.
	Endpoint string

	// APIKey is the admin key attached to every request.
	APIKey string

	// Timeout is the per-call HTTP timeout. Zero means the default.
	Timeout time.Duration

	// RetryMax is the maximum number of transport-level retries. Zero (the
	// default) disables retrying entirely.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// SkipTLSVerify disables TLS verification. Honored only when the
	// environment variable APISIX_CLIENT_DEV_MODE is set to "true" or "1";
	// intended for local development.
	SkipTLSVerify bool
}
