package apisix

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrEndpointRequired = errors.New("endpoint is required")
	ErrSkipTLSOnlyInDev = errors.New("skipTLS is only allowed in development environments")
)

// APIError is the base representation of a non-2xx gateway response. The
// concrete taxonomy types embed it; callers usually match on those via the
// Is* helpers rather than on APIError itself.
type APIError struct {
	// StatusCode is the HTTP status returned by the gateway.
	StatusCode int
	// Message is the server-provided, human-readable message, verbatim.
	Message string
	// Code is the server's machine-readable error code, when present.
	Code string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("gateway error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError means the request could not be sent or no response was
// received: DNS failure, refused connection, or timeout. The client makes no
// inference about server-side effect; the request may or may not have been
// applied.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthenticationError is a 401/403 response: the admin key is missing,
// invalid, or not allowed for the requested operation.
type AuthenticationError struct {
	APIError
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication rejected (status %d): %s", e.StatusCode, e.Message)
}

// NotFoundError is a 404 response: the referenced resource identifier does
// not exist. Kept distinct from ValidationError so callers can treat deleting
// an already-gone resource as idempotent.
type NotFoundError struct {
	APIError
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found (status %d): %s", e.StatusCode, e.Message)
}

// ValidationError is a 400/409 response: the payload failed the gateway's
// schema or conflict checks. Message and Code carry the server's values
// verbatim.
type ValidationError struct {
	APIError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("validation rejected (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("validation rejected (status %d): %s", e.StatusCode, e.Message)
}

// ServerError is a 5xx response: the gateway itself failed. The client does
// not retry; retrying with backoff is the caller's decision.
type ServerError struct {
	APIError
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("gateway failure (status %d): %s", e.StatusCode, e.Message)
}

// InvalidResourceKindError is a local precondition failure from the path
// builder, raised before any network call.
type InvalidResourceKindError struct {
	Kind ResourceKind
}

// Error implements the error interface.
func (e *InvalidResourceKindError) Error() string {
	return fmt.Sprintf("invalid resource kind: %q", string(e.Kind))
}

// ErrorFromResponse classifies a non-2xx gateway response into the error
// taxonomy. Classification happens once, at the dispatcher boundary; the
// status code decides the kind (a 404 is NotFoundError regardless of body
// content) while the body contributes the message and machine code.
func ErrorFromResponse(statusCode int, body []byte) error {
	message, code := parseErrorBody(body)

	apiErr := APIError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}

	switch {
	case statusCode == 401 || statusCode == 403:
		return &AuthenticationError{APIError: apiErr}
	case statusCode == 404:
		return &NotFoundError{APIError: apiErr}
	case statusCode == 400 || statusCode == 409:
		return &ValidationError{APIError: apiErr}
	case statusCode >= 500:
		return &ServerError{APIError: apiErr}
	default:
		return &apiErr
	}
}

// parseErrorBody extracts the human-readable message and machine code from a
// gateway error body. APISIX reports errors as {"error_msg": ...} or
// {"message": ...}, optionally with a "code" field; non-JSON bodies are used
// as the message verbatim.
func parseErrorBody(body []byte) (string, string) {
	if len(body) == 0 {
		return "", ""
	}

	decoder := json.NewDecoder(strings.NewReader(string(body)))
	decoder.UseNumber()

	var fields map[string]interface{}

	err := decoder.Decode(&fields)
	if err != nil {
		return strings.TrimSpace(string(body)), ""
	}

	message := stringField(fields, "error_msg")
	if message == "" {
		message = stringField(fields, "message")
	}

	var code string

	switch v := fields["code"].(type) {
	case string:
		code = v
	case json.Number:
		code = v.String()
	}

	return message, code
}

func stringField(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}

	return ""
}

// IsTransport checks if the error is a transport failure.
func IsTransport(err error) bool {
	var target *TransportError

	return errors.As(err, &target)
}

// IsAuthentication checks if the error is an authentication rejection.
func IsAuthentication(err error) bool {
	var target *AuthenticationError

	return errors.As(err, &target)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	var target *NotFoundError

	return errors.As(err, &target)
}

// IsValidation checks if the error is a validation rejection.
func IsValidation(err error) bool {
	var target *ValidationError

	return errors.As(err, &target)
}

// IsServer checks if the error is a gateway-side failure.
func IsServer(err error) bool {
	var target *ServerError

	return errors.As(err, &target)
}

// IsInvalidResourceKind checks if the error is a path-builder precondition
// failure.
func IsInvalidResourceKind(err error) bool {
	var target *InvalidResourceKindError

	return errors.As(err, &target)
}
