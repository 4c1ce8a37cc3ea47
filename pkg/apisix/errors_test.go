package apisix

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFromResponse_Authentication(t *testing.T) {
	t.Parallel()

	for _, status := range []int{401, 403} {
		err := ErrorFromResponse(status, []byte(`{"message": "failed to check token"}`))
		require.True(t, IsAuthentication(err))

		var authErr *AuthenticationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, status, authErr.StatusCode)
		assert.Equal(t, "failed to check token", authErr.Message)
	}
}

func TestErrorFromResponse_NotFound(t *testing.T) {
	t.Parallel()

	err := ErrorFromResponse(404, []byte(`{"message": "Key not found"}`))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestErrorFromResponse_NotFoundIgnoresBodyShape(t *testing.T) {
	t.Parallel()

	// Status decides the class even when the body is not JSON.
	err := ErrorFromResponse(404, []byte(`<html>404</html>`))
	require.True(t, IsNotFound(err))

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "<html>404</html>", notFound.Message)
}

func TestErrorFromResponse_ValidationMessageAndCode(t *testing.T) {
	t.Parallel()

	err := ErrorFromResponse(400, []byte(`{"error_msg": "invalid configuration", "code": "10001"}`))
	require.True(t, IsValidation(err))

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "invalid configuration", validation.Message)
	assert.Equal(t, "10001", validation.Code)
}

func TestErrorFromResponse_ValidationNumericCode(t *testing.T) {
	t.Parallel()

	err := ErrorFromResponse(409, []byte(`{"error_msg": "duplicate route", "code": 10002}`))

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, 409, validation.StatusCode)
	assert.Equal(t, "10002", validation.Code)
}

func TestErrorFromResponse_Server(t *testing.T) {
	t.Parallel()

	for _, status := range []int{500, 502, 503} {
		err := ErrorFromResponse(status, []byte(`{"error_msg": "etcd unavailable"}`))
		assert.True(t, IsServer(err), "status %d", status)
	}
}

func TestErrorFromResponse_EmptyBody(t *testing.T) {
	t.Parallel()

	err := ErrorFromResponse(500, nil)
	require.True(t, IsServer(err))

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Empty(t, serverErr.Message)
}

func TestErrorFromResponse_UnmappedStatus(t *testing.T) {
	t.Parallel()

	err := ErrorFromResponse(418, []byte(`{"message": "teapot"}`))
	assert.False(t, IsValidation(err))
	assert.False(t, IsServer(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 418, apiErr.StatusCode)
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := fmt.Errorf("listing routes: %w", &TransportError{Err: cause})

	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, cause)
}

func TestErrorTaxonomyIsDisjoint(t *testing.T) {
	t.Parallel()

	err := ErrorFromResponse(400, []byte(`{"error_msg": "bad"}`))

	assert.True(t, IsValidation(err))
	assert.False(t, IsAuthentication(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsServer(err))
	assert.False(t, IsTransport(err))
}
