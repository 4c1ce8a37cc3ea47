package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_SubClientsShareDispatcher(t *testing.T) {
	admin := NewAdmin(internalhttp.NewClient("http://127.0.0.1:9180/apisix/admin", nil))

	assert.NotNil(t, admin.Routes())
	assert.NotNil(t, admin.Services())
	assert.NotNil(t, admin.Upstreams())
	assert.NotNil(t, admin.Consumers())
	assert.NotNil(t, admin.SSL())
	assert.NotNil(t, admin.GlobalRules())
	assert.NotNil(t, admin.ConsumerGroups())
	assert.NotNil(t, admin.PluginConfigs())
	assert.NotNil(t, admin.PluginMetadata())
	assert.NotNil(t, admin.Plugins())
	assert.NotNil(t, admin.StreamRoutes())
	assert.NotNil(t, admin.Secrets())
	assert.NotNil(t, admin.Protos())

	// Accessors return the same instance on every call.
	assert.Same(t, admin.Routes(), admin.Routes())
}

func TestAdmin_ValidateResourceSchema(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schema/validate/routes", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_, _ = w.Write([]byte(`{"valid": true}`))
	}))
	defer server.Close()

	admin := NewAdmin(internalhttp.NewClient(server.URL, nil))

	result, err := admin.ValidateResourceSchema(context.Background(), "routes",
		apisix.Object{"uri": "/hello", "upstream_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, true, result["valid"])
}

func TestAdmin_ValidateResourceSchemaInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_msg": "property \"uri\" validation failed"}`))
	}))
	defer server.Close()

	admin := NewAdmin(internalhttp.NewClient(server.URL, nil))

	_, err := admin.ValidateResourceSchema(context.Background(), "routes", apisix.Object{})
	require.Error(t, err)
	assert.True(t, apisix.IsValidation(err))
}
