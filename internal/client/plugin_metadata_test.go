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

func TestPluginMetadataClient_Set(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plugin_metadata/http-logger", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		_, _ = w.Write([]byte(`{"key": "/apisix/plugin_metadata/http-logger", "value": {"log_format": {"host": "$host"}}}`))
	}))
	defer server.Close()

	metadata := NewPluginMetadataClient(internalhttp.NewClient(server.URL, nil))

	result, err := metadata.Set(context.Background(), "http-logger",
		apisix.Object{"log_format": apisix.Object{"host": "$host"}})
	require.NoError(t, err)
	assert.Equal(t, "/apisix/plugin_metadata/http-logger", result.Key)
}

func TestPluginMetadataClient_GetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Key not found"}`))
	}))
	defer server.Close()

	metadata := NewPluginMetadataClient(internalhttp.NewClient(server.URL, nil))

	_, err := metadata.Get(context.Background(), "missing-plugin")
	require.Error(t, err)
	assert.True(t, apisix.IsNotFound(err))
}
