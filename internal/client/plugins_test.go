package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/s1nju/apisix-client/internal/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluginsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plugins/list", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_, _ = w.Write([]byte(`["real-ip", "limit-count", "key-auth"]`))
	}))
	defer server.Close()

	plugins := NewPluginsClient(internalhttp.NewClient(server.URL, nil))

	names, err := plugins.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"real-ip", "limit-count", "key-auth"}, names)
}

func TestPluginsClient_ListEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	plugins := NewPluginsClient(internalhttp.NewClient(server.URL, nil))

	names, err := plugins.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestPluginsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plugins/limit-count", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("subsystem"))

		_, _ = w.Write([]byte(`{"type": "object", "properties": {"count": {"type": "integer"}}}`))
	}))
	defer server.Close()

	plugins := NewPluginsClient(internalhttp.NewClient(server.URL, nil))

	schema, err := plugins.Get(context.Background(), "limit-count")
	require.NoError(t, err)
	assert.Equal(t, "object", schema["type"])
}

func TestPluginsClient_GetProperties_Subsystem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plugins/mqtt-proxy", r.URL.Path)
		assert.Equal(t, "stream", r.URL.Query().Get("subsystem"))

		_, _ = w.Write([]byte(`{"type": "object"}`))
	}))
	defer server.Close()

	plugins := NewPluginsClient(internalhttp.NewClient(server.URL, nil))

	_, err := plugins.GetProperties(context.Background(), "mqtt-proxy", "stream")
	require.NoError(t, err)
}

func TestPluginsClient_Properties(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plugins", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("all"))
		assert.Empty(t, r.URL.Query().Get("subsystem"))

		_, _ = w.Write([]byte(`{"limit-count": {"priority": 1002}}`))
	}))
	defer server.Close()

	plugins := NewPluginsClient(internalhttp.NewClient(server.URL, nil))

	props, err := plugins.Properties(context.Background())
	require.NoError(t, err)
	assert.Contains(t, props, "limit-count")
}

func TestPluginsClient_HTTPAndStreamProperties(t *testing.T) {
	var subsystems []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("all"))
		subsystems = append(subsystems, r.URL.Query().Get("subsystem"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	plugins := NewPluginsClient(internalhttp.NewClient(server.URL, nil))
	ctx := context.Background()

	_, err := plugins.HTTPProperties(ctx)
	require.NoError(t, err)

	_, err = plugins.StreamProperties(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"http", "stream"}, subsystems)
}

func TestPluginsClient_Reload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plugins/reload", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_, _ = w.Write([]byte(`done`))
	}))
	defer server.Close()

	plugins := NewPluginsClient(internalhttp.NewClient(server.URL, nil))

	err := plugins.Reload(context.Background())
	require.NoError(t, err)
}
