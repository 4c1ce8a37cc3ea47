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

func TestSSLClient_CollectionIsNotPluralized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ssl", r.URL.Path)

		_, _ = w.Write([]byte(`{"total": 0, "list": []}`))
	}))
	defer server.Close()

	ssl := NewSSLClient(internalhttp.NewClient(server.URL, nil))

	list, err := ssl.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestSSLClient_UpdateIsFullReplace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ssl/s1", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		_, _ = w.Write([]byte(`{"key": "/apisix/ssl/s1", "value": {"snis": ["example.com"]}}`))
	}))
	defer server.Close()

	ssl := NewSSLClient(internalhttp.NewClient(server.URL, nil))

	cert, err := ssl.Update(context.Background(), "s1",
		apisix.Object{"cert": "PEM", "key": "PEM", "snis": []string{"example.com"}})
	require.NoError(t, err)
	assert.Equal(t, "/apisix/ssl/s1", cert.Key)
}
