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

func TestSecretsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/secrets/vault", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"key": "/apisix/secrets/vault", "value": {"uri": "https://vault:8200"}}`))
	}))
	defer server.Close()

	secrets := NewSecretsClient(internalhttp.NewClient(server.URL, nil))

	secret, err := secrets.Create(context.Background(), "vault",
		apisix.Object{"uri": "https://vault:8200", "prefix": "kv", "token": "root"})
	require.NoError(t, err)
	assert.Equal(t, "/apisix/secrets/vault", secret.Key)
}

func TestSecretsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/secrets/vault/1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_, _ = w.Write([]byte(`{"key": "/apisix/secrets/vault/1", "value": {"uri": "https://vault:8200"}}`))
	}))
	defer server.Close()

	secrets := NewSecretsClient(internalhttp.NewClient(server.URL, nil))

	secret, err := secrets.Get(context.Background(), "vault", "1")
	require.NoError(t, err)
	assert.Equal(t, "https://vault:8200", secret.Value["uri"])
}

func TestSecretsClient_UpdateWithPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/secrets/vault/1/token", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		_, _ = w.Write([]byte(`{"key": "/apisix/secrets/vault/1", "value": {"token": "rotated"}}`))
	}))
	defer server.Close()

	secrets := NewSecretsClient(internalhttp.NewClient(server.URL, nil))

	secret, err := secrets.UpdateWithPath(context.Background(), "vault", "1", "token",
		apisix.Object{"token": "rotated"})
	require.NoError(t, err)
	assert.Equal(t, "rotated", secret.Value["token"])
}

func TestSecretsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/secrets/vault/1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		_, _ = w.Write([]byte(`{"key": "/apisix/secrets/vault/1", "deleted": "1"}`))
	}))
	defer server.Close()

	secrets := NewSecretsClient(internalhttp.NewClient(server.URL, nil))

	deleted, err := secrets.Delete(context.Background(), "vault", "1")
	require.NoError(t, err)
	assert.Equal(t, "1", deleted.Deleted)
}
