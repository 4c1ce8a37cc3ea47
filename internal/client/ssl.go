package client

import (
	"context"
	"fmt"

	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// SSLClient implements apisix.SSLClient. Certificate updates are full
// replaces (PUT); the gateway offers no PATCH for SSL objects.
type SSLClient struct {
	httpClient *http_internal.Client
}

// NewSSLClient creates a new SSL client.
func NewSSLClient(httpClient *http_internal.Client) *SSLClient {
	return &SSLClient{httpClient: httpClient}
}

// List implements apisix.SSLClient.List.
func (c *SSLClient) List(ctx context.Context) (*apisix.ListResponse, error) {
	path, err := apisix.BuildPath(apisix.KindSSL)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing ssl objects: %w", err)
	}

	return decodeList(resp.Body)
}

// Get implements apisix.SSLClient.Get.
func (c *SSLClient) Get(ctx context.Context, id string) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindSSL, id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting ssl object %q: %w", id, err)
	}

	return decodeResource(resp.Body)
}

// Create implements apisix.SSLClient.Create.
func (c *SSLClient) Create(ctx context.Context, config apisix.Object) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindSSL)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, config)
	if err != nil {
		return nil, fmt.Errorf("creating ssl object: %w", err)
	}

	return decodeResource(resp.Body)
}

// Update implements apisix.SSLClient.Update.
func (c *SSLClient) Update(ctx context.Context, id string, config apisix.Object) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindSSL, id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, config)
	if err != nil {
		return nil, fmt.Errorf("updating ssl object %q: %w", id, err)
	}

	return decodeResource(resp.Body)
}

// Delete implements apisix.SSLClient.Delete.
func (c *SSLClient) Delete(ctx context.Context, id string) (*apisix.DeleteResponse, error) {
	path, err := apisix.BuildPath(apisix.KindSSL, id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting ssl object %q: %w", id, err)
	}

	return decodeDelete(resp.Body)
}
