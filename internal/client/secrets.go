package client

import (
	"context"
	"fmt"

	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// SecretsClient implements apisix.SecretsClient. Secret configurations are
// addressed by secret manager ("vault", "aws", "gcp") and then by id.
type SecretsClient struct {
	httpClient *http_internal.Client
}

// NewSecretsClient creates a new secrets client.
func NewSecretsClient(httpClient *http_internal.Client) *SecretsClient {
	return &SecretsClient{httpClient: httpClient}
}

// List implements apisix.SecretsClient.List.
func (c *SecretsClient) List(ctx context.Context) (*apisix.ListResponse, error) {
	path, err := apisix.BuildPath(apisix.KindSecret)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing secrets: %w", err)
	}

	return decodeList(resp.Body)
}

// Get implements apisix.SecretsClient.Get.
func (c *SecretsClient) Get(ctx context.Context, manager, id string) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindSecret, manager, id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting secret %s/%s: %w", manager, id, err)
	}

	return decodeResource(resp.Body)
}

// Create implements apisix.SecretsClient.Create. The gateway keys secret
// configurations by manager, so creation is a PUT on the manager path.
func (c *SecretsClient) Create(ctx context.Context, manager string, config apisix.Object) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindSecret, manager)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, config)
	if err != nil {
		return nil, fmt.Errorf("creating secret under manager %q: %w", manager, err)
	}

	return decodeResource(resp.Body)
}

// Update implements apisix.SecretsClient.Update.
func (c *SecretsClient) Update(ctx context.Context, manager, id string, config apisix.Object) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindSecret, manager, id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, config)
	if err != nil {
		return nil, fmt.Errorf("updating secret %s/%s: %w", manager, id, err)
	}

	return decodeResource(resp.Body)
}

// UpdateWithPath implements apisix.SecretsClient.UpdateWithPath.
func (c *SecretsClient) UpdateWithPath(ctx context.Context, manager, id, subPath string, config apisix.Object) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindSecret, manager, id, subPath)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, config)
	if err != nil {
		return nil, fmt.Errorf("updating secret %s/%s path %q: %w", manager, id, subPath, err)
	}

	return decodeResource(resp.Body)
}

// Delete implements apisix.SecretsClient.Delete.
func (c *SecretsClient) Delete(ctx context.Context, manager, id string) (*apisix.DeleteResponse, error) {
	path, err := apisix.BuildPath(apisix.KindSecret, manager, id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting secret %s/%s: %w", manager, id, err)
	}

	return decodeDelete(resp.Body)
}
