package client

import (
	"context"
	"fmt"

	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// ConsumersClient implements apisix.ConsumersClient. Consumers are keyed by
// username, their update is a full replace (PUT), and their credentials live
// on a nested collection.
type ConsumersClient struct {
	httpClient *http_internal.Client
}

// NewConsumersClient creates a new consumers client.
func NewConsumersClient(httpClient *http_internal.Client) *ConsumersClient {
	return &ConsumersClient{httpClient: httpClient}
}

// List implements apisix.ConsumersClient.List.
func (c *ConsumersClient) List(ctx context.Context) (*apisix.ListResponse, error) {
	path, err := apisix.BuildPath(apisix.KindConsumer)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing consumers: %w", err)
	}

	return decodeList(resp.Body)
}

// Get implements apisix.ConsumersClient.Get.
func (c *ConsumersClient) Get(ctx context.Context, username string) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindConsumer, username)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting consumer %q: %w", username, err)
	}

	return decodeResource(resp.Body)
}

// Create implements apisix.ConsumersClient.Create. The username travels in
// the payload.
func (c *ConsumersClient) Create(ctx context.Context, config apisix.Object) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindConsumer)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, config)
	if err != nil {
		return nil, fmt.Errorf("creating consumer: %w", err)
	}

	return decodeResource(resp.Body)
}

// Update implements apisix.ConsumersClient.Update. The gateway replaces the
// consumer wholesale; attributes missing from config are dropped.
func (c *ConsumersClient) Update(ctx context.Context, username string, config apisix.Object) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindConsumer, username)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, config)
	if err != nil {
		return nil, fmt.Errorf("updating consumer %q: %w", username, err)
	}

	return decodeResource(resp.Body)
}

// Delete implements apisix.ConsumersClient.Delete.
func (c *ConsumersClient) Delete(ctx context.Context, username string) (*apisix.DeleteResponse, error) {
	path, err := apisix.BuildPath(apisix.KindConsumer, username)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting consumer %q: %w", username, err)
	}

	return decodeDelete(resp.Body)
}

// ListCredentials implements apisix.ConsumersClient.ListCredentials.
func (c *ConsumersClient) ListCredentials(ctx context.Context, username string) (*apisix.ListResponse, error) {
	path, err := apisix.BuildPath(apisix.KindConsumer, username, "credentials")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing credentials of consumer %q: %w", username, err)
	}

	return decodeList(resp.Body)
}

// GetCredential implements apisix.ConsumersClient.GetCredential.
func (c *ConsumersClient) GetCredential(ctx context.Context, username, credentialID string) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindConsumer, username, "credentials", credentialID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting credential %q of consumer %q: %w", credentialID, username, err)
	}

	return decodeResource(resp.Body)
}

// UpsertCredential implements apisix.ConsumersClient.UpsertCredential.
func (c *ConsumersClient) UpsertCredential(ctx context.Context, username, credentialID string, config apisix.Object) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindConsumer, username, "credentials", credentialID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, config)
	if err != nil {
		return nil, fmt.Errorf("upserting credential %q of consumer %q: %w", credentialID, username, err)
	}

	return decodeResource(resp.Body)
}

// DeleteCredential implements apisix.ConsumersClient.DeleteCredential.
func (c *ConsumersClient) DeleteCredential(ctx context.Context, username, credentialID string) (*apisix.DeleteResponse, error) {
	path, err := apisix.BuildPath(apisix.KindConsumer, username, "credentials", credentialID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting credential %q of consumer %q: %w", credentialID, username, err)
	}

	return decodeDelete(resp.Body)
}
