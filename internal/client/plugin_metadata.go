package client

import (
	"context"
	"fmt"

	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// PluginMetadataClient implements apisix.PluginMetadataClient. Metadata is
// keyed by plugin name and has no list or partial-update surface on the
// Admin API.
type PluginMetadataClient struct {
	httpClient *http_internal.Client
}

// NewPluginMetadataClient creates a new plugin metadata client.
func NewPluginMetadataClient(httpClient *http_internal.Client) *PluginMetadataClient {
	return &PluginMetadataClient{httpClient: httpClient}
}

// Get implements apisix.PluginMetadataClient.Get.
func (c *PluginMetadataClient) Get(ctx context.Context, pluginName string) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindPluginMetadata, pluginName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting metadata of plugin %q: %w", pluginName, err)
	}

	return decodeResource(resp.Body)
}

// Set implements apisix.PluginMetadataClient.Set.
func (c *PluginMetadataClient) Set(ctx context.Context, pluginName string, metadata apisix.Object) (*apisix.Resource, error) {
	path, err := apisix.BuildPath(apisix.KindPluginMetadata, pluginName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, metadata)
	if err != nil {
		return nil, fmt.Errorf("setting metadata of plugin %q: %w", pluginName, err)
	}

	return decodeResource(resp.Body)
}

// Delete implements apisix.PluginMetadataClient.Delete.
func (c *PluginMetadataClient) Delete(ctx context.Context, pluginName string) (*apisix.DeleteResponse, error) {
	path, err := apisix.BuildPath(apisix.KindPluginMetadata, pluginName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting metadata of plugin %q: %w", pluginName, err)
	}

	return decodeDelete(resp.Body)
}
