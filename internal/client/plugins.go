package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// PluginsClient implements apisix.PluginsClient. The plugin catalog is
// read-only apart from the reload trigger.
type PluginsClient struct {
	httpClient *http_internal.Client
}

// NewPluginsClient creates a new plugins client.
func NewPluginsClient(httpClient *http_internal.Client) *PluginsClient {
	return &PluginsClient{httpClient: httpClient}
}

// List implements apisix.PluginsClient.List.
func (c *PluginsClient) List(ctx context.Context) ([]string, error) {
	path, err := apisix.BuildPath(apisix.KindPlugin, "list")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing plugins: %w", err)
	}

	if resp.Body == nil {
		return nil, nil
	}

	var names []string
	if err := json.Unmarshal(resp.Body, &names); err != nil {
		return nil, fmt.Errorf("parsing plugin list response: %w", err)
	}

	return names, nil
}

// Get implements apisix.PluginsClient.Get.
func (c *PluginsClient) Get(ctx context.Context, name string) (apisix.Object, error) {
	return c.GetProperties(ctx, name, "")
}

// GetProperties implements apisix.PluginsClient.GetProperties. An empty
// subsystem fetches the unscoped schema.
func (c *PluginsClient) GetProperties(ctx context.Context, name, subsystem string) (apisix.Object, error) {
	path, err := apisix.BuildPath(apisix.KindPlugin, name)
	if err != nil {
		return nil, err
	}

	var query url.Values
	if subsystem != "" {
		query = url.Values{}
		query.Set("subsystem", subsystem)
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting plugin %q: %w", name, err)
	}

	return decodeObject(resp.Body)
}

// Properties implements apisix.PluginsClient.Properties.
func (c *PluginsClient) Properties(ctx context.Context) (apisix.Object, error) {
	return c.allProperties(ctx, "")
}

// HTTPProperties implements apisix.PluginsClient.HTTPProperties.
func (c *PluginsClient) HTTPProperties(ctx context.Context) (apisix.Object, error) {
	return c.allProperties(ctx, "http")
}

// StreamProperties implements apisix.PluginsClient.StreamProperties.
func (c *PluginsClient) StreamProperties(ctx context.Context) (apisix.Object, error) {
	return c.allProperties(ctx, "stream")
}

func (c *PluginsClient) allProperties(ctx context.Context, subsystem string) (apisix.Object, error) {
	path, err := apisix.BuildPath(apisix.KindPlugin)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("all", "true")

	if subsystem != "" {
		query.Set("subsystem", subsystem)
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting plugin properties: %w", err)
	}

	return decodeObject(resp.Body)
}

// Reload implements apisix.PluginsClient.Reload.
func (c *PluginsClient) Reload(ctx context.Context) error {
	path, err := apisix.BuildPath(apisix.KindPlugin, "reload")
	if err != nil {
		return err
	}

	_, err = c.httpClient.Do(ctx, &http_internal.Request{
		Method: http.MethodPost,
		Path:   path,
	})
	if err != nil {
		return fmt.Errorf("reloading plugins: %w", err)
	}

	return nil
}
