package client

import (
	"context"
	"encoding/json"
	"fmt"

	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// Control implements the apisix.ControlClient interface. The Control API is
// a diagnostics surface: every endpoint is read-only except the GC and
// plugin reload triggers, and its read paths use singular resource names
// ("/route/{id}") unlike the Admin API.
type Control struct {
	httpClient *http_internal.Client
}

// NewControl creates the Control API facade over an already-configured
// dispatcher.
func NewControl(httpClient *http_internal.Client) *Control {
	return &Control{httpClient: httpClient}
}

// Healthcheck implements apisix.ControlClient.Healthcheck.
func (c *Control) Healthcheck(ctx context.Context) ([]apisix.HealthCheckStatus, error) {
	resp, err := c.httpClient.Get(ctx, "/healthcheck", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching healthcheck: %w", err)
	}

	// An empty body means no upstream has health checking enabled.
	if resp.Body == nil {
		return nil, nil
	}

	var statuses []apisix.HealthCheckStatus
	if err := json.Unmarshal(resp.Body, &statuses); err != nil {
		return nil, fmt.Errorf("parsing healthcheck response: %w", err)
	}

	return statuses, nil
}

// Schema implements apisix.ControlClient.Schema.
func (c *Control) Schema(ctx context.Context) (apisix.Object, error) {
	resp, err := c.httpClient.Get(ctx, "/schema", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching schema: %w", err)
	}

	return decodeObject(resp.Body)
}

// TriggerGC implements apisix.ControlClient.TriggerGC.
func (c *Control) TriggerGC(ctx context.Context) error {
	_, err := c.httpClient.Post(ctx, "/gc", nil)
	if err != nil {
		return fmt.Errorf("triggering gc: %w", err)
	}

	return nil
}

// ListRoutes implements apisix.ControlClient.ListRoutes.
func (c *Control) ListRoutes(ctx context.Context) ([]apisix.Object, error) {
	return c.list(ctx, "/routes")
}

// GetRoute implements apisix.ControlClient.GetRoute.
func (c *Control) GetRoute(ctx context.Context, id string) (apisix.Object, error) {
	return c.get(ctx, "/route/"+id)
}

// ListServices implements apisix.ControlClient.ListServices.
func (c *Control) ListServices(ctx context.Context) ([]apisix.Object, error) {
	return c.list(ctx, "/services")
}

// GetService implements apisix.ControlClient.GetService.
func (c *Control) GetService(ctx context.Context, id string) (apisix.Object, error) {
	return c.get(ctx, "/service/"+id)
}

// ListUpstreams implements apisix.ControlClient.ListUpstreams.
func (c *Control) ListUpstreams(ctx context.Context) ([]apisix.Object, error) {
	return c.list(ctx, "/upstreams")
}

// GetUpstream implements apisix.ControlClient.GetUpstream.
func (c *Control) GetUpstream(ctx context.Context, id string) (apisix.Object, error) {
	return c.get(ctx, "/upstream/"+id)
}

// ListPluginMetadata implements apisix.ControlClient.ListPluginMetadata.
func (c *Control) ListPluginMetadata(ctx context.Context) ([]apisix.Object, error) {
	return c.list(ctx, "/plugin_metadatas")
}

// GetPluginMetadata implements apisix.ControlClient.GetPluginMetadata.
func (c *Control) GetPluginMetadata(ctx context.Context, pluginName string) (apisix.Object, error) {
	return c.get(ctx, "/plugin_metadata/"+pluginName)
}

// ReloadPlugins implements apisix.ControlClient.ReloadPlugins.
func (c *Control) ReloadPlugins(ctx context.Context) error {
	_, err := c.httpClient.Put(ctx, "/plugins/reload", nil)
	if err != nil {
		return fmt.Errorf("reloading plugins: %w", err)
	}

	return nil
}

// GetDiscoveryDump implements apisix.ControlClient.GetDiscoveryDump.
func (c *Control) GetDiscoveryDump(ctx context.Context, service string) (apisix.Object, error) {
	return c.get(ctx, "/discovery/"+service+"/dump")
}

// ShowDiscoveryDumpFile implements apisix.ControlClient.ShowDiscoveryDumpFile.
func (c *Control) ShowDiscoveryDumpFile(ctx context.Context, service string) (apisix.Object, error) {
	return c.get(ctx, "/discovery/"+service+"/show_dump_file")
}

func (c *Control) list(ctx context.Context, path string) ([]apisix.Object, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	if resp.Body == nil {
		return nil, nil
	}

	var objects []apisix.Object
	if err := json.Unmarshal(resp.Body, &objects); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", path, err)
	}

	return objects, nil
}

func (c *Control) get(ctx context.Context, path string) (apisix.Object, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	return decodeObject(resp.Body)
}
