package client

import (
	"context"
	"fmt"

	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// Admin implements the apisix.AdminClient interface. All sub-clients share
// one dispatcher, so a single Admin carries one base URL, one credential,
// and one connection pool.
type Admin struct {
	httpClient *http_internal.Client

	// Resource clients
	routes         apisix.RoutesClient
	services       apisix.ServicesClient
	upstreams      apisix.UpstreamsClient
	consumers      apisix.ConsumersClient
	ssl            apisix.SSLClient
	globalRules    apisix.GlobalRulesClient
	consumerGroups apisix.ConsumerGroupsClient
	pluginConfigs  apisix.PluginConfigsClient
	pluginMetadata apisix.PluginMetadataClient
	plugins        apisix.PluginsClient
	streamRoutes   apisix.StreamRoutesClient
	secrets        apisix.SecretsClient
	protos         apisix.ProtosClient
}

// NewAdmin creates the Admin API facade over an already-configured
// dispatcher.
func NewAdmin(httpClient *http_internal.Client) *Admin {
	return &Admin{
		httpClient:     httpClient,
		routes:         NewRoutesClient(httpClient),
		services:       NewServicesClient(httpClient),
		upstreams:      NewUpstreamsClient(httpClient),
		consumers:      NewConsumersClient(httpClient),
		ssl:            NewSSLClient(httpClient),
		globalRules:    NewGlobalRulesClient(httpClient),
		consumerGroups: NewConsumerGroupsClient(httpClient),
		pluginConfigs:  NewPluginConfigsClient(httpClient),
		pluginMetadata: NewPluginMetadataClient(httpClient),
		plugins:        NewPluginsClient(httpClient),
		streamRoutes:   NewStreamRoutesClient(httpClient),
		secrets:        NewSecretsClient(httpClient),
		protos:         NewProtosClient(httpClient),
	}
}

// Routes implements apisix.AdminClient.Routes.
func (a *Admin) Routes() apisix.RoutesClient { return a.routes }

// Services implements apisix.AdminClient.Services.
func (a *Admin) Services() apisix.ServicesClient { return a.services }

// Upstreams implements apisix.AdminClient.Upstreams.
func (a *Admin) Upstreams() apisix.UpstreamsClient { return a.upstreams }

// Consumers implements apisix.AdminClient.Consumers.
func (a *Admin) Consumers() apisix.ConsumersClient { return a.consumers }

// SSL implements apisix.AdminClient.SSL.
func (a *Admin) SSL() apisix.SSLClient { return a.ssl }

// GlobalRules implements apisix.AdminClient.GlobalRules.
func (a *Admin) GlobalRules() apisix.GlobalRulesClient { return a.globalRules }

// ConsumerGroups implements apisix.AdminClient.ConsumerGroups.
func (a *Admin) ConsumerGroups() apisix.ConsumerGroupsClient { return a.consumerGroups }

// PluginConfigs implements apisix.AdminClient.PluginConfigs.
func (a *Admin) PluginConfigs() apisix.PluginConfigsClient { return a.pluginConfigs }

// PluginMetadata implements apisix.AdminClient.PluginMetadata.
func (a *Admin) PluginMetadata() apisix.PluginMetadataClient { return a.pluginMetadata }

// Plugins implements apisix.AdminClient.Plugins.
func (a *Admin) Plugins() apisix.PluginsClient { return a.plugins }

// StreamRoutes implements apisix.AdminClient.StreamRoutes.
func (a *Admin) StreamRoutes() apisix.StreamRoutesClient { return a.streamRoutes }

// Secrets implements apisix.AdminClient.Secrets.
func (a *Admin) Secrets() apisix.SecretsClient { return a.secrets }

// Protos implements apisix.AdminClient.Protos.
func (a *Admin) Protos() apisix.ProtosClient { return a.protos }

// ValidateResourceSchema implements apisix.AdminClient.ValidateResourceSchema.
// The resource name here is the gateway's collection name (e.g. "routes"),
// not a local kind; the gateway answers 400 for unknown names.
func (a *Admin) ValidateResourceSchema(ctx context.Context, resource string, config apisix.Object) (apisix.Object, error) {
	resp, err := a.httpClient.Post(ctx, "/schema/validate/"+resource, config)
	if err != nil {
		return nil, fmt.Errorf("validating %s schema: %w", resource, err)
	}

	return decodeObject(resp.Body)
}
