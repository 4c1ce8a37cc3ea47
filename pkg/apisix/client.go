package apisix

import (
	"context"
	"net/url"
	"strconv"
)

// CallOption adjusts the query string of a single call. Options are the only
// per-call knobs; everything else is fixed at client construction.
type CallOption func(url.Values)

// WithTTL asks the gateway to expire the written resource after the given
// number of seconds.
func WithTTL(seconds int) CallOption {
	return func(values url.Values) {
		values.Set("ttl", strconv.Itoa(seconds))
	}
}

// QueryFromOptions folds call options into a query string. A nil result
// means no options were supplied.
func QueryFromOptions(opts []CallOption) url.Values {
	if len(opts) == 0 {
		return nil
	}

	values := url.Values{}
	for _, opt := range opts {
		opt(values)
	}

	return values
}

// KeyedResourceOps is the operation set shared by resources whose identifier
// is always caller-supplied (global rules, consumer groups, plugin configs).
// Every method is a fixed (verb, path, payload) triple dispatched through the
// shared transport; none adds behavior beyond argument shaping.
type KeyedResourceOps interface {
	// List fetches all configured objects of this kind.
	List(ctx context.Context) (*ListResponse, error)
	// Get fetches one object by identifier.
	Get(ctx context.Context, id string) (*Resource, error)
	// CreateWithID creates or fully replaces the object with the given
	// identifier (PUT). Issuing the same call twice with an identical
	// payload succeeds both times; the second write replaces the first.
	CreateWithID(ctx context.Context, id string, config Object, opts ...CallOption) (*Resource, error)
	// Update applies a partial merge to the identified object (PATCH);
	// merging is performed by the gateway, never client-side.
	Update(ctx context.Context, id string, config Object, opts ...CallOption) (*Resource, error)
	// UpdateWithPath applies a partial update scoped to a single attribute
	// path, leaving other attributes untouched.
	UpdateWithPath(ctx context.Context, id, subPath string, config Object, opts ...CallOption) (*Resource, error)
	// Delete removes the identified object.
	Delete(ctx context.Context, id string) (*DeleteResponse, error)
}

// ResourceOps extends KeyedResourceOps with server-assigned-id creation.
type ResourceOps interface {
	KeyedResourceOps

	// Create creates an object with a server-assigned identifier (POST).
	Create(ctx context.Context, config Object, opts ...CallOption) (*Resource, error)
}

// RoutesClient manages routes.
type RoutesClient interface {
	ResourceOps
}

// ServicesClient manages services.
type ServicesClient interface {
	ResourceOps
}

// UpstreamsClient manages upstreams.
type UpstreamsClient interface {
	ResourceOps
}

// StreamRoutesClient manages TCP/UDP stream routes. Stream routes have no
// partial-update surface on the gateway.
type StreamRoutesClient interface {
	List(ctx context.Context) (*ListResponse, error)
	Get(ctx context.Context, id string) (*Resource, error)
	Create(ctx context.Context, config Object, opts ...CallOption) (*Resource, error)
	CreateWithID(ctx context.Context, id string, config Object, opts ...CallOption) (*Resource, error)
	Delete(ctx context.Context, id string) (*DeleteResponse, error)
}

// ProtosClient manages protobuf definitions for gRPC transcoding.
type ProtosClient interface {
	List(ctx context.Context) (*ListResponse, error)
	Get(ctx context.Context, id string) (*Resource, error)
	Create(ctx context.Context, config Object, opts ...CallOption) (*Resource, error)
	CreateWithID(ctx context.Context, id string, config Object, opts ...CallOption) (*Resource, error)
	Delete(ctx context.Context, id string) (*DeleteResponse, error)
}

// GlobalRulesClient manages global plugin rules.
type GlobalRulesClient interface {
	KeyedResourceOps
}

// ConsumerGroupsClient manages consumer groups.
type ConsumerGroupsClient interface {
	KeyedResourceOps
}

// PluginConfigsClient manages plugin configs.
type PluginConfigsClient interface {
	KeyedResourceOps
}

// ConsumersClient manages consumers and their credentials. Consumers are
// keyed by username rather than a server-assigned id, and a consumer update
// is a full replace (PUT) on the gateway.
type ConsumersClient interface {
	List(ctx context.Context) (*ListResponse, error)
	Get(ctx context.Context, username string) (*Resource, error)
	Create(ctx context.Context, config Object) (*Resource, error)
	Update(ctx context.Context, username string, config Object) (*Resource, error)
	Delete(ctx context.Context, username string) (*DeleteResponse, error)

	// Credentials are nested under the consumer.
	ListCredentials(ctx context.Context, username string) (*ListResponse, error)
	GetCredential(ctx context.Context, username, credentialID string) (*Resource, error)
	UpsertCredential(ctx context.Context, username, credentialID string, config Object) (*Resource, error)
	DeleteCredential(ctx context.Context, username, credentialID string) (*DeleteResponse, error)
}

// SSLClient manages TLS certificates. An SSL update is a full replace (PUT).
type SSLClient interface {
	List(ctx context.Context) (*ListResponse, error)
	Get(ctx context.Context, id string) (*Resource, error)
	Create(ctx context.Context, config Object) (*Resource, error)
	Update(ctx context.Context, id string, config Object) (*Resource, error)
	Delete(ctx context.Context, id string) (*DeleteResponse, error)
}

// PluginMetadataClient manages per-plugin metadata, keyed by plugin name.
type PluginMetadataClient interface {
	Get(ctx context.Context, pluginName string) (*Resource, error)
	Set(ctx context.Context, pluginName string, metadata Object) (*Resource, error)
	Delete(ctx context.Context, pluginName string) (*DeleteResponse, error)
}

// PluginsClient reads the plugin catalog and triggers reloads.
type PluginsClient interface {
	// List returns the names of all loaded plugins.
	List(ctx context.Context) ([]string, error)
	// Get fetches the schema of one plugin.
	Get(ctx context.Context, name string) (Object, error)
	// GetProperties fetches one plugin's properties, optionally scoped to a
	// subsystem ("http" or "stream"); an empty subsystem means unscoped.
	GetProperties(ctx context.Context, name, subsystem string) (Object, error)
	// Properties fetches the properties of every plugin.
	Properties(ctx context.Context) (Object, error)
	// HTTPProperties fetches the properties of all HTTP plugins.
	HTTPProperties(ctx context.Context) (Object, error)
	// StreamProperties fetches the properties of all stream plugins.
	StreamProperties(ctx context.Context) (Object, error)
	// Reload hot-reloads plugins after code changes.
	Reload(ctx context.Context) error
}

// SecretsClient manages secret-manager configurations. Secrets are scoped by
// manager (e.g. "vault") and then by identifier.
type SecretsClient interface {
	List(ctx context.Context) (*ListResponse, error)
	Get(ctx context.Context, manager, id string) (*Resource, error)
	Create(ctx context.Context, manager string, config Object) (*Resource, error)
	Update(ctx context.Context, manager, id string, config Object) (*Resource, error)
	UpdateWithPath(ctx context.Context, manager, id, subPath string, config Object) (*Resource, error)
	Delete(ctx context.Context, manager, id string) (*DeleteResponse, error)
}

// AdminClient is the facade over the APISIX Admin API. Every method on the
// sub-clients is a fixed (verb, path, payload) mapping into one shared
// dispatcher; payloads pass through verbatim and all validation happens on
// the gateway.
type AdminClient interface {
	Routes() RoutesClient
	Services() ServicesClient
	Upstreams() UpstreamsClient
	Consumers() ConsumersClient
	SSL() SSLClient
	GlobalRules() GlobalRulesClient
	ConsumerGroups() ConsumerGroupsClient
	PluginConfigs() PluginConfigsClient
	PluginMetadata() PluginMetadataClient
	Plugins() PluginsClient
	StreamRoutes() StreamRoutesClient
	Secrets() SecretsClient
	Protos() ProtosClient

	// ValidateResourceSchema checks a configuration against the gateway's
	// schema for the named resource without persisting it.
	ValidateResourceSchema(ctx context.Context, resource string, config Object) (Object, error)
}

// ControlClient is the facade over the APISIX Control API: runtime health,
// diagnostics, and read-only views of the running configuration.
type ControlClient interface {
	// Healthcheck reports the gateway's upstream health probe states.
	Healthcheck(ctx context.Context) ([]HealthCheckStatus, error)
	// Schema returns the gateway's full configuration schema.
	Schema(ctx context.Context) (Object, error)
	// TriggerGC asks the gateway to run a Lua garbage collection cycle.
	TriggerGC(ctx context.Context) error

	// Read-only views of the running configuration.
	ListRoutes(ctx context.Context) ([]Object, error)
	GetRoute(ctx context.Context, id string) (Object, error)
	ListServices(ctx context.Context) ([]Object, error)
	GetService(ctx context.Context, id string) (Object, error)
	ListUpstreams(ctx context.Context) ([]Object, error)
	GetUpstream(ctx context.Context, id string) (Object, error)
	ListPluginMetadata(ctx context.Context) ([]Object, error)
	GetPluginMetadata(ctx context.Context, pluginName string) (Object, error)

	// ReloadPlugins hot-reloads plugins through the control surface.
	ReloadPlugins(ctx context.Context) error

	// GetDiscoveryDump returns a service discovery memory dump.
	GetDiscoveryDump(ctx context.Context, service string) (Object, error)
	// ShowDiscoveryDumpFile returns the file-backed discovery dump.
	ShowDiscoveryDumpFile(ctx context.Context, service string) (Object, error)
}
