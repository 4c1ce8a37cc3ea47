package apisix

import "strings"

// ResourceKind identifies a category of APISIX configuration object. The set
// is closed: path construction rejects kinds that are not declared here, so a
// new resource type is an addition to this file rather than a silent
// fallthrough at request time.
type ResourceKind string

const (
	// KindRoute matches requests and forwards them to an upstream or service.
	KindRoute ResourceKind = "route"

	// KindService groups plugin and upstream configuration shared by routes.
	KindService ResourceKind = "service"

	// KindUpstream is a set of backend nodes with a load-balancing policy.
	KindUpstream ResourceKind = "upstream"

	// KindConsumer identifies a caller of the gateway, keyed by username.
	KindConsumer ResourceKind = "consumer"

	// KindSSL is a TLS certificate/key pair served by the gateway.
	KindSSL ResourceKind = "ssl"

	// KindPlugin addresses the plugin catalog (schemas, reload).
	KindPlugin ResourceKind = "plugin"

	// KindGlobalRule is a plugin rule applied to every request.
	KindGlobalRule ResourceKind = "global_rule"

	// KindConsumerGroup bundles plugin configuration shared by consumers.
	KindConsumerGroup ResourceKind = "consumer_group"

	// KindPluginConfig bundles plugin configuration shared by routes.
	KindPluginConfig ResourceKind = "plugin_config"

	// KindPluginMetadata holds per-plugin metadata, keyed by plugin name.
	KindPluginMetadata ResourceKind = "plugin_metadata"

	// KindStreamRoute matches TCP/UDP traffic instead of HTTP.
	KindStreamRoute ResourceKind = "stream_route"

	// KindSecret references an external secret manager configuration.
	KindSecret ResourceKind = "secret"

	// KindProto stores a protobuf definition used by gRPC transcoding.
	KindProto ResourceKind = "proto"
)

// collections maps each kind to its Admin API path segment. Most kinds
// pluralize; ssl and plugin_metadata are exposed as-is by the gateway.
var collections = map[ResourceKind]string{
	KindRoute:          "routes",
	KindService:        "services",
	KindUpstream:       "upstreams",
	KindConsumer:       "consumers",
	KindSSL:            "ssl",
	KindPlugin:         "plugins",
	KindGlobalRule:     "global_rules",
	KindConsumerGroup:  "consumer_groups",
	KindPluginConfig:   "plugin_configs",
	KindPluginMetadata: "plugin_metadata",
	KindStreamRoute:    "stream_routes",
	KindSecret:         "secrets",
	KindProto:          "protos",
}

// Valid reports whether k is one of the declared resource kinds.
func (k ResourceKind) Valid() bool {
	_, ok := collections[k]

	return ok
}

// Collection returns the Admin API path segment for k.
func (k ResourceKind) Collection() (string, error) {
	collection, ok := collections[k]
	if !ok {
		return "", &InvalidResourceKindError{Kind: k}
	}

	return collection, nil
}

// BuildPath composes the resource path /{collection}[/{elem}...] with exactly
// one separator between segments. Empty elements are skipped, so an absent
// identifier or sub-path needs no special casing at call sites; stray slashes
// on elements are trimmed. Identifiers are otherwise passed through untouched:
// format validation belongs to the gateway.
//
// BuildPath is a pure function and safe for concurrent use. It fails only
// when kind is outside the declared set, before any network activity.
func BuildPath(kind ResourceKind, elems ...string) (string, error) {
	collection, err := kind.Collection()
	if err != nil {
		return "", err
	}

	segments := make([]string, 0, len(elems)+1)
	segments = append(segments, collection)

	for _, elem := range elems {
		elem = strings.Trim(elem, "/")
		if elem == "" {
			continue
		}

		segments = append(segments, elem)
	}

	return "/" + strings.Join(segments, "/"), nil
}
