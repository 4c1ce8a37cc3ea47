package client

import (
	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// PluginConfigsClient implements apisix.PluginConfigsClient.
type PluginConfigsClient struct {
	resourceOps
}

// NewPluginConfigsClient creates a new plugin configs client.
func NewPluginConfigsClient(httpClient *http_internal.Client) *PluginConfigsClient {
	return &PluginConfigsClient{resourceOps{httpClient: httpClient, kind: apisix.KindPluginConfig}}
}
