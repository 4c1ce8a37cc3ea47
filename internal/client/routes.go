package client

import (
	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// RoutesClient implements apisix.RoutesClient.
type RoutesClient struct {
	resourceOps
}

// NewRoutesClient creates a new routes client.
func NewRoutesClient(httpClient *http_internal.Client) *RoutesClient {
	return &RoutesClient{resourceOps{httpClient: httpClient, kind: apisix.KindRoute}}
}
