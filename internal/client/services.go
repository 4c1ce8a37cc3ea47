package client

import (
	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// ServicesClient implements apisix.ServicesClient.
type ServicesClient struct {
	resourceOps
}

// NewServicesClient creates a new services client.
func NewServicesClient(httpClient *http_internal.Client) *ServicesClient {
	return &ServicesClient{resourceOps{httpClient: httpClient, kind: apisix.KindService}}
}
