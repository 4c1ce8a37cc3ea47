package client

import (
	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// UpstreamsClient implements apisix.UpstreamsClient.
type UpstreamsClient struct {
	resourceOps
}

// NewUpstreamsClient creates a new upstreams client.
func NewUpstreamsClient(httpClient *http_internal.Client) *UpstreamsClient {
	return &UpstreamsClient{resourceOps{httpClient: httpClient, kind: apisix.KindUpstream}}
}
