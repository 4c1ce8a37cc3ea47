package client

import (
	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// ProtosClient implements apisix.ProtosClient.
type ProtosClient struct {
	resourceOps
}

// NewProtosClient creates a new protos client.
func NewProtosClient(httpClient *http_internal.Client) *ProtosClient {
	return &ProtosClient{resourceOps{httpClient: httpClient, kind: apisix.KindProto}}
}
