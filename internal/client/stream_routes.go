package client

import (
	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// StreamRoutesClient implements apisix.StreamRoutesClient. The gateway does
// not support PATCH on stream routes, so the partial-update methods of
// resourceOps are deliberately not part of the exported interface.
type StreamRoutesClient struct {
	resourceOps
}

// NewStreamRoutesClient creates a new stream routes client.
func NewStreamRoutesClient(httpClient *http_internal.Client) *StreamRoutesClient {
	return &StreamRoutesClient{resourceOps{httpClient: httpClient, kind: apisix.KindStreamRoute}}
}
