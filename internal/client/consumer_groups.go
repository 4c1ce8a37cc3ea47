package client

import (
	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// ConsumerGroupsClient implements apisix.ConsumerGroupsClient.
type ConsumerGroupsClient struct {
	resourceOps
}

// NewConsumerGroupsClient creates a new consumer groups client.
func NewConsumerGroupsClient(httpClient *http_internal.Client) *ConsumerGroupsClient {
	return &ConsumerGroupsClient{resourceOps{httpClient: httpClient, kind: apisix.KindConsumerGroup}}
}
