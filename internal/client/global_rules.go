package client

import (
	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// GlobalRulesClient implements apisix.GlobalRulesClient. Global rules are
// always written under a caller-chosen id, so there is no POST create.
type GlobalRulesClient struct {
	resourceOps
}

// NewGlobalRulesClient creates a new global rules client.
func NewGlobalRulesClient(httpClient *http_internal.Client) *GlobalRulesClient {
	return &GlobalRulesClient{resourceOps{httpClient: httpClient, kind: apisix.KindGlobalRule}}
}
