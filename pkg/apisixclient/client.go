// Package apisixclient provides the entry points for creating APISIX Admin
// and Control API clients.
package apisixclient

import (
	"crypto/tls"
	"fmt"
	"os"
	"strings"

	"github.com/s1nju/apisix-client/internal/auth"
	"github.com/s1nju/apisix-client/internal/client"
	"github.com/s1nju/apisix-client/internal/constants"
	http_internal "github.com/s1nju/apisix-client/internal/http"
	"github.com/s1nju/apisix-client/pkg/apisix"
)

// NewAdmin creates an Admin API client from the given config. The endpoint
// should point at the Admin API prefix, e.g.
// "http://127.0.0.1:9180/apisix/admin".
func NewAdmin(config *apisix.Config) (apisix.AdminClient, error) {
	httpClient, err := dispatcherFromConfig(config)
	if err != nil {
		return nil, err
	}

	return client.NewAdmin(httpClient), nil
}

// NewAdminWithKey creates an Admin API client for the common endpoint+key
// case.
func NewAdminWithKey(endpoint, apiKey string) (apisix.AdminClient, error) {
	return NewAdmin(&apisix.Config{Endpoint: endpoint, APIKey: apiKey})
}

// NewControl creates a Control API client from the given config. The
// endpoint should point at the Control API root, e.g.
// "http://127.0.0.1:9090/v1".
func NewControl(config *apisix.Config) (apisix.ControlClient, error) {
	httpClient, err := dispatcherFromConfig(config)
	if err != nil {
		return nil, err
	}

	return client.NewControl(httpClient), nil
}

// NewControlWithKey creates a Control API client for the common endpoint+key
// case.
func NewControlWithKey(endpoint, apiKey string) (apisix.ControlClient, error) {
	return NewControl(&apisix.Config{Endpoint: endpoint, APIKey: apiKey})
}

// dispatcherFromConfig validates the config and builds the shared HTTP
// dispatcher both facades run on.
func dispatcherFromConfig(config *apisix.Config) (*http_internal.Client, error) {
	if config == nil {
		return nil, apisix.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, apisix.ErrEndpointRequired
	}

	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	opts, err := optionsFromConfig(config)
	if err != nil {
		return nil, err
	}

	var keys auth.KeyProvider
	if config.APIKey != "" {
		keys = auth.NewStaticKeyProvider(config.APIKey)
	}

	return http_internal.NewClient(endpoint, keys, opts...), nil
}

func optionsFromConfig(config *apisix.Config) ([]http_internal.Option, error) {
	var opts []http_internal.Option

	if config.Logger != nil {
		opts = append(opts, http_internal.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http_internal.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http_internal.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		opts = append(opts, http_internal.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, http_internal.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	if config.SkipTLSVerify {
		// Only allow insecure TLS in explicit development environments
		if !isDevelopmentEnvironment() {
			return nil, fmt.Errorf("%w (set APISIX_CLIENT_DEV_MODE=true)", apisix.ErrSkipTLSOnlyInDev)
		}

		opts = append(opts, http_internal.WithTLSConfig(&tls.Config{
			InsecureSkipVerify: true, // #nosec G402 -- Protected by development environment check above
		}))
	}

	return opts, nil
}

// isDevelopmentEnvironment checks if we're in a development environment.
func isDevelopmentEnvironment() bool {
	devMode := os.Getenv("APISIX_CLIENT_DEV_MODE")

	return devMode == "true" || devMode == "1"
}
