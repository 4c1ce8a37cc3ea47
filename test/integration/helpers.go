//go:build integration

// Package integration holds end-to-end tests that run against a live gateway.
// They are skipped unless APISIX_ADMIN_ENDPOINT is set.
package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/s1nju/apisix-client/pkg/apisix"
	"github.com/s1nju/apisix-client/pkg/apisixclient"
)

// TestConfig carries the connection details for a live gateway.
type TestConfig struct {
	AdminEndpoint   string
	ControlEndpoint string
	APIKey          string
}

// LoadTestConfig reads the gateway connection details from the environment.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		AdminEndpoint:   os.Getenv("APISIX_ADMIN_ENDPOINT"),
		ControlEndpoint: os.Getenv("APISIX_CONTROL_ENDPOINT"),
		APIKey:          os.Getenv("APISIX_ADMIN_KEY"),
	}
}

// SkipIfMissingConfig skips the test when no gateway is configured.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.AdminEndpoint == "" {
		t.Skip("APISIX_ADMIN_ENDPOINT not set; skipping integration test")
	}
}

// SkipIfMissingControl skips the test when no Control API is configured.
func (c *TestConfig) SkipIfMissingControl(t *testing.T) {
	t.Helper()

	if c.ControlEndpoint == "" {
		t.Skip("APISIX_CONTROL_ENDPOINT not set; skipping integration test")
	}
}

// NewAdminClient builds an Admin API client for the configured gateway.
func (c *TestConfig) NewAdminClient(t *testing.T) apisix.AdminClient {
	t.Helper()

	admin, err := apisixclient.NewAdminWithKey(c.AdminEndpoint, c.APIKey)
	if err != nil {
		t.Fatalf("creating admin client: %v", err)
	}

	return admin
}

// NewControlClient builds a Control API client for the configured gateway.
func (c *TestConfig) NewControlClient(t *testing.T) apisix.ControlClient {
	t.Helper()

	control, err := apisixclient.NewControlWithKey(c.ControlEndpoint, "")
	if err != nil {
		t.Fatalf("creating control client: %v", err)
	}

	return control
}

// GenerateTestName produces a unique resource id so parallel runs never
// collide.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
