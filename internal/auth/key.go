// Package auth supplies the admin-key credential used to authenticate
// requests against the APISIX Admin and Control APIs.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Static errors for err113 compliance.
var (
	ErrKeyNotSet = errors.New("admin key is not set")
)

// KeyProvider yields the admin key attached to every request.
// Implementations must be safe for concurrent use.
type KeyProvider interface {
	Key(ctx context.Context) (string, error)
}

// staticKeyProvider holds a fixed admin key.
type staticKeyProvider struct {
	key string
}

// NewStaticKeyProvider returns a provider that always yields key.
func NewStaticKeyProvider(key string) KeyProvider {
	return &staticKeyProvider{key: key}
}

func (p *staticKeyProvider) Key(ctx context.Context) (string, error) {
	if p.key == "" {
		return "", ErrKeyNotSet
	}

	return p.key, nil
}

// envKeyProvider reads the admin key from an environment variable on
// every call, so rotated keys are picked up without rebuilding clients.
type envKeyProvider struct {
	name string
}

// NewEnvKeyProvider returns a provider that reads the key from the named
// environment variable.
func NewEnvKeyProvider(name string) KeyProvider {
	return &envKeyProvider{name: name}
}

func (p *envKeyProvider) Key(ctx context.Context) (string, error) {
	key := os.Getenv(p.name)
	if key == "" {
		return "", fmt.Errorf("%w: environment variable %s is empty", ErrKeyNotSet, p.name)
	}

	return key, nil
}
