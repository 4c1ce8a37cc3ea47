package auth_test

import (
	"context"
	"testing"

	"github.com/s1nju/apisix-client/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticKeyProvider(t *testing.T) {
	t.Parallel()

	provider := auth.NewStaticKeyProvider("edd1c9f034335f136f87ad84b625c8f1")

	key, err := provider.Key(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "edd1c9f034335f136f87ad84b625c8f1", key)
}

func TestStaticKeyProvider_Empty(t *testing.T) {
	t.Parallel()

	provider := auth.NewStaticKeyProvider("")

	_, err := provider.Key(context.Background())
	require.ErrorIs(t, err, auth.ErrKeyNotSet)
}

func TestEnvKeyProvider(t *testing.T) {
	t.Setenv("APISIX_ADMIN_KEY_TEST", "secret-key")

	provider := auth.NewEnvKeyProvider("APISIX_ADMIN_KEY_TEST")

	key, err := provider.Key(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret-key", key)
}

func TestEnvKeyProvider_Unset(t *testing.T) {
	t.Setenv("APISIX_ADMIN_KEY_TEST", "")

	provider := auth.NewEnvKeyProvider("APISIX_ADMIN_KEY_TEST")

	_, err := provider.Key(context.Background())
	require.ErrorIs(t, err, auth.ErrKeyNotSet)
}
