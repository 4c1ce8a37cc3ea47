package apisix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPath_Collection(t *testing.T) {
	t.Parallel()

	path, err := BuildPath(KindConsumer)
	require.NoError(t, err)
	assert.Equal(t, "/consumers", path)
}

func TestBuildPath_WithID(t *testing.T) {
	t.Parallel()

	path, err := BuildPath(KindRoute, "r1")
	require.NoError(t, err)
	assert.Equal(t, "/routes/r1", path)
}

func TestBuildPath_Nested(t *testing.T) {
	t.Parallel()

	path, err := BuildPath(KindConsumer, "jack", "credentials", "cred1")
	require.NoError(t, err)
	assert.Equal(t, "/consumers/jack/credentials/cred1", path)
}

func TestBuildPath_SkipsEmptyElements(t *testing.T) {
	t.Parallel()

	path, err := BuildPath(KindRoute, "r1", "")
	require.NoError(t, err)
	assert.Equal(t, "/routes/r1", path)
}

func TestBuildPath_TrimsStraySlashes(t *testing.T) {
	t.Parallel()

	path, err := BuildPath(KindRoute, "/r1/", "upstream/nodes")
	require.NoError(t, err)
	assert.Equal(t, "/routes/r1/upstream/nodes", path)
}

func TestBuildPath_InvalidKind(t *testing.T) {
	t.Parallel()

	_, err := BuildPath(ResourceKind("nonexistent"), "id")
	require.Error(t, err)
	assert.True(t, IsInvalidResourceKind(err))

	var kindErr *InvalidResourceKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, ResourceKind("nonexistent"), kindErr.Kind)
}

func TestResourceKind_UnpluralizedCollections(t *testing.T) {
	t.Parallel()

	sslCollection, err := KindSSL.Collection()
	require.NoError(t, err)
	assert.Equal(t, "ssl", sslCollection)

	metadataCollection, err := KindPluginMetadata.Collection()
	require.NoError(t, err)
	assert.Equal(t, "plugin_metadata", metadataCollection)
}

func TestResourceKind_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, KindRoute.Valid())
	assert.True(t, KindSecret.Valid())
	assert.False(t, ResourceKind("routes").Valid())
	assert.False(t, ResourceKind("").Valid())
}
