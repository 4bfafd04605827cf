package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeArtifact writes an artifact JSON document to a temp file and returns its path.
func writeArtifact(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artifact.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const validArtifact = `{
	"kind": "nmf-projection",
	"rank": 2,
	"features": 5,
	"components": [
		[0.9, 0.1, 0.5, 0.0, 0.3],
		[0.2, 0.8, 0.4, 0.6, 0.1]
	]
}`

func TestLoadValidArtifact(t *testing.T) {
	art, err := Load(writeArtifact(t, validArtifact))
	require.NoError(t, err)

	assert.Equal(t, KindNMFProjection, art.Kind())
	assert.Equal(t, 2, art.Rank())
	assert.Equal(t, 5, art.Features())

	col, ok := art.Component(1)
	require.True(t, ok)
	assert.Equal(t, []float64{0.1, 0.8}, col)
}

func TestComponentOutOfRange(t *testing.T) {
	art, err := Load(writeArtifact(t, validArtifact))
	require.NoError(t, err)

	_, ok := art.Component(5)
	assert.False(t, ok)
	_, ok = art.Component(-1)
	assert.False(t, ok)
}

func TestTransformCapability(t *testing.T) {
	t.Run("projection artifact transforms", func(t *testing.T) {
		art, err := Load(writeArtifact(t, validArtifact))
		require.NoError(t, err)

		tr, ok := art.(Transformer)
		require.True(t, ok)

		// One-hot at index 2 selects column 2
		latent, err := tr.Transform([]float64{0, 0, 1, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 0.4}, latent)
	})

	t.Run("wrong length rejected", func(t *testing.T) {
		art, err := Load(writeArtifact(t, validArtifact))
		require.NoError(t, err)

		tr := art.(Transformer)
		_, err = tr.Transform([]float64{1, 0})
		assert.Error(t, err)
	})

	t.Run("non-projection kind lacks the capability", func(t *testing.T) {
		art, err := Load(writeArtifact(t, `{
			"kind": "item-factors",
			"rank": 1,
			"features": 2,
			"components": [[0.1, 0.2]]
		}`))
		require.NoError(t, err)

		_, ok := art.(Transformer)
		assert.False(t, ok)
	})
}

func TestLoadFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := Load(writeArtifact(t, `{"kind": "nmf-projection", "rank": 0, "features": 5, "components": [[1]]}`))
		require.Error(t, err)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("not JSON at all", func(t *testing.T) {
		_, err := Load(writeArtifact(t, "pickled bytes"))
		assert.Error(t, err)
	})

	t.Run("rank does not match matrix", func(t *testing.T) {
		_, err := Load(writeArtifact(t, `{
			"kind": "nmf-projection",
			"rank": 3,
			"features": 2,
			"components": [[1, 2], [3, 4]]
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rank")
	})

	t.Run("ragged rows rejected", func(t *testing.T) {
		_, err := Load(writeArtifact(t, `{
			"kind": "nmf-projection",
			"rank": 2,
			"features": 3,
			"components": [[1, 2, 3], [4, 5]]
		}`))
		assert.Error(t, err)
	})
}
