package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileProviderDefaults(t *testing.T) {
	t.Run("empty path yields ontario defaults", func(t *testing.T) {
		p := NewFileProvider("", nil)
		got, err := p.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ontario", got.Jurisdiction)
		assert.Len(t, got.LSCategories, 7)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		p := NewFileProvider(filepath.Join(t.TempDir(), "nope.json"), nil)
		got, err := p.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ontario", got.Jurisdiction)
	})

	t.Run("unparseable file yields defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

		p := NewFileProvider(path, nil)
		got, err := p.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ontario", got.Jurisdiction)
	})
}

func TestFileProviderPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jurisdiction":"uk","terms":["Autumn","Spring","Summer"]}`), 0o644))

	p := NewFileProvider(path, nil)
	got, err := p.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "uk", got.Jurisdiction)
	assert.Equal(t, []string{"Autumn", "Spring", "Summer"}, got.Terms)
	// Omitted sections inherit defaults.
	assert.Len(t, got.LSCategories, 7)
	assert.NotEmpty(t, got.Subjects)
}

func TestFileProviderReadThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jurisdiction":"uk"}`), 0o644))

	p := NewFileProvider(path, nil)
	got, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "uk", got.Jurisdiction)

	// An edit is visible on the very next call; no caching.
	require.NoError(t, os.WriteFile(path, []byte(`{"jurisdiction":"ontario"}`), 0o644))
	got, err = p.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ontario", got.Jurisdiction)
}
