package store

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPropertiesFileStorage(t *testing.T) {
	s := NewPropertiesFileStorage()
	require.NotNil(t, s)
}

func TestLoadFromFile(t *testing.T) {
	s := NewPropertiesFileStorage()
	ctx := context.Background()

	t.Run("existing file", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "app.properties")
		require.NoError(t, os.WriteFile(p, []byte("db.host=localhost\n"), 0o600))

		got, err := s.LoadFromFile(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"db.host": "localhost"}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		got, err := s.LoadFromFile(ctx, filepath.Join(t.TempDir(), "nope.properties"))
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.LoadFromFile(cctx, "irrelevant")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSaveToFile_ThenLoad(t *testing.T) {
	s := NewPropertiesFileStorage()
	ctx := context.Background()
	p := filepath.Join(t.TempDir(), "out.properties")

	values := map[string]string{"a": "1", "b": "two"}
	require.NoError(t, s.SaveToFile(ctx, p, values))

	got, err := s.LoadFromFile(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestSaveToFile_BadDirectory(t *testing.T) {
	s := NewPropertiesFileStorage()
	err := s.SaveToFile(context.Background(), filepath.Join(t.TempDir(), "missing", "out.properties"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating properties file")
}

func TestWriteTo(t *testing.T) {
	s := NewPropertiesFileStorage()
	var buf bytes.Buffer
	require.NoError(t, s.WriteTo(context.Background(), &buf, map[string]string{"k": "v"}))
	assert.Equal(t, "k = v\n", buf.String())
}
