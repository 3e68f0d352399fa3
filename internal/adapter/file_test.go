package adapter

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fileOpener ────────────────────────────────────────────────────────────────

func TestFileOpener_Open(t *testing.T) {
	p := filepath.Join(t.TempDir(), "app.properties")
	require.NoError(t, os.WriteFile(p, []byte("k=v\n"), 0o600))

	rc, err := NewFileOpener().Open(context.Background(), p)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "k=v\n", string(data))
}

func TestFileOpener_NotFound(t *testing.T) {
	rc, err := NewFileOpener().Open(context.Background(), filepath.Join(t.TempDir(), "missing.properties"))
	assert.Nil(t, rc)
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestFileOpener_EmptyPath(t *testing.T) {
	rc, err := NewFileOpener().Open(context.Background(), "")
	assert.Nil(t, rc)
	assert.ErrorIs(t, err, ErrMalformedLocation)
}

func TestFileOpener_Directory(t *testing.T) {
	rc, err := NewFileOpener().Open(context.Background(), t.TempDir())
	assert.Nil(t, rc)
	assert.ErrorIs(t, err, ErrMalformedLocation)
}

func TestFileOpener_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	p := filepath.Join(t.TempDir(), "secret.properties")
	require.NoError(t, os.WriteFile(p, []byte("k=v\n"), 0o000))

	rc, err := NewFileOpener().Open(context.Background(), p)
	assert.Nil(t, rc)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSourceNotFound)
	assert.NotErrorIs(t, err, ErrMalformedLocation)
}
