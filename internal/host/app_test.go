package host

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/MKhiriev/extconfig/internal/adapter"
	"github.com/MKhiriev/extconfig/internal/config"
	"github.com/MKhiriev/extconfig/internal/logger"
	"github.com/MKhiriev/extconfig/internal/service"
	"github.com/MKhiriev/extconfig/internal/store"
	"github.com/MKhiriev/extconfig/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()

	return &config.StructuredConfig{
		App: config.App{
			DeploymentID: "prod",
			ResourceDir:  "resources",
			Version:      "test",
		},
		Adapter: config.Adapter{RequestTimeout: 5 * time.Second},
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func decode(t *testing.T, data []byte) map[string]string {
	t.Helper()

	values, err := store.DecodeProperties(bytes.NewReader(data))
	require.NoError(t, err)
	return values
}

func TestApp_Run_MergesAllPassesToStdout(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("db.pool=20\n%prod.feature.x=on\n"))
	}))
	defer remote.Close()

	dir := t.TempDir()
	absolute := writeFile(t, dir, "override.properties", "db.host=db.internal\n")
	base := writeFile(t, dir, "base.properties",
		"db.host=base\n"+
			"externalConfig.fileNameAbsolute="+absolute+"\n"+
			"externalConfig.URL="+remote.URL+"/cfg, ftp://ignored\n")

	cfg := testConfig(t)
	cfg.App.PropertiesPath = base

	sources := service.MergerSources{
		Resources: adapter.NewResourceOpener(fstest.MapFS{
			"prod.properties": {Data: []byte("db.host=localhost\n%prod.db.port=5432\n%dev.db.port=5433\n")},
		}),
		Files: adapter.NewFileOpener(),
		URLs:  adapter.NewURLOpener(utils.NewHTTPClient(cfg.Adapter.RequestTimeout)),
	}

	a, err := newApp(context.Background(), cfg, sources, logger.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	a.stdout = &out

	require.NoError(t, a.Run(context.Background()))

	got := decode(t, out.Bytes())
	assert.Equal(t, "db.internal", got["db.host"])
	assert.Equal(t, "5432", got["db.port"])
	assert.Equal(t, "20", got["db.pool"])
	assert.Equal(t, "on", got["feature.x"])
	assert.NotContains(t, got, "%prod.db.port")
	assert.NotContains(t, got, "%dev.db.port")

	report, ok := a.services.ConfigurationService.LastReport(context.Background())
	require.True(t, ok)
	assert.Equal(t, 3, report.LoadedCount())
	assert.Len(t, report.Problems(), 1)
}

func TestApp_Run_SavesToOutputPath(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	cfg.App.OutputPath = filepath.Join(dir, "merged.properties")

	sources := service.MergerSources{
		Resources: adapter.NewResourceOpener(fstest.MapFS{
			"prod.properties": {Data: []byte("a=1\n")},
		}),
		Files: adapter.NewFileOpener(),
		URLs:  adapter.NewURLOpener(utils.NewHTTPClient(time.Second)),
	}

	a, err := newApp(context.Background(), cfg, sources, logger.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	a.stdout = &out

	require.NoError(t, a.Run(context.Background()))

	assert.Empty(t, out.String())

	data, err := os.ReadFile(cfg.App.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1"}, decode(t, data))
}

func TestApp_Run_NoSourcesLeavesBaseUntouched(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	cfg.App.PropertiesPath = writeFile(t, dir, "base.properties", "externalConfig.fileName=\nkeep=me\n")

	a, err := NewApp(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	a.stdout = &out

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, map[string]string{"externalConfig.fileName": "", "keep": "me"}, decode(t, out.Bytes()))
}

func TestNewApp_MissingBaseProperties(t *testing.T) {
	cfg := testConfig(t)
	cfg.App.PropertiesPath = filepath.Join(t.TempDir(), "missing.properties")

	a, err := NewApp(context.Background(), cfg, logger.Nop())

	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, a)
}

func TestNewApp_VersionRequired(t *testing.T) {
	cfg := testConfig(t)
	cfg.App.Version = ""

	_, err := NewApp(context.Background(), cfg, logger.Nop())

	require.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}

// unsetHostEnv clears the environment the host settings are read from and
// restores it after the test.
func unsetHostEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{
		"APP_ID", "APP_PROPERTIES", "APP_RESOURCE_DIR", "APP_OUTPUT", "APP_VERSION",
		"ADAPTER_REQUEST_TIMEOUT", "SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "CONFIG",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestNewApp_FromStructuredConfig(t *testing.T) {
	unsetHostEnv(t)

	resources := t.TempDir()
	writeFile(t, resources, "prod.properties", "db.host=localhost\n%prod.db.port=5432\n%dev.db.port=5433\n")

	dir := t.TempDir()
	base := writeFile(t, dir, "base.properties", "db.host=base\napp.name=extconfig\n")
	output := filepath.Join(dir, "merged.properties")

	cfg, err := config.GetStructuredConfig([]string{
		"-id", "prod",
		"-p", base,
		"-r", resources,
		"-o", output,
		"-version-tag", "1.2.3",
	})
	require.NoError(t, err)

	a, err := NewApp(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"app.name": "extconfig",
		"db.host":  "localhost",
		"db.port":  "5432",
	}, decode(t, data))
	assert.Equal(t, "1.2.3", a.services.AppInfoService.GetAppVersion(context.Background()))
}
