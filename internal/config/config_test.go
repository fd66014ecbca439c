package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no stray .env or
// config.yaml is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, ":5000", cfg.Server.Addr())
	assert.Equal(t, "data/mockData.json", cfg.Store.Path)
	assert.Equal(t, 500*time.Millisecond, cfg.Chaos.ReadDelay)
	assert.Equal(t, 800*time.Millisecond, cfg.Chaos.StatusDelay)
	assert.Equal(t, time.Second, cfg.Chaos.BulkDelay)
	assert.Equal(t, 0.1, cfg.Chaos.ListFailureRate)
	assert.Equal(t, logger.LevelInfo, cfg.Log.Level)
	assert.Equal(t, "http://localhost:5000/api", cfg.Client.BaseURL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "vendordesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 6000
chaos:
  list_failure_rate: 0
  bulk_delay: 250ms
log:
  level: debug
`), 0o644))
	t.Setenv("VENDORDESK_SERVER_PORT", "7000")
	t.Setenv("VENDORDESK_STORE_PATH", "/tmp/vendors.json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "/tmp/vendors.json", cfg.Store.Path)
	assert.Equal(t, 0.0, cfg.Chaos.ListFailureRate)
	assert.Equal(t, 250*time.Millisecond, cfg.Chaos.BulkDelay)
	assert.Equal(t, logger.LevelDebug, cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("VENDORDESK_STORE_SEED=12\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("VENDORDESK_STORE_SEED") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Store.SeedCount)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	inTempDir(t)
	_, err := Load("nope.yaml")
	assert.Error(t, err)
}

func TestLoad_RejectsFailureRateOutOfRange(t *testing.T) {
	inTempDir(t)
	t.Setenv("VENDORDESK_CHAOS_LIST_FAILURE_RATE", "1.5")

	_, err := Load("")
	assert.ErrorContains(t, err, "list_failure_rate")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
