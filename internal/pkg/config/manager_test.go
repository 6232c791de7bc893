package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T) *ViperManager {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	mgr, err := NewManager(configPath)
	require.NoError(t, err)
	return mgr
}

func TestLoad_Defaults(t *testing.T) {
	mgr := testManager(t)

	cfg, err := mgr.Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, cfg.Provider.Model)
	assert.Equal(t, DefaultEndpoint, cfg.Provider.Endpoint)
	assert.Equal(t, DefaultCredentialEnv, cfg.Provider.APIKeyEnv)
	assert.Equal(t, 0, cfg.Provider.MaxCompletionTokens)
	assert.Equal(t, 0, cfg.Git.MaxDiffBytes)
	assert.True(t, cfg.UI.ColorEnabled)
	assert.True(t, cfg.History.Enabled)
}

func TestInit_CreatesFileWithRestrictedPermissions(t *testing.T) {
	mgr := testManager(t)

	require.NoError(t, mgr.Init())
	assert.True(t, mgr.ConfigExists())

	info, err := os.Stat(mgr.GetConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Second init must refuse to overwrite
	assert.Error(t, mgr.Init())
}

func TestSetAndGet(t *testing.T) {
	mgr := testManager(t)
	require.NoError(t, mgr.Init())

	require.NoError(t, mgr.Set("provider.model", "gpt-4o"))

	value, err := mgr.Get("provider.model")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", value)

	// Values persist across a fresh manager
	mgr2, err := NewManager(mgr.GetConfigPath())
	require.NoError(t, err)
	cfg, err := mgr2.Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Provider.Model)
}

func TestSet_ConvertsTypedValues(t *testing.T) {
	mgr := testManager(t)
	require.NoError(t, mgr.Init())

	require.NoError(t, mgr.Set("git.max_diff_bytes", "65536"))
	cfg, err := mgr.Load()
	require.NoError(t, err)
	assert.Equal(t, 65536, cfg.Git.MaxDiffBytes)

	require.NoError(t, mgr.Set("ui.color_enabled", "false"))
	cfg, err = mgr.Load()
	require.NoError(t, err)
	assert.False(t, cfg.UI.ColorEnabled)

	assert.Error(t, mgr.Set("git.max_diff_bytes", "not-a-number"))
}

func TestGet_UnknownKey(t *testing.T) {
	mgr := testManager(t)

	_, err := mgr.Get("no.such.key")
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("AICOMMIT_PROVIDER_MODEL", "gpt-4o-from-env")

	mgr := testManager(t)
	require.NoError(t, mgr.Init())
	require.NoError(t, mgr.Set("provider.model", "gpt-4o-from-file"))

	// A fresh manager sees the env override
	mgr2, err := NewManager(mgr.GetConfigPath())
	require.NoError(t, err)
	cfg, err := mgr2.Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-from-env", cfg.Provider.Model)
}

func TestList(t *testing.T) {
	mgr := testManager(t)

	settings := mgr.List()
	assert.Contains(t, settings, "provider")
	assert.Contains(t, settings, "git")
}
