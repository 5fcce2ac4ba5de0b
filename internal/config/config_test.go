package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GOBLIN_PRUNE_REMOTE", "GOBLIN_PRUNE_FILTER", "GOBLIN_PRUNE_KEEP_SUFFIX", "GOBLIN_PRUNE_BACKEND"} {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "origin", cfg.Remote)
	assert.Equal(t, "topic/hez", cfg.Filter)
	assert.Equal(t, "-keep", cfg.KeepSuffix)
	assert.Equal(t, "exec", cfg.Backend)
	assert.Equal(t, "git", cfg.GitBinary)
	assert.Equal(t, "goblin-prune.log", filepath.Base(cfg.LogFile))
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `remote: upstream
filter: feature/
keep_suffix: "-pin"
backend: gogit
keys:
  accept: ["y"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "upstream", cfg.Remote)
	assert.Equal(t, "feature/", cfg.Filter)
	assert.Equal(t, "-pin", cfg.KeepSuffix)
	assert.Equal(t, "gogit", cfg.Backend)
	assert.Equal(t, "git", cfg.GitBinary, "unset fields keep defaults")
	assert.Equal(t, []string{"y"}, cfg.Keys[ActionAccept])
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("remote: [unterminated"), 0600))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOBLIN_PRUNE_REMOTE", "fork")
	t.Setenv("GOBLIN_PRUNE_FILTER", "wip/")
	t.Setenv("GOBLIN_PRUNE_KEEP_SUFFIX", "")
	t.Setenv("GOBLIN_PRUNE_BACKEND", "gogit")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "fork", cfg.Remote)
	assert.Equal(t, "wip/", cfg.Filter)
	assert.Equal(t, "", cfg.KeepSuffix)
	assert.Equal(t, "gogit", cfg.Backend)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Filter = "release/"

	require.NoError(t, SaveConfig(cfg, path))
	assert.True(t, ConfigFileExists(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "release/", loaded.Filter)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Remote = " "
	assert.ErrorContains(t, cfg.Validate(), "remote")

	cfg = DefaultConfig()
	cfg.Backend = "libgit2"
	assert.ErrorContains(t, cfg.Validate(), "unknown backend")

	cfg = DefaultConfig()
	cfg.Keys = map[string][]string{"jump": {"g"}, "explode": {"x"}}
	assert.EqualError(t, cfg.Validate(), "unknown key actions: explode, jump")

	cfg = DefaultConfig()
	cfg.Keys = map[string][]string{ActionQuit: {}}
	assert.ErrorContains(t, cfg.Validate(), "keys.quit")
}
