package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotbind/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, ".gitignore", cfg.IgnoreFile)
	assert.Equal(t, "DOTBIND.md", cfg.CompanionFile)
	assert.Equal(t, "git", cfg.Git.Binary)
	assert.Equal(t, "", cfg.Mount.Target)
	assert.False(t, cfg.Mount.Bindfs)
}

func TestRepoConfigOverride(t *testing.T) {
	dir := t.TempDir()
	content := "ignore_file = \".trackignore\"\n\n[mount]\nbindfs = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dotbind.toml"), []byte(content), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ".trackignore", cfg.IgnoreFile)
	assert.True(t, cfg.Mount.Bindfs)
	// Untouched keys keep their defaults
	assert.Equal(t, "git", cfg.Git.Binary)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DOTBIND_GIT_BINARY", "/usr/local/bin/git")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/git", cfg.Git.Binary)
}

func TestMountTargetFallsBackToHome(t *testing.T) {
	cfg := config.Default()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	target, err := cfg.MountTarget()
	require.NoError(t, err)
	assert.Equal(t, home, target)

	cfg.Mount.Target = "/mnt/elsewhere"
	target, err = cfg.MountTarget()
	require.NoError(t, err)
	assert.Equal(t, "/mnt/elsewhere", target)
}

func TestGenerate(t *testing.T) {
	rendered, err := config.Generate("")
	require.NoError(t, err)

	assert.Contains(t, rendered, "ignore_file")
	assert.Contains(t, rendered, "[git]")
	assert.Contains(t, rendered, "[mount]")
}
