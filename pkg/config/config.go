// Package config loads dotbind's configuration: embedded defaults,
// overridden by an optional .dotbind.toml at the repository root,
// overridden by DOTBIND_* environment variables.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	koanftoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	dberrors "github.com/arthur-debert/dotbind/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config file names searched at the repository root, in order.
var repoConfigNames = []string{".dotbind.toml", "dotbind.toml"}

// Config is the effective dotbind configuration.
type Config struct {
	IgnoreFile    string      `koanf:"ignore_file" toml:"ignore_file"`
	CompanionFile string      `koanf:"companion_file" toml:"companion_file"`
	Git           GitConfig   `koanf:"git" toml:"git"`
	Mount         MountConfig `koanf:"mount" toml:"mount"`
}

// GitConfig configures the version-control collaborator.
type GitConfig struct {
	Binary string `koanf:"binary" toml:"binary"`
}

// MountConfig configures the bind-mount collaborator.
type MountConfig struct {
	Target string `koanf:"target" toml:"target"`
	Bindfs bool   `koanf:"bindfs" toml:"bindfs"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the effective configuration for a repository. repoRoot may
// be empty when no repository context exists yet (e.g. genconfig).
func Load(repoRoot string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, koanftoml.Parser()); err != nil {
		return nil, dberrors.Wrap(err, dberrors.ErrConfigParse, "failed to load built-in defaults")
	}

	// 2. Repository config if it exists
	if repoRoot != "" {
		for _, name := range repoConfigNames {
			path := filepath.Join(repoRoot, name)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), koanftoml.Parser()); err != nil {
					return nil, dberrors.Wrapf(err, dberrors.ErrConfigLoad, "failed to load config from %s", path)
				}
				break
			}
		}
	}

	// 3. Environment overrides: DOTBIND_GIT_BINARY -> git.binary
	if err := k.Load(env.Provider("DOTBIND_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DOTBIND_")), "_", ".")
	}), nil); err != nil {
		return nil, dberrors.Wrap(err, dberrors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, dberrors.Wrap(err, dberrors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

// Default returns the built-in configuration with no overrides applied.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// The embedded defaults are validated by tests; a parse failure
		// here is a build defect.
		panic(err)
	}
	return cfg
}

// MountTarget returns the configured mount target, falling back to the
// user's home directory.
func (c *Config) MountTarget() (string, error) {
	if c.Mount.Target != "" {
		return c.Mount.Target, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", dberrors.Wrap(err, dberrors.ErrFileAccess, "cannot determine home directory")
	}
	return home, nil
}

// Generate renders the effective configuration for a repository as TOML,
// suitable as a starting point for a .dotbind.toml.
func Generate(repoRoot string) (string, error) {
	cfg, err := Load(repoRoot)
	if err != nil {
		return "", err
	}
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", dberrors.Wrap(err, dberrors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
