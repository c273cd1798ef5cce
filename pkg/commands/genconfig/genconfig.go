// Package genconfig renders the effective configuration as TOML so
// users can bootstrap a .dotbind.toml from it.
package genconfig

import (
	"github.com/arthur-debert/dotbind/pkg/config"
	"github.com/arthur-debert/dotbind/pkg/logging"
)

// Options holds options for the genconfig command
type Options struct {
	RepoRoot string
}

// Result carries the rendered configuration.
type Result struct {
	TOML string
}

// GenConfig renders the configuration effective for the repository,
// including repository and environment overrides.
func GenConfig(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.genconfig")

	rendered, err := config.Generate(opts.RepoRoot)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("bytes", len(rendered)).Msg("Rendered configuration")
	return &Result{TOML: rendered}, nil
}
