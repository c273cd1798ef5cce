// Package list reads the ignore file and reports the tracked re-include
// entries grouped by base. Read-only; the ignore file is the single
// source of truth for what is tracked.
package list

import (
	"path/filepath"

	"github.com/arthur-debert/dotbind/pkg/config"
	"github.com/arthur-debert/dotbind/pkg/ignorefile"
	"github.com/arthur-debert/dotbind/pkg/logging"
	"github.com/arthur-debert/dotbind/pkg/types"
)

// Options holds options for the list command
type Options struct {
	RepoRoot string
	FS       types.FS
	Config   *config.Config
}

// BaseListing is the tracked entries of one base, in file order.
type BaseListing struct {
	Base    string
	Entries []ignorefile.ReInclude
}

// Result aggregates the listings of every base.
type Result struct {
	Bases []BaseListing
}

// List returns the tracked entries of every initialized base.
func List(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.list")

	ignorePath := filepath.Join(opts.RepoRoot, opts.Config.IgnoreFile)
	file, err := ignorefile.Load(opts.FS, ignorePath)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, base := range file.Bases() {
		result.Bases = append(result.Bases, BaseListing{
			Base:    base.Dir(),
			Entries: file.ReIncludesUnder(base),
		})
	}

	logger.Debug().Int("bases", len(result.Bases)).Msg("Listed tracked entries")
	return result, nil
}
