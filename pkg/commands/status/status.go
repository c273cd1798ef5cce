// Package status reports the enclosing repository and whether its index
// is clean, through the version-control collaborator.
package status

import (
	"github.com/arthur-debert/dotbind/pkg/logging"
	"github.com/arthur-debert/dotbind/pkg/types"
)

// Options holds options for the status command
type Options struct {
	WorkingDir string
	Git        types.GitClient
}

// Result is the repository status.
type Result struct {
	RepoRoot   string
	CleanIndex bool
}

// Status discovers the repository enclosing the working directory and
// checks for pending changes.
func Status(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.status")

	root, err := opts.Git.RepositoryRoot(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	clean, err := opts.Git.IsCleanIndex(root)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("repo_root", root).Bool("clean", clean).Msg("Repository status")
	return &Result{RepoRoot: root, CleanIndex: clean}, nil
}
