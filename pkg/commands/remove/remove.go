// Package remove implements the removal synthesizer: it matches each
// target path against its exact leaf re-include line, delegates deletion
// of the content to the version-control collaborator, and drops the
// target's pattern lines from the ignore file. Ancestor directory chain
// lines are left in place for future additions.
package remove

import (
	"path/filepath"

	"github.com/arthur-debert/dotbind/pkg/config"
	"github.com/arthur-debert/dotbind/pkg/errors"
	"github.com/arthur-debert/dotbind/pkg/ignorefile"
	"github.com/arthur-debert/dotbind/pkg/logging"
	"github.com/arthur-debert/dotbind/pkg/resolver"
	"github.com/arthur-debert/dotbind/pkg/types"
)

// Options holds options for the remove command
type Options struct {
	RepoRoot string
	Paths    []string
	FS       types.FS
	Git      types.GitClient
	Config   *config.Config
}

// PathOutcome is the result of processing one input path.
type PathOutcome struct {
	Path         string
	RemovedLines []string
	Err          error
}

// Result aggregates the outcomes of one remove invocation.
type Result struct {
	Outcomes []PathOutcome
}

// Failed reports whether any path failed.
func (r *Result) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Err != nil {
			return true
		}
	}
	return false
}

// Remove untracks the given paths. Targets must still exist on disk:
// the directory-vs-file decision comes from a stat. A path whose exact
// leaf line is absent fails with a not-tracked error, which also covers
// files only reachable through a directory glob; those cannot be removed
// piecemeal.
func Remove(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.remove")
	done := logging.LogOperationStart(logger, "remove")
	defer done()

	ignorePath := filepath.Join(opts.RepoRoot, opts.Config.IgnoreFile)
	result := &Result{}

	for _, path := range opts.Paths {
		outcome, err := removeOne(opts, ignorePath, path)
		if err != nil {
			return nil, err
		}
		if outcome.Err != nil {
			logger.Error().Err(outcome.Err).Str("path", path).Msg("Failed to remove path")
		} else {
			logger.Info().Str("path", path).Strs("lines", outcome.RemovedLines).Msg("Path removed")
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

// removeOne processes a single path. The returned error is fatal; a
// recoverable failure is reported inside the outcome instead.
func removeOne(opts Options, ignorePath, path string) (PathOutcome, error) {
	outcome := PathOutcome{Path: path}

	absPath, err := filepath.Abs(path)
	if err != nil {
		outcome.Err = errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", path)
		return outcome, nil
	}

	file, err := ignorefile.Load(opts.FS, ignorePath)
	if err != nil {
		return outcome, err
	}

	target, err := resolver.Resolve(opts.FS, absPath, opts.RepoRoot, file)
	if err != nil {
		outcome.Err = err
		return outcome, nil
	}

	leaf := resolver.LeafLine(target)
	if !file.Contains(leaf) {
		outcome.Err = errors.Newf(errors.ErrNotTracked, "path %s is not tracked", path).
			WithDetail("line", leaf)
		return outcome, nil
	}

	// Content removal goes first so a collaborator failure leaves the
	// ignore file untouched.
	if err := opts.Git.UnstageAndDelete(opts.RepoRoot, absPath); err != nil {
		outcome.Err = err
		return outcome, nil
	}

	removed := []string{leaf}
	file.RemoveLine(leaf)
	if target.IsDirectory {
		// A tracked directory carries a companion recursive glob for its
		// contents; both lines go together.
		glob := ignorefile.GlobLine(target.Base, target.Fragments)
		if file.RemoveLine(glob) > 0 {
			removed = append(removed, glob)
		}
	}
	if err := file.Persist(opts.FS, ignorePath); err != nil {
		return outcome, err
	}
	outcome.RemovedLines = removed

	if err := opts.Git.Stage(opts.RepoRoot, ignorePath); err != nil {
		outcome.Err = err
		return outcome, nil
	}

	return outcome, nil
}
