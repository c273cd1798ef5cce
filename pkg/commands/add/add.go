// Package add implements the inclusion synthesizer: given target paths,
// it computes the re-include pattern lines each path needs, inserts only
// the missing ones directly after their parent line, and hands the
// result to the version-control collaborator for staging.
package add

import (
	"path/filepath"

	"github.com/arthur-debert/dotbind/pkg/config"
	"github.com/arthur-debert/dotbind/pkg/errors"
	"github.com/arthur-debert/dotbind/pkg/ignorefile"
	"github.com/arthur-debert/dotbind/pkg/logging"
	"github.com/arthur-debert/dotbind/pkg/resolver"
	"github.com/arthur-debert/dotbind/pkg/types"
)

// Options holds options for the add command
type Options struct {
	RepoRoot string
	Paths    []string
	FS       types.FS
	Git      types.GitClient
	Config   *config.Config
}

// PathOutcome is the result of processing one input path.
type PathOutcome struct {
	Path          string
	InsertedLines []string
	Err           error
}

// Result aggregates the outcomes of one add invocation.
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

// Add tracks the given paths. Each path is processed independently: a
// recoverable failure is recorded in its outcome and processing moves
// on. Structural invariant violations and ignore file write failures
// abort the whole invocation with no further processing.
//
// The ignore file is re-loaded from disk for every path, so the
// algorithm never trusts state cached from before an external process
// ran.
func Add(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.add")
	done := logging.LogOperationStart(logger, "add")
	defer done()

	ignorePath := filepath.Join(opts.RepoRoot, opts.Config.IgnoreFile)
	result := &Result{}

	for _, path := range opts.Paths {
		outcome, err := addOne(opts, ignorePath, path)
		if err != nil {
			// Fatal for the whole invocation, nothing further is
			// processed or persisted.
			return nil, err
		}
		if outcome.Err != nil {
			logger.Error().Err(outcome.Err).Str("path", path).Msg("Failed to add path")
		} else {
			logger.Info().Str("path", path).Strs("lines", outcome.InsertedLines).Msg("Path added")
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

// addOne processes a single path. The returned error is fatal; a
// recoverable failure is reported inside the outcome instead.
func addOne(opts Options, ignorePath, path string) (PathOutcome, error) {
	outcome := PathOutcome{Path: path}

	absPath, err := filepath.Abs(path)
	if err != nil {
		outcome.Err = errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", path)
		return outcome, nil
	}

	file, err := ignorefile.Load(opts.FS, ignorePath)
	if err != nil {
		// A missing or unreadable ignore file fails every path alike;
		// treat it as fatal rather than repeating the error per path.
		return outcome, err
	}

	target, err := resolver.Resolve(opts.FS, absPath, opts.RepoRoot, file)
	if err != nil {
		outcome.Err = err
		return outcome, nil
	}

	// Walk the chain ancestor first. Present lines become the anchor for
	// the next step; missing ones are inserted right after the current
	// anchor, which keeps every line after its parent without touching
	// the rest of the file.
	anchor := target.Base.Line()
	for _, line := range resolver.ChainLines(target) {
		if file.Contains(line) {
			anchor = line
			continue
		}
		if err := file.InsertAfter(anchor, line); err != nil {
			return outcome, err
		}
		outcome.InsertedLines = append(outcome.InsertedLines, line)
		anchor = line
	}

	if len(outcome.InsertedLines) > 0 {
		if err := file.Persist(opts.FS, ignorePath); err != nil {
			return outcome, err
		}
	}

	if err := opts.Git.Stage(opts.RepoRoot, ignorePath, absPath); err != nil {
		outcome.Err = err
		return outcome, nil
	}

	return outcome, nil
}
