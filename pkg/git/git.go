// Package git is the version-control collaborator. The pattern engine
// only decides which paths and patterns to hand over; everything here is
// an opaque invocation of the git binary whose failure surfaces as a
// collaborator error.
package git

import (
	"os/exec"
	"strings"

	"github.com/arthur-debert/dotbind/pkg/errors"
	"github.com/arthur-debert/dotbind/pkg/logging"
)

// Runner executes a git invocation in a working directory and returns
// its combined output. Tests substitute a fake.
type Runner interface {
	Run(dir string, args ...string) (string, error)
}

// execRunner runs the real git binary
type execRunner struct {
	binary string
}

func (r *execRunner) Run(dir string, args ...string) (string, error) {
	logging.LogCommand(r.binary, args)
	cmd := exec.Command(r.binary, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// Client wraps the git operations dotbind needs.
type Client struct {
	runner Runner
}

// New creates a Client running the given git binary ("git" if empty).
func New(binary string) *Client {
	if binary == "" {
		binary = "git"
	}
	return &Client{runner: &execRunner{binary: binary}}
}

// NewWithRunner creates a Client with a custom runner, for tests.
func NewWithRunner(r Runner) *Client {
	return &Client{runner: r}
}

// Stage adds the given paths to the index.
func (c *Client) Stage(repoRoot string, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	out, err := c.runner.Run(repoRoot, args...)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCollaborator, "git add failed: %s", out)
	}
	return nil
}

// UnstageAndDelete removes the given paths from the index and the
// working tree, recursively for directories.
func (c *Client) UnstageAndDelete(repoRoot string, paths ...string) error {
	args := append([]string{"rm", "-r", "--"}, paths...)
	out, err := c.runner.Run(repoRoot, args...)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCollaborator, "git rm failed: %s", out)
	}
	return nil
}

// RepositoryRoot returns the root of the repository enclosing start, or
// ErrNotFound if start is not inside a work tree.
func (c *Client) RepositoryRoot(start string) (string, error) {
	out, err := c.runner.Run(start, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound, "no git repository found at %s", start)
	}
	return out, nil
}

// IsCleanIndex reports whether the repository has no staged or unstaged
// changes.
func (c *Client) IsCleanIndex(repoRoot string) (bool, error) {
	out, err := c.runner.Run(repoRoot, "status", "--porcelain")
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrCollaborator, "git status failed: %s", out)
	}
	return out == "", nil
}
