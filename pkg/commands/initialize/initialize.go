// Package initialize implements the init command: it creates a base
// directory, appends its blanket-exclude pattern to the ignore file and
// drops the descriptive companion file at the repository root.
package initialize

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotbind/pkg/config"
	"github.com/arthur-debert/dotbind/pkg/errors"
	"github.com/arthur-debert/dotbind/pkg/ignorefile"
	"github.com/arthur-debert/dotbind/pkg/logging"
	"github.com/arthur-debert/dotbind/pkg/types"
)

//go:embed companion.md
var companionTemplate string

// Options holds options for the init command
type Options struct {
	RepoRoot string
	Base     string
	FS       types.FS
	Git      types.GitClient
	Config   *config.Config

	// Home overrides the user's home directory for the repository
	// location check. Empty means os.UserHomeDir.
	Home string
}

// Result reports what init created.
type Result struct {
	Base              string
	BaseDir           string
	IgnoreFilePath    string
	CompanionFilePath string
	CreatedIgnoreFile bool
	CreatedCompanion  bool
}

// Initialize creates a new base (mount point) in the repository. The
// base directory is created if needed, its blanket-exclude line is
// appended to the ignore file, and the companion file is written once.
// A base that already has a blanket-exclude line is a reported error.
func Initialize(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.initialize")
	logger.Info().Str("base", opts.Base).Str("repo_root", opts.RepoRoot).Msg("Initializing base")

	base, err := validateBase(opts.Base)
	if err != nil {
		return nil, err
	}

	if err := validateRepoLocation(opts.RepoRoot, opts.Home); err != nil {
		return nil, err
	}

	ignorePath := filepath.Join(opts.RepoRoot, opts.Config.IgnoreFile)
	companionPath := filepath.Join(opts.RepoRoot, opts.Config.CompanionFile)

	file, err := ignorefile.LoadOrEmpty(opts.FS, ignorePath)
	if err != nil {
		return nil, err
	}
	createdIgnore := len(file.Lines) == 0

	if file.Contains(base.Line()) {
		return nil, errors.Newf(errors.ErrAlreadyExists, "base %s is already initialized", base.Dir())
	}

	baseDir := filepath.Join(opts.RepoRoot, filepath.FromSlash(base.Dir()))
	if err := opts.FS.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create base directory %s", baseDir)
	}

	file.Append(base.Line())
	if err := file.Persist(opts.FS, ignorePath); err != nil {
		return nil, err
	}

	result := &Result{
		Base:              base.Dir(),
		BaseDir:           baseDir,
		IgnoreFilePath:    ignorePath,
		CompanionFilePath: companionPath,
		CreatedIgnoreFile: createdIgnore,
	}

	if _, err := opts.FS.Stat(companionPath); err != nil {
		if err := opts.FS.WriteFile(companionPath, []byte(companionTemplate), 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot create companion file %s", companionPath)
		}
		result.CreatedCompanion = true
	}

	if err := opts.Git.Stage(opts.RepoRoot, ignorePath, companionPath); err != nil {
		return nil, err
	}

	logger.Info().Str("base", base.Dir()).Bool("created_ignore", createdIgnore).Msg("Base initialized")
	return result, nil
}

// validateBase checks that the base is a clean repository-relative
// directory path and returns its pattern.
func validateBase(base string) (types.BasePattern, error) {
	if filepath.IsAbs(base) {
		return types.BasePattern{}, errors.Newf(errors.ErrInvalidInput, "base %q must be a relative path inside the repository", base)
	}
	base = strings.Trim(filepath.ToSlash(filepath.Clean(base)), "/")
	if base == "" || base == "." {
		return types.BasePattern{}, errors.New(errors.ErrInvalidInput, "base directory must not be empty")
	}
	for _, frag := range strings.Split(base, "/") {
		if frag == ".." || frag == "." {
			return types.BasePattern{}, errors.Newf(errors.ErrInvalidInput, "base %q must not traverse outside the repository", base)
		}
	}
	return types.BasePattern{Fragments: strings.Split(base, "/")}, nil
}

// validateRepoLocation rejects repositories at or above the home
// directory: the base is bind-mounted over home, and a repository that
// contains its own mount target cannot work.
func validateRepoLocation(repoRoot, home string) error {
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "cannot determine home directory")
		}
	}
	rel, err := filepath.Rel(repoRoot, home)
	if err != nil {
		return nil
	}
	if rel == "." || !strings.HasPrefix(rel, "..") {
		return errors.Newf(errors.ErrInvalidInput, "repository %s must not be at or above the home directory %s", repoRoot, home)
	}
	return nil
}
