package types

// GitClient is the version-control collaborator consumed by the
// synthesizers. All calls are opaque and fallible; a failure surfaces as
// a collaborator error for the path being processed.
type GitClient interface {
	// Stage adds paths to the index.
	Stage(repoRoot string, paths ...string) error

	// UnstageAndDelete removes paths from the index and the working
	// tree, recursively for directories.
	UnstageAndDelete(repoRoot string, paths ...string) error

	// RepositoryRoot returns the root of the repository enclosing start.
	RepositoryRoot(start string) (string, error)

	// IsCleanIndex reports whether the repository has no pending changes.
	IsCleanIndex(repoRoot string) (bool, error)
}
