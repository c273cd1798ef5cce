// Package types holds the shared types of dotbind: the filesystem
// abstraction used by every component that touches disk, and the value
// types flowing between the pattern store, the resolver and the
// synthesizers.
package types

import (
	"io/fs"
	"strings"
)

// FS abstracts the filesystem operations dotbind needs. The production
// implementation wraps the OS; tests use an afero in-memory filesystem.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

// BasePattern is one blanket-exclude entry of the ignore file. A base is
// a repository-relative directory, one per mount point created by init,
// whose whole subtree is ignored by default.
type BasePattern struct {
	// Fragments are the path components of the base directory, e.g.
	// ["home"] for the line "/home/**".
	Fragments []string
}

// Dir returns the slash-joined base directory.
func (b BasePattern) Dir() string {
	return strings.Join(b.Fragments, "/")
}

// Line returns the blanket-exclude line for this base.
func (b BasePattern) Line() string {
	return "/" + b.Dir() + "/**"
}

// IsAncestorOf reports whether the base directory is a strict ancestor of
// the given repository-relative path, compared component-wise so that a
// base "home" never matches "home2/...".
func (b BasePattern) IsAncestorOf(fragments []string) bool {
	if len(fragments) <= len(b.Fragments) {
		return false
	}
	for i, f := range b.Fragments {
		if fragments[i] != f {
			return false
		}
	}
	return true
}

// ResolvedTarget is the transient result of path resolution: the base the
// target lives under, the path components from the base to the target,
// and whether the target is a directory on disk. It is recomputed on
// every operation, never persisted.
type ResolvedTarget struct {
	Base        BasePattern
	Fragments   []string
	IsDirectory bool
}
