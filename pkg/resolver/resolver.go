// Package resolver maps an absolute filesystem path to the base pattern
// that encloses it and the path components from that base to the target.
package resolver

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotbind/pkg/errors"
	"github.com/arthur-debert/dotbind/pkg/ignorefile"
	"github.com/arthur-debert/dotbind/pkg/types"
)

// Resolve turns an absolute path into a ResolvedTarget against the given
// repository root and ignore file.
//
// Existence is checked first, unconditionally, because the synthesizers
// rely on the directory-vs-file distinction from a real stat. Then the
// path is made repository-relative, and the enclosing base pattern is
// looked up component-wise so a base "home" never matches "home2".
func Resolve(fsys types.FS, absPath, repoRoot string, f *ignorefile.IgnoreFile) (types.ResolvedTarget, error) {
	info, err := fsys.Stat(absPath)
	if err != nil {
		return types.ResolvedTarget{}, errors.Wrapf(err, errors.ErrNotFound, "path does not exist: %s", absPath)
	}

	rel, err := filepath.Rel(repoRoot, absPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return types.ResolvedTarget{}, errors.Newf(errors.ErrOutsideRepository, "path %s is not inside repository %s", absPath, repoRoot)
	}

	fragments := strings.Split(filepath.ToSlash(rel), "/")

	base, ok := f.FindBase(fragments)
	if !ok {
		var dirs []string
		for _, b := range f.Bases() {
			dirs = append(dirs, b.Dir())
		}
		return types.ResolvedTarget{}, errors.Newf(errors.ErrNoBaseFound, "path %s is not under any initialized base directory", absPath).
			WithDetail("bases", dirs)
	}

	return types.ResolvedTarget{
		Base:        base,
		Fragments:   fragments[len(base.Fragments):],
		IsDirectory: info.IsDir(),
	}, nil
}

// LeafLine returns the exact re-include line identifying a tracked
// target: directory lines end with a trailing separator, file lines do
// not.
func LeafLine(target types.ResolvedTarget) string {
	if target.IsDirectory {
		return ignorefile.DirLine(target.Base, target.Fragments)
	}
	return ignorefile.FileLine(target.Base, target.Fragments)
}

// ChainLines returns, ancestor first, every re-include line the target
// needs: one intermediate directory line per ancestor fragment, then
// the leaf. A directory target contributes two final lines: its own
// trailing-separator line, which un-ignores the directory itself so the
// version-control layer can descend into it, and the recursive glob
// covering its present and future contents ("/**" alone matches only
// what is inside a path, never the path itself).
func ChainLines(target types.ResolvedTarget) []string {
	lines := make([]string, 0, len(target.Fragments)+1)
	for i := 1; i < len(target.Fragments); i++ {
		lines = append(lines, ignorefile.DirLine(target.Base, target.Fragments[:i]))
	}
	lines = append(lines, LeafLine(target))
	if target.IsDirectory {
		lines = append(lines, ignorefile.GlobLine(target.Base, target.Fragments))
	}
	return lines
}
