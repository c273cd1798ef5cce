// Package ignorefile implements the pattern store: the ordered ignore
// file at the repository root that blanket-excludes every base directory
// and selectively re-includes tracked paths.
//
// Line order is semantically significant. A re-include line only works if
// it appears after the blanket-exclude line for its base and after the
// re-include line for its parent directory; the mutation API here inserts
// adjacent to an anchor line so callers can keep that ordering without
// ever re-sorting the file.
package ignorefile

import (
	"os"
	"strings"

	"github.com/arthur-debert/dotbind/pkg/errors"
	"github.com/arthur-debert/dotbind/pkg/types"
)

// IgnoreFile is the in-memory value of the ignore file: an ordered
// sequence of pattern lines. It is loaded at the start of an operation,
// mutated in memory and persisted atomically once.
type IgnoreFile struct {
	Lines []string
}

// Load reads the ignore file at path. It fails with ErrNotFound if no
// ignore file exists, which callers of add/remove treat as a missing
// init precondition.
func Load(fsys types.FS, path string) (*IgnoreFile, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "no ignore file at %s (run init first)", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read ignore file %s", path)
	}
	return Parse(string(data)), nil
}

// LoadOrEmpty reads the ignore file at path, returning an empty file if
// none exists yet. Used by init, which creates the file.
func LoadOrEmpty(fsys types.FS, path string) (*IgnoreFile, error) {
	f, err := Load(fsys, path)
	if errors.IsErrorCode(err, errors.ErrNotFound) {
		return &IgnoreFile{}, nil
	}
	return f, err
}

// Parse builds an IgnoreFile from raw file content. A trailing newline
// does not produce an empty final line.
func Parse(content string) *IgnoreFile {
	if content == "" {
		return &IgnoreFile{}
	}
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return &IgnoreFile{}
	}
	return &IgnoreFile{Lines: strings.Split(content, "\n")}
}

// Content renders the file back to its on-disk form, one pattern per
// line with a trailing newline.
func (f *IgnoreFile) Content() string {
	if len(f.Lines) == 0 {
		return ""
	}
	return strings.Join(f.Lines, "\n") + "\n"
}

// Contains reports whether an exact line is present.
func (f *IgnoreFile) Contains(line string) bool {
	for _, l := range f.Lines {
		if l == line {
			return true
		}
	}
	return false
}

// Append adds a line at the end of the file. Only init uses this, for
// new blanket-exclude lines whose position relative to other bases does
// not matter.
func (f *IgnoreFile) Append(line string) {
	f.Lines = append(f.Lines, line)
}

// InsertAfter inserts newLine immediately following the first occurrence
// of anchor. A missing anchor is a structural invariant violation
// (ancestor lines must exist before their descendants) and is reported
// as ErrAnchorNotFound, which aborts the whole invocation.
func (f *IgnoreFile) InsertAfter(anchor, newLine string) error {
	for i, l := range f.Lines {
		if l == anchor {
			f.Lines = append(f.Lines, "")
			copy(f.Lines[i+2:], f.Lines[i+1:])
			f.Lines[i+1] = newLine
			return nil
		}
	}
	return errors.Newf(errors.ErrAnchorNotFound, "anchor line %q not found in ignore file", anchor)
}

// RemoveLine removes every line exactly equal to line and returns how
// many were removed. Zero matches is not an error; callers check
// existence upstream, this is a safety net.
func (f *IgnoreFile) RemoveLine(line string) int {
	kept := f.Lines[:0]
	removed := 0
	for _, l := range f.Lines {
		if l == line {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	f.Lines = kept
	return removed
}

// Persist writes the file atomically: the content goes to a temporary
// sibling first, which then replaces the real file. An interrupted write
// leaves the previous on-disk state untouched.
func (f *IgnoreFile) Persist(fsys types.FS, path string) error {
	tmp := path + ".tmp"
	if err := fsys.WriteFile(tmp, []byte(f.Content()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write ignore file %s", tmp)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace ignore file %s", path)
	}
	return nil
}

// ParseBase interprets a line as a blanket-exclude base pattern
// ("/<base>/**"). Re-include lines and anything else report false.
func ParseBase(line string) (types.BasePattern, bool) {
	if !strings.HasPrefix(line, "/") || !strings.HasSuffix(line, "/**") {
		return types.BasePattern{}, false
	}
	dir := strings.TrimSuffix(strings.TrimPrefix(line, "/"), "/**")
	if dir == "" || strings.Contains(dir, "!") {
		return types.BasePattern{}, false
	}
	return types.BasePattern{Fragments: strings.Split(dir, "/")}, true
}

// Bases returns every base pattern in file order.
func (f *IgnoreFile) Bases() []types.BasePattern {
	var bases []types.BasePattern
	for _, l := range f.Lines {
		if b, ok := ParseBase(l); ok {
			bases = append(bases, b)
		}
	}
	return bases
}

// FindBase returns the first base pattern, in file order, that is a
// strict ancestor of the given repository-relative path components.
// Bases are non-overlapping by construction of init, but the first-match
// rule keeps the result deterministic even if they are not.
func (f *IgnoreFile) FindBase(fragments []string) (types.BasePattern, bool) {
	for _, b := range f.Bases() {
		if b.IsAncestorOf(fragments) {
			return b, true
		}
	}
	return types.BasePattern{}, false
}

// DirLine returns the re-include line for an intermediate directory:
// "!/<base>/<prefix...>/". The trailing separator distinguishes it from
// a leaf file line for the same path.
func DirLine(base types.BasePattern, prefix []string) string {
	return "!/" + base.Dir() + "/" + strings.Join(prefix, "/") + "/"
}

// FileLine returns the re-include line for a leaf file:
// "!/<base>/<prefix...>".
func FileLine(base types.BasePattern, prefix []string) string {
	return "!/" + base.Dir() + "/" + strings.Join(prefix, "/")
}

// GlobLine returns the directory-glob re-include line covering every
// present and future file under a directory: "!/<base>/<prefix...>/**".
func GlobLine(base types.BasePattern, prefix []string) string {
	return "!/" + base.Dir() + "/" + strings.Join(prefix, "/") + "/**"
}

// ReInclude describes one parsed re-include line.
type ReInclude struct {
	Line      string
	Fragments []string
	IsDir     bool
	IsGlob    bool
}

// ReIncludesUnder returns, in file order, every re-include entry whose
// path lies under the given base.
func (f *IgnoreFile) ReIncludesUnder(base types.BasePattern) []ReInclude {
	var entries []ReInclude
	for _, l := range f.Lines {
		if !strings.HasPrefix(l, "!/") {
			continue
		}
		path := strings.TrimPrefix(l, "!/")
		entry := ReInclude{Line: l}
		if strings.HasSuffix(path, "/**") {
			entry.IsGlob = true
			path = strings.TrimSuffix(path, "/**")
		} else if strings.HasSuffix(path, "/") {
			entry.IsDir = true
			path = strings.TrimSuffix(path, "/")
		}
		fragments := strings.Split(path, "/")
		if !base.IsAncestorOf(fragments) {
			continue
		}
		entry.Fragments = fragments[len(base.Fragments):]
		entries = append(entries, entry)
	}
	return entries
}
