package ignorefile_test

import (
	"testing"

	"github.com/arthur-debert/dotbind/pkg/errors"
	"github.com/arthur-debert/dotbind/pkg/filesystem"
	"github.com/arthur-debert/dotbind/pkg/ignorefile"
	"github.com/arthur-debert/dotbind/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   []string
	}{
		{
			name:    "empty",
			content: "",
			lines:   nil,
		},
		{
			name:    "single_line_with_newline",
			content: "/home/**\n",
			lines:   []string{"/home/**"},
		},
		{
			name:    "multiple_lines",
			content: "/home/**\n!/home/.bashrc\n",
			lines:   []string{"/home/**", "!/home/.bashrc"},
		},
		{
			name:    "missing_trailing_newline",
			content: "/home/**\n!/home/.bashrc",
			lines:   []string{"/home/**", "!/home/.bashrc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ignorefile.Parse(tt.content)
			assert.Equal(t, tt.lines, f.Lines)
		})
	}
}

func TestContentAddsTrailingNewline(t *testing.T) {
	f := &ignorefile.IgnoreFile{Lines: []string{"/home/**", "!/home/.bashrc"}}
	assert.Equal(t, "/home/**\n!/home/.bashrc\n", f.Content())

	empty := &ignorefile.IgnoreFile{}
	assert.Equal(t, "", empty.Content())
}

func TestLoadMissingFile(t *testing.T) {
	fs := filesystem.NewMemory()

	_, err := ignorefile.Load(fs, "/repo/.gitignore")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestLoadOrEmpty(t *testing.T) {
	fs := filesystem.NewMemory()

	f, err := ignorefile.LoadOrEmpty(fs, "/repo/.gitignore")
	require.NoError(t, err)
	assert.Empty(t, f.Lines)
}

func TestInsertAfter(t *testing.T) {
	f := ignorefile.Parse("/home/**\n!/home/.bashrc\n/etc/**\n")

	err := f.InsertAfter("/home/**", "!/home/.profile")
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/**", "!/home/.profile", "!/home/.bashrc", "/etc/**"}, f.Lines)
}

func TestInsertAfterLastLine(t *testing.T) {
	f := ignorefile.Parse("/home/**\n")

	err := f.InsertAfter("/home/**", "!/home/.bashrc")
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/**", "!/home/.bashrc"}, f.Lines)
}

func TestInsertAfterMissingAnchor(t *testing.T) {
	f := ignorefile.Parse("/home/**\n")

	err := f.InsertAfter("!/home/.config/", "!/home/.config/foo")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAnchorNotFound))
}

func TestRemoveLine(t *testing.T) {
	f := ignorefile.Parse("/home/**\n!/home/.bashrc\n!/home/.bashrc\n!/home/.profile\n")

	removed := f.RemoveLine("!/home/.bashrc")
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"/home/**", "!/home/.profile"}, f.Lines)

	// Zero matches is a no-op, not an error
	assert.Equal(t, 0, f.RemoveLine("!/home/.vimrc"))
}

func TestPersistRoundTrip(t *testing.T) {
	fs := filesystem.NewMemory()
	f := ignorefile.Parse("/home/**\n!/home/.bashrc\n")

	require.NoError(t, f.Persist(fs, "/repo/.gitignore"))

	loaded, err := ignorefile.Load(fs, "/repo/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, f.Lines, loaded.Lines)

	// The temporary file must not survive the swap
	_, err = fs.Stat("/repo/.gitignore.tmp")
	assert.Error(t, err)
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		line string
		dir  string
		ok   bool
	}{
		{"/home/**", "home", true},
		{"/home/sub/**", "home/sub", true},
		{"!/home/**", "", false},
		{"!/home/.bashrc", "", false},
		{"home/**", "", false},
		{"/**", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			b, ok := ignorefile.ParseBase(tt.line)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.dir, b.Dir())
			}
		})
	}
}

func TestFindBaseComponentWise(t *testing.T) {
	f := ignorefile.Parse("/home/**\n/home2/**\n")

	// "home2/.bashrc" must match base "home2", never "home"
	b, ok := f.FindBase([]string{"home2", ".bashrc"})
	require.True(t, ok)
	assert.Equal(t, "home2", b.Dir())

	b, ok = f.FindBase([]string{"home", ".bashrc"})
	require.True(t, ok)
	assert.Equal(t, "home", b.Dir())

	_, ok = f.FindBase([]string{"etc", "passwd"})
	assert.False(t, ok)

	// The base itself is not a strict ancestor of itself
	_, ok = f.FindBase([]string{"home"})
	assert.False(t, ok)
}

func TestFindBaseFirstMatchWins(t *testing.T) {
	// Overlapping bases should not occur, but resolution must stay
	// deterministic: first in file order wins.
	f := ignorefile.Parse("/home/**\n/home/nested/**\n")

	b, ok := f.FindBase([]string{"home", "nested", "file"})
	require.True(t, ok)
	assert.Equal(t, "home", b.Dir())
}

func TestLineBuilders(t *testing.T) {
	base := types.BasePattern{Fragments: []string{"home"}}

	assert.Equal(t, "!/home/.config/", ignorefile.DirLine(base, []string{".config"}))
	assert.Equal(t, "!/home/.config/foo.conf", ignorefile.FileLine(base, []string{".config", "foo.conf"}))
	assert.Equal(t, "!/home/.config/nvim/**", ignorefile.GlobLine(base, []string{".config", "nvim"}))
}

func TestReIncludesUnder(t *testing.T) {
	f := ignorefile.Parse("/home/**\n!/home/.bashrc\n!/home/.config/\n!/home/.config/nvim/**\n/etc/**\n!/etc/hosts\n")
	base := types.BasePattern{Fragments: []string{"home"}}

	entries := f.ReIncludesUnder(base)
	require.Len(t, entries, 3)

	assert.Equal(t, []string{".bashrc"}, entries[0].Fragments)
	assert.False(t, entries[0].IsDir)
	assert.False(t, entries[0].IsGlob)

	assert.Equal(t, []string{".config"}, entries[1].Fragments)
	assert.True(t, entries[1].IsDir)

	assert.Equal(t, []string{".config", "nvim"}, entries[2].Fragments)
	assert.True(t, entries[2].IsGlob)
}
