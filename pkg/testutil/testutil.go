// Package testutil provides shared helpers for dotbind tests: an
// in-memory filesystem populated with a repository layout, canned ignore
// files and a mock git collaborator.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotbind/pkg/filesystem"
	"github.com/arthur-debert/dotbind/pkg/types"
	"github.com/stretchr/testify/require"
)

// NewMemoryFS returns an empty in-memory filesystem.
func NewMemoryFS() types.FS {
	return filesystem.NewMemory()
}

// CreateFile writes a file (creating parents) on the given filesystem.
// It fails the test on error and returns the path.
func CreateFile(t *testing.T, fsys types.FS, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	return path
}

// CreateDir creates a directory (and parents) on the given filesystem.
func CreateDir(t *testing.T, fsys types.FS, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	require.NoError(t, fsys.MkdirAll(path, 0755))
	return path
}

// ReadFile reads a file, failing the test on error.
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
