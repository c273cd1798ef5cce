package filesystem_test

import (
	"testing"

	"github.com/arthur-debert/dotbind/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFSRoundTrip(t *testing.T) {
	fs := filesystem.NewMemory()

	require.NoError(t, fs.MkdirAll("/repo/home", 0755))
	require.NoError(t, fs.WriteFile("/repo/.gitignore", []byte("/home/**\n"), 0644))

	data, err := fs.ReadFile("/repo/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, "/home/**\n", string(data))

	info, err := fs.Stat("/repo/home")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryFSReadDirectoryFails(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/repo/home", 0755))

	_, err := fs.ReadFile("/repo/home")
	assert.Error(t, err)
}

func TestMemoryFSRename(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile("/repo/.gitignore.tmp", []byte("new\n"), 0644))
	require.NoError(t, fs.WriteFile("/repo/.gitignore", []byte("old\n"), 0644))

	require.NoError(t, fs.Rename("/repo/.gitignore.tmp", "/repo/.gitignore"))

	data, err := fs.ReadFile("/repo/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))

	_, err = fs.Stat("/repo/.gitignore.tmp")
	assert.Error(t, err)
}
