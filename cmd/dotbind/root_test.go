package dotbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmdRegistersCommands(t *testing.T) {
	root := NewRootCmd()

	expected := []string{"init", "add", "remove", "list", "status", "mount", "unmount", "genconfig", "version"}
	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, names[name], "command %q should be registered", name)
	}
}

func TestRootCmdFlags(t *testing.T) {
	root := NewRootCmd()

	require.NotNil(t, root.PersistentFlags().Lookup("verbose"))
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)
}

func TestRemoveCmdHasNoInputFlag(t *testing.T) {
	root := NewRootCmd()

	removeCmd, _, err := root.Find([]string{"remove"})
	require.NoError(t, err)
	require.NotNil(t, removeCmd.Flags().Lookup("no-input"))
}
