// Package dotbind wires the CLI: argument parsing, confirmation
// prompting and output rendering. All tracking logic lives in
// pkg/commands.
package dotbind

import (
	"os"

	"github.com/arthur-debert/dotbind/internal/version"
	"github.com/arthur-debert/dotbind/pkg/config"
	"github.com/arthur-debert/dotbind/pkg/git"
	"github.com/arthur-debert/dotbind/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "dotbind",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{ID: "tracking", Title: "TRACKING:"})
	rootCmd.AddGroup(&cobra.Group{ID: "system", Title: "SYSTEM:"})

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newMountCmd())
	rootCmd.AddCommand(newUnmountCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// repoContext is the shared setup of every repository-bound command:
// the enclosing repository root, its configuration and a git client
// using the configured binary.
type repoContext struct {
	RepoRoot string
	Config   *config.Config
	Git      *git.Client
}

// newRepoContext discovers the repository enclosing the working
// directory and loads its configuration.
func newRepoContext() (*repoContext, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := git.New("").RepositoryRoot(wd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	return &repoContext{
		RepoRoot: root,
		Config:   cfg,
		Git:      git.New(cfg.Git.Binary),
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "system",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("dotbind version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}
