package dotbind

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotbind/pkg/commands/add"
	"github.com/arthur-debert/dotbind/pkg/commands/genconfig"
	"github.com/arthur-debert/dotbind/pkg/commands/initialize"
	"github.com/arthur-debert/dotbind/pkg/commands/list"
	"github.com/arthur-debert/dotbind/pkg/commands/remove"
	"github.com/arthur-debert/dotbind/pkg/commands/status"
	"github.com/arthur-debert/dotbind/pkg/filesystem"
	"github.com/arthur-debert/dotbind/pkg/mount"
	"github.com/arthur-debert/dotbind/pkg/ui/styles"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init <base-dir>",
		Short:   MsgInitShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "tracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRepoContext()
			if err != nil {
				return err
			}

			result, err := initialize.Initialize(initialize.Options{
				RepoRoot: ctx.RepoRoot,
				Base:     args[0],
				FS:       filesystem.NewOS(),
				Git:      ctx.Git,
				Config:   ctx.Config,
			})
			if err != nil {
				return err
			}

			cmd.Println(styles.Success.Render(fmt.Sprintf(MsgInitialized, result.Base, result.IgnoreFilePath)))
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add FILE...",
		Short:   MsgAddShort,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "tracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRepoContext()
			if err != nil {
				return err
			}

			result, err := add.Add(add.Options{
				RepoRoot: ctx.RepoRoot,
				Paths:    args,
				FS:       filesystem.NewOS(),
				Git:      ctx.Git,
				Config:   ctx.Config,
			})
			if err != nil {
				return err
			}

			failed := 0
			for _, o := range result.Outcomes {
				if o.Err != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), styles.Error.Render(fmt.Sprintf(MsgFailed, o.Path, o.Err)))
					continue
				}
				cmd.Println(styles.Success.Render(fmt.Sprintf(MsgAdded, o.Path)))
			}
			if failed > 0 {
				return fmt.Errorf(MsgAggregateError, failed, len(result.Outcomes))
			}
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	var noInput bool

	cmd := &cobra.Command{
		Use:     "remove FILE...",
		Short:   MsgRemoveShort,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "tracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRepoContext()
			if err != nil {
				return err
			}

			if !noInput && isatty.IsTerminal(os.Stdin.Fd()) {
				ok, _ := pterm.DefaultInteractiveConfirm.
					WithDefaultValue(false).
					Show(fmt.Sprintf(MsgRemoveConfirm, len(args)))
				if !ok {
					cmd.Println(MsgAborted)
					return nil
				}
			}

			result, err := remove.Remove(remove.Options{
				RepoRoot: ctx.RepoRoot,
				Paths:    args,
				FS:       filesystem.NewOS(),
				Git:      ctx.Git,
				Config:   ctx.Config,
			})
			if err != nil {
				return err
			}

			failed := 0
			for _, o := range result.Outcomes {
				if o.Err != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), styles.Error.Render(fmt.Sprintf(MsgFailed, o.Path, o.Err)))
					continue
				}
				cmd.Println(styles.Success.Render(fmt.Sprintf(MsgRemoved, o.Path)))
			}
			if failed > 0 {
				return fmt.Errorf(MsgAggregateError, failed, len(result.Outcomes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noInput, "no-input", false, MsgFlagNoInput)
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		GroupID: "tracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRepoContext()
			if err != nil {
				return err
			}

			result, err := list.List(list.Options{
				RepoRoot: ctx.RepoRoot,
				FS:       filesystem.NewOS(),
				Config:   ctx.Config,
			})
			if err != nil {
				return err
			}

			for _, b := range result.Bases {
				cmd.Println(styles.Header.Render(b.Base + "/"))
				for _, e := range b.Entries {
					suffix := ""
					if e.IsGlob {
						suffix = styles.Muted.Render("  (recursive)")
					} else if e.IsDir {
						suffix = styles.Muted.Render("  (directory)")
					}
					cmd.Println("  " + styles.Path.Render(filepath.Join(e.Fragments...)) + suffix)
				}
			}
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Args:    cobra.NoArgs,
		GroupID: "tracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRepoContext()
			if err != nil {
				return err
			}

			result, err := status.Status(status.Options{
				WorkingDir: ctx.RepoRoot,
				Git:        ctx.Git,
			})
			if err != nil {
				return err
			}

			if result.CleanIndex {
				cmd.Println(styles.Success.Render(fmt.Sprintf(MsgStatusClean, result.RepoRoot)))
			} else {
				cmd.Println(styles.Error.Render(fmt.Sprintf(MsgStatusDirty, result.RepoRoot)))
			}
			return nil
		},
	}
}

func newMountCmd() *cobra.Command {
	var (
		useBindfs  bool
		printFstab bool
	)

	cmd := &cobra.Command{
		Use:     "mount [base-dir]",
		Short:   MsgMountShort,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "system",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRepoContext()
			if err != nil {
				return err
			}

			base := "home"
			if len(args) == 1 {
				base = args[0]
			}
			source := filepath.Join(ctx.RepoRoot, base)

			target, err := ctx.Config.MountTarget()
			if err != nil {
				return err
			}

			if printFstab {
				cmd.Println(mount.FstabLine(source, target))
				return nil
			}

			m := mount.New(useBindfs || ctx.Config.Mount.Bindfs)
			if err := m.BindMount(source, target); err != nil {
				return err
			}
			cmd.Println(styles.Success.Render(fmt.Sprintf(MsgMounted, source, target)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&useBindfs, "bindfs", false, MsgFlagBindfs)
	cmd.Flags().BoolVar(&printFstab, "fstab", false, MsgFlagFstab)
	return cmd
}

func newUnmountCmd() *cobra.Command {
	var useBindfs bool

	cmd := &cobra.Command{
		Use:     "unmount",
		Short:   MsgUnmountShort,
		Args:    cobra.NoArgs,
		GroupID: "system",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRepoContext()
			if err != nil {
				return err
			}

			target, err := ctx.Config.MountTarget()
			if err != nil {
				return err
			}

			m := mount.New(useBindfs || ctx.Config.Mount.Bindfs)
			if err := m.BindUnmount(target); err != nil {
				return err
			}
			cmd.Println(styles.Success.Render(fmt.Sprintf(MsgUnmounted, target)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&useBindfs, "bindfs", false, MsgFlagBindfs)
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenCfgShort,
		Args:    cobra.NoArgs,
		GroupID: "system",
		RunE: func(cmd *cobra.Command, args []string) error {
			// genconfig works outside a repository too
			repoRoot := ""
			if ctx, err := newRepoContext(); err == nil {
				repoRoot = ctx.RepoRoot
			}

			result, err := genconfig.GenConfig(genconfig.Options{RepoRoot: repoRoot})
			if err != nil {
				return err
			}

			cmd.Print(result.TOML)
			return nil
		},
	}
}
