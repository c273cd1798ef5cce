// Package mount is the bind-mount collaborator: it overlays a base
// directory of the repository onto its live location (normally the home
// directory). Pure process invocation, no pattern logic.
package mount

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dotbind/pkg/errors"
	"github.com/arthur-debert/dotbind/pkg/logging"
)

// Runner executes a mount-related binary. Tests substitute a fake.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) (string, error) {
	logging.LogCommand(name, args)
	out, err := exec.Command(name, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// Mounter performs bind mounts either through mount(8), which needs
// root, or through bindfs, which runs in user space.
type Mounter struct {
	runner    Runner
	useBindfs bool
}

// New creates a Mounter. With useBindfs the user-space bindfs binary is
// invoked instead of mount --bind.
func New(useBindfs bool) *Mounter {
	return &Mounter{runner: execRunner{}, useBindfs: useBindfs}
}

// NewWithRunner creates a Mounter with a custom runner, for tests.
func NewWithRunner(r Runner, useBindfs bool) *Mounter {
	return &Mounter{runner: r, useBindfs: useBindfs}
}

// BindMount overlays source onto target.
func (m *Mounter) BindMount(source, target string) error {
	var out string
	var err error
	if m.useBindfs {
		out, err = m.runner.Run("bindfs", "--no-allow-other", source, target)
	} else {
		out, err = m.runner.Run("mount", "--bind", source, target)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrMount, "bind mount of %s onto %s failed: %s", source, target, out)
	}
	return nil
}

// BindUnmount removes the bind mount at target.
func (m *Mounter) BindUnmount(target string) error {
	var out string
	var err error
	if m.useBindfs {
		out, err = m.runner.Run("fusermount", "-u", target)
	} else {
		out, err = m.runner.Run("umount", target)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrMount, "unmount of %s failed: %s", target, out)
	}
	return nil
}

// FstabLine returns the fstab entry that makes the bind mount permanent.
func FstabLine(source, target string) string {
	return fmt.Sprintf("%s %s none bind 0 0", source, target)
}
