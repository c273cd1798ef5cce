package dotbind

// Message constants
const (
	MsgRootShort = "Track dotfiles in git through a bind-mounted home"
	MsgRootLong  = `dotbind keeps your configuration files live at their original location
while versioning them in a git repository: a base directory of the
repository is bind-mounted over your home, everything under it is
ignored by default, and tracked files are re-included one pattern line
at a time.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoInput = "Never prompt for confirmation"
	MsgFlagBindfs  = "Use user-space bindfs instead of mount --bind"
	MsgFlagFstab   = "Print the fstab line instead of mounting"

	MsgInitShort    = "Create a new base directory (mount point)"
	MsgAddShort     = "Track files or directories"
	MsgRemoveShort  = "Stop tracking files or directories and delete them"
	MsgListShort    = "Show tracked entries per base"
	MsgStatusShort  = "Show repository root and index state"
	MsgMountShort   = "Bind-mount a base over its live location"
	MsgUnmountShort = "Remove the bind mount"
	MsgGenCfgShort  = "Print the effective configuration as TOML"
	MsgVersionShort = "Print version information"

	MsgAdded          = "added %s"
	MsgRemoved        = "removed %s"
	MsgFailed         = "%s: %v"
	MsgAggregateError = "%d of %d paths failed"
	MsgRemoveConfirm  = "Remove %d path(s) from tracking and delete them?"
	MsgAborted        = "Aborted."
	MsgInitialized    = "initialized base %s (ignore file %s)"
	MsgStatusClean    = "repository %s: index clean"
	MsgStatusDirty    = "repository %s: uncommitted changes"
	MsgMounted        = "mounted %s onto %s"
	MsgUnmounted      = "unmounted %s"
)
