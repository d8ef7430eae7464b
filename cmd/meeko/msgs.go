package meeko

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Bootstrap a Windows workstation from your dotfiles"
	MsgInstallShort   = "Install (or upgrade) the manifest packages"
	MsgBootstrapShort = "Run the full bootstrap: packages, environment, verification"
	MsgLinkShort      = "Link dotfiles with dotbot"
	MsgEnvShort       = "Apply the environment bootstrap steps only"
	MsgDoctorShort    = "Report host state without changing anything"
	MsgGenConfigShort = "Print the effective manifest as TOML"
	MsgGuideShort     = "Show the setup guide"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"
	MsgAllCurrent   = "Everything already current - nothing to do."
)

// MsgRootLong is the root command description
const MsgRootLong = `meeko sets up a fresh Windows machine from a dotfiles repository:
it installs the packages in your manifest (winget or Chocolatey),
refreshes PATH from the persisted scopes, enables Developer Mode,
sets the PowerShell execution policy, and links dotfiles via dotbot.

Every step is idempotent: re-running against an already bootstrapped
machine is a no-op.`
