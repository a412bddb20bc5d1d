package model

// Shared defaults used by the CLI config and the TUI.
const (
	DefaultLogPath   = "/var/log/auth.log"
	DefaultGroupPath = "/etc/group"

	// DefaultRecentCommands is how many of the newest sudo invocations the
	// COMMANDS tab lists.
	DefaultRecentCommands = 10

	// DefaultTopCommands is how many commands the frequency chart shows.
	DefaultTopCommands = 8
)
