package sampleorg

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Command completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Config file missing or invalid
	ExitSourceNotFound = 11 // Source directory missing or not a directory
	ExitCopyFailed     = 12 // A sample could not be copied
	ExitWriteFailed    = 13 // Report output could not be written
)

const (
	// DefaultAudioExtension is the extension (without dot) of files treated as samples.
	// Matching is case-insensitive.
	DefaultAudioExtension = "wav"

	// DefaultConfigFile is the category table read when --config is not given
	// and SAMPLEORG_CONFIG is unset.
	DefaultConfigFile = "config.toml"

	// ConfigEnvVar names the environment variable that overrides DefaultConfigFile.
	// It may also be set through a .env file in the working directory.
	ConfigEnvVar = "SAMPLEORG_CONFIG"

	// MinPatternPrefixLength is the number of leading characters two stems
	// must share before they are placed in the same pattern group.
	MinPatternPrefixLength = 4

	// PatternWildcard is appended to a group prefix in report lines.
	PatternWildcard = "*"

	// CurrentDirectory stands in for the folder of a file that has no parent.
	CurrentDirectory = "."
)
