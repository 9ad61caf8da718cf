package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for sampleorg.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and redirected output.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is watching the terminal.
	ModeInteractive
)

// DetectMode determines whether status output on stderr is seen by a human.
//
// Returns ModeNonInteractive if:
//   - SAMPLEORG_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stderr is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("SAMPLEORG_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

// StderrSupportsColor reports whether styled output may be written to stderr.
func StderrSupportsColor() bool {
	return IsInteractive()
}
