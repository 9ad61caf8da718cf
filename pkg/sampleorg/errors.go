package sampleorg

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := organizer.Organize(source, dest)
//	if errors.Is(err, sampleorg.ErrSourceNotFound) {
//	    // Handle missing source directory
//	}
var (
	// ErrUsage indicates the command line was malformed.
	ErrUsage = errors.New("usage error")

	// ErrInvalidConfig indicates the category config could not be parsed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigNotFound indicates the category config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrSourceNotFound indicates the source directory is missing or is not a directory.
	ErrSourceNotFound = errors.New("source directory not found")

	// ErrFilenameNotFound indicates a sample path has no file name component.
	ErrFilenameNotFound = errors.New("filename not found")

	// ErrCopyFailed indicates a sample could not be copied to its category folder.
	ErrCopyFailed = errors.New("copy failed")

	// ErrWriteFailed indicates report output could not be written.
	ErrWriteFailed = errors.New("write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrConfigNotFound):
		return ExitConfigError
	case errors.Is(err, ErrSourceNotFound):
		return ExitSourceNotFound
	case errors.Is(err, ErrCopyFailed), errors.Is(err, ErrFilenameNotFound):
		return ExitCopyFailed
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	}

	return ExitGeneralError
}
