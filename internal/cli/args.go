package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

// NoPositionalArgs rejects positional arguments with a usage error.
func NoPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected argument %q\n\nUsage: %s", sampleorg.ErrUsage, args[0], cmd.UseLine())
	}
	return nil
}

// requireFlag returns a usage error when the named string flag is empty.
func requireFlag(cmd *cobra.Command, name, value string) error {
	if value != "" {
		return nil
	}
	return fmt.Errorf(`%w: missing required flag --%s

Usage: %s

Example:
  %s --%s ./samples`, sampleorg.ErrUsage, name, cmd.UseLine(), cmd.CommandPath(), name)
}

// requireDirectory checks that path exists and is a directory.
func requireDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", sampleorg.ErrSourceNotFound, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", sampleorg.ErrSourceNotFound, path)
	}
	return nil
}
