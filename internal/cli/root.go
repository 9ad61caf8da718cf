package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

var rootCmd = &cobra.Command{
	Use:   "sampleorg",
	Short: "Organize audio sample libraries",
	Long: `sampleorg sorts audio samples into category folders, lists the categories
a library matches and prints its folder tree. With --discover it reports the
filename patterns that samples in each folder share.

Categories are regular expressions read from a TOML or YAML file, matched
against lower-cased file names.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Config file missing or invalid
  11 - Source directory not found
  12 - A sample could not be copied
  13 - Output could not be written`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", sampleorg.ErrUsage, err)
	})
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
