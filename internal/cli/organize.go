package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sampleorg/internal/files/scanner"
	"github.com/vvka-141/sampleorg/internal/logging"
	"github.com/vvka-141/sampleorg/internal/services"
	"github.com/vvka-141/sampleorg/internal/tui"
)

var organizeCmd = &cobra.Command{
	Use:   "organize --source <dir> --dest <dir>",
	Short: "Copy samples into category folders",
	Long: `Organize finds every audio sample under the source directory, matches its
file name against the category patterns of the config file and copies it to
<dest>/<category>/. Files that already exist at the destination are left
untouched.

Examples:
  sampleorg organize -s ./downloads -d ./library
  sampleorg organize -s ./downloads -d ./library -c categories.yaml`,
	Args: NoPositionalArgs,
	RunE: runOrganize,
}

type organizeFlagValues struct {
	source string
	dest   string
	config string
}

var organizeFlags organizeFlagValues

func resetOrganizeFlags() {
	organizeFlags = organizeFlagValues{}
}

func init() {
	rootCmd.AddCommand(organizeCmd)

	organizeCmd.Flags().StringVarP(&organizeFlags.source, "source", "s", "", "Directory to search for samples")
	organizeCmd.Flags().StringVarP(&organizeFlags.dest, "dest", "d", "", "Destination root for category folders")
	organizeCmd.Flags().StringVarP(&organizeFlags.config, "config", "c", "", "Category config file (default $SAMPLEORG_CONFIG or config.toml)")

	_ = organizeCmd.RegisterFlagCompletionFunc("source", completeDirectories)
	_ = organizeCmd.RegisterFlagCompletionFunc("dest", completeDirectories)
	_ = organizeCmd.RegisterFlagCompletionFunc("config", completeConfigFiles)
}

func runOrganize(cmd *cobra.Command, args []string) error {
	if err := requireFlag(cmd, "source", organizeFlags.source); err != nil {
		return err
	}
	if err := requireFlag(cmd, "dest", organizeFlags.dest); err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	cfg, categorizer, err := loadCategories(resolveConfigPath(organizeFlags.config), logger)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := requireDirectory(organizeFlags.source); err != nil {
		return err
	}

	sampleScanner := scanner.NewScanner(logger).WithExtension(cfg.Extension)
	organizer := services.NewOrganizerService(sampleScanner, categorizer, logger)

	summary, err := organizer.Organize(organizeFlags.source, organizeFlags.dest)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "-")
	fmt.Fprintln(out, "Organization complete.")
	fmt.Fprintf(out, "Copied %d files.\n", summary.Copied)
	fmt.Fprintf(out, "%d files were not categorized.\n", summary.Uncategorized)

	if summary.Failed > 0 {
		fmt.Fprintln(os.Stderr, tui.Styled(tui.WarningStyle,
			fmt.Sprintf("%s %d of %d files could not be copied", tui.SymbolCross, summary.Failed, summary.Copied)))
	} else {
		fmt.Fprintln(os.Stderr, tui.Styled(tui.SuccessStyle,
			fmt.Sprintf("%s %d new, %d already present", tui.SymbolCheck, summary.Copied-summary.Skipped, summary.Skipped)))
	}
	return nil
}
