package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sampleorg/internal/discover"
	"github.com/vvka-141/sampleorg/internal/files/filesystem"
	"github.com/vvka-141/sampleorg/internal/files/scanner"
	"github.com/vvka-141/sampleorg/internal/logging"
	"github.com/vvka-141/sampleorg/internal/services"
	"github.com/vvka-141/sampleorg/internal/tree"
	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

var treeCmd = &cobra.Command{
	Use:   "tree --source <dir>",
	Short: "Print a sample library's folder tree",
	Long: `Tree prints the directory tree under the source directory.

Modes:
  (default)          source path, then the tree
  --folders-only     the tree without files
  --list-categories  per-category sample counts from the config file
  --discover         filename patterns shared by samples in each folder

--discover takes precedence over --list-categories.

Examples:
  sampleorg tree -s ./library --folders-only
  sampleorg tree -s ./library --list-categories -c config.toml
  sampleorg tree -s ./library --discover`,
	Args: NoPositionalArgs,
	RunE: runTree,
}

type treeFlagValues struct {
	source         string
	config         string
	foldersOnly    bool
	listCategories bool
	discover       bool
}

var treeFlags treeFlagValues

func resetTreeFlags() {
	treeFlags = treeFlagValues{}
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringVarP(&treeFlags.source, "source", "s", "", "Directory to print")
	treeCmd.Flags().StringVarP(&treeFlags.config, "config", "c", "", "Category config file for --list-categories (default $SAMPLEORG_CONFIG or config.toml)")
	treeCmd.Flags().BoolVar(&treeFlags.foldersOnly, "folders-only", false, "Print folders only")
	treeCmd.Flags().BoolVar(&treeFlags.listCategories, "list-categories", false, "List matched categories with sample counts")
	treeCmd.Flags().BoolVar(&treeFlags.discover, "discover", false, "Discover filename patterns in each folder")
	treeCmd.Flags().BoolVar(&treeFlags.discover, "run-discover", false, "Alias for --discover")
	_ = treeCmd.Flags().MarkHidden("run-discover")

	_ = treeCmd.RegisterFlagCompletionFunc("source", completeDirectories)
	_ = treeCmd.RegisterFlagCompletionFunc("config", completeConfigFiles)
}

func runTree(cmd *cobra.Command, args []string) error {
	if err := requireFlag(cmd, "source", treeFlags.source); err != nil {
		return err
	}
	if err := requireDirectory(treeFlags.source); err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	switch {
	case treeFlags.discover:
		return runDiscover(cmd, logger)
	case treeFlags.listCategories:
		return runListCategories(cmd, logger)
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, treeFlags.source); err != nil {
		return fmt.Errorf("%w: %w", sampleorg.ErrWriteFailed, err)
	}
	if err := tree.PrintTree(out, filesystem.NewOSFileSystem(), treeFlags.source, "", treeFlags.foldersOnly); err != nil {
		return fmt.Errorf("%w: %w", sampleorg.ErrWriteFailed, err)
	}
	return nil
}

// runDiscover prints the pattern report. The config file is only read when
// --config is given, to pick up a custom extension.
func runDiscover(cmd *cobra.Command, logger sampleorg.Logger) error {
	sampleScanner := scanner.NewScanner(logger)
	if treeFlags.config != "" {
		cfg, _, err := loadCategories(treeFlags.config, logger)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		sampleScanner = sampleScanner.WithExtension(cfg.Extension)
	}

	folders, err := sampleScanner.ScanFolders(treeFlags.source)
	if err != nil {
		return err
	}
	return discover.NewReporter(logger).Write(cmd.OutOrStdout(), folders)
}

func runListCategories(cmd *cobra.Command, logger sampleorg.Logger) error {
	cfg, categorizer, err := loadCategories(resolveConfigPath(treeFlags.config), logger)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	sampleScanner := scanner.NewScanner(logger).WithExtension(cfg.Extension)
	counts, err := services.NewOrganizerService(sampleScanner, categorizer, logger).CategoryCounts(treeFlags.source)
	if err != nil {
		return err
	}

	if err := writeCategoryCounts(cmd.OutOrStdout(), counts); err != nil {
		return fmt.Errorf("%w: %w", sampleorg.ErrWriteFailed, err)
	}
	return nil
}

func writeCategoryCounts(w io.Writer, counts []sampleorg.CategoryCount) error {
	if len(counts) == 0 {
		_, err := fmt.Fprintln(w, "No matching samples found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Matched sample categories:"); err != nil {
		return err
	}
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "- %s: %d\n", c.Category, c.Count); err != nil {
			return err
		}
	}
	return nil
}
