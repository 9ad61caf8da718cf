package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sampleorg/internal/tui"
)

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  NoPositionalArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersionInfo(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// printVersionInfo prints version information.
// Version string goes to w for pipeline consumption.
// Decorative content goes to stderr.
func printVersionInfo(w io.Writer) {
	fmt.Fprintf(w, "sampleorg %s (%s, %s) %s/%s\n", version, commit, date, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(os.Stderr, tui.Styled(tui.TitleStyle, "sampleorg")+" "+tui.Styled(tui.MutedStyle, "audio sample organizer"))
}
