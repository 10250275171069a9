package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lintwire/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lintwire",
	Short: "Lint driver and snapshot tooling",
	Long:  `lintwire runs lint passes over AST snapshots exported by a host compiler`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(lintsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to lintwire.toml")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per snapshot")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the output terminal and
// configures the global color state to match.
func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	var on bool
	switch mode {
	case "on":
		on = true
	case "off":
		on = false
	default:
		on = isTerminal(os.Stdout)
	}
	color.NoColor = !on
	return on
}
