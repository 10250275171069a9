package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lintwire/driver"
	"lintwire/internal/version"
)

var versionFull bool

func init() {
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "show every recorded bit of build metadata")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show lintwire build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "lintwire %s (api %s, toolchain %s)\n",
			valueOrUnknown(version.Version), driver.APIVersion, version.Toolchain)
		if versionFull {
			fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
			fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
		}
		return nil
	},
}

func valueOrUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
