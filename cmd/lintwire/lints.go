package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var lintsCmd = &cobra.Command{
	Use:   "lints",
	Short: "List the built-in lints",
	RunE: func(cmd *cobra.Command, args []string) error {
		colored := useColor(cmd)
		nameStyle := lipgloss.NewStyle().Bold(true)
		for _, l := range allPasses().Lints() {
			name := l.Name
			if colored {
				name = nameStyle.Render(name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n    %s\n", name, l.DefaultLevel, l.Description)
		}
		return nil
	},
}
