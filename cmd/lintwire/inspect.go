package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lintwire/internal/snapshot"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot>",
	Short: "Summarize the contents of an AST snapshot",
	Args:  cobra.ExactArgs(1),

	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, p, err := snapshot.Load(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "schema:    %d\n", p.Schema)
		fmt.Fprintf(out, "toolchain: %s\n", orDash(p.Toolchain))
		fmt.Fprintf(out, "files:     %d\n", len(p.Files))
		fmt.Fprintf(out, "symbols:   %d\n", len(p.Symbols))
		fmt.Fprintf(out, "spans:     %d\n", len(p.Spans))
		fmt.Fprintf(out, "items:     %d (%d top-level)\n", len(p.Items), len(st.TopItems()))
		fmt.Fprintf(out, "bodies:    %d\n", len(p.Bodies))
		fmt.Fprintf(out, "exprs:     %d\n", len(p.Exprs))
		fmt.Fprintf(out, "ty paths:  %d\n", len(p.TyPaths))
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
