package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lintwire/adapter"
	"lintwire/driver"
	"lintwire/internal/diagfmt"
	"lintwire/internal/lintcfg"
	"lintwire/internal/memdriver"
	"lintwire/internal/snapshot"
	"lintwire/internal/version"
	"lintwire/lint"
	"lintwire/lints"
)

var checkShort bool

func init() {
	checkCmd.Flags().BoolVar(&checkShort, "short", false, "one line per diagnostic")
}

var checkCmd = &cobra.Command{
	Use:   "check <snapshot>...",
	Short: "Run lint passes over AST snapshots",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,

	SilenceUsage: true,
}

// allPasses is the built-in pass set. Out-of-tree passes link their own
// binary against the adapter.
func allPasses() *adapter.Runner {
	return adapter.NewRunner(
		lints.StaticNamePass{},
		lints.EmptyBlockPass{},
		lints.NegLiteralPass{},
	)
}

type loadedSnapshot struct {
	path    string
	store   *memdriver.Store
	payload *snapshot.Payload
}

func runCheck(cmd *cobra.Command, args []string) error {
	colored := useColor(cmd)
	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")

	levels, err := loadLevels(cmd)
	if err != nil {
		return err
	}

	// Snapshots decode in parallel; the analysis sessions below stay
	// strictly sequential because only one context can be active.
	loaded := make([]loadedSnapshot, len(args))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			st, p, err := snapshot.Load(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			loaded[i] = loadedSnapshot{path: path, store: st, payload: p}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	runner := allPasses()
	opts := diagfmt.DefaultOpts(os.Stdout)
	opts.Color = colored

	total := 0
	failed := false
	for _, snap := range loaded {
		if snap.payload.Toolchain != "" {
			host := driver.HostInfo(version.Toolchain)
			plugin := driver.Info{APIVersion: driver.APIVersion, ToolchainVersion: snap.payload.Toolchain}
			if err := driver.CheckCompat(host, plugin); err != nil {
				return fmt.Errorf("%s: %w", snap.path, err)
			}
		}

		st := snap.store
		st.SetMaxDiagnostics(maxDiags)
		for name, level := range levels {
			st.SetLintLevel(name, level)
		}

		cx, err := st.NewContext()
		if err != nil {
			return fmt.Errorf("%s: %w", snap.path, err)
		}
		runner.Run(cx, st.Crate())

		bag := st.Diags()
		bag.Sort()
		if checkShort {
			diagfmt.Short(cmd.OutOrStdout(), bag.Items())
		} else {
			diagfmt.Pretty(cmd.OutOrStdout(), bag.Items(), st.Files(), opts)
		}
		total += bag.Len()
		if bag.HasDeny() {
			failed = true
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), checkSummary(len(loaded), total, failed, colored))
	if failed {
		return fmt.Errorf("check failed: denied lints were reported")
	}
	return nil
}

func loadLevels(cmd *cobra.Command) (map[string]lint.Level, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		if _, err := os.Stat(lintcfg.DefaultFileName); err != nil {
			return nil, nil
		}
		path = lintcfg.DefaultFileName
	}
	cfg, err := lintcfg.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg.Levels()
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func checkSummary(snapshots, diags int, failed, colored bool) string {
	status := "ok"
	style := okStyle
	if failed {
		status = "failed"
		style = failStyle
	}
	if colored {
		status = style.Render(status)
	}
	return fmt.Sprintf("%s: %d snapshot(s), %d diagnostic(s)", status, snapshots, diags)
}
