// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/arcalc/algebra"
	"github.com/katalvlaran/arcalc/script"
)

// app holds the global flags and the state built from them before every
// subcommand runs.
type app struct {
	out, errOut io.Writer

	verbose    bool
	configPath string
	metric     string
	allowed    string
	division   string

	log *zap.Logger
	cfg *algebra.Config
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "arcalc",
		Short: "Calculator for the 16-blade algebra of αp and the generators 0123",
		Long: `arcalc evaluates expressions over signed basis blades ("alphas").

The algebra is fixed by an allowed ordering of the 16 blade labels, a metric
of four signs and a division convention. Each can come from a YAML settings
file (--config) and be overridden by flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML settings file (allowed, metric, division)")
	pf.StringVar(&a.metric, "metric", "", `Metric, e.g. "+---"`)
	pf.StringVar(&a.allowed, "allowed", "", "Allowed ordering, comma or space separated")
	pf.StringVar(&a.division, "division", "", `Division convention, "by" or "into"`)

	root.AddCommand(
		a.evalCmd(),
		a.runCmd(),
		a.cayleyCmd(),
		a.decomposeCmd(),
		a.infoCmd(),
	)

	return root
}

// setup builds the logger and the algebra configuration.
func (a *app) setup(*cobra.Command, []string) error {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = log

	s, err := loadSettings(a.configPath)
	if err != nil {
		return err
	}
	if a.metric != "" {
		s.Metric = a.metric
	}
	if a.allowed != "" {
		s.Allowed = splitLabels(a.allowed)
	}
	if a.division != "" {
		s.Division = a.division
	}
	if a.cfg, err = s.config(); err != nil {
		return err
	}
	a.log.Debug("configuration", zap.Stringer("config", a.cfg))

	return nil
}

// formatFlags registers --tex, --simplified and --factored on cmd.
func formatFlags(cmd *cobra.Command) func() script.Format {
	var tex, simplified, factored bool
	cmd.Flags().BoolVar(&tex, "tex", false, "Print LaTeX")
	cmd.Flags().BoolVar(&simplified, "simplified", false, "Cancel terms before printing")
	cmd.Flags().BoolVar(&factored, "factored", false, "Group terms by alpha")

	return func() script.Format {
		f := script.Plain
		if tex {
			f |= script.Tex
		}
		if simplified {
			f |= script.Simplified
		}
		if factored {
			f |= script.Factored
		}
		return f
	}
}
