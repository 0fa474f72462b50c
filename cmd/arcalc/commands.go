// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/arcalc/cayley"
	"github.com/katalvlaran/arcalc/eval"
	"github.com/katalvlaran/arcalc/script"
)

func (a *app) evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate expressions",
		Long: `Evaluates each argument independently and prints "EXPR = value".

Example:
  arcalc eval 'a1 ^ a2' '[a1, a2]' 'd F'`,
		Args: cobra.MinimumNArgs(1),
	}
	format := formatFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx, err := eval.NewContext(a.cfg, eval.WithLogger(a.log))
		if err != nil {
			return err
		}
		failed := 0
		for _, r := range ctx.EvalAll(args) {
			if r.Err != nil {
				failed++
				fmt.Fprintf(a.errOut, "%s: %v\n", r.Text, r.Err)
				continue
			}
			printLabelled(a.out, r.Text, format().Render(r.Value))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d expressions failed", failed, len(args))
		}
		return nil
	}

	return cmd
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a calculation script (- reads stdin)",
		Long: `Runs a line-oriented calculation script:

  // ALLOWED: p 23 31 12 0 023 031 012 123 1 2 3 0123 01 02 03
  // METRIC: +---

  # Define a multivector
  odd = {1, 2, 3, 023, 031, 012}

  # Compute FDF
  DF = Dmu ^ F
  FDF = F ^ DF

Lines beginning "//" set parameters or modify the next line's output,
lines beginning "#" are printed as given, and every assignment is
computed and displayed.`,
		Args: cobra.ExactArgs(1),
	}
	format := formatFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		r := script.NewRunner(
			script.WithLogger(a.log),
			script.WithDefaults(a.cfg),
			script.WithFormat(format()),
		)
		lines, err := r.Run(cmd.Context(), in)
		for _, l := range lines {
			fmt.Fprintln(a.out, l)
		}
		if err != nil {
			errs := multierr.Errors(err)
			a.log.Warn("script finished with errors", zap.String("file", args[0]), zap.Int("errors", len(errs)))
			return fmt.Errorf("%s: %d line(s) failed: %w", args[0], len(errs), errs[0])
		}
		return nil
	}

	return cmd
}

func (a *app) cayleyCmd() *cobra.Command {
	var (
		opName      string
		signs, dist bool
		color       bool
		workers     int
	)
	cmd := &cobra.Command{
		Use:   "cayley",
		Short: "Print the 16×16 table of an operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, err := cayley.OperatorNamed(opName)
			if err != nil {
				return err
			}
			tbl, err := cayley.Build(cmd.Context(), a.cfg, op, cayley.WithWorkers(workers))
			if err != nil {
				return err
			}

			var text string
			switch {
			case dist:
				text = tbl.SignDistribution()
			case color:
				text = tbl.Render(cayley.DefaultTheme(), signs)
			case signs:
				text = tbl.SignString()
			default:
				text = tbl.String()
			}
			fmt.Fprintln(a.out, text)
			a.log.Debug("cayley table", zap.String("op", opName), zap.Int("negative", tbl.NegativeCount()))
			return nil
		},
	}
	cmd.Flags().StringVar(&opName, "op", "full", "Operator: "+strings.Join(cayley.OperatorNames(), ", "))
	cmd.Flags().BoolVar(&signs, "signs", false, "Print signs instead of values")
	cmd.Flags().BoolVar(&dist, "distribution", false, "Print the five 4×4 sign blocks")
	cmd.Flags().BoolVar(&color, "color", false, "Style the output for a terminal")
	cmd.Flags().IntVar(&workers, "workers", 0, "Rows computed concurrently (default GOMAXPROCS)")

	return cmd
}

func (a *app) decomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose B|T|A|E",
		Short: "Express the other zets through one base zet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := eval.NewContext(a.cfg, eval.WithLogger(a.log))
			if err != nil {
				return err
			}
			lines, err := ctx.Decompose(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, strings.Join(lines, "\n"))
			return nil
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the configuration and the standard names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := eval.NewContext(a.cfg, eval.WithLogger(a.log))
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, a.cfg.Details())
			fmt.Fprintln(a.out, "Names:          "+strings.Join(ctx.Names(), " "))
			return nil
		},
	}
}

// printLabelled writes "label = " before the first line of rendered.
func printLabelled(w io.Writer, label, rendered string) {
	lines := strings.Split(rendered, "\n")
	lines[0] = label + " = " + lines[0]
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}
