// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/guasti/analyzer"
	"github.com/katalvlaran/guasti/divisor"
	"github.com/katalvlaran/guasti/grid"
	"github.com/katalvlaran/guasti/palimpsest"
	"github.com/katalvlaran/guasti/report"
	"github.com/katalvlaran/guasti/signature"
)

// DefaultTwinLimit is the twin-prime search limit of the twins command.
const DefaultTwinLimit = 110

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [N]",
		Short: "Verify the closed forms hidden in every palimpsest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.Bound
			if len(args) == 1 {
				v, err := intArg(args, 0, "N")
				if err != nil {
					return err
				}
				n = v
			}
			rep, err := analyzer.Analyze(n, analyzer.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if !rep.Verified() {
				a.logger.Warn("closed-form mismatch", zap.Int("bound", n), zap.Strings("failed", rep.Failed()))
			}

			return report.Write(cmd.OutOrStdout(), rep, a.cfg.OutputFormat())
		},
	}
}

func newSweepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep N [N...]",
		Short: "Analyze several bounds concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds := make([]int, len(args))
			for i := range args {
				v, err := intArg(args, i, "N")
				if err != nil {
					return err
				}
				bounds[i] = v
			}
			reps, err := analyzer.Sweep(cmd.Context(), bounds,
				analyzer.WithLogger(a.logger),
				analyzer.WithConcurrency(a.cfg.Concurrency),
			)
			if err != nil {
				return err
			}

			return report.WriteSweep(cmd.OutOrStdout(), reps, a.cfg.OutputFormat())
		},
	}
}

func newSignatureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "signature n [n...]",
		Short: "Print the angular signature of each integer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := range args {
				n, err := intArg(args, i, "n")
				if err != nil {
					return err
				}
				prof := signature.Describe(n, a.cfg.SignatureOptions()...)
				if err = report.WriteSignature(cmd.OutOrStdout(), prof, a.cfg.OutputFormat()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newDivisorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "divisors n",
		Short: "List the divisors of n and its divisor pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg(args, 0, "n")
			if err != nil {
				return err
			}

			return report.WriteDivisors(cmd.OutOrStdout(), n, divisor.Divisors(n), divisor.Pairs(n), a.cfg.OutputFormat())
		},
	}
}

func newColumnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "column n",
		Short: "Scan column n of the divisibility grid (n must not exceed --bound)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg(args, 0, "n")
			if err != nil {
				return err
			}
			g, err := grid.NewDivisibility(a.cfg.Bound)
			if err != nil {
				return err
			}
			prof, err := analyzer.Column(g, n)
			if err != nil {
				return err
			}

			return report.WriteColumn(cmd.OutOrStdout(), prof, a.cfg.OutputFormat())
		},
	}
}

func newTwinsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "twins [limit]",
		Short: "Show twin-prime angles converging toward 45°",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := DefaultTwinLimit
			if len(args) == 1 {
				v, err := intArg(args, 0, "limit")
				if err != nil {
					return err
				}
				limit = v
			}
			sum, err := signature.Convergence(signature.TwinPrimes(limit))
			if err != nil {
				return fmt.Errorf("twins up to %d: %w", limit, err)
			}

			return report.WriteTwins(cmd.OutOrStdout(), sum, a.cfg.OutputFormat())
		},
	}
}

// Grid styles of the grid command.
const (
	styleHeatmap = "heatmap"
	styleMatrix  = "matrix"
)

func newGridCmd(a *app) *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "grid [g|p|kind]",
		Short: "Print G, P or one palimpsest for the configured bound",
		Long: "grid prints the divisibility grid (g), the multiplication grid (p) or one\n" +
			"palimpsest kind (" + strings.Join(kindNames(), ", ") + ").\n" +
			"The heatmap style masks inactive cells with '.'.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "g"
			if len(args) == 1 {
				name = args[0]
			}
			g, err := buildNamed(name, a.cfg.Bound)
			if err != nil {
				return err
			}
			switch style {
			case styleHeatmap:
				return report.WriteHeatmap(cmd.OutOrStdout(), g)
			case styleMatrix:
				return report.WriteMatrix(cmd.OutOrStdout(), g)
			default:
				return fmt.Errorf("unknown style %q (want %s or %s)", style, styleHeatmap, styleMatrix)
			}
		},
	}
	cmd.Flags().StringVar(&style, "style", styleHeatmap, "heatmap or matrix")

	return cmd
}

// buildNamed builds G, P or a palimpsest for bound n.
func buildNamed(name string, n int) (*grid.Grid, error) {
	switch strings.ToLower(name) {
	case "g", "divisibility":
		return grid.NewDivisibility(n)
	case "p", "multiplication":
		return grid.NewMultiplication(n)
	}
	k, err := palimpsest.ParseKind(name)
	if err != nil {
		return nil, err
	}

	return palimpsest.Build(k, n)
}

func kindNames() []string {
	kinds := palimpsest.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}

	return out
}
