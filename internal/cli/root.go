// SPDX-License-Identifier: MIT

// Package cli implements the guasti command tree.
//
// Settings come from GUASTI_* environment variables (internal/config) and are
// overridden by any flag given explicitly on the command line.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/guasti/extension"
	"github.com/katalvlaran/guasti/internal/config"
	"github.com/katalvlaran/guasti/internal/logging"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// rootFlags mirrors the persistent flags. Values only apply when the flag was
// set explicitly.
type rootFlags struct {
	bound        int
	unit         string
	tolerance    float64
	format       string
	concurrency  int
	extensionDir string
	logLevel     string
	logDev       bool
}

// app carries the resolved configuration and logger into every subcommand.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the guasti command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}
	a := &app{cfg: config.Default(), logger: logging.NewNop()}

	cmd := &cobra.Command{
		Use:   "guasti",
		Short: "Explore the Guasti divisibility grid and its palimpsests",
		Long: "guasti builds the divisibility grid G and the multiplication grid P,\n" +
			"overlays them into five palimpsests and checks the integer sequences\n" +
			"hidden on their diagonals. It also prints angular signatures, divisor\n" +
			"columns and the twin-prime convergence toward 45 degrees.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, flags)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	def := config.Default()
	pf := cmd.PersistentFlags()
	pf.IntVarP(&flags.bound, "bound", "n", def.Bound, "grid bound N (env GUASTI_BOUND)")
	pf.StringVar(&flags.unit, "unit", def.Unit, "angle unit: degrees or radians (env GUASTI_UNIT)")
	pf.Float64Var(&flags.tolerance, "tolerance", def.Tolerance, "45° band half-width (env GUASTI_TOLERANCE)")
	pf.StringVarP(&flags.format, "output", "o", def.Format, "output format: text, json, yaml (env GUASTI_FORMAT)")
	pf.IntVar(&flags.concurrency, "concurrency", def.Concurrency, "parallel analyses in sweep (env GUASTI_CONCURRENCY)")
	pf.StringVar(&flags.extensionDir, "extension-dir", "", "where to look for guasti-transform (env GUASTI_EXTENSION_DIR)")
	pf.StringVar(&flags.logLevel, "log-level", def.LogLevel, "log level: debug, info, warn, error (env GUASTI_LOG_LEVEL)")
	pf.BoolVar(&flags.logDev, "log-dev", false, "human-readable console logs (env GUASTI_LOG_DEV)")

	cmd.AddCommand(
		newAnalyzeCmd(a),
		newSweepCmd(a),
		newSignatureCmd(a),
		newDivisorsCmd(a),
		newColumnCmd(a),
		newTwinsCmd(a),
		newGridCmd(a),
	)

	return cmd
}

// init resolves env + flags into a validated Config, then builds the logger
// and probes for the companion module.
func (a *app) init(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("bound") {
		cfg.Bound = f.bound
	}
	if pf.Changed("unit") {
		cfg.Unit = f.unit
	}
	if pf.Changed("tolerance") {
		cfg.Tolerance = f.tolerance
	}
	if pf.Changed("output") {
		cfg.Format = f.format
	}
	if pf.Changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if pf.Changed("extension-dir") {
		cfg.ExtensionDir = f.extensionDir
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if pf.Changed("log-dev") {
		cfg.LogDev = f.logDev
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev})
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger.Named("guasti")

	a.probeExtension()
	a.logger.Debug("command starting",
		zap.String("command", cmd.CommandPath()),
		zap.Int("bound", cfg.Bound),
		zap.String("format", cfg.Format),
	)

	return nil
}

func (a *app) probeExtension() {
	var (
		path  string
		found bool
	)
	if a.cfg.ExtensionDir != "" {
		path, found = extension.Locate(a.cfg.ExtensionDir)
	} else {
		path, found = extension.Available()
	}
	if found {
		a.logger.Info("companion module detected", zap.String("path", path))
		return
	}
	a.logger.Debug("companion module not found", zap.String("name", extension.Name))
}

// intArg parses args[i] as an integer, naming the argument in the error.
func intArg(args []string, i int, name string) (int, error) {
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, args[i])
	}

	return v, nil
}
