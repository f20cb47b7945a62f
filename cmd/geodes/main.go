// Command geodes evaluates robot-factory blueprints and prints the quality
// level and geode product for the configured time limit.
//
// Usage:
//
//	geodes [-p] [--time-limit N] [--blueprint-limit N] [--beam-width K]
//	geodes --input blueprints.txt.zst --time-limit 32 --blueprint-limit 3
//	geodes blueprints [-p]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/geodeforge/config"
	"github.com/katalvlaran/geodeforge/evaluate"
	"github.com/katalvlaran/geodeforge/input"
	"github.com/katalvlaran/geodeforge/logging"
	"github.com/katalvlaran/geodeforge/resource"
)

// app holds flag values and the state built in PersistentPreRunE.
type app struct {
	puzzle     bool
	inputPath  string
	configPath string
	verbose    bool
	logFormat  string

	flags config.Config // flag-bound values, applied only when changed

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{flags: config.Default()}

	root := &cobra.Command{
		Use:   "geodes",
		Short: "Maximise geodes cracked by a robot factory, one blueprint at a time",
		Long: `geodes runs a beam search over robot build orders for every blueprint
and reports the summed quality level (id x geodes) and the product of geode
counts over the evaluated blueprints.

Settings come from built-in defaults, then --config FILE, then any flag set
explicitly on the command line.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.run,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.puzzle, "puzzle-input", "p", false, "Use the embedded puzzle input instead of the sample")
	pf.StringVar(&a.inputPath, "input", "", "Read blueprints from FILE (plain text or .zst)")
	pf.StringVar(&a.configPath, "config", "", "YAML config FILE")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging (one line per tick)")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: auto, console or json")

	f := root.Flags()
	f.IntVar(&a.flags.TimeLimit, "time-limit", a.flags.TimeLimit, "Ticks to simulate")
	f.IntVar(&a.flags.BlueprintLimit, "blueprint-limit", a.flags.BlueprintLimit, "Evaluate at most N blueprints, in input order")
	f.IntVar(&a.flags.BeamWidth, "beam-width", a.flags.BeamWidth, "States kept per robot fleet each tick (0 disables pruning)")
	f.IntVar(&a.flags.Workers, "workers", a.flags.Workers, "Expansion workers per search (0 = GOMAXPROCS)")
	f.IntVar(&a.flags.BlueprintWorkers, "blueprint-workers", a.flags.BlueprintWorkers, "Blueprints searched concurrently")
	f.BoolVar(&a.flags.UpperBound, "upper-bound", a.flags.UpperBound, "Drop states whose geode bound cannot beat the incumbent")
	f.BoolVar(&a.flags.RobotCaps, "robot-caps", a.flags.RobotCaps, "Stop building a robot kind once it covers the largest recipe")

	root.AddCommand(newBlueprintsCmd(a))

	return root
}

func newBlueprintsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blueprints",
		Short: "Print the parsed blueprints and their largest per-tick spend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bps, err := input.Load(a.inputPath, a.puzzle)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := range bps {
				bp := &bps[i]
				fmt.Fprintln(out, bp.String())
				fmt.Fprintf(out, "  max spend: ore=%d clay=%d obsidian=%d\n",
					bp.MaxSpend(resource.Ore), bp.MaxSpend(resource.Clay), bp.MaxSpend(resource.Obsidian))
			}

			return nil
		},
	}
}

// setup resolves the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	a.overlay(cmd, &cfg)
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))

	return nil
}

// overlay copies every search flag the user set explicitly onto cfg.
func (a *app) overlay(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("time-limit") {
		cfg.TimeLimit = a.flags.TimeLimit
	}
	if f.Changed("blueprint-limit") {
		cfg.BlueprintLimit = a.flags.BlueprintLimit
	}
	if f.Changed("beam-width") {
		cfg.BeamWidth = a.flags.BeamWidth
	}
	if f.Changed("workers") {
		cfg.Workers = a.flags.Workers
	}
	if f.Changed("blueprint-workers") {
		cfg.BlueprintWorkers = a.flags.BlueprintWorkers
	}
	if f.Changed("upper-bound") {
		cfg.UpperBound = a.flags.UpperBound
	}
	if f.Changed("robot-caps") {
		cfg.RobotCaps = a.flags.RobotCaps
	}
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	bps, err := input.Load(a.inputPath, a.puzzle)
	if err != nil {
		return err
	}
	a.logger.Info("blueprints loaded",
		zap.Int("count", len(bps)),
		zap.Int("time_limit", a.cfg.TimeLimit),
		zap.Int("beam_width", a.cfg.BeamWidth),
	)

	report, err := evaluate.Run(cmd.Context(), bps, a.cfg.Evaluate(), a.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "quality_level = %d\n", report.QualityLevel)
	fmt.Fprintf(out, "total = %d\n", report.GeodeProduct)

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
