package main

import (
	"os"

	"github.com/san-kum/cordic/internal/config"
	"github.com/spf13/cobra"
)

var (
	dataDir   string
	logLevel  string
	logFormat string

	angle      float64
	repr       string
	iterations int
	fracBits   uint
	angleBits  uint
	validate   bool
	showTrace  bool
	configFile string
	preset     string
	save       bool

	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	csvPath    string

	minIter  int
	maxIter  int
	iterStep int

	benchOps int
)

// A bare negative angle parses as a flag, hence the -- in the examples.
const (
	runExample = `  cordic run 0.5
  cordic run --repr fixed -- -0.5
  cordic run --angle=-0.5`

	compareExample = `  cordic compare 1.2
  cordic compare -- -1.2`
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags. The root command runs the
// demo when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cordic",
		Short: "CORDIC sine/cosine lab",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), logLevel, logFormat)
		},
		RunE: runDemo,
	}
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cordic", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	runCmd := &cobra.Command{
		Use:     "run [angle]",
		Short:   "rotate one angle and print the trace",
		Long:    "Rotate one angle and print the trace. Negative angles must follow -- or be given with --angle.",
		Example: runExample,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRotation,
	}
	addRotationFlags(runCmd)
	runCmd.Flags().BoolVar(&showTrace, "trace", true, "print the per-iteration state")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&save, "save", false, "store the run under the data directory")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "rotate 1 rad through the float and fixed pipelines",
		RunE:  runDemo,
	}

	compareCmd := &cobra.Command{
		Use:     "compare [angle]",
		Short:   "compare every representation on one angle",
		Long:    "Compare every representation on one angle. Negative angles must follow -- or be given with --angle.",
		Example: compareExample,
		Args:    cobra.MaximumNArgs(1),
		RunE:    compareRepresentations,
	}
	addRotationFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "error sweep over an angle range",
		RunE:  runSweep,
	}
	addRotationFlags(sweepCmd)
	addRangeFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "write samples to a CSV file (- for stdout)")

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "maximum error as a function of iteration count",
		RunE:  runConverge,
	}
	addRotationFlags(convergeCmd)
	addRangeFlags(convergeCmd)
	convergeCmd.Flags().IntVar(&minIter, "min", 2, "smallest iteration count")
	convergeCmd.Flags().IntVar(&maxIter, "max", 24, "largest iteration count")
	convergeCmd.Flags().IntVar(&iterStep, "step", 2, "iteration count increment")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark every representation",
		RunE:  benchRepresentations,
	}
	benchCmd.Flags().IntVar(&benchOps, "ops", 200000, "rotations per measurement")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive angle explorer",
		RunE:  runExplore,
	}
	addRotationFlags(exploreCmd)

	rootCmd.AddCommand(runCmd, demoCmd, compareCmd, sweepCmd, convergeCmd, benchCmd,
		listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd, exploreCmd)

	return rootCmd
}

func addRotationFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&angle, "angle", config.DefaultAngle, "angle in radians")
	cmd.Flags().StringVar(&repr, "repr", config.DefaultRepresentation, "representation (float, signmag, fixed)")
	cmd.Flags().IntVar(&iterations, "iterations", 10, "rotation steps")
	cmd.Flags().UintVar(&fracBits, "frac-bits", 62, "fixed-point fraction bits of x and y")
	cmd.Flags().UintVar(&angleBits, "angle-bits", 60, "fixed-point fraction bits of z")
	cmd.Flags().BoolVar(&validate, "validate", false, "reject angles beyond the convergence range")
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&sweepFrom, "from", config.DefaultSweepFrom, "first angle")
	cmd.Flags().Float64Var(&sweepTo, "to", config.DefaultSweepTo, "last angle")
	cmd.Flags().IntVar(&sweepSteps, "steps", config.DefaultSweepSteps, "number of angles")
}
