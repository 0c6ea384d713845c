package main

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/cordic/internal/config"
	"github.com/san-kum/cordic/internal/cordic"
	"github.com/san-kum/cordic/internal/experiment"
	"github.com/san-kum/cordic/internal/storage"
	"github.com/san-kum/cordic/internal/trace"
	"github.com/spf13/cobra"
)

// resolveConfig layers defaults, preset, config file, changed flags and the
// positional angle, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("angle") {
		cfg.Angle = angle
	}
	if flags.Changed("repr") {
		cfg.Representation = repr
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("frac-bits") {
		cfg.FracBits = fracBits
	}
	if flags.Changed("angle-bits") {
		cfg.AngleBits = angleBits
	}
	if flags.Changed("validate") {
		cfg.ValidateRange = validate
	}
	if flags.Changed("trace") {
		cfg.Trace = showTrace
	}
	if flags.Changed("from") {
		cfg.Sweep.From = sweepFrom
	}
	if flags.Changed("to") {
		cfg.Sweep.To = sweepTo
	}
	if flags.Changed("steps") {
		cfg.Sweep.Steps = sweepSteps
	}

	if len(args) == 1 {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid angle %q: %w", args[0], err)
		}
		cfg.Angle = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRotation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := trace.NewPrinter(out)
	observers := []cordic.Observer{trace.NewLogObserver(slog.Default())}
	if cfg.Trace {
		observers = append(observers, printer)
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(experiment.NewRegistry(), observers...); err != nil {
		return err
	}

	slog.Debug("rotating", "angle", cfg.Angle, "representation", cfg.Representation, "iterations", cfg.Iterations)
	run, err := exp.Run()
	if err != nil {
		return fmt.Errorf("rotating %g: %w", cfg.Angle, err)
	}
	printer.Summary(run.Result)

	if !save {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(run.Result, cfg.CordicConfig(), run.Steps)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	slog.Info("saved run", "id", runID, "dir", dataDir)
	fmt.Fprintf(out, "run id: %s\n", runID)
	return nil
}

// runDemo rotates 1 rad through the float pipeline with its trace, then
// through the fixed pipeline without one.
func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, r := range []cordic.Representation{cordic.Float, cordic.Fixed} {
		p, err := cordic.New(r, cordic.DefaultConfig())
		if err != nil {
			return err
		}

		printer := trace.NewPrinter(out)
		if r == cordic.Float {
			p.AddObserver(printer)
		}
		p.AddObserver(trace.NewLogObserver(slog.Default()))

		res, err := p.Rotate(config.DefaultAngle)
		if err != nil {
			return err
		}
		printer.Summary(res)
	}
	return nil
}

func compareRepresentations(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	table, err := cordic.NewTable(cfg.Iterations)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "angle %g, %d iterations, bound %.3e\n\n", cfg.Angle, cfg.Iterations, table.Smallest())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REPR\tSIN\tCOS\tRESIDUAL\tSIN ERR\tCOS ERR")

	registry := experiment.NewRegistry()
	for _, r := range cordic.Representations() {
		p, err := registry.GetPipeline(string(r), cfg.CordicConfig())
		if err != nil {
			return err
		}
		res, err := p.Rotate(cfg.Angle)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", r, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%+.12f\t%+.12f\t%+.3e\t%.3e\t%.3e\n",
			r, res.Sin, res.Cos, res.Residual,
			math.Abs(res.Sin-math.Sin(cfg.Angle)), math.Abs(res.Cos-math.Cos(cfg.Angle)))
	}
	fmt.Fprintf(w, "math\t%+.12f\t%+.12f\t\t\t\n", math.Sin(cfg.Angle), math.Cos(cfg.Angle))

	return w.Flush()
}
