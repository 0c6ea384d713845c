package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/cordic/internal/analysis"
	"github.com/san-kum/cordic/internal/cordic"
	"github.com/san-kum/cordic/internal/storage"
	"github.com/san-kum/cordic/internal/viz"
	"github.com/spf13/cobra"
)

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	r, err := cfg.Repr()
	if err != nil {
		return err
	}

	samples, err := analysis.Sweep(analysis.FactoryFor(r, cfg.CordicConfig()), cfg.Sweep.From, cfg.Sweep.To, cfg.Sweep.Steps)
	if err != nil {
		return err
	}

	if csvPath != "" {
		if err := writeSamples(cmd.OutOrStdout(), csvPath, samples); err != nil {
			return err
		}
		if csvPath == "-" {
			return nil
		}
	}

	table, err := cordic.NewTable(cfg.Iterations)
	if err != nil {
		return err
	}
	stats := analysis.Summarize(samples)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sweep: %s, %d iterations, %d angles in [%g, %g]\n\n",
		r, cfg.Iterations, stats.Samples, cfg.Sweep.From, cfg.Sweep.To)
	fmt.Fprintln(out, viz.ErrorPlot(samples))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "bound (θ_%d):   %.3e\n", cfg.Iterations-1, table.Smallest())
	fmt.Fprintf(out, "max sin error: %.3e\n", stats.MaxSinErr)
	fmt.Fprintf(out, "max cos error: %.3e\n", stats.MaxCosErr)
	fmt.Fprintf(out, "rms sin error: %.3e\n", stats.RMSSinErr)
	fmt.Fprintf(out, "max |z|:       %.3e\n", stats.MaxResidual)
	return nil
}

func writeSamples(stdout io.Writer, path string, samples []analysis.Sample) error {
	if path == "-" {
		return storage.WriteSamplesCSV(stdout, samples)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := storage.WriteSamplesCSV(f, samples); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func runConverge(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	r, err := cfg.Repr()
	if err != nil {
		return err
	}
	if iterStep < 1 || minIter < 1 || maxIter < minIter {
		return fmt.Errorf("invalid iteration range %d..%d step %d", minIter, maxIter, iterStep)
	}

	var ns []int
	for n := minIter; n <= maxIter; n += iterStep {
		ns = append(ns, n)
	}

	levels, err := analysis.Convergence(r, cfg.CordicConfig(), ns, cfg.Sweep.From, cfg.Sweep.To, cfg.Sweep.Steps)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "convergence: %s over [%g, %g]\n\n", r, cfg.Sweep.From, cfg.Sweep.To)
	fmt.Fprint(out, viz.LevelsTable(levels))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.LevelsPlot(levels))
	return nil
}

func benchRepresentations(cmd *cobra.Command, args []string) error {
	if benchOps < 1 {
		return fmt.Errorf("ops must be positive, got %d", benchOps)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %d rotations per run\n\n", benchOps)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REPR\tITERATIONS\tTIME\tNS/OP\tOPS/SEC")

	for _, r := range cordic.Representations() {
		for _, n := range []int{10, 20, 40} {
			cfg := cordic.DefaultConfig()
			cfg.Iterations = n
			p, err := cordic.New(r, cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			for i := 0; i < benchOps; i++ {
				theta := float64(i%1000)/1000*3 - 1.5
				if _, err := p.Rotate(theta); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%s\t%d\t%v\t%.1f\t%.0f\n", r, n, elapsed,
				float64(elapsed.Nanoseconds())/float64(benchOps),
				float64(benchOps)/elapsed.Seconds())
		}
	}

	return w.Flush()
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	r, err := cfg.Repr()
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewExplorer(cfg.Angle, r, cfg.CordicConfig()))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
