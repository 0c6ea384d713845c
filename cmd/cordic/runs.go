package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cordic/internal/config"
	"github.com/san-kum/cordic/internal/storage"
	"github.com/san-kum/cordic/internal/viz"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREPR\tTIME\tANGLE\tN\tSIN\tCOS\tRESIDUAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%d\t%+.9f\t%+.9f\t%+.3e\n",
			run.ID,
			run.Representation,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Angle,
			run.Iterations,
			run.Sin,
			run.Cos,
			run.Residual,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	steps, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no trace to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "representation: %s\n", meta.Representation)
	fmt.Fprintf(out, "angle: %g\n\n", meta.Angle)

	series := []struct {
		caption string
		value   func(i int) float64
	}{
		{"x (unscaled cosine)", func(i int) float64 { return steps[i].X }},
		{"y (unscaled sine)", func(i int) float64 { return steps[i].Y }},
	}

	for _, s := range series {
		data := make([]float64, len(steps))
		for i := range steps {
			data[i] = s.value(i)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(s.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, viz.ResidualPlot(steps))

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(cmd.OutOrStdout(), args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	steps, err := storage.New(dataDir).LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no trace to export")
	}
	return storage.WriteTraceCSV(cmd.OutOrStdout(), steps)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tANGLE\tREPR\tN\tFRAC\tANGLE BITS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.6f\t%s\t%d\t%d\t%d\n", name, p.Angle, p.Representation, p.Iterations, p.FracBits, p.AngleBits)
	}
	return w.Flush()
}
