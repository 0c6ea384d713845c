package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cordic/internal/analysis"
	"github.com/san-kum/cordic/internal/cordic"
)

const (
	plotHeight = 10
	plotWidth  = 60
)

// TraceTable renders one row per iteration.
func TraceTable(steps []cordic.Step) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%3s  %14s  %14s  %14s", "i", "x", "y", "z")))
	b.WriteString("\n")
	for _, s := range steps {
		fmt.Fprintf(&b, "%3d  %+14.9f  %+14.9f  %+14.9f\n", s.I, s.X, s.Y, s.Z)
	}
	return b.String()
}

// ResultPanel renders a result next to the math package reference values.
func ResultPanel(res cordic.Result, bound float64) string {
	sinErr := math.Abs(res.Sin - math.Sin(res.Angle))
	cosErr := math.Abs(res.Cos - math.Cos(res.Angle))

	rows := []string{
		Title.Render(fmt.Sprintf("%s · %d iterations", res.Representation, res.Iterations)),
		MetricLabel.Render("angle") + MetricValue.Render(fmt.Sprintf("%+.9f", res.Angle)),
		MetricLabel.Render("sin") + MetricValue.Render(fmt.Sprintf("%+.9f", res.Sin)) +
			"  err " + ErrorStyle(sinErr, bound).Render(fmt.Sprintf("%.2e", sinErr)),
		MetricLabel.Render("cos") + MetricValue.Render(fmt.Sprintf("%+.9f", res.Cos)) +
			"  err " + ErrorStyle(cosErr, bound).Render(fmt.Sprintf("%.2e", cosErr)),
		MetricLabel.Render("residual") + MetricValue.Render(fmt.Sprintf("%+.3e", res.Residual)),
		MetricLabel.Render("bound") + Subtle.Render(fmt.Sprintf("%.3e", bound)),
	}
	return Panel.Render(strings.Join(rows, "\n"))
}

// ResidualPlot charts |z| after each iteration.
func ResidualPlot(steps []cordic.Step) string {
	if len(steps) == 0 {
		return ""
	}
	data := make([]float64, len(steps))
	for i, s := range steps {
		data[i] = math.Abs(s.Z)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("residual |z| per iteration"),
	)
}

// ErrorPlot charts the sine and cosine errors of a sweep.
func ErrorPlot(samples []analysis.Sample) string {
	if len(samples) == 0 {
		return ""
	}
	sinErr := make([]float64, len(samples))
	cosErr := make([]float64, len(samples))
	for i, s := range samples {
		sinErr[i] = s.SinErr
		cosErr[i] = s.CosErr
	}
	return asciigraph.PlotMany([][]float64{sinErr, cosErr},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.Caption(fmt.Sprintf("|sin err| (cyan), |cos err| (magenta) over [%.3f, %.3f]",
			samples[0].Angle, samples[len(samples)-1].Angle)),
	)
}

// LevelsPlot charts log10 of the maximum error per iteration count.
func LevelsPlot(levels []analysis.Level) string {
	if len(levels) == 0 {
		return ""
	}
	data := make([]float64, len(levels))
	for i, l := range levels {
		data[i] = math.Log10(math.Max(l.Stats.MaxErr(), 1e-300))
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Caption(fmt.Sprintf("log10 max error, n = %d..%d",
			levels[0].Iterations, levels[len(levels)-1].Iterations)),
	)
}

// LevelsTable lists the bound and measured errors per iteration count.
func LevelsTable(levels []analysis.Level) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%4s  %12s  %12s  %12s  %12s", "n", "bound", "max err", "rms sin", "max |z|")))
	b.WriteString("\n")
	for _, l := range levels {
		fmt.Fprintf(&b, "%4d  %12.3e  %s  %12.3e  %12.3e\n",
			l.Iterations, l.Bound,
			ErrorStyle(l.Stats.MaxErr(), l.Bound).Render(fmt.Sprintf("%12.3e", l.Stats.MaxErr())),
			l.Stats.RMSSinErr, l.Stats.MaxResidual)
	}
	return b.String()
}
