// Package trace collects and reports the per-iteration rotation state.
package trace

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/san-kum/cordic/internal/cordic"
)

// Recorder keeps every step it observes.
type Recorder struct {
	steps []cordic.Step
}

func NewRecorder() *Recorder {
	return &Recorder{steps: make([]cordic.Step, 0, cordic.DefaultIterations)}
}

func (r *Recorder) OnStep(s cordic.Step) {
	r.steps = append(r.steps, s)
}

func (r *Recorder) Steps() []cordic.Step {
	out := make([]cordic.Step, len(r.steps))
	copy(out, r.steps)
	return out
}

func (r *Recorder) Reset() {
	r.steps = r.steps[:0]
}

// LogObserver writes each step as a structured debug record.
type LogObserver struct {
	logger *slog.Logger
	level  slog.Level
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy that logs at level instead of debug.
func (l *LogObserver) WithLevel(level slog.Level) *LogObserver {
	return &LogObserver{logger: l.logger, level: level}
}

func (l *LogObserver) OnStep(s cordic.Step) {
	l.logger.LogAttrs(context.Background(), l.level, "rotation step", slog.Any("step", s))
}

// Printer writes the plain text trace: one line per step, then a summary.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) OnStep(s cordic.Step) {
	fmt.Fprintln(p.w, s.String())
}

// Summary prints the desired angle, the residual and both estimates.
func (p *Printer) Summary(res cordic.Result) {
	fmt.Fprintf(p.w, "Desired angle %v, approximation error %v\n", res.Angle, res.Residual)
	fmt.Fprintf(p.w, "sin(%v) = %v\n", res.Angle, res.Sin)
	fmt.Fprintf(p.w, "cos(%v) = %v\n", res.Angle, res.Cos)
}

// Multi fans a step out to several observers.
type Multi []cordic.Observer

func (m Multi) OnStep(s cordic.Step) {
	for _, o := range m {
		if o != nil {
			o.OnStep(s)
		}
	}
}
