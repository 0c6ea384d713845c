package viz

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/cordic/internal/analysis"
	"github.com/san-kum/cordic/internal/cordic"
)

func press(m Explorer, keys ...tea.KeyMsg) Explorer {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Explorer)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExplorerKeys(t *testing.T) {
	m := NewExplorer(1.0, cordic.Float, cordic.DefaultConfig())
	if m.Err() != nil {
		t.Fatalf("unexpected error: %v", m.Err())
	}
	if m.Result().Angle != 1.0 {
		t.Fatalf("expected angle 1, got %g", m.Result().Angle)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Result().Angle != 1.0625 {
		t.Errorf("expected angle 1.0625, got %g", m.Result().Angle)
	}

	m = press(m, runes("["), tea.KeyMsg{Type: tea.KeyLeft})
	if m.Result().Angle != 1.03125 {
		t.Errorf("expected angle 1.03125, got %g", m.Result().Angle)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if m.Result().Iterations != 12 {
		t.Errorf("expected 12 iterations, got %d", m.Result().Iterations)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Result().Representation != cordic.SignMagnitude {
		t.Errorf("expected signmag, got %s", m.Result().Representation)
	}

	m = press(m, runes("0"))
	if m.Result().Angle != 0 {
		t.Errorf("expected zero angle, got %g", m.Result().Angle)
	}
}

func TestExplorerIterationFloor(t *testing.T) {
	cfg := cordic.DefaultConfig()
	cfg.Iterations = 1
	m := press(NewExplorer(0.3, cordic.Fixed, cfg), tea.KeyMsg{Type: tea.KeyDown})
	if m.Result().Iterations != 1 {
		t.Errorf("expected iterations to stay at 1, got %d", m.Result().Iterations)
	}
}

func TestExplorerQuit(t *testing.T) {
	m := NewExplorer(0.5, cordic.Float, cordic.DefaultConfig())
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestExplorerShowsRangeError(t *testing.T) {
	cfg := cordic.DefaultConfig()
	cfg.ValidateRange = true
	m := NewExplorer(1.7, cordic.Float, cfg)
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})

	if !errors.Is(m.Err(), cordic.ErrAngleRange) {
		t.Fatalf("expected ErrAngleRange, got %v", m.Err())
	}
	if !strings.Contains(m.View(), "outside representable range") {
		t.Error("view does not report the range error")
	}
}

func TestViewContainsTrace(t *testing.T) {
	view := NewExplorer(1.0, cordic.Fixed, cordic.DefaultConfig()).View()
	for _, want := range []string{"CORDIC explorer", "fixed", "residual", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTraceTableRows(t *testing.T) {
	steps := []cordic.Step{{I: 0, X: 1, Y: 1, Z: 0.2}, {I: 1, X: 0.5, Y: 1.5, Z: -0.26}}
	out := TraceTable(steps)
	for _, want := range []string{"+0.200000000", "+0.500000000", "-0.260000000"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
}

func TestPlots(t *testing.T) {
	if ResidualPlot(nil) != "" || ErrorPlot(nil) != "" || LevelsPlot(nil) != "" {
		t.Error("expected empty plots for empty input")
	}

	samples, err := analysis.Sweep(analysis.FactoryFor(cordic.Float, cordic.DefaultConfig()), -1, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ErrorPlot(samples), "|sin err|") {
		t.Error("error plot missing caption")
	}

	steps := []cordic.Step{{I: 0, Z: 0.2}, {I: 1, Z: -0.1}, {I: 2, Z: 0.05}}
	if !strings.Contains(ResidualPlot(steps), "residual") {
		t.Error("residual plot missing caption")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 1}); got != "▁█" {
		t.Errorf("expected ▁█, got %q", got)
	}
	if Sparkline(nil) != "" {
		t.Error("expected empty sparkline")
	}
}
