package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/cordic/internal/cordic"
	"github.com/san-kum/cordic/internal/trace"
)

const (
	minAngleStep = 1.0 / 1024
	maxAngleStep = 1.0
)

// Explorer is a Bubble Tea model that re-rotates on every key press.
type Explorer struct {
	cfg       cordic.Config
	reprs     []cordic.Representation
	reprIdx   int
	angle     float64
	angleStep float64

	result cordic.Result
	steps  []cordic.Step
	bound  float64
	err    error
}

func NewExplorer(angle float64, repr cordic.Representation, cfg cordic.Config) Explorer {
	m := Explorer{
		cfg:       cfg,
		reprs:     cordic.Representations(),
		angle:     angle,
		angleStep: 1.0 / 16,
	}
	for i, r := range m.reprs {
		if r == repr {
			m.reprIdx = i
		}
	}
	m.recompute()
	return m
}

func (m Explorer) Init() tea.Cmd {
	return nil
}

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.angle -= m.angleStep
	case "right", "l":
		m.angle += m.angleStep
	case "[":
		m.angleStep = math.Max(m.angleStep/2, minAngleStep)
	case "]":
		m.angleStep = math.Min(m.angleStep*2, maxAngleStep)
	case "up", "k", "+", "=":
		if m.cfg.Iterations < cordic.MaxIterations {
			m.cfg.Iterations++
		}
	case "down", "j", "-":
		if m.cfg.Iterations > 1 {
			m.cfg.Iterations--
		}
	case "tab":
		m.reprIdx = (m.reprIdx + 1) % len(m.reprs)
	case "0":
		m.angle = 0
	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

func (m *Explorer) recompute() {
	m.err = nil
	p, err := cordic.New(m.reprs[m.reprIdx], m.cfg)
	if err != nil {
		m.err = err
		return
	}

	rec := trace.NewRecorder()
	p.AddObserver(rec)
	res, err := p.Rotate(m.angle)
	if err != nil {
		m.err = err
		return
	}

	table, err := cordic.NewTable(m.cfg.Iterations)
	if err != nil {
		m.err = err
		return
	}

	m.result = res
	m.steps = rec.Steps()
	m.bound = table.Smallest()
}

// Result returns the most recent rotation.
func (m Explorer) Result() cordic.Result { return m.result }

// Err returns the error of the most recent rotation, if any.
func (m Explorer) Err() error { return m.err }

func (m Explorer) View() string {
	var b strings.Builder
	b.WriteString(Title.Render("CORDIC explorer"))
	b.WriteString("  ")
	b.WriteString(Subtle.Render(fmt.Sprintf("step %g rad", m.angleStep)))
	b.WriteString("\n")
	b.WriteString(Separator(72))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(Bad.Render(m.err.Error()))
		b.WriteString("\n")
	} else {
		zs := make([]float64, len(m.steps))
		for i, s := range m.steps {
			zs[i] = math.Abs(s.Z)
		}
		left := ResultPanel(m.result, m.bound) + "\n" + Subtle.Render("|z| ") + Sparkline(zs)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", TraceTable(m.steps)))
		b.WriteString("\n")
	}

	b.WriteString(KeyHint.Render("←/→ angle  [/] step  +/- iterations  tab representation  0 zero  q quit"))
	b.WriteString("\n")
	return b.String()
}
