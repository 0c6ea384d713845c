package experiment

import (
	"fmt"

	"github.com/san-kum/cordic/internal/config"
	"github.com/san-kum/cordic/internal/cordic"
	"github.com/san-kum/cordic/internal/trace"
)

// Run is the outcome of one experiment: the result and its recorded trace.
type Run struct {
	Config *config.Config
	Result cordic.Result
	Steps  []cordic.Step
}

type Experiment struct {
	cfg      *config.Config
	pipeline cordic.Pipeline
	recorder *trace.Recorder
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup builds the pipeline and attaches the recorder plus any extra observers.
func (e *Experiment) Setup(registry *Registry, observers ...cordic.Observer) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	p, err := registry.GetPipeline(e.cfg.Representation, e.cfg.CordicConfig())
	if err != nil {
		return err
	}

	e.recorder = trace.NewRecorder()
	p.AddObserver(e.recorder)
	for _, o := range observers {
		p.AddObserver(o)
	}
	e.pipeline = p
	return nil
}

func (e *Experiment) Run() (*Run, error) {
	if e.pipeline == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	e.recorder.Reset()
	res, err := e.pipeline.Rotate(e.cfg.Angle)
	if err != nil {
		return nil, err
	}

	return &Run{Config: e.cfg, Result: res, Steps: e.recorder.Steps()}, nil
}

// Pipeline returns the underlying pipeline for adding observers.
func (e *Experiment) Pipeline() cordic.Pipeline {
	return e.pipeline
}
