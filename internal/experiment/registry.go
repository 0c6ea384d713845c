package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/cordic/internal/cordic"
)

type Registry struct {
	pipelines map[string]func(cordic.Config) (cordic.Pipeline, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		pipelines: make(map[string]func(cordic.Config) (cordic.Pipeline, error)),
	}

	r.pipelines["float"] = func(cfg cordic.Config) (cordic.Pipeline, error) { return cordic.NewFloat(cfg) }
	r.pipelines["signmag"] = func(cfg cordic.Config) (cordic.Pipeline, error) { return cordic.NewSignMag(cfg) }
	r.pipelines["fixed"] = func(cfg cordic.Config) (cordic.Pipeline, error) { return cordic.NewFixed(cfg) }

	return r
}

func (r *Registry) GetPipeline(name string, cfg cordic.Config) (cordic.Pipeline, error) {
	fn, ok := r.pipelines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", cordic.ErrRepresentation, name, r.List())
	}
	return fn(cfg)
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
