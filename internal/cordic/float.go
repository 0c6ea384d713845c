package cordic

// FloatPipeline runs the recurrence in native float64 arithmetic.
type FloatPipeline struct {
	observers
	cfg   Config
	table *Table
}

func NewFloat(cfg Config) (*FloatPipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, err := NewTable(cfg.Iterations)
	if err != nil {
		return nil, err
	}
	return &FloatPipeline{cfg: cfg, table: t}, nil
}

func (p *FloatPipeline) Name() Representation { return Float }

func (p *FloatPipeline) Table() *Table { return p.table }

func (p *FloatPipeline) Rotate(angle float64) (Result, error) {
	if err := checkAngle(angle, p.table, p.cfg.ValidateRange); err != nil {
		return Result{}, err
	}

	x, y, z := 1.0, 0.0, angle
	for i := 0; i < p.table.Len(); i++ {
		// explicit conversions keep the products from fusing into the adds
		scale := PowerOfTwo(-i)
		dx := float64(scale * y)
		dy := float64(scale * x)
		theta := p.table.Angle(i)

		if z > 0 {
			x -= dx
			y += dy
			z -= theta
		} else {
			x += dx
			y -= dy
			z += theta
		}

		p.emit(Step{I: i, X: x, Y: y, Z: z})
	}

	return newResult(Float, p.table, angle, x, y, z), nil
}
