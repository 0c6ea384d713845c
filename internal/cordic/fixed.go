package cordic

import "math"

// SignMagPipeline runs the recurrence on sign-magnitude values with float64
// magnitudes.
type SignMagPipeline struct {
	observers
	cfg    Config
	table  *Table
	angles []float64
}

func NewSignMag(cfg Config) (*SignMagPipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, err := NewTable(cfg.Iterations)
	if err != nil {
		return nil, err
	}
	return &SignMagPipeline{cfg: cfg, table: t, angles: t.Angles()}, nil
}

func (p *SignMagPipeline) Name() Representation { return SignMagnitude }

func (p *SignMagPipeline) Table() *Table { return p.table }

func (p *SignMagPipeline) Rotate(angle float64) (Result, error) {
	if err := checkAngle(angle, p.table, p.cfg.ValidateRange); err != nil {
		return Result{}, err
	}

	var emit func(i int, x, y, z SignMag[float64])
	if len(p.observers) > 0 {
		emit = func(i int, x, y, z SignMag[float64]) {
			p.emit(Step{I: i, X: x.Float(1), Y: y.Float(1), Z: z.Float(1)})
		}
	}

	x, y, z := rotate(
		SignMag[float64]{Mag: 1},
		SignMag[float64]{},
		FromFloat(angle),
		p.angles,
		func(m float64, i int) float64 { return float64(PowerOfTwo(-i) * m) },
		emit,
	)

	return newResult(SignMagnitude, p.table, angle, x.Float(1), y.Float(1), z.Float(1)), nil
}

// FixedPipeline runs the recurrence on sign-magnitude values with uint64
// magnitudes: x and y in units of 2^-FracBits, z in units of 2^-AngleBits.
// Scaling by 2^-i is a right shift.
type FixedPipeline struct {
	observers
	cfg    Config
	table  *Table
	angles []uint64
	xyUnit float64
	zUnit  float64
}

func NewFixed(cfg Config) (*FixedPipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, err := NewTable(cfg.Iterations)
	if err != nil {
		return nil, err
	}
	return &FixedPipeline{
		cfg:    cfg,
		table:  t,
		angles: t.Fixed(cfg.AngleBits),
		xyUnit: math.Ldexp(1, int(cfg.FracBits)),
		zUnit:  math.Ldexp(1, int(cfg.AngleBits)),
	}, nil
}

func (p *FixedPipeline) Name() Representation { return Fixed }

func (p *FixedPipeline) Table() *Table { return p.table }

// Limit returns the exclusive bound on |angle| imposed by the z word.
func (p *FixedPipeline) Limit() float64 {
	return math.Ldexp(1, 64-int(p.cfg.AngleBits))
}

// Quantum returns the real value of one unit of x and y.
func (p *FixedPipeline) Quantum() float64 {
	return 1 / p.xyUnit
}

func (p *FixedPipeline) Rotate(angle float64) (Result, error) {
	if err := checkAngle(angle, p.table, p.cfg.ValidateRange); err != nil {
		return Result{}, err
	}
	z, err := p.toFixed(angle)
	if err != nil {
		return Result{}, err
	}

	var emit func(i int, x, y, z SignMag[uint64])
	if len(p.observers) > 0 {
		emit = func(i int, x, y, z SignMag[uint64]) {
			p.emit(Step{I: i, X: x.Float(p.xyUnit), Y: y.Float(p.xyUnit), Z: z.Float(p.zUnit)})
		}
	}

	x, y, z := rotate(
		SignMag[uint64]{Mag: 1 << p.cfg.FracBits},
		SignMag[uint64]{},
		z,
		p.angles,
		func(m uint64, i int) uint64 { return m >> uint(i) },
		emit,
	)

	return newResult(Fixed, p.table, angle, x.Float(p.xyUnit), y.Float(p.xyUnit), z.Float(p.zUnit)), nil
}

// toFixed truncates angle toward zero into units of 2^-AngleBits. A non-zero
// angle below one unit keeps a magnitude of one so the first step turns the
// same way as in the float pipeline.
func (p *FixedPipeline) toFixed(angle float64) (SignMag[uint64], error) {
	scaled := math.Ldexp(math.Abs(angle), int(p.cfg.AngleBits))
	if scaled >= 0x1p64 {
		return SignMag[uint64]{}, &RangeError{Angle: angle, Limit: p.Limit(), Wrapped: ErrAngleRange}
	}
	mag := uint64(scaled)
	if mag == 0 && angle != 0 {
		mag = 1
	}
	return SignMag[uint64]{Mag: mag, Neg: math.Signbit(angle)}, nil
}
